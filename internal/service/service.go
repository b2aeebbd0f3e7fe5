// Package service holds use-case orchestration between handlers and repositories:
// validation, pagination and domain error shaping.
package service

import (
	"context"
	"errors"

	"github.com/maxviazov/board-pagination/internal/model"
	"github.com/maxviazov/board-pagination/pkg/pageable"
)

// ErrInvalidInput is the marker error for aggregated validation failures (maps to HTTP 400).
// Field-level details are retrieved via FieldErrors(err).
var ErrInvalidInput = errors.New("invalid input")

// FieldError describes a single invalid field in a client request.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// invalidInputError aggregates multiple FieldError instances and unwraps to ErrInvalidInput.
type invalidInputError struct {
	fields []FieldError
}

func (e *invalidInputError) Error() string        { return ErrInvalidInput.Error() }
func (e *invalidInputError) Unwrap() error        { return ErrInvalidInput }
func (e *invalidInputError) Fields() []FieldError { return e.fields }

// newInvalidInput returns nil when fe is empty.
func newInvalidInput(fe []FieldError) error {
	if len(fe) == 0 {
		return nil
	}
	return &invalidInputError{fields: fe}
}

// FieldErrors extracts field errors from an aggregated validation error.
func FieldErrors(err error) []FieldError {
	if err == nil {
		return nil
	}
	type feIface interface{ Fields() []FieldError }
	var v feIface
	if errors.As(err, &v) && errors.Is(err, ErrInvalidInput) {
		return v.Fields()
	}
	return nil
}

// PageRequest is what a client asks for. Zero or negative values are not errors:
// they fall through to pageable's defaults.
type PageRequest struct {
	Page  int
	Size  int
	Block int
}

// PostService defines board use cases.
type PostService interface {
	CreatePost(ctx context.Context, title, author, body string) (model.Post, error)
	GetPost(ctx context.Context, id int64) (model.Post, error)
	ListPosts(ctx context.Context, req PageRequest) (pageable.Page[[]model.Post], error)
}
