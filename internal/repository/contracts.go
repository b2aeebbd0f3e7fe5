package repository

import (
	"context"

	"github.com/maxviazov/board-pagination/internal/model"
)

// Pinger represents a minimal readiness probe capability.
type Pinger interface {
	Ping(ctx context.Context) error
}

// TxFunc is the unit of work executed within a transaction boundary.
type TxFunc func(ctx context.Context) error

// TxManager abstracts transactional execution for repositories that support it.
// Repositories called with the ctx handed to fn join the transaction.
type TxManager interface {
	WithinTx(ctx context.Context, fn TxFunc) error
}

// PostRepository declares persistence operations for board posts.
type PostRepository interface {
	Create(ctx context.Context, p model.Post) (model.Post, error)
	GetByID(ctx context.Context, id int64) (model.Post, error)
	// Count returns the number of posts; it feeds the pagination total.
	Count(ctx context.Context) (int, error)
	// List returns posts newest first within the window.
	List(ctx context.Context, w Window) ([]model.Post, error)
}
