package repository

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

var (
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
	ErrConflict      = errors.New("conflict")
	// ErrInvalidWindow means Postgres rejected a page's LIMIT or OFFSET.
	ErrInvalidWindow = errors.New("invalid page window")
)

// MapPgError translates the Postgres codes the posts store can raise.
// Anything not mapped here passes through unchanged.
func MapPgError(err error) error {
	if err == nil {
		return nil
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgerrcode.UniqueViolation:
			return ErrAlreadyExists
		case pgerrcode.ForeignKeyViolation, pgerrcode.CheckViolation, pgerrcode.SerializationFailure:
			return ErrConflict
		case pgerrcode.InvalidRowCountInLimitClause, pgerrcode.InvalidRowCountInResultOffsetClause:
			return ErrInvalidWindow
		}
	}
	return err
}
