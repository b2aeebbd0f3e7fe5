package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/maxviazov/board-pagination/internal/model"
	"github.com/maxviazov/board-pagination/internal/repository"
)

type postRepository struct{ pool *pgxpool.Pool }

func NewPostRepository(pool *pgxpool.Pool) repository.PostRepository {
	return &postRepository{pool: pool}
}

func (r *postRepository) Create(ctx context.Context, p model.Post) (model.Post, error) {
	if err := ensurePool(r.pool); err != nil {
		return model.Post{}, err
	}
	exec := getQ(ctx, r.pool)
	row := exec.QueryRow(ctx,
		`INSERT INTO posts (title, author, body) VALUES ($1, $2, $3)
		 RETURNING id, title, author, body, created_at, updated_at`,
		p.Title, p.Author, p.Body,
	)
	out, err := scanPost(row)
	if err != nil {
		return model.Post{}, repository.MapPgError(err)
	}
	return out, nil
}

func (r *postRepository) GetByID(ctx context.Context, id int64) (model.Post, error) {
	if err := ensurePool(r.pool); err != nil {
		return model.Post{}, err
	}
	exec := getQ(ctx, r.pool)
	row := exec.QueryRow(ctx,
		`SELECT id, title, author, body, created_at, updated_at FROM posts WHERE id = $1`, id,
	)
	out, err := scanPost(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Post{}, repository.ErrNotFound
		}
		return model.Post{}, repository.MapPgError(err)
	}
	return out, nil
}

func (r *postRepository) Count(ctx context.Context) (int, error) {
	if err := ensurePool(r.pool); err != nil {
		return 0, err
	}
	var total int
	exec := getQ(ctx, r.pool)
	if err := exec.QueryRow(ctx, `SELECT COUNT(*) FROM posts`).Scan(&total); err != nil {
		return 0, repository.MapPgError(err)
	}
	return total, nil
}

func (r *postRepository) List(ctx context.Context, w repository.Window) ([]model.Post, error) {
	if err := ensurePool(r.pool); err != nil {
		return nil, err
	}
	limit, offset := sanitizeWindow(w)
	exec := getQ(ctx, r.pool)
	rows, err := exec.Query(ctx,
		`SELECT id, title, author, body, created_at, updated_at
		 FROM posts
		 ORDER BY created_at DESC, id DESC
		 LIMIT $1 OFFSET $2`,
		limit, offset,
	)
	if err != nil {
		return nil, repository.MapPgError(err)
	}
	defer rows.Close()

	out := make([]model.Post, 0, min(limit, 256))
	for rows.Next() {
		p, err := scanPost(rows)
		if err != nil {
			return nil, repository.MapPgError(err)
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, repository.MapPgError(err)
	}
	return out, nil
}

func scanPost(row pgx.Row) (model.Post, error) {
	var p model.Post
	err := row.Scan(&p.ID, &p.Title, &p.Author, &p.Body, &p.CreatedAt, &p.UpdatedAt)
	return p, err
}

var _ repository.PostRepository = (*postRepository)(nil)
