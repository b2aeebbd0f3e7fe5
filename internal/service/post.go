package service

import (
	"context"
	"strings"
	"time"

	"github.com/maxviazov/board-pagination/internal/model"
	"github.com/maxviazov/board-pagination/internal/repository"
	"github.com/maxviazov/board-pagination/pkg/pageable"
	"github.com/rs/zerolog"
)

// postService holds board use-case logic: validation + orchestration, no transport / SQL details.
type postService struct {
	repo     repository.PostRepository
	tx       repository.TxManager
	defaults PageDefaults
	log      zerolog.Logger
}

// NewPostService wires the board use cases. tx scopes the count and the page fetch
// of ListPosts to one transaction; pass a snapshot TxManager for consistent totals.
func NewPostService(repo repository.PostRepository, tx repository.TxManager, defaults PageDefaults, logger zerolog.Logger) PostService {
	l := logger.With().Str("module", "service").Str("component", "post").Logger()
	return &postService{repo: repo, tx: tx, defaults: defaults, log: l}
}

func (s *postService) CreatePost(ctx context.Context, title, author, body string) (model.Post, error) {
	start := time.Now()
	title = strings.TrimSpace(title)
	author = strings.TrimSpace(author)
	body = strings.TrimSpace(body)

	var ferrs []FieldError
	switch {
	case title == "":
		ferrs = append(ferrs, FieldError{Field: "title", Message: "must not be empty"})
	case !runeLenBetween(title, 2, 120):
		ferrs = append(ferrs, FieldError{Field: "title", Message: "length must be between 2 and 120"})
	}
	switch {
	case author == "":
		ferrs = append(ferrs, FieldError{Field: "author", Message: "must not be empty"})
	case !runeLenBetween(author, 1, 50):
		ferrs = append(ferrs, FieldError{Field: "author", Message: "length must be between 1 and 50"})
	}
	if body == "" {
		ferrs = append(ferrs, FieldError{Field: "body", Message: "must not be empty"})
	}
	if err := newInvalidInput(ferrs); err != nil {
		s.log.Debug().Interface("field_errors", ferrs).Msg("post validation failed")
		return model.Post{}, err
	}

	out, err := s.repo.Create(ctx, model.Post{Title: title, Author: author, Body: body})
	if err != nil {
		// Repository surfaces domain-level errors already, do not wrap.
		s.log.Error().Err(err).Str("title", title).Msg("create post failed")
		return model.Post{}, err
	}
	s.log.Info().Dur("took", time.Since(start)).Int64("post_id", out.ID).Msg("post created")
	return out, nil
}

func (s *postService) GetPost(ctx context.Context, id int64) (model.Post, error) {
	if id <= 0 {
		return model.Post{}, newInvalidInput([]FieldError{{Field: "id", Message: "must be > 0"}})
	}
	return s.repo.GetByID(ctx, id)
}

// ListPosts counts, computes the page and fetches its window in one unit of work.
// A page past the end is not an error: it returns the metadata with an empty slice.
func (s *postService) ListPosts(ctx context.Context, req PageRequest) (pageable.Page[[]model.Post], error) {
	r := normalizePageRequest(req, s.defaults)

	var (
		p     pageable.Pageable
		items []model.Post
	)
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		total, err := s.repo.Count(ctx)
		if err != nil {
			return err
		}
		p = pageable.NewWithSize(r.Page, total, r.Size, r.Block)
		if total == 0 || p.Page() > p.TotalPageCount() {
			return nil
		}
		items, err = s.repo.List(ctx, repository.WindowOf(p))
		return err
	})
	if err != nil {
		s.log.Error().Err(err).Int("page", r.Page).Int("size", r.Size).Msg("list posts failed")
		return pageable.Page[[]model.Post]{}, err
	}
	if items == nil {
		items = []model.Post{}
	}
	s.log.Debug().Stringer("pageable", p).Int("items", len(items)).Msg("posts listed")
	return pageable.Wrap(p, items), nil
}
