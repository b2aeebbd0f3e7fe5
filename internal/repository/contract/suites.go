// Package contract holds storage-agnostic test suites that every
// repository implementation must pass.
package contract

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/maxviazov/board-pagination/internal/model"
	"github.com/maxviazov/board-pagination/internal/repository"
	"github.com/maxviazov/board-pagination/pkg/pageable"
)

type PostFactory func(t *testing.T) (repository.PostRepository, func())

type TxFactory func(t *testing.T) (tx repository.TxManager, posts repository.PostRepository, cleanup func())

type PingerFactory func(t *testing.T) (repository.Pinger, func())

func seedPosts(t *testing.T, repo repository.PostRepository, n int) []model.Post {
	t.Helper()
	out := make([]model.Post, 0, n)
	for i := 0; i < n; i++ {
		p, err := repo.Create(context.Background(), model.Post{
			Title:  fmt.Sprintf("post %02d", i+1),
			Author: "tester",
			Body:   "body",
		})
		if err != nil {
			t.Fatalf("seed create failed: %v", err)
		}
		out = append(out, p)
	}
	return out
}

func RunPostRepositoryContract(t *testing.T, makeRepo PostFactory) {
	t.Helper()

	t.Run("create_and_get", func(t *testing.T) {
		repo, cleanup := makeRepo(t)
		t.Cleanup(cleanup)
		ctx := context.Background()
		created, err := repo.Create(ctx, model.Post{Title: "Hello", Author: "ann", Body: "first"})
		if err != nil {
			t.Fatalf("create failed: %v", err)
		}
		if created.ID == 0 || created.CreatedAt.IsZero() {
			t.Fatalf("expected id and timestamps, got %+v", created)
		}
		got, err := repo.GetByID(ctx, created.ID)
		if err != nil {
			t.Fatalf("get failed: %v", err)
		}
		if got.ID != created.ID || got.Title != "Hello" || got.Author != "ann" || got.Body != "first" {
			t.Fatalf("mismatch: %+v", got)
		}
	})

	t.Run("get_not_found", func(t *testing.T) {
		repo, cleanup := makeRepo(t)
		t.Cleanup(cleanup)
		_, err := repo.GetByID(context.Background(), 999999)
		if !errors.Is(err, repository.ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("count_and_paged_list", func(t *testing.T) {
		repo, cleanup := makeRepo(t)
		t.Cleanup(cleanup)
		ctx := context.Background()
		seeded := seedPosts(t, repo, 23)

		total, err := repo.Count(ctx)
		if err != nil {
			t.Fatalf("count failed: %v", err)
		}
		if total != 23 {
			t.Fatalf("expected 23, got %d", total)
		}

		p := pageable.NewWithSize(3, total, 10, 5)
		items, err := repo.List(ctx, repository.WindowOf(p))
		if err != nil {
			t.Fatalf("list failed: %v", err)
		}
		if len(items) != 3 {
			t.Fatalf("expected 3 items on the last page, got %d", len(items))
		}
		// newest first: the last page holds the oldest rows
		if items[len(items)-1].ID != seeded[0].ID {
			t.Fatalf("expected oldest post last, got id %d", items[len(items)-1].ID)
		}
	})

	t.Run("page_past_the_end_is_empty", func(t *testing.T) {
		repo, cleanup := makeRepo(t)
		t.Cleanup(cleanup)
		seedPosts(t, repo, 4)
		p := pageable.NewWithSize(50, 4, 10, 5)
		items, err := repo.List(context.Background(), repository.WindowOf(p))
		if err != nil {
			t.Fatalf("list failed: %v", err)
		}
		if len(items) != 0 {
			t.Fatalf("expected empty page, got %d", len(items))
		}
	})

	t.Run("empty_table", func(t *testing.T) {
		repo, cleanup := makeRepo(t)
		t.Cleanup(cleanup)
		total, err := repo.Count(context.Background())
		if err != nil || total != 0 {
			t.Fatalf("expected 0 posts, got %d (%v)", total, err)
		}
		items, err := repo.List(context.Background(), repository.WindowOf(pageable.New(1, total)))
		if err != nil || len(items) != 0 {
			t.Fatalf("expected empty list, got %d (%v)", len(items), err)
		}
	})
}

func RunTxManagerContract(t *testing.T, makeTx TxFactory) {
	t.Helper()

	t.Run("rollback_on_error", func(t *testing.T) {
		tx, posts, cleanup := makeTx(t)
		t.Cleanup(cleanup)
		ctx := context.Background()
		boom := errors.New("boom")
		err := tx.WithinTx(ctx, func(ctx context.Context) error {
			if _, err := posts.Create(ctx, model.Post{Title: "ghost", Author: "x", Body: "y"}); err != nil {
				return err
			}
			return boom
		})
		if !errors.Is(err, boom) {
			t.Fatalf("expected boom, got %v", err)
		}
		total, err := posts.Count(ctx)
		if err != nil || total != 0 {
			t.Fatalf("expected rollback to leave 0 posts, got %d (%v)", total, err)
		}
	})

	t.Run("commit", func(t *testing.T) {
		tx, posts, cleanup := makeTx(t)
		t.Cleanup(cleanup)
		ctx := context.Background()
		err := tx.WithinTx(ctx, func(ctx context.Context) error {
			_, err := posts.Create(ctx, model.Post{Title: "kept", Author: "x", Body: "y"})
			return err
		})
		if err != nil {
			t.Fatalf("tx failed: %v", err)
		}
		total, err := posts.Count(ctx)
		if err != nil || total != 1 {
			t.Fatalf("expected 1 post, got %d (%v)", total, err)
		}
	})
}

func RunPingerContract(t *testing.T, makePinger PingerFactory) {
	t.Helper()
	p, cleanup := makePinger(t)
	t.Cleanup(cleanup)
	if err := p.Ping(context.Background()); err != nil {
		t.Fatalf("ping failed: %v", err)
	}
}
