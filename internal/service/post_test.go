package service_test

import (
	"context"
	"errors"
	"io"
	"sort"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maxviazov/board-pagination/internal/model"
	"github.com/maxviazov/board-pagination/internal/repository"
	"github.com/maxviazov/board-pagination/internal/service"
)

type fakePostRepo struct {
	nextID     int64
	items      map[int64]model.Post
	createErr  error
	countErr   error
	listCalls  int
	lastWindow repository.Window
}

func newFakePostRepo() *fakePostRepo {
	return &fakePostRepo{nextID: 1, items: map[int64]model.Post{}}
}

func (f *fakePostRepo) seed(n int) {
	for i := 0; i < n; i++ {
		_, _ = f.Create(context.Background(), model.Post{Title: "seeded", Author: "a", Body: "b"})
	}
}

func (f *fakePostRepo) Create(_ context.Context, p model.Post) (model.Post, error) {
	if f.createErr != nil {
		return model.Post{}, f.createErr
	}
	p.ID = f.nextID
	f.nextID++
	f.items[p.ID] = p
	return p, nil
}

func (f *fakePostRepo) GetByID(_ context.Context, id int64) (model.Post, error) {
	it, ok := f.items[id]
	if !ok {
		return model.Post{}, repository.ErrNotFound
	}
	return it, nil
}

func (f *fakePostRepo) Count(_ context.Context) (int, error) {
	if f.countErr != nil {
		return 0, f.countErr
	}
	return len(f.items), nil
}

// List mimics ORDER BY id DESC LIMIT/OFFSET.
func (f *fakePostRepo) List(_ context.Context, w repository.Window) ([]model.Post, error) {
	f.listCalls++
	f.lastWindow = w
	all := make([]model.Post, 0, len(f.items))
	for _, v := range f.items {
		all = append(all, v)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID > all[j].ID })
	if w.Offset >= len(all) {
		return []model.Post{}, nil
	}
	end := w.Offset + w.Limit
	if end > len(all) {
		end = len(all)
	}
	return all[w.Offset:end], nil
}

var _ repository.PostRepository = (*fakePostRepo)(nil)

// passTx runs fn inline.
type passTx struct{ calls int }

func (p *passTx) WithinTx(ctx context.Context, fn repository.TxFunc) error {
	p.calls++
	return fn(ctx)
}

var defaults = service.PageDefaults{PageSize: 10, BlockSize: 5, MaxPageSize: 50}

func newSvc(repo repository.PostRepository) (service.PostService, *passTx) {
	tx := &passTx{}
	return service.NewPostService(repo, tx, defaults, zerolog.New(io.Discard)), tx
}

func TestPostService_CreatePost_Validation(t *testing.T) {
	svc, _ := newSvc(newFakePostRepo())

	cases := []struct {
		name       string
		title      string
		author     string
		body       string
		wantFields []string
	}{
		{"all empty", "", "", "", []string{"title", "author", "body"}},
		{"spaces only", "   ", "  ", " ", []string{"title", "author", "body"}},
		{"title too short", "A", "ann", "text", []string{"title"}},
		{"title too long", strings.Repeat("x", 121), "ann", "text", []string{"title"}},
		{"author too long", "Hello", strings.Repeat("y", 51), "text", []string{"author"}},
		{"multibyte title counts runes", "안녕", "ann", "text", nil},
		{"ok", "Hello", "ann", "text", nil},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.CreatePost(context.Background(), tc.title, tc.author, tc.body)
			if len(tc.wantFields) == 0 {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, service.ErrInvalidInput)
			var got []string
			for _, f := range service.FieldErrors(err) {
				got = append(got, f.Field)
			}
			assert.ElementsMatch(t, tc.wantFields, got)
		})
	}
}

func TestPostService_CreatePost_TrimsAndPersists(t *testing.T) {
	repo := newFakePostRepo()
	svc, _ := newSvc(repo)

	out, err := svc.CreatePost(context.Background(), "  Hello  ", " ann ", " body ")
	require.NoError(t, err)
	assert.Equal(t, int64(1), out.ID)
	assert.Equal(t, "Hello", repo.items[1].Title)
	assert.Equal(t, "ann", repo.items[1].Author)
	assert.Equal(t, "body", repo.items[1].Body)
}

func TestPostService_CreatePost_RepoErrorPassesThrough(t *testing.T) {
	repo := newFakePostRepo()
	repo.createErr = repository.ErrConflict
	svc, _ := newSvc(repo)

	_, err := svc.CreatePost(context.Background(), "Hello", "ann", "body")
	assert.ErrorIs(t, err, repository.ErrConflict)
}

func TestPostService_GetPost(t *testing.T) {
	repo := newFakePostRepo()
	repo.seed(1)
	svc, _ := newSvc(repo)

	_, err := svc.GetPost(context.Background(), 0)
	assert.ErrorIs(t, err, service.ErrInvalidInput)
	assert.Equal(t, "id", service.FieldErrors(err)[0].Field)

	_, err = svc.GetPost(context.Background(), 42)
	assert.ErrorIs(t, err, repository.ErrNotFound)

	got, err := svc.GetPost(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), got.ID)
}

func TestPostService_ListPosts(t *testing.T) {
	repo := newFakePostRepo()
	repo.seed(23)
	svc, tx := newSvc(repo)

	page, err := svc.ListPosts(context.Background(), service.PageRequest{Page: 3})
	require.NoError(t, err)
	assert.Equal(t, 1, tx.calls)

	p := page.Pageable()
	assert.Equal(t, 23, p.TotalCount())
	assert.Equal(t, 3, p.TotalPageCount())
	assert.Equal(t, 3, p.EndPage())
	assert.Equal(t, repository.Window{Limit: 10, Offset: 20}, repo.lastWindow)
	require.Len(t, page.Data(), 3)
	// newest first; the last page ends with the oldest post
	assert.Equal(t, int64(1), page.Data()[2].ID)
}

func TestPostService_ListPosts_PageRequestPolicy(t *testing.T) {
	repo := newFakePostRepo()
	repo.seed(300)
	svc, _ := newSvc(repo)

	cases := []struct {
		name                  string
		req                   service.PageRequest
		wantPage, wantSize    int
		wantBlock, wantOffset int
	}{
		{"zero values use configured defaults", service.PageRequest{}, 1, 10, 5, 0},
		{"negative page normalizes", service.PageRequest{Page: -4, Size: 20}, 1, 20, 5, 0},
		{"size capped to max", service.PageRequest{Page: 2, Size: 500}, 2, 50, 5, 50},
		{"custom block", service.PageRequest{Page: 12, Size: 10, Block: 3}, 12, 10, 3, 110},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			page, err := svc.ListPosts(context.Background(), tc.req)
			require.NoError(t, err)
			p := page.Pageable()
			assert.Equal(t, tc.wantPage, p.Page())
			assert.Equal(t, tc.wantSize, p.PageSize())
			assert.Equal(t, tc.wantBlock, p.BlockSize())
			assert.Equal(t, tc.wantOffset, p.Offset())
			assert.Len(t, page.Data(), tc.wantSize)
		})
	}
}

func TestPostService_ListPosts_UnconfiguredDefaultsFallToLibrary(t *testing.T) {
	repo := newFakePostRepo()
	repo.seed(12)
	svc := service.NewPostService(repo, &passTx{}, service.PageDefaults{}, zerolog.New(io.Discard))

	page, err := svc.ListPosts(context.Background(), service.PageRequest{Page: 2})
	require.NoError(t, err)
	assert.Equal(t, 10, page.Pageable().PageSize())
	assert.Equal(t, 5, page.Pageable().BlockSize())
	assert.Len(t, page.Data(), 2)
}

func TestPostService_ListPosts_PastTheEnd(t *testing.T) {
	repo := newFakePostRepo()
	repo.seed(20)
	svc, _ := newSvc(repo)

	page, err := svc.ListPosts(context.Background(), service.PageRequest{Page: 999})
	require.NoError(t, err)
	assert.Equal(t, 0, repo.listCalls)
	assert.NotNil(t, page.Data())
	assert.Empty(t, page.Data())
	// metadata is reported as computed, not clamped
	assert.Equal(t, 9980, page.Pageable().Offset())
	assert.Equal(t, 200, page.Pageable().Block())
}

func TestPostService_ListPosts_Empty(t *testing.T) {
	repo := newFakePostRepo()
	svc, _ := newSvc(repo)

	page, err := svc.ListPosts(context.Background(), service.PageRequest{Page: 1})
	require.NoError(t, err)
	assert.Equal(t, 0, page.Pageable().TotalPageCount())
	assert.Equal(t, 1, page.Pageable().EndPage())
	assert.NotNil(t, page.Data())
	assert.Empty(t, page.Data())
}

func TestPostService_ListPosts_CountError(t *testing.T) {
	repo := newFakePostRepo()
	repo.countErr = errors.New("db down")
	svc, _ := newSvc(repo)

	_, err := svc.ListPosts(context.Background(), service.PageRequest{Page: 1})
	assert.EqualError(t, err, "db down")
	assert.Equal(t, 0, repo.listCalls)
}
