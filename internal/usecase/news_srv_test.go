package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"news-cms/internal/data/entity"
	"news-cms/internal/data/repository"
	"news-cms/internal/dto/request"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// fakeNewsRepo is an in-memory NewsRepository that records the last filter.
type fakeNewsRepo struct {
	items      map[uuid.UUID]*entity.News
	lastFilter repository.NewsFilter
}

func newFakeNewsRepo(items ...*entity.News) *fakeNewsRepo {
	f := &fakeNewsRepo{items: make(map[uuid.UUID]*entity.News)}
	for _, n := range items {
		f.items[n.ID] = n
	}
	return f
}

func (f *fakeNewsRepo) Create(ctx context.Context, news *entity.News) error {
	f.items[news.ID] = news
	return nil
}

func (f *fakeNewsRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.News, error) {
	return f.items[id], nil
}

func (f *fakeNewsRepo) FindAll(ctx context.Context, filter repository.NewsFilter) ([]*entity.News, error) {
	f.lastFilter = filter
	out := make([]*entity.News, 0, len(f.items))
	for _, n := range f.items {
		if filter.IsActive != nil && n.IsActive != *filter.IsActive {
			continue
		}
		out = append(out, n)
	}
	return out, nil
}

func (f *fakeNewsRepo) Count(ctx context.Context, filter repository.NewsFilter) (int64, error) {
	items, _ := f.FindAll(ctx, filter)
	return int64(len(items)), nil
}

func (f *fakeNewsRepo) Update(ctx context.Context, news *entity.News) error {
	f.items[news.ID] = news
	return nil
}

func (f *fakeNewsRepo) ToggleFlag(ctx context.Context, id uuid.UUID, flag string) (*bool, error) {
	n, ok := f.items[id]
	if !ok {
		return nil, nil
	}
	switch flag {
	case "is_active":
		n.IsActive = !n.IsActive
		return &n.IsActive, nil
	case "is_trending":
		n.IsTrending = !n.IsTrending
		return &n.IsTrending, nil
	}
	return nil, errors.New("unknown flag")
}

func (f *fakeNewsRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(f.items, id)
	return nil
}

// fakeUploader returns a canned URL or fails.
type fakeUploader struct {
	url     string
	err     error
	uploads int
}

func (f *fakeUploader) Upload(ctx context.Context, data []byte, filename, kind string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.uploads++
	return f.url, nil
}

func makeNews(title string, active bool) *entity.News {
	return &entity.News{
		Base:     entity.Base{ID: uuid.New(), CreatedAt: time.Now(), UpdatedAt: time.Now()},
		Title:    title,
		Content:  "content",
		Category: "general",
		IsActive: active,
	}
}

func TestCreateNews(t *testing.T) {
	ctx := context.Background()

	t.Run("defaults to active", func(t *testing.T) {
		repo := newFakeNewsRepo()
		svc := NewNewsService(repo, &fakeUploader{}, zap.NewNop())

		resp, err := svc.CreateNews(ctx, &request.NewsRequest{
			Title:    "Festival opens",
			Content:  "The gates open at noon.",
			Category: "festival",
		}, nil)
		require.NoError(t, err)
		assert.True(t, resp.IsActive)
		assert.Len(t, repo.items, 1)
	})

	t.Run("uploads image before insert", func(t *testing.T) {
		repo := newFakeNewsRepo()
		up := &fakeUploader{url: "https://store.example.com/img.png"}
		svc := NewNewsService(repo, up, zap.NewNop())

		resp, err := svc.CreateNews(ctx, &request.NewsRequest{
			Title:    "With picture",
			Content:  "content",
			Category: "general",
		}, &UploadFile{Data: []byte{0xFF}, Filename: "img.png"})
		require.NoError(t, err)
		require.NotNil(t, resp.ImageURL)
		assert.Equal(t, "https://store.example.com/img.png", *resp.ImageURL)
		assert.Equal(t, 1, up.uploads)
	})

	t.Run("upload failure persists nothing", func(t *testing.T) {
		repo := newFakeNewsRepo()
		svc := NewNewsService(repo, &fakeUploader{err: errors.New("store down")}, zap.NewNop())

		_, err := svc.CreateNews(ctx, &request.NewsRequest{
			Title:    "Doomed",
			Content:  "content",
			Category: "general",
		}, &UploadFile{Data: []byte{0xFF}, Filename: "img.png"})
		assert.ErrorIs(t, err, ErrUpload)
		assert.Empty(t, repo.items)
	})

	t.Run("missing fields rejected", func(t *testing.T) {
		repo := newFakeNewsRepo()
		svc := NewNewsService(repo, &fakeUploader{}, zap.NewNop())

		_, err := svc.CreateNews(ctx, &request.NewsRequest{Title: "ok title"}, nil)
		assert.ErrorIs(t, err, ErrValidation)
		assert.Empty(t, repo.items)
	})
}

func TestGetPublicNews(t *testing.T) {
	ctx := context.Background()

	repo := newFakeNewsRepo(makeNews("visible", true), makeNews("hidden", false))
	svc := NewNewsService(repo, &fakeUploader{}, zap.NewNop())

	// An admin-looking query must not leak inactive records publicly.
	inactive := false
	result, err := svc.GetPublicNews(ctx, &request.NewsListQuery{IsActive: &inactive})
	require.NoError(t, err)

	require.NotNil(t, repo.lastFilter.IsActive)
	assert.True(t, *repo.lastFilter.IsActive)
	require.Len(t, result.Data, 1)
	assert.Equal(t, "visible", result.Data[0].Title)
}

func TestNewsPaginationMeta(t *testing.T) {
	ctx := context.Background()

	repo := newFakeNewsRepo(makeNews("a", true), makeNews("b", true), makeNews("c", true))
	svc := NewNewsService(repo, &fakeUploader{}, zap.NewNop())

	result, err := svc.GetNews(ctx, &request.NewsListQuery{
		PaginatedRequest: request.PaginatedRequest{Page: 1, PerPage: 2},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(3), result.Pagination.Total)
	assert.Equal(t, 2, result.Pagination.TotalPages)
	assert.Equal(t, 2, repo.lastFilter.Limit)
	assert.Equal(t, 0, repo.lastFilter.Offset)
}

func TestToggleNewsFlag(t *testing.T) {
	ctx := context.Background()

	t.Run("flips and returns new value", func(t *testing.T) {
		item := makeNews("toggle me", true)
		svc := NewNewsService(newFakeNewsRepo(item), &fakeUploader{}, zap.NewNop())

		value, err := svc.ToggleFlag(ctx, item.ID, "is_active")
		require.NoError(t, err)
		assert.False(t, *value)

		value, err = svc.ToggleFlag(ctx, item.ID, "is_active")
		require.NoError(t, err)
		assert.True(t, *value)
	})

	t.Run("missing record is 404", func(t *testing.T) {
		svc := NewNewsService(newFakeNewsRepo(), &fakeUploader{}, zap.NewNop())

		_, err := svc.ToggleFlag(ctx, uuid.New(), "is_active")
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestUpdateNews(t *testing.T) {
	ctx := context.Background()

	t.Run("applies only provided fields", func(t *testing.T) {
		item := makeNews("old title", true)
		repo := newFakeNewsRepo(item)
		svc := NewNewsService(repo, &fakeUploader{}, zap.NewNop())

		newTitle := "new title"
		resp, err := svc.UpdateNews(ctx, item.ID, &request.NewsUpdateRequest{Title: &newTitle}, nil)
		require.NoError(t, err)
		assert.Equal(t, "new title", resp.Title)
		assert.Equal(t, "content", resp.Content)
	})

	t.Run("missing record is 404", func(t *testing.T) {
		svc := NewNewsService(newFakeNewsRepo(), &fakeUploader{}, zap.NewNop())

		_, err := svc.UpdateNews(ctx, uuid.New(), &request.NewsUpdateRequest{}, nil)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestDeleteNews(t *testing.T) {
	ctx := context.Background()

	t.Run("returns confirmation payload", func(t *testing.T) {
		item := makeNews("ephemeral", true)
		repo := newFakeNewsRepo(item)
		svc := NewNewsService(repo, &fakeUploader{}, zap.NewNop())

		resp, err := svc.DeleteNews(ctx, item.ID)
		require.NoError(t, err)
		assert.Equal(t, item.ID.String(), resp.ID)
		assert.Equal(t, "ephemeral", resp.Title)
		assert.Empty(t, repo.items)
	})

	t.Run("missing record is 404", func(t *testing.T) {
		svc := NewNewsService(newFakeNewsRepo(), &fakeUploader{}, zap.NewNop())

		_, err := svc.DeleteNews(ctx, uuid.New())
		assert.ErrorIs(t, err, ErrNotFound)
	})
}
