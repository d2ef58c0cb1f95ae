package usecase

import (
	"context"
	"fmt"
	"time"

	"news-cms/internal/data/entity"
	"news-cms/internal/data/repository"
	"news-cms/internal/dto/request"
	"news-cms/internal/dto/response"
	"news-cms/pkg/media"
	"news-cms/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type NewsService interface {
	CreateNews(ctx context.Context, req *request.NewsRequest, image *UploadFile) (*response.NewsResponse, error)
	GetNews(ctx context.Context, q *request.NewsListQuery) (*response.PaginatedResponse[response.NewsResponse], error)
	GetPublicNews(ctx context.Context, q *request.NewsListQuery) (*response.PaginatedResponse[response.NewsResponse], error)
	GetNewsByID(ctx context.Context, id uuid.UUID) (*response.NewsResponse, error)
	UpdateNews(ctx context.Context, id uuid.UUID, req *request.NewsUpdateRequest, image *UploadFile) (*response.NewsResponse, error)
	ToggleFlag(ctx context.Context, id uuid.UUID, flag string) (*bool, error)
	DeleteNews(ctx context.Context, id uuid.UUID) (*response.DeleteResponse, error)
}

type newsService struct {
	news     repository.NewsRepository
	uploader media.Uploader
	log      *zap.Logger
}

func NewNewsService(news repository.NewsRepository, uploader media.Uploader, log *zap.Logger) NewsService {
	return &newsService{
		news:     news,
		uploader: uploader,
		log:      log.With(zap.String("service", "news")),
	}
}

func (s *newsService) CreateNews(ctx context.Context, req *request.NewsRequest, image *UploadFile) (*response.NewsResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("News validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	// Upload before the insert so a storage failure never leaves a
	// half-created record.
	var imageURL *string
	if image != nil {
		url, err := s.uploader.Upload(ctx, image.Data, image.Filename, media.KindImage)
		if err != nil {
			s.log.Error("News image upload failed", zap.Error(err))
			return nil, fmt.Errorf("%w: %v", ErrUpload, err)
		}
		imageURL = &url
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	now := time.Now()
	news := &entity.News{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Title:      req.Title,
		Content:    req.Content,
		Category:   req.Category,
		ImageURL:   imageURL,
		IsActive:   isActive,
		IsTrending: req.IsTrending,
	}

	if err := s.news.Create(ctx, news); err != nil {
		s.log.Error("Failed to create news", zap.Error(err), zap.String("title", req.Title))
		return nil, fmt.Errorf("create news: %w", err)
	}

	s.log.Info("News created", zap.String("news_id", news.ID.String()))

	resp := response.FromNews(news)
	return &resp, nil
}

func (s *newsService) GetNews(ctx context.Context, q *request.NewsListQuery) (*response.PaginatedResponse[response.NewsResponse], error) {
	filter := repository.NewsFilter{
		Search:      q.Search,
		Category:    q.Category,
		IsActive:    q.IsActive,
		IsTrending:  q.IsTrending,
		CreatedFrom: q.CreatedFrom,
		CreatedTo:   q.CreatedTo,
		SortBy:      q.SortBy,
		SortDesc:    q.SortDesc,
		Limit:       q.Limit(),
		Offset:      q.Offset(),
	}

	items, err := s.news.FindAll(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list news: %w", err)
	}

	total, err := s.news.Count(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("count news: %w", err)
	}

	return response.NewPaginatedResponse(response.FromNewsList(items), q.Page, q.Limit(), total), nil
}

// GetPublicNews forces the active filter and ignores administrative ones.
func (s *newsService) GetPublicNews(ctx context.Context, q *request.NewsListQuery) (*response.PaginatedResponse[response.NewsResponse], error) {
	active := true
	public := &request.NewsListQuery{
		PaginatedRequest: q.PaginatedRequest,
		Search:           q.Search,
		Category:         q.Category,
		IsTrending:       q.IsTrending,
		IsActive:         &active,
		SortBy:           q.SortBy,
		SortDesc:         q.SortDesc,
	}
	return s.GetNews(ctx, public)
}

func (s *newsService) GetNewsByID(ctx context.Context, id uuid.UUID) (*response.NewsResponse, error) {
	news, err := s.news.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get news: %w", err)
	}
	if news == nil {
		return nil, fmt.Errorf("%w: news", ErrNotFound)
	}

	resp := response.FromNews(news)
	return &resp, nil
}

func (s *newsService) UpdateNews(ctx context.Context, id uuid.UUID, req *request.NewsUpdateRequest, image *UploadFile) (*response.NewsResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("News update validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	news, err := s.news.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get news: %w", err)
	}
	if news == nil {
		return nil, fmt.Errorf("%w: news", ErrNotFound)
	}

	if image != nil {
		url, err := s.uploader.Upload(ctx, image.Data, image.Filename, media.KindImage)
		if err != nil {
			s.log.Error("News image upload failed", zap.Error(err))
			return nil, fmt.Errorf("%w: %v", ErrUpload, err)
		}
		news.ImageURL = &url
	}

	if req.Title != nil {
		news.Title = *req.Title
	}
	if req.Content != nil {
		news.Content = *req.Content
	}
	if req.Category != nil {
		news.Category = *req.Category
	}
	if req.IsActive != nil {
		news.IsActive = *req.IsActive
	}
	if req.IsTrending != nil {
		news.IsTrending = *req.IsTrending
	}
	news.UpdatedAt = time.Now()

	if err := s.news.Update(ctx, news); err != nil {
		s.log.Error("Failed to update news", zap.Error(err), zap.String("news_id", id.String()))
		return nil, fmt.Errorf("update news: %w", err)
	}

	resp := response.FromNews(news)
	return &resp, nil
}

func (s *newsService) ToggleFlag(ctx context.Context, id uuid.UUID, flag string) (*bool, error) {
	value, err := s.news.ToggleFlag(ctx, id, flag)
	if err != nil {
		return nil, fmt.Errorf("toggle news flag: %w", err)
	}
	if value == nil {
		return nil, fmt.Errorf("%w: news", ErrNotFound)
	}
	return value, nil
}

func (s *newsService) DeleteNews(ctx context.Context, id uuid.UUID) (*response.DeleteResponse, error) {
	news, err := s.news.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get news: %w", err)
	}
	if news == nil {
		return nil, fmt.Errorf("%w: news", ErrNotFound)
	}

	if err := s.news.Delete(ctx, id); err != nil {
		return nil, fmt.Errorf("delete news: %w", err)
	}

	return &response.DeleteResponse{
		ID:    news.ID.String(),
		Title: news.Title,
	}, nil
}
