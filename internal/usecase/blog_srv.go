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

type BlogService interface {
	CreateBlog(ctx context.Context, req *request.BlogRequest, pdf *UploadFile) (*response.BlogResponse, error)
	GetBlogs(ctx context.Context, q *request.BlogListQuery) (*response.PaginatedResponse[response.BlogResponse], error)
	GetPublicBlogs(ctx context.Context, q *request.BlogListQuery) (*response.PaginatedResponse[response.BlogResponse], error)
	GetBlogByID(ctx context.Context, id uuid.UUID) (*response.BlogResponse, error)
	UpdateBlog(ctx context.Context, id uuid.UUID, req *request.BlogUpdateRequest, pdf *UploadFile) (*response.BlogResponse, error)
	ToggleFlag(ctx context.Context, id uuid.UUID, flag string) (*bool, error)
	DeleteBlog(ctx context.Context, id uuid.UUID) (*response.DeleteResponse, error)
}

type blogService struct {
	blogs    repository.BlogRepository
	uploader media.Uploader
	log      *zap.Logger
}

func NewBlogService(blogs repository.BlogRepository, uploader media.Uploader, log *zap.Logger) BlogService {
	return &blogService{
		blogs:    blogs,
		uploader: uploader,
		log:      log.With(zap.String("service", "blog")),
	}
}

func (s *blogService) CreateBlog(ctx context.Context, req *request.BlogRequest, pdf *UploadFile) (*response.BlogResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Blog validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	var pdfURL *string
	if pdf != nil {
		url, err := s.uploader.Upload(ctx, pdf.Data, pdf.Filename, media.KindDocument)
		if err != nil {
			s.log.Error("Blog PDF upload failed", zap.Error(err))
			return nil, fmt.Errorf("%w: %v", ErrUpload, err)
		}
		pdfURL = &url
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	now := time.Now()
	blog := &entity.Blog{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Title:      req.Title,
		Content:    req.Content,
		Category:   req.Category,
		Author:     req.Author,
		PDFURL:     pdfURL,
		IsActive:   isActive,
		IsFeatured: req.IsFeatured,
	}

	if err := s.blogs.Create(ctx, blog); err != nil {
		s.log.Error("Failed to create blog", zap.Error(err), zap.String("title", req.Title))
		return nil, fmt.Errorf("create blog: %w", err)
	}

	s.log.Info("Blog created", zap.String("blog_id", blog.ID.String()))

	resp := response.FromBlog(blog)
	return &resp, nil
}

func (s *blogService) GetBlogs(ctx context.Context, q *request.BlogListQuery) (*response.PaginatedResponse[response.BlogResponse], error) {
	filter := repository.BlogFilter{
		Search:      q.Search,
		Category:    q.Category,
		IsActive:    q.IsActive,
		IsFeatured:  q.IsFeatured,
		CreatedFrom: q.CreatedFrom,
		CreatedTo:   q.CreatedTo,
		SortBy:      q.SortBy,
		SortDesc:    q.SortDesc,
		Limit:       q.Limit(),
		Offset:      q.Offset(),
	}

	items, err := s.blogs.FindAll(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list blogs: %w", err)
	}

	total, err := s.blogs.Count(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("count blogs: %w", err)
	}

	return response.NewPaginatedResponse(response.FromBlogs(items), q.Page, q.Limit(), total), nil
}

func (s *blogService) GetPublicBlogs(ctx context.Context, q *request.BlogListQuery) (*response.PaginatedResponse[response.BlogResponse], error) {
	active := true
	public := &request.BlogListQuery{
		PaginatedRequest: q.PaginatedRequest,
		Search:           q.Search,
		Category:         q.Category,
		IsFeatured:       q.IsFeatured,
		IsActive:         &active,
		SortBy:           q.SortBy,
		SortDesc:         q.SortDesc,
	}
	return s.GetBlogs(ctx, public)
}

func (s *blogService) GetBlogByID(ctx context.Context, id uuid.UUID) (*response.BlogResponse, error) {
	blog, err := s.blogs.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get blog: %w", err)
	}
	if blog == nil {
		return nil, fmt.Errorf("%w: blog", ErrNotFound)
	}

	resp := response.FromBlog(blog)
	return &resp, nil
}

func (s *blogService) UpdateBlog(ctx context.Context, id uuid.UUID, req *request.BlogUpdateRequest, pdf *UploadFile) (*response.BlogResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Blog update validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	blog, err := s.blogs.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get blog: %w", err)
	}
	if blog == nil {
		return nil, fmt.Errorf("%w: blog", ErrNotFound)
	}

	if pdf != nil {
		url, err := s.uploader.Upload(ctx, pdf.Data, pdf.Filename, media.KindDocument)
		if err != nil {
			s.log.Error("Blog PDF upload failed", zap.Error(err))
			return nil, fmt.Errorf("%w: %v", ErrUpload, err)
		}
		blog.PDFURL = &url
	}

	if req.Title != nil {
		blog.Title = *req.Title
	}
	if req.Content != nil {
		blog.Content = *req.Content
	}
	if req.Category != nil {
		blog.Category = *req.Category
	}
	if req.Author != nil {
		blog.Author = req.Author
	}
	if req.IsActive != nil {
		blog.IsActive = *req.IsActive
	}
	if req.IsFeatured != nil {
		blog.IsFeatured = *req.IsFeatured
	}
	blog.UpdatedAt = time.Now()

	if err := s.blogs.Update(ctx, blog); err != nil {
		s.log.Error("Failed to update blog", zap.Error(err), zap.String("blog_id", id.String()))
		return nil, fmt.Errorf("update blog: %w", err)
	}

	resp := response.FromBlog(blog)
	return &resp, nil
}

func (s *blogService) ToggleFlag(ctx context.Context, id uuid.UUID, flag string) (*bool, error) {
	value, err := s.blogs.ToggleFlag(ctx, id, flag)
	if err != nil {
		return nil, fmt.Errorf("toggle blog flag: %w", err)
	}
	if value == nil {
		return nil, fmt.Errorf("%w: blog", ErrNotFound)
	}
	return value, nil
}

func (s *blogService) DeleteBlog(ctx context.Context, id uuid.UUID) (*response.DeleteResponse, error) {
	blog, err := s.blogs.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get blog: %w", err)
	}
	if blog == nil {
		return nil, fmt.Errorf("%w: blog", ErrNotFound)
	}

	if err := s.blogs.Delete(ctx, id); err != nil {
		return nil, fmt.Errorf("delete blog: %w", err)
	}

	return &response.DeleteResponse{
		ID:    blog.ID.String(),
		Title: blog.Title,
	}, nil
}
