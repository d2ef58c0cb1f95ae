package usecase

import (
	"context"
	"fmt"
	"time"

	"news-cms/internal/data/entity"
	"news-cms/internal/data/repository"
	"news-cms/internal/dto/request"
	"news-cms/internal/dto/response"
	"news-cms/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type FestivalEventService interface {
	CreateFestivalEvent(ctx context.Context, req *request.FestivalEventRequest) (*response.FestivalEventResponse, error)
	GetFestivalEvents(ctx context.Context, q *request.FestivalEventListQuery) (*response.PaginatedResponse[response.FestivalEventResponse], error)
	GetPublicFestivalEvents(ctx context.Context, q *request.FestivalEventListQuery) (*response.PaginatedResponse[response.FestivalEventResponse], error)
	GetFestivalEventByID(ctx context.Context, id uuid.UUID) (*response.FestivalEventResponse, error)
	UpdateFestivalEvent(ctx context.Context, id uuid.UUID, req *request.FestivalEventUpdateRequest) (*response.FestivalEventResponse, error)
	ToggleActive(ctx context.Context, id uuid.UUID) (*bool, error)
	DeleteFestivalEvent(ctx context.Context, id uuid.UUID) (*response.DeleteResponse, error)
}

type festivalEventService struct {
	events repository.FestivalEventRepository
	log    *zap.Logger
}

func NewFestivalEventService(events repository.FestivalEventRepository, log *zap.Logger) FestivalEventService {
	return &festivalEventService{
		events: events,
		log:    log.With(zap.String("service", "festival_event")),
	}
}

func (s *festivalEventService) CreateFestivalEvent(ctx context.Context, req *request.FestivalEventRequest) (*response.FestivalEventResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Festival event validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	now := time.Now()
	event := &entity.FestivalEvent{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Title:        req.Title,
		Description:  req.Description,
		DayNumber:    req.DayNumber,
		StartsAt:     req.StartsAt,
		Venue:        req.Venue,
		DisplayOrder: req.DisplayOrder,
		IsActive:     isActive,
	}

	if err := s.events.Create(ctx, event); err != nil {
		s.log.Error("Failed to create festival event", zap.Error(err), zap.String("title", req.Title))
		return nil, fmt.Errorf("create festival event: %w", err)
	}

	s.log.Info("Festival event created", zap.String("festival_event_id", event.ID.String()))

	resp := response.FromFestivalEvent(event)
	return &resp, nil
}

func (s *festivalEventService) GetFestivalEvents(ctx context.Context, q *request.FestivalEventListQuery) (*response.PaginatedResponse[response.FestivalEventResponse], error) {
	filter := repository.FestivalEventFilter{
		Search:    q.Search,
		DayNumber: q.DayNumber,
		IsActive:  q.IsActive,
		SortBy:    q.SortBy,
		SortDesc:  q.SortDesc,
		Limit:     q.Limit(),
		Offset:    q.Offset(),
	}

	items, err := s.events.FindAll(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list festival events: %w", err)
	}

	total, err := s.events.Count(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("count festival events: %w", err)
	}

	return response.NewPaginatedResponse(response.FromFestivalEvents(items), q.Page, q.Limit(), total), nil
}

func (s *festivalEventService) GetPublicFestivalEvents(ctx context.Context, q *request.FestivalEventListQuery) (*response.PaginatedResponse[response.FestivalEventResponse], error) {
	active := true
	public := &request.FestivalEventListQuery{
		PaginatedRequest: q.PaginatedRequest,
		Search:           q.Search,
		DayNumber:        q.DayNumber,
		IsActive:         &active,
		SortBy:           q.SortBy,
		SortDesc:         q.SortDesc,
	}
	return s.GetFestivalEvents(ctx, public)
}

func (s *festivalEventService) GetFestivalEventByID(ctx context.Context, id uuid.UUID) (*response.FestivalEventResponse, error) {
	event, err := s.events.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get festival event: %w", err)
	}
	if event == nil {
		return nil, fmt.Errorf("%w: festival event", ErrNotFound)
	}

	resp := response.FromFestivalEvent(event)
	return &resp, nil
}

func (s *festivalEventService) UpdateFestivalEvent(ctx context.Context, id uuid.UUID, req *request.FestivalEventUpdateRequest) (*response.FestivalEventResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Festival event update validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	event, err := s.events.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get festival event: %w", err)
	}
	if event == nil {
		return nil, fmt.Errorf("%w: festival event", ErrNotFound)
	}

	if req.Title != nil {
		event.Title = *req.Title
	}
	if req.Description != nil {
		event.Description = *req.Description
	}
	if req.DayNumber != nil {
		event.DayNumber = *req.DayNumber
	}
	if req.StartsAt != nil {
		event.StartsAt = *req.StartsAt
	}
	if req.Venue != nil {
		event.Venue = *req.Venue
	}
	if req.DisplayOrder != nil {
		event.DisplayOrder = *req.DisplayOrder
	}
	if req.IsActive != nil {
		event.IsActive = *req.IsActive
	}
	event.UpdatedAt = time.Now()

	if err := s.events.Update(ctx, event); err != nil {
		s.log.Error("Failed to update festival event", zap.Error(err), zap.String("festival_event_id", id.String()))
		return nil, fmt.Errorf("update festival event: %w", err)
	}

	resp := response.FromFestivalEvent(event)
	return &resp, nil
}

func (s *festivalEventService) ToggleActive(ctx context.Context, id uuid.UUID) (*bool, error) {
	value, err := s.events.ToggleActive(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("toggle festival event: %w", err)
	}
	if value == nil {
		return nil, fmt.Errorf("%w: festival event", ErrNotFound)
	}
	return value, nil
}

func (s *festivalEventService) DeleteFestivalEvent(ctx context.Context, id uuid.UUID) (*response.DeleteResponse, error) {
	event, err := s.events.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get festival event: %w", err)
	}
	if event == nil {
		return nil, fmt.Errorf("%w: festival event", ErrNotFound)
	}

	if err := s.events.Delete(ctx, id); err != nil {
		return nil, fmt.Errorf("delete festival event: %w", err)
	}

	return &response.DeleteResponse{
		ID:    event.ID.String(),
		Title: event.Title,
	}, nil
}

type FestivalHighlightService interface {
	CreateFestivalHighlight(ctx context.Context, req *request.FestivalHighlightRequest) (*response.FestivalHighlightResponse, error)
	GetFestivalHighlights(ctx context.Context, q *request.FestivalHighlightListQuery) (*response.PaginatedResponse[response.FestivalHighlightResponse], error)
	GetPublicFestivalHighlights(ctx context.Context, q *request.FestivalHighlightListQuery) (*response.PaginatedResponse[response.FestivalHighlightResponse], error)
	GetFestivalHighlightByID(ctx context.Context, id uuid.UUID) (*response.FestivalHighlightResponse, error)
	UpdateFestivalHighlight(ctx context.Context, id uuid.UUID, req *request.FestivalHighlightUpdateRequest) (*response.FestivalHighlightResponse, error)
	ToggleFlag(ctx context.Context, id uuid.UUID, flag string) (*bool, error)
	DeleteFestivalHighlight(ctx context.Context, id uuid.UUID) (*response.DeleteResponse, error)
}

type festivalHighlightService struct {
	highlights repository.FestivalHighlightRepository
	log        *zap.Logger
}

func NewFestivalHighlightService(highlights repository.FestivalHighlightRepository, log *zap.Logger) FestivalHighlightService {
	return &festivalHighlightService{
		highlights: highlights,
		log:        log.With(zap.String("service", "festival_highlight")),
	}
}

func (s *festivalHighlightService) CreateFestivalHighlight(ctx context.Context, req *request.FestivalHighlightRequest) (*response.FestivalHighlightResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Festival highlight validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	now := time.Now()
	highlight := &entity.FestivalHighlight{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Title:        req.Title,
		Description:  req.Description,
		Icon:         req.Icon,
		DisplayOrder: req.DisplayOrder,
		IsActive:     isActive,
		IsFeatured:   req.IsFeatured,
	}

	if err := s.highlights.Create(ctx, highlight); err != nil {
		s.log.Error("Failed to create festival highlight", zap.Error(err), zap.String("title", req.Title))
		return nil, fmt.Errorf("create festival highlight: %w", err)
	}

	s.log.Info("Festival highlight created", zap.String("festival_highlight_id", highlight.ID.String()))

	resp := response.FromFestivalHighlight(highlight)
	return &resp, nil
}

func (s *festivalHighlightService) GetFestivalHighlights(ctx context.Context, q *request.FestivalHighlightListQuery) (*response.PaginatedResponse[response.FestivalHighlightResponse], error) {
	filter := repository.FestivalHighlightFilter{
		Search:     q.Search,
		IsActive:   q.IsActive,
		IsFeatured: q.IsFeatured,
		SortBy:     q.SortBy,
		SortDesc:   q.SortDesc,
		Limit:      q.Limit(),
		Offset:     q.Offset(),
	}

	items, err := s.highlights.FindAll(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list festival highlights: %w", err)
	}

	total, err := s.highlights.Count(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("count festival highlights: %w", err)
	}

	return response.NewPaginatedResponse(response.FromFestivalHighlights(items), q.Page, q.Limit(), total), nil
}

func (s *festivalHighlightService) GetPublicFestivalHighlights(ctx context.Context, q *request.FestivalHighlightListQuery) (*response.PaginatedResponse[response.FestivalHighlightResponse], error) {
	active := true
	public := &request.FestivalHighlightListQuery{
		PaginatedRequest: q.PaginatedRequest,
		Search:           q.Search,
		IsFeatured:       q.IsFeatured,
		IsActive:         &active,
		SortBy:           q.SortBy,
		SortDesc:         q.SortDesc,
	}
	return s.GetFestivalHighlights(ctx, public)
}

func (s *festivalHighlightService) GetFestivalHighlightByID(ctx context.Context, id uuid.UUID) (*response.FestivalHighlightResponse, error) {
	highlight, err := s.highlights.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get festival highlight: %w", err)
	}
	if highlight == nil {
		return nil, fmt.Errorf("%w: festival highlight", ErrNotFound)
	}

	resp := response.FromFestivalHighlight(highlight)
	return &resp, nil
}

func (s *festivalHighlightService) UpdateFestivalHighlight(ctx context.Context, id uuid.UUID, req *request.FestivalHighlightUpdateRequest) (*response.FestivalHighlightResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Festival highlight update validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	highlight, err := s.highlights.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get festival highlight: %w", err)
	}
	if highlight == nil {
		return nil, fmt.Errorf("%w: festival highlight", ErrNotFound)
	}

	if req.Title != nil {
		highlight.Title = *req.Title
	}
	if req.Description != nil {
		highlight.Description = *req.Description
	}
	if req.Icon != nil {
		highlight.Icon = *req.Icon
	}
	if req.DisplayOrder != nil {
		highlight.DisplayOrder = *req.DisplayOrder
	}
	if req.IsActive != nil {
		highlight.IsActive = *req.IsActive
	}
	if req.IsFeatured != nil {
		highlight.IsFeatured = *req.IsFeatured
	}
	highlight.UpdatedAt = time.Now()

	if err := s.highlights.Update(ctx, highlight); err != nil {
		s.log.Error("Failed to update festival highlight", zap.Error(err), zap.String("festival_highlight_id", id.String()))
		return nil, fmt.Errorf("update festival highlight: %w", err)
	}

	resp := response.FromFestivalHighlight(highlight)
	return &resp, nil
}

func (s *festivalHighlightService) ToggleFlag(ctx context.Context, id uuid.UUID, flag string) (*bool, error) {
	value, err := s.highlights.ToggleFlag(ctx, id, flag)
	if err != nil {
		return nil, fmt.Errorf("toggle festival highlight flag: %w", err)
	}
	if value == nil {
		return nil, fmt.Errorf("%w: festival highlight", ErrNotFound)
	}
	return value, nil
}

func (s *festivalHighlightService) DeleteFestivalHighlight(ctx context.Context, id uuid.UUID) (*response.DeleteResponse, error) {
	highlight, err := s.highlights.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get festival highlight: %w", err)
	}
	if highlight == nil {
		return nil, fmt.Errorf("%w: festival highlight", ErrNotFound)
	}

	if err := s.highlights.Delete(ctx, id); err != nil {
		return nil, fmt.Errorf("delete festival highlight: %w", err)
	}

	return &response.DeleteResponse{
		ID:    highlight.ID.String(),
		Title: highlight.Title,
	}, nil
}
