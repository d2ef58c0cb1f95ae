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

type EventService interface {
	CreateEvent(ctx context.Context, req *request.EventRequest) (*response.EventResponse, error)
	GetEvents(ctx context.Context, q *request.EventListQuery) (*response.PaginatedResponse[response.EventResponse], error)
	GetPublicEvents(ctx context.Context, q *request.EventListQuery) (*response.PaginatedResponse[response.EventResponse], error)
	GetEventByID(ctx context.Context, id uuid.UUID) (*response.EventResponse, error)
	UpdateEvent(ctx context.Context, id uuid.UUID, req *request.EventUpdateRequest) (*response.EventResponse, error)
	ToggleFlag(ctx context.Context, id uuid.UUID, flag string) (*bool, error)
	DeleteEvent(ctx context.Context, id uuid.UUID) (*response.DeleteResponse, error)
}

type eventService struct {
	events repository.EventRepository
	log    *zap.Logger
}

func NewEventService(events repository.EventRepository, log *zap.Logger) EventService {
	return &eventService{
		events: events,
		log:    log.With(zap.String("service", "event")),
	}
}

func (s *eventService) CreateEvent(ctx context.Context, req *request.EventRequest) (*response.EventResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Event validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	if req.EndsAt != nil && req.EndsAt.Before(req.StartsAt) {
		return nil, fmt.Errorf("%w: ends_at must be after starts_at", ErrValidation)
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	now := time.Now()
	event := &entity.Event{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Title:       req.Title,
		Description: req.Description,
		EventType:   req.EventType,
		Venue:       req.Venue,
		StartsAt:    req.StartsAt,
		EndsAt:      req.EndsAt,
		IsActive:    isActive,
		IsFeatured:  req.IsFeatured,
	}

	if err := s.events.Create(ctx, event); err != nil {
		s.log.Error("Failed to create event", zap.Error(err), zap.String("title", req.Title))
		return nil, fmt.Errorf("create event: %w", err)
	}

	s.log.Info("Event created", zap.String("event_id", event.ID.String()))

	resp := response.FromEvent(event)
	return &resp, nil
}

func (s *eventService) GetEvents(ctx context.Context, q *request.EventListQuery) (*response.PaginatedResponse[response.EventResponse], error) {
	filter := repository.EventFilter{
		Search:     q.Search,
		EventType:  q.EventType,
		IsActive:   q.IsActive,
		IsFeatured: q.IsFeatured,
		StartsFrom: q.StartsFrom,
		StartsTo:   q.StartsTo,
		SortBy:     q.SortBy,
		SortDesc:   q.SortDesc,
		Limit:      q.Limit(),
		Offset:     q.Offset(),
	}

	items, err := s.events.FindAll(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}

	total, err := s.events.Count(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("count events: %w", err)
	}

	return response.NewPaginatedResponse(response.FromEvents(items), q.Page, q.Limit(), total), nil
}

func (s *eventService) GetPublicEvents(ctx context.Context, q *request.EventListQuery) (*response.PaginatedResponse[response.EventResponse], error) {
	active := true
	public := &request.EventListQuery{
		PaginatedRequest: q.PaginatedRequest,
		Search:           q.Search,
		EventType:        q.EventType,
		IsFeatured:       q.IsFeatured,
		StartsFrom:       q.StartsFrom,
		StartsTo:         q.StartsTo,
		IsActive:         &active,
		SortBy:           q.SortBy,
		SortDesc:         q.SortDesc,
	}
	return s.GetEvents(ctx, public)
}

func (s *eventService) GetEventByID(ctx context.Context, id uuid.UUID) (*response.EventResponse, error) {
	event, err := s.events.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get event: %w", err)
	}
	if event == nil {
		return nil, fmt.Errorf("%w: event", ErrNotFound)
	}

	resp := response.FromEvent(event)
	return &resp, nil
}

func (s *eventService) UpdateEvent(ctx context.Context, id uuid.UUID, req *request.EventUpdateRequest) (*response.EventResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Event update validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	event, err := s.events.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get event: %w", err)
	}
	if event == nil {
		return nil, fmt.Errorf("%w: event", ErrNotFound)
	}

	if req.Title != nil {
		event.Title = *req.Title
	}
	if req.Description != nil {
		event.Description = *req.Description
	}
	if req.EventType != nil {
		event.EventType = *req.EventType
	}
	if req.Venue != nil {
		event.Venue = *req.Venue
	}
	if req.StartsAt != nil {
		event.StartsAt = *req.StartsAt
	}
	if req.EndsAt != nil {
		event.EndsAt = req.EndsAt
	}
	if req.IsActive != nil {
		event.IsActive = *req.IsActive
	}
	if req.IsFeatured != nil {
		event.IsFeatured = *req.IsFeatured
	}

	if event.EndsAt != nil && event.EndsAt.Before(event.StartsAt) {
		return nil, fmt.Errorf("%w: ends_at must be after starts_at", ErrValidation)
	}
	event.UpdatedAt = time.Now()

	if err := s.events.Update(ctx, event); err != nil {
		s.log.Error("Failed to update event", zap.Error(err), zap.String("event_id", id.String()))
		return nil, fmt.Errorf("update event: %w", err)
	}

	resp := response.FromEvent(event)
	return &resp, nil
}

func (s *eventService) ToggleFlag(ctx context.Context, id uuid.UUID, flag string) (*bool, error) {
	value, err := s.events.ToggleFlag(ctx, id, flag)
	if err != nil {
		return nil, fmt.Errorf("toggle event flag: %w", err)
	}
	if value == nil {
		return nil, fmt.Errorf("%w: event", ErrNotFound)
	}
	return value, nil
}

func (s *eventService) DeleteEvent(ctx context.Context, id uuid.UUID) (*response.DeleteResponse, error) {
	event, err := s.events.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get event: %w", err)
	}
	if event == nil {
		return nil, fmt.Errorf("%w: event", ErrNotFound)
	}

	if err := s.events.Delete(ctx, id); err != nil {
		return nil, fmt.Errorf("delete event: %w", err)
	}

	return &response.DeleteResponse{
		ID:    event.ID.String(),
		Title: event.Title,
	}, nil
}
