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

type TransportationService interface {
	CreateTransportation(ctx context.Context, req *request.TransportationRequest) (*response.TransportationResponse, error)
	GetTransportations(ctx context.Context, q *request.TransportationListQuery) (*response.PaginatedResponse[response.TransportationResponse], error)
	GetPublicTransportations(ctx context.Context, q *request.TransportationListQuery) (*response.PaginatedResponse[response.TransportationResponse], error)
	GetTransportationByID(ctx context.Context, id uuid.UUID) (*response.TransportationResponse, error)
	UpdateTransportation(ctx context.Context, id uuid.UUID, req *request.TransportationUpdateRequest) (*response.TransportationResponse, error)
	ToggleActive(ctx context.Context, id uuid.UUID) (*bool, error)
	DeleteTransportation(ctx context.Context, id uuid.UUID) (*response.DeleteResponse, error)
}

type transportationService struct {
	transports repository.TransportationRepository
	log        *zap.Logger
}

func NewTransportationService(transports repository.TransportationRepository, log *zap.Logger) TransportationService {
	return &transportationService{
		transports: transports,
		log:        log.With(zap.String("service", "transportation")),
	}
}

func (s *transportationService) CreateTransportation(ctx context.Context, req *request.TransportationRequest) (*response.TransportationResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Transportation validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	now := time.Now()
	transport := &entity.Transportation{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Title:        req.Title,
		Description:  req.Description,
		Mode:         req.Mode,
		RouteInfo:    req.RouteInfo,
		DisplayOrder: req.DisplayOrder,
		IsActive:     isActive,
	}

	if err := s.transports.Create(ctx, transport); err != nil {
		s.log.Error("Failed to create transportation", zap.Error(err), zap.String("title", req.Title))
		return nil, fmt.Errorf("create transportation: %w", err)
	}

	s.log.Info("Transportation created", zap.String("transportation_id", transport.ID.String()))

	resp := response.FromTransportation(transport)
	return &resp, nil
}

func (s *transportationService) GetTransportations(ctx context.Context, q *request.TransportationListQuery) (*response.PaginatedResponse[response.TransportationResponse], error) {
	filter := repository.TransportationFilter{
		Search:   q.Search,
		Mode:     q.Mode,
		IsActive: q.IsActive,
		SortBy:   q.SortBy,
		SortDesc: q.SortDesc,
		Limit:    q.Limit(),
		Offset:   q.Offset(),
	}

	items, err := s.transports.FindAll(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list transportations: %w", err)
	}

	total, err := s.transports.Count(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("count transportations: %w", err)
	}

	return response.NewPaginatedResponse(response.FromTransportations(items), q.Page, q.Limit(), total), nil
}

func (s *transportationService) GetPublicTransportations(ctx context.Context, q *request.TransportationListQuery) (*response.PaginatedResponse[response.TransportationResponse], error) {
	active := true
	public := &request.TransportationListQuery{
		PaginatedRequest: q.PaginatedRequest,
		Search:           q.Search,
		Mode:             q.Mode,
		IsActive:         &active,
		SortBy:           q.SortBy,
		SortDesc:         q.SortDesc,
	}
	return s.GetTransportations(ctx, public)
}

func (s *transportationService) GetTransportationByID(ctx context.Context, id uuid.UUID) (*response.TransportationResponse, error) {
	transport, err := s.transports.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get transportation: %w", err)
	}
	if transport == nil {
		return nil, fmt.Errorf("%w: transportation", ErrNotFound)
	}

	resp := response.FromTransportation(transport)
	return &resp, nil
}

func (s *transportationService) UpdateTransportation(ctx context.Context, id uuid.UUID, req *request.TransportationUpdateRequest) (*response.TransportationResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Transportation update validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	transport, err := s.transports.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get transportation: %w", err)
	}
	if transport == nil {
		return nil, fmt.Errorf("%w: transportation", ErrNotFound)
	}

	if req.Title != nil {
		transport.Title = *req.Title
	}
	if req.Description != nil {
		transport.Description = *req.Description
	}
	if req.Mode != nil {
		transport.Mode = *req.Mode
	}
	if req.RouteInfo != nil {
		transport.RouteInfo = *req.RouteInfo
	}
	if req.DisplayOrder != nil {
		transport.DisplayOrder = *req.DisplayOrder
	}
	if req.IsActive != nil {
		transport.IsActive = *req.IsActive
	}
	transport.UpdatedAt = time.Now()

	if err := s.transports.Update(ctx, transport); err != nil {
		s.log.Error("Failed to update transportation", zap.Error(err), zap.String("transportation_id", id.String()))
		return nil, fmt.Errorf("update transportation: %w", err)
	}

	resp := response.FromTransportation(transport)
	return &resp, nil
}

func (s *transportationService) ToggleActive(ctx context.Context, id uuid.UUID) (*bool, error) {
	value, err := s.transports.ToggleActive(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("toggle transportation: %w", err)
	}
	if value == nil {
		return nil, fmt.Errorf("%w: transportation", ErrNotFound)
	}
	return value, nil
}

func (s *transportationService) DeleteTransportation(ctx context.Context, id uuid.UUID) (*response.DeleteResponse, error) {
	transport, err := s.transports.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get transportation: %w", err)
	}
	if transport == nil {
		return nil, fmt.Errorf("%w: transportation", ErrNotFound)
	}

	if err := s.transports.Delete(ctx, id); err != nil {
		return nil, fmt.Errorf("delete transportation: %w", err)
	}

	return &response.DeleteResponse{
		ID:    transport.ID.String(),
		Title: transport.Title,
	}, nil
}
