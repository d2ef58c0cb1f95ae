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

type UserService interface {
	GetUsers(ctx context.Context, q *request.UserListQuery) (*response.PaginatedResponse[response.UserResponse], error)
	GetUserByID(ctx context.Context, id uuid.UUID) (*response.UserResponse, error)
	UpdateUser(ctx context.Context, id uuid.UUID, req *request.UserUpdateRequest) (*response.UserResponse, error)
	ToggleActive(ctx context.Context, id uuid.UUID) (*bool, error)
	DeleteUser(ctx context.Context, id uuid.UUID) (*response.DeleteResponse, error)
}

type userService struct {
	users repository.UserRepository
	log   *zap.Logger
}

func NewUserService(users repository.UserRepository, log *zap.Logger) UserService {
	return &userService{
		users: users,
		log:   log.With(zap.String("service", "user")),
	}
}

func (s *userService) GetUsers(ctx context.Context, q *request.UserListQuery) (*response.PaginatedResponse[response.UserResponse], error) {
	filter := repository.UserFilter{
		Search:   q.Search,
		Role:     q.Role,
		IsActive: q.IsActive,
		Limit:    q.Limit(),
		Offset:   q.Offset(),
	}

	users, err := s.users.FindAll(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}

	total, err := s.users.Count(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("count users: %w", err)
	}

	return response.NewPaginatedResponse(response.FromUsers(users), q.Page, q.Limit(), total), nil
}

func (s *userService) GetUserByID(ctx context.Context, id uuid.UUID) (*response.UserResponse, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	if user == nil {
		return nil, fmt.Errorf("%w: user", ErrNotFound)
	}

	resp := response.FromUser(user)
	return &resp, nil
}

func (s *userService) UpdateUser(ctx context.Context, id uuid.UUID, req *request.UserUpdateRequest) (*response.UserResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("User update validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	if user == nil {
		return nil, fmt.Errorf("%w: user", ErrNotFound)
	}

	// Apply only the supplied fields.
	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.Email != nil {
		user.Email = *req.Email
	}
	if req.Role != nil {
		if !entity.ValidRole(*req.Role) {
			return nil, fmt.Errorf("%w: unknown role", ErrValidation)
		}
		user.Role = entity.UserRole(*req.Role)
	}
	if req.IsActive != nil {
		user.IsActive = *req.IsActive
	}
	user.UpdatedAt = time.Now()

	if err := s.users.Update(ctx, user); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, fmt.Errorf("%w: email already registered", ErrConflict)
		}
		s.log.Error("Failed to update user", zap.Error(err), zap.String("user_id", id.String()))
		return nil, fmt.Errorf("update user: %w", err)
	}

	resp := response.FromUser(user)
	return &resp, nil
}

func (s *userService) ToggleActive(ctx context.Context, id uuid.UUID) (*bool, error) {
	value, err := s.users.ToggleActive(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("toggle user active: %w", err)
	}
	if value == nil {
		return nil, fmt.Errorf("%w: user", ErrNotFound)
	}
	return value, nil
}

func (s *userService) DeleteUser(ctx context.Context, id uuid.UUID) (*response.DeleteResponse, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	if user == nil {
		return nil, fmt.Errorf("%w: user", ErrNotFound)
	}

	if err := s.users.Delete(ctx, id); err != nil {
		return nil, fmt.Errorf("delete user: %w", err)
	}

	return &response.DeleteResponse{
		ID:    user.ID.String(),
		Email: user.Email,
	}, nil
}
