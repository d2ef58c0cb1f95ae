package adaptor

import (
	"net/http"

	"news-cms/internal/dto/request"
	"news-cms/internal/usecase"
	"news-cms/pkg/utils"

	"go.uber.org/zap"
)

type UserHandler struct {
	users  usecase.UserService
	config *utils.Config
	log    *zap.Logger
}

func NewUserHandler(users usecase.UserService, config *utils.Config, log *zap.Logger) *UserHandler {
	return &UserHandler{
		users:  users,
		config: config,
		log:    log.With(zap.String("handler", "user")),
	}
}

func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	q := &request.UserListQuery{
		PaginatedRequest: parsePagination(r),
		Search:           r.URL.Query().Get("search"),
		Role:             queryString(r, "role"),
		IsActive:         queryBool(r, "is_active"),
	}

	result, err := h.users.GetUsers(r.Context(), q)
	if err != nil {
		writeServiceError(w, err, h.config, h.log)
		return
	}

	utils.ResponseSuccess(w, "", result)
}

func (h *UserHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	user, err := h.users.GetUserByID(r.Context(), id)
	if err != nil {
		writeServiceError(w, err, h.config, h.log)
		return
	}

	utils.ResponseSuccess(w, "", user)
}

func (h *UserHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var req request.UserUpdateRequest
	if !decodeBody(w, r, &req) {
		return
	}

	user, err := h.users.UpdateUser(r.Context(), id, &req)
	if err != nil {
		writeServiceError(w, err, h.config, h.log)
		return
	}

	utils.ResponseSuccess(w, "User updated", user)
}

func (h *UserHandler) ToggleActive(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	value, err := h.users.ToggleActive(r.Context(), id)
	if err != nil {
		writeServiceError(w, err, h.config, h.log)
		return
	}

	utils.ResponseSuccess(w, "User active flag toggled", map[string]any{"is_active": *value})
}

func (h *UserHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	result, err := h.users.DeleteUser(r.Context(), id)
	if err != nil {
		writeServiceError(w, err, h.config, h.log)
		return
	}

	utils.ResponseSuccess(w, "User deleted", result)
}
