package adaptor

import (
	"net/http"

	"news-cms/internal/dto/request"
	"news-cms/internal/usecase"
	"news-cms/pkg/utils"

	"go.uber.org/zap"
)

type TransportationHandler struct {
	transports usecase.TransportationService
	config     *utils.Config
	log        *zap.Logger
}

func NewTransportationHandler(transports usecase.TransportationService, config *utils.Config, log *zap.Logger) *TransportationHandler {
	return &TransportationHandler{
		transports: transports,
		config:     config,
		log:        log.With(zap.String("handler", "transportation")),
	}
}

func (h *TransportationHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.TransportationRequest
	if !decodeBody(w, r, &req) {
		return
	}

	item, err := h.transports.CreateTransportation(r.Context(), &req)
	if err != nil {
		writeServiceError(w, err, h.config, h.log)
		return
	}

	utils.ResponseCreated(w, "Transportation created", item)
}

func transportationListQuery(r *http.Request) *request.TransportationListQuery {
	sortBy, sortDesc := querySort(r)
	return &request.TransportationListQuery{
		PaginatedRequest: parsePagination(r),
		Search:           r.URL.Query().Get("search"),
		Mode:             queryString(r, "mode"),
		IsActive:         queryBool(r, "is_active"),
		SortBy:           sortBy,
		SortDesc:         sortDesc,
	}
}

func (h *TransportationHandler) List(w http.ResponseWriter, r *http.Request) {
	result, err := h.transports.GetTransportations(r.Context(), transportationListQuery(r))
	if err != nil {
		writeServiceError(w, err, h.config, h.log)
		return
	}

	utils.ResponseSuccess(w, "", result)
}

func (h *TransportationHandler) PublicList(w http.ResponseWriter, r *http.Request) {
	result, err := h.transports.GetPublicTransportations(r.Context(), transportationListQuery(r))
	if err != nil {
		writeServiceError(w, err, h.config, h.log)
		return
	}

	utils.ResponseSuccess(w, "", result)
}

func (h *TransportationHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	item, err := h.transports.GetTransportationByID(r.Context(), id)
	if err != nil {
		writeServiceError(w, err, h.config, h.log)
		return
	}

	utils.ResponseSuccess(w, "", item)
}

func (h *TransportationHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var req request.TransportationUpdateRequest
	if !decodeBody(w, r, &req) {
		return
	}

	item, err := h.transports.UpdateTransportation(r.Context(), id, &req)
	if err != nil {
		writeServiceError(w, err, h.config, h.log)
		return
	}

	utils.ResponseSuccess(w, "Transportation updated", item)
}

func (h *TransportationHandler) ToggleActive(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	value, err := h.transports.ToggleActive(r.Context(), id)
	if err != nil {
		writeServiceError(w, err, h.config, h.log)
		return
	}

	utils.ResponseSuccess(w, "Transportation active flag toggled", map[string]any{"is_active": *value})
}

func (h *TransportationHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	result, err := h.transports.DeleteTransportation(r.Context(), id)
	if err != nil {
		writeServiceError(w, err, h.config, h.log)
		return
	}

	utils.ResponseSuccess(w, "Transportation deleted", result)
}
