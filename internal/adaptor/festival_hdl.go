package adaptor

import (
	"net/http"

	"news-cms/internal/dto/request"
	"news-cms/internal/usecase"
	"news-cms/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type FestivalEventHandler struct {
	events usecase.FestivalEventService
	config *utils.Config
	log    *zap.Logger
}

func NewFestivalEventHandler(events usecase.FestivalEventService, config *utils.Config, log *zap.Logger) *FestivalEventHandler {
	return &FestivalEventHandler{
		events: events,
		config: config,
		log:    log.With(zap.String("handler", "festival_event")),
	}
}

func (h *FestivalEventHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.FestivalEventRequest
	if !decodeBody(w, r, &req) {
		return
	}

	item, err := h.events.CreateFestivalEvent(r.Context(), &req)
	if err != nil {
		writeServiceError(w, err, h.config, h.log)
		return
	}

	utils.ResponseCreated(w, "Festival event created", item)
}

func festivalEventListQuery(r *http.Request) *request.FestivalEventListQuery {
	sortBy, sortDesc := querySort(r)
	return &request.FestivalEventListQuery{
		PaginatedRequest: parsePagination(r),
		Search:           r.URL.Query().Get("search"),
		DayNumber:        queryInt(r, "day_number"),
		IsActive:         queryBool(r, "is_active"),
		SortBy:           sortBy,
		SortDesc:         sortDesc,
	}
}

func (h *FestivalEventHandler) List(w http.ResponseWriter, r *http.Request) {
	result, err := h.events.GetFestivalEvents(r.Context(), festivalEventListQuery(r))
	if err != nil {
		writeServiceError(w, err, h.config, h.log)
		return
	}

	utils.ResponseSuccess(w, "", result)
}

func (h *FestivalEventHandler) PublicList(w http.ResponseWriter, r *http.Request) {
	result, err := h.events.GetPublicFestivalEvents(r.Context(), festivalEventListQuery(r))
	if err != nil {
		writeServiceError(w, err, h.config, h.log)
		return
	}

	utils.ResponseSuccess(w, "", result)
}

func (h *FestivalEventHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	item, err := h.events.GetFestivalEventByID(r.Context(), id)
	if err != nil {
		writeServiceError(w, err, h.config, h.log)
		return
	}

	utils.ResponseSuccess(w, "", item)
}

func (h *FestivalEventHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var req request.FestivalEventUpdateRequest
	if !decodeBody(w, r, &req) {
		return
	}

	item, err := h.events.UpdateFestivalEvent(r.Context(), id, &req)
	if err != nil {
		writeServiceError(w, err, h.config, h.log)
		return
	}

	utils.ResponseSuccess(w, "Festival event updated", item)
}

func (h *FestivalEventHandler) ToggleActive(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	value, err := h.events.ToggleActive(r.Context(), id)
	if err != nil {
		writeServiceError(w, err, h.config, h.log)
		return
	}

	utils.ResponseSuccess(w, "Festival event active flag toggled", map[string]any{"is_active": *value})
}

func (h *FestivalEventHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	result, err := h.events.DeleteFestivalEvent(r.Context(), id)
	if err != nil {
		writeServiceError(w, err, h.config, h.log)
		return
	}

	utils.ResponseSuccess(w, "Festival event deleted", result)
}

type FestivalHighlightHandler struct {
	highlights usecase.FestivalHighlightService
	config     *utils.Config
	log        *zap.Logger
}

func NewFestivalHighlightHandler(highlights usecase.FestivalHighlightService, config *utils.Config, log *zap.Logger) *FestivalHighlightHandler {
	return &FestivalHighlightHandler{
		highlights: highlights,
		config:     config,
		log:        log.With(zap.String("handler", "festival_highlight")),
	}
}

func (h *FestivalHighlightHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.FestivalHighlightRequest
	if !decodeBody(w, r, &req) {
		return
	}

	item, err := h.highlights.CreateFestivalHighlight(r.Context(), &req)
	if err != nil {
		writeServiceError(w, err, h.config, h.log)
		return
	}

	utils.ResponseCreated(w, "Festival highlight created", item)
}

func festivalHighlightListQuery(r *http.Request) *request.FestivalHighlightListQuery {
	sortBy, sortDesc := querySort(r)
	return &request.FestivalHighlightListQuery{
		PaginatedRequest: parsePagination(r),
		Search:           r.URL.Query().Get("search"),
		IsActive:         queryBool(r, "is_active"),
		IsFeatured:       queryBool(r, "is_featured"),
		SortBy:           sortBy,
		SortDesc:         sortDesc,
	}
}

func (h *FestivalHighlightHandler) List(w http.ResponseWriter, r *http.Request) {
	result, err := h.highlights.GetFestivalHighlights(r.Context(), festivalHighlightListQuery(r))
	if err != nil {
		writeServiceError(w, err, h.config, h.log)
		return
	}

	utils.ResponseSuccess(w, "", result)
}

func (h *FestivalHighlightHandler) PublicList(w http.ResponseWriter, r *http.Request) {
	result, err := h.highlights.GetPublicFestivalHighlights(r.Context(), festivalHighlightListQuery(r))
	if err != nil {
		writeServiceError(w, err, h.config, h.log)
		return
	}

	utils.ResponseSuccess(w, "", result)
}

func (h *FestivalHighlightHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	item, err := h.highlights.GetFestivalHighlightByID(r.Context(), id)
	if err != nil {
		writeServiceError(w, err, h.config, h.log)
		return
	}

	utils.ResponseSuccess(w, "", item)
}

func (h *FestivalHighlightHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var req request.FestivalHighlightUpdateRequest
	if !decodeBody(w, r, &req) {
		return
	}

	item, err := h.highlights.UpdateFestivalHighlight(r.Context(), id, &req)
	if err != nil {
		writeServiceError(w, err, h.config, h.log)
		return
	}

	utils.ResponseSuccess(w, "Festival highlight updated", item)
}

func (h *FestivalHighlightHandler) ToggleFlag(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	value, err := h.highlights.ToggleFlag(r.Context(), id, chi.URLParam(r, "flag"))
	if err != nil {
		writeServiceError(w, err, h.config, h.log)
		return
	}

	utils.ResponseSuccess(w, "Festival highlight flag toggled", map[string]any{chi.URLParam(r, "flag"): *value})
}

func (h *FestivalHighlightHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	result, err := h.highlights.DeleteFestivalHighlight(r.Context(), id)
	if err != nil {
		writeServiceError(w, err, h.config, h.log)
		return
	}

	utils.ResponseSuccess(w, "Festival highlight deleted", result)
}
