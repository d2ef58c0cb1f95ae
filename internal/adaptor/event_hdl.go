package adaptor

import (
	"net/http"

	"news-cms/internal/dto/request"
	"news-cms/internal/usecase"
	"news-cms/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type EventHandler struct {
	events usecase.EventService
	config *utils.Config
	log    *zap.Logger
}

func NewEventHandler(events usecase.EventService, config *utils.Config, log *zap.Logger) *EventHandler {
	return &EventHandler{
		events: events,
		config: config,
		log:    log.With(zap.String("handler", "event")),
	}
}

func (h *EventHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.EventRequest
	if !decodeBody(w, r, &req) {
		return
	}

	item, err := h.events.CreateEvent(r.Context(), &req)
	if err != nil {
		writeServiceError(w, err, h.config, h.log)
		return
	}

	utils.ResponseCreated(w, "Event created", item)
}

func eventListQuery(r *http.Request) *request.EventListQuery {
	sortBy, sortDesc := querySort(r)
	return &request.EventListQuery{
		PaginatedRequest: parsePagination(r),
		Search:           r.URL.Query().Get("search"),
		EventType:        queryString(r, "event_type"),
		IsActive:         queryBool(r, "is_active"),
		IsFeatured:       queryBool(r, "is_featured"),
		StartsFrom:       queryTime(r, "starts_from"),
		StartsTo:         queryTime(r, "starts_to"),
		SortBy:           sortBy,
		SortDesc:         sortDesc,
	}
}

func (h *EventHandler) List(w http.ResponseWriter, r *http.Request) {
	result, err := h.events.GetEvents(r.Context(), eventListQuery(r))
	if err != nil {
		writeServiceError(w, err, h.config, h.log)
		return
	}

	utils.ResponseSuccess(w, "", result)
}

func (h *EventHandler) PublicList(w http.ResponseWriter, r *http.Request) {
	result, err := h.events.GetPublicEvents(r.Context(), eventListQuery(r))
	if err != nil {
		writeServiceError(w, err, h.config, h.log)
		return
	}

	utils.ResponseSuccess(w, "", result)
}

func (h *EventHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	item, err := h.events.GetEventByID(r.Context(), id)
	if err != nil {
		writeServiceError(w, err, h.config, h.log)
		return
	}

	utils.ResponseSuccess(w, "", item)
}

func (h *EventHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var req request.EventUpdateRequest
	if !decodeBody(w, r, &req) {
		return
	}

	item, err := h.events.UpdateEvent(r.Context(), id, &req)
	if err != nil {
		writeServiceError(w, err, h.config, h.log)
		return
	}

	utils.ResponseSuccess(w, "Event updated", item)
}

func (h *EventHandler) ToggleFlag(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	value, err := h.events.ToggleFlag(r.Context(), id, chi.URLParam(r, "flag"))
	if err != nil {
		writeServiceError(w, err, h.config, h.log)
		return
	}

	utils.ResponseSuccess(w, "Event flag toggled", map[string]any{chi.URLParam(r, "flag"): *value})
}

func (h *EventHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	result, err := h.events.DeleteEvent(r.Context(), id)
	if err != nil {
		writeServiceError(w, err, h.config, h.log)
		return
	}

	utils.ResponseSuccess(w, "Event deleted", result)
}
