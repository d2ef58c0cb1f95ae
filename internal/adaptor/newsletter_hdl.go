package adaptor

import (
	"net/http"

	"news-cms/internal/dto/request"
	"news-cms/internal/usecase"
	"news-cms/pkg/utils"

	"go.uber.org/zap"
)

type NewsletterHandler struct {
	newsletter usecase.NewsletterService
	config     *utils.Config
	log        *zap.Logger
}

func NewNewsletterHandler(newsletter usecase.NewsletterService, config *utils.Config, log *zap.Logger) *NewsletterHandler {
	return &NewsletterHandler{
		newsletter: newsletter,
		config:     config,
		log:        log.With(zap.String("handler", "newsletter")),
	}
}

func (h *NewsletterHandler) Subscribe(w http.ResponseWriter, r *http.Request) {
	var req request.SubscribeRequest
	if !decodeBody(w, r, &req) {
		return
	}

	sub, err := h.newsletter.Subscribe(r.Context(), &req)
	if err != nil {
		writeServiceError(w, err, h.config, h.log)
		return
	}

	utils.ResponseCreated(w, "Subscribed to the newsletter", sub)
}

func (h *NewsletterHandler) Unsubscribe(w http.ResponseWriter, r *http.Request) {
	var req request.UnsubscribeRequest
	if !decodeBody(w, r, &req) {
		return
	}

	sub, err := h.newsletter.Unsubscribe(r.Context(), &req)
	if err != nil {
		writeServiceError(w, err, h.config, h.log)
		return
	}

	utils.ResponseSuccess(w, "Unsubscribed from the newsletter", sub)
}

func (h *NewsletterHandler) List(w http.ResponseWriter, r *http.Request) {
	q := &request.SubscriberListQuery{
		PaginatedRequest: parsePagination(r),
		Search:           r.URL.Query().Get("search"),
		IsActive:         queryBool(r, "is_active"),
	}

	result, err := h.newsletter.GetSubscribers(r.Context(), q)
	if err != nil {
		writeServiceError(w, err, h.config, h.log)
		return
	}

	utils.ResponseSuccess(w, "", result)
}

func (h *NewsletterHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	result, err := h.newsletter.DeleteSubscriber(r.Context(), id)
	if err != nil {
		writeServiceError(w, err, h.config, h.log)
		return
	}

	utils.ResponseSuccess(w, "Subscriber deleted", result)
}

func (h *NewsletterHandler) Broadcast(w http.ResponseWriter, r *http.Request) {
	var req request.BroadcastRequest
	if !decodeBody(w, r, &req) {
		return
	}

	result, err := h.newsletter.Broadcast(r.Context(), &req)
	if err != nil {
		writeServiceError(w, err, h.config, h.log)
		return
	}

	utils.ResponseSuccess(w, "Broadcast sent", result)
}
