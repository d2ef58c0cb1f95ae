package adaptor

import (
	"net/http"

	"news-cms/internal/dto/request"
	"news-cms/internal/usecase"
	"news-cms/pkg/utils"

	"go.uber.org/zap"
)

type ContactHandler struct {
	contact usecase.ContactService
	config  *utils.Config
	log     *zap.Logger
}

func NewContactHandler(contact usecase.ContactService, config *utils.Config, log *zap.Logger) *ContactHandler {
	return &ContactHandler{
		contact: contact,
		config:  config,
		log:     log.With(zap.String("handler", "contact")),
	}
}

func (h *ContactHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req request.ContactRequest
	if !decodeBody(w, r, &req) {
		return
	}

	if err := h.contact.SubmitContact(r.Context(), &req); err != nil {
		writeServiceError(w, err, h.config, h.log)
		return
	}

	utils.ResponseSuccess(w, "Message sent, we will get back to you soon", nil)
}
