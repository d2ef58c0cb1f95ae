package wire

import (
	"news-cms/internal/adaptor"
	"news-cms/internal/data/repository"
	"news-cms/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireTransportation(
	r chi.Router,
	transportHandler *adaptor.TransportationHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	r.Get("/api/transportations", transportHandler.PublicList)
	r.Get("/api/transportations/{id}", transportHandler.Get)

	// ==================== ADMIN ROUTES ====================
	r.Route("/api/admin/transportations", func(r chi.Router) {
		r.Use(editorOrAdmin(repo, config, log))

		r.Get("/", transportHandler.List)
		r.Post("/", transportHandler.Create)
		r.Get("/{id}", transportHandler.Get)
		r.Put("/{id}", transportHandler.Update)
		r.Patch("/{id}/toggle-active", transportHandler.ToggleActive)
		r.Delete("/{id}", transportHandler.Delete)
	})
}
