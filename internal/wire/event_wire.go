package wire

import (
	"news-cms/internal/adaptor"
	"news-cms/internal/data/repository"
	"news-cms/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireEvent(
	r chi.Router,
	eventHandler *adaptor.EventHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	r.Get("/api/events", eventHandler.PublicList)
	r.Get("/api/events/{id}", eventHandler.Get)

	// ==================== ADMIN ROUTES ====================
	r.Route("/api/admin/events", func(r chi.Router) {
		r.Use(editorOrAdmin(repo, config, log))

		r.Get("/", eventHandler.List)
		r.Post("/", eventHandler.Create)
		r.Get("/{id}", eventHandler.Get)
		r.Put("/{id}", eventHandler.Update)
		r.Patch("/{id}/toggle/{flag:is_active|is_featured}", eventHandler.ToggleFlag)
		r.Delete("/{id}", eventHandler.Delete)
	})
}
