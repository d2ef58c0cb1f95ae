package wire

import (
	"news-cms/internal/adaptor"
	"news-cms/internal/data/repository"
	"news-cms/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireFestival(
	r chi.Router,
	eventHandler *adaptor.FestivalEventHandler,
	highlightHandler *adaptor.FestivalHighlightHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	r.Get("/api/festival/events", eventHandler.PublicList)
	r.Get("/api/festival/events/{id}", eventHandler.Get)
	r.Get("/api/festival/highlights", highlightHandler.PublicList)
	r.Get("/api/festival/highlights/{id}", highlightHandler.Get)

	// ==================== ADMIN ROUTES ====================
	r.Route("/api/admin/festival/events", func(r chi.Router) {
		r.Use(editorOrAdmin(repo, config, log))

		r.Get("/", eventHandler.List)
		r.Post("/", eventHandler.Create)
		r.Get("/{id}", eventHandler.Get)
		r.Put("/{id}", eventHandler.Update)
		r.Patch("/{id}/toggle-active", eventHandler.ToggleActive)
		r.Delete("/{id}", eventHandler.Delete)
	})

	r.Route("/api/admin/festival/highlights", func(r chi.Router) {
		r.Use(editorOrAdmin(repo, config, log))

		r.Get("/", highlightHandler.List)
		r.Post("/", highlightHandler.Create)
		r.Get("/{id}", highlightHandler.Get)
		r.Put("/{id}", highlightHandler.Update)
		r.Patch("/{id}/toggle/{flag:is_active|is_featured}", highlightHandler.ToggleFlag)
		r.Delete("/{id}", highlightHandler.Delete)
	})
}
