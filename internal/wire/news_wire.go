package wire

import (
	"news-cms/internal/adaptor"
	"news-cms/internal/data/repository"
	"news-cms/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireNews(
	r chi.Router,
	newsHandler *adaptor.NewsHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	r.Get("/api/news", newsHandler.PublicList)
	r.Get("/api/news/{id}", newsHandler.Get)

	// ==================== ADMIN ROUTES ====================
	r.Route("/api/admin/news", func(r chi.Router) {
		r.Use(editorOrAdmin(repo, config, log))

		r.Get("/", newsHandler.List)
		r.Post("/", newsHandler.Create)
		r.Get("/{id}", newsHandler.Get)
		r.Put("/{id}", newsHandler.Update)
		r.Patch("/{id}/toggle/{flag:is_active|is_trending}", newsHandler.ToggleFlag)
		r.Delete("/{id}", newsHandler.Delete)
	})
}
