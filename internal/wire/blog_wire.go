package wire

import (
	"news-cms/internal/adaptor"
	"news-cms/internal/data/repository"
	"news-cms/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireBlog(
	r chi.Router,
	blogHandler *adaptor.BlogHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	r.Get("/api/blogs", blogHandler.PublicList)
	r.Get("/api/blogs/{id}", blogHandler.Get)

	// ==================== ADMIN ROUTES ====================
	r.Route("/api/admin/blogs", func(r chi.Router) {
		r.Use(editorOrAdmin(repo, config, log))

		r.Get("/", blogHandler.List)
		r.Post("/", blogHandler.Create)
		r.Get("/{id}", blogHandler.Get)
		r.Put("/{id}", blogHandler.Update)
		r.Patch("/{id}/toggle/{flag:is_active|is_featured}", blogHandler.ToggleFlag)
		r.Delete("/{id}", blogHandler.Delete)
	})
}
