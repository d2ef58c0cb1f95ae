package wire

import (
	"news-cms/internal/adaptor"
	"news-cms/internal/data/repository"
	"news-cms/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireNewsletter(
	r chi.Router,
	newsletterHandler *adaptor.NewsletterHandler,
	contactHandler *adaptor.ContactHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	r.Post("/api/newsletter/subscribe", newsletterHandler.Subscribe)
	r.Post("/api/newsletter/unsubscribe", newsletterHandler.Unsubscribe)
	r.Post("/api/contact", contactHandler.Submit)

	// ==================== ADMIN ROUTES ====================
	r.Route("/api/admin/newsletter", func(r chi.Router) {
		r.Use(adminOnly(repo, config, log))

		r.Get("/subscribers", newsletterHandler.List)
		r.Delete("/subscribers/{id}", newsletterHandler.Delete)
		r.Post("/broadcast", newsletterHandler.Broadcast)
	})
}
