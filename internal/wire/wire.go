package wire

import (
	"net/http"

	"news-cms/internal/adaptor"
	"news-cms/internal/data/repository"
	"news-cms/internal/usecase"
	"news-cms/pkg/mailer"
	"news-cms/pkg/media"
	"news-cms/pkg/middleware"
	"news-cms/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// App holds the wired router.
type App struct {
	Router *chi.Mux
}

// Wiring builds the service and handler graph and mounts every route group.
func Wiring(repo *repository.Repository, config *utils.Config, mail mailer.Mailer, uploader media.Uploader, logger *zap.Logger) *App {
	service := usecase.NewService(repo, config, mail, uploader, logger)
	handler := adaptor.NewHandler(service, config, logger)

	router := setupRouter(handler, repo, config, logger)

	return &App{
		Router: router,
	}
}

func setupRouter(
	handler *adaptor.Handler,
	repo *repository.Repository,
	config *utils.Config,
	logger *zap.Logger,
) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS())

	wireAuth(r, handler.Auth, repo, config, logger)
	wireUser(r, handler.User, repo, config, logger)
	wireNews(r, handler.News, repo, config, logger)
	wireBlog(r, handler.Blog, repo, config, logger)
	wireEvent(r, handler.Event, repo, config, logger)
	wireFestival(r, handler.FestivalEvent, handler.FestivalHighlight, repo, config, logger)
	wireTransportation(r, handler.Transportation, repo, config, logger)
	wireNewsletter(r, handler.Newsletter, handler.Contact, repo, config, logger)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	return r
}

// editorOrAdmin gates content management routes.
func editorOrAdmin(repo *repository.Repository, config *utils.Config, log *zap.Logger) func(http.Handler) http.Handler {
	return middleware.RequireAuth(repo.User, config.JWT.Secret, log, "editor", "admin")
}

// adminOnly gates user management and broadcast routes.
func adminOnly(repo *repository.Repository, config *utils.Config, log *zap.Logger) func(http.Handler) http.Handler {
	return middleware.RequireAuth(repo.User, config.JWT.Secret, log, "admin")
}
