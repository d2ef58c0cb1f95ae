package wire

import (
	"news-cms/internal/adaptor"
	"news-cms/internal/data/repository"
	"news-cms/pkg/middleware"
	"news-cms/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireAuth(
	r chi.Router,
	authHandler *adaptor.AuthHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	r.Post("/api/auth/signup", authHandler.Signup)
	r.Post("/api/auth/verify-email", authHandler.VerifyEmail)
	r.Post("/api/auth/resend-code", authHandler.ResendCode)
	r.Post("/api/auth/login", authHandler.Login)
	r.Post("/api/auth/forgot-password", authHandler.ForgotPassword)
	r.Post("/api/auth/reset-password", authHandler.ResetPassword)

	// ==================== PROTECTED ROUTES ====================
	protected := middleware.RequireAuth(repo.User, config.JWT.Secret, log)
	r.With(protected).Get("/api/auth/me", authHandler.Me)
	r.With(protected).Post("/api/auth/logout", authHandler.Logout)
}
