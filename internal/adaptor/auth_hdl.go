package adaptor

import (
	"net/http"

	"news-cms/internal/dto/request"
	"news-cms/internal/usecase"
	"news-cms/pkg/middleware"
	"news-cms/pkg/utils"

	"go.uber.org/zap"
)

type AuthHandler struct {
	auth   usecase.AuthService
	config *utils.Config
	log    *zap.Logger
}

func NewAuthHandler(auth usecase.AuthService, config *utils.Config, log *zap.Logger) *AuthHandler {
	return &AuthHandler{
		auth:   auth,
		config: config,
		log:    log.With(zap.String("handler", "auth")),
	}
}

func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req request.SignupRequest
	if !decodeBody(w, r, &req) {
		return
	}

	user, err := h.auth.Signup(r.Context(), &req)
	if err != nil {
		writeServiceError(w, err, h.config, h.log)
		return
	}

	utils.ResponseCreated(w, "Account created, check your email for the verification code", user)
}

func (h *AuthHandler) VerifyEmail(w http.ResponseWriter, r *http.Request) {
	var req request.VerifyEmailRequest
	if !decodeBody(w, r, &req) {
		return
	}

	if err := h.auth.VerifyEmail(r.Context(), &req); err != nil {
		writeServiceError(w, err, h.config, h.log)
		return
	}

	utils.ResponseSuccess(w, "Email verified", nil)
}

func (h *AuthHandler) ResendCode(w http.ResponseWriter, r *http.Request) {
	var req request.ResendCodeRequest
	if !decodeBody(w, r, &req) {
		return
	}

	if err := h.auth.ResendCode(r.Context(), &req); err != nil {
		writeServiceError(w, err, h.config, h.log)
		return
	}

	utils.ResponseSuccess(w, "Verification code sent", nil)
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req request.LoginRequest
	if !decodeBody(w, r, &req) {
		return
	}

	auth, err := h.auth.Login(r.Context(), &req)
	if err != nil {
		writeServiceError(w, err, h.config, h.log)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     middleware.TokenCookieName,
		Value:    auth.Token,
		Path:     "/",
		Expires:  auth.ExpiresAt,
		HttpOnly: true,
		Secure:   h.config.Production(),
		SameSite: http.SameSiteLaxMode,
	})

	utils.ResponseSuccess(w, "Login successful", auth)
}

func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.TokenCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.config.Production(),
		SameSite: http.SameSiteLaxMode,
	})

	utils.ResponseSuccess(w, "Logged out", nil)
}

func (h *AuthHandler) ForgotPassword(w http.ResponseWriter, r *http.Request) {
	var req request.ForgotPasswordRequest
	if !decodeBody(w, r, &req) {
		return
	}

	if err := h.auth.ForgotPassword(r.Context(), &req); err != nil {
		writeServiceError(w, err, h.config, h.log)
		return
	}

	// Same answer whether or not the account exists.
	utils.ResponseSuccess(w, "If the email is registered, a reset link has been sent", nil)
}

func (h *AuthHandler) ResetPassword(w http.ResponseWriter, r *http.Request) {
	var req request.ResetPasswordRequest
	if !decodeBody(w, r, &req) {
		return
	}

	if err := h.auth.ResetPassword(r.Context(), &req); err != nil {
		writeServiceError(w, err, h.config, h.log)
		return
	}

	utils.ResponseSuccess(w, "Password updated, you can log in now", nil)
}

func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	user, err := h.auth.Me(r.Context(), userID)
	if err != nil {
		writeServiceError(w, err, h.config, h.log)
		return
	}

	utils.ResponseSuccess(w, "", user)
}
