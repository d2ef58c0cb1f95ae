package middleware

import (
	"net/http"
	"strings"

	"news-cms/internal/data/repository"
	"news-cms/pkg/utils"

	"go.uber.org/zap"
)

// TokenCookieName is the cookie fallback for clients that do not send a
// bearer header.
const TokenCookieName = "token"

// extractToken pulls the session token from the Authorization header or
// the token cookie, header first.
func extractToken(r *http.Request) string {
	authHeader := r.Header.Get("Authorization")
	if authHeader != "" {
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) == 2 && parts[0] == "Bearer" {
			return parts[1]
		}
		return ""
	}

	cookie, err := r.Cookie(TokenCookieName)
	if err != nil {
		return ""
	}
	return cookie.Value
}

// RequireAuth validates the session token, loads the user, and optionally
// gates the route by role. With an empty allow-list any authenticated
// active user passes.
func RequireAuth(userRepo repository.UserRepository, secret string, logger *zap.Logger, roles ...string) func(http.Handler) http.Handler {
	allowed := make(map[string]bool, len(roles))
	for _, role := range roles {
		allowed[role] = true
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := extractToken(r)
			if token == "" {
				utils.ResponseUnauthorized(w, "Missing authorization token")
				return
			}

			claims, err := utils.VerifySessionToken(token, secret)
			if err != nil {
				logger.Warn("Invalid or expired session token", zap.String("path", r.URL.Path))
				utils.ResponseUnauthorized(w, "Invalid or expired token")
				return
			}

			userID, err := utils.ParseUUID(claims.UserID)
			if err != nil {
				logger.Warn("Malformed user id in token", zap.String("uid", claims.UserID))
				utils.ResponseUnauthorized(w, "Invalid or expired token")
				return
			}

			user, err := userRepo.FindByID(r.Context(), userID)
			if err != nil {
				logger.Error("Failed to load user for auth",
					zap.Error(err),
					zap.String("user_id", claims.UserID))
				utils.ResponseInternalError(w, "Internal server error")
				return
			}

			if user == nil || !user.IsActive {
				logger.Warn("Auth rejected: missing or inactive user",
					zap.String("user_id", claims.UserID))
				utils.ResponseUnauthorized(w, "Account not found or deactivated")
				return
			}

			if len(allowed) > 0 && !allowed[string(user.Role)] {
				logger.Warn("Role gate rejected request",
					zap.String("user_id", user.ID.String()),
					zap.String("role", string(user.Role)),
					zap.String("path", r.URL.Path))
				utils.ResponseForbidden(w, "Insufficient permissions")
				return
			}

			ctx := utils.SetUserContext(r.Context(), user.ID, string(user.Role))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// OptionalAuth performs the same derivation as RequireAuth but never
// rejects: on any failure the request proceeds unauthenticated.
func OptionalAuth(userRepo repository.UserRepository, secret string, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := extractToken(r)
			if token == "" {
				next.ServeHTTP(w, r)
				return
			}

			claims, err := utils.VerifySessionToken(token, secret)
			if err != nil {
				next.ServeHTTP(w, r)
				return
			}

			userID, err := utils.ParseUUID(claims.UserID)
			if err != nil {
				next.ServeHTTP(w, r)
				return
			}

			user, err := userRepo.FindByID(r.Context(), userID)
			if err != nil || user == nil || !user.IsActive {
				next.ServeHTTP(w, r)
				return
			}

			ctx := utils.SetUserContext(r.Context(), user.ID, string(user.Role))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
