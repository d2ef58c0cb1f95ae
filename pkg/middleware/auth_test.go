package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"news-cms/internal/data/entity"
	"news-cms/internal/data/repository"
	"news-cms/pkg/utils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const testSecret = "test-secret"

// fakeUserRepo serves a fixed set of users by id.
type fakeUserRepo struct {
	users map[uuid.UUID]*entity.User
}

func (f *fakeUserRepo) Create(ctx context.Context, user *entity.User) error { return nil }
func (f *fakeUserRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	return f.users[id], nil
}
func (f *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	return nil, nil
}
func (f *fakeUserRepo) FindByResetTokenHash(ctx context.Context, digest string) (*entity.User, error) {
	return nil, nil
}
func (f *fakeUserRepo) FindAll(ctx context.Context, q repository.UserFilter) ([]*entity.User, error) {
	return nil, nil
}
func (f *fakeUserRepo) Count(ctx context.Context, q repository.UserFilter) (int64, error) {
	return 0, nil
}
func (f *fakeUserRepo) Update(ctx context.Context, user *entity.User) error { return nil }
func (f *fakeUserRepo) ToggleActive(ctx context.Context, id uuid.UUID) (*bool, error) {
	return nil, nil
}
func (f *fakeUserRepo) Delete(ctx context.Context, id uuid.UUID) error { return nil }

func newTestUser(role entity.UserRole, active bool) *entity.User {
	return &entity.User{
		Base:       entity.Base{ID: uuid.New()},
		Name:       "Test User",
		Email:      "test@example.com",
		Role:       role,
		IsVerified: true,
		IsActive:   active,
	}
}

func signToken(t *testing.T, userID uuid.UUID, role string) string {
	t.Helper()
	token, err := utils.GenerateSessionToken(userID.String(), role, testSecret, time.Hour)
	require.NoError(t, err)
	return token
}

// okHandler records whether the chain reached it and what identity it saw.
func okHandler(reached *bool, gotUserID *uuid.UUID) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*reached = true
		if id, ok := utils.GetUserIDFromContext(r.Context()); ok && gotUserID != nil {
			*gotUserID = id
		}
		w.WriteHeader(http.StatusOK)
	})
}

func TestRequireAuth(t *testing.T) {
	admin := newTestUser(entity.RoleAdmin, true)
	editor := newTestUser(entity.RoleEditor, true)
	inactive := newTestUser(entity.RoleEditor, false)

	repo := &fakeUserRepo{users: map[uuid.UUID]*entity.User{
		admin.ID:    admin,
		editor.ID:   editor,
		inactive.ID: inactive,
	}}
	logger := zap.NewNop()

	t.Run("missing token", func(t *testing.T) {
		var reached bool
		mw := RequireAuth(repo, testSecret, logger)
		rec := httptest.NewRecorder()
		mw(okHandler(&reached, nil)).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.False(t, reached)
	})

	t.Run("invalid token", func(t *testing.T) {
		var reached bool
		mw := RequireAuth(repo, testSecret, logger)
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer not-a-token")
		rec := httptest.NewRecorder()
		mw(okHandler(&reached, nil)).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.False(t, reached)
	})

	t.Run("unknown user", func(t *testing.T) {
		var reached bool
		mw := RequireAuth(repo, testSecret, logger)
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer "+signToken(t, uuid.New(), "admin"))
		rec := httptest.NewRecorder()
		mw(okHandler(&reached, nil)).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.False(t, reached)
	})

	t.Run("inactive user", func(t *testing.T) {
		var reached bool
		mw := RequireAuth(repo, testSecret, logger)
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer "+signToken(t, inactive.ID, "editor"))
		rec := httptest.NewRecorder()
		mw(okHandler(&reached, nil)).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.False(t, reached)
	})

	t.Run("role not allowed", func(t *testing.T) {
		var reached bool
		mw := RequireAuth(repo, testSecret, logger, "admin")
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer "+signToken(t, editor.ID, "editor"))
		rec := httptest.NewRecorder()
		mw(okHandler(&reached, nil)).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.False(t, reached)
	})

	t.Run("allowed role passes with context", func(t *testing.T) {
		var reached bool
		var gotID uuid.UUID
		mw := RequireAuth(repo, testSecret, logger, "editor", "admin")
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer "+signToken(t, editor.ID, "editor"))
		rec := httptest.NewRecorder()
		mw(okHandler(&reached, &gotID)).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.True(t, reached)
		assert.Equal(t, editor.ID, gotID)
	})

	t.Run("cookie fallback", func(t *testing.T) {
		var reached bool
		mw := RequireAuth(repo, testSecret, logger)
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.AddCookie(&http.Cookie{Name: TokenCookieName, Value: signToken(t, admin.ID, "admin")})
		rec := httptest.NewRecorder()
		mw(okHandler(&reached, nil)).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.True(t, reached)
	})
}

func TestOptionalAuth(t *testing.T) {
	user := newTestUser(entity.RoleEditor, true)
	repo := &fakeUserRepo{users: map[uuid.UUID]*entity.User{user.ID: user}}
	logger := zap.NewNop()

	t.Run("no token proceeds unauthenticated", func(t *testing.T) {
		var reached bool
		mw := OptionalAuth(repo, testSecret, logger)
		rec := httptest.NewRecorder()
		mw(okHandler(&reached, nil)).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.True(t, reached)
	})

	t.Run("bad token proceeds unauthenticated", func(t *testing.T) {
		var reached bool
		var gotID uuid.UUID
		mw := OptionalAuth(repo, testSecret, logger)
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer broken")
		rec := httptest.NewRecorder()
		mw(okHandler(&reached, &gotID)).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.True(t, reached)
		assert.Equal(t, uuid.Nil, gotID)
	})

	t.Run("valid token attaches identity", func(t *testing.T) {
		var reached bool
		var gotID uuid.UUID
		mw := OptionalAuth(repo, testSecret, logger)
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer "+signToken(t, user.ID, "editor"))
		rec := httptest.NewRecorder()
		mw(okHandler(&reached, &gotID)).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, user.ID, gotID)
	})
}
