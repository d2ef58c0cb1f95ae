package usecase

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"news-cms/internal/data/entity"
	"news-cms/internal/data/repository"
	"news-cms/internal/dto/request"
	"news-cms/pkg/utils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// fakeUserRepo is an in-memory UserRepository for service tests.
type fakeUserRepo struct {
	byID    map[uuid.UUID]*entity.User
	deleted []uuid.UUID
}

func newFakeUserRepo(users ...*entity.User) *fakeUserRepo {
	f := &fakeUserRepo{byID: make(map[uuid.UUID]*entity.User)}
	for _, u := range users {
		f.byID[u.ID] = u
	}
	return f
}

func (f *fakeUserRepo) Create(ctx context.Context, user *entity.User) error {
	f.byID[user.ID] = user
	return nil
}

func (f *fakeUserRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	return f.byID[id], nil
}

func (f *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	for _, u := range f.byID {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) FindByResetTokenHash(ctx context.Context, digest string) (*entity.User, error) {
	for _, u := range f.byID {
		if u.ResetTokenHash != nil && *u.ResetTokenHash == digest &&
			u.ResetExpiresAt != nil && u.ResetExpiresAt.After(time.Now()) {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) FindAll(ctx context.Context, q repository.UserFilter) ([]*entity.User, error) {
	out := make([]*entity.User, 0, len(f.byID))
	for _, u := range f.byID {
		out = append(out, u)
	}
	return out, nil
}

func (f *fakeUserRepo) Count(ctx context.Context, q repository.UserFilter) (int64, error) {
	return int64(len(f.byID)), nil
}

func (f *fakeUserRepo) Update(ctx context.Context, user *entity.User) error {
	f.byID[user.ID] = user
	return nil
}

func (f *fakeUserRepo) ToggleActive(ctx context.Context, id uuid.UUID) (*bool, error) {
	u, ok := f.byID[id]
	if !ok {
		return nil, nil
	}
	u.IsActive = !u.IsActive
	return &u.IsActive, nil
}

func (f *fakeUserRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(f.byID, id)
	f.deleted = append(f.deleted, id)
	return nil
}

// fakeMailer records outgoing mail and can be forced to fail. Broadcast
// fans sends out concurrently, so the record is mutex-guarded.
type sentMail struct {
	to       string
	subject  string
	template string
	data     map[string]any
}

type fakeMailer struct {
	mu   sync.Mutex
	sent []sentMail
	err  error
}

func (m *fakeMailer) Send(ctx context.Context, to, subject, templateName string, data map[string]any) error {
	if m.err != nil {
		return m.err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sent = append(m.sent, sentMail{to: to, subject: subject, template: templateName, data: data})
	return nil
}

func testConfig() *utils.Config {
	return &utils.Config{
		App: utils.AppConfig{
			Name:        "news-cms-test",
			Env:         "test",
			FrontendURL: "http://localhost:3000",
		},
		JWT: utils.JWTConfig{Secret: "test-secret", ExpiryHours: 1},
		OTP: utils.OTPConfig{ExpiryHours: 24, Length: 6, ResetExpiryMinutes: 10},
	}
}

func verifiedUser(t *testing.T, email, password string) *entity.User {
	t.Helper()
	hash, err := utils.HashPassword(password)
	require.NoError(t, err)
	return &entity.User{
		Base:         entity.Base{ID: uuid.New(), CreatedAt: time.Now(), UpdatedAt: time.Now()},
		Name:         "Existing User",
		Email:        email,
		PasswordHash: hash,
		Role:         entity.RoleEditor,
		IsVerified:   true,
		IsActive:     true,
	}
}

func TestSignup(t *testing.T) {
	ctx := context.Background()

	t.Run("creates unverified user and mails code", func(t *testing.T) {
		repo := newFakeUserRepo()
		mail := &fakeMailer{}
		svc := NewAuthService(repo, testConfig(), mail, zap.NewNop())

		resp, err := svc.Signup(ctx, &request.SignupRequest{
			Name:     "New Editor",
			Email:    "new@example.com",
			Password: "password123",
		})
		require.NoError(t, err)
		assert.Equal(t, "new@example.com", resp.Email)
		assert.Equal(t, "editor", resp.Role)
		assert.False(t, resp.IsVerified)

		stored, err := repo.FindByEmail(ctx, "new@example.com")
		require.NoError(t, err)
		require.NotNil(t, stored)
		require.NotNil(t, stored.VerificationCode)
		assert.Len(t, *stored.VerificationCode, 6)
		require.NotNil(t, stored.VerificationExpiresAt)

		require.Len(t, mail.sent, 1)
		assert.Equal(t, "verify_email", mail.sent[0].template)
		assert.Equal(t, "new@example.com", mail.sent[0].to)
		assert.Equal(t, *stored.VerificationCode, mail.sent[0].data["Code"])
	})

	t.Run("rejects bad input", func(t *testing.T) {
		svc := NewAuthService(newFakeUserRepo(), testConfig(), &fakeMailer{}, zap.NewNop())

		_, err := svc.Signup(ctx, &request.SignupRequest{
			Name:     "X",
			Email:    "not-an-email",
			Password: "short",
		})
		assert.ErrorIs(t, err, ErrValidation)
	})

	t.Run("verified email conflicts", func(t *testing.T) {
		existing := verifiedUser(t, "taken@example.com", "password123")
		svc := NewAuthService(newFakeUserRepo(existing), testConfig(), &fakeMailer{}, zap.NewNop())

		_, err := svc.Signup(ctx, &request.SignupRequest{
			Name:     "Someone",
			Email:    "taken@example.com",
			Password: "password123",
		})
		assert.ErrorIs(t, err, ErrConflict)
	})

	t.Run("stale unverified signup is replaced", func(t *testing.T) {
		stale := verifiedUser(t, "stale@example.com", "password123")
		stale.IsVerified = false
		repo := newFakeUserRepo(stale)
		svc := NewAuthService(repo, testConfig(), &fakeMailer{}, zap.NewNop())

		resp, err := svc.Signup(ctx, &request.SignupRequest{
			Name:     "Fresh",
			Email:    "stale@example.com",
			Password: "password456",
		})
		require.NoError(t, err)
		assert.NotEqual(t, stale.ID.String(), resp.ID)
		assert.Contains(t, repo.deleted, stale.ID)
	})

	t.Run("mail failure surfaces", func(t *testing.T) {
		mail := &fakeMailer{err: errors.New("smtp down")}
		svc := NewAuthService(newFakeUserRepo(), testConfig(), mail, zap.NewNop())

		_, err := svc.Signup(ctx, &request.SignupRequest{
			Name:     "Unlucky",
			Email:    "unlucky@example.com",
			Password: "password123",
		})
		assert.ErrorIs(t, err, ErrMailDelivery)
	})
}

func TestVerifyEmail(t *testing.T) {
	ctx := context.Background()

	pendingUser := func(code string, expiry time.Time) *entity.User {
		u := verifiedUser(t, "pending@example.com", "password123")
		u.IsVerified = false
		u.VerificationCode = &code
		u.VerificationExpiresAt = &expiry
		return u
	}

	t.Run("valid code verifies and clears", func(t *testing.T) {
		u := pendingUser("123456", time.Now().Add(time.Hour))
		repo := newFakeUserRepo(u)
		mail := &fakeMailer{}
		svc := NewAuthService(repo, testConfig(), mail, zap.NewNop())

		err := svc.VerifyEmail(ctx, &request.VerifyEmailRequest{Email: u.Email, Code: "123456"})
		require.NoError(t, err)

		stored := repo.byID[u.ID]
		assert.True(t, stored.IsVerified)
		assert.Nil(t, stored.VerificationCode)
		assert.Nil(t, stored.VerificationExpiresAt)

		require.Len(t, mail.sent, 1)
		assert.Equal(t, "welcome", mail.sent[0].template)
	})

	t.Run("wrong code rejected", func(t *testing.T) {
		u := pendingUser("123456", time.Now().Add(time.Hour))
		svc := NewAuthService(newFakeUserRepo(u), testConfig(), &fakeMailer{}, zap.NewNop())

		err := svc.VerifyEmail(ctx, &request.VerifyEmailRequest{Email: u.Email, Code: "654321"})
		assert.ErrorIs(t, err, ErrValidation)
	})

	t.Run("expired code rejected", func(t *testing.T) {
		u := pendingUser("123456", time.Now().Add(-time.Minute))
		svc := NewAuthService(newFakeUserRepo(u), testConfig(), &fakeMailer{}, zap.NewNop())

		err := svc.VerifyEmail(ctx, &request.VerifyEmailRequest{Email: u.Email, Code: "123456"})
		assert.ErrorIs(t, err, ErrValidation)
	})

	t.Run("already verified rejected", func(t *testing.T) {
		u := verifiedUser(t, "done@example.com", "password123")
		svc := NewAuthService(newFakeUserRepo(u), testConfig(), &fakeMailer{}, zap.NewNop())

		err := svc.VerifyEmail(ctx, &request.VerifyEmailRequest{Email: u.Email, Code: "123456"})
		assert.ErrorIs(t, err, ErrValidation)
	})
}

func TestLogin(t *testing.T) {
	ctx := context.Background()

	t.Run("happy path issues verifiable token", func(t *testing.T) {
		u := verifiedUser(t, "login@example.com", "password123")
		svc := NewAuthService(newFakeUserRepo(u), testConfig(), &fakeMailer{}, zap.NewNop())

		auth, err := svc.Login(ctx, &request.LoginRequest{Email: u.Email, Password: "password123"})
		require.NoError(t, err)
		require.NotEmpty(t, auth.Token)
		assert.Equal(t, u.Email, auth.User.Email)

		claims, err := utils.VerifySessionToken(auth.Token, "test-secret")
		require.NoError(t, err)
		assert.Equal(t, u.ID.String(), claims.UserID)
		assert.Equal(t, "editor", claims.Role)
	})

	t.Run("unknown email", func(t *testing.T) {
		svc := NewAuthService(newFakeUserRepo(), testConfig(), &fakeMailer{}, zap.NewNop())

		_, err := svc.Login(ctx, &request.LoginRequest{Email: "ghost@example.com", Password: "password123"})
		assert.ErrorIs(t, err, ErrUnauthorized)
	})

	t.Run("wrong password beats active check", func(t *testing.T) {
		u := verifiedUser(t, "order@example.com", "password123")
		u.IsActive = false
		svc := NewAuthService(newFakeUserRepo(u), testConfig(), &fakeMailer{}, zap.NewNop())

		_, err := svc.Login(ctx, &request.LoginRequest{Email: u.Email, Password: "wrong"})
		require.ErrorIs(t, err, ErrUnauthorized)
		assert.Contains(t, err.Error(), "invalid credentials")
	})

	t.Run("inactive account", func(t *testing.T) {
		u := verifiedUser(t, "inactive@example.com", "password123")
		u.IsActive = false
		svc := NewAuthService(newFakeUserRepo(u), testConfig(), &fakeMailer{}, zap.NewNop())

		_, err := svc.Login(ctx, &request.LoginRequest{Email: u.Email, Password: "password123"})
		require.ErrorIs(t, err, ErrUnauthorized)
		assert.Contains(t, err.Error(), "deactivated")
	})

	t.Run("unverified account", func(t *testing.T) {
		u := verifiedUser(t, "unverified@example.com", "password123")
		u.IsVerified = false
		svc := NewAuthService(newFakeUserRepo(u), testConfig(), &fakeMailer{}, zap.NewNop())

		_, err := svc.Login(ctx, &request.LoginRequest{Email: u.Email, Password: "password123"})
		require.ErrorIs(t, err, ErrUnauthorized)
		assert.Contains(t, err.Error(), "not verified")
	})
}

func TestPasswordReset(t *testing.T) {
	ctx := context.Background()

	t.Run("forgot for unknown email stays silent", func(t *testing.T) {
		mail := &fakeMailer{}
		svc := NewAuthService(newFakeUserRepo(), testConfig(), mail, zap.NewNop())

		err := svc.ForgotPassword(ctx, &request.ForgotPasswordRequest{Email: "ghost@example.com"})
		require.NoError(t, err)
		assert.Empty(t, mail.sent)
	})

	t.Run("forgot stores digest and mails link", func(t *testing.T) {
		u := verifiedUser(t, "reset@example.com", "password123")
		repo := newFakeUserRepo(u)
		mail := &fakeMailer{}
		svc := NewAuthService(repo, testConfig(), mail, zap.NewNop())

		err := svc.ForgotPassword(ctx, &request.ForgotPasswordRequest{Email: u.Email})
		require.NoError(t, err)

		stored := repo.byID[u.ID]
		require.NotNil(t, stored.ResetTokenHash)
		require.NotNil(t, stored.ResetExpiresAt)

		require.Len(t, mail.sent, 1)
		assert.Equal(t, "reset_password", mail.sent[0].template)
		assert.Contains(t, mail.sent[0].data["ResetURL"], "http://localhost:3000/reset-password?token=")
	})

	t.Run("full reset roundtrip", func(t *testing.T) {
		u := verifiedUser(t, "roundtrip@example.com", "oldpassword1")
		repo := newFakeUserRepo(u)
		mail := &fakeMailer{}
		svc := NewAuthService(repo, testConfig(), mail, zap.NewNop())

		require.NoError(t, svc.ForgotPassword(ctx, &request.ForgotPasswordRequest{Email: u.Email}))

		// Extract the raw token from the mailed link.
		url, ok := mail.sent[0].data["ResetURL"].(string)
		require.True(t, ok)
		raw := url[len("http://localhost:3000/reset-password?token="):]

		err := svc.ResetPassword(ctx, &request.ResetPasswordRequest{Token: raw, Password: "newpassword1"})
		require.NoError(t, err)

		stored := repo.byID[u.ID]
		assert.Nil(t, stored.ResetTokenHash)
		assert.Nil(t, stored.ResetExpiresAt)
		assert.True(t, utils.CheckPasswordHash("newpassword1", stored.PasswordHash))
		assert.False(t, utils.CheckPasswordHash("oldpassword1", stored.PasswordHash))

		// The token is single use.
		err = svc.ResetPassword(ctx, &request.ResetPasswordRequest{Token: raw, Password: "anotherpass1"})
		assert.ErrorIs(t, err, ErrValidation)
	})

	t.Run("bogus token rejected", func(t *testing.T) {
		svc := NewAuthService(newFakeUserRepo(), testConfig(), &fakeMailer{}, zap.NewNop())

		err := svc.ResetPassword(ctx, &request.ResetPasswordRequest{Token: "bogus", Password: "newpassword1"})
		assert.ErrorIs(t, err, ErrValidation)
	})
}
