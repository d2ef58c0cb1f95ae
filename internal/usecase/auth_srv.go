package usecase

import (
	"context"
	"fmt"
	"time"

	"news-cms/internal/data/entity"
	"news-cms/internal/data/repository"
	"news-cms/internal/dto/request"
	"news-cms/internal/dto/response"
	"news-cms/pkg/mailer"
	"news-cms/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type AuthService interface {
	Signup(ctx context.Context, req *request.SignupRequest) (*response.UserResponse, error)
	VerifyEmail(ctx context.Context, req *request.VerifyEmailRequest) error
	ResendCode(ctx context.Context, req *request.ResendCodeRequest) error
	Login(ctx context.Context, req *request.LoginRequest) (*response.AuthResponse, error)
	ForgotPassword(ctx context.Context, req *request.ForgotPasswordRequest) error
	ResetPassword(ctx context.Context, req *request.ResetPasswordRequest) error
	Me(ctx context.Context, userID uuid.UUID) (*response.UserResponse, error)
}

type authService struct {
	users  repository.UserRepository
	config *utils.Config
	mail   mailer.Mailer
	log    *zap.Logger
}

func NewAuthService(users repository.UserRepository, config *utils.Config, mail mailer.Mailer, log *zap.Logger) AuthService {
	return &authService{
		users:  users,
		config: config,
		mail:   mail,
		log:    log.With(zap.String("service", "auth")),
	}
}

func (s *authService) Signup(ctx context.Context, req *request.SignupRequest) (*response.UserResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Signup validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	role := entity.RoleEditor
	if req.Role != "" {
		role = entity.UserRole(req.Role)
	}

	existing, err := s.users.FindByEmail(ctx, req.Email)
	if err != nil {
		s.log.Error("Failed to check email", zap.Error(err), zap.String("email", req.Email))
		return nil, fmt.Errorf("check email: %w", err)
	}
	if existing != nil {
		if existing.IsVerified {
			return nil, fmt.Errorf("%w: email already registered", ErrConflict)
		}
		// Stale unverified signup: replace it wholesale.
		if err := s.users.Delete(ctx, existing.ID); err != nil {
			s.log.Error("Failed to remove stale signup", zap.Error(err), zap.String("email", req.Email))
			return nil, fmt.Errorf("replace stale signup: %w", err)
		}
	}

	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		s.log.Error("Failed to hash password", zap.Error(err))
		return nil, fmt.Errorf("hash password: %w", err)
	}

	code := utils.GenerateOTP(s.config.OTP.Length)
	codeExpiry := time.Now().Add(time.Duration(s.config.OTP.ExpiryHours) * time.Hour)

	now := time.Now()
	user := &entity.User{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Name:                  req.Name,
		Email:                 req.Email,
		PasswordHash:          hashedPassword,
		Role:                  role,
		IsVerified:            false,
		IsActive:              true,
		VerificationCode:      &code,
		VerificationExpiresAt: &codeExpiry,
	}

	if err := s.users.Create(ctx, user); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, fmt.Errorf("%w: email already registered", ErrConflict)
		}
		s.log.Error("Failed to create user", zap.Error(err), zap.String("email", req.Email))
		return nil, fmt.Errorf("create account: %w", err)
	}

	if err := s.mail.Send(ctx, user.Email, "Verify your email", "verify_email", map[string]any{
		"Name": user.Name,
		"Code": code,
	}); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMailDelivery, err)
	}

	s.log.Info("User signed up",
		zap.String("user_id", user.ID.String()),
		zap.String("email", user.Email))

	resp := response.FromUser(user)
	return &resp, nil
}

func (s *authService) VerifyEmail(ctx context.Context, req *request.VerifyEmailRequest) error {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Verify email validation failed", zap.Any("errors", errs))
		return fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	user, err := s.users.FindByEmail(ctx, req.Email)
	if err != nil {
		s.log.Error("Failed to find user for verification", zap.Error(err), zap.String("email", req.Email))
		return fmt.Errorf("verify email: %w", err)
	}

	// One generic rejection whichever check fails.
	if user == nil || user.IsVerified ||
		user.VerificationCode == nil || user.VerificationExpiresAt == nil ||
		*user.VerificationCode != req.Code ||
		time.Now().After(*user.VerificationExpiresAt) {
		return fmt.Errorf("%w: invalid or expired code", ErrValidation)
	}

	user.IsVerified = true
	user.VerificationCode = nil
	user.VerificationExpiresAt = nil
	user.UpdatedAt = time.Now()

	if err := s.users.Update(ctx, user); err != nil {
		s.log.Error("Failed to mark user verified", zap.Error(err), zap.String("user_id", user.ID.String()))
		return fmt.Errorf("verify email: %w", err)
	}

	if err := s.mail.Send(ctx, user.Email, "Welcome!", "welcome", map[string]any{
		"Name": user.Name,
	}); err != nil {
		return fmt.Errorf("%w: %v", ErrMailDelivery, err)
	}

	s.log.Info("Email verified",
		zap.String("user_id", user.ID.String()),
		zap.String("email", user.Email))

	return nil
}

func (s *authService) ResendCode(ctx context.Context, req *request.ResendCodeRequest) error {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	user, err := s.users.FindByEmail(ctx, req.Email)
	if err != nil {
		s.log.Error("Failed to find user for resend", zap.Error(err), zap.String("email", req.Email))
		return fmt.Errorf("resend code: %w", err)
	}
	if user == nil {
		return fmt.Errorf("%w: user", ErrNotFound)
	}
	if user.IsVerified {
		return fmt.Errorf("%w: email already verified", ErrValidation)
	}

	code := utils.GenerateOTP(s.config.OTP.Length)
	expiry := time.Now().Add(time.Duration(s.config.OTP.ExpiryHours) * time.Hour)

	user.VerificationCode = &code
	user.VerificationExpiresAt = &expiry
	user.UpdatedAt = time.Now()

	if err := s.users.Update(ctx, user); err != nil {
		s.log.Error("Failed to store new code", zap.Error(err), zap.String("user_id", user.ID.String()))
		return fmt.Errorf("resend code: %w", err)
	}

	if err := s.mail.Send(ctx, user.Email, "Verify your email", "verify_email", map[string]any{
		"Name": user.Name,
		"Code": code,
	}); err != nil {
		return fmt.Errorf("%w: %v", ErrMailDelivery, err)
	}

	return nil
}

func (s *authService) Login(ctx context.Context, req *request.LoginRequest) (*response.AuthResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Login validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	user, err := s.users.FindByEmail(ctx, req.Email)
	if err != nil {
		s.log.Error("Failed to find user for login", zap.Error(err), zap.String("email", req.Email))
		return nil, fmt.Errorf("login: %w", err)
	}
	if user == nil {
		return nil, fmt.Errorf("%w: invalid credentials", ErrUnauthorized)
	}

	// Check order matters: password, then active, then verified.
	if !utils.CheckPasswordHash(req.Password, user.PasswordHash) {
		s.log.Warn("Invalid password", zap.String("user_id", user.ID.String()))
		return nil, fmt.Errorf("%w: invalid credentials", ErrUnauthorized)
	}
	if !user.IsActive {
		s.log.Warn("Inactive user tried to login", zap.String("user_id", user.ID.String()))
		return nil, fmt.Errorf("%w: account is deactivated", ErrUnauthorized)
	}
	if !user.IsVerified {
		s.log.Warn("Unverified user tried to login", zap.String("user_id", user.ID.String()))
		return nil, fmt.Errorf("%w: email not verified", ErrUnauthorized)
	}

	expiry := time.Duration(s.config.JWT.ExpiryHours) * time.Hour
	token, err := utils.GenerateSessionToken(user.ID.String(), string(user.Role), s.config.JWT.Secret, expiry)
	if err != nil {
		s.log.Error("Failed to sign session token", zap.Error(err), zap.String("user_id", user.ID.String()))
		return nil, fmt.Errorf("issue token: %w", err)
	}

	s.log.Info("User logged in",
		zap.String("user_id", user.ID.String()),
		zap.String("email", user.Email))

	return &response.AuthResponse{
		Token:     token,
		ExpiresAt: time.Now().Add(expiry),
		User:      response.FromUser(user),
	}, nil
}

func (s *authService) ForgotPassword(ctx context.Context, req *request.ForgotPasswordRequest) error {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	user, err := s.users.FindByEmail(ctx, req.Email)
	if err != nil {
		s.log.Error("Failed to find user for reset", zap.Error(err), zap.String("email", req.Email))
		return fmt.Errorf("forgot password: %w", err)
	}
	if user == nil {
		// Do not reveal whether the email exists.
		return nil
	}

	raw, digest, err := utils.GenerateResetToken()
	if err != nil {
		s.log.Error("Failed to generate reset token", zap.Error(err))
		return fmt.Errorf("forgot password: %w", err)
	}

	expiry := time.Now().Add(time.Duration(s.config.OTP.ResetExpiryMinutes) * time.Minute)
	user.ResetTokenHash = &digest
	user.ResetExpiresAt = &expiry
	user.UpdatedAt = time.Now()

	if err := s.users.Update(ctx, user); err != nil {
		s.log.Error("Failed to store reset token", zap.Error(err), zap.String("user_id", user.ID.String()))
		return fmt.Errorf("forgot password: %w", err)
	}

	resetURL := fmt.Sprintf("%s/reset-password?token=%s", s.config.App.FrontendURL, raw)
	if err := s.mail.Send(ctx, user.Email, "Reset your password", "reset_password", map[string]any{
		"Name":     user.Name,
		"ResetURL": resetURL,
	}); err != nil {
		return fmt.Errorf("%w: %v", ErrMailDelivery, err)
	}

	s.log.Info("Reset link sent", zap.String("user_id", user.ID.String()))
	return nil
}

func (s *authService) ResetPassword(ctx context.Context, req *request.ResetPasswordRequest) error {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	digest := utils.HashResetToken(req.Token)
	user, err := s.users.FindByResetTokenHash(ctx, digest)
	if err != nil {
		s.log.Error("Failed to look up reset token", zap.Error(err))
		return fmt.Errorf("reset password: %w", err)
	}
	if user == nil {
		return fmt.Errorf("%w: invalid or expired token", ErrValidation)
	}

	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		s.log.Error("Failed to hash new password", zap.Error(err))
		return fmt.Errorf("reset password: %w", err)
	}

	user.PasswordHash = hashedPassword
	user.ResetTokenHash = nil
	user.ResetExpiresAt = nil
	user.UpdatedAt = time.Now()

	if err := s.users.Update(ctx, user); err != nil {
		s.log.Error("Failed to update password", zap.Error(err), zap.String("user_id", user.ID.String()))
		return fmt.Errorf("reset password: %w", err)
	}

	s.log.Info("Password reset", zap.String("user_id", user.ID.String()))
	return nil
}

func (s *authService) Me(ctx context.Context, userID uuid.UUID) (*response.UserResponse, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		s.log.Error("Failed to load profile", zap.Error(err), zap.String("user_id", userID.String()))
		return nil, fmt.Errorf("load profile: %w", err)
	}
	if user == nil {
		return nil, fmt.Errorf("%w: user", ErrNotFound)
	}

	resp := response.FromUser(user)
	return &resp, nil
}
