package entity

import "time"

type UserRole string

const (
	RoleEditor UserRole = "editor"
	RoleAdmin  UserRole = "admin"
)

// ValidRole reports whether s names a known role.
func ValidRole(s string) bool {
	return s == string(RoleEditor) || s == string(RoleAdmin)
}

type User struct {
	Base
	Name         string   `db:"name"`
	Email        string   `db:"email"`
	PasswordHash string   `db:"password"`
	Role         UserRole `db:"role"`
	IsVerified   bool     `db:"is_verified"`
	IsActive     bool     `db:"is_active"`

	// Email verification: 6-digit code, single use, 24h lifetime.
	VerificationCode      *string    `db:"verification_code"`
	VerificationExpiresAt *time.Time `db:"verification_expires_at"`

	// Password reset: sha256 digest of the raw token, 10m lifetime.
	ResetTokenHash *string    `db:"reset_token_hash"`
	ResetExpiresAt *time.Time `db:"reset_expires_at"`
}
