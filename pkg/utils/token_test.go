package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionTokenRoundtrip(t *testing.T) {
	token, err := GenerateSessionToken("user-123", "admin", "secret", time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := VerifySessionToken(token, "secret")
	require.NoError(t, err)
	assert.Equal(t, "user-123", claims.UserID)
	assert.Equal(t, "admin", claims.Role)
}

func TestSessionTokenWrongSecret(t *testing.T) {
	token, err := GenerateSessionToken("user-123", "editor", "secret", time.Hour)
	require.NoError(t, err)

	_, err = VerifySessionToken(token, "other-secret")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestSessionTokenExpired(t *testing.T) {
	token, err := GenerateSessionToken("user-123", "editor", "secret", -time.Minute)
	require.NoError(t, err)

	_, err = VerifySessionToken(token, "secret")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestSessionTokenGarbage(t *testing.T) {
	_, err := VerifySessionToken("not.a.token", "secret")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestGenerateOTP(t *testing.T) {
	otp := GenerateOTP(6)
	require.Len(t, otp, 6)
	for _, r := range otp {
		assert.True(t, r >= '0' && r <= '9', "OTP must be numeric, got %q", otp)
	}

	// Non-positive lengths fall back to 6 digits.
	assert.Len(t, GenerateOTP(0), 6)
	assert.Len(t, GenerateOTP(-1), 6)
}

func TestGenerateResetToken(t *testing.T) {
	raw, digest, err := GenerateResetToken()
	require.NoError(t, err)
	assert.Len(t, raw, 64)
	assert.Len(t, digest, 64)
	assert.NotEqual(t, raw, digest)

	// Redemption re-hashes the raw token and must land on the stored digest.
	assert.Equal(t, digest, HashResetToken(raw))
	assert.NotEqual(t, digest, HashResetToken("tampered"))
}

func TestPasswordHash(t *testing.T) {
	hash, err := HashPassword("s3cret-password")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret-password", hash)

	assert.True(t, CheckPasswordHash("s3cret-password", hash))
	assert.False(t, CheckPasswordHash("wrong-password", hash))
}
