package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kaan/studenthub/internal/pkg/apperrors"
)

func TestJWTServiceRoundTrip(t *testing.T) {
	service := NewJWTService("test-secret", "studenthub-test", time.Hour, 24*time.Hour)

	token, err := service.GenerateAccessToken(42, "staff@studenthub.edu", "STAFF")
	require.NoError(t, err)

	claims, err := service.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserID)
	assert.Equal(t, "staff@studenthub.edu", claims.Email)
	assert.Equal(t, "STAFF", claims.Role)
	assert.Equal(t, "studenthub-test", claims.Issuer)
}

func TestJWTServiceValidateToken(t *testing.T) {
	service := NewJWTService("test-secret", "studenthub-test", time.Hour, 24*time.Hour)

	t.Run("expired token", func(t *testing.T) {
		// Expiry must be beyond the validation leeway.
		expired := NewJWTService("test-secret", "studenthub-test", -2*time.Minute, 24*time.Hour)
		token, err := expired.GenerateAccessToken(1, "a@b.co", "STAFF")
		require.NoError(t, err)

		_, err = service.ValidateToken(token)
		assert.ErrorIs(t, err, apperrors.ErrTokenExpired)
	})

	t.Run("wrong signing key", func(t *testing.T) {
		other := NewJWTService("other-secret", "studenthub-test", time.Hour, 24*time.Hour)
		token, err := other.GenerateAccessToken(1, "a@b.co", "STAFF")
		require.NoError(t, err)

		_, err = service.ValidateToken(token)
		assert.ErrorIs(t, err, apperrors.ErrTokenInvalid)
	})

	t.Run("wrong issuer", func(t *testing.T) {
		other := NewJWTService("test-secret", "someone-else", time.Hour, 24*time.Hour)
		token, err := other.GenerateAccessToken(1, "a@b.co", "STAFF")
		require.NoError(t, err)

		_, err = service.ValidateToken(token)
		assert.ErrorIs(t, err, apperrors.ErrTokenInvalid)
	})

	t.Run("not a token", func(t *testing.T) {
		_, err := service.ValidateToken("garbage")
		assert.ErrorIs(t, err, apperrors.ErrTokenInvalid)
	})
}

func TestGenerateRefreshTokenUniqueness(t *testing.T) {
	service := NewJWTService("test-secret", "studenthub-test", time.Hour, 24*time.Hour)

	first, expiry := service.GenerateRefreshToken()
	second, _ := service.GenerateRefreshToken()

	assert.NotEqual(t, first, second)
	assert.WithinDuration(t, time.Now().Add(24*time.Hour), expiry, time.Minute)
}
