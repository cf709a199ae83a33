package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPasswordServiceHashAndVerify(t *testing.T) {
	service := NewPasswordService()

	hash, err := service.HashPassword("Password1!")
	require.NoError(t, err)
	assert.NotEqual(t, "Password1!", hash)

	assert.True(t, service.VerifyPassword(hash, "Password1!"))
	assert.False(t, service.VerifyPassword(hash, "wrong"))
}
