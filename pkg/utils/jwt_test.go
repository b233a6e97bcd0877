package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTRoundTrip(t *testing.T) {
	token, err := GenerateJWT("user-123", "secret", time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	userID, err := GetUserIDFromJWT(token, "secret")
	require.NoError(t, err)
	assert.Equal(t, "user-123", userID)
}

func TestJWTWrongSecret(t *testing.T) {
	token, err := GenerateJWT("user-123", "secret", time.Hour)
	require.NoError(t, err)

	_, err = GetUserIDFromJWT(token, "other-secret")
	assert.Error(t, err)
}

func TestJWTExpired(t *testing.T) {
	token, err := GenerateJWT("user-123", "secret", -time.Minute)
	require.NoError(t, err)

	_, err = GetUserIDFromJWT(token, "secret")
	assert.Error(t, err)
}

func TestJWTGarbage(t *testing.T) {
	_, err := GetUserIDFromJWT("not.a.token", "secret")
	assert.Error(t, err)
}
