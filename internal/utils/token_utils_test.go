package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testAccessSecret  = "test-access-secret"
	testRefreshSecret = "test-refresh-secret"
	testIssuer        = "rodstore-backend"
)

func TestGenerateAccessToken_Claims(t *testing.T) {
	token, err := GenerateAccessToken("42", "admin", testAccessSecret, 5*time.Minute, testIssuer)
	require.NoError(t, err)

	claims, err := ParseAccessToken(token, testAccessSecret)
	require.NoError(t, err)

	assert.Equal(t, "42", claims.Subject)
	assert.Equal(t, "admin", claims.Role)
	assert.Equal(t, testIssuer, claims.Issuer)

	// Expiry should land about five minutes out.
	remaining := time.Until(claims.ExpiresAt.Time)
	assert.Greater(t, remaining, 4*time.Minute)
	assert.LessOrEqual(t, remaining, 5*time.Minute)
}

func TestParseAccessToken_WrongSecret(t *testing.T) {
	token, err := GenerateAccessToken("42", "user", testAccessSecret, 5*time.Minute, testIssuer)
	require.NoError(t, err)

	_, err = ParseAccessToken(token, "some-other-secret")
	assert.Error(t, err)
}

func TestParseAccessToken_Expired(t *testing.T) {
	token, err := GenerateAccessToken("42", "user", testAccessSecret, -1*time.Minute, testIssuer)
	require.NoError(t, err)

	_, err = ParseAccessToken(token, testAccessSecret)
	assert.Error(t, err)
}

func TestParseRefreshToken_TypAssertion(t *testing.T) {
	refresh, err := GenerateRefreshToken("7", testRefreshSecret, 120*time.Hour, testIssuer)
	require.NoError(t, err)

	claims, err := ParseRefreshToken(refresh, testRefreshSecret)
	require.NoError(t, err)
	assert.Equal(t, "7", claims.Subject)
	assert.Equal(t, "refresh", claims.Typ)

	// An access token must never be accepted as a refresh token, even when
	// both are signed with the same secret.
	access, err := GenerateAccessToken("7", "user", testRefreshSecret, 5*time.Minute, testIssuer)
	require.NoError(t, err)
	_, err = ParseRefreshToken(access, testRefreshSecret)
	assert.Error(t, err)
}

func TestParseRefreshToken_AccessSecretRejected(t *testing.T) {
	refresh, err := GenerateRefreshToken("7", testRefreshSecret, 120*time.Hour, testIssuer)
	require.NoError(t, err)

	_, err = ParseRefreshToken(refresh, testAccessSecret)
	assert.Error(t, err)
}

func TestHashRefreshToken_Deterministic(t *testing.T) {
	a := HashRefreshToken("some-token")
	b := HashRefreshToken("some-token")
	c := HashRefreshToken("another-token")

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
	assert.Len(t, a, 64)
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("hunter2hunter2")
	require.NoError(t, err)
	assert.NotEqual(t, "hunter2hunter2", hash)

	assert.True(t, CheckPasswordHash("hunter2hunter2", hash))
	assert.False(t, CheckPasswordHash("wrong-password", hash))
}
