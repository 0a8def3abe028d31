package auth

import (
	"testing"

	"workzo_backend/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setTestConfig(t *testing.T) {
	t.Helper()
	prev := config.AppConfig
	cfg := &config.Config{}
	cfg.JWT.Secret = "unit-test-secret"
	cfg.JWT.TTL = 60
	config.AppConfig = cfg
	t.Cleanup(func() { config.AppConfig = prev })
}

func TestGenerateAndParseToken(t *testing.T) {
	setTestConfig(t)

	token, err := GenerateToken("user-123", "WORKER")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-123", claims.UserID)
	assert.Equal(t, "WORKER", claims.Role)
}

func TestParseTokenRejectsGarbage(t *testing.T) {
	setTestConfig(t)

	_, err := ParseToken("not.a.token")
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestParseTokenRejectsWrongSecret(t *testing.T) {
	setTestConfig(t)

	token, err := GenerateToken("user-123", "WORKER")
	require.NoError(t, err)

	config.AppConfig.JWT.Secret = "a-different-secret"
	_, err = ParseToken(token)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestVerificationTokenPurposeIsEnforced(t *testing.T) {
	setTestConfig(t)

	verifyToken, err := GenerateVerificationToken("user-123")
	require.NoError(t, err)

	// A verification token cannot open a session.
	_, err = ParseToken(verifyToken)
	assert.ErrorIs(t, err, ErrWrongPurpose)

	// And a session token cannot verify an email.
	sessionToken, err := GenerateToken("user-123", "EMPLOYER")
	require.NoError(t, err)
	_, err = ParseVerificationToken(sessionToken)
	assert.ErrorIs(t, err, ErrWrongPurpose)

	claims, err := ParseVerificationToken(verifyToken)
	require.NoError(t, err)
	assert.Equal(t, "user-123", claims.UserID)
}
