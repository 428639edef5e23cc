package service

import (
	"testing"

	config "github.com/ghostwriterhq/scheduler/configs"
	"github.com/ghostwriterhq/scheduler/pkg/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionSignIn(t *testing.T) {
	cfg := config.Config{SecretKey: "test-secret"}
	svc := NewSessionService(cfg)

	ownerID, token, err := svc.SignIn("writer@example.com")
	require.NoError(t, err)
	assert.NotEmpty(t, ownerID)
	assert.NotEmpty(t, token)

	claims, err := utils.ValidateToken(cfg.SecretKey, token)
	require.NoError(t, err)
	assert.Equal(t, ownerID, claims.UserID)

	// Same email always maps to the same owner, regardless of case and
	// surrounding whitespace.
	again, _, err := svc.SignIn("  Writer@Example.COM ")
	require.NoError(t, err)
	assert.Equal(t, ownerID, again)

	other, _, err := svc.SignIn("someone-else@example.com")
	require.NoError(t, err)
	assert.NotEqual(t, ownerID, other)
}

func TestSessionSignInRejectsBadEmail(t *testing.T) {
	svc := NewSessionService(config.Config{SecretKey: "test-secret"})

	for _, email := range []string{"", "not-an-email", "@example.com"} {
		_, _, err := svc.SignIn(email)
		assert.Error(t, err, email)
	}
}
