package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	token, err := GenerateToken("secret", "owner-1", time.Hour)
	require.NoError(t, err)

	claims, err := ValidateToken("secret", token)
	require.NoError(t, err)
	assert.Equal(t, "owner-1", claims.UserID)
}

func TestValidateTokenWrongSecret(t *testing.T) {
	token, err := GenerateToken("secret", "owner-1", time.Hour)
	require.NoError(t, err)

	_, err = ValidateToken("other-secret", token)
	assert.Error(t, err)
}

func TestValidateTokenExpired(t *testing.T) {
	token, err := GenerateToken("secret", "owner-1", -time.Minute)
	require.NoError(t, err)

	_, err = ValidateToken("secret", token)
	assert.Error(t, err)
}

func TestValidateTokenGarbage(t *testing.T) {
	_, err := ValidateToken("secret", "not.a.token")
	assert.Error(t, err)
}
