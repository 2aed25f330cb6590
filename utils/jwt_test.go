package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"slotmart/config"
)

func TestTokenRoundTrip(t *testing.T) {
	config.AppConfig.JWTSecret = "test-secret"

	token, err := GenerateToken("buyer-1", RoleBuyer, time.Hour)
	require.NoError(t, err)

	sub, role, err := ExtractPrincipalFromToken(token)
	require.NoError(t, err)
	assert.Equal(t, "buyer-1", sub)
	assert.Equal(t, RoleBuyer, role)
}

func TestExpiredTokenRejected(t *testing.T) {
	config.AppConfig.JWTSecret = "test-secret"

	token, err := GenerateToken("buyer-1", RoleBuyer, -time.Minute)
	require.NoError(t, err)

	_, _, err = ExtractPrincipalFromToken(token)
	assert.Error(t, err)
}

func TestTamperedTokenRejected(t *testing.T) {
	config.AppConfig.JWTSecret = "test-secret"

	token, err := GenerateToken("buyer-1", RoleBuyer, time.Hour)
	require.NoError(t, err)

	config.AppConfig.JWTSecret = "other-secret"
	_, _, err = ExtractPrincipalFromToken(token)
	assert.Error(t, err)
}
