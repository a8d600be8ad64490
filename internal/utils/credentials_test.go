package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAPIKeyRoundTrip(t *testing.T) {
	key, err := GenerateAPIKey(16)
	require.NoError(t, err)
	assert.Len(t, key, 32)

	hash, err := HashAPIKey(key)
	require.NoError(t, err)

	assert.True(t, CheckAPIKey(key, hash))
	assert.False(t, CheckAPIKey(key+"x", hash))
	assert.False(t, CheckAPIKey(key, ""))
}

func TestGenerateAPIKey_InvalidLength(t *testing.T) {
	_, err := GenerateAPIKey(0)
	assert.Error(t, err)
}

func TestJWTRoundTrip(t *testing.T) {
	token, err := GenerateJWT("driver", "secret", time.Minute, "connec-sync")
	require.NoError(t, err)

	claims, err := ParseAndValidateJWT(token, "secret")
	require.NoError(t, err)
	assert.Equal(t, "driver", claims.Subject)
	assert.Equal(t, "connec-sync", claims.Issuer)

	_, err = ParseAndValidateJWT(token, "other")
	assert.ErrorIs(t, err, jwt.ErrTokenSignatureInvalid)

	expired, err := GenerateJWT("driver", "secret", -time.Minute, "connec-sync")
	require.NoError(t, err)
	_, err = ParseAndValidateJWT(expired, "secret")
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}
