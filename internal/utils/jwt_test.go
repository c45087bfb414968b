// internal/utils/jwt_test.go
package utils

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidateJWT(t *testing.T) {
	SetJWTSecret("test-secret")
	userID := uuid.New()

	token, err := GenerateJWT(userID, "admin@alkarahm.com", "Admin", 1)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ValidateJWT(token)
	require.NoError(t, err)
	assert.Equal(t, userID.String(), claims.UserID)
	assert.Equal(t, "admin@alkarahm.com", claims.Email)
	assert.Equal(t, "Admin", claims.Role)
	assert.Equal(t, "alkarahm-admin", claims.Issuer)
}

func TestValidateJWTRejectsWrongSecret(t *testing.T) {
	SetJWTSecret("secret-one")
	token, err := GenerateJWT(uuid.New(), "admin@alkarahm.com", "Admin", 1)
	require.NoError(t, err)

	SetJWTSecret("secret-two")
	_, err = ValidateJWT(token)
	assert.Error(t, err)
}

func TestValidateJWTRejectsGarbage(t *testing.T) {
	SetJWTSecret("test-secret")
	_, err := ValidateJWT("not.a.token")
	assert.Error(t, err)
}

func TestRefreshTokenRoundTrip(t *testing.T) {
	SetJWTSecret("test-secret")
	userID := uuid.New()

	token, err := GenerateRefreshToken(userID, 1)
	require.NoError(t, err)

	subject, err := ValidateRefreshToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID.String(), subject)
}

func TestExpiredJWTRejected(t *testing.T) {
	SetJWTSecret("test-secret")

	// TTL of -1 hours puts the expiry in the past
	token, err := GenerateJWT(uuid.New(), "admin@alkarahm.com", "Admin", -1)
	require.NoError(t, err)

	_, err = ValidateJWT(token)
	assert.Error(t, err)
}
