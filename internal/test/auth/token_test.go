package auth_test

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio-backend/internal/auth"
)

const testSecret = "test-secret-key-for-jwt-signing-must-be-long-enough"

func TestAdminToken_RoundTrip(t *testing.T) {
	token, err := auth.NewAdminToken(testSecret, auth.TokenTTL)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	assert.NoError(t, auth.VerifyAdminToken(testSecret, token))
}

func TestVerifyAdminToken_WrongSecret(t *testing.T) {
	token, err := auth.NewAdminToken(testSecret, auth.TokenTTL)
	require.NoError(t, err)

	assert.ErrorIs(t, auth.VerifyAdminToken("other-secret", token), auth.ErrInvalidToken)
}

func TestVerifyAdminToken_Expired(t *testing.T) {
	token, err := auth.NewAdminToken(testSecret, -time.Hour)
	require.NoError(t, err)

	assert.ErrorIs(t, auth.VerifyAdminToken(testSecret, token), auth.ErrInvalidToken)
}

func TestVerifyAdminToken_WrongSubject(t *testing.T) {
	claims := jwt.RegisteredClaims{
		Subject:   "someone-else",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)

	assert.ErrorIs(t, auth.VerifyAdminToken(testSecret, token), auth.ErrInvalidToken)
}

func TestVerifyAdminToken_Garbage(t *testing.T) {
	assert.ErrorIs(t, auth.VerifyAdminToken(testSecret, "not-a-token"), auth.ErrInvalidToken)
}
