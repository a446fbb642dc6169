package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"portfolio-backend/internal/auth"
)

func TestCheckCredentials_Plaintext(t *testing.T) {
	assert.True(t, auth.CheckCredentials("admin", "secret", "admin", "secret", ""))
	assert.False(t, auth.CheckCredentials("admin", "wrong", "admin", "secret", ""))
	assert.False(t, auth.CheckCredentials("other", "secret", "admin", "secret", ""))
}

func TestCheckCredentials_BcryptHashTakesPrecedence(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("hashed-password"), bcrypt.MinCost)
	require.NoError(t, err)

	// With a hash configured the plaintext password setting is ignored.
	assert.True(t, auth.CheckCredentials("admin", "hashed-password", "admin", "unused", string(hash)))
	assert.False(t, auth.CheckCredentials("admin", "unused", "admin", "unused", string(hash)))
	assert.False(t, auth.CheckCredentials("other", "hashed-password", "admin", "unused", string(hash)))
}
