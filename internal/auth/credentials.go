package auth

import (
	"crypto/subtle"

	"golang.org/x/crypto/bcrypt"
)

// CheckCredentials compares a login attempt against the configured admin
// account. When a bcrypt hash is configured it takes precedence over the
// plaintext password; plaintext comparison is constant time.
func CheckCredentials(username, password, wantUsername, wantPassword, wantPasswordHash string) bool {
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(wantUsername)) == 1

	if wantPasswordHash != "" {
		return userOK && bcrypt.CompareHashAndPassword([]byte(wantPasswordHash), []byte(password)) == nil
	}

	passOK := subtle.ConstantTimeCompare([]byte(password), []byte(wantPassword)) == 1
	return userOK && passOK
}
