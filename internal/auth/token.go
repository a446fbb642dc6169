// Package auth issues and verifies the signed admin session credential that
// gates mutation endpoints. There is no revocation list: a credential stays
// valid until expiry, and rotating the secret invalidates everything at once.
package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// SubjectAdmin is the subject marker carried by admin credentials.
const SubjectAdmin = "admin"

// TokenTTL matches the admin panel's two-week session length.
const TokenTTL = 14 * 24 * time.Hour

var ErrInvalidToken = errors.New("invalid token")

// NewAdminToken signs an HS256 credential with the admin subject, issued-at
// and expiry claims.
func NewAdminToken(secret string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   SubjectAdmin,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// VerifyAdminToken checks the signature, expiry and subject. It fails closed:
// any mismatch is ErrInvalidToken.
func VerifyAdminToken(secret, tokenString string) error {
	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(secret), nil
	}, jwt.WithValidMethods([]string{"HS256"}))
	if err != nil || !token.Valid {
		return ErrInvalidToken
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || claims.Subject != SubjectAdmin {
		return ErrInvalidToken
	}
	return nil
}
