// Package auth implements the credential primitives of the service:
// bcrypt password hashing and HS256 session tokens.
package auth

import (
	"golang.org/x/crypto/bcrypt"
)

// HashPassword produces a salted one-way digest of password. bcrypt embeds a
// fresh random salt in every digest, so two calls with the same input yield
// different outputs.
func HashPassword(password string) (string, error) {
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(h), nil
}

// CheckPassword reports whether password matches the given digest. The salt
// is recovered from the digest and the comparison is constant-time. Any
// malformed digest simply yields false.
func CheckPassword(password, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(password)) == nil
}
