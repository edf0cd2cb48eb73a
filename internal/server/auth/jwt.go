package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/mp28jam28/board-auth/internal/common"
)

// Claims is the payload embedded in a session token: the user attributes
// plus the registered expiration claim. It is never persisted; verification
// reconstructs it from the token itself.
type Claims struct {
	jwt.RegisteredClaims
	Username   string `json:"username"`
	Email      string `json:"email,omitempty"`
	Name       string `json:"name,omitempty"`
	Department string `json:"department,omitempty"`
	Role       string `json:"role,omitempty"`
}

// GenerateToken signs claims with HS256 and the given secret. The expiration
// is always set here to now + validity, overriding whatever the caller put in
// the registered claims.
func GenerateToken(claims *Claims, secretKey []byte, validity time.Duration) (string, error) {
	claims.ExpiresAt = jwt.NewNumericDate(time.Now().Add(validity))

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	tokenString, err := token.SignedString(secretKey)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// ParseToken verifies the token's signature and expiration and returns the
// embedded claims. Every failure mode (bad signature, expired, malformed,
// unexpected algorithm) comes back as common.ErrInvalidToken; the underlying
// cause is wrapped for logging but callers must not surface it.
func ParseToken(tokenString string, secretKey []byte) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return secretKey, nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrInvalidToken, err)
	}

	if !token.Valid {
		return nil, common.ErrInvalidToken
	}

	return claims, nil
}
