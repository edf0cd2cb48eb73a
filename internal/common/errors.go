// Package common defines shared constants and sentinel errors used across
// client and server layers of the service. Callers should use errors.Is to
// match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound      = errors.New("not found")
	ErrorAlreadyExists = errors.New("already exists")

	// Service-level errors (generic/internal flow control).
	ErrorInternal     = errors.New("internal error")
	ErrorUnauthorized = errors.New("unauthorized")

	// Validation errors.
	ErrorMissingField = errors.New("missing required field")

	// Auth errors. ErrInvalidToken covers bad signature, malformed input
	// and expiration alike; callers must not be able to tell them apart.
	ErrInvalidToken = errors.New("invalid token")
)
