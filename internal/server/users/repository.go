// Package users contains the user store contract and its backends.
//
// The store is a plain key-value surface: look a record up by username, or
// create one if the key is absent. Uniqueness is enforced by the backend's
// atomic create, not by a read-before-write in the caller.
package users

import (
	"context"

	"github.com/mp28jam28/board-auth/internal/server/models"
)

// Repository is the user store contract.
//
// GetByUsername returns common.ErrorNotFound when no record exists.
// Create is an atomic create-if-absent: it returns common.ErrorAlreadyExists
// when the username is already taken, even under concurrent callers.
type Repository interface {
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	Create(ctx context.Context, user *models.User) error
}
