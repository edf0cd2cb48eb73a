package users

import (
	"context"
	"sync"

	"github.com/mp28jam28/board-auth/internal/common"
	"github.com/mp28jam28/board-auth/internal/server/models"
)

// MemoryRepository is a mutex-guarded map backend. It is used by tests and
// by local runs with the "memory" store backend.
type MemoryRepository struct {
	mu    sync.RWMutex
	items map[string]models.User
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{items: make(map[string]models.User)}
}

func (r *MemoryRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.items[username]
	if !ok {
		return nil, common.ErrorNotFound
	}
	// Copy so callers cannot mutate the stored record.
	return &user, nil
}

func (r *MemoryRepository) Create(ctx context.Context, user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[user.Username]; ok {
		return common.ErrorAlreadyExists
	}
	r.items[user.Username] = *user
	return nil
}
