package users

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/authkeeper/internal/common"
	"github.com/dmitrijs2005/authkeeper/internal/server/models"
)

// InMemoryRepository keeps records in a mutex-guarded map. It is the default
// store when no database DSN is configured, and the workhorse for tests.
type InMemoryRepository struct {
	mu    sync.RWMutex
	users map[string]models.User
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{users: make(map[string]models.User)}
}

// Create re-checks existence under the write lock, so concurrent
// registrations for one username cannot both succeed.
func (r *InMemoryRepository) Create(ctx context.Context, user *models.User) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.users[user.UserName]; ok {
		return nil, common.ErrorAlreadyExists
	}

	r.users[user.UserName] = *user

	stored := *user
	return &stored, nil
}

func (r *InMemoryRepository) GetUserByName(ctx context.Context, username string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.users[username]
	if !ok {
		return nil, common.ErrorNotFound
	}

	stored := u
	return &stored, nil
}

func (r *InMemoryRepository) SetToken(ctx context.Context, username string, token string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.users[username]
	if !ok {
		return common.ErrorNotFound
	}

	u.CurrentToken = token
	r.users[username] = u
	return nil
}
