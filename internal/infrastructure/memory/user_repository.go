package memory

import (
	"context"
	"sync"

	"github.com/fajarp/task-tracker-api/internal/domain/entity"
	"github.com/fajarp/task-tracker-api/internal/domain/repository"
)

// UserRepository is an in-memory repository.UserRepository used by
// tests and local development.
type UserRepository struct {
	mu    sync.RWMutex
	items map[string]entity.User // keyed by id
}

func NewUserRepository() *UserRepository {
	return &UserRepository{items: make(map[string]entity.User)}
}

func (r *UserRepository) Create(ctx context.Context, u *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items[u.ID] = *u
	return nil
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (*entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	u, ok := r.items[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &u, nil
}

func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, u := range r.items {
		if u.Username == username {
			u := u
			return &u, nil
		}
	}
	return nil, repository.ErrNotFound
}

var _ repository.UserRepository = (*UserRepository)(nil)
