package repository

import (
	"context"
	"errors"

	"github.com/fajarp/task-tracker-api/internal/domain/entity"
)

// ErrNotFound is returned by all repositories when no record matches.
var ErrNotFound = errors.New("not found")

// UserRepository defines the interface for user persistence.
type UserRepository interface {
	Create(ctx context.Context, u *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByUsername(ctx context.Context, username string) (*entity.User, error)
}
