package repository

import (
	"context"

	"github.com/fajarp/task-tracker-api/internal/domain/entity"
)

// TaskPatch carries the whitelisted mutable fields of a task. A nil
// pointer means the field is left untouched.
type TaskPatch struct {
	Name      *string
	DueAt     *string
	Completed *bool
}

// TaskRepository defines the interface for task persistence.
type TaskRepository interface {
	Create(ctx context.Context, t *entity.Task) error
	ListByUser(ctx context.Context, userID string) ([]entity.Task, error)
	GetByID(ctx context.Context, id string) (*entity.Task, error)
	Update(ctx context.Context, id string, patch TaskPatch) (*entity.Task, error)
	Delete(ctx context.Context, id string) error
}
