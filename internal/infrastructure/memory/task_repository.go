package memory

import (
	"context"
	"sync"

	"github.com/fajarp/task-tracker-api/internal/domain/entity"
	"github.com/fajarp/task-tracker-api/internal/domain/repository"
)

// TaskRepository is an in-memory repository.TaskRepository used by
// tests and local development.
type TaskRepository struct {
	mu    sync.RWMutex
	items map[string]entity.Task // keyed by id
	order []string               // insertion order for stable listings
}

func NewTaskRepository() *TaskRepository {
	return &TaskRepository{items: make(map[string]entity.Task)}
}

func (r *TaskRepository) Create(ctx context.Context, t *entity.Task) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items[t.ID] = *t
	r.order = append(r.order, t.ID)
	return nil
}

func (r *TaskRepository) ListByUser(ctx context.Context, userID string) ([]entity.Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	tasks := make([]entity.Task, 0)
	for _, id := range r.order {
		if t, ok := r.items[id]; ok && t.UserID == userID {
			tasks = append(tasks, t)
		}
	}
	return tasks, nil
}

func (r *TaskRepository) GetByID(ctx context.Context, id string) (*entity.Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	t, ok := r.items[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &t, nil
}

func (r *TaskRepository) Update(ctx context.Context, id string, patch repository.TaskPatch) (*entity.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.items[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	if patch.Name != nil {
		t.Name = *patch.Name
	}
	if patch.DueAt != nil {
		t.DueAt = *patch.DueAt
	}
	if patch.Completed != nil {
		t.Completed = *patch.Completed
	}
	r.items[id] = t
	return &t, nil
}

func (r *TaskRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.items, id)
	return nil
}

var _ repository.TaskRepository = (*TaskRepository)(nil)
