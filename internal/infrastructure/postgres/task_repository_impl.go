package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/fajarp/task-tracker-api/internal/domain/entity"
	"github.com/fajarp/task-tracker-api/internal/domain/repository"
)

type TaskRepository struct {
	pool *pgxpool.Pool
}

func NewTaskRepository(pool *pgxpool.Pool) *TaskRepository {
	return &TaskRepository{pool: pool}
}

func (r *TaskRepository) Create(ctx context.Context, t *entity.Task) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO tasks (id, name, due_at, created_at, completed, user_id)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, t.ID, t.Name, t.DueAt, t.CreatedAt, t.Completed, t.UserID)
	return err
}

func (r *TaskRepository) ListByUser(ctx context.Context, userID string) ([]entity.Task, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, name, due_at, created_at, completed, user_id
		FROM tasks
		WHERE user_id = $1
		ORDER BY created_at
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tasks := make([]entity.Task, 0)
	for rows.Next() {
		var t entity.Task
		if err := rows.Scan(&t.ID, &t.Name, &t.DueAt, &t.CreatedAt, &t.Completed, &t.UserID); err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}
	return tasks, rows.Err()
}

func (r *TaskRepository) GetByID(ctx context.Context, id string) (*entity.Task, error) {
	t := &entity.Task{}
	row := r.pool.QueryRow(ctx, `
		SELECT id, name, due_at, created_at, completed, user_id
		FROM tasks
		WHERE id = $1
	`, id)

	if err := row.Scan(&t.ID, &t.Name, &t.DueAt, &t.CreatedAt, &t.Completed, &t.UserID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return t, nil
}

// Update applies the patch atomically in a single statement; fields
// with nil pointers are left as-is via COALESCE.
func (r *TaskRepository) Update(ctx context.Context, id string, patch repository.TaskPatch) (*entity.Task, error) {
	t := &entity.Task{}
	row := r.pool.QueryRow(ctx, `
		UPDATE tasks
		SET name      = COALESCE($1, name),
		    due_at    = COALESCE($2, due_at),
		    completed = COALESCE($3, completed)
		WHERE id = $4
		RETURNING id, name, due_at, created_at, completed, user_id
	`, patch.Name, patch.DueAt, patch.Completed, id)

	if err := row.Scan(&t.ID, &t.Name, &t.DueAt, &t.CreatedAt, &t.Completed, &t.UserID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return t, nil
}

func (r *TaskRepository) Delete(ctx context.Context, id string) error {
	res, err := r.pool.Exec(ctx, `DELETE FROM tasks WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

var _ repository.TaskRepository = (*TaskRepository)(nil)
