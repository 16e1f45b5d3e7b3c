package application

import (
	"context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/fajarp/task-tracker-api/internal/domain/entity"
	repo "github.com/fajarp/task-tracker-api/internal/domain/repository"
	"github.com/fajarp/task-tracker-api/pkg/helpers"
)

var (
	// ErrTaskNotFound is returned for unknown task ids.
	ErrTaskNotFound = errors.New("invalid task id")
	// ErrNotOwner is returned when a mutation is attempted by anyone
	// but the task's owner.
	ErrNotOwner = errors.New("not authorized")
	// ErrDueAtPast is returned when a due date is before now.
	ErrDueAtPast = errors.New("due date in the past")
)

// TaskService implements owner-scoped task CRUD. Reads by id are not
// owner-scoped; only mutations are.
type TaskService struct {
	Repo   repo.TaskRepository
	Logger *logrus.Logger
}

func NewTaskService(r repo.TaskRepository, logger *logrus.Logger) *TaskService {
	return &TaskService{Repo: r, Logger: logger}
}

// CreateTaskInput is the validated create payload. DueAt is nil when
// the client sent none.
type CreateTaskInput struct {
	Name  string
	DueAt *time.Time
}

// CheckDueAt rejects due dates before today. Clients send date-only
// strings, so the rule is enforced at day granularity on both create
// and edit.
func CheckDueAt(t time.Time) error {
	if t.Before(time.Now().Truncate(24 * time.Hour)) {
		return ErrDueAtPast
	}
	return nil
}

// List returns every task owned by userID. An empty result is a valid
// success, not an error.
func (s *TaskService) List(ctx context.Context, userID string) ([]entity.Task, error) {
	return s.Repo.ListByUser(ctx, userID)
}

// Get looks a task up by id. Read access is intentionally not
// owner-scoped.
func (s *TaskService) Get(ctx context.Context, id string) (*entity.Task, error) {
	t, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, err
	}
	return t, nil
}

// Create persists a new task owned by userID. The server assigns the
// id, creation time, and completion default.
func (s *TaskService) Create(ctx context.Context, userID string, in CreateTaskInput) (*entity.Task, error) {
	dueAt := entity.DueAtNone
	if in.DueAt != nil {
		if err := CheckDueAt(*in.DueAt); err != nil {
			return nil, err
		}
		dueAt = helpers.FormatDisplay(*in.DueAt)
	}

	t := &entity.Task{
		ID:        helpers.RandomID(helpers.IDLength),
		Name:      in.Name,
		DueAt:     dueAt,
		CreatedAt: helpers.FormatDisplay(time.Now()),
		Completed: false,
		UserID:    userID,
	}
	if err := s.Repo.Create(ctx, t); err != nil {
		return nil, err
	}

	s.Logger.WithFields(logrus.Fields{"task_id": t.ID, "user_id": userID}).Info("task created")
	return t, nil
}

// Update applies the whitelisted patch to the task after checking that
// requesterID owns it.
func (s *TaskService) Update(ctx context.Context, requesterID, id string, patch repo.TaskPatch) (*entity.Task, error) {
	t, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if t.UserID != requesterID {
		return nil, ErrNotOwner
	}

	updated, err := s.Repo.Update(ctx, id, patch)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, err
	}
	return updated, nil
}

// Delete removes the task after the same lookup and ownership checks
// as Update, returning the pre-deletion snapshot.
func (s *TaskService) Delete(ctx context.Context, requesterID, id string) (*entity.Task, error) {
	t, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if t.UserID != requesterID {
		return nil, ErrNotOwner
	}

	if err := s.Repo.Delete(ctx, id); err != nil {
		return nil, err
	}
	s.Logger.WithFields(logrus.Fields{"task_id": id, "user_id": requesterID}).Info("task deleted")
	return t, nil
}
