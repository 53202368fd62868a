package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/adanyl0v/go-task-manager/internal/models"
)

var (
	ErrConcurrentUpdate = errors.New("task was deleted or modified concurrently")
	ErrDuplicateTask    = errors.New("task with this id already exists")
)

// TaskRepository is the persistence contract for tasks. Implementations
// must abort pending work when ctx is canceled.
type TaskRepository interface {
	// Add persists a new task and returns it.
	Add(ctx context.Context, task *models.Task) (*models.Task, error)

	// GetByOwner returns the tasks owned by userID, oldest first. The
	// result is empty, never nil, when the owner has no tasks.
	GetByOwner(ctx context.Context, userID uuid.UUID) ([]*models.Task, error)

	// GetByID returns the task with the given id, or nil with no error if
	// it doesn't exist. forUpdate must be true when the caller is going to
	// pass the result to Update.
	GetByID(ctx context.Context, id uuid.UUID, forUpdate bool) (*models.Task, error)

	// Update persists the mutable state of task. It returns
	// ErrConcurrentUpdate if the task no longer exists.
	Update(ctx context.Context, task *models.Task) error

	// Delete removes the task with the given id. Deleting a task that
	// doesn't exist is a no-op.
	Delete(ctx context.Context, id uuid.UUID) error

	Ping(ctx context.Context) error
}
