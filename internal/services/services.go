package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/adanyl0v/go-task-manager/internal/models"
)

type TaskService interface {
	// CreateTask stores a new incomplete task built from params and
	// returns it with its generated ID and creation time.
	//
	// It returns a validation *Error if params is nil. The params are
	// expected to be validated by the caller.
	CreateTask(ctx context.Context, params *CreateTaskParams) (*models.Task, error)

	// GetUserTasks returns all tasks of the user, or an empty slice
	// if the user has none.
	GetUserTasks(ctx context.Context, userID uuid.UUID) ([]*models.Task, error)

	// CompleteTask marks the task as completed. Completing a completed
	// task succeeds and leaves it completed.
	//
	// It returns a not-found *Error matching ErrTaskNotFound if the
	// task doesn't exist.
	CompleteTask(ctx context.Context, taskID uuid.UUID) error

	// DeleteTask permanently removes the task.
	//
	// It returns a not-found *Error matching ErrTaskNotFound if the
	// task doesn't exist.
	DeleteTask(ctx context.Context, taskID uuid.UUID) error
}

type CreateTaskParams struct {
	Title       string
	Description string
	DueAt       time.Time
	UserID      uuid.UUID
}
