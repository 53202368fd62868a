package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/adanyl0v/go-task-manager/internal/models"
	"github.com/adanyl0v/go-task-manager/internal/repository"
)

type taskServiceImpl struct {
	logger zerolog.Logger
	tasks  repository.TaskRepository
	now    func() time.Time
}

func NewTaskService(
	logger zerolog.Logger,
	tasks repository.TaskRepository,
) TaskService {
	return &taskServiceImpl{
		logger: logger,
		tasks:  tasks,
		now:    time.Now,
	}
}

// log prefers the request logger stored in ctx, which carries the
// correlation id.
func (s *taskServiceImpl) log(ctx context.Context) *zerolog.Logger {
	if l := zerolog.Ctx(ctx); l.GetLevel() != zerolog.Disabled {
		return l
	}
	return &s.logger
}

func (s *taskServiceImpl) CreateTask(ctx context.Context, params *CreateTaskParams) (*models.Task, error) {
	if params == nil {
		return nil, NewValidationError("Task cannot be nil")
	}
	logger := s.log(ctx)

	task, err := models.NewTask(models.TaskParams{
		Title:       params.Title,
		Description: params.Description,
		DueAt:       params.DueAt,
		UserID:      params.UserID,
	}, s.now().UTC())
	if err != nil {
		logger.Error().
			Err(err).
			Msg("failed to build task")
		return nil, err
	}

	logger.Info().
		Str("user_id", params.UserID.String()).
		Msg("creating new task")
	created, err := s.tasks.Add(ctx, task)
	if err != nil {
		return nil, err
	}

	logger.Info().
		Str("task_id", created.ID().String()).
		Str("user_id", created.UserID().String()).
		Msg("created task")
	return created, nil
}

func (s *taskServiceImpl) GetUserTasks(ctx context.Context, userID uuid.UUID) ([]*models.Task, error) {
	logger := s.log(ctx)

	logger.Debug().
		Str("user_id", userID.String()).
		Msg("fetching tasks")
	tasks, err := s.tasks.GetByOwner(ctx, userID)
	if err != nil {
		return nil, err
	}

	if len(tasks) == 0 {
		logger.Info().
			Str("user_id", userID.String()).
			Msg("no tasks found, returning empty list")
		return []*models.Task{}, nil
	}

	logger.Debug().
		Int("count", len(tasks)).
		Str("user_id", userID.String()).
		Msg("found tasks")
	return tasks, nil
}

func (s *taskServiceImpl) CompleteTask(ctx context.Context, taskID uuid.UUID) error {
	logger := s.log(ctx)

	logger.Debug().
		Str("task_id", taskID.String()).
		Msg("completing task")
	task, err := s.tasks.GetByID(ctx, taskID, true)
	if err != nil {
		return err
	}
	if task == nil {
		logger.Warn().
			Str("task_id", taskID.String()).
			Msg("task not found for completion")
		return NewNotFoundError(taskID)
	}

	task.MarkAsComplete()
	err = s.tasks.Update(ctx, task)
	if err != nil {
		return err
	}

	logger.Info().
		Str("task_id", taskID.String()).
		Msg("task marked as completed")
	return nil
}

func (s *taskServiceImpl) DeleteTask(ctx context.Context, taskID uuid.UUID) error {
	logger := s.log(ctx)

	logger.Debug().
		Str("task_id", taskID.String()).
		Msg("deleting task")
	task, err := s.tasks.GetByID(ctx, taskID, true)
	if err != nil {
		return err
	}
	if task == nil {
		logger.Warn().
			Str("task_id", taskID.String()).
			Msg("task not found for deletion")
		return NewNotFoundError(taskID)
	}

	err = s.tasks.Delete(ctx, taskID)
	if err != nil {
		return err
	}

	logger.Info().
		Str("task_id", taskID.String()).
		Msg("task deleted")
	return nil
}
