package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/adanyl0v/go-task-manager/internal/models"
	"github.com/adanyl0v/go-task-manager/internal/repository"
)

type taskRepositoryImpl struct {
	pgPool *pgxpool.Pool
}

func NewTaskRepository(pgPool *pgxpool.Pool) repository.TaskRepository {
	return &taskRepositoryImpl{
		pgPool: pgPool,
	}
}

func (r *taskRepositoryImpl) Add(ctx context.Context, task *models.Task) (*models.Task, error) {
	const insertTaskQuery = `
INSERT INTO tasks (id,
                   user_id,
                   title,
                   description,
                   due_at,
                   completed,
                   created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)
`
	_, err := r.pgPool.Exec(
		ctx,
		insertTaskQuery,
		task.ID(),
		task.UserID(),
		task.Title,
		task.Description,
		task.DueAt,
		task.IsCompleted(),
		task.CreatedAt(),
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return nil, fmt.Errorf("%w: %s", repository.ErrDuplicateTask, task.ID())
		}
		return nil, fmt.Errorf("failed to insert task: %w", err)
	}

	return task, nil
}

func (r *taskRepositoryImpl) GetByOwner(ctx context.Context, userID uuid.UUID) ([]*models.Task, error) {
	const selectTasksByUserIDQuery = `
SELECT id,
       title,
       description,
       due_at,
       completed,
       created_at
FROM tasks
WHERE user_id = $1
ORDER BY created_at
`
	rows, err := r.pgPool.Query(
		ctx,
		selectTasksByUserIDQuery,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to select tasks by user id: %w", err)
	}
	defer rows.Close()

	tasks := make([]*models.Task, 0)
	for rows.Next() {
		var (
			id        uuid.UUID
			createdAt time.Time
			completed bool
			params    = models.TaskParams{UserID: userID}
		)
		err = rows.Scan(
			&id,
			&params.Title,
			&params.Description,
			&params.DueAt,
			&completed,
			&createdAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan task: %w", err)
		}
		tasks = append(tasks, models.RestoreTask(models.RestoreRecord(id, createdAt), params, completed))
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("failed to iterate over rows: %w", err)
	}

	return tasks, nil
}

func (r *taskRepositoryImpl) GetByID(ctx context.Context, id uuid.UUID, forUpdate bool) (*models.Task, error) {
	selectTaskByIDQuery := `
SELECT user_id,
       title,
       description,
       due_at,
       completed,
       created_at
FROM tasks
WHERE id = $1
`
	if forUpdate {
		selectTaskByIDQuery += "FOR UPDATE\n"
	}

	var (
		createdAt time.Time
		completed bool
		params    models.TaskParams
	)
	err := r.pgPool.QueryRow(
		ctx,
		selectTaskByIDQuery,
		id,
	).Scan(
		&params.UserID,
		&params.Title,
		&params.Description,
		&params.DueAt,
		&completed,
		&createdAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to select task by id: %w", err)
	}

	return models.RestoreTask(models.RestoreRecord(id, createdAt), params, completed), nil
}

func (r *taskRepositoryImpl) Update(ctx context.Context, task *models.Task) error {
	const updateTaskQuery = `
UPDATE tasks
SET title = $1,
    description = $2,
    due_at = $3,
    completed = $4
WHERE id = $5
`
	tag, err := r.pgPool.Exec(
		ctx,
		updateTaskQuery,
		task.Title,
		task.Description,
		task.DueAt,
		task.IsCompleted(),
		task.ID(),
	)
	if err != nil {
		return fmt.Errorf("failed to update task: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: %s", repository.ErrConcurrentUpdate, task.ID())
	}

	return nil
}

func (r *taskRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	const deleteTaskQuery = `
DELETE FROM tasks
WHERE id = $1
`
	_, err := r.pgPool.Exec(
		ctx,
		deleteTaskQuery,
		id,
	)
	if err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}

	return nil
}

func (r *taskRepositoryImpl) Ping(ctx context.Context) error {
	return r.pgPool.Ping(ctx)
}
