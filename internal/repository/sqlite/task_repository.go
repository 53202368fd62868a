package sqlite

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/adanyl0v/go-task-manager/internal/models"
	"github.com/adanyl0v/go-task-manager/internal/repository"
)

type taskRow struct {
	ID          string    `gorm:"primarykey;size:36"`
	UserID      string    `gorm:"size:36;not null;index:idx_tasks_user_id_created_at,priority:1"`
	Title       string    `gorm:"size:200;not null"`
	Description string    `gorm:"size:1000;not null"`
	DueAt       time.Time `gorm:"not null"`
	Completed   bool      `gorm:"not null"`
	CreatedAt   time.Time `gorm:"not null;index:idx_tasks_user_id_created_at,priority:2"`
}

func (taskRow) TableName() string {
	return "tasks"
}

func newTaskRow(task *models.Task) taskRow {
	return taskRow{
		ID:          task.ID().String(),
		UserID:      task.UserID().String(),
		Title:       task.Title,
		Description: task.Description,
		DueAt:       task.DueAt.UTC(),
		Completed:   task.IsCompleted(),
		CreatedAt:   task.CreatedAt().UTC(),
	}
}

func (row taskRow) toTask() (*models.Task, error) {
	id, err := uuid.Parse(row.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to parse task id %q: %w", row.ID, err)
	}
	userID, err := uuid.Parse(row.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to parse user id %q: %w", row.UserID, err)
	}

	return models.RestoreTask(
		models.RestoreRecord(id, row.CreatedAt),
		models.TaskParams{
			Title:       row.Title,
			Description: row.Description,
			DueAt:       row.DueAt,
			UserID:      userID,
		},
		row.Completed,
	), nil
}

type taskRepositoryImpl struct {
	db *gorm.DB
}

func NewTaskRepository(db *gorm.DB) repository.TaskRepository {
	return &taskRepositoryImpl{db: db}
}

func (r *taskRepositoryImpl) Add(ctx context.Context, task *models.Task) (*models.Task, error) {
	row := newTaskRow(task)
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, fmt.Errorf("%w: %s", repository.ErrDuplicateTask, row.ID)
		}
		return nil, fmt.Errorf("failed to create task: %w", err)
	}
	return task, nil
}

func (r *taskRepositoryImpl) GetByOwner(ctx context.Context, userID uuid.UUID) ([]*models.Task, error) {
	var rows []taskRow
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID.String()).
		Order("created_at").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find tasks by user id: %w", err)
	}

	tasks := make([]*models.Task, 0, len(rows))
	for _, row := range rows {
		task, err := row.toTask()
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, task)
	}
	return tasks, nil
}

// GetByID ignores forUpdate: sqlite serializes writers, there are no row locks to take.
func (r *taskRepositoryImpl) GetByID(ctx context.Context, id uuid.UUID, _ bool) (*models.Task, error) {
	var row taskRow
	err := r.db.WithContext(ctx).
		Where("id = ?", id.String()).
		Limit(1).
		Find(&row).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find task: %w", err)
	}
	if row.ID == "" {
		return nil, nil
	}
	return row.toTask()
}

func (r *taskRepositoryImpl) Update(ctx context.Context, task *models.Task) error {
	result := r.db.WithContext(ctx).
		Model(&taskRow{}).
		Where("id = ?", task.ID().String()).
		Updates(map[string]any{
			"title":       task.Title,
			"description": task.Description,
			"due_at":      task.DueAt.UTC(),
			"completed":   task.IsCompleted(),
		})
	if err := result.Error; err != nil {
		return fmt.Errorf("failed to update task: %w", err)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("%w: %s", repository.ErrConcurrentUpdate, task.ID())
	}
	return nil
}

func (r *taskRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	err := r.db.WithContext(ctx).
		Where("id = ?", id.String()).
		Delete(&taskRow{}).Error
	if err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}
	return nil
}

func (r *taskRepositoryImpl) Ping(ctx context.Context) error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return fmt.Errorf("failed to get sql.DB: %w", err)
	}
	return sqlDB.PingContext(ctx)
}
