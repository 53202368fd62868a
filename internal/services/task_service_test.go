package services

import (
	"bytes"
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adanyl0v/go-task-manager/internal/models"
	"github.com/adanyl0v/go-task-manager/internal/repository"
)

// fakeRepository keeps tasks in a map and honors context cancellation.
type fakeRepository struct {
	mu    sync.Mutex
	tasks map[uuid.UUID]*models.Task
	order []uuid.UUID

	failWith  error
	forUpdate []bool
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{tasks: make(map[uuid.UUID]*models.Task)}
}

func (r *fakeRepository) check(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return r.failWith
}

func (r *fakeRepository) Add(ctx context.Context, task *models.Task) (*models.Task, error) {
	if err := r.check(ctx); err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.tasks[task.ID()] = task
	r.order = append(r.order, task.ID())
	return task, nil
}

func (r *fakeRepository) GetByOwner(ctx context.Context, userID uuid.UUID) ([]*models.Task, error) {
	if err := r.check(ctx); err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	var tasks []*models.Task
	for _, id := range r.order {
		if task, ok := r.tasks[id]; ok && task.UserID() == userID {
			tasks = append(tasks, task)
		}
	}
	return tasks, nil
}

func (r *fakeRepository) GetByID(ctx context.Context, id uuid.UUID, forUpdate bool) (*models.Task, error) {
	if err := r.check(ctx); err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.forUpdate = append(r.forUpdate, forUpdate)
	task, ok := r.tasks[id]
	if !ok {
		return nil, nil
	}
	clone := *task
	return &clone, nil
}

func (r *fakeRepository) Update(ctx context.Context, task *models.Task) error {
	if err := r.check(ctx); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.tasks[task.ID()]; !ok {
		return repository.ErrConcurrentUpdate
	}
	r.tasks[task.ID()] = task
	return nil
}

func (r *fakeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if err := r.check(ctx); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.tasks, id)
	return nil
}

func (r *fakeRepository) Ping(ctx context.Context) error {
	return ctx.Err()
}

func newTestService(t *testing.T) (*taskServiceImpl, *fakeRepository, *bytes.Buffer) {
	t.Helper()

	var buf bytes.Buffer
	repo := newFakeRepository()
	svc := NewTaskService(zerolog.New(&buf).Level(zerolog.DebugLevel), repo).(*taskServiceImpl)
	return svc, repo, &buf
}

func validParams(userID uuid.UUID) *CreateTaskParams {
	return &CreateTaskParams{
		Title:       "Implement API",
		Description: "Create task manager endpoints",
		DueAt:       time.Now().Add(7 * 24 * time.Hour).UTC(),
		UserID:      userID,
	}
}

func TestCreateTask(t *testing.T) {
	svc, repo, logs := newTestService(t)
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }
	params := validParams(uuid.New())

	task, err := svc.CreateTask(context.Background(), params)
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, task.ID())
	assert.Equal(t, now, task.CreatedAt())
	assert.Equal(t, params.Title, task.Title)
	assert.Equal(t, params.Description, task.Description)
	assert.Equal(t, params.DueAt, task.DueAt)
	assert.Equal(t, params.UserID, task.UserID())
	assert.False(t, task.IsCompleted())
	assert.Contains(t, repo.tasks, task.ID())

	assert.Contains(t, logs.String(), "creating new task")
	assert.Contains(t, logs.String(), "created task")
	assert.Contains(t, logs.String(), task.ID().String())
}

func TestCreateTask_NilParams(t *testing.T) {
	svc, repo, _ := newTestService(t)

	task, err := svc.CreateTask(context.Background(), nil)
	assert.Nil(t, task)

	e, ok := AsError(err)
	require.True(t, ok, "got %v", err)
	assert.Equal(t, KindValidation, e.Kind)
	assert.Empty(t, repo.tasks)
}

func TestCreateThenList_RoundTrip(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()
	params := validParams(uuid.New())

	created, err := svc.CreateTask(ctx, params)
	require.NoError(t, err)

	tasks, err := svc.GetUserTasks(ctx, params.UserID)
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, created.ID(), tasks[0].ID())
	assert.Equal(t, params.Title, tasks[0].Title)
	assert.Equal(t, params.Description, tasks[0].Description)
	assert.Equal(t, params.DueAt, tasks[0].DueAt)
	assert.False(t, tasks[0].IsCompleted())
}

func TestGetUserTasks_Empty(t *testing.T) {
	svc, _, logs := newTestService(t)

	tasks, err := svc.GetUserTasks(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.NotNil(t, tasks)
	assert.Empty(t, tasks)
	assert.Contains(t, logs.String(), `"level":"info"`)
	assert.Contains(t, logs.String(), "no tasks found")
}

func TestGetUserTasks_LogsCount(t *testing.T) {
	svc, _, logs := newTestService(t)
	ctx := context.Background()
	userID := uuid.New()
	for i := 0; i < 2; i++ {
		_, err := svc.CreateTask(ctx, validParams(userID))
		require.NoError(t, err)
	}

	tasks, err := svc.GetUserTasks(ctx, userID)
	require.NoError(t, err)
	assert.Len(t, tasks, 2)
	assert.Contains(t, logs.String(), `"count":2`)
}

func TestCompleteTask(t *testing.T) {
	svc, repo, _ := newTestService(t)
	ctx := context.Background()
	task, err := svc.CreateTask(ctx, validParams(uuid.New()))
	require.NoError(t, err)

	require.NoError(t, svc.CompleteTask(ctx, task.ID()))
	assert.True(t, repo.tasks[task.ID()].IsCompleted())
	assert.Equal(t, []bool{true}, repo.forUpdate)

	// A second completion still succeeds and the task stays completed.
	require.NoError(t, svc.CompleteTask(ctx, task.ID()))
	assert.True(t, repo.tasks[task.ID()].IsCompleted())
}

func TestCompleteTask_NotFound(t *testing.T) {
	svc, _, logs := newTestService(t)
	id := uuid.New()

	err := svc.CompleteTask(context.Background(), id)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrTaskNotFound))

	e, ok := AsError(err)
	require.True(t, ok)
	assert.Equal(t, KindNotFound, e.Kind)
	assert.Contains(t, e.Message, id.String())
	assert.Contains(t, logs.String(), `"level":"warn"`)
}

func TestDeleteTask_ExactlyOnce(t *testing.T) {
	svc, repo, _ := newTestService(t)
	ctx := context.Background()
	task, err := svc.CreateTask(ctx, validParams(uuid.New()))
	require.NoError(t, err)

	require.NoError(t, svc.DeleteTask(ctx, task.ID()))
	assert.NotContains(t, repo.tasks, task.ID())

	err = svc.DeleteTask(ctx, task.ID())
	assert.True(t, errors.Is(err, ErrTaskNotFound), "got %v", err)
}

func TestDeleteTask_NotFound(t *testing.T) {
	svc, _, logs := newTestService(t)

	err := svc.DeleteTask(context.Background(), uuid.New())
	assert.True(t, errors.Is(err, ErrTaskNotFound))
	assert.Contains(t, logs.String(), "task not found for deletion")
}

func TestRepositoryErrorsPropagate(t *testing.T) {
	svc, repo, _ := newTestService(t)
	ctx := context.Background()
	repoErr := errors.New("connection reset")
	repo.failWith = repoErr

	_, err := svc.CreateTask(ctx, validParams(uuid.New()))
	assert.Same(t, repoErr, err)

	_, err = svc.GetUserTasks(ctx, uuid.New())
	assert.Same(t, repoErr, err)

	err = svc.CompleteTask(ctx, uuid.New())
	assert.Same(t, repoErr, err)

	err = svc.DeleteTask(ctx, uuid.New())
	assert.Same(t, repoErr, err)

	_, ok := AsError(err)
	assert.False(t, ok)
}

func TestCanceledContext(t *testing.T) {
	svc, repo, _ := newTestService(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := svc.CreateTask(ctx, validParams(uuid.New()))
	assert.True(t, errors.Is(err, context.Canceled))
	assert.Empty(t, repo.tasks)

	err = svc.CompleteTask(ctx, uuid.New())
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestContextLoggerIsPreferred(t *testing.T) {
	svc, _, serviceLogs := newTestService(t)

	var requestLogs bytes.Buffer
	requestLogger := zerolog.New(&requestLogs).With().Str("correlation_id", "abc12345").Logger()
	ctx := requestLogger.WithContext(context.Background())

	_, err := svc.GetUserTasks(ctx, uuid.New())
	require.NoError(t, err)

	assert.Contains(t, requestLogs.String(), `"correlation_id":"abc12345"`)
	assert.Empty(t, serviceLogs.String())
}
