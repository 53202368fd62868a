package app

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adanyl0v/go-task-manager/internal/repository/sqlite"
)

func TestSeedTasks(t *testing.T) {
	db, err := sqlite.Open(":memory:", false)
	require.NoError(t, err)
	require.NoError(t, sqlite.Migrate(db))
	t.Cleanup(func() { _ = sqlite.Close(db) })

	repo := sqlite.NewTaskRepository(db)
	ctx := context.Background()
	now := time.Now().UTC()

	added, err := seedTasks(ctx, repo, now)
	require.NoError(t, err)
	assert.Equal(t, 9, added)

	for i, want := range []int{4, 3, 2} {
		tasks, err := repo.GetByOwner(ctx, seedOwners[i].userID)
		require.NoError(t, err)
		assert.Len(t, tasks, want)
		for _, task := range tasks {
			assert.False(t, task.IsCompleted())
			assert.True(t, task.DueAt.After(now))
			assert.True(t, task.DueAt.Before(now.AddDate(0, 0, 8)))
		}
	}

	// A second run finds every owner populated.
	added, err = seedTasks(ctx, repo, now)
	require.NoError(t, err)
	assert.Zero(t, added)
}
