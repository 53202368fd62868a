package app

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/adanyl0v/go-task-manager/internal/models"
	"github.com/adanyl0v/go-task-manager/internal/repository"
)

type seedTask struct {
	title       string
	description string
	dueInDays   int
}

type seedOwner struct {
	userID uuid.UUID
	tasks  []seedTask
}

var seedOwners = []seedOwner{
	{
		userID: uuid.MustParse("00000000-0000-0000-0000-000000000001"),
		tasks: []seedTask{
			{"Implement API", "Create task manager endpoints", 7},
			{"Configure database", "Define data models", 5},
			{"Unit tests", "Implement test suite", 3},
			{"Initial deploy", "Configure production environment", 1},
		},
	},
	{
		userID: uuid.MustParse("00000000-0000-0000-0000-000000000002"),
		tasks: []seedTask{
			{"Documentation", "Write integration guide", 2},
			{"Code review", "Review team pull requests", 4},
			{"Optimize performance", "Find and fix bottlenecks in the system", 6},
		},
	},
	{
		userID: uuid.MustParse("00000000-0000-0000-0000-000000000003"),
		tasks: []seedTask{
			{"Monitoring", "Configure metrics", 1},
			{"Configure CI/CD", "Implement automated deploy pipeline", 2},
		},
	},
}

func MustSeedStorage(ctx context.Context) {
	added, err := seedTasks(ctx, globalTaskRepository, time.Now().UTC())
	if err != nil {
		globalLogger.Error().
			Err(err).
			Msg("failed to seed storage")
		panic(err)
	}
	globalLogger.Info().
		Int("count", added).
		Msg("seeded storage")
}

// seedTasks adds the sample tasks of every owner that has none yet and
// returns how many were added.
func seedTasks(ctx context.Context, tasks repository.TaskRepository, now time.Time) (int, error) {
	added := 0
	for _, owner := range seedOwners {
		existing, err := tasks.GetByOwner(ctx, owner.userID)
		if err != nil {
			return added, err
		}
		if len(existing) > 0 {
			globalLogger.Debug().
				Str("user_id", owner.userID.String()).
				Msg("owner already has tasks, skipping")
			continue
		}

		for _, st := range owner.tasks {
			task, err := models.NewTask(models.TaskParams{
				Title:       st.title,
				Description: st.description,
				DueAt:       now.AddDate(0, 0, st.dueInDays),
				UserID:      owner.userID,
			}, now)
			if err != nil {
				return added, err
			}

			_, err = tasks.Add(ctx, task)
			if err != nil {
				return added, err
			}
			added++
		}
	}
	return added, nil
}
