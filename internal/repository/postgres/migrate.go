package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

var migrations = []string{
	`
CREATE TABLE IF NOT EXISTS tasks (
    id          UUID PRIMARY KEY,
    user_id     UUID NOT NULL,
    title       VARCHAR(200) NOT NULL,
    description VARCHAR(1000) NOT NULL DEFAULT '',
    due_at      TIMESTAMPTZ NOT NULL,
    completed   BOOLEAN NOT NULL DEFAULT FALSE,
    created_at  TIMESTAMPTZ NOT NULL
)
`,
	`
CREATE INDEX IF NOT EXISTS tasks_user_id_created_at_idx
    ON tasks (user_id, created_at)
`,
}

// Migrate creates the tasks schema if it doesn't exist yet.
func Migrate(ctx context.Context, pgPool *pgxpool.Pool) error {
	for i, query := range migrations {
		_, err := pgPool.Exec(ctx, query)
		if err != nil {
			return fmt.Errorf("failed to apply migration %d: %w", i, err)
		}
	}
	return nil
}
