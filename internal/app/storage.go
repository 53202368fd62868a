package app

import (
	"context"
	"fmt"

	"github.com/adanyl0v/go-task-manager/internal/config"
	"github.com/adanyl0v/go-task-manager/internal/repository"
)

var globalTaskRepository repository.TaskRepository

func MustConnectStorage() {
	driver := config.Global().Storage.Driver
	switch driver {
	case config.StorageDriverPostgres:
		mustConnectPostgres()
	case config.StorageDriverSQLite:
		mustConnectSQLite()
	default:
		globalLogger.Error().
			Str("driver", driver).
			Msg("unknown storage driver")
		panic(fmt.Errorf("unknown storage driver: %s", driver))
	}
}

// MustMigrateStorage creates the schema if it does not exist yet.
func MustMigrateStorage(ctx context.Context) {
	switch config.Global().Storage.Driver {
	case config.StorageDriverPostgres:
		mustMigratePostgres(ctx)
	case config.StorageDriverSQLite:
		mustMigrateSQLite()
	}
}

func DisconnectStorage() {
	switch config.Global().Storage.Driver {
	case config.StorageDriverPostgres:
		disconnectPostgres()
	case config.StorageDriverSQLite:
		disconnectSQLite()
	}
}
