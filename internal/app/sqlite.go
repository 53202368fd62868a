package app

import (
	"gorm.io/gorm"

	"github.com/adanyl0v/go-task-manager/internal/config"
	"github.com/adanyl0v/go-task-manager/internal/repository/sqlite"
)

var globalSQLiteDB *gorm.DB

func mustConnectSQLite() {
	cfg := config.Global().SQLite

	var err error
	globalSQLiteDB, err = sqlite.Open(cfg.Path, cfg.Debug)
	if err != nil {
		globalLogger.Error().
			Err(err).
			Str("path", cfg.Path).
			Msg("failed to open sqlite database")
		panic(err)
	}
	globalLogger.Info().
		Str("path", cfg.Path).
		Msg("opened sqlite database")

	globalTaskRepository = sqlite.NewTaskRepository(globalSQLiteDB)
}

func mustMigrateSQLite() {
	err := sqlite.Migrate(globalSQLiteDB)
	if err != nil {
		globalLogger.Error().
			Err(err).
			Msg("failed to migrate sqlite database")
		panic(err)
	}
	globalLogger.Info().Msg("migrated sqlite database")
}

func disconnectSQLite() {
	err := sqlite.Close(globalSQLiteDB)
	if err != nil {
		globalLogger.Error().
			Err(err).
			Msg("failed to close sqlite database")
		return
	}
	globalLogger.Info().Msg("closed sqlite database")
}
