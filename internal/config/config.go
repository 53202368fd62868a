package config

import (
	"errors"
	"fmt"
	"time"
)

const (
	EnvDev   = "dev"
	EnvProd  = "prod"
	EnvLocal = "local"
)

const (
	StorageDriverPostgres = "postgres"
	StorageDriverSQLite   = "sqlite"
)

var globalConfig *Config

func Global() *Config {
	return globalConfig
}

func SetGlobal(cfg *Config) {
	globalConfig = cfg
}

type Config struct {
	Env         string `env:"ENV" env-required:"true"`
	SeedOnStart bool   `env:"SEED_ON_START" env-default:"false"`
	HTTP        HTTPConfig
	Storage     StorageConfig
	Postgres    PostgresConfig
	SQLite      SQLiteConfig
}

type HTTPConfig struct {
	Host              string        `env:"HTTP_HOST" env-default:"0.0.0.0"`
	Port              string        `env:"HTTP_PORT" env-default:"8080"`
	ShutdownTimeout   time.Duration `env:"HTTP_SHUTDOWN_TIMEOUT" env-default:"5s"`
	ReadHeaderTimeout time.Duration `env:"HTTP_READ_HEADER_TIMEOUT" env-default:"5s"`
}

type StorageConfig struct {
	Driver string `env:"STORAGE_DRIVER" env-default:"sqlite"`
}

type SQLiteConfig struct {
	Path  string `env:"SQLITE_PATH" env-default:"tasks.db"`
	Debug bool   `env:"SQLITE_DEBUG" env-default:"false"`
}

// PostgresConfig is only read when the postgres driver is selected.
type PostgresConfig struct {
	Host           string        `env:"POSTGRES_HOST"`
	Port           int           `env:"POSTGRES_PORT" env-default:"5432"`
	Username       string        `env:"POSTGRES_USERNAME"`
	Password       string        `env:"POSTGRES_PASSWORD"`
	Database       string        `env:"POSTGRES_DATABASE"`
	SSLMode        string        `env:"POSTGRES_SSL_MODE" env-default:"disable"`
	ConnectTimeout time.Duration `env:"POSTGRES_CONNECT_TIMEOUT" env-default:"10s"`
	PingTimeout    time.Duration `env:"POSTGRES_PING_TIMEOUT" env-default:"10s"`
}

func (c *Config) Validate() error {
	switch c.Env {
	case EnvLocal, EnvDev, EnvProd:
	default:
		return fmt.Errorf("unknown env: %q", c.Env)
	}

	switch c.Storage.Driver {
	case StorageDriverSQLite:
		if c.SQLite.Path == "" {
			return errors.New("SQLITE_PATH is required")
		}
	case StorageDriverPostgres:
		return c.Postgres.validate()
	default:
		return fmt.Errorf("unknown storage driver: %q", c.Storage.Driver)
	}
	return nil
}

func (c *PostgresConfig) validate() error {
	var missing []error
	for name, value := range map[string]string{
		"POSTGRES_HOST":     c.Host,
		"POSTGRES_USERNAME": c.Username,
		"POSTGRES_PASSWORD": c.Password,
		"POSTGRES_DATABASE": c.Database,
	} {
		if value == "" {
			missing = append(missing, fmt.Errorf("%s is required", name))
		}
	}
	return errors.Join(missing...)
}
