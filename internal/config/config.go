// Package config handles loading of the application settings from the
// environment and of job files describing a pipeline run.
package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/BartekS5/tabconv/pkg/database"
)

var ErrInvalidConfig = errors.New("invalid configuration")

// Config holds all configuration for the application,
// typically loaded from environment variables (populated by the .env file in main.go).
type Config struct {
	LogLevel        string        `env:"LOG_LEVEL" envDefault:"info"`
	LogJSON         bool          `env:"LOG_JSON" envDefault:"false"`
	LogFile         string        `env:"LOG_FILE"`
	OutputDir       string        `env:"OUTPUT_DIR" envDefault:"."`
	SQLDriver       string        `env:"SQL_DRIVER" envDefault:"sqlite3"`
	SQLConnString   string        `env:"SQL_CONNECTION_STRING"`
	MongoConnString string        `env:"MONGO_CONNECTION_STRING"`
	MongoDatabase   string        `env:"MONGO_DATABASE" envDefault:"mydb"`
	HTTPTimeout     time.Duration `env:"HTTP_TIMEOUT" envDefault:"30s"`
}

// LoadConfig loads application settings from environment variables.
func LoadConfig() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidConfig, err.Error())
	}

	if err := validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func validate(cfg *Config) error {
	var problems []string

	if _, err := database.DialectFor(cfg.SQLDriver); err != nil {
		problems = append(problems, "SQL_DRIVER must be one of sqlite3, sqlserver")
	}
	if cfg.SQLDriver == database.DriverSQLServer && cfg.SQLConnString == "" {
		problems = append(problems, "SQL_CONNECTION_STRING is required for the sqlserver driver")
	}
	if cfg.HTTPTimeout <= 0 {
		problems = append(problems, "HTTP_TIMEOUT must be positive")
	}
	if cfg.OutputDir == "" {
		problems = append(problems, "OUTPUT_DIR must not be empty")
	}

	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(problems, ", "))
	}
	return nil
}

// SQLDataSource returns the connection string of the SQL store. Without an
// explicit connection string the store is the output.db file in OutputDir.
func (c *Config) SQLDataSource() string {
	if c.SQLConnString != "" {
		return c.SQLConnString
	}
	return filepath.Join(c.OutputDir, "output.db")
}
