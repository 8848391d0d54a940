package config

import (
	"fmt"
	"slices"
	"strings"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	// Storage backend: memory, file or sqlite
	Backend string `env:"BUDGET_BACKEND" envDefault:"file"`

	// File backend directory, also the seed directory of the memory backend
	DataDir string `env:"BUDGET_DATA_DIR" envDefault:"./data"`

	// SQLite backend
	SQLiteDBPath string `env:"BUDGET_SQLITE_PATH" envDefault:"./data/budget.db"`

	// Key under which the whole store is saved
	StorageKey string `env:"BUDGET_STORAGE_KEY" envDefault:"finance-store"`

	// Logging
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"text"`
}

var (
	validBackends   = []string{"memory", "file", "sqlite"}
	validLogLevels  = []string{"debug", "info", "warn", "warning", "error"}
	validLogFormats = []string{"text", "json"}
)

// Load reads the configuration from the environment, applying defaults.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// Validate validates the configuration and returns an error if invalid
func (c *Config) Validate() error {
	var errors []string

	if !slices.Contains(validBackends, c.Backend) {
		errors = append(errors, fmt.Sprintf("invalid backend '%s': must be one of %v", c.Backend, validBackends))
	}

	switch c.Backend {
	case "file":
		if strings.TrimSpace(c.DataDir) == "" {
			errors = append(errors, "data directory cannot be empty when using file backend")
		}
	case "sqlite":
		if strings.TrimSpace(c.SQLiteDBPath) == "" {
			errors = append(errors, "SQLite database path cannot be empty when using sqlite backend")
		}
	}

	if c.StorageKey == "" {
		errors = append(errors, "storage key cannot be empty")
	} else if strings.ContainsAny(c.StorageKey, `/\`) || c.StorageKey == "." || c.StorageKey == ".." {
		errors = append(errors, fmt.Sprintf("invalid storage key '%s': must not contain path separators", c.StorageKey))
	}

	if !slices.Contains(validLogLevels, strings.ToLower(c.LogLevel)) {
		errors = append(errors, fmt.Sprintf("invalid log level '%s': must be one of %v", c.LogLevel, validLogLevels))
	}
	if !slices.Contains(validLogFormats, strings.ToLower(c.LogFormat)) {
		errors = append(errors, fmt.Sprintf("invalid log format '%s': must be one of %v", c.LogFormat, validLogFormats))
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(errors, "\n- "))
	}

	return nil
}
