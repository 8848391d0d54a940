// Package cli provides common CLI initialization utilities.
// It consolidates the startup sequence shared by every budget subcommand:
// environment, configuration, logging, backend.
package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"budget/internal/backend"
	"budget/internal/config"
	applog "budget/internal/log"
)

// LoadEnvFile loads the .env file for local use.
// A missing file is not an error.
func LoadEnvFile() {
	_ = godotenv.Load()
}

// LoadAndValidateConfig loads configuration and validates it.
func LoadAndValidateConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// SetupLogger builds the logger described by cfg and makes it the default.
// Logs go to stderr so command output on stdout stays clean.
func SetupLogger(cfg *config.Config) *applog.Logger {
	lc := applog.DefaultConfig()
	lc.Output = os.Stderr
	if cfg != nil {
		lc.Level = applog.ParseLevel(cfg.LogLevel)
		lc.Format = cfg.LogFormat
	}
	logger := applog.New(lc).WithComponent(applog.ComponentCLI)
	applog.SetDefault(logger)
	return logger
}

// OpenBackend creates the storage backend selected by cfg.
// Callers must Close the result.
func OpenBackend(ctx context.Context, logger *applog.Logger, cfg *config.Config) (*backend.BackendResult, error) {
	bc, err := backend.FromAppConfig(cfg)
	if err != nil {
		return nil, err
	}
	res, err := backend.NewFactory(logger).CreateBackend(ctx, bc)
	if err != nil {
		return nil, fmt.Errorf("open %s backend: %w", bc.Type, err)
	}
	return res, nil
}
