package cmd

import (
	"fmt"
	"os"

	"github.com/Iron-Ham/todomvc/internal/config"
	apperrors "github.com/Iron-Ham/todomvc/internal/errors"
	"github.com/Iron-Ham/todomvc/internal/logging"
	"github.com/Iron-Ham/todomvc/internal/store"
)

// env is what every command that touches the task list needs.
type env struct {
	cfg     *config.Config
	dataDir string
	logger  *logging.Logger
	store   store.Backend
}

// openEnv loads the configuration, starts logging and opens the store.
func openEnv(command string) (*env, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, apperrors.Wrap(err, "invalid configuration")
	}

	dataDir := cfg.Paths.ResolveDataDir()
	logger := createLogger(dataDir, cfg).With("command", command)

	st, err := store.Open(cfg.Store, dataDir, logger)
	if err != nil {
		_ = logger.Close()
		return nil, apperrors.Wrapf(err, "failed to open %s store", cfg.Store.Driver)
	}
	logger.Debug("store opened", "driver", cfg.Store.Driver, "data_dir", dataDir)

	return &env{cfg: cfg, dataDir: dataDir, logger: logger, store: st}, nil
}

// Close closes the store, then the log.
func (e *env) Close() error {
	err := e.store.Close()
	if lerr := e.logger.Close(); err == nil {
		err = lerr
	}
	return err
}

// createLogger creates a logger if logging is enabled in config.
// Returns a NopLogger if logging is disabled or if creation fails.
func createLogger(dataDir string, cfg *config.Config) *logging.Logger {
	if !cfg.Logging.Enabled {
		return logging.NopLogger()
	}

	rotationConfig := logging.RotationConfig{
		MaxSizeMB:  cfg.Logging.MaxSizeMB,
		MaxBackups: cfg.Logging.MaxBackups,
	}

	logger, err := logging.NewLoggerWithRotation(dataDir, cfg.Logging.Level, rotationConfig)
	if err != nil {
		// Log creation failure shouldn't prevent the application from starting
		fmt.Fprintf(os.Stderr, "Warning: failed to create logger: %v\n", err)
		return logging.NopLogger()
	}
	return logger
}
