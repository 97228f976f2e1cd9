// Package logging provides structured logging for todomvc.
//
// It wraps Go's log/slog JSON handler. Because the terminal belongs to the
// TUI, logs go to {data_dir}/debug.log rather than the screen; an empty
// directory sends them to stderr, which the headless CLI commands use.
//
// # Basic Usage
//
//	logger, err := logging.NewLogger(dataDir, "INFO")
//	if err != nil {
//	    return err
//	}
//	defer logger.Close()
//
//	logger.Info("task created", "task_id", 3)
//
// # Context
//
// Child loggers carry persistent attributes and share the parent's writer:
//
//	ctrlLog := logger.WithComponent("controller")
//	storeLog := logger.WithComponent("store").WithDriver("sqlite")
//	ctrlLog.With("event", "newTodo").Debug("handling event")
//
// # Rotation
//
// [NewLoggerWithRotation] wraps the log file in a [RotatingWriter] that
// rotates by size and keeps a bounded number of backups:
//
//	logger, err := logging.NewLoggerWithRotation(dataDir, "DEBUG", logging.RotationConfig{
//	    MaxSizeMB:  10,
//	    MaxBackups: 3,
//	})
//
// # Thread Safety
//
// [Logger] and [RotatingWriter] are safe for concurrent use.
package logging
