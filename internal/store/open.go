package store

import (
	"fmt"
	"io"

	"github.com/Iron-Ham/todomvc/internal/config"
	"github.com/Iron-Ham/todomvc/internal/controller"
	apperrors "github.com/Iron-Ham/todomvc/internal/errors"
	"github.com/Iron-Ham/todomvc/internal/logging"
)

// Backend is a Store that holds resources until closed.
type Backend interface {
	controller.Store
	io.Closer
}

// Open creates the backend selected by cfg.Driver. Relative file and sqlite
// paths are resolved against dataDir.
func Open(cfg config.StoreConfig, dataDir string, logger *logging.Logger) (Backend, error) {
	if logger == nil {
		logger = logging.NopLogger()
	}
	logger = logger.WithComponent("store")

	var (
		backend Backend
		err     error
	)
	switch cfg.Driver {
	case config.DriverMemory:
		backend = NewMemory()
	case config.DriverFile, "":
		var f *File
		if f, err = NewFile(cfg.ResolvePath(dataDir), logger); err == nil {
			backend = f
		}
	case config.DriverSQLite:
		var s *SQL
		if s, err = OpenSQLite(cfg.ResolvePath(dataDir), logger); err == nil {
			backend = s
		}
	case config.DriverMySQL:
		var s *SQL
		if s, err = OpenMySQL(cfg.DSN, logger); err == nil {
			backend = s
		}
	default:
		err = fmt.Errorf("%w: %q", apperrors.ErrUnknownDriver, cfg.Driver)
	}
	if err != nil {
		return nil, err
	}
	return backend, nil
}

// WatchPath returns the file whose changes should trigger a refresh, or ""
// when the backend has nothing to watch.
func WatchPath(b Backend) string {
	if f, ok := b.(*File); ok {
		return f.Path()
	}
	return ""
}
