package store

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/Iron-Ham/todomvc/internal/logging"
)

// watchDebounce coalesces the burst of events an atomic rewrite produces.
const watchDebounce = 100 * time.Millisecond

// Watch calls onChange whenever the file at path is written, created,
// replaced or removed. The parent directory is watched so atomic renames are
// seen. Bursts of events within a short window produce one call. Watch
// returns once the watcher is running; it stops when ctx is done.
func Watch(ctx context.Context, path string, logger *logging.Logger, onChange func()) error {
	if logger == nil {
		logger = logging.NopLogger()
	}
	logger = logger.WithComponent("watch")

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	dir := filepath.Dir(path)
	if err := watcher.Add(dir); err != nil {
		_ = watcher.Close()
		return fmt.Errorf("failed to watch %s: %w", dir, err)
	}

	go func() {
		defer watcher.Close()

		target := filepath.Clean(path)
		var timer *time.Timer
		defer func() {
			if timer != nil {
				timer.Stop()
			}
		}()

		for {
			select {
			case <-ctx.Done():
				return
			case ev, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(ev.Name) != target {
					continue
				}
				if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) &&
					!ev.Has(fsnotify.Rename) && !ev.Has(fsnotify.Remove) {
					continue
				}
				logger.Debug("store file changed", "path", ev.Name, "op", ev.Op.String())
				if timer == nil {
					timer = time.AfterFunc(watchDebounce, onChange)
				} else {
					timer.Reset(watchDebounce)
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				logger.Warn("store watcher error", "error", err.Error())
			}
		}
	}()

	return nil
}
