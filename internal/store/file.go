package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/Iron-Ham/todomvc/internal/config"
	"github.com/Iron-Ham/todomvc/internal/controller"
	apperrors "github.com/Iron-Ham/todomvc/internal/errors"
	"github.com/Iron-Ham/todomvc/internal/logging"
	"github.com/Iron-Ham/todomvc/internal/todo"
)

var _ controller.Store = (*File)(nil)

// File is a Store kept as a JSON document at a single path.
//
// The document is loaded on every call and rewritten atomically after every
// mutation, so several processes may share one file. Concurrent writers from
// different processes are last-writer-wins.
type File struct {
	path   string
	mu     sync.Mutex
	logger *logging.Logger
	closed bool
}

// NewFile creates a file store at path. The parent directory is created if
// needed; the document itself is created by the first mutation.
func NewFile(path string, logger *logging.Logger) (*File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create store directory: %w", err)
	}
	if logger == nil {
		logger = logging.NopLogger()
	}
	return &File{
		path:   path,
		logger: logger.WithDriver(config.DriverFile),
	}, nil
}

// Path returns the document path.
func (f *File) Path() string {
	return f.path
}

// load reads the document. A missing file is an empty store.
func (f *File) load(op string) (*document, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		if os.IsNotExist(err) {
			return newDocument(nil), nil
		}
		return nil, apperrors.NewStoreError(op, fmt.Errorf("failed to read file: %w", err)).
			WithDriver(config.DriverFile)
	}
	if len(data) == 0 {
		return newDocument(nil), nil
	}

	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		f.logger.Error("failed to decode store document", "path", f.path, "error", err.Error())
		return nil, apperrors.NewStoreError(op, fmt.Errorf("%w: %v", apperrors.ErrCorruptDocument, err)).
			WithDriver(config.DriverFile)
	}
	doc.normalize()
	return &doc, nil
}

func (f *File) save(op string, doc *document) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return apperrors.NewStoreError(op, fmt.Errorf("failed to encode document: %w", err)).
			WithDriver(config.DriverFile)
	}
	if err := atomicWriteFile(f.path, data, 0644); err != nil {
		return apperrors.NewStoreError(op, err).WithDriver(config.DriverFile).WithRetryable(true)
	}
	return nil
}

func (f *File) check(ctx context.Context, op string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if f.closed {
		return apperrors.NewStoreError(op, apperrors.ErrStoreClosed).WithDriver(config.DriverFile)
	}
	return nil
}

// mutate loads the document, applies fn and saves the result if fn succeeds.
func (f *File) mutate(ctx context.Context, op string, fn func(*document) error) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.check(ctx, op); err != nil {
		return err
	}
	doc, err := f.load(op)
	if err != nil {
		return err
	}
	if err := fn(doc); err != nil {
		return err
	}
	return f.save(op, doc)
}

// view loads the document and passes it to fn without saving.
func (f *File) view(ctx context.Context, op string, fn func(*document)) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.check(ctx, op); err != nil {
		return err
	}
	doc, err := f.load(op)
	if err != nil {
		return err
	}
	fn(doc)
	return nil
}

// Read returns the tasks matching q in creation order.
func (f *File) Read(ctx context.Context, q todo.Query) ([]todo.Task, error) {
	var tasks []todo.Task
	err := f.view(ctx, "read", func(doc *document) {
		tasks = doc.read(q)
	})
	return tasks, err
}

// GetCount counts every task in the document.
func (f *File) GetCount(ctx context.Context) (todo.Counts, error) {
	var counts todo.Counts
	err := f.view(ctx, "count", func(doc *document) {
		counts = doc.count()
	})
	return counts, err
}

// Create appends an incomplete task.
func (f *File) Create(ctx context.Context, title string) (todo.Task, error) {
	if err := validateTitle(title); err != nil {
		return todo.Task{}, err
	}
	var task todo.Task
	err := f.mutate(ctx, "create", func(doc *document) error {
		task = doc.create(title)
		return nil
	})
	if err != nil {
		return todo.Task{}, err
	}
	f.logger.Debug("task created", "task_id", task.ID)
	return task, nil
}

// Update applies p to the task with the given id.
func (f *File) Update(ctx context.Context, id int, p todo.Patch) error {
	return f.mutate(ctx, "update", func(doc *document) error {
		if !doc.update(id, p) {
			return notFound("update", config.DriverFile, id)
		}
		return nil
	})
}

// Remove deletes the task with the given id.
func (f *File) Remove(ctx context.Context, id int) error {
	return f.mutate(ctx, "remove", func(doc *document) error {
		if !doc.remove(id) {
			return notFound("remove", config.DriverFile, id)
		}
		return nil
	})
}

// Close marks the store closed. The document is left on disk.
func (f *File) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.closed = true
	return nil
}

// atomicWriteFile writes data to a temp file in the target directory and
// renames it over path, so readers never observe a partial document.
func atomicWriteFile(path string, data []byte, perm os.FileMode) error {
	dir := filepath.Dir(path)

	tmpFile, err := os.CreateTemp(dir, ".tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmpFile.Name()

	success := false
	defer func() {
		if !success {
			_ = os.Remove(tmpPath)
		}
	}()

	if _, err := tmpFile.Write(data); err != nil {
		_ = tmpFile.Close()
		return fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := tmpFile.Sync(); err != nil {
		_ = tmpFile.Close()
		return fmt.Errorf("failed to sync temp file: %w", err)
	}
	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}
	if err := os.Chmod(tmpPath, perm); err != nil {
		return fmt.Errorf("failed to set permissions: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("failed to rename temp file: %w", err)
	}

	success = true
	return nil
}
