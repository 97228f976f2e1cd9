package store

import (
	"context"
	"sync"

	"github.com/Iron-Ham/todomvc/internal/config"
	"github.com/Iron-Ham/todomvc/internal/controller"
	apperrors "github.com/Iron-Ham/todomvc/internal/errors"
	"github.com/Iron-Ham/todomvc/internal/todo"
)

var _ controller.Store = (*Memory)(nil)

// Memory is a Store held in process memory. It is safe for concurrent use.
type Memory struct {
	mu     sync.RWMutex
	doc    *document
	closed bool
}

// NewMemory creates a memory store seeded with tasks. Seeded ids are kept;
// new ids continue after the largest one.
func NewMemory(tasks ...todo.Task) *Memory {
	return &Memory{doc: newDocument(tasks)}
}

func (m *Memory) check(ctx context.Context, op string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if m.closed {
		return apperrors.NewStoreError(op, apperrors.ErrStoreClosed).WithDriver(config.DriverMemory)
	}
	return nil
}

// Read returns the tasks matching q in creation order.
func (m *Memory) Read(ctx context.Context, q todo.Query) ([]todo.Task, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if err := m.check(ctx, "read"); err != nil {
		return nil, err
	}
	return m.doc.read(q), nil
}

// GetCount counts every task.
func (m *Memory) GetCount(ctx context.Context) (todo.Counts, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if err := m.check(ctx, "count"); err != nil {
		return todo.Counts{}, err
	}
	return m.doc.count(), nil
}

// Create adds an incomplete task.
func (m *Memory) Create(ctx context.Context, title string) (todo.Task, error) {
	if err := validateTitle(title); err != nil {
		return todo.Task{}, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.check(ctx, "create"); err != nil {
		return todo.Task{}, err
	}
	return m.doc.create(title), nil
}

// Update applies p to the task with the given id.
func (m *Memory) Update(ctx context.Context, id int, p todo.Patch) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.check(ctx, "update"); err != nil {
		return err
	}
	if !m.doc.update(id, p) {
		return notFound("update", config.DriverMemory, id)
	}
	return nil
}

// Remove deletes the task with the given id.
func (m *Memory) Remove(ctx context.Context, id int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.check(ctx, "remove"); err != nil {
		return err
	}
	if !m.doc.remove(id) {
		return notFound("remove", config.DriverMemory, id)
	}
	return nil
}

// Close marks the store closed. Later calls fail with ErrStoreClosed.
func (m *Memory) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = true
	return nil
}
