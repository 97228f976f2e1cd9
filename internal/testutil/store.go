package testutil

import (
	"context"
	"sync"

	"github.com/Iron-Ham/todomvc/internal/todo"
)

// Store operations recorded in Call.Op.
const (
	OpRead     = "read"
	OpGetCount = "getCount"
	OpCreate   = "create"
	OpUpdate   = "update"
	OpRemove   = "remove"
)

// Call is one recorded Store invocation.
type Call struct {
	Op    string
	Query todo.Query
	ID    int
	Title string
	Patch todo.Patch
}

// IsMutation reports whether the call changes store contents.
func (c Call) IsMutation() bool {
	return c.Op == OpCreate || c.Op == OpUpdate || c.Op == OpRemove
}

// Store is a scripted fake. Read and GetCount answer from Tasks; Create,
// Update and Remove are recorded and succeed, but leave Tasks untouched so
// a test controls exactly what later reads return.
type Store struct {
	mu     sync.Mutex
	tasks  []todo.Task
	nextID int
	errs   map[string]error
	calls  []Call
}

// NewStore creates a fake answering reads with tasks.
func NewStore(tasks ...todo.Task) *Store {
	s := &Store{nextID: 1}
	s.SetTasks(tasks...)
	return s
}

// SetTasks replaces the scripted contents.
func (s *Store) SetTasks(tasks ...todo.Task) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tasks = append([]todo.Task(nil), tasks...)
	for _, t := range tasks {
		if t.ID >= s.nextID {
			s.nextID = t.ID + 1
		}
	}
}

// Fail makes every later call to op return err. A nil err clears it.
func (s *Store) Fail(op string, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.errs == nil {
		s.errs = make(map[string]error)
	}
	if err == nil {
		delete(s.errs, op)
		return
	}
	s.errs[op] = err
}

// Calls returns every recorded call, in order.
func (s *Store) Calls() []Call {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Call, len(s.calls))
	copy(out, s.calls)
	return out
}

// CallsTo returns the recorded calls of one operation.
func (s *Store) CallsTo(op string) []Call {
	var out []Call
	for _, c := range s.Calls() {
		if c.Op == op {
			out = append(out, c)
		}
	}
	return out
}

// Mutations returns the recorded create, update and remove calls.
func (s *Store) Mutations() []Call {
	var out []Call
	for _, c := range s.Calls() {
		if c.IsMutation() {
			out = append(out, c)
		}
	}
	return out
}

// ResetCalls forgets the recorded calls.
func (s *Store) ResetCalls() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls = nil
}

func (s *Store) record(c Call) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls = append(s.calls, c)
	return s.errs[c.Op]
}

func (s *Store) Read(_ context.Context, q todo.Query) ([]todo.Task, error) {
	if err := s.record(Call{Op: OpRead, Query: q}); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return q.Select(s.tasks), nil
}

func (s *Store) GetCount(_ context.Context) (todo.Counts, error) {
	if err := s.record(Call{Op: OpGetCount}); err != nil {
		return todo.Counts{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return todo.CountTasks(s.tasks), nil
}

func (s *Store) Create(_ context.Context, title string) (todo.Task, error) {
	if err := s.record(Call{Op: OpCreate, Title: title}); err != nil {
		return todo.Task{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	task := todo.Task{ID: s.nextID, Title: title}
	s.nextID++
	return task, nil
}

func (s *Store) Update(_ context.Context, id int, p todo.Patch) error {
	return s.record(Call{Op: OpUpdate, ID: id, Patch: p})
}

func (s *Store) Remove(_ context.Context, id int) error {
	return s.record(Call{Op: OpRemove, ID: id})
}
