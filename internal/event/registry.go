package event

import (
	"fmt"
	"runtime/debug"
	"sync"

	"github.com/Iron-Ham/todomvc/internal/logging"
)

// Handler handles one intent.
type Handler func(Event)

// Handle adapts a handler for a single intent type into a Handler.
// Events of any other type are ignored.
func Handle[E Event](fn func(E)) Handler {
	return func(e Event) {
		if ev, ok := e.(E); ok {
			fn(ev)
		}
	}
}

// Registry maps each intent name to at most one handler.
// The zero value is ready to use.
type Registry struct {
	mu       sync.RWMutex
	handlers map[Name]Handler
	logger   *logging.Logger
}

// NewRegistry creates a registry that logs recovered handler panics to logger.
// A nil logger discards them.
func NewRegistry(logger *logging.Logger) *Registry {
	return &Registry{logger: logger}
}

// Bind registers handler for name, replacing any handler already bound.
// It panics if name is not one of Names, or handler is nil.
func (r *Registry) Bind(name Name, handler Handler) {
	if !name.Valid() {
		panic(fmt.Sprintf("event: bind of unknown intent %q", name))
	}
	if handler == nil {
		panic(fmt.Sprintf("event: nil handler for %q", name))
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.handlers == nil {
		r.handlers = make(map[Name]Handler)
	}
	r.handlers[name] = handler
}

// Unbind removes the handler for name.
// Returns true if a handler was bound.
func (r *Registry) Unbind(name Name) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.handlers[name]; !ok {
		return false
	}
	delete(r.handlers, name)
	return true
}

// Bound reports whether a handler is registered for name.
func (r *Registry) Bound(name Name) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.handlers[name]
	return ok
}

// Len returns the number of bound intents.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.handlers)
}

// Trigger dispatches e to the handler bound for e.Name().
// Returns false if nothing is bound. The registry lock is not held while the
// handler runs, so handlers may rebind.
func (r *Registry) Trigger(e Event) bool {
	r.mu.RLock()
	handler, ok := r.handlers[e.Name()]
	r.mu.RUnlock()

	if !ok {
		return false
	}
	r.safeCall(handler, e)
	return true
}

// safeCall invokes a handler and recovers from any panics so one broken
// handler cannot take down the view's input loop.
func (r *Registry) safeCall(handler Handler, e Event) {
	defer func() {
		if rec := recover(); rec != nil {
			if r.logger != nil {
				r.logger.Error("event handler panicked",
					"event", string(e.Name()),
					"panic", fmt.Sprint(rec),
					"stack", string(debug.Stack()),
				)
			}
		}
	}()
	handler(e)
}
