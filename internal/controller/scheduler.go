package controller

import (
	"context"
	"fmt"
	"sync"

	apperrors "github.com/Iron-Ham/todomvc/internal/errors"
)

// Call performs one Store operation and returns the continuation that
// consumes its result. A nil continuation means there is nothing left to do.
type Call func(ctx context.Context) func()

// Scheduler runs Store calls off the controller loop and brings their
// continuations back onto it.
type Scheduler interface {
	// Schedule starts call. Its continuation must run exactly once, on the
	// controller loop, after Schedule returns or before it returns.
	Schedule(call Call)
}

// Inline runs each call and its continuation immediately on the caller's
// goroutine. Render commands are therefore issued before the triggering
// handler returns.
type Inline struct{}

// Schedule implements Scheduler.
func (Inline) Schedule(call Call) {
	if next := call(context.Background()); next != nil {
		next()
	}
}

// Queue runs each call on its own goroutine and collects continuations until
// Drain runs them on the caller's goroutine. Continuations run in completion
// order, which need not match scheduling order. A finished call never waits
// for Step, so abandoning a queue leaks no goroutines.
//
// Schedule and Drain must be called from the same goroutine.
type Queue struct {
	ctx     context.Context
	pending int

	mu     sync.Mutex
	ready  []func()
	signal chan struct{}
}

// NewQueue creates a queue whose calls run with ctx.
func NewQueue(ctx context.Context) *Queue {
	return &Queue{
		ctx:    ctx,
		signal: make(chan struct{}, 1),
	}
}

// Schedule implements Scheduler.
func (q *Queue) Schedule(call Call) {
	q.pending++
	go func() {
		next := call(q.ctx)

		q.mu.Lock()
		q.ready = append(q.ready, next)
		q.mu.Unlock()

		select {
		case q.signal <- struct{}{}:
		default:
		}
	}()
}

func (q *Queue) pop() (func(), bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if len(q.ready) == 0 {
		return nil, false
	}
	next := q.ready[0]
	q.ready = q.ready[1:]
	return next, true
}

// Pending returns the number of calls whose continuation has not yet run.
func (q *Queue) Pending() int {
	return q.pending
}

// Step waits for one call to complete and runs its continuation.
// Returns false if nothing is pending. Cancellation of ctx or of the queue's
// own context yields an error matching both errors.ErrCanceled and the
// context error.
func (q *Queue) Step(ctx context.Context) (bool, error) {
	if q.pending == 0 {
		return false, nil
	}
	for {
		if next, ok := q.pop(); ok {
			q.pending--
			if next != nil {
				next()
			}
			return true, nil
		}
		select {
		case <-q.signal:
		case <-ctx.Done():
			return false, canceled(ctx.Err())
		case <-q.ctx.Done():
			return false, canceled(q.ctx.Err())
		}
	}
}

// Drain runs continuations until no call is pending, including calls
// scheduled by the continuations themselves.
func (q *Queue) Drain(ctx context.Context) error {
	for {
		ok, err := q.Step(ctx)
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
	}
}

func canceled(err error) error {
	return fmt.Errorf("%w: %w", apperrors.ErrCanceled, err)
}
