package controller

import (
	"context"

	apperrors "github.com/Iron-Ham/todomvc/internal/errors"
	"github.com/Iron-Ham/todomvc/internal/todo"
	"github.com/Iron-Ham/todomvc/internal/util"
)

// maxLoggedTitle bounds the title text written to the log.
const maxLoggedTitle = 64

// submit schedules call. On success then receives the result on the
// controller loop. On failure the error is logged and failed, if non-nil,
// runs instead.
func submit[T any](c *Controller, op string, attrs []any, call func(context.Context) (T, error), then func(T), failed func()) {
	c.scheduler.Schedule(func(ctx context.Context) func() {
		result, err := call(ctx)
		if err != nil {
			return func() {
				c.logFailure(op, err, attrs)
				if failed != nil {
					failed()
				}
			}
		}
		return func() { then(result) }
	})
}

// logFailure logs err at WARN when its severity is below error, for example
// a task that is already gone, and at ERROR otherwise.
func (c *Controller) logFailure(op string, err error, attrs []any) {
	args := append([]any{"op", op, "error", err}, attrs...)
	if apperrors.IsRetryable(err) {
		args = append(args, "retryable", true)
	}
	if apperrors.GetSeverity(err) < apperrors.SeverityError {
		c.logger.Warn("store call failed", args...)
		return
	}
	c.logger.Error("store call failed", args...)
}

func (c *Controller) read(q todo.Query, then func([]todo.Task)) {
	submit(c, "read", queryAttrs(q), func(ctx context.Context) ([]todo.Task, error) {
		return c.store.Read(ctx, q)
	}, then, nil)
}

func (c *Controller) count(then func(todo.Counts)) {
	submit(c, "getCount", nil, c.store.GetCount, then, nil)
}

func (c *Controller) create(title string, then func(todo.Task)) {
	submit(c, "create", []any{"title", util.TruncateString(title, maxLoggedTitle)}, func(ctx context.Context) (todo.Task, error) {
		return c.store.Create(ctx, title)
	}, then, nil)
}

func (c *Controller) update(id int, p todo.Patch, then func(), failed func()) {
	submit(c, "update", []any{"task_id", id}, func(ctx context.Context) (struct{}, error) {
		return struct{}{}, c.store.Update(ctx, id, p)
	}, func(struct{}) { then() }, failed)
}

func (c *Controller) remove(id int, then func(), failed func()) {
	submit(c, "remove", []any{"task_id", id}, func(ctx context.Context) (struct{}, error) {
		return struct{}{}, c.store.Remove(ctx, id)
	}, func(struct{}) { then() }, failed)
}

func queryAttrs(q todo.Query) []any {
	var attrs []any
	if q.ID != nil {
		attrs = append(attrs, "task_id", *q.ID)
	}
	if q.Completed != nil {
		attrs = append(attrs, "completed", *q.Completed)
	}
	return attrs
}
