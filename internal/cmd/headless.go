package cmd

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"

	"github.com/Iron-Ham/todomvc/internal/controller"
	apperrors "github.com/Iron-Ham/todomvc/internal/errors"
	"github.com/Iron-Ham/todomvc/internal/event"
	"github.com/Iron-Ham/todomvc/internal/render"
	"github.com/Iron-Ham/todomvc/internal/todo"
)

// textView is a controller.View that prints changes as plain lines and keeps
// the rest of the presentation state for the command to report.
type textView struct {
	event.Registry

	out io.Writer

	entries   []todo.Task
	filter    string
	active    int
	completed int
	visible   bool
	added     bool
}

var _ controller.View = (*textView)(nil)

func newTextView(out io.Writer) *textView {
	return &textView{out: out}
}

// Render implements controller.View.
func (v *textView) Render(cmd render.Command) {
	switch c := cmd.(type) {
	case render.ShowEntries:
		v.entries = c.Tasks
	case render.RemoveItem:
		fmt.Fprintf(v.out, "Removed #%d\n", c.ID)
	case render.UpdateElementCount:
		v.active = c.Active
	case render.ClearCompletedButton:
		v.completed = c.Completed
	case render.ContentBlockVisibility:
		v.visible = c.Visible
	case render.ToggleAll:
	case render.SetFilter:
		v.filter = c.Filter
	case render.ClearNewTodo:
		v.added = true
	case render.ElementComplete:
		if c.Completed {
			fmt.Fprintf(v.out, "Completed #%d\n", c.ID)
		} else {
			fmt.Fprintf(v.out, "Reopened #%d\n", c.ID)
		}
	case render.EditItem:
	case render.EditItemDone:
		fmt.Fprintf(v.out, "Renamed #%d to %q\n", c.ID, c.Title)
	default:
		panic(render.Unknown(cmd))
	}
}

// printList writes the visible entries, one per line.
func (v *textView) printList() {
	if len(v.entries) == 0 {
		fmt.Fprintln(v.out, "No todos")
		return
	}
	for _, t := range v.entries {
		mark := " "
		if t.Completed {
			mark = "x"
		}
		fmt.Fprintf(v.out, "[%s] %3d  %s\n", mark, t.ID, t.Title)
	}
}

// printFooter writes the counter line.
func (v *textView) printFooter() {
	if !v.visible {
		return
	}
	line := fmt.Sprintf("%d %s left", v.active, plural(v.active, "item"))
	if v.completed > 0 {
		line += fmt.Sprintf(", %d completed", v.completed)
	}
	fmt.Fprintln(v.out, line)
}

func (v *textView) find(id int) (todo.Task, bool) {
	for _, t := range v.entries {
		if t.ID == id {
			return t, true
		}
	}
	return todo.Task{}, false
}

// newest returns the entry with the highest id.
func (v *textView) newest() (todo.Task, bool) {
	var (
		best  todo.Task
		found bool
	)
	for _, t := range v.entries {
		if !found || t.ID > best.ID {
			best, found = t, true
		}
	}
	return best, found
}

func plural(n int, word string) string {
	if n == 1 {
		return word
	}
	return word + "s"
}

// failureRecorder keeps the first error returned by the wrapped store. The
// controller only logs store failures, but a command must exit non-zero.
type failureRecorder struct {
	controller.Store

	mu  sync.Mutex
	err error
}

func (r *failureRecorder) record(err error) error {
	if err != nil {
		r.mu.Lock()
		if r.err == nil {
			r.err = err
		}
		r.mu.Unlock()
	}
	return err
}

// Err returns the first store failure, if any.
func (r *failureRecorder) Err() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.err
}

func (r *failureRecorder) Read(ctx context.Context, q todo.Query) ([]todo.Task, error) {
	tasks, err := r.Store.Read(ctx, q)
	return tasks, r.record(err)
}

func (r *failureRecorder) GetCount(ctx context.Context) (todo.Counts, error) {
	counts, err := r.Store.GetCount(ctx)
	return counts, r.record(err)
}

func (r *failureRecorder) Create(ctx context.Context, title string) (todo.Task, error) {
	t, err := r.Store.Create(ctx, title)
	return t, r.record(err)
}

func (r *failureRecorder) Update(ctx context.Context, id int, p todo.Patch) error {
	return r.record(r.Store.Update(ctx, id, p))
}

func (r *failureRecorder) Remove(ctx context.Context, id int) error {
	return r.record(r.Store.Remove(ctx, id))
}

// headless drives a controller without a terminal. Store calls run on a
// Queue and every trigger waits for the whole handler chain.
type headless struct {
	ctx   context.Context
	view  *textView
	store *failureRecorder
	queue *controller.Queue
	ctrl  *controller.Controller
}

func newHeadless(ctx context.Context, e *env, out io.Writer) *headless {
	h := &headless{
		ctx:   ctx,
		view:  newTextView(out),
		store: &failureRecorder{Store: e.store},
		queue: controller.NewQueue(ctx),
	}
	h.ctrl = controller.New(h.store, h.view,
		controller.WithScheduler(h.queue),
		controller.WithLogger(e.logger),
	)
	return h
}

// show navigates to route and waits for the list and counts.
func (h *headless) show(route string) error {
	h.ctrl.SetView(route)
	return h.wait()
}

// trigger dispatches e as the user would and waits for the chain to finish.
func (h *headless) trigger(e event.Event) error {
	if !h.view.Trigger(e) {
		return fmt.Errorf("no handler bound for %s", e.Name())
	}
	return h.wait()
}

func (h *headless) wait() error {
	if err := h.queue.Drain(h.ctx); err != nil {
		return err
	}
	return h.store.Err()
}

// require loads the full list and returns task id.
func (h *headless) require(id int) (todo.Task, error) {
	if err := h.show(todo.RouteAll); err != nil {
		return todo.Task{}, err
	}
	t, ok := h.view.find(id)
	if !ok {
		return todo.Task{}, apperrors.TaskNotFound(id)
	}
	return t, nil
}

func parseID(arg string) (int, error) {
	id, err := strconv.Atoi(strings.TrimPrefix(arg, "#"))
	if err != nil || id <= 0 {
		return 0, apperrors.NewValidationError("task id must be a positive number").WithField("id").WithValue(arg)
	}
	return id, nil
}
