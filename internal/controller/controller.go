package controller

import (
	"context"
	"fmt"
	"strings"

	"github.com/Iron-Ham/todomvc/internal/event"
	"github.com/Iron-Ham/todomvc/internal/logging"
	"github.com/Iron-Ham/todomvc/internal/render"
	"github.com/Iron-Ham/todomvc/internal/todo"
)

// Store is the persistence collaborator. It is the source of truth for all
// task data. GetCount is computed over the full, unfiltered task set.
type Store interface {
	Read(ctx context.Context, q todo.Query) ([]todo.Task, error)
	GetCount(ctx context.Context) (todo.Counts, error)
	Create(ctx context.Context, title string) (todo.Task, error)
	Update(ctx context.Context, id int, p todo.Patch) error
	Remove(ctx context.Context, id int) error
}

// View receives render commands and holds the handler table intents are
// dispatched through. Bind replaces any handler previously bound to name.
type View interface {
	Render(cmd render.Command)
	Bind(name event.Name, handler event.Handler)
}

// Controller wires a Store to a View.
type Controller struct {
	store     Store
	view      View
	scheduler Scheduler
	logger    *logging.Logger

	// filter is the list filter selected by the last SetView.
	filter todo.Filter
}

// Option configures a Controller.
type Option func(*Controller)

// WithScheduler sets how Store calls are run. The default is Inline.
func WithScheduler(s Scheduler) Option {
	return func(c *Controller) {
		if s != nil {
			c.scheduler = s
		}
	}
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *logging.Logger) Option {
	return func(c *Controller) {
		if l != nil {
			c.logger = l.WithComponent("controller")
		}
	}
}

// New creates a controller and binds a handler on view for every intent.
func New(store Store, view View, opts ...Option) *Controller {
	c := &Controller{
		store:     store,
		view:      view,
		scheduler: Inline{},
		logger:    logging.NopLogger(),
		filter:    todo.FilterAll,
	}
	for _, opt := range opts {
		opt(c)
	}
	c.bind()
	return c
}

// handlers maps every intent to the method that handles it.
func (c *Controller) handlers() map[event.Name]event.Handler {
	return map[event.Name]event.Handler{
		event.NameNewTodo:         event.Handle(c.addItem),
		event.NameItemRemove:      event.Handle(c.removeItem),
		event.NameRemoveCompleted: event.Handle(c.removeCompleted),
		event.NameItemToggle:      event.Handle(c.toggleComplete),
		event.NameToggleAll:       event.Handle(c.toggleAll),
		event.NameItemEdit:        event.Handle(c.editItem),
		event.NameItemEditDone:    event.Handle(c.editItemSave),
		event.NameItemEditCancel:  event.Handle(c.editItemCancel),
	}
}

func (c *Controller) bind() {
	handlers := c.handlers()
	for _, name := range event.Names() {
		handler, ok := handlers[name]
		if !ok {
			panic(fmt.Sprintf("controller: no handler for intent %q", name))
		}
		c.view.Bind(name, handler)
	}
}

// Filter returns the filter selected by the last SetView.
func (c *Controller) Filter() todo.Filter {
	return c.filter
}

// SetView selects the list filter for route and renders the entries it
// shows together with the counters. Unknown routes select every task.
// Calling SetView again with unchanged store contents renders the same
// commands again.
func (c *Controller) SetView(route string) {
	filter := todo.ParseRoute(route)
	c.filter = filter
	c.logger.Debug("set view", "route", route, "filter", filter.String())

	c.read(filter.Query(), func(tasks []todo.Task) {
		c.view.Render(render.ShowEntries{Tasks: tasks})
		c.view.Render(render.SetFilter{Filter: filter.Name()})
	})
	c.updateCount()
}

// addItem creates a task from a non-blank title.
func (c *Controller) addItem(e event.NewTodo) {
	title := strings.TrimSpace(e.Title)
	if title == "" {
		return
	}
	c.logger.Debug("handling event", "event", string(e.Name()))

	c.create(title, func(todo.Task) {
		c.view.Render(render.ClearNewTodo{})
		c.showEntries()
		c.updateCount()
	})
}

func (c *Controller) removeItem(e event.ItemRemove) {
	c.logger.Debug("handling event", "event", string(e.Name()), "task_id", e.ID)

	c.remove(e.ID, func() {
		c.view.Render(render.RemoveItem{ID: e.ID})
		c.refresh()
	}, nil)
}

func (c *Controller) removeCompleted(e event.RemoveCompleted) {
	c.logger.Debug("handling event", "event", string(e.Name()))

	c.read(todo.ByCompleted(true), func(tasks []todo.Task) {
		done := c.afterAll(len(tasks), c.refresh)
		for _, t := range tasks {
			id := t.ID
			c.remove(id, func() {
				c.view.Render(render.RemoveItem{ID: id})
				done()
			}, done)
		}
	})
}

func (c *Controller) toggleComplete(e event.ItemToggle) {
	c.logger.Debug("handling event", "event", string(e.Name()), "task_id", e.ID, "completed", e.Completed)

	c.update(e.ID, todo.SetCompleted(e.Completed), func() {
		c.view.Render(render.ElementComplete{ID: e.ID, Completed: e.Completed})
		c.refresh()
	}, nil)
}

// toggleAll sets every task to e.Completed. Only tasks whose flag differs are
// updated.
func (c *Controller) toggleAll(e event.ToggleAll) {
	c.logger.Debug("handling event", "event", string(e.Name()), "completed", e.Completed)

	c.read(todo.ByCompleted(!e.Completed), func(tasks []todo.Task) {
		done := c.afterAll(len(tasks), c.refresh)
		for _, t := range tasks {
			id := t.ID
			c.update(id, todo.SetCompleted(e.Completed), func() {
				c.view.Render(render.ElementComplete{ID: id, Completed: e.Completed})
				done()
			}, done)
		}
	})
}

// editItem puts the task into edit mode. A task that no longer exists
// renders nothing.
func (c *Controller) editItem(e event.ItemEdit) {
	c.logger.Debug("handling event", "event", string(e.Name()), "task_id", e.ID)

	c.read(todo.ByID(e.ID), func(tasks []todo.Task) {
		if len(tasks) == 0 {
			c.logger.Debug("edit of missing task ignored", "task_id", e.ID)
			return
		}
		c.view.Render(render.EditItem{ID: e.ID, Title: tasks[0].Title})
	})
}

// editItemSave persists a new title, or removes the task when the title is
// blank.
func (c *Controller) editItemSave(e event.ItemEditDone) {
	title := strings.TrimSpace(e.Title)
	c.logger.Debug("handling event", "event", string(e.Name()), "task_id", e.ID, "blank", title == "")

	if title == "" {
		c.remove(e.ID, func() {
			c.view.Render(render.RemoveItem{ID: e.ID})
			c.refresh()
		}, nil)
		return
	}

	c.update(e.ID, todo.SetTitle(title), func() {
		c.view.Render(render.EditItemDone{ID: e.ID, Title: title})
	}, nil)
}

// editItemCancel leaves edit mode showing the stored title.
func (c *Controller) editItemCancel(e event.ItemEditCancel) {
	c.logger.Debug("handling event", "event", string(e.Name()), "task_id", e.ID)

	c.read(todo.ByID(e.ID), func(tasks []todo.Task) {
		if len(tasks) == 0 {
			c.logger.Debug("cancel of missing task ignored", "task_id", e.ID)
			return
		}
		c.view.Render(render.EditItemDone{ID: e.ID, Title: tasks[0].Title})
	})
}

// showEntries re-renders the list for the current filter.
func (c *Controller) showEntries() {
	c.read(c.filter.Query(), func(tasks []todo.Task) {
		c.view.Render(render.ShowEntries{Tasks: tasks})
	})
}

// refresh follows a mutation. A filtered list may have gained or lost
// members, so it is re-read; the unfiltered list was already patched in
// place by the mutation's own render.
func (c *Controller) refresh() {
	if c.filter != todo.FilterAll {
		c.showEntries()
	}
	c.updateCount()
}

// updateCount renders the counters derived from the full task set.
func (c *Controller) updateCount() {
	c.count(func(counts todo.Counts) {
		c.view.Render(render.UpdateElementCount{Active: counts.Active})
		c.view.Render(render.ClearCompletedButton{
			Completed: counts.Completed,
			Visible:   counts.Completed > 0,
		})
		c.view.Render(render.ToggleAll{Checked: counts.AllCompleted()})
		c.view.Render(render.ContentBlockVisibility{Visible: counts.Total > 0})
	})
}

// afterAll returns a func that calls fn once it has itself been called n
// times. With n == 0, fn runs immediately. Only call it on the controller
// loop.
func (c *Controller) afterAll(n int, fn func()) func() {
	if n == 0 {
		fn()
		return func() {}
	}
	remaining := n
	return func() {
		remaining--
		if remaining == 0 {
			fn()
		}
	}
}
