package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Iron-Ham/todomvc/internal/controller"
	"github.com/Iron-Ham/todomvc/internal/event"
	"github.com/Iron-Ham/todomvc/internal/logging"
	"github.com/Iron-Ham/todomvc/internal/todo"
	"github.com/Iron-Ham/todomvc/internal/tui/styles"
)

// mode is what keyboard input currently drives.
type mode int

const (
	modeBrowse mode = iota // keys act on the list
	modeNew                // keys edit the new-todo field
	modeEdit               // keys edit the title of one task
)

// storeChangedMsg reports that another process changed the store.
type storeChangedMsg struct{}

// Options configures a Model.
type Options struct {
	// Route is shown on start: "#/", "#/active" or "#/completed".
	Route string
	// Theme is a styles theme name.
	Theme string
	// ShowHelp shows the short key help below the list.
	ShowHelp bool
	Logger   *logging.Logger
}

// Model is the bubbletea model of the task list. It is also the controller's
// View: intents are triggered through the embedded registry and render
// commands update the presentation state below.
type Model struct {
	*event.Registry

	ctrl   *controller.Controller
	sched  *scheduler
	logger *logging.Logger

	keys   KeyMap
	help   help.Model
	styles *styles.Styles
	route  string

	mode    mode
	newTodo textinput.Model
	edit    textinput.Model

	// Presentation state, written only by Render.
	entries        []todo.Task
	filter         string
	active         int
	completed      int
	clearVisible   bool
	contentVisible bool
	allChecked     bool
	editingID      int

	cursor   int
	showHelp bool
	width    int
	height   int
	quitting bool
}

var _ controller.View = (*Model)(nil)

// NewModel creates the model and the controller that drives it. Store calls
// run with ctx.
func NewModel(ctx context.Context, store controller.Store, opts Options) *Model {
	logger := opts.Logger
	if logger == nil {
		logger = logging.NopLogger()
	}

	newTodo := textinput.New()
	newTodo.Placeholder = "What needs to be done?"
	newTodo.Prompt = "❯ "
	newTodo.CharLimit = 0

	edit := textinput.New()
	edit.Prompt = ""
	edit.CharLimit = 0

	tuiLogger := logger.WithComponent("tui")
	m := &Model{
		Registry: event.NewRegistry(tuiLogger),
		sched:    newScheduler(ctx),
		logger:   tuiLogger,
		keys:     DefaultKeyMap(),
		help:     help.New(),
		styles:   styles.New(opts.Theme),
		route:    opts.Route,
		newTodo:  newTodo,
		edit:     edit,
		showHelp: opts.ShowHelp,
	}
	m.newTodo.PromptStyle = m.styles.Prompt
	m.newTodo.PlaceholderStyle = m.styles.Placeholder

	m.ctrl = controller.New(store, m,
		controller.WithScheduler(m.sched),
		controller.WithLogger(logger),
	)
	return m
}

// Init shows the starting route.
func (m *Model) Init() tea.Cmd {
	m.ctrl.SetView(m.route)
	return m.sched.flush()
}

// Update handles a message. Store completions arrive here too, so every
// controller continuation runs on this loop.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case completionMsg:
		if msg.next != nil {
			msg.next()
		}
	case storeChangedMsg:
		m.logger.Debug("store changed externally, refreshing")
		m.ctrl.SetView(m.ctrl.Filter().Route())
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.newTodo.Width = max(msg.Width-6, 10)
		m.edit.Width = max(msg.Width-10, 10)
	case tea.KeyMsg:
		cmd = m.handleKey(msg)
	default:
		cmd = m.updateInputs(msg)
	}

	return m, tea.Batch(cmd, m.sched.flush())
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	if msg.Type == tea.KeyCtrlC {
		return m.quit()
	}

	switch m.mode {
	case modeNew:
		return m.handleNewKey(msg)
	case modeEdit:
		return m.handleEditKey(msg)
	default:
		return m.handleBrowseKey(msg)
	}
}

// quit unbinds every intent so keys that arrive while the program shuts
// down cannot reach the store.
func (m *Model) quit() tea.Cmd {
	m.quitting = true
	unbound := 0
	for _, name := range event.Names() {
		if m.Unbind(name) {
			unbound++
		}
	}
	m.logger.Debug("quitting", "unbound", unbound)
	return tea.Quit
}

func (m *Model) handleBrowseKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m.quit()
	case key.Matches(msg, m.keys.Up):
		m.moveCursor(-1)
	case key.Matches(msg, m.keys.Down):
		m.moveCursor(1)
	case key.Matches(msg, m.keys.New):
		m.mode = modeNew
		return m.newTodo.Focus()
	case key.Matches(msg, m.keys.Toggle):
		if t, ok := m.selected(); ok {
			m.Trigger(event.ItemToggle{ID: t.ID, Completed: !t.Completed})
		}
	case key.Matches(msg, m.keys.ToggleAll):
		if m.contentVisible {
			m.Trigger(event.ToggleAll{Completed: !m.allChecked})
		}
	case key.Matches(msg, m.keys.Edit):
		if t, ok := m.selected(); ok {
			m.Trigger(event.ItemEdit{ID: t.ID})
		}
	case key.Matches(msg, m.keys.Delete):
		if t, ok := m.selected(); ok {
			m.Trigger(event.ItemRemove{ID: t.ID})
		}
	case key.Matches(msg, m.keys.ClearCompleted):
		if m.clearVisible {
			m.Trigger(event.RemoveCompleted{})
		}
	case key.Matches(msg, m.keys.All):
		m.ctrl.SetView(todo.RouteAll)
	case key.Matches(msg, m.keys.Active):
		m.ctrl.SetView(todo.RouteActive)
	case key.Matches(msg, m.keys.Completed):
		m.ctrl.SetView(todo.RouteCompleted)
	case key.Matches(msg, m.keys.NextFilter):
		m.ctrl.SetView(m.currentFilter().Next().Route())
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.showHelp = true
	}
	return nil
}

func (m *Model) handleNewKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Submit):
		m.Trigger(event.NewTodo{Title: m.newTodo.Value()})
		return nil
	case key.Matches(msg, m.keys.Cancel):
		m.mode = modeBrowse
		m.newTodo.Blur()
		return nil
	}
	var cmd tea.Cmd
	m.newTodo, cmd = m.newTodo.Update(msg)
	return cmd
}

// handleEditKey leaves edit mode as soon as the edit is submitted or
// canceled. The controller renders no reply for a task deleted elsewhere.
func (m *Model) handleEditKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Submit):
		m.Trigger(event.ItemEditDone{ID: m.editingID, Title: m.edit.Value()})
		m.stopEditing()
		return nil
	case key.Matches(msg, m.keys.Cancel):
		m.Trigger(event.ItemEditCancel{ID: m.editingID})
		m.stopEditing()
		return nil
	}
	var cmd tea.Cmd
	m.edit, cmd = m.edit.Update(msg)
	return cmd
}

// updateInputs forwards non-key messages, such as cursor blinks, to the
// focused field.
func (m *Model) updateInputs(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch m.mode {
	case modeNew:
		m.newTodo, cmd = m.newTodo.Update(msg)
	case modeEdit:
		m.edit, cmd = m.edit.Update(msg)
	}
	return cmd
}

func (m *Model) moveCursor(delta int) {
	m.cursor += delta
	m.clampCursor()
}

func (m *Model) clampCursor() {
	if m.cursor >= len(m.entries) {
		m.cursor = len(m.entries) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m *Model) selected() (todo.Task, bool) {
	if m.cursor < 0 || m.cursor >= len(m.entries) {
		return todo.Task{}, false
	}
	return m.entries[m.cursor], true
}

// currentFilter is the filter last highlighted by the controller.
func (m *Model) currentFilter() todo.Filter {
	return todo.ParseRoute("#/" + m.filter)
}

func (m *Model) indexOf(id int) int {
	for i, t := range m.entries {
		if t.ID == id {
			return i
		}
	}
	return -1
}
