package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Iron-Ham/todomvc/internal/controller"
	"github.com/Iron-Ham/todomvc/internal/logging"
	"github.com/Iron-Ham/todomvc/internal/store"
)

// App is the terminal front end: a bubbletea program driving one Model.
type App struct {
	ctx       context.Context
	cancel    context.CancelFunc
	model     *Model
	program   *tea.Program
	watchPath string
	logger    *logging.Logger
}

// New creates the TUI over s. When watchPath is non-empty, changes made to
// that file by other processes are shown as they happen.
func New(ctx context.Context, s controller.Store, opts Options, watchPath string) *App {
	ctx, cancel := context.WithCancel(ctx)
	logger := opts.Logger
	if logger == nil {
		logger = logging.NopLogger()
	}
	opts.Logger = logger

	return &App{
		ctx:       ctx,
		cancel:    cancel,
		model:     NewModel(ctx, s, opts),
		watchPath: watchPath,
		logger:    logger.WithComponent("tui"),
	}
}

// Run starts the program and blocks until the user quits.
func (a *App) Run() error {
	defer a.cancel()

	a.program = tea.NewProgram(
		a.model,
		tea.WithAltScreen(),
		tea.WithContext(a.ctx),
	)

	// Quit cleanly on termination so the terminal is restored.
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP)
	defer signal.Stop(sigChan)

	go func() {
		select {
		case <-sigChan:
			a.program.Send(tea.Quit())
		case <-a.ctx.Done():
		}
	}()

	if a.watchPath != "" {
		err := store.Watch(a.ctx, a.watchPath, a.logger, func() {
			a.program.Send(storeChangedMsg{})
		})
		if err != nil {
			// The list still works; it just won't follow other processes.
			a.logger.Warn("failed to watch store", "path", a.watchPath, "error", err)
		}
	}

	if _, err := a.program.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}
