package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/Iron-Ham/todomvc/internal/store"
	"github.com/Iron-Ham/todomvc/internal/tui"
)

// errNoTerminal is returned when the UI is started without a terminal.
var errNoTerminal = errors.New("the todo list UI needs a terminal; use 'todomvc list' to print the list instead")

var startCmd = &cobra.Command{
	Use:   "start [route]",
	Short: "Open the todo list UI",
	Long: `Open the interactive todo list. The optional route selects the
starting filter: '#/', '#/active' or '#/completed'. Without it the
tui.default_route setting is used.

When the file store is used, changes made by other todomvc processes are
shown as they happen.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runStart,
}

func init() {
	rootCmd.AddCommand(startCmd)
}

func runStart(cmd *cobra.Command, args []string) (err error) {
	if !isTerminal(cmd.OutOrStdout()) {
		return errNoTerminal
	}

	e, err := openEnv("start")
	if err != nil {
		return err
	}
	defer func() {
		if cerr := e.Close(); err == nil {
			err = cerr
		}
	}()

	route := e.cfg.TUI.DefaultRoute
	if len(args) > 0 {
		route = args[0]
	}

	watchPath := ""
	if e.cfg.Store.Watch {
		watchPath = store.WatchPath(e.store)
	}

	app := tui.New(cmd.Context(), e.store, tui.Options{
		Route:    route,
		Theme:    e.cfg.TUI.Theme,
		ShowHelp: e.cfg.TUI.ShowHelp,
		Logger:   e.logger,
	}, watchPath)

	e.logger.Info("starting tui", "route", route, "driver", e.cfg.Store.Driver)
	if err := app.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
