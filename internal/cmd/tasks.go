package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	apperrors "github.com/Iron-Ham/todomvc/internal/errors"
	"github.com/Iron-Ham/todomvc/internal/event"
	"github.com/Iron-Ham/todomvc/internal/todo"
)

var addCmd = &cobra.Command{
	Use:   "add <title...>",
	Short: "Add a todo",
	Long: `Add a todo. The arguments are joined with spaces to form the title.

Example:
  todomvc add Buy milk`,
	Args: cobra.MinimumNArgs(1),
	RunE: runAdd,
}

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List todos",
	Long: `List todos with the counter line shown in the UI footer.

Use --route to list only active or completed todos:
  todomvc list --route '#/active'`,
	Args: cobra.NoArgs,
	RunE: runList,
}

var toggleCmd = &cobra.Command{
	Use:   "toggle <id>",
	Short: "Mark a todo completed, or active again",
	Args:  cobra.ExactArgs(1),
	RunE:  runToggle,
}

var toggleAllCmd = &cobra.Command{
	Use:   "toggle-all",
	Short: "Mark every todo completed",
	Long: `Mark every todo completed.

With --undo, mark every todo active instead.`,
	Args: cobra.NoArgs,
	RunE: runToggleAll,
}

var editCmd = &cobra.Command{
	Use:   "edit <id> <title...>",
	Short: "Rename a todo",
	Long: `Rename a todo. Surrounding whitespace is trimmed from the new title.
A blank title removes the todo, as it does in the UI.`,
	Args: cobra.MinimumNArgs(2),
	RunE: runEdit,
}

var removeCmd = &cobra.Command{
	Use:     "rm <id>",
	Aliases: []string{"remove"},
	Short:   "Remove a todo",
	Args:    cobra.ExactArgs(1),
	RunE:    runRemove,
}

var clearCompletedCmd = &cobra.Command{
	Use:   "clear-completed",
	Short: "Remove every completed todo",
	Args:  cobra.NoArgs,
	RunE:  runClearCompleted,
}

var (
	listRoute     string
	toggleAllUndo bool
)

func init() {
	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(toggleCmd)
	rootCmd.AddCommand(toggleAllCmd)
	rootCmd.AddCommand(editCmd)
	rootCmd.AddCommand(removeCmd)
	rootCmd.AddCommand(clearCompletedCmd)

	listCmd.Flags().StringVarP(&listRoute, "route", "r", todo.RouteAll, "route to list: '#/', '#/active' or '#/completed'")
	toggleAllCmd.Flags().BoolVar(&toggleAllUndo, "undo", false, "mark every todo active")
}

// withHeadless opens the environment and runs fn against a headless controller.
func withHeadless(cmd *cobra.Command, fn func(h *headless) error) (err error) {
	e, err := openEnv(cmd.Name())
	if err != nil {
		return err
	}
	defer func() {
		if cerr := e.Close(); err == nil {
			err = cerr
		}
	}()

	return fn(newHeadless(cmd.Context(), e, cmd.OutOrStdout()))
}

func runAdd(cmd *cobra.Command, args []string) error {
	title := strings.TrimSpace(strings.Join(args, " "))
	if title == "" {
		return apperrors.NewValidationError("title must not be blank").WithField("title")
	}

	return withHeadless(cmd, func(h *headless) error {
		if err := h.trigger(event.NewTodo{Title: title}); err != nil {
			return err
		}
		if t, ok := h.view.newest(); ok && h.view.added {
			fmt.Fprintf(cmd.OutOrStdout(), "Added #%d: %s\n", t.ID, t.Title)
		}
		h.view.printFooter()
		return nil
	})
}

func runList(cmd *cobra.Command, args []string) error {
	return withHeadless(cmd, func(h *headless) error {
		if err := h.show(listRoute); err != nil {
			return err
		}
		h.view.printList()
		h.view.printFooter()
		return nil
	})
}

func runToggle(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}

	return withHeadless(cmd, func(h *headless) error {
		t, err := h.require(id)
		if err != nil {
			return err
		}
		if err := h.trigger(event.ItemToggle{ID: id, Completed: !t.Completed}); err != nil {
			return err
		}
		h.view.printFooter()
		return nil
	})
}

func runToggleAll(cmd *cobra.Command, args []string) error {
	return withHeadless(cmd, func(h *headless) error {
		if err := h.trigger(event.ToggleAll{Completed: !toggleAllUndo}); err != nil {
			return err
		}
		h.view.printFooter()
		return nil
	})
}

func runEdit(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}
	title := strings.Join(args[1:], " ")

	return withHeadless(cmd, func(h *headless) error {
		if _, err := h.require(id); err != nil {
			return err
		}
		if err := h.trigger(event.ItemEditDone{ID: id, Title: title}); err != nil {
			return err
		}
		h.view.printFooter()
		return nil
	})
}

func runRemove(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}

	return withHeadless(cmd, func(h *headless) error {
		if _, err := h.require(id); err != nil {
			return err
		}
		if err := h.trigger(event.ItemRemove{ID: id}); err != nil {
			return err
		}
		h.view.printFooter()
		return nil
	})
}

func runClearCompleted(cmd *cobra.Command, args []string) error {
	return withHeadless(cmd, func(h *headless) error {
		if err := h.show(todo.RouteAll); err != nil {
			return err
		}
		if h.view.completed == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No completed todos")
			return nil
		}
		if err := h.trigger(event.RemoveCompleted{}); err != nil {
			return err
		}
		h.view.printFooter()
		return nil
	})
}
