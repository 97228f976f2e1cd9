// Package render defines the closed vocabulary of commands the controller
// sends to a view. A command says what changed, never how to draw it.
//
// Views consume commands with an exhaustive type switch and treat anything
// else as a contract violation:
//
//	func (v *myView) Render(cmd render.Command) {
//	    switch c := cmd.(type) {
//	    case render.ShowEntries:
//	        ...
//	    default:
//	        panic(render.Unknown(cmd))
//	    }
//	}
package render

import (
	"errors"
	"fmt"

	"github.com/Iron-Ham/todomvc/internal/todo"
)

// ErrUnknownCommand is wrapped by Unknown.
var ErrUnknownCommand = errors.New("unknown render command")

// Name identifies a render command.
type Name string

const (
	NameShowEntries            Name = "showEntries"
	NameRemoveItem             Name = "removeItem"
	NameUpdateElementCount     Name = "updateElementCount"
	NameClearCompletedButton   Name = "clearCompletedButton"
	NameContentBlockVisibility Name = "contentBlockVisibility"
	NameToggleAll              Name = "toggleAll"
	NameSetFilter              Name = "setFilter"
	NameClearNewTodo           Name = "clearNewTodo"
	NameElementComplete        Name = "elementComplete"
	NameEditItem               Name = "editItem"
	NameEditItemDone           Name = "editItemDone"
)

// Names returns every valid command name.
func Names() []Name {
	return []Name{
		NameShowEntries,
		NameRemoveItem,
		NameUpdateElementCount,
		NameClearCompletedButton,
		NameContentBlockVisibility,
		NameToggleAll,
		NameSetFilter,
		NameClearNewTodo,
		NameElementComplete,
		NameEditItem,
		NameEditItemDone,
	}
}

// Command is implemented only by the command types in this package.
type Command interface {
	Name() Name
	sealed()
}

// Unknown returns the error a view raises for a command it does not handle.
func Unknown(cmd Command) error {
	if cmd == nil {
		return fmt.Errorf("%w: <nil>", ErrUnknownCommand)
	}
	return fmt.Errorf("%w: %q (%T)", ErrUnknownCommand, cmd.Name(), cmd)
}

// ShowEntries replaces the visible list with Tasks.
type ShowEntries struct {
	Tasks []todo.Task
}

// RemoveItem drops one task from the visible list.
type RemoveItem struct {
	ID int
}

// UpdateElementCount sets the "items left" counter. Active is the number of
// incomplete tasks, never the total.
type UpdateElementCount struct {
	Active int
}

// ClearCompletedButton sets the label count and visibility of the
// clear-completed control.
type ClearCompletedButton struct {
	Completed int
	Visible   bool
}

// ContentBlockVisibility shows or hides the list and footer.
type ContentBlockVisibility struct {
	Visible bool
}

// ToggleAll sets the toggle-all checkbox.
type ToggleAll struct {
	Checked bool
}

// SetFilter highlights the selected filter. Filter is the route segment:
// "", "active" or "completed".
type SetFilter struct {
	Filter string
}

// ClearNewTodo empties the new-todo field.
type ClearNewTodo struct{}

// ElementComplete sets one visible task's completion state.
type ElementComplete struct {
	ID        int
	Completed bool
}

// EditItem puts a visible task into edit mode with Title as the field value.
type EditItem struct {
	ID    int
	Title string
}

// EditItemDone leaves edit mode and shows Title for the task.
type EditItemDone struct {
	ID    int
	Title string
}

func (ShowEntries) Name() Name            { return NameShowEntries }
func (RemoveItem) Name() Name             { return NameRemoveItem }
func (UpdateElementCount) Name() Name     { return NameUpdateElementCount }
func (ClearCompletedButton) Name() Name   { return NameClearCompletedButton }
func (ContentBlockVisibility) Name() Name { return NameContentBlockVisibility }
func (ToggleAll) Name() Name              { return NameToggleAll }
func (SetFilter) Name() Name              { return NameSetFilter }
func (ClearNewTodo) Name() Name           { return NameClearNewTodo }
func (ElementComplete) Name() Name        { return NameElementComplete }
func (EditItem) Name() Name               { return NameEditItem }
func (EditItemDone) Name() Name           { return NameEditItemDone }

func (ShowEntries) sealed()            {}
func (RemoveItem) sealed()             {}
func (UpdateElementCount) sealed()     {}
func (ClearCompletedButton) sealed()   {}
func (ContentBlockVisibility) sealed() {}
func (ToggleAll) sealed()              {}
func (SetFilter) sealed()              {}
func (ClearNewTodo) sealed()           {}
func (ElementComplete) sealed()        {}
func (EditItem) sealed()               {}
func (EditItemDone) sealed()           {}
