// Package testutil provides fakes for controller tests: a View that records
// every render command and a Store whose contents are scripted by the test.
package testutil

import (
	"reflect"
	"sync"

	"github.com/Iron-Ham/todomvc/internal/event"
	"github.com/Iron-Ham/todomvc/internal/render"
)

// View records render commands and keeps the handler table the controller
// binds into, so tests can Trigger intents as a user would.
type View struct {
	event.Registry

	mu       sync.Mutex
	commands []render.Command
}

// NewView creates an empty recording view.
func NewView() *View {
	return &View{}
}

// Render records cmd. It panics on a command outside the render vocabulary,
// as a real view would.
func (v *View) Render(cmd render.Command) {
	switch cmd.(type) {
	case render.ShowEntries,
		render.RemoveItem,
		render.UpdateElementCount,
		render.ClearCompletedButton,
		render.ContentBlockVisibility,
		render.ToggleAll,
		render.SetFilter,
		render.ClearNewTodo,
		render.ElementComplete,
		render.EditItem,
		render.EditItemDone:
	default:
		panic(render.Unknown(cmd))
	}

	v.mu.Lock()
	defer v.mu.Unlock()
	v.commands = append(v.commands, cmd)
}

// Commands returns a copy of every command rendered so far, in order.
func (v *View) Commands() []render.Command {
	v.mu.Lock()
	defer v.mu.Unlock()
	out := make([]render.Command, len(v.commands))
	copy(out, v.commands)
	return out
}

// Names returns the names of the rendered commands, in order.
func (v *View) Names() []render.Name {
	cmds := v.Commands()
	names := make([]render.Name, len(cmds))
	for i, cmd := range cmds {
		names[i] = cmd.Name()
	}
	return names
}

// Find returns the rendered commands with the given name, in order.
func (v *View) Find(name render.Name) []render.Command {
	var out []render.Command
	for _, cmd := range v.Commands() {
		if cmd.Name() == name {
			out = append(out, cmd)
		}
	}
	return out
}

// Count returns how many commands with the given name were rendered.
func (v *View) Count(name render.Name) int {
	return len(v.Find(name))
}

// Rendered reports whether a command deeply equal to want was rendered.
// A nil and an empty ShowEntries task list compare equal.
func (v *View) Rendered(want render.Command) bool {
	for _, cmd := range v.Commands() {
		if equalCommands(cmd, want) {
			return true
		}
	}
	return false
}

// Reset forgets every recorded command. Bound handlers are kept.
func (v *View) Reset() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.commands = nil
}

func equalCommands(a, b render.Command) bool {
	sa, okA := a.(render.ShowEntries)
	sb, okB := b.(render.ShowEntries)
	if okA && okB && len(sa.Tasks) == 0 && len(sb.Tasks) == 0 {
		return true
	}
	return reflect.DeepEqual(a, b)
}
