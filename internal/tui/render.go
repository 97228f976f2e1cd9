package tui

import (
	"github.com/Iron-Ham/todomvc/internal/render"
	"github.com/Iron-Ham/todomvc/internal/todo"
)

// Render implements controller.View. It only changes presentation state;
// drawing happens in View.
func (m *Model) Render(cmd render.Command) {
	switch c := cmd.(type) {
	case render.ShowEntries:
		m.entries = append([]todo.Task(nil), c.Tasks...)
		m.clampCursor()
		if m.mode == modeEdit && m.indexOf(m.editingID) < 0 {
			m.stopEditing()
		}

	case render.RemoveItem:
		if i := m.indexOf(c.ID); i >= 0 {
			m.entries = append(m.entries[:i], m.entries[i+1:]...)
			m.clampCursor()
		}
		if m.mode == modeEdit && m.editingID == c.ID {
			m.stopEditing()
		}

	case render.UpdateElementCount:
		m.active = c.Active

	case render.ClearCompletedButton:
		m.completed = c.Completed
		m.clearVisible = c.Visible

	case render.ContentBlockVisibility:
		m.contentVisible = c.Visible

	case render.ToggleAll:
		m.allChecked = c.Checked

	case render.SetFilter:
		m.filter = c.Filter

	case render.ClearNewTodo:
		m.newTodo.Reset()

	case render.ElementComplete:
		if i := m.indexOf(c.ID); i >= 0 {
			m.entries[i].Completed = c.Completed
		}

	case render.EditItem:
		if i := m.indexOf(c.ID); i >= 0 {
			m.cursor = i
		}
		m.mode = modeEdit
		m.editingID = c.ID
		m.newTodo.Blur()
		m.edit.SetValue(c.Title)
		m.edit.CursorEnd()
		m.edit.Focus()

	case render.EditItemDone:
		if i := m.indexOf(c.ID); i >= 0 {
			m.entries[i].Title = c.Title
		}
		if m.mode == modeEdit && m.editingID == c.ID {
			m.stopEditing()
		}

	default:
		panic(render.Unknown(cmd))
	}
}

func (m *Model) stopEditing() {
	m.mode = modeBrowse
	m.editingID = 0
	m.edit.Blur()
	m.edit.Reset()
}
