package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Iron-Ham/todomvc/internal/todo"
	"github.com/Iron-Ham/todomvc/internal/util"
)

// View implements tea.Model.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(m.styles.Title.Render("todos"))
	b.WriteString("\n")
	b.WriteString(m.renderInput())
	b.WriteString("\n")

	if m.contentVisible {
		b.WriteString(m.renderList())
		b.WriteString(m.renderFooter())
	}

	if m.showHelp {
		b.WriteString("\n")
		b.WriteString(m.renderHelp())
	}
	return b.String()
}

func (m *Model) renderInput() string {
	toggle := "  "
	if m.contentVisible {
		if m.allChecked {
			toggle = m.styles.ToggleAllOn.Render("⌄ ")
		} else {
			toggle = m.styles.ToggleAll.Render("⌄ ")
		}
	}
	return toggle + m.newTodo.View()
}

func (m *Model) renderList() string {
	if len(m.entries) == 0 {
		return m.styles.Empty.Render("  nothing here") + "\n"
	}

	var b strings.Builder
	for i, t := range m.entries {
		cursor := "  "
		if i == m.cursor && m.mode != modeNew {
			cursor = m.styles.Cursor.Render("› ")
		}

		var line string
		if m.mode == modeEdit && t.ID == m.editingID {
			line = m.styles.Editing.Render(m.edit.View())
		} else {
			text := t.Title
			if m.width > 0 {
				// cursor, checkbox and the space between them
				text = util.TruncateANSI(text, max(m.width-6, 1))
			}
			title := m.styles.Item.Render(text)
			if t.Completed {
				title = m.styles.ItemDone.Render(text)
			}
			line = m.styles.CheckboxFor(t.Completed) + " " + title
			if i == m.cursor && m.mode == modeBrowse {
				line = m.styles.Selected.Render(line)
			}
		}

		b.WriteString(cursor)
		b.WriteString(line)
		b.WriteString("\n")
	}
	return b.String()
}

func (m *Model) renderFooter() string {
	counter := m.styles.Counter.Render(itemsLeft(m.active))

	current := m.currentFilter()
	var tabs []string
	for _, f := range todo.Filters() {
		if f == current {
			tabs = append(tabs, m.styles.FilterActive.Render(f.Label()))
		} else {
			tabs = append(tabs, m.styles.FilterInactive.Render(f.Label()))
		}
	}

	parts := []string{counter, "  ", lipgloss.JoinHorizontal(lipgloss.Top, tabs...)}
	if m.clearVisible {
		parts = append(parts, "  ", m.styles.ClearCompleted.Render(fmt.Sprintf("Clear completed (%d)", m.completed)))
	}
	return m.styles.Footer.Render(lipgloss.JoinHorizontal(lipgloss.Top, parts...))
}

func (m *Model) renderHelp() string {
	if m.mode != modeBrowse {
		return m.styles.Help.Render(m.help.View(editingKeys{m.keys}))
	}
	return m.styles.Help.Render(m.help.View(m.keys))
}

// itemsLeft formats the active counter the way the footer shows it.
func itemsLeft(n int) string {
	if n == 1 {
		return "1 item left"
	}
	return fmt.Sprintf("%d items left", n)
}
