package styles

import "github.com/charmbracelet/lipgloss"

// Styles holds every style the task list is drawn with.
type Styles struct {
	Title lipgloss.Style

	// Input line
	Prompt      lipgloss.Style
	Placeholder lipgloss.Style
	ToggleAllOn lipgloss.Style
	ToggleAll   lipgloss.Style

	// List rows
	Cursor    lipgloss.Style
	Item      lipgloss.Style
	ItemDone  lipgloss.Style
	Selected  lipgloss.Style
	Checkbox  lipgloss.Style
	CheckDone lipgloss.Style
	Editing   lipgloss.Style

	// Footer
	Footer         lipgloss.Style
	Counter        lipgloss.Style
	FilterActive   lipgloss.Style
	FilterInactive lipgloss.Style
	ClearCompleted lipgloss.Style
	Empty          lipgloss.Style

	Help lipgloss.Style
}

// New builds the styles for theme. Unknown names use the default theme.
func New(theme string) *Styles {
	p := GetPalette(ThemeName(theme))
	mono := ThemeName(theme) == ThemeMono

	s := &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.Primary).
			MarginBottom(1),

		Prompt:      lipgloss.NewStyle().Foreground(p.Primary).Bold(true),
		Placeholder: lipgloss.NewStyle().Foreground(p.Muted).Italic(true),
		ToggleAllOn: lipgloss.NewStyle().Foreground(p.Secondary).Bold(true),
		ToggleAll:   lipgloss.NewStyle().Foreground(p.Muted),

		Cursor:    lipgloss.NewStyle().Foreground(p.Primary).Bold(true),
		Item:      lipgloss.NewStyle().Foreground(p.Text),
		ItemDone:  lipgloss.NewStyle().Foreground(p.Muted).Strikethrough(true),
		Selected:  lipgloss.NewStyle().Background(p.Selection),
		Checkbox:  lipgloss.NewStyle().Foreground(p.Muted),
		CheckDone: lipgloss.NewStyle().Foreground(p.Secondary),
		Editing: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(p.Warning).
			PaddingLeft(1),

		Footer: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), true, false, false, false).
			BorderForeground(p.Border).
			MarginTop(1),
		Counter: lipgloss.NewStyle().Foreground(p.Muted),
		FilterActive: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.Text).
			Background(p.Primary).
			Padding(0, 1),
		FilterInactive: lipgloss.NewStyle().
			Foreground(p.Muted).
			Padding(0, 1),
		ClearCompleted: lipgloss.NewStyle().Foreground(p.Warning),
		Empty:          lipgloss.NewStyle().Foreground(p.Muted).Italic(true),

		Help: lipgloss.NewStyle().Foreground(p.Muted).MarginTop(1),
	}

	if mono {
		// Without color the selected filter and row need another cue.
		s.FilterActive = lipgloss.NewStyle().Bold(true).Underline(true).Padding(0, 1)
		s.Selected = lipgloss.NewStyle().Reverse(true)
	}
	return s
}

// CheckboxFor returns the marker for a task's completion state.
func (s *Styles) CheckboxFor(completed bool) string {
	if completed {
		return s.CheckDone.Render("[x]")
	}
	return s.Checkbox.Render("[ ]")
}
