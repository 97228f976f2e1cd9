package styles

import (
	"slices"

	"github.com/charmbracelet/lipgloss"
)

// ThemeName represents a named color theme.
type ThemeName string

// Available theme names.
const (
	ThemeDefault ThemeName = "default" // Purple/green dark theme
	ThemeMono    ThemeName = "mono"    // No color; emphasis only
)

// BuiltinThemes returns all built-in theme names.
func BuiltinThemes() []string {
	return []string{string(ThemeDefault), string(ThemeMono)}
}

// IsValidTheme checks if a theme name is a built-in theme.
func IsValidTheme(name string) bool {
	return slices.Contains(BuiltinThemes(), name)
}

// ColorPalette is the set of colors a theme draws with. An empty color
// leaves the terminal default in place.
type ColorPalette struct {
	Primary   lipgloss.Color
	Secondary lipgloss.Color
	Warning   lipgloss.Color
	Muted     lipgloss.Color
	Text      lipgloss.Color
	Border    lipgloss.Color
	Selection lipgloss.Color
}

// DefaultPalette returns the default theme colors. All colors meet WCAG AA
// contrast on dark backgrounds.
func DefaultPalette() *ColorPalette {
	return &ColorPalette{
		Primary:   lipgloss.Color("#A78BFA"), // violet-400
		Secondary: lipgloss.Color("#10B981"), // green
		Warning:   lipgloss.Color("#F59E0B"), // amber
		Muted:     lipgloss.Color("#9CA3AF"), // gray-400
		Text:      lipgloss.Color("#F9FAFB"),
		Border:    lipgloss.Color("#6B7280"), // gray-500
		Selection: lipgloss.Color("#1F2937"),
	}
}

// MonoPalette returns a palette with no colors.
func MonoPalette() *ColorPalette {
	return &ColorPalette{}
}

// GetPalette returns the palette for name, falling back to the default.
func GetPalette(name ThemeName) *ColorPalette {
	switch name {
	case ThemeMono:
		return MonoPalette()
	default:
		return DefaultPalette()
	}
}
