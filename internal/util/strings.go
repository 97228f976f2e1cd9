// Package util holds small text helpers shared by the views and the logs.
package util

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

const ellipsis = "…"

// TruncateString shortens s to at most maxLen runes, ending in an ellipsis
// when anything was cut. Styling is not accounted for; use TruncateANSI for
// rendered text.
func TruncateString(s string, maxLen int) string {
	if maxLen < 1 {
		return ellipsis
	}
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	return string(runes[:maxLen-1]) + ellipsis
}

// TruncateANSI shortens s to maxWidth terminal columns, keeping escape
// sequences intact and counting wide characters as two columns.
func TruncateANSI(s string, maxWidth int) string {
	if maxWidth < 1 {
		return ellipsis
	}
	if lipgloss.Width(s) <= maxWidth {
		return s
	}
	return ansi.Truncate(s, maxWidth, ellipsis)
}
