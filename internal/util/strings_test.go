package util

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestTruncateString(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		maxLen int
		want   string
	}{
		{"fits", "Buy milk", 10, "Buy milk"},
		{"exact", "Buy milk", 8, "Buy milk"},
		{"cut", "Walk the dog", 6, "Walk …"},
		{"one rune", "Walk the dog", 1, "…"},
		{"zero", "Walk the dog", 0, "…"},
		{"negative", "Walk the dog", -4, "…"},
		{"multibyte", "Café au lait", 5, "Café…"},
		{"empty", "", 3, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TruncateString(tt.input, tt.maxLen); got != tt.want {
				t.Errorf("TruncateString(%q, %d) = %q, want %q", tt.input, tt.maxLen, got, tt.want)
			}
		})
	}
}

func TestTruncateANSI(t *testing.T) {
	t.Run("plain text fits", func(t *testing.T) {
		if got := TruncateANSI("Buy milk", 20); got != "Buy milk" {
			t.Errorf("TruncateANSI() = %q, want unchanged", got)
		}
	})

	t.Run("plain text cut to width", func(t *testing.T) {
		got := TruncateANSI("Write the quarterly report", 10)
		if w := lipgloss.Width(got); w > 10 {
			t.Errorf("width = %d, want at most 10 (%q)", w, got)
		}
	})

	t.Run("styled text cut to width", func(t *testing.T) {
		styled := "\x1b[1mWrite the quarterly report\x1b[0m"
		got := TruncateANSI(styled, 10)
		if w := lipgloss.Width(got); w > 10 {
			t.Errorf("width = %d, want at most 10 (%q)", w, got)
		}
	})

	t.Run("wide characters", func(t *testing.T) {
		got := TruncateANSI("買い物リストを書く", 6)
		if w := lipgloss.Width(got); w > 6 {
			t.Errorf("width = %d, want at most 6 (%q)", w, got)
		}
	})

	t.Run("no room", func(t *testing.T) {
		if got := TruncateANSI("Buy milk", 0); got != "…" {
			t.Errorf("TruncateANSI() = %q, want ellipsis", got)
		}
	})
}
