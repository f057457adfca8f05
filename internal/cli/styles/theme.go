// Package styles provides shared lipgloss styling for CLI output and the TUI.
package styles

import "github.com/charmbracelet/lipgloss"

// Theme holds the color roles used across CLI output.
type Theme struct {
	Accent    lipgloss.Color
	Muted     lipgloss.Color
	Good      lipgloss.Color
	Bad       lipgloss.Color
	Subtle    lipgloss.Style
	Highlight lipgloss.Style
	Header    lipgloss.Style
}

// DefaultTheme returns the default color theme.
func DefaultTheme() *Theme {
	accent := lipgloss.Color("10")
	muted := lipgloss.Color("8")
	return &Theme{
		Accent:    accent,
		Muted:     muted,
		Good:      lipgloss.Color("10"),
		Bad:       lipgloss.Color("9"),
		Subtle:    lipgloss.NewStyle().Foreground(muted),
		Highlight: lipgloss.NewStyle().Bold(true),
		Header:    lipgloss.NewStyle().Foreground(accent).Bold(true),
	}
}

// OnOff renders a boolean as a colored on/off marker.
func (t *Theme) OnOff(v bool) string {
	if v {
		return lipgloss.NewStyle().Foreground(t.Good).Render("on")
	}
	return t.Subtle.Render("off")
}
