// Package ui contains the terminal components of the bug tracker: a report
// form, the bug list, and small building blocks shared between them. Models
// follow the Elm-style Update/View shape and are composed by a host program.
package ui

import "github.com/charmbracelet/lipgloss"

// Semantic colors shared by every component.
var (
	ColorPrimary = lipgloss.Color("#2196F3") // Blue
	ColorSuccess = lipgloss.Color("#8BC34A") // Lime Green
	ColorDanger  = lipgloss.Color("#e53935") // Red
	ColorWarning = lipgloss.Color("#FFC107") // Yellow
	ColorMuted   = lipgloss.Color("#6b7280") // Gray
)

// Styles holds the lipgloss styles used across the ui components.
type Styles struct {
	Header   lipgloss.Style
	Label    lipgloss.Style
	Selected lipgloss.Style
	Muted    lipgloss.Style
	Error    lipgloss.Style
	Status   map[string]lipgloss.Style
}

// DefaultStyles returns the standard component styling.
func DefaultStyles() Styles {
	return Styles{
		Header:   lipgloss.NewStyle().Bold(true).Foreground(ColorPrimary),
		Label:    lipgloss.NewStyle().Bold(true),
		Selected: lipgloss.NewStyle().Bold(true).Foreground(ColorSuccess),
		Muted:    lipgloss.NewStyle().Foreground(ColorMuted),
		Error:    lipgloss.NewStyle().Bold(true).Foreground(ColorDanger),
		Status: map[string]lipgloss.Style{
			"open":        lipgloss.NewStyle().Foreground(ColorDanger),
			"in-progress": lipgloss.NewStyle().Foreground(ColorWarning),
			"resolved":    lipgloss.NewStyle().Foreground(ColorSuccess),
		},
	}
}
