// Package ui provides the visual styling for the baserun interactive
// session.
package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// Semantic colors. The session runs in the user's terminal palette, so
// only the handful of accents the display contract needs are themed.
var (
	ColorError   = lipgloss.Color("9")  // bright red
	ColorActive  = lipgloss.Color("10") // bright green
	ColorMuted   = lipgloss.Color("8")
	ColorBorder  = lipgloss.Color("7")
	ColorPrimary = lipgloss.Color("12")
)

// Styles holds the lipgloss styles for the session's three regions:
// input box, status lines, and history panel.
type Styles struct {
	// Input region
	InputBox   lipgloss.Style
	InputTitle lipgloss.Style

	// Status region
	Error       lipgloss.Style
	DesignerOn  lipgloss.Style
	DesignerOff lipgloss.Style

	// History panel
	HistoryBox      lipgloss.Style
	HistoryTitle    lipgloss.Style
	HistoryItem     lipgloss.Style
	HistorySelected lipgloss.Style
}

// NewStyles creates the default style set.
func NewStyles() Styles {
	return Styles{
		InputBox: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(0, 1),

		InputTitle: lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Bold(true),

		Error: lipgloss.NewStyle().
			Foreground(ColorError),

		DesignerOn: lipgloss.NewStyle().
			Foreground(ColorActive),

		DesignerOff: lipgloss.NewStyle(),

		HistoryBox: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(0, 1),

		HistoryTitle: lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Bold(true),

		HistoryItem: lipgloss.NewStyle(),

		HistorySelected: lipgloss.NewStyle().
			Reverse(true),
	}
}
