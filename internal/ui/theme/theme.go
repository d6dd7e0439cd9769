// Package theme holds the TUI palette and shared styles.
package theme

import (
	"charm.land/lipgloss/v2"
)

// Palette, taken from the web app's indigo and amber accents.
var (
	Primary   = lipgloss.Color("#6366F1") // indigo-500
	Secondary = lipgloss.Color("#14B8A6") // teal-500
	Accent    = lipgloss.Color("#F59E0B") // amber-500
	Gold      = lipgloss.Color("#FBBF24") // amber-400
	Success   = lipgloss.Color("#10B981") // emerald-500
	Error     = lipgloss.Color("#EF4444") // red-500
	Text      = lipgloss.Color("#F8FAFC")
	TextDim   = lipgloss.Color("#94A3B8")
	BgDark    = lipgloss.Color("#0F172A")
	BgCard    = lipgloss.Color("#1E293B")
	Border    = lipgloss.Color("#334155")
)

var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary)

	Subtitle = lipgloss.NewStyle().
			Foreground(TextDim)

	Body = lipgloss.NewStyle().
		Foreground(Text)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)

	Selected = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)

	Correct = lipgloss.NewStyle().
		Foreground(Success).
		Bold(true)

	Incorrect = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)

	Warning = lipgloss.NewStyle().
		Foreground(Accent)
)

// Bar segments.
var (
	ProgressFilled = lipgloss.NewStyle().
			Background(Secondary)

	ProgressEmpty = lipgloss.NewStyle().
			Background(Border)
)

// LevelColor returns the color of a 0..4 mastery level, from red to
// indigo.
func LevelColor(level int) lipgloss.Style {
	colors := []string{"#64748B", "#DC2626", "#EAB308", "#22C55E", "#3B82F6"}
	if level < 0 || level >= len(colors) {
		level = 0
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(colors[level])).Bold(true)
}
