package home

import (
	"charm.land/lipgloss/v2"

	"github.com/platanus-hack-25/lumera-cli/internal/ui/theme"
)

// Mood selects the owl drawn on the home screen.
type Mood int

const (
	MoodIdle   Mood = iota
	MoodOnFire      // streak of three days or more
	MoodSleepy      // no streak
)

const owlIdle = ` ,_,
(O,O)
(   )
 " "`

const owlOnFire = ` ,_,
(*,*)
(   )  ¡Racha!
 " "`

const owlSleepy = ` ,_,
(-,-) z
(   )
 " "`

// MoodFor picks the owl for a streak length.
func MoodFor(streak int) Mood {
	switch {
	case streak >= 3:
		return MoodOnFire
	case streak == 0:
		return MoodSleepy
	default:
		return MoodIdle
	}
}

func renderOwl(m Mood) string {
	art, fg := owlIdle, theme.Primary
	switch m {
	case MoodOnFire:
		art, fg = owlOnFire, theme.Gold
	case MoodSleepy:
		art, fg = owlSleepy, theme.TextDim
	}
	return lipgloss.NewStyle().Foreground(fg).Render(art)
}
