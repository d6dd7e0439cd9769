// Package materias is the subject picker that starts a diagnostic.
package materias

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/platanus-hack-25/lumera-cli/internal/api"
	"github.com/platanus-hack-25/lumera-cli/internal/screen"
	"github.com/platanus-hack-25/lumera-cli/internal/subjects"
	"github.com/platanus-hack-25/lumera-cli/internal/ui/layout"
	"github.com/platanus-hack-25/lumera-cli/internal/ui/theme"
)

// Screen lists subjects with their domain level. Enter calls open with the
// chosen subject.
type Screen struct {
	materias []api.Materia
	cards    []subjects.Subject
	levels   map[int64]int
	open     func(api.Materia) tea.Cmd
	cursor   int
}

var _ screen.Screen = (*Screen)(nil)

// New creates the picker. levels maps materia id to a 0..4 domain level
// and may be nil.
func New(materias []api.Materia, levels map[int64]int, open func(api.Materia) tea.Cmd) *Screen {
	return &Screen{
		materias: materias,
		cards:    subjects.FromMaterias(materias),
		levels:   levels,
		open:     open,
	}
}

func (s *Screen) Init() tea.Cmd { return nil }
func (s *Screen) Title() string { return "Materias" }

func (s *Screen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok || len(s.materias) == 0 {
		return s, nil
	}
	switch kmsg.String() {
	case "up", "k":
		if s.cursor > 0 {
			s.cursor--
		}
	case "down", "j":
		if s.cursor < len(s.materias)-1 {
			s.cursor++
		}
	case "enter":
		if s.open != nil {
			return s, s.open(s.materias[s.cursor])
		}
	}
	return s, nil
}

func (s *Screen) View(width, height int) string {
	if len(s.cards) == 0 {
		return layout.Center(theme.Hint.Render("No hay materias disponibles."), width, height)
	}

	var b strings.Builder
	b.WriteString(theme.Subtitle.Render("Elige una materia para tu diagnóstico") + "\n\n")
	for i, c := range s.cards {
		info := subjects.DomainLevelInfo(s.levels[s.materias[i].ID])
		prefix := "  "
		style := theme.Body
		if i == s.cursor {
			prefix = "▸ "
			style = theme.Selected
		}
		b.WriteString(style.Render(fmt.Sprintf("%s%s  %s", prefix, c.Icon, c.Name)))
		b.WriteString("  " + theme.LevelColor(int(info.Level)).Render(info.Label) + "\n")
	}
	return layout.Center(b.String(), width, height)
}
