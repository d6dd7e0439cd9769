// Package missions lists the dashboard missions and advances their state.
package missions

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/platanus-hack-25/lumera-cli/internal/dashboard"
	"github.com/platanus-hack-25/lumera-cli/internal/screen"
	"github.com/platanus-hack-25/lumera-cli/internal/ui/layout"
	"github.com/platanus-hack-25/lumera-cli/internal/ui/theme"
)

type row struct {
	category string
	mission  dashboard.Mission
}

type Screen struct {
	store  *dashboard.Store
	rows   []row
	cursor int
}

var _ screen.Screen = (*Screen)(nil)
var _ screen.KeyHintProvider = (*Screen)(nil)

func New(store *dashboard.Store) *Screen {
	s := &Screen{store: store}
	s.reload()
	return s
}

func (s *Screen) Init() tea.Cmd { return nil }
func (s *Screen) Title() string { return "Misiones" }

func (s *Screen) reload() {
	m := s.store.Snapshot().Missions
	s.rows = s.rows[:0]
	for _, c := range []struct {
		name string
		list []dashboard.Mission
	}{
		{"Diarias", m.Daily},
		{"Semanales", m.Weekly},
		{"Historia", m.Story},
		{"Secundarias", m.Side},
	} {
		for _, mission := range c.list {
			s.rows = append(s.rows, row{category: c.name, mission: mission})
		}
	}
	s.cursor = min(s.cursor, max(len(s.rows)-1, 0))
}

func (s *Screen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok || len(s.rows) == 0 {
		return s, nil
	}
	switch kmsg.String() {
	case "up", "k":
		if s.cursor > 0 {
			s.cursor--
		}
	case "down", "j":
		if s.cursor < len(s.rows)-1 {
			s.cursor++
		}
	case "enter":
		m := s.rows[s.cursor].mission
		switch m.State {
		case dashboard.MissionStart:
			s.store.MarkMissionInProgress(m.ID)
		case dashboard.MissionProgress:
			s.store.MarkMissionDone(m.ID)
		}
		s.reload()
	}
	return s, nil
}

func (s *Screen) View(width, height int) string {
	cw := layout.ContentWidth(width)
	var b strings.Builder
	b.WriteString(theme.Subtitle.Render(fmt.Sprintf("%d misiones activas", s.store.ActiveMissionCount())))
	b.WriteString("\n")

	category := ""
	for i, r := range s.rows {
		if r.category != category {
			category = r.category
			b.WriteString("\n" + theme.Title.Render(category) + "\n")
		}
		b.WriteString(renderRow(r.mission, i == s.cursor, cw) + "\n")
	}
	return layout.Center(b.String(), width, height)
}

func renderRow(m dashboard.Mission, selected bool, cw int) string {
	mark := map[dashboard.MissionState]string{
		dashboard.MissionStart:    "○",
		dashboard.MissionProgress: "◐",
		dashboard.MissionDone:     "●",
	}[m.State]

	prefix := "  "
	style := theme.Body
	switch {
	case selected:
		prefix = "▸ "
		style = theme.Selected
	case m.State == dashboard.MissionDone:
		style = lipgloss.NewStyle().Foreground(theme.TextDim)
	}

	left := fmt.Sprintf("%s%s %s · %s", prefix, mark, m.Subject, m.Title)
	right := theme.Warning.Render(m.Reward) + theme.Hint.Render("  "+m.Time)
	gap := max(cw-lipgloss.Width(left)-lipgloss.Width(right), 1)
	return style.Render(left) + strings.Repeat(" ", gap) + right
}

func (s *Screen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navegar"},
		{Key: "Enter", Description: "Avanzar misión"},
		{Key: "Esc", Description: "Volver"},
	}
}
