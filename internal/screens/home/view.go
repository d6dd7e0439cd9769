package home

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/platanus-hack-25/lumera-cli/internal/ui/components"
	"github.com/platanus-hack-25/lumera-cli/internal/ui/layout"
	"github.com/platanus-hack-25/lumera-cli/internal/ui/theme"
)

func (h *Screen) View(width, height int) string {
	cw := layout.ContentWidth(width)
	compact := height < 28

	var sections []string
	sections = append(sections, h.renderGreeting(compact))
	if h.stats != nil {
		sections = append(sections, h.renderStats(cw))
	}
	sections = append(sections, h.renderCounts())
	if !compact {
		sections = append(sections, h.renderActivities(cw))
	}
	sections = append(sections, h.menu.View())
	for _, w := range h.warnings {
		sections = append(sections, theme.Warning.Render("⚠ "+w))
	}

	return layout.Center(strings.Join(sections, "\n\n"), width, height)
}

func (h *Screen) renderGreeting(compact bool) string {
	name := "estudiante"
	if u := h.deps.Account.User(); u != nil && u.Name != "" {
		name = u.Name
	}
	greeting := theme.Title.Render("¡Hola, " + name + "!")
	if a := h.deps.Avatar.CurrentAvatar(); a != nil {
		greeting += theme.Hint.Render("  · " + a.Name)
	}
	if compact {
		return greeting
	}

	streak := 0
	if h.stats != nil {
		streak = h.stats.CurrentStreak
	}
	return lipgloss.JoinHorizontal(lipgloss.Center, renderOwl(MoodFor(streak)), "   ", greeting)
}

func (h *Screen) renderStats(cw int) string {
	st := h.stats
	progress := 0.0
	if st.XPForNextLevel > 0 {
		progress = float64(st.XPProgress) / float64(st.XPForNextLevel)
	}
	line := fmt.Sprintf("%s   %s   %s",
		lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).Render(fmt.Sprintf("Nivel %d", st.Level)),
		lipgloss.NewStyle().Foreground(theme.Gold).Render(fmt.Sprintf("◎ %d monedas", st.Coins)),
		lipgloss.NewStyle().Foreground(theme.Accent).Render(fmt.Sprintf("🔥 %d días", st.CurrentStreak)),
	)
	bar := components.NewProgressBar(fmt.Sprintf("%d XP", st.XP), progress, true, cw-4).View()
	return layout.Card(line+"\n"+bar, cw)
}

func (h *Screen) renderCounts() string {
	d := h.deps.Dashboard
	return theme.Subtitle.Render(fmt.Sprintf("%d misiones activas · %d eventos · %d actividades",
		d.ActiveMissionCount(), d.EventCount(), d.ActivityCount()))
}

func (h *Screen) renderActivities(cw int) string {
	acts := h.deps.Dashboard.Snapshot().Activities
	var b strings.Builder
	for i, a := range acts {
		if i == 3 {
			break
		}
		b.WriteString(fmt.Sprintf("%s %s  %s\n", a.Icon, a.Text, theme.Hint.Render(a.Time)))
	}
	return lipgloss.NewStyle().Width(cw).Render(strings.TrimRight(b.String(), "\n"))
}
