package quiz

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/platanus-hack-25/lumera-cli/internal/assessment"
	"github.com/platanus-hack-25/lumera-cli/internal/ui/components"
	"github.com/platanus-hack-25/lumera-cli/internal/ui/layout"
	"github.com/platanus-hack-25/lumera-cli/internal/ui/theme"
)

func (s *Screen) View(width, height int) string {
	cw := layout.ContentWidth(width)
	var body string
	switch s.phase {
	case phaseLoading:
		body = theme.Hint.Render("Cargando…")
	case phaseQuestion:
		body = s.renderQuestion(cw)
	case phaseFeedback:
		body = s.renderQuestion(cw) + "\n" + s.renderVerdict(cw)
	case phaseSummary:
		body = renderSummary(s.summary, cw)
	case phaseFailed:
		body = theme.Incorrect.Render("Algo salió mal") + "\n\n" +
			lipgloss.NewStyle().Width(cw).Render(s.err.Error())
	}
	return layout.Center(body, width, height)
}

func (s *Screen) renderQuestion(cw int) string {
	p := s.prompt
	var b strings.Builder

	if p.Total > 0 {
		b.WriteString(components.NewProgressBar(
			fmt.Sprintf("Pregunta %d de %d", p.Number, p.Total),
			float64(p.Number-1)/float64(p.Total), false, cw,
		).View())
		b.WriteString("\n\n")
	} else if p.Number > 0 {
		b.WriteString(theme.Subtitle.Render(fmt.Sprintf("Pregunta %d", p.Number)) + "\n\n")
	}

	b.WriteString(lipgloss.NewStyle().Width(cw).Bold(true).Foreground(theme.Text).Render(p.Text))
	b.WriteString("\n\n")

	if p.Type == assessment.TypeFillBlanks {
		if p.Blanks > 1 {
			b.WriteString(theme.Hint.Render(fmt.Sprintf("%d espacios, separa con comas", p.Blanks)) + "\n")
		}
		b.WriteString(s.input.View())
	} else {
		b.WriteString(s.choice.View())
	}

	if s.notice != "" {
		b.WriteString("\n" + theme.Hint.Render(s.notice))
	}
	return b.String()
}

func (s *Screen) renderVerdict(cw int) string {
	v := s.verdict
	var b strings.Builder
	if v.IsCorrect {
		b.WriteString(theme.Correct.Render("✓ ¡Correcto!"))
	} else {
		b.WriteString(theme.Incorrect.Render("✗ Incorrecto"))
	}
	if v.NewBloomLevel > 0 {
		b.WriteString(theme.Hint.Render(fmt.Sprintf("   nivel Bloom %d", v.NewBloomLevel)))
	}
	if v.Explanation != "" {
		b.WriteString("\n\n" + lipgloss.NewStyle().Width(cw).Foreground(theme.TextDim).Render(v.Explanation))
	}
	return b.String()
}

func renderSummary(sum *assessment.Summary, cw int) string {
	var b strings.Builder
	b.WriteString(theme.Title.Render("Resultados") + "\n\n")
	b.WriteString(fmt.Sprintf("%d de %d correctas\n\n", sum.Correct, sum.Answered))

	b.WriteString(theme.LevelColor(int(sum.Level.Level)).Render(
		fmt.Sprintf("%s · %d%%", sum.Level.Label, sum.Level.Percentage)) + "\n")
	b.WriteString(components.NewProgressBar("", float64(sum.Level.Percentage)/100, false, cw).View())
	b.WriteString("\n\n")

	if sum.BloomFinal > 0 {
		b.WriteString(fmt.Sprintf("Nivel Bloom: %d → %d\n", sum.BloomInicial, sum.BloomFinal))
	}
	if sum.AverageBloomLevel > 0 {
		b.WriteString(fmt.Sprintf("Nivel Bloom promedio: %.1f\n", sum.AverageBloomLevel))
	}
	b.WriteString("\n" + lipgloss.NewStyle().Width(cw).Foreground(theme.Text).Render(sum.Feedback))
	return layout.Card(b.String(), cw)
}
