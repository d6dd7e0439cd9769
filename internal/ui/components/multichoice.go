package components

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/platanus-hack-25/lumera-cli/internal/ui/theme"
)

// MultiChoice lets the learner pick one option. Correctness is decided
// elsewhere and reported back through Judge.
type MultiChoice struct {
	Options   []string
	Selected  int
	Submitted bool

	judged  bool
	correct bool
}

// NewMultiChoice returns an unanswered question over options.
func NewMultiChoice(options []string) MultiChoice {
	return MultiChoice{Options: options}
}

// Update moves the cursor; enter or a letter key submits.
func (m MultiChoice) Update(msg tea.Msg) (MultiChoice, tea.Cmd) {
	if m.Submitted {
		return m, nil
	}
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	key := kmsg.String()
	switch key {
	case "up", "k":
		if m.Selected > 0 {
			m.Selected--
		}
	case "down", "j":
		if m.Selected < len(m.Options)-1 {
			m.Selected++
		}
	case "enter":
		m.Submitted = len(m.Options) > 0
	default:
		if len(key) == 1 {
			if i := int(strings.ToLower(key)[0] - 'a'); i >= 0 && i < len(m.Options) {
				m.Selected = i
				m.Submitted = true
			}
		}
	}
	return m, nil
}

// Judge records whether the submitted option was right.
func (m *MultiChoice) Judge(correct bool) {
	m.judged = true
	m.correct = correct
}

// View renders the options, marking the verdict once judged.
func (m MultiChoice) View() string {
	var b strings.Builder
	for i, opt := range m.Options {
		prefix := "  "
		if i == m.Selected && !m.Submitted {
			prefix = "▸ "
		}
		line := fmt.Sprintf("%s%c)  %s", prefix, 'A'+i, opt)

		var style lipgloss.Style
		switch {
		case m.judged && i == m.Selected && m.correct:
			style = theme.Correct
		case m.judged && i == m.Selected:
			style = theme.Incorrect
		case m.Submitted && i == m.Selected:
			style = theme.Selected
		case m.Submitted:
			style = lipgloss.NewStyle().Foreground(theme.TextDim)
		case i == m.Selected:
			style = theme.Selected
		default:
			style = theme.Body
		}
		b.WriteString(style.Render(line) + "\n")
	}
	return b.String()
}
