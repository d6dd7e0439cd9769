// Package quiz is the screen that runs a diagnostic or practice session.
package quiz

import (
	"context"
	"errors"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/platanus-hack-25/lumera-cli/internal/assessment"
	"github.com/platanus-hack-25/lumera-cli/internal/router"
	"github.com/platanus-hack-25/lumera-cli/internal/screen"
	"github.com/platanus-hack-25/lumera-cli/internal/ui/components"
	"github.com/platanus-hack-25/lumera-cli/internal/ui/layout"
)

type phase int

const (
	phaseLoading phase = iota
	phaseQuestion
	phaseFeedback
	phaseSummary
	phaseFailed
)

// Speaker reads text aloud.
type Speaker interface {
	Play(ctx context.Context, text string) error
}

// Screen walks a Flow: one question at a time, the verdict after each
// answer and the summary at the end. Only one flow call is in flight at
// any time.
type Screen struct {
	title   string
	flow    assessment.Flow
	speaker Speaker

	// OnComplete, when set, is called once with the session summary.
	OnComplete func(*assessment.Summary)

	phase   phase
	prompt  *assessment.Prompt
	shownAt time.Time
	choice  components.MultiChoice
	input   components.TextInput
	verdict *assessment.Verdict
	summary *assessment.Summary
	err     error
	notice  string

	now func() time.Time
}

var _ screen.Screen = (*Screen)(nil)
var _ screen.KeyHintProvider = (*Screen)(nil)

// New creates a quiz over flow. speaker may be nil.
func New(title string, flow assessment.Flow, speaker Speaker) *Screen {
	return &Screen{title: title, flow: flow, speaker: speaker, now: time.Now}
}

func (s *Screen) Title() string { return s.title }

func (s *Screen) Init() tea.Cmd {
	flow := s.flow
	return func() tea.Msg {
		return startedMsg{Err: flow.Start(context.Background())}
	}
}

func (s *Screen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case startedMsg:
		if msg.Err != nil {
			return s.fail(msg.Err)
		}
		return s, s.next()

	case promptMsg:
		if errors.Is(msg.Err, assessment.ErrNoMoreQuestions) {
			return s, s.complete()
		}
		if msg.Err != nil {
			return s.fail(msg.Err)
		}
		return s, s.show(msg.Prompt)

	case verdictMsg:
		if msg.Err != nil {
			return s.fail(msg.Err)
		}
		s.verdict = msg.Verdict
		s.choice.Judge(msg.Verdict.IsCorrect)
		s.phase = phaseFeedback
		return s, nil

	case summaryMsg:
		if msg.Err != nil {
			return s.fail(msg.Err)
		}
		s.summary = msg.Summary
		s.phase = phaseSummary
		if s.OnComplete != nil {
			s.OnComplete(msg.Summary)
		}
		return s, nil

	case spokenMsg:
		s.notice = ""
		if msg.Err != nil {
			s.notice = "No se pudo reproducir el audio: " + msg.Err.Error()
		}
		return s, nil

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	if s.phase == phaseQuestion && s.prompt.Type == assessment.TypeFillBlanks {
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd
	}
	return s, nil
}

func (s *Screen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()
	switch s.phase {
	case phaseQuestion:
		if key == "ctrl+t" {
			return s, s.speak()
		}
		if s.prompt.Type == assessment.TypeFillBlanks {
			if key == "enter" {
				if s.input.Value() == "" {
					return s, nil
				}
				return s, s.answer(assessment.Answer{Blanks: s.input.Fields()})
			}
			var cmd tea.Cmd
			s.input, cmd = s.input.Update(msg)
			return s, cmd
		}
		s.choice, _ = s.choice.Update(msg)
		if !s.choice.Submitted {
			return s, nil
		}
		a := assessment.Answer{Choice: s.choice.Selected}
		if s.prompt.Type == assessment.TypeTrueFalse {
			a = assessment.Answer{True: s.choice.Selected == 0}
		}
		return s, s.answer(a)

	case phaseFeedback:
		if key != "enter" && key != "space" {
			return s, nil
		}
		s.phase = phaseLoading
		if s.verdict.Done {
			return s, s.complete()
		}
		return s, s.next()

	case phaseSummary, phaseFailed:
		if key == "enter" {
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return s, nil
}

func (s *Screen) fail(err error) (screen.Screen, tea.Cmd) {
	s.err = err
	s.phase = phaseFailed
	return s, nil
}

func (s *Screen) show(p *assessment.Prompt) tea.Cmd {
	s.prompt = p
	s.verdict = nil
	s.notice = ""
	s.shownAt = s.now()
	s.phase = phaseQuestion

	switch p.Type {
	case assessment.TypeMultipleChoice:
		labels := make([]string, len(p.Options))
		for i, o := range p.Options {
			labels[i] = o.Label
		}
		s.choice = components.NewMultiChoice(labels)
	case assessment.TypeTrueFalse:
		s.choice = components.NewMultiChoice([]string{"Verdadero", "Falso"})
	case assessment.TypeFillBlanks:
		s.choice = components.MultiChoice{}
		s.input = components.NewTextInput("Escribe tu respuesta", 200)
	}
	return nil
}

func (s *Screen) next() tea.Cmd {
	s.phase = phaseLoading
	flow := s.flow
	return func() tea.Msg {
		p, err := flow.Next(context.Background())
		return promptMsg{Prompt: p, Err: err}
	}
}

func (s *Screen) answer(a assessment.Answer) tea.Cmd {
	s.phase = phaseLoading
	flow, p, elapsed := s.flow, s.prompt, s.now().Sub(s.shownAt)
	return func() tea.Msg {
		v, err := flow.Answer(context.Background(), p, a, elapsed)
		return verdictMsg{Verdict: v, Err: err}
	}
}

func (s *Screen) complete() tea.Cmd {
	s.phase = phaseLoading
	flow := s.flow
	return func() tea.Msg {
		sum, err := flow.Complete(context.Background())
		return summaryMsg{Summary: sum, Err: err}
	}
}

func (s *Screen) speak() tea.Cmd {
	if s.speaker == nil {
		return nil
	}
	s.notice = "Reproduciendo…"
	speaker, text := s.speaker, s.prompt.Text
	return func() tea.Msg {
		return spokenMsg{Err: speaker.Play(context.Background(), text)}
	}
}

func (s *Screen) KeyHints() []layout.KeyHint {
	switch s.phase {
	case phaseQuestion:
		hints := []layout.KeyHint{{Key: "Enter", Description: "Responder"}}
		if s.prompt.Type != assessment.TypeFillBlanks {
			hints = append([]layout.KeyHint{{Key: "↑↓/A-D", Description: "Elegir"}}, hints...)
		}
		if s.speaker != nil {
			hints = append(hints, layout.KeyHint{Key: "Ctrl+T", Description: "Escuchar"})
		}
		return append(hints, layout.KeyHint{Key: "Esc", Description: "Salir"})
	case phaseFeedback:
		return []layout.KeyHint{{Key: "Enter", Description: "Continuar"}}
	case phaseSummary, phaseFailed:
		return []layout.KeyHint{{Key: "Enter", Description: "Volver"}}
	}
	return nil
}
