package assessment

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// Answerer obtains the learner's answer to a prompt.
type Answerer interface {
	Answer(ctx context.Context, p *Prompt) (Answer, error)
}

// AnswerFunc adapts a function to Answerer.
type AnswerFunc func(ctx context.Context, p *Prompt) (Answer, error)

func (f AnswerFunc) Answer(ctx context.Context, p *Prompt) (Answer, error) { return f(ctx, p) }

// Runner drives a Flow to completion.
type Runner struct {
	// OnVerdict, when set, is called after every judged answer.
	OnVerdict func(p *Prompt, v *Verdict)

	now func() time.Time
}

// Run starts flow, alternates Next and Answer until the backend says the
// session is complete or stops handing out questions, then calls Complete
// exactly once. Any other error aborts the run without completing.
func (r *Runner) Run(ctx context.Context, flow Flow, ans Answerer) (*Summary, error) {
	now := r.now
	if now == nil {
		now = time.Now
	}

	if err := flow.Start(ctx); err != nil {
		return nil, fmt.Errorf("start session: %w", err)
	}

	for {
		p, err := flow.Next(ctx)
		if errors.Is(err, ErrNoMoreQuestions) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("next question: %w", err)
		}

		shown := now()
		a, err := ans.Answer(ctx, p)
		if err != nil {
			return nil, fmt.Errorf("read answer: %w", err)
		}

		v, err := flow.Answer(ctx, p, a, now().Sub(shown))
		if err != nil {
			return nil, fmt.Errorf("submit answer: %w", err)
		}
		if r.OnVerdict != nil {
			r.OnVerdict(p, v)
		}
		if v.Done {
			break
		}
	}

	sum, err := flow.Complete(ctx)
	if err != nil {
		return nil, fmt.Errorf("complete session: %w", err)
	}
	return sum, nil
}
