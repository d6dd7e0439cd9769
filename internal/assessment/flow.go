// Package assessment drives diagnostic and practice question sessions.
// The backend decides what to ask and when a session ends; this package
// relays questions and answers in order and reports the outcome.
package assessment

import (
	"context"
	"errors"
	"time"
)

// ErrNoMoreQuestions is returned by Flow.Next once question delivery has
// stopped.
var ErrNoMoreQuestions = errors.New("no more questions")

// ErrNotStarted is returned when a Flow is used before Start.
var ErrNotStarted = errors.New("session not started")

// Verdict is the judgement on one answer.
type Verdict struct {
	IsCorrect     bool
	Score         float64
	NewBloomLevel int
	Explanation   string // bank questions only
	Answered      int
	Total         int

	// Done is set when the backend reports the session complete.
	Done bool
}

// Summary is the outcome of a completed session.
type Summary struct {
	Answered int
	Correct  int
	Level    LevelResult
	Feedback string

	// AverageBloomLevel is reported by diagnostic sessions.
	AverageBloomLevel float64
	// BloomInicial and BloomFinal are reported by practice sessions.
	BloomInicial int
	BloomFinal   int

	Message string
}

// Flow is one question session. Calls are strictly sequential: Start,
// then Next and Answer alternately, then Complete once.
type Flow interface {
	Start(ctx context.Context) error
	Next(ctx context.Context) (*Prompt, error)
	Answer(ctx context.Context, p *Prompt, a Answer, elapsed time.Duration) (*Verdict, error)
	Complete(ctx context.Context) (*Summary, error)
}

// tally keeps the client-side counts shared by every flow.
type tally struct {
	answered int
	correct  int
}

func (t *tally) record(correct bool) {
	t.answered++
	if correct {
		t.correct++
	}
}

func (t *tally) summary() *Summary {
	lr := CalculateLevel(t.correct, t.answered)
	return &Summary{
		Answered: t.answered,
		Correct:  t.correct,
		Level:    lr,
		Feedback: FeedbackMessage(lr.Level),
	}
}

func seconds(d time.Duration) *int {
	if d <= 0 {
		return nil
	}
	s := int(d.Round(time.Second) / time.Second)
	return &s
}
