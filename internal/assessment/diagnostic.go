package assessment

import (
	"context"
	"errors"
	"time"

	"github.com/platanus-hack-25/lumera-cli/internal/api"
)

// DiagnosticClient is the part of the API client a DiagnosticFlow calls.
type DiagnosticClient interface {
	StartDiagnostic(ctx context.Context, materiaID int64) (*api.DiagnosticSession, error)
	NextDiagnosticQuestion(ctx context.Context, sessionID int64) (*api.Question, error)
	SubmitDiagnosticAnswer(ctx context.Context, sessionID int64, req api.AnswerRequest) (*api.DiagnosticAnswer, error)
	CompleteDiagnostic(ctx context.Context, sessionID int64) (*api.DiagnosticCompletion, error)
	DiagnosticResults(ctx context.Context, sessionID int64) ([]api.DiagnosticResult, error)
}

// DiagnosticFlow runs a backend diagnostic for one subject. The backend
// walks the subject's objectives and ends the session by answering 404 to
// next-question.
type DiagnosticFlow struct {
	client    DiagnosticClient
	materiaID int64

	session *api.DiagnosticSession
	results []api.DiagnosticResult
	tally
}

// NewDiagnosticFlow creates a flow for materiaID.
func NewDiagnosticFlow(client DiagnosticClient, materiaID int64) *DiagnosticFlow {
	return &DiagnosticFlow{client: client, materiaID: materiaID}
}

// Session returns the backend session, nil before Start.
func (f *DiagnosticFlow) Session() *api.DiagnosticSession { return f.session }

// Results returns the per-objective results fetched by Complete.
func (f *DiagnosticFlow) Results() []api.DiagnosticResult { return f.results }

func (f *DiagnosticFlow) Start(ctx context.Context) error {
	s, err := f.client.StartDiagnostic(ctx, f.materiaID)
	if err != nil {
		return err
	}
	f.session = s
	return nil
}

func (f *DiagnosticFlow) Next(ctx context.Context) (*Prompt, error) {
	if f.session == nil {
		return nil, ErrNotStarted
	}
	q, err := f.client.NextDiagnosticQuestion(ctx, f.session.ID)
	if errors.Is(err, api.ErrNotFound) {
		return nil, ErrNoMoreQuestions
	}
	if err != nil {
		return nil, err
	}
	return PromptFromQuestion(q)
}

func (f *DiagnosticFlow) Answer(ctx context.Context, p *Prompt, a Answer, elapsed time.Duration) (*Verdict, error) {
	if f.session == nil {
		return nil, ErrNotStarted
	}
	raw, err := a.Encode(p)
	if err != nil {
		return nil, err
	}
	res, err := f.client.SubmitDiagnosticAnswer(ctx, f.session.ID, api.AnswerRequest{
		QuestionID:     p.QuestionID,
		UserAnswer:     raw,
		TiempoSegundos: seconds(elapsed),
	})
	if err != nil {
		return nil, err
	}
	f.record(res.IsCorrect)
	return &Verdict{
		IsCorrect:     res.IsCorrect,
		Score:         res.Score,
		NewBloomLevel: res.NewBloomLevel,
		Answered:      f.answered,
		Total:         p.Total,
	}, nil
}

func (f *DiagnosticFlow) Complete(ctx context.Context) (*Summary, error) {
	if f.session == nil {
		return nil, ErrNotStarted
	}
	done, err := f.client.CompleteDiagnostic(ctx, f.session.ID)
	if err != nil {
		return nil, err
	}
	f.session = &done.Session

	results, err := f.client.DiagnosticResults(ctx, f.session.ID)
	if err != nil {
		return nil, err
	}
	f.results = results

	sum := f.summary()
	sum.AverageBloomLevel = done.AverageBloomLevel
	sum.Message = done.Message
	return sum, nil
}
