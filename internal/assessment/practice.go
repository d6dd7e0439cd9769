package assessment

import (
	"context"
	"errors"
	"time"

	"github.com/platanus-hack-25/lumera-cli/internal/api"
)

// PracticeClient is the part of the API client a PracticeFlow calls.
type PracticeClient interface {
	StartPractice(ctx context.Context, req api.StartPracticeRequest) (*api.PracticeSession, error)
	NextPracticeQuestion(ctx context.Context, sessionID int64) (*api.Question, error)
	SubmitPracticeAnswer(ctx context.Context, sessionID int64, req api.AnswerRequest) (*api.PracticeAnswer, error)
	CompletePractice(ctx context.Context, sessionID int64) (*api.PracticeResult, error)
}

// PracticeFlow runs a backend practice session on one Bloom objective.
type PracticeFlow struct {
	client PracticeClient
	req    api.StartPracticeRequest

	session *api.PracticeSession
	result  *api.PracticeResult
	tally
}

// NewPracticeFlow creates a flow; questions <= 0 uses the backend default.
func NewPracticeFlow(client PracticeClient, oaID, bloomObjectiveID int64, questions int) *PracticeFlow {
	return &PracticeFlow{
		client: client,
		req: api.StartPracticeRequest{
			OAID:               oaID,
			OABloomObjectiveID: bloomObjectiveID,
			NumeroPreguntas:    max(questions, 0),
		},
	}
}

// Session returns the backend session, nil before Start.
func (f *PracticeFlow) Session() *api.PracticeSession { return f.session }

// Result returns the completion summary, nil before Complete.
func (f *PracticeFlow) Result() *api.PracticeResult { return f.result }

func (f *PracticeFlow) Start(ctx context.Context) error {
	s, err := f.client.StartPractice(ctx, f.req)
	if err != nil {
		return err
	}
	f.session = s
	return nil
}

func (f *PracticeFlow) Next(ctx context.Context) (*Prompt, error) {
	if f.session == nil {
		return nil, ErrNotStarted
	}
	q, err := f.client.NextPracticeQuestion(ctx, f.session.ID)
	if errors.Is(err, api.ErrNotFound) {
		return nil, ErrNoMoreQuestions
	}
	if err != nil {
		return nil, err
	}
	return PromptFromQuestion(q)
}

func (f *PracticeFlow) Answer(ctx context.Context, p *Prompt, a Answer, elapsed time.Duration) (*Verdict, error) {
	if f.session == nil {
		return nil, ErrNotStarted
	}
	raw, err := a.Encode(p)
	if err != nil {
		return nil, err
	}
	res, err := f.client.SubmitPracticeAnswer(ctx, f.session.ID, api.AnswerRequest{
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
		Answered:      res.PreguntasRespondidas,
		Total:         res.TotalPreguntas,
		Done:          res.IsComplete,
	}, nil
}

func (f *PracticeFlow) Complete(ctx context.Context) (*Summary, error) {
	if f.session == nil {
		return nil, ErrNotStarted
	}
	res, err := f.client.CompletePractice(ctx, f.session.ID)
	if err != nil {
		return nil, err
	}
	f.result = res
	f.session = &res.Session

	sum := f.summary()
	sum.BloomInicial = res.BloomLevelInicial
	sum.BloomFinal = res.BloomLevelFinal
	return sum, nil
}
