package assessment

import (
	"context"
	"strings"
	"time"

	"golang.org/x/text/unicode/norm"
)

// LocalFlow runs an offline diagnostic over a compiled question bank.
// Answers are checked on the client and the level is computed from the
// share of correct answers.
type LocalFlow struct {
	bank    []BankQuestion
	next    int
	started bool
	tally
}

// NewLocalFlow creates a flow over bank (LenguaBank when nil).
func NewLocalFlow(bank []BankQuestion) *LocalFlow {
	if bank == nil {
		bank = LenguaBank
	}
	return &LocalFlow{bank: bank}
}

func (f *LocalFlow) Start(context.Context) error {
	f.started = true
	f.next = 0
	f.tally = tally{}
	return nil
}

func (f *LocalFlow) Next(context.Context) (*Prompt, error) {
	if !f.started {
		return nil, ErrNotStarted
	}
	if f.next >= len(f.bank) {
		return nil, ErrNoMoreQuestions
	}
	q := f.bank[f.next]
	f.next++
	return PromptFromBank(q, f.next, len(f.bank)), nil
}

func (f *LocalFlow) Answer(_ context.Context, p *Prompt, a Answer, _ time.Duration) (*Verdict, error) {
	if !f.started {
		return nil, ErrNotStarted
	}
	q, ok := f.lookup(p.Key)
	if !ok {
		return nil, &ErrInvalidQuestion{Type: p.Type, Err: errUnknownKey(p.Key)}
	}
	correct := check(q, a)
	f.record(correct)

	v := &Verdict{
		IsCorrect:     correct,
		NewBloomLevel: q.BloomLevel,
		Explanation:   q.Explanation,
		Answered:      f.answered,
		Total:         len(f.bank),
	}
	if correct {
		v.Score = 100
	}
	return v, nil
}

func (f *LocalFlow) Complete(context.Context) (*Summary, error) {
	if !f.started {
		return nil, ErrNotStarted
	}
	return f.summary(), nil
}

func (f *LocalFlow) lookup(key string) (BankQuestion, bool) {
	for _, q := range f.bank {
		if q.ID == key {
			return q, true
		}
	}
	return BankQuestion{}, false
}

type errUnknownKey string

func (e errUnknownKey) Error() string { return "unknown question " + string(e) }

func check(q BankQuestion, a Answer) bool {
	switch q.Type {
	case TypeMultipleChoice:
		return a.Choice == q.CorrectIndex
	case TypeTrueFalse:
		return a.True == (q.CorrectIndex == 0)
	case TypeFillBlanks:
		return len(a.Blanks) > 0 && sameWord(a.Blanks[0], q.CorrectText)
	default:
		return false
	}
}

// sameWord compares ignoring case, surrounding space and accents, so
// "Preterito" matches "pretérito".
func sameWord(a, b string) bool {
	return fold(a) == fold(b)
}

func fold(s string) string {
	var sb strings.Builder
	for _, r := range norm.NFD.String(strings.ToLower(strings.TrimSpace(s))) {
		if r >= 0x300 && r <= 0x36f {
			continue
		}
		sb.WriteRune(r)
	}
	return sb.String()
}
