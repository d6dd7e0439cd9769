package assessment

import (
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/platanus-hack-25/lumera-cli/internal/api"
)

// Option is one choice of a multiple choice question. Value is what is
// sent back as the answer; Label is what the learner sees.
type Option struct {
	Value json.RawMessage
	Label string
}

// Prompt is a question ready to be shown, whatever its source.
type Prompt struct {
	QuestionID int64  // backend id, zero for bank questions
	Key        string // bank id, empty for backend questions
	Type       string
	Text       string
	Options    []Option // multiple_choice
	Blanks     int      // fill_blanks: number of gaps in Text
	Number     int      // 1-based position
	Total      int
	BloomLevel int
	Difficulty int
}

// Answer is the learner's response to a Prompt.
type Answer struct {
	Choice int      // index into Prompt.Options
	True   bool     // true_false
	Blanks []string // fill_blanks, in gap order
}

// Encode renders a as the user_answer object the backend validates:
// {"selected": v}, {"answer": bool} or {"blanks": {"1": "..."}}.
func (a Answer) Encode(p *Prompt) (json.RawMessage, error) {
	switch p.Type {
	case TypeMultipleChoice:
		if a.Choice < 0 || a.Choice >= len(p.Options) {
			return nil, fmt.Errorf("choice %d out of range [0,%d)", a.Choice, len(p.Options))
		}
		return json.Marshal(map[string]json.RawMessage{"selected": p.Options[a.Choice].Value})
	case TypeTrueFalse:
		return json.Marshal(map[string]bool{"answer": a.True})
	case TypeFillBlanks:
		blanks := make(map[string]string, len(a.Blanks))
		for i, b := range a.Blanks {
			blanks[strconv.Itoa(i+1)] = strings.TrimSpace(b)
		}
		return json.Marshal(map[string]map[string]string{"blanks": blanks})
	default:
		return nil, &ErrUnsupportedType{Type: p.Type}
	}
}

var (
	numberedBlank = regexp.MustCompile(`_{2,}\d+_{2,}`)
	plainBlank    = regexp.MustCompile(`_{3,}`)
)

// countBlanks counts the gaps in a fill_blanks text. Gaps are written
// "___1___" or as a bare run of underscores; there is always at least one.
func countBlanks(text string) int {
	n := len(numberedBlank.FindAllString(text, -1))
	if n == 0 {
		n = len(plainBlank.FindAllString(text, -1))
	}
	return max(n, 1)
}

// PromptFromQuestion validates a backend question and turns it into a
// Prompt.
func PromptFromQuestion(q *api.Question) (*Prompt, error) {
	if q == nil {
		return nil, errors.New("nil question")
	}
	if err := validateQuestionData(q.Tipo, q.QuestionData); err != nil {
		return nil, err
	}

	var data struct {
		Pregunta  string            `json:"pregunta"`
		Opciones  []json.RawMessage `json:"opciones"`
		Statement string            `json:"statement"`
		Text      string            `json:"text"`
	}
	if err := json.Unmarshal(q.QuestionData, &data); err != nil {
		return nil, &ErrInvalidQuestion{Type: q.Tipo, Data: q.QuestionData, Err: err}
	}

	p := &Prompt{
		QuestionID: q.ID,
		Type:       q.Tipo,
		Number:     q.QuestionNumber,
		Total:      q.TotalQuestions,
		BloomLevel: q.CurrentBloomLevel,
	}
	switch q.Tipo {
	case TypeMultipleChoice:
		p.Text = data.Pregunta
		for _, raw := range data.Opciones {
			p.Options = append(p.Options, parseOption(raw))
		}
	case TypeTrueFalse:
		p.Text = data.Statement
	case TypeFillBlanks:
		p.Text = data.Text
		p.Blanks = countBlanks(data.Text)
	}
	return p, nil
}

// parseOption accepts a bare string or an object such as
// {"id": "B", "texto": "..."}.
func parseOption(raw json.RawMessage) Option {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return Option{Value: raw, Label: s}
	}

	var obj map[string]json.RawMessage
	if err := json.Unmarshal(raw, &obj); err != nil {
		return Option{Value: raw, Label: string(raw)}
	}
	opt := Option{Value: raw, Label: string(raw)}
	for _, k := range []string{"id", "letra", "value"} {
		if v, ok := obj[k]; ok {
			opt.Value = v
			break
		}
	}
	for _, k := range []string{"texto", "text", "label", "opcion"} {
		var label string
		if err := json.Unmarshal(obj[k], &label); err == nil && label != "" {
			opt.Label = label
			break
		}
	}
	return opt
}

// PromptFromBank turns a bank question into a Prompt at position n of total.
func PromptFromBank(q BankQuestion, n, total int) *Prompt {
	p := &Prompt{
		Key:        q.ID,
		Type:       q.Type,
		Text:       q.Prompt,
		Number:     n,
		Total:      total,
		BloomLevel: q.BloomLevel,
		Difficulty: q.Difficulty,
	}
	switch q.Type {
	case TypeMultipleChoice:
		for i, o := range q.Options {
			p.Options = append(p.Options, Option{Value: json.RawMessage(strconv.Itoa(i)), Label: o})
		}
	case TypeFillBlanks:
		p.Blanks = countBlanks(q.Prompt)
	}
	return p
}
