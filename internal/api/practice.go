package api

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
)

// StartPractice opens a practice session. A zero NumeroPreguntas means
// DefaultPracticeQuestions.
func (c *Client) StartPractice(ctx context.Context, req StartPracticeRequest) (*PracticeSession, error) {
	if req.NumeroPreguntas == 0 {
		req.NumeroPreguntas = DefaultPracticeQuestions
	}
	if err := Validate(req); err != nil {
		return nil, err
	}
	var out PracticeSession
	err := c.do(ctx, call{
		method:   http.MethodPost,
		path:     "/api/practice-sessions",
		body:     req,
		fallback: "Failed to start practice session",
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// PracticeSessions lists the user's practice sessions.
func (c *Client) PracticeSessions(ctx context.Context, f PracticeFilter) ([]PracticeSession, error) {
	q := url.Values{}
	if f.OAID != 0 {
		q.Set("oa_id", strconv.FormatInt(f.OAID, 10))
	}
	if f.Estado != "" {
		q.Set("estado", f.Estado)
	}
	var out []PracticeSession
	err := c.do(ctx, call{
		method:   http.MethodGet,
		path:     "/api/practice-sessions",
		query:    q,
		fallback: "Failed to get practice sessions",
	}, &out)
	return out, err
}

// NextPracticeQuestion asks for the next question. KindNotFound means
// the session has no more questions.
func (c *Client) NextPracticeQuestion(ctx context.Context, sessionID int64) (*Question, error) {
	var out Question
	err := c.do(ctx, call{
		method:   http.MethodGet,
		path:     pathf("/api/practice-sessions/%s/next-question", sessionID),
		fallback: "Failed to get next question",
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// SubmitPracticeAnswer submits one answer. The response says whether the
// session is now complete.
func (c *Client) SubmitPracticeAnswer(ctx context.Context, sessionID int64, req AnswerRequest) (*PracticeAnswer, error) {
	if err := Validate(req); err != nil {
		return nil, err
	}
	var out PracticeAnswer
	err := c.do(ctx, call{
		method:   http.MethodPost,
		path:     pathf("/api/practice-sessions/%s/answer", sessionID),
		body:     req,
		fallback: "Failed to submit answer",
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// CompletePractice closes the session and returns its summary.
func (c *Client) CompletePractice(ctx context.Context, sessionID int64) (*PracticeResult, error) {
	var out PracticeResult
	err := c.do(ctx, call{
		method:   http.MethodPost,
		path:     pathf("/api/practice-sessions/%s/complete", sessionID),
		fallback: "Failed to complete practice session",
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}
