package api

import (
	"context"
	"net/http"
)

// StartDiagnostic opens a diagnostic session for a subject.
func (c *Client) StartDiagnostic(ctx context.Context, materiaID int64) (*DiagnosticSession, error) {
	var out DiagnosticSession
	err := c.do(ctx, call{
		method:   http.MethodPost,
		path:     "/api/diagnostic-sessions",
		body:     map[string]int64{"materia_id": materiaID},
		fallback: "Failed to start diagnostic session",
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// DiagnosticSession fetches a session with its progress counters.
func (c *Client) DiagnosticSession(ctx context.Context, sessionID int64) (*DiagnosticSession, error) {
	var out DiagnosticSession
	err := c.do(ctx, call{
		method:   http.MethodGet,
		path:     pathf("/api/diagnostic-sessions/%s", sessionID),
		fallback: "Failed to get diagnostic session",
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// NextDiagnosticQuestion asks the backend for the next question. A 404
// (KindNotFound) means there are no more objectives to evaluate.
func (c *Client) NextDiagnosticQuestion(ctx context.Context, sessionID int64) (*Question, error) {
	var out Question
	err := c.do(ctx, call{
		method:   http.MethodGet,
		path:     pathf("/api/diagnostic-sessions/%s/next-question", sessionID),
		fallback: "Failed to get next question",
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// SubmitDiagnosticAnswer submits one answer.
func (c *Client) SubmitDiagnosticAnswer(ctx context.Context, sessionID int64, req AnswerRequest) (*DiagnosticAnswer, error) {
	if err := Validate(req); err != nil {
		return nil, err
	}
	var out DiagnosticAnswer
	err := c.do(ctx, call{
		method:   http.MethodPost,
		path:     pathf("/api/diagnostic-sessions/%s/answer", sessionID),
		body:     req,
		fallback: "Failed to submit answer",
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// CompleteDiagnostic closes the session.
func (c *Client) CompleteDiagnostic(ctx context.Context, sessionID int64) (*DiagnosticCompletion, error) {
	var out DiagnosticCompletion
	err := c.do(ctx, call{
		method:   http.MethodPost,
		path:     pathf("/api/diagnostic-sessions/%s/complete", sessionID),
		fallback: "Failed to complete diagnostic session",
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// DiagnosticResults lists the per-objective results of a session.
func (c *Client) DiagnosticResults(ctx context.Context, sessionID int64) ([]DiagnosticResult, error) {
	var out []DiagnosticResult
	err := c.do(ctx, call{
		method:   http.MethodGet,
		path:     pathf("/api/diagnostic-sessions/%s/results", sessionID),
		fallback: "Failed to get results",
	}, &out)
	return out, err
}
