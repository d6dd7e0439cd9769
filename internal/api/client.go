// Package api wraps every backend endpoint the Lumera client uses. Each
// method returns its payload or an *Error describing why it could not.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
)

// HeaderSource supplies the headers for authenticated requests. The auth
// session implements it.
type HeaderSource interface {
	AuthHeaders() http.Header
}

// HeaderFunc adapts a function to HeaderSource.
type HeaderFunc func() http.Header

func (f HeaderFunc) AuthHeaders() http.Header { return f() }

// RequestIDHeader carries a per-request id for backend log correlation.
const RequestIDHeader = "X-Request-ID"

// Client talks to the Lumera backend.
type Client struct {
	baseURL string
	http    *http.Client
	headers HeaderSource
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// WithTimeout sets the per-request timeout. Zero means none.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		hc := *c.http
		hc.Timeout = d
		c.http = &hc
	}
}

// WithHeaders sets the source of authentication headers.
func WithHeaders(h HeaderSource) Option {
	return func(c *Client) { c.headers = h }
}

// New creates a Client for the backend at baseURL.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{},
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// BaseURL returns the backend base URL.
func (c *Client) BaseURL() string { return c.baseURL }

// call describes one round trip.
type call struct {
	method string
	path   string
	query  url.Values
	body   any

	// fallback is the message used when the error body explains nothing.
	fallback string
	// messages overrides the message for specific statuses.
	messages map[int]string
}

func (c *Client) url(path string, q url.Values) string {
	u := c.baseURL + path
	if len(q) > 0 {
		u += "?" + q.Encode()
	}
	return u
}

func (c *Client) newRequest(ctx context.Context, cl call) (*http.Request, error) {
	var body io.Reader
	if cl.body != nil {
		b, err := json.Marshal(cl.body)
		if err != nil {
			return nil, &Error{Kind: KindInvalid, Message: fmt.Sprintf("encode request: %v", err), Err: err}
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, cl.method, c.url(cl.path, cl.query), body)
	if err != nil {
		return nil, &Error{Kind: KindInvalid, Message: fmt.Sprintf("build request: %v", err), Err: err}
	}

	req.Header.Set("Content-Type", "application/json")
	if c.headers != nil {
		for k, vs := range c.headers.AuthHeaders() {
			req.Header.Del(k)
			for _, v := range vs {
				req.Header.Add(k, v)
			}
		}
	}
	req.Header.Set(RequestIDHeader, uuid.NewString())
	return req, nil
}

// roundTrip sends the request and returns the body of a 2xx response.
func (c *Client) roundTrip(ctx context.Context, cl call) ([]byte, http.Header, error) {
	req, err := c.newRequest(ctx, cl)
	if err != nil {
		return nil, nil, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, nil, &Error{Kind: KindNetwork, Message: NetworkErrorMessage, Err: err}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, nil, &Error{Kind: KindNetwork, Status: resp.StatusCode, Message: NetworkErrorMessage, Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, nil, statusError(resp.StatusCode, data, cl)
	}
	return data, resp.Header, nil
}

// do performs cl and decodes a JSON response into out (skipped when nil).
func (c *Client) do(ctx context.Context, cl call, out any) error {
	data, _, err := c.roundTrip(ctx, cl)
	if err != nil {
		return err
	}
	if out == nil || len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return &Error{Kind: KindDecode, Status: http.StatusOK, Message: fmt.Sprintf("decode %s %s: %v", cl.method, cl.path, err), Err: err}
	}
	return nil
}

func statusError(status int, body []byte, cl call) *Error {
	e := &Error{Kind: kindForStatus(status), Status: status}
	if msg, ok := cl.messages[status]; ok {
		e.Message = msg
		return e
	}
	if msg := errorMessage(body); msg != "" {
		e.Message = msg
		return e
	}
	if cl.fallback != "" {
		e.Message = cl.fallback
	} else {
		e.Message = fmt.Sprintf("%s %s: %s", cl.method, cl.path, http.StatusText(status))
	}
	return e
}

// errorMessage extracts the backend's explanation from an error body:
// the JSON "error" or "message" field, or the plain text itself.
func errorMessage(body []byte) string {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		return ""
	}
	var payload struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(trimmed, &payload); err == nil {
		if payload.Error != "" {
			return payload.Error
		}
		return payload.Message
	}
	if trimmed[0] == '{' || trimmed[0] == '<' {
		return ""
	}
	return string(trimmed)
}

// IsNotFound reports whether err is a KindNotFound *Error.
func IsNotFound(err error) bool { return errors.Is(err, ErrNotFound) }

func pathf(format string, args ...any) string {
	escaped := make([]any, len(args))
	for i, a := range args {
		escaped[i] = url.PathEscape(fmt.Sprint(a))
	}
	return fmt.Sprintf(format, escaped...)
}
