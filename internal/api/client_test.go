package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// newBackend starts a fake backend routed by chi and returns a client
// pointed at it.
func newBackend(t *testing.T, opts []Option, routes func(r chi.Router)) *Client {
	t.Helper()
	r := chi.NewRouter()
	routes(r)
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return New(srv.URL, opts...)
}

func bearer(token string) HeaderSource {
	return HeaderFunc(func() http.Header {
		h := http.Header{}
		h.Set("Content-Type", "application/json")
		if token != "" {
			h.Set("Authorization", "Bearer "+token)
		}
		return h
	})
}

func TestHeadersAndRequestID(t *testing.T) {
	var got http.Header
	c := newBackend(t, []Option{WithHeaders(bearer("tok"))}, func(r chi.Router) {
		r.Get("/api/cursos", func(w http.ResponseWriter, r *http.Request) {
			got = r.Header.Clone()
			writeJSON(w, 200, []Curso{})
		})
	})

	_, err := c.Cursos(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "Bearer tok", got.Get("Authorization"))
	assert.Equal(t, "application/json", got.Get("Content-Type"))
	_, perr := uuid.Parse(got.Get(RequestIDHeader))
	assert.NoError(t, perr, "request id is a uuid")
}

func TestNoAuthorizationWithoutToken(t *testing.T) {
	var got http.Header
	c := newBackend(t, []Option{WithHeaders(bearer(""))}, func(r chi.Router) {
		r.Get("/api/materias", func(w http.ResponseWriter, r *http.Request) {
			got = r.Header.Clone()
			assert.Equal(t, "true", r.URL.Query().Get("activo"))
			writeJSON(w, 200, []Materia{{ID: 1, Codigo: "MAT"}})
		})
	})

	ms, err := c.Materias(context.Background())
	require.NoError(t, err)
	require.Len(t, ms, 1)
	_, present := got["Authorization"]
	assert.False(t, present)
}

func TestErrorKinds(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		body     string
		wantKind Kind
		wantMsg  string
	}{
		{"json error field", 400, `{"error":"materia_id is required"}`, KindDomain, "materia_id is required"},
		{"json message field", 500, `{"message":"boom"}`, KindDomain, "boom"},
		{"plain text", 500, "database unavailable\n", KindDomain, "database unavailable"},
		{"empty body", 500, "", KindDomain, "Failed to fetch courses"},
		{"not found", 404, `{"error":"not here"}`, KindNotFound, "not here"},
		{"conflict", 409, "", KindConflict, "Failed to fetch courses"},
		{"unauthorized", 401, "Unauthorized", KindUnauthorized, "Unauthorized"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newBackend(t, nil, func(r chi.Router) {
				r.Get("/api/cursos", func(w http.ResponseWriter, r *http.Request) {
					w.WriteHeader(tt.status)
					_, _ = w.Write([]byte(tt.body))
				})
			})

			_, err := c.Cursos(context.Background())
			var apiErr *Error
			require.ErrorAs(t, err, &apiErr)
			assert.Equal(t, tt.wantKind, apiErr.Kind)
			assert.Equal(t, tt.status, apiErr.Status)
			assert.Equal(t, tt.wantMsg, apiErr.Message)
		})
	}
}

func TestNetworkError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	c := New(url)
	_, err := c.Cursos(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNetwork))
	assert.Equal(t, NetworkErrorMessage, err.Error())
}

func TestCanceledContextIsNetworkError(t *testing.T) {
	c := newBackend(t, nil, func(r chi.Router) {
		r.Get("/api/cursos", func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, 200, []Curso{})
		})
	})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := c.Cursos(ctx)
	assert.ErrorIs(t, err, ErrNetwork)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestDecodeError(t *testing.T) {
	c := newBackend(t, nil, func(r chi.Router) {
		r.Get("/api/cursos", func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte("<html>"))
		})
	})

	_, err := c.Cursos(context.Background())
	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, KindDecode, apiErr.Kind)
}

func TestErrorIsComparesKindOnly(t *testing.T) {
	err := &Error{Kind: KindNotFound, Status: 404, Message: "Profile not found"}
	assert.True(t, errors.Is(err, ErrNotFound))
	assert.False(t, errors.Is(err, ErrConflict))
	assert.True(t, IsNotFound(err))
	assert.False(t, IsNotFound(errors.New("x")))
}

func TestErrorMessage(t *testing.T) {
	assert.Equal(t, "", errorMessage(nil))
	assert.Equal(t, "x", errorMessage([]byte(`{"error":"x","message":"y"}`)))
	assert.Equal(t, "", errorMessage([]byte(`{"detail":"x"}`)))
	assert.Equal(t, "", errorMessage([]byte(`<html>oops</html>`)))
	assert.Equal(t, "bad", errorMessage([]byte("  bad \n")))
}

func TestValidateTranslatesFieldNames(t *testing.T) {
	err := Validate(LoginRequest{Email: "not-an-email"})
	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, KindInvalid, apiErr.Kind)
	assert.Contains(t, apiErr.Message, "email must be a valid email address")
	assert.Contains(t, apiErr.Message, "password is a required field")

	err = Validate(RegisterRequest{Email: "a@b.cl", Name: "   ", Password: "x"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "name cannot be blank")

	assert.NoError(t, Validate(LoginRequest{Email: "a@b.cl", Password: "x"}))
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "not found", KindNotFound.String())
	assert.Equal(t, "kind(99)", Kind(99).String())
}
