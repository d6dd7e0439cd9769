package devserver

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/platanus-hack-25/lumera-cli/internal/config"
)

func newTestServer(t *testing.T, backend string) http.Handler {
	t.Helper()
	s, err := NewServer(config.DevConfig{
		Listen:       "127.0.0.1:0",
		Backend:      backend,
		AllowedHosts: config.AllowedHosts,
	})
	require.NoError(t, err)
	return s.Router()
}

func serve(h http.Handler, method, target, host string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, nil)
	req.Host = host
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestHostAllowList(t *testing.T) {
	h := newTestServer(t, "http://127.0.0.1:1")

	tests := []struct {
		host string
		want int
	}{
		{"localhost:5173", http.StatusOK},
		{"localhost", http.StatusOK},
		{"app.lumera.cl", http.StatusOK},
		{"WWW.LUMERA.LAT:443", http.StatusOK},
		{"lumera.lat", http.StatusOK},
		{"evil.example.com", http.StatusForbidden},
		{"lumera.cl.evil.com:5173", http.StatusForbidden},
		{"127.0.0.1:5173", http.StatusOK},
		{"[::1]:5173", http.StatusOK},
		{"192.168.1.20:5173", http.StatusOK},
		{"app.localhost:5173", http.StatusOK},
		{"localhost.evil.com", http.StatusForbidden},
	}
	for _, tt := range tests {
		t.Run(tt.host, func(t *testing.T) {
			rec := serve(h, http.MethodGet, "/healthz", tt.host)
			assert.Equal(t, tt.want, rec.Code)
		})
	}
}

func TestProxiesAPI(t *testing.T) {
	var gotPath, gotAuth, gotQuery string
	r := chi.NewRouter()
	r.Get("/api/materias", func(w http.ResponseWriter, req *http.Request) {
		gotPath = req.URL.Path
		gotQuery = req.URL.RawQuery
		gotAuth = req.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `[{"id":1,"codigo":"MAT"}]`)
	})
	backend := httptest.NewServer(r)
	defer backend.Close()

	h := newTestServer(t, backend.URL)
	req := httptest.NewRequest(http.MethodGet, "/api/materias?activo=true", nil)
	req.Host = "localhost:5173"
	req.Header.Set("Authorization", "Bearer tok")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[{"id":1,"codigo":"MAT"}]`, rec.Body.String())
	assert.Equal(t, "/api/materias", gotPath)
	assert.Equal(t, "activo=true", gotQuery)
	assert.Equal(t, "Bearer tok", gotAuth)
}

func TestProxyBackendDown(t *testing.T) {
	backend := httptest.NewServer(http.NotFoundHandler())
	url := backend.URL
	backend.Close()

	rec := serve(newTestServer(t, url), http.MethodGet, "/api/cursos", "localhost")
	assert.Equal(t, http.StatusBadGateway, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Contains(t, body["error"], "backend unavailable")
}

func TestNotFound(t *testing.T) {
	rec := serve(newTestServer(t, "http://127.0.0.1:1"), http.MethodGet, "/nope", "localhost")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestNewServerRejectsBadBackend(t *testing.T) {
	_, err := NewServer(config.DevConfig{Backend: "not a url"})
	assert.Error(t, err)
}

func TestHostname(t *testing.T) {
	assert.Equal(t, "localhost", hostname("localhost:5173"))
	assert.Equal(t, "localhost", hostname("LOCALHOST"))
	assert.Equal(t, "::1", hostname("[::1]:80"))
}
