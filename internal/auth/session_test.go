package auth

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/platanus-hack-25/lumera-cli/internal/api"
	"github.com/platanus-hack-25/lumera-cli/internal/store"
)

type memStorage struct {
	items   map[string]string
	failSet error
}

func newMem(kv ...string) *memStorage {
	m := &memStorage{items: map[string]string{}}
	for i := 0; i+1 < len(kv); i += 2 {
		m.items[kv[i]] = kv[i+1]
	}
	return m
}

func (m *memStorage) GetItem(k string) (string, bool, error) {
	v, ok := m.items[k]
	return v, ok, nil
}

func (m *memStorage) SetItems(items map[string]string) error {
	if m.failSet != nil {
		return m.failSet
	}
	for k, v := range items {
		m.items[k] = v
	}
	return nil
}

func (m *memStorage) RemoveItems(keys ...string) error {
	for _, k := range keys {
		delete(m.items, k)
	}
	return nil
}

type fakeBackend struct {
	loginErr error
	profile  *api.StudentProfile
	profErr  error
	stats    *api.GamificationStats
}

func (f *fakeBackend) Login(_ context.Context, req api.LoginRequest) (*api.AuthResponse, error) {
	if f.loginErr != nil {
		return nil, f.loginErr
	}
	return &api.AuthResponse{Token: "tok-" + req.Email, User: api.User{ID: 1, Email: req.Email, Name: "Ana"}}, nil
}

func (f *fakeBackend) Register(_ context.Context, req api.RegisterRequest) (*api.AuthResponse, error) {
	return &api.AuthResponse{Token: "new", User: api.User{ID: 2, Email: req.Email, Name: req.Name}}, nil
}

func (f *fakeBackend) Profile(context.Context, int64) (*api.StudentProfile, error) {
	return f.profile, f.profErr
}

func (f *fakeBackend) GamificationStats(context.Context) (*api.GamificationStats, error) {
	return f.stats, nil
}

const userJSON = `{"id":5,"email":"ana@lumera.cl","name":"Ana","role":"user","created_at":"2025-11-01T10:00:00Z","updated_at":"2025-11-01T10:00:00Z"}`

func TestInitRestore(t *testing.T) {
	tests := []struct {
		name     string
		storage  *memStorage
		wantAuth bool
	}{
		{"both keys", newMem(TokenKey, "T", UserKey, userJSON), true},
		{"token only", newMem(TokenKey, "T"), false},
		{"user only", newMem(UserKey, userJSON), false},
		{"undecodable user", newMem(TokenKey, "T", UserKey, "{not json"), false},
		{"null user", newMem(TokenKey, "T", UserKey, "null"), false},
		{"empty", newMem(), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := Init(tt.storage)
			require.NoError(t, err)
			assert.Equal(t, tt.wantAuth, s.IsAuthenticated())
			if tt.wantAuth {
				assert.Equal(t, "T", s.Token())
				assert.Equal(t, "Ana", s.User().Name)
			} else {
				assert.Empty(t, s.Token(), "nothing partially restored")
				assert.Nil(t, s.User())
			}
		})
	}
}

func TestAuthHeaders(t *testing.T) {
	s, err := Init(newMem(TokenKey, "T", UserKey, userJSON))
	require.NoError(t, err)

	h := s.AuthHeaders()
	assert.Equal(t, "application/json", h.Get("Content-Type"))
	assert.Equal(t, "Bearer T", h.Get("Authorization"))

	_, err = s.Logout()
	require.NoError(t, err)
	h = s.AuthHeaders()
	assert.Equal(t, "application/json", h.Get("Content-Type"))
	_, present := h["Authorization"]
	assert.False(t, present)
}

func TestLoginPersistsBothKeys(t *testing.T) {
	mem := newMem()
	s, err := Init(mem)
	require.NoError(t, err)
	s.UseBackend(&fakeBackend{})

	u, err := s.Login(context.Background(), "ana@lumera.cl", "pw")
	require.NoError(t, err)
	assert.Equal(t, "Ana", u.Name)
	assert.True(t, s.IsAuthenticated())
	assert.Equal(t, "tok-ana@lumera.cl", mem.items[TokenKey])

	var stored api.User
	require.NoError(t, json.Unmarshal([]byte(mem.items[UserKey]), &stored))
	assert.Equal(t, "ana@lumera.cl", stored.Email)
}

func TestLoginFailureLeavesStateUntouched(t *testing.T) {
	mem := newMem(TokenKey, "T", UserKey, userJSON)
	s, err := Init(mem)
	require.NoError(t, err)
	s.UseBackend(&fakeBackend{loginErr: &api.Error{Kind: api.KindUnauthorized, Message: "Invalid credentials"}})

	_, err = s.Login(context.Background(), "x@y.cl", "bad")
	assert.EqualError(t, err, "Invalid credentials")
	assert.Equal(t, "T", s.Token())
	assert.Equal(t, "T", mem.items[TokenKey])
}

func TestSetAuthStorageFailureKeepsMemory(t *testing.T) {
	mem := newMem()
	s, err := Init(mem)
	require.NoError(t, err)
	mem.failSet = errors.New("disk full")

	err = s.SetAuth("T", &api.User{ID: 1})
	require.Error(t, err)
	assert.False(t, s.IsAuthenticated())
}

func TestSetAuthRequiresBoth(t *testing.T) {
	s, err := Init(newMem())
	require.NoError(t, err)
	assert.Error(t, s.SetAuth("", &api.User{}))
	assert.Error(t, s.SetAuth("T", nil))
}

func TestLogoutIdempotent(t *testing.T) {
	mem := newMem(TokenKey, "T", UserKey, userJSON)
	s, err := Init(mem)
	require.NoError(t, err)

	for i := 0; i < 2; i++ {
		dest, err := s.Logout()
		require.NoError(t, err)
		assert.Equal(t, LoginPath, dest)
	}
	assert.Empty(t, mem.items)
	assert.False(t, s.IsAuthenticated())
}

func TestSubscribe(t *testing.T) {
	s, err := Init(newMem())
	require.NoError(t, err)

	var got []Snapshot
	unsub := s.Subscribe(func(snap Snapshot) { got = append(got, snap) })

	require.NoError(t, s.SetAuth("T", &api.User{ID: 1, Name: "Ana"}))
	_, _ = s.Logout()
	unsub()
	require.NoError(t, s.SetAuth("U", &api.User{ID: 2}))

	require.Len(t, got, 2)
	assert.True(t, got[0].IsAuthenticated)
	assert.Equal(t, "Ana", got[0].User.Name)
	assert.False(t, got[1].IsAuthenticated)
	assert.Nil(t, got[1].User)
}

func TestHasProfile(t *testing.T) {
	s, err := Init(newMem(TokenKey, "T", UserKey, userJSON))
	require.NoError(t, err)

	fb := &fakeBackend{profErr: &api.Error{Kind: api.KindNotFound, Message: "Profile not found"}}
	s.UseBackend(fb)
	has, err := s.HasProfile(context.Background())
	require.NoError(t, err)
	assert.False(t, has)

	fb.profErr = &api.Error{Kind: api.KindNetwork, Message: api.NetworkErrorMessage}
	_, err = s.HasProfile(context.Background())
	assert.ErrorIs(t, err, api.ErrNetwork)

	fb.profErr = nil
	fb.profile = &api.StudentProfile{ID: 1}
	has, err = s.HasProfile(context.Background())
	require.NoError(t, err)
	assert.True(t, has)
}

func TestHasProfileSignedOut(t *testing.T) {
	s, err := Init(newMem())
	require.NoError(t, err)
	s.UseBackend(&fakeBackend{})

	_, err = s.HasProfile(context.Background())
	assert.ErrorIs(t, err, ErrNotAuthenticated)
}

func TestSyncProfileCopiesCurso(t *testing.T) {
	mem := newMem(TokenKey, "T", UserKey, userJSON)
	s, err := Init(mem)
	require.NoError(t, err)
	s.UseBackend(&fakeBackend{profile: &api.StudentProfile{UserID: 5, CursoActual: "2M"}})

	_, err = s.SyncProfile(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "2M", s.User().CursoActual)
	assert.Contains(t, mem.items[UserKey], `"curso_actual":"2M"`)
	assert.Equal(t, "T", mem.items[TokenKey])
}

func TestLoadGamificationStats(t *testing.T) {
	s, err := Init(newMem(TokenKey, "T", UserKey, userJSON))
	require.NoError(t, err)
	s.UseBackend(&fakeBackend{stats: &api.GamificationStats{Level: 3, XP: 420, Coins: 100}})

	st, err := s.LoadGamificationStats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, st.Level)
	assert.Equal(t, 420, s.Snapshot().Stats.XP)

	_, _ = s.Logout()
	assert.Nil(t, s.Snapshot().Stats, "stats do not outlive the session")
}

func TestTokenExpiry(t *testing.T) {
	exp := time.Now().Add(24 * time.Hour).Truncate(time.Second)
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": 5,
		"exp":     exp.Unix(),
	}).SignedString([]byte("unknown-to-client"))
	require.NoError(t, err)

	s, err := Init(newMem(TokenKey, tok, UserKey, userJSON))
	require.NoError(t, err)

	got, ok := s.TokenExpiry()
	require.True(t, ok)
	assert.True(t, exp.Equal(got))

	s2, err := Init(newMem(TokenKey, "opaque", UserKey, userJSON))
	require.NoError(t, err)
	_, ok = s2.TokenExpiry()
	assert.False(t, ok)
}

// TestLoginHeaderLogoutScenario drives the real client and storage: after
// login every request carries the token, after logout the durable keys
// are gone and requests go out without Authorization.
func TestLoginHeaderLogoutScenario(t *testing.T) {
	var lastAuth []string
	r := chi.NewRouter()
	r.Post("/api/auth/login", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"token":"T","user":` + userJSON + `}`))
	})
	r.Get("/api/cursos", func(w http.ResponseWriter, r *http.Request) {
		lastAuth = r.Header.Values("Authorization")
		_, _ = w.Write([]byte(`[]`))
	})
	srv := httptest.NewServer(r)
	defer srv.Close()

	st, err := store.Open(filepath.Join(t.TempDir(), "lumera.db"))
	require.NoError(t, err)
	defer st.Close()

	s, err := Init(st)
	require.NoError(t, err)
	client := api.New(srv.URL, api.WithHeaders(s))
	s.UseBackend(client)
	ctx := context.Background()

	_, err = s.Login(ctx, "ana@lumera.cl", "pw")
	require.NoError(t, err)

	_, err = client.Cursos(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Bearer T"}, lastAuth)

	restored, err := Init(st)
	require.NoError(t, err)
	assert.True(t, restored.IsAuthenticated(), "restart restores the session")

	_, err = s.Logout()
	require.NoError(t, err)
	for _, k := range []string{TokenKey, UserKey} {
		_, ok, err := st.GetItem(k)
		require.NoError(t, err)
		assert.False(t, ok, k)
	}

	_, err = client.Cursos(ctx)
	require.NoError(t, err)
	assert.Empty(t, lastAuth)
}
