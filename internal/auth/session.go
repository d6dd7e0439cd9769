// Package auth holds the signed-in user and token, persists them across
// runs and supplies the headers every backend request is sent with.
package auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/platanus-hack-25/lumera-cli/internal/api"
)

// Durable storage keys.
const (
	TokenKey = "auth_token"
	UserKey  = "auth_user"
)

// LoginPath is where a signed-out user is sent.
const LoginPath = "/login"

// ErrNotAuthenticated is returned by operations that need a signed-in user.
var ErrNotAuthenticated = errors.New("not authenticated")

// Storage is the durable key-value store the session persists into.
// store.Store satisfies it.
type Storage interface {
	GetItem(key string) (string, bool, error)
	SetItems(items map[string]string) error
	RemoveItems(keys ...string) error
}

// Backend is the part of the API client the session calls.
type Backend interface {
	Login(ctx context.Context, req api.LoginRequest) (*api.AuthResponse, error)
	Register(ctx context.Context, req api.RegisterRequest) (*api.AuthResponse, error)
	Profile(ctx context.Context, userID int64) (*api.StudentProfile, error)
	GamificationStats(ctx context.Context) (*api.GamificationStats, error)
}

// Snapshot is a copy of the session state handed to observers.
type Snapshot struct {
	User            *api.User
	Token           string
	IsAuthenticated bool
	Stats           *api.GamificationStats
}

// Session is the process-wide authentication state. The zero value is not
// usable; create one with Init.
type Session struct {
	mu      sync.Mutex
	storage Storage
	backend Backend

	user  *api.User
	token string
	stats *api.GamificationStats

	subs   map[int]func(Snapshot)
	nextID int
}

// Init restores the session from storage. Both keys must be present and
// the user record must decode; otherwise the session starts signed out
// and nothing is partially restored.
func Init(storage Storage) (*Session, error) {
	s := &Session{storage: storage, subs: make(map[int]func(Snapshot))}

	token, hasToken, err := storage.GetItem(TokenKey)
	if err != nil {
		return nil, fmt.Errorf("restore session: %w", err)
	}
	raw, hasUser, err := storage.GetItem(UserKey)
	if err != nil {
		return nil, fmt.Errorf("restore session: %w", err)
	}
	if !hasToken || !hasUser || token == "" {
		return s, nil
	}

	var user *api.User
	if err := json.Unmarshal([]byte(raw), &user); err != nil || user == nil {
		return s, nil
	}
	s.user = user
	s.token = token
	return s, nil
}

// UseBackend sets the client used by Login, Register and the profile and
// stats loaders. The client itself usually takes the session as its
// header source, hence the separate step.
func (s *Session) UseBackend(b Backend) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.backend = b
}

// Login authenticates and, on success, stores the token and user. On
// failure the session is left as it was.
func (s *Session) Login(ctx context.Context, email, password string) (*api.User, error) {
	b, err := s.requireBackend()
	if err != nil {
		return nil, err
	}
	resp, err := b.Login(ctx, api.LoginRequest{Email: email, Password: password})
	if err != nil {
		return nil, err
	}
	if err := s.SetAuth(resp.Token, &resp.User); err != nil {
		return nil, err
	}
	return &resp.User, nil
}

// Register creates an account and signs it in.
func (s *Session) Register(ctx context.Context, email, name, password string) (*api.User, error) {
	b, err := s.requireBackend()
	if err != nil {
		return nil, err
	}
	resp, err := b.Register(ctx, api.RegisterRequest{Email: email, Name: name, Password: password})
	if err != nil {
		return nil, err
	}
	if err := s.SetAuth(resp.Token, &resp.User); err != nil {
		return nil, err
	}
	return &resp.User, nil
}

// SetAuth replaces token and user together and persists both. Memory is
// only updated once storage accepted the write.
func (s *Session) SetAuth(token string, user *api.User) error {
	if token == "" || user == nil {
		return errors.New("set auth: token and user are both required")
	}
	raw, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("encode user: %w", err)
	}

	s.mu.Lock()
	if err := s.storage.SetItems(map[string]string{TokenKey: token, UserKey: string(raw)}); err != nil {
		s.mu.Unlock()
		return fmt.Errorf("persist session: %w", err)
	}
	u := *user
	s.user = &u
	s.token = token
	s.mu.Unlock()

	s.notify()
	return nil
}

// Logout clears the session in memory and in storage and returns the path
// the caller should navigate to. Logging out twice is harmless.
func (s *Session) Logout() (string, error) {
	s.mu.Lock()
	s.user = nil
	s.token = ""
	s.stats = nil
	err := s.storage.RemoveItems(TokenKey, UserKey)
	s.mu.Unlock()

	s.notify()
	if err != nil {
		return LoginPath, fmt.Errorf("clear session: %w", err)
	}
	return LoginPath, nil
}

// AuthHeaders returns the headers for a backend request: always the JSON
// content type, plus a bearer token when signed in.
func (s *Session) AuthHeaders() http.Header {
	s.mu.Lock()
	token := s.token
	s.mu.Unlock()

	h := http.Header{}
	h.Set("Content-Type", "application/json")
	if token != "" {
		h.Set("Authorization", "Bearer "+token)
	}
	return h
}

// Token returns the current token, empty when signed out.
func (s *Session) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token
}

// User returns a copy of the signed-in user, or nil.
func (s *Session) User() *api.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		return nil
	}
	u := *s.user
	return &u
}

// IsAuthenticated reports whether both a user and a token are held.
func (s *Session) IsAuthenticated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.user != nil && s.token != ""
}

// Snapshot returns a copy of the current state.
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

func (s *Session) snapshotLocked() Snapshot {
	snap := Snapshot{Token: s.token, IsAuthenticated: s.user != nil && s.token != ""}
	if s.user != nil {
		u := *s.user
		snap.User = &u
	}
	if s.stats != nil {
		st := *s.stats
		snap.Stats = &st
	}
	return snap
}

// Subscribe registers fn to be called after every state change. The
// returned func removes it.
func (s *Session) Subscribe(fn func(Snapshot)) (unsubscribe func()) {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.subs[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.subs, id)
		s.mu.Unlock()
	}
}

func (s *Session) notify() {
	s.mu.Lock()
	snap := s.snapshotLocked()
	fns := make([]func(Snapshot), 0, len(s.subs))
	for _, fn := range s.subs {
		fns = append(fns, fn)
	}
	s.mu.Unlock()

	for _, fn := range fns {
		fn(snap)
	}
}

func (s *Session) requireBackend() (Backend, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.backend == nil {
		return nil, errors.New("auth: no backend configured")
	}
	return s.backend, nil
}

func (s *Session) requireUser() (Backend, *api.User, error) {
	b, err := s.requireBackend()
	if err != nil {
		return nil, nil, err
	}
	u := s.User()
	if u == nil || s.Token() == "" {
		return nil, nil, ErrNotAuthenticated
	}
	return b, u, nil
}

// HasProfile reports whether the signed-in user has a student profile.
// Failures other than a missing profile are returned.
func (s *Session) HasProfile(ctx context.Context) (bool, error) {
	b, u, err := s.requireUser()
	if err != nil {
		return false, err
	}
	_, err = b.Profile(ctx, u.ID)
	if errors.Is(err, api.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// SyncProfile fetches the user's profile and copies its curso_actual into
// the cached user record, re-persisting it.
func (s *Session) SyncProfile(ctx context.Context) (*api.StudentProfile, error) {
	b, u, err := s.requireUser()
	if err != nil {
		return nil, err
	}
	p, err := b.Profile(ctx, u.ID)
	if err != nil {
		return nil, err
	}
	if p.CursoActual != "" && p.CursoActual != u.CursoActual {
		u.CursoActual = p.CursoActual
		if err := s.SetAuth(s.Token(), u); err != nil {
			return nil, err
		}
	}
	return p, nil
}

// LoadGamificationStats fetches and caches the user's stats. They are not
// persisted.
func (s *Session) LoadGamificationStats(ctx context.Context) (*api.GamificationStats, error) {
	b, _, err := s.requireUser()
	if err != nil {
		return nil, err
	}
	st, err := b.GamificationStats(ctx)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	cp := *st
	s.stats = &cp
	s.mu.Unlock()

	s.notify()
	return st, nil
}

// TokenExpiry decodes the exp claim of the current token without
// verifying its signature. ok is false when signed out or when the token
// carries no expiry.
func (s *Session) TokenExpiry() (exp time.Time, ok bool) {
	token := s.Token()
	if token == "" {
		return time.Time{}, false
	}
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return time.Time{}, false
	}
	nd, err := claims.GetExpirationTime()
	if err != nil || nd == nil {
		return time.Time{}, false
	}
	return nd.Time, true
}
