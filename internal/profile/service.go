package profile

import (
	"context"
	"fmt"
	"time"

	"github.com/platanus-hack-25/lumera-cli/internal/api"
)

// Backend is the part of the API client the service calls.
type Backend interface {
	Profile(ctx context.Context, userID int64) (*api.StudentProfile, error)
	CreateProfile(ctx context.Context, req api.CreateProfileRequest) (*api.StudentProfile, error)
	UpdateProfile(ctx context.Context, userID int64, req api.UpdateProfileRequest) (*api.StudentProfile, error)
}

// Service reads and writes profiles.
type Service struct {
	backend Backend
	now     func() time.Time
}

// NewService creates a Service on top of backend.
func NewService(backend Backend) *Service {
	return &Service{backend: backend, now: time.Now}
}

// Get returns the profile of userID. A missing one is api.ErrNotFound.
func (s *Service) Get(ctx context.Context, userID int64) (*api.StudentProfile, error) {
	return s.backend.Profile(ctx, userID)
}

// Create stores a first profile for userID.
func (s *Service) Create(ctx context.Context, userID int64, u Update) (*api.StudentProfile, error) {
	return s.backend.CreateProfile(ctx, api.CreateProfileRequest{
		UserID:      userID,
		Edad:        u.Edad,
		CursoActual: u.CursoActual,
		ProfileData: u.Data,
	})
}

// Update fetches the stored profile, merges u into it and writes the
// complete result back. It stamps ultima_actualizacion unless u sets it.
//
// Two concurrent updates for the same user race: the later write wins
// and drops the other's changes.
func (s *Service) Update(ctx context.Context, userID int64, u Update) (*api.StudentProfile, error) {
	current, err := s.backend.Profile(ctx, userID)
	if err != nil {
		return nil, err
	}

	partial := u.Data
	if _, ok := partial[KeyUltimaActualizacion]; !ok && len(partial) > 0 {
		partial = make(api.ProfileData, len(u.Data)+1)
		for k, v := range u.Data {
			partial[k] = v
		}
		stamp := Update{Data: partial}
		if err := stamp.Set(KeyUltimaActualizacion, s.now().UTC().Format(time.RFC3339)); err != nil {
			return nil, err
		}
	}

	merged, err := Merge(current.ProfileData, partial)
	if err != nil {
		return nil, fmt.Errorf("merge profile: %w", err)
	}

	return s.backend.UpdateProfile(ctx, userID, api.UpdateProfileRequest{
		Edad:        u.Edad,
		CursoActual: u.CursoActual,
		ProfileData: merged,
	})
}
