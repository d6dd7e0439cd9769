package profile

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/platanus-hack-25/lumera-cli/internal/api"
)

type fakeBackend struct {
	profile  *api.StudentProfile
	getErr   error
	patchErr error
	patched  *api.UpdateProfileRequest
	created  *api.CreateProfileRequest
}

func (f *fakeBackend) Profile(context.Context, int64) (*api.StudentProfile, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.profile, nil
}

func (f *fakeBackend) CreateProfile(_ context.Context, req api.CreateProfileRequest) (*api.StudentProfile, error) {
	f.created = &req
	return &api.StudentProfile{UserID: req.UserID, ProfileData: req.ProfileData}, nil
}

func (f *fakeBackend) UpdateProfile(_ context.Context, userID int64, req api.UpdateProfileRequest) (*api.StudentProfile, error) {
	if f.patchErr != nil {
		return nil, f.patchErr
	}
	f.patched = &req
	return &api.StudentProfile{UserID: userID, ProfileData: req.ProfileData}, nil
}

func newTestService(fb *fakeBackend) *Service {
	s := NewService(fb)
	s.now = func() time.Time { return time.Date(2025, 11, 22, 15, 0, 0, 0, time.UTC) }
	return s
}

func TestUpdateSendsCompleteMergedData(t *testing.T) {
	fb := &fakeBackend{profile: &api.StudentProfile{UserID: 5, ProfileData: data(t, stored)}}
	s := newTestService(fb)

	var u Update
	require.NoError(t, u.Set(KeyPreferenciasAprendizaje, map[string]string{"formato_preferido": "visual"}))
	_, err := s.Update(context.Background(), 5, u)
	require.NoError(t, err)

	require.NotNil(t, fb.patched)
	sent := fb.patched.ProfileData
	assert.Equal(t, string(fb.profile.ProfileData[KeyConocimientoPrevio]), string(sent[KeyConocimientoPrevio]))
	assert.Contains(t, sent, KeyPerfilCognitivo)
	assert.Contains(t, sent, KeyMotivacion)
	assert.JSONEq(t, `{"tipo_actividad":["juego"],"formato_preferido":"visual"}`, string(sent[KeyPreferenciasAprendizaje]))
	assert.JSONEq(t, `"2025-11-22T15:00:00Z"`, string(sent[KeyUltimaActualizacion]))
	assert.NotContains(t, u.Data, KeyUltimaActualizacion, "caller's update is not modified")
}

func TestUpdateNotFound(t *testing.T) {
	fb := &fakeBackend{getErr: &api.Error{Kind: api.KindNotFound, Message: "Profile not found"}}
	s := newTestService(fb)

	_, err := s.Update(context.Background(), 5, Update{CursoActual: "1M"})
	assert.ErrorIs(t, err, api.ErrNotFound)
	assert.Nil(t, fb.patched, "nothing is written")
}

func TestUpdateWriteFailure(t *testing.T) {
	boom := &api.Error{Kind: api.KindNetwork, Message: api.NetworkErrorMessage, Err: errors.New("reset")}
	fb := &fakeBackend{profile: &api.StudentProfile{ProfileData: api.ProfileData{}}, patchErr: boom}
	s := newTestService(fb)

	_, err := s.Update(context.Background(), 5, Update{Data: api.ProfileData{KeyMotivacion: json.RawMessage(`{}`)}})
	assert.ErrorIs(t, err, api.ErrNetwork)
}

func TestUpdateScalarFieldsOnly(t *testing.T) {
	fb := &fakeBackend{profile: &api.StudentProfile{ProfileData: data(t, stored)}}
	s := newTestService(fb)
	edad := 15

	_, err := s.Update(context.Background(), 5, Update{Edad: &edad, CursoActual: "1M"})
	require.NoError(t, err)
	assert.Equal(t, 15, *fb.patched.Edad)
	assert.Equal(t, "1M", fb.patched.CursoActual)
	assert.NotContains(t, fb.patched.ProfileData, KeyUltimaActualizacion)
	assert.Len(t, fb.patched.ProfileData, len(fb.profile.ProfileData))
}

func TestCreate(t *testing.T) {
	fb := &fakeBackend{}
	s := newTestService(fb)
	edad := 16

	_, err := s.Create(context.Background(), 9, Update{Edad: &edad, CursoActual: "2M"})
	require.NoError(t, err)
	assert.Equal(t, int64(9), fb.created.UserID)
	assert.Equal(t, "2M", fb.created.CursoActual)
}
