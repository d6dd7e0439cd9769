package home

import (
	"context"
	"errors"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/platanus-hack-25/lumera-cli/internal/api"
	"github.com/platanus-hack-25/lumera-cli/internal/assessment"
	"github.com/platanus-hack-25/lumera-cli/internal/customization"
	"github.com/platanus-hack-25/lumera-cli/internal/dashboard"
	"github.com/platanus-hack-25/lumera-cli/internal/router"
	"github.com/platanus-hack-25/lumera-cli/internal/screens/quiz"
)

type fakeBackend struct {
	assessment.DiagnosticClient
	materias    []api.Materia
	materiasErr error
}

func (f *fakeBackend) Materias(context.Context) ([]api.Materia, error) {
	return f.materias, f.materiasErr
}

func (f *fakeBackend) Equipment(context.Context) (*api.UserEquipment, error) {
	return &api.UserEquipment{EquippedAvatar: &api.CustomizationItem{Name: "Búho sabio"}}, nil
}

type fakeAccount struct{}

func (fakeAccount) User() *api.User { return &api.User{ID: 1, Name: "Ana"} }

func (fakeAccount) LoadGamificationStats(context.Context) (*api.GamificationStats, error) {
	return &api.GamificationStats{Level: 4, XP: 350, XPProgress: 50, XPForNextLevel: 100, Coins: 120, CurrentStreak: 5}, nil
}

func newHome(b *fakeBackend) (*Screen, *dashboard.Store) {
	store := dashboard.New()
	return New(Deps{Backend: b, Account: fakeAccount{}, Dashboard: store, Avatar: customization.NewStore()}), store
}

// load runs the batched Init commands and feeds their results back.
func load(t *testing.T, h *Screen) {
	t.Helper()
	batch, ok := h.Init()().(tea.BatchMsg)
	require.True(t, ok)
	for _, cmd := range batch {
		h.Update(cmd())
	}
}

func TestInitLoadsDashboard(t *testing.T) {
	h, store := newHome(&fakeBackend{materias: []api.Materia{{ID: 1, Codigo: "MAT", Nombre: "Matemáticas"}}})
	load(t, h)

	require.Len(t, store.Snapshot().Subjects, 1)
	assert.Equal(t, "mat", store.Snapshot().Subjects[0].ID)

	view := h.View(100, 40)
	assert.Contains(t, view, "¡Hola, Ana!")
	assert.Contains(t, view, "Búho sabio")
	assert.Contains(t, view, "Nivel 4")
	assert.Contains(t, view, "6 misiones activas")
	assert.Empty(t, h.warnings)
}

func TestInitWarnsOnFailure(t *testing.T) {
	h, _ := newHome(&fakeBackend{materiasErr: errors.New("offline")})
	load(t, h)
	require.Len(t, h.warnings, 1)
	assert.Contains(t, h.View(100, 40), "offline")
}

func TestMenuOpensScreens(t *testing.T) {
	h, store := newHome(&fakeBackend{})

	_, cmd := h.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	assert.Nil(t, cmd)
	_, cmd = h.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	require.NotNil(t, cmd)

	msg, ok := cmd().(router.PushScreenMsg)
	require.True(t, ok)
	q, ok := msg.Screen.(*quiz.Screen)
	require.True(t, ok)
	assert.Equal(t, "Diagnóstico · Lengua", q.Title())

	q.OnComplete(&assessment.Summary{Level: assessment.CalculateLevel(7, 12)})
	acts := store.Snapshot().Activities
	assert.Equal(t, "Diagnóstico · Lengua: Intermedio (58%)", acts[0].Text)
}

func TestMoodFor(t *testing.T) {
	assert.Equal(t, MoodSleepy, MoodFor(0))
	assert.Equal(t, MoodIdle, MoodFor(2))
	assert.Equal(t, MoodOnFire, MoodFor(3))
}
