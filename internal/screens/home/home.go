// Package home is the dashboard screen the TUI opens on.
package home

import (
	"context"
	"fmt"

	tea "charm.land/bubbletea/v2"

	"github.com/platanus-hack-25/lumera-cli/internal/api"
	"github.com/platanus-hack-25/lumera-cli/internal/assessment"
	"github.com/platanus-hack-25/lumera-cli/internal/customization"
	"github.com/platanus-hack-25/lumera-cli/internal/dashboard"
	"github.com/platanus-hack-25/lumera-cli/internal/router"
	"github.com/platanus-hack-25/lumera-cli/internal/screen"
	"github.com/platanus-hack-25/lumera-cli/internal/screens/materias"
	"github.com/platanus-hack-25/lumera-cli/internal/screens/missions"
	"github.com/platanus-hack-25/lumera-cli/internal/screens/quiz"
	"github.com/platanus-hack-25/lumera-cli/internal/subjects"
	"github.com/platanus-hack-25/lumera-cli/internal/ui/components"
)

// Backend is what the home screen and the screens it opens call.
type Backend interface {
	assessment.DiagnosticClient
	customization.EquipmentFetcher
	Materias(ctx context.Context) ([]api.Materia, error)
}

// Account is the signed-in user.
type Account interface {
	User() *api.User
	LoadGamificationStats(ctx context.Context) (*api.GamificationStats, error)
}

type Deps struct {
	Backend   Backend
	Account   Account
	Dashboard *dashboard.Store
	Avatar    *customization.Store
	Speaker   quiz.Speaker // nil disables read-aloud
}

type subjectsMsg struct {
	Materias []api.Materia
	Err      error
}

type statsMsg struct {
	Stats *api.GamificationStats
	Err   error
}

type avatarMsg struct {
	Err error
}

type Screen struct {
	deps     Deps
	menu     components.Menu
	materias []api.Materia
	stats    *api.GamificationStats
	warnings []string
}

var _ screen.Screen = (*Screen)(nil)

func New(deps Deps) *Screen {
	h := &Screen{deps: deps}
	h.menu = components.NewMenu([]components.MenuItem{
		{Label: "Diagnóstico", Hint: "por materia", Action: h.openMaterias},
		{Label: "Diagnóstico sin conexión", Hint: "Lengua y Literatura", Action: h.openLocal},
		{Label: "Misiones", Action: h.openMissions},
		{Label: "Salir", Action: func() tea.Cmd { return tea.Quit }},
	})
	return h
}

func (h *Screen) Title() string { return "Inicio" }

func (h *Screen) Init() tea.Cmd {
	b, acct, avatar := h.deps.Backend, h.deps.Account, h.deps.Avatar
	return tea.Batch(
		func() tea.Msg {
			ms, err := b.Materias(context.Background())
			return subjectsMsg{Materias: ms, Err: err}
		},
		func() tea.Msg {
			st, err := acct.LoadGamificationStats(context.Background())
			return statsMsg{Stats: st, Err: err}
		},
		func() tea.Msg {
			return avatarMsg{Err: avatar.LoadAvatar(context.Background(), b)}
		},
	)
}

func (h *Screen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case subjectsMsg:
		if msg.Err != nil {
			h.warn("materias", msg.Err)
			return h, nil
		}
		h.materias = msg.Materias
		h.deps.Dashboard.UpdateSubjects(subjects.FromMaterias(msg.Materias))
		return h, nil

	case statsMsg:
		if msg.Err != nil {
			h.warn("estadísticas", msg.Err)
			return h, nil
		}
		h.stats = msg.Stats
		return h, nil

	case avatarMsg:
		return h, nil
	}

	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *Screen) warn(what string, err error) {
	h.warnings = append(h.warnings, fmt.Sprintf("No se pudo cargar %s: %v", what, err))
}

func (h *Screen) openMaterias() tea.Cmd {
	picker := materias.New(h.materias, nil, func(m api.Materia) tea.Cmd {
		return push(h.newQuiz("Diagnóstico · "+m.Nombre, assessment.NewDiagnosticFlow(h.deps.Backend, m.ID)))
	})
	return push(picker)
}

func (h *Screen) openLocal() tea.Cmd {
	return push(h.newQuiz("Diagnóstico · Lengua", assessment.NewLocalFlow(nil)))
}

func (h *Screen) openMissions() tea.Cmd {
	return push(missions.New(h.deps.Dashboard))
}

// newQuiz creates a quiz that logs its result in the activity feed.
func (h *Screen) newQuiz(title string, flow assessment.Flow) *quiz.Screen {
	q := quiz.New(title, flow, h.deps.Speaker)
	store := h.deps.Dashboard
	q.OnComplete = func(sum *assessment.Summary) {
		store.AddActivity(dashboard.Activity{
			ID:   store.ActivityCount() + 1,
			Text: fmt.Sprintf("%s: %s (%d%%)", title, sum.Level.Label, sum.Level.Percentage),
			Time: "ahora",
			Icon: "📝",
		})
	}
	return q
}

func push(s screen.Screen) tea.Cmd {
	return func() tea.Msg { return router.PushScreenMsg{Screen: s} }
}
