package app

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/platanus-hack-25/lumera-cli/internal/api"
	"github.com/platanus-hack-25/lumera-cli/internal/auth"
	"github.com/platanus-hack-25/lumera-cli/internal/router"
	"github.com/platanus-hack-25/lumera-cli/internal/screen"
	"github.com/platanus-hack-25/lumera-cli/internal/ui/layout"
)

type stubScreen struct {
	title string
	hints []layout.KeyHint
}

func (s *stubScreen) Init() tea.Cmd                           { return nil }
func (s *stubScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { return s, nil }
func (s *stubScreen) View(int, int) string                    { return "body of " + s.title }
func (s *stubScreen) Title() string                           { return s.title }

type hintedScreen struct{ stubScreen }

func (s *hintedScreen) KeyHints() []layout.KeyHint { return s.hints }

func testModel(root screen.Screen) AppModel {
	return AppModel{router: router.New(root)}
}

func update(t *testing.T, m AppModel, msg tea.Msg) (AppModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	am, ok := next.(AppModel)
	require.True(t, ok)
	return am, cmd
}

func TestEscPopsOnlyAboveRoot(t *testing.T) {
	m := testModel(&stubScreen{title: "Inicio"})

	m, cmd := update(t, m, tea.KeyPressMsg{Code: tea.KeyEscape})
	assert.Nil(t, cmd, "esc on the root screen does nothing")

	m, _ = update(t, m, router.PushScreenMsg{Screen: &stubScreen{title: "Misiones"}})
	require.Equal(t, 2, m.router.Depth())

	m, cmd = update(t, m, tea.KeyPressMsg{Code: tea.KeyEscape})
	require.NotNil(t, cmd)
	msg := cmd()
	assert.IsType(t, router.PopScreenMsg{}, msg)

	m, _ = update(t, m, msg)
	assert.Equal(t, 1, m.router.Depth())
	assert.Equal(t, "Inicio", m.router.Active().Title())
}

func TestCtrlCQuits(t *testing.T) {
	m := testModel(&stubScreen{title: "Inicio"})
	_, cmd := update(t, m, tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestSessionMsgFeedsHeaderStatus(t *testing.T) {
	m := testModel(&stubScreen{title: "Inicio"})
	assert.Equal(t, layout.Status{}, m.status())

	m, _ = update(t, m, sessionMsg(auth.Snapshot{
		User:            &api.User{ID: 1, Name: "Ana"},
		IsAuthenticated: true,
		Stats:           &api.GamificationStats{Level: 4, Coins: 120, CurrentStreak: 3},
	}))
	assert.Equal(t, layout.Status{Name: "Ana", Level: 4, Coins: 120, Streak: 3}, m.status())
}

func TestFooterHints(t *testing.T) {
	m := testModel(&stubScreen{title: "Inicio"})
	assert.Equal(t, "Navegar", m.footerHints(m.router.Active())[0].Description)

	m, _ = update(t, m, router.PushScreenMsg{Screen: &stubScreen{title: "Misiones"}})
	assert.Equal(t, "Volver", m.footerHints(m.router.Active())[0].Description)

	custom := &hintedScreen{stubScreen{title: "Quiz", hints: []layout.KeyHint{{Key: "Ctrl+T", Description: "Leer"}}}}
	m, _ = update(t, m, router.PushScreenMsg{Screen: custom})
	assert.Equal(t, custom.hints, m.footerHints(m.router.Active()))
}

func TestViewSurvivesAnySize(t *testing.T) {
	m := testModel(&stubScreen{title: "Inicio"})
	for _, size := range []tea.WindowSizeMsg{{Width: 0, Height: 0}, {Width: 30, Height: 10}, {Width: 100, Height: 30}} {
		m, _ = update(t, m, size)
		assert.NotPanics(t, func() { m.View() })
	}
}
