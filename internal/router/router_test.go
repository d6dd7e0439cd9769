package router

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"

	"github.com/platanus-hack-25/lumera-cli/internal/screen"
)

type stubScreen struct {
	title   string
	initRan bool
	got     []tea.Msg
}

func (s *stubScreen) Init() tea.Cmd {
	s.initRan = true
	return nil
}

func (s *stubScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	s.got = append(s.got, msg)
	return s, nil
}

func (s *stubScreen) View(int, int) string { return s.title }
func (s *stubScreen) Title() string        { return s.title }

func TestNavigation(t *testing.T) {
	home := &stubScreen{title: "home"}
	quiz := &stubScreen{title: "quiz"}
	results := &stubScreen{title: "results"}

	r := New(home)
	r.Update(PushScreenMsg{Screen: quiz})
	assert.Equal(t, 2, r.Depth())
	assert.True(t, quiz.initRan)

	r.Update(ReplaceScreenMsg{Screen: results})
	assert.Equal(t, 2, r.Depth())
	assert.Equal(t, "results", r.Active().Title())
	assert.True(t, results.initRan)

	r.Update(PopScreenMsg{})
	assert.Equal(t, "home", r.View(80, 24))

	r.Update(PopScreenMsg{})
	assert.Equal(t, 1, r.Depth(), "bottom screen stays")
}

func TestForwardsToActive(t *testing.T) {
	home := &stubScreen{title: "home"}
	top := &stubScreen{title: "top"}
	r := New(home)
	r.Push(top)

	r.Update("hello")
	assert.Equal(t, []tea.Msg{"hello"}, top.got)
	assert.Empty(t, home.got)
}
