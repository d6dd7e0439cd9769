package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/platanus-hack-25/lumera-cli/internal/auth"
	"github.com/platanus-hack-25/lumera-cli/internal/router"
	"github.com/platanus-hack-25/lumera-cli/internal/screen"
	"github.com/platanus-hack-25/lumera-cli/internal/screens/home"
	"github.com/platanus-hack-25/lumera-cli/internal/ui/layout"
)

// SessionSource feeds the header. auth.Session satisfies it.
type SessionSource interface {
	Snapshot() auth.Snapshot
	Subscribe(fn func(auth.Snapshot)) (unsubscribe func())
}

// sessionMsg carries a session change into the update loop.
type sessionMsg auth.Snapshot

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router  *router.Router
	session auth.Snapshot
	width   int
	height  int
}

func newAppModel(deps home.Deps, snap auth.Snapshot) AppModel {
	return AppModel{
		router:  router.New(home.New(deps)),
		session: snap,
	}
}

func (m AppModel) Init() tea.Cmd {
	if active := m.router.Active(); active != nil {
		return active.Init()
	}
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case sessionMsg:
		m.session = auth.Snapshot(msg)
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) status() layout.Status {
	var st layout.Status
	if u := m.session.User; u != nil {
		st.Name = u.Name
	}
	if s := m.session.Stats; s != nil {
		st.Level = s.Level
		st.Coins = s.Coins
		st.Streak = s.CurrentStreak
	}
	return st
}

func (m AppModel) footerHints(active screen.Screen) []layout.KeyHint {
	if p, ok := active.(screen.KeyHintProvider); ok {
		return p.KeyHints()
	}
	if m.router.Depth() > 1 {
		return []layout.KeyHint{
			{Key: "Esc", Description: "Volver"},
			{Key: "Ctrl+C", Description: "Salir"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navegar"},
		{Key: "Enter", Description: "Elegir"},
		{Key: "Ctrl+C", Description: "Salir"},
	}
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	header := layout.RenderHeader(title, m.status(), m.width)
	footer := layout.RenderFooter(m.footerHints(active), m.width)

	contentHeight := m.height - lipgloss.Height(header) - lipgloss.Height(footer)
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	v.SetContent(layout.RenderFrame(header, content, footer, m.width, m.height))
	return v
}

// Run starts the Bubble Tea program on the home screen. Session changes
// made while it runs (stats loaded, sign-out) are reflected in the header.
func Run(deps home.Deps, session SessionSource) error {
	p := tea.NewProgram(newAppModel(deps, session.Snapshot()))
	unsubscribe := session.Subscribe(func(s auth.Snapshot) {
		go p.Send(sessionMsg(s))
	})
	defer unsubscribe()

	if _, err := p.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
