package components

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func TestMenuSkipsDisabled(t *testing.T) {
	var chosen string
	pick := func(s string) func() tea.Cmd {
		return func() tea.Cmd {
			chosen = s
			return nil
		}
	}
	m := NewMenu([]MenuItem{
		{Label: "off", Disabled: true},
		{Label: "a", Action: pick("a")},
		{Label: "off", Disabled: true},
		{Label: "b", Action: pick("b")},
	})
	assert.Equal(t, 1, m.Selected)

	m, _ = m.Update(specialKey(tea.KeyDown))
	assert.Equal(t, 3, m.Selected)
	m, _ = m.Update(specialKey(tea.KeyDown))
	assert.Equal(t, 3, m.Selected)

	m, _ = m.Update(specialKey(tea.KeyEnter))
	assert.Equal(t, "b", chosen)

	m, _ = m.Update(keyPress('k'))
	assert.Equal(t, 1, m.Selected)
	assert.Contains(t, m.View(), "▸ a")
}

func TestMultiChoice(t *testing.T) {
	mc := NewMultiChoice([]string{"uno", "dos", "tres"})

	mc, _ = mc.Update(specialKey(tea.KeyDown))
	mc, _ = mc.Update(specialKey(tea.KeyDown))
	mc, _ = mc.Update(specialKey(tea.KeyDown))
	assert.Equal(t, 2, mc.Selected)

	mc, _ = mc.Update(specialKey(tea.KeyEnter))
	require.True(t, mc.Submitted)

	mc, _ = mc.Update(specialKey(tea.KeyUp))
	assert.Equal(t, 2, mc.Selected, "locked after submit")

	mc.Judge(false)
	assert.Contains(t, mc.View(), "C)  tres")
}

func TestMultiChoiceLetterKey(t *testing.T) {
	mc := NewMultiChoice([]string{"uno", "dos"})
	mc, _ = mc.Update(keyPress('z'))
	assert.False(t, mc.Submitted)

	mc, _ = mc.Update(keyPress('b'))
	assert.True(t, mc.Submitted)
	assert.Equal(t, 1, mc.Selected)
}

func TestTextInputFields(t *testing.T) {
	ti := NewTextInput("", 0)
	ti.Model.SetValue(" sol ,luna")
	assert.Equal(t, []string{"sol", "luna"}, ti.Fields())
}

func TestProgressBarClamps(t *testing.T) {
	assert.NotPanics(t, func() {
		_ = NewProgressBar("x", 1.7, true, 10).View()
		_ = NewProgressBar("", -1, false, 0).View()
	})
}
