package missions

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"

	"github.com/platanus-hack-25/lumera-cli/internal/dashboard"
)

func TestEnterAdvancesMission(t *testing.T) {
	store := dashboard.New()
	s := New(store)
	assert.Len(t, s.rows, 7)

	enter := tea.KeyPressMsg{Code: tea.KeyEnter}
	s.Update(enter) // mission 1: start -> progress
	assert.Equal(t, dashboard.MissionProgress, store.Snapshot().Missions.Daily[0].State)
	assert.Equal(t, 6, store.ActiveMissionCount())

	s.Update(enter) // progress -> done
	assert.Equal(t, dashboard.MissionDone, store.Snapshot().Missions.Daily[0].State)
	assert.Equal(t, 5, store.ActiveMissionCount())

	s.Update(enter) // done stays done
	assert.Equal(t, 5, store.ActiveMissionCount())
}

func TestCursorStaysInRange(t *testing.T) {
	s := New(dashboard.New())
	for range 20 {
		s.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	}
	assert.Equal(t, 6, s.cursor)
	assert.Contains(t, s.View(100, 40), "Speed Math")
}

func TestEmptyStore(t *testing.T) {
	store := dashboard.New()
	store.UpdateMissions(dashboard.Missions{})
	s := New(store)
	s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	assert.Contains(t, s.View(100, 40), "0 misiones activas")
}
