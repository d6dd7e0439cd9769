package dashboard

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/platanus-hack-25/lumera-cli/internal/subjects"
)

func TestDefaults(t *testing.T) {
	s := New()
	assert.Equal(t, 6, s.ActiveMissionCount())
	assert.Equal(t, 3, s.ActivityCount())
	assert.Equal(t, 2, s.EventCount())
	assert.Empty(t, s.Snapshot().Subjects)
}

func TestStoresDoNotShareDefaults(t *testing.T) {
	a, b := New(), New()
	require.True(t, a.MarkMissionDone(1))
	assert.Equal(t, 5, a.ActiveMissionCount())
	assert.Equal(t, 6, b.ActiveMissionCount())
	assert.Equal(t, MissionStart, defaultMissions.Daily[0].State)
}

func TestMarkMission(t *testing.T) {
	tests := []struct {
		name   string
		mark   func(*Store) bool
		found  bool
		active int
	}{
		{"done daily", func(s *Store) bool { return s.MarkMissionDone(3) }, true, 5},
		{"done story", func(s *Store) bool { return s.MarkMissionDone(6) }, true, 5},
		{"already done", func(s *Store) bool { return s.MarkMissionDone(2) }, true, 6},
		{"reopen done", func(s *Store) bool { return s.MarkMissionInProgress(2) }, true, 7},
		{"unknown id", func(s *Store) bool { return s.MarkMissionDone(99) }, false, 6},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New()
			assert.Equal(t, tt.found, tt.mark(s))
			assert.Equal(t, tt.active, s.ActiveMissionCount())
		})
	}
}

func TestMarkMissionFirstMatchWins(t *testing.T) {
	s := New()
	s.UpdateMissions(Missions{
		Weekly: []Mission{{ID: 1, State: MissionStart}},
		Side:   []Mission{{ID: 1, State: MissionStart}},
	})

	s.MarkMissionInProgress(1)
	m := s.Snapshot().Missions
	assert.Equal(t, MissionProgress, m.Weekly[0].State)
	assert.Equal(t, MissionStart, m.Side[0].State)
}

func TestAddActivityPrepends(t *testing.T) {
	s := New()
	s.AddActivity(Activity{ID: 10, Text: "Diagnóstico completado", Time: "ahora", Icon: "✅"})

	acts := s.Snapshot().Activities
	require.Len(t, acts, 4)
	assert.Equal(t, 10, acts[0].ID)
	assert.Equal(t, 1, acts[1].ID)
}

func TestUpdatesReplace(t *testing.T) {
	s := New()
	s.UpdateEvents(nil)
	s.UpdateActivities([]Activity{{ID: 5}})
	s.UpdateSubjects([]subjects.Subject{{ID: "mat"}})

	assert.Zero(t, s.EventCount())
	assert.Equal(t, 1, s.ActivityCount())
	assert.Equal(t, "mat", s.Snapshot().Subjects[0].ID)
}

func TestSnapshotIsACopy(t *testing.T) {
	s := New()
	snap := s.Snapshot()
	snap.Missions.Daily[0].State = MissionDone
	snap.Activities[0].Text = "changed"

	assert.Equal(t, 6, s.ActiveMissionCount())
	assert.NotEqual(t, "changed", s.Snapshot().Activities[0].Text)
}

func TestSubscribe(t *testing.T) {
	s := New()
	var got []int
	unsubscribe := s.Subscribe(func(st State) { got = append(got, len(st.Activities)) })

	s.AddActivity(Activity{ID: 4})
	s.MarkMissionDone(1)
	unsubscribe()
	s.AddActivity(Activity{ID: 5})

	assert.Equal(t, []int{4, 4}, got)
}

func TestConcurrentUse(t *testing.T) {
	s := New()
	var wg sync.WaitGroup
	for i := range 20 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.AddActivity(Activity{ID: 100 + i})
			s.MarkMissionInProgress(i % 8)
			_ = s.ActiveMissionCount()
		}()
	}
	wg.Wait()
	assert.Equal(t, 23, s.ActivityCount())
}
