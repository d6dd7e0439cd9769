// Package dashboard holds the home screen state: missions, events, recent
// activity and the learner's subjects.
package dashboard

import (
	"slices"
	"sync"

	"github.com/platanus-hack-25/lumera-cli/internal/subjects"
)

// MissionState is the progress of a mission.
type MissionState string

const (
	MissionStart    MissionState = "start"
	MissionProgress MissionState = "progress"
	MissionDone     MissionState = "done"
)

type Mission struct {
	ID      int          `json:"id"`
	Subject string       `json:"subject"`
	Title   string       `json:"title"`
	Time    string       `json:"time"`
	Reward  string       `json:"reward"`
	State   MissionState `json:"state"`
}

type Event struct {
	ID       int    `json:"id"`
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
	Color    string `json:"color"`
}

type Activity struct {
	ID   int    `json:"id"`
	Text string `json:"text"`
	Time string `json:"time"`
	Icon string `json:"icon"`
}

// Missions groups missions by category.
type Missions struct {
	Daily  []Mission `json:"daily"`
	Weekly []Mission `json:"weekly"`
	Story  []Mission `json:"story"`
	Side   []Mission `json:"side"`
}

// categories returns the category slices in lookup order.
func (m *Missions) categories() [][]Mission {
	return [][]Mission{m.Daily, m.Weekly, m.Story, m.Side}
}

func (m Missions) clone() Missions {
	return Missions{
		Daily:  slices.Clone(m.Daily),
		Weekly: slices.Clone(m.Weekly),
		Story:  slices.Clone(m.Story),
		Side:   slices.Clone(m.Side),
	}
}

// State is a copy of the store contents.
type State struct {
	Missions   Missions
	Events     []Event
	Activities []Activity
	Subjects   []subjects.Subject
}

// Store is the dashboard state shared by the screens. It is safe for
// concurrent use.
type Store struct {
	mu    sync.Mutex
	state State

	subs   map[int]func(State)
	nextID int
}

// New returns a Store seeded with the default missions, events and
// activities.
func New() *Store {
	return &Store{
		state: State{
			Missions:   defaultMissions.clone(),
			Events:     slices.Clone(defaultEvents),
			Activities: slices.Clone(defaultActivities),
		},
		subs: make(map[int]func(State)),
	}
}

// Snapshot returns a copy of the current state.
func (s *Store) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

func (s *Store) snapshotLocked() State {
	return State{
		Missions:   s.state.Missions.clone(),
		Events:     slices.Clone(s.state.Events),
		Activities: slices.Clone(s.state.Activities),
		Subjects:   slices.Clone(s.state.Subjects),
	}
}

// ActiveMissionCount counts missions not yet done.
func (s *Store) ActiveMissionCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, cat := range s.state.Missions.categories() {
		for _, m := range cat {
			if m.State != MissionDone {
				n++
			}
		}
	}
	return n
}

func (s *Store) ActivityCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.state.Activities)
}

func (s *Store) EventCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.state.Events)
}

func (s *Store) UpdateMissions(m Missions) {
	s.update(func(st *State) { st.Missions = m.clone() })
}

func (s *Store) UpdateEvents(events []Event) {
	s.update(func(st *State) { st.Events = slices.Clone(events) })
}

func (s *Store) UpdateActivities(activities []Activity) {
	s.update(func(st *State) { st.Activities = slices.Clone(activities) })
}

func (s *Store) UpdateSubjects(subs []subjects.Subject) {
	s.update(func(st *State) { st.Subjects = slices.Clone(subs) })
}

// AddActivity puts a at the top of the activity feed.
func (s *Store) AddActivity(a Activity) {
	s.update(func(st *State) {
		st.Activities = append([]Activity{a}, st.Activities...)
	})
}

// MarkMissionDone marks the first mission with id as done. Categories are
// searched daily, weekly, story, side; an unknown id is ignored.
func (s *Store) MarkMissionDone(id int) bool {
	return s.setMissionState(id, MissionDone)
}

// MarkMissionInProgress is MarkMissionDone for the progress state.
func (s *Store) MarkMissionInProgress(id int) bool {
	return s.setMissionState(id, MissionProgress)
}

func (s *Store) setMissionState(id int, state MissionState) bool {
	found := false
	s.update(func(st *State) {
		for _, cat := range st.Missions.categories() {
			if i := slices.IndexFunc(cat, func(m Mission) bool { return m.ID == id }); i >= 0 {
				cat[i].State = state
				found = true
				return
			}
		}
	})
	return found
}

// Subscribe registers fn to be called with the new state after every
// change. The returned func removes it.
func (s *Store) Subscribe(fn func(State)) (unsubscribe func()) {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.subs[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.subs, id)
		s.mu.Unlock()
	}
}

func (s *Store) update(fn func(*State)) {
	s.mu.Lock()
	fn(&s.state)
	snap := s.snapshotLocked()
	fns := make([]func(State), 0, len(s.subs))
	for _, f := range s.subs {
		fns = append(fns, f)
	}
	s.mu.Unlock()

	for _, f := range fns {
		f(snap)
	}
}
