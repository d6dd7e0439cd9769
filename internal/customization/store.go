// Package customization tracks the avatar the learner has equipped.
package customization

import (
	"context"
	"fmt"
	"sync"

	"github.com/platanus-hack-25/lumera-cli/internal/api"
)

// EquipmentFetcher loads the learner's equipment.
type EquipmentFetcher interface {
	Equipment(ctx context.Context) (*api.UserEquipment, error)
}

// Store holds the equipped avatar. It is not persisted; Clear it on logout.
type Store struct {
	mu      sync.Mutex
	avatar  *api.CustomizationItem
	loading bool
}

// NewStore returns an empty Store.
func NewStore() *Store {
	return &Store{}
}

// CurrentAvatar returns a copy of the equipped avatar, or nil.
func (s *Store) CurrentAvatar() *api.CustomizationItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.avatar == nil {
		return nil
	}
	a := *s.avatar
	return &a
}

// IsLoading reports whether LoadAvatar is in flight.
func (s *Store) IsLoading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

// LoadAvatar fetches the equipment and keeps its avatar. On failure the
// avatar is cleared and the error returned; reporting it is up to the
// caller.
func (s *Store) LoadAvatar(ctx context.Context, f EquipmentFetcher) error {
	s.mu.Lock()
	s.loading = true
	s.mu.Unlock()

	eq, err := f.Equipment(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false
	if err != nil {
		s.avatar = nil
		return fmt.Errorf("load avatar: %w", err)
	}
	s.avatar = eq.EquippedAvatar
	return nil
}

// SetAvatar replaces the equipped avatar, e.g. after an equip call.
func (s *Store) SetAvatar(item *api.CustomizationItem) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if item == nil {
		s.avatar = nil
		return
	}
	a := *item
	s.avatar = &a
}

// Clear resets the store.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.avatar = nil
	s.loading = false
}
