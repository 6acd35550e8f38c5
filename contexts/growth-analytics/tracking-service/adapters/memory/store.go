package memory

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"marquee/contexts/growth-analytics/tracking-service/ports"
)

// Store is the in-memory event sink. It retains every inserted event so the
// debug inspection endpoint and tests can read them back.
type Store struct {
	mu       sync.RWMutex
	events   []ports.TrackedEvent
	sequence uint64
}

func NewStore() *Store {
	return &Store{}
}

func (s *Store) Insert(_ context.Context, event ports.TrackedEvent) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, event)
	return nil
}

// Events returns a copy of everything inserted, oldest first.
func (s *Store) Events() []ports.TrackedEvent {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]ports.TrackedEvent(nil), s.events...)
}

func (s *Store) Now() time.Time {
	return time.Now().UTC()
}

func (s *Store) NewID(_ context.Context) (string, error) {
	seq := atomic.AddUint64(&s.sequence, 1)
	return fmt.Sprintf("evt_%d", seq), nil
}
