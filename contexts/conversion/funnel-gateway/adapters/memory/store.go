package memory

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	domainerrors "marquee/contexts/conversion/funnel-gateway/domain/errors"
	"marquee/contexts/conversion/funnel-gateway/ports"
)

// Store is the in-memory fake for both external collaborators: the payment
// provider and the waitlist store. Failure switches let tests exercise the
// unavailable paths.
type Store struct {
	mu           sync.Mutex
	entries      map[string]ports.WaitlistEntry
	sequence     uint64
	checkoutDown bool
	storeDown    bool
}

func NewStore() *Store {
	return &Store{entries: map[string]ports.WaitlistEntry{}}
}

// FailCheckout makes every CreateSession call fail.
func (s *Store) FailCheckout() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.checkoutDown = true
}

// FailStore makes every CreateEntry call fail with a non-domain error.
func (s *Store) FailStore() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.storeDown = true
}

func (s *Store) CreateSession(_ context.Context, input ports.CheckoutInput) (ports.CheckoutSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.checkoutDown {
		return ports.CheckoutSession{}, errors.New("payment provider unreachable")
	}
	s.sequence++
	ref := fmt.Sprintf("cs_test_%d", s.sequence)
	return ports.CheckoutSession{
		SessionRef:  ref,
		RedirectURL: "https://checkout.test/pay/" + ref + "?price=" + input.PriceID,
	}, nil
}

func (s *Store) CreateEntry(
	_ context.Context,
	entryID string,
	email string,
	variantSeen string,
	now time.Time,
) (ports.WaitlistEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.storeDown {
		return ports.WaitlistEntry{}, errors.New("store offline")
	}

	key := strings.ToLower(email)
	if _, exists := s.entries[key]; exists {
		return ports.WaitlistEntry{}, domainerrors.ErrDuplicateEmail
	}
	entry := ports.WaitlistEntry{
		EntryID:     entryID,
		Email:       email,
		VariantSeen: variantSeen,
		CreatedAt:   now.UTC(),
	}
	s.entries[key] = entry
	return entry, nil
}

// Entries returns a copy of everything recorded, for debug inspection.
func (s *Store) Entries() []ports.WaitlistEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	entries := make([]ports.WaitlistEntry, 0, len(s.entries))
	for _, entry := range s.entries {
		entries = append(entries, entry)
	}
	return entries
}

func (s *Store) Now() time.Time {
	return time.Now().UTC()
}

func (s *Store) NewID(_ context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sequence++
	return fmt.Sprintf("wl_%d", s.sequence), nil
}
