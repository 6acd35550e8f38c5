package application

import (
	"context"
	"errors"
	"testing"
	"time"

	"marquee/contexts/conversion/funnel-gateway/adapters/memory"
	domainerrors "marquee/contexts/conversion/funnel-gateway/domain/errors"
	"marquee/contexts/conversion/funnel-gateway/ports"
)

func newService(store *memory.Store) Service {
	return Service{
		Provider:    store,
		Waitlist:    store,
		Clock:       store,
		IDGenerator: store,
		PriceID:     "price_test",
		SuccessURL:  "http://localhost/success?session_id={CHECKOUT_SESSION_ID}",
		CancelURL:   "http://localhost/",
	}
}

func TestValidEmail(t *testing.T) {
	valid := []string{"a@b.co", "user.name@example.com", "x@sub.domain.io"}
	for _, address := range valid {
		if !ValidEmail(address) {
			t.Fatalf("expected %q to be valid", address)
		}
	}
	invalid := []string{"", "a@", "a.com", "@b.com", "a@b", "a b@c.co", "a@.com"}
	for _, address := range invalid {
		if ValidEmail(address) {
			t.Fatalf("expected %q to be invalid", address)
		}
	}
}

type countingRepo struct {
	calls int
}

func (r *countingRepo) CreateEntry(
	_ context.Context,
	entryID string,
	email string,
	variantSeen string,
	now time.Time,
) (ports.WaitlistEntry, error) {
	r.calls++
	return ports.WaitlistEntry{EntryID: entryID, Email: email, VariantSeen: variantSeen, CreatedAt: now}, nil
}

func TestJoinWaitlistInvalidEmailNeverReachesStore(t *testing.T) {
	repo := &countingRepo{}
	store := memory.NewStore()
	service := newService(store)
	service.Waitlist = repo

	for _, address := range []string{"", "a@", "a.com", "@b.com"} {
		_, err := service.JoinWaitlist(context.Background(), address, "modern")
		if !errors.Is(err, domainerrors.ErrInvalidEmail) {
			t.Fatalf("expected ErrInvalidEmail for %q, got %v", address, err)
		}
	}
	if repo.calls != 0 {
		t.Fatalf("expected no store calls for invalid email, got %d", repo.calls)
	}
}

func TestJoinWaitlistPersistsEntry(t *testing.T) {
	store := memory.NewStore()
	service := newService(store)

	entry, err := service.JoinWaitlist(context.Background(), "a@b.co", "premium")
	if err != nil {
		t.Fatalf("join returned error: %v", err)
	}
	if entry.EntryID == "" {
		t.Fatal("expected generated entry id")
	}
	if entry.Email != "a@b.co" || entry.VariantSeen != "premium" {
		t.Fatalf("unexpected entry %+v", entry)
	}
	if entry.CreatedAt.IsZero() {
		t.Fatal("expected creation timestamp")
	}
}

func TestJoinWaitlistDuplicateEmail(t *testing.T) {
	store := memory.NewStore()
	service := newService(store)

	if _, err := service.JoinWaitlist(context.Background(), "a@b.co", "modern"); err != nil {
		t.Fatalf("first join returned error: %v", err)
	}
	_, err := service.JoinWaitlist(context.Background(), "A@B.CO", "modern")
	if !errors.Is(err, domainerrors.ErrDuplicateEmail) {
		t.Fatalf("expected ErrDuplicateEmail, got %v", err)
	}
}

func TestJoinWaitlistStoreFailureMapsToStoreUnavailable(t *testing.T) {
	store := memory.NewStore()
	store.FailStore()
	service := newService(store)

	_, err := service.JoinWaitlist(context.Background(), "a@b.co", "modern")
	if !errors.Is(err, domainerrors.ErrStoreUnavailable) {
		t.Fatalf("expected ErrStoreUnavailable, got %v", err)
	}
}

func TestStartCheckoutReturnsRedirect(t *testing.T) {
	store := memory.NewStore()
	service := newService(store)

	session, err := service.StartCheckout(context.Background(), "a@b.co")
	if err != nil {
		t.Fatalf("checkout returned error: %v", err)
	}
	if session.SessionRef == "" || session.RedirectURL == "" {
		t.Fatalf("expected session ref and redirect url, got %+v", session)
	}
}

func TestStartCheckoutWithoutEmail(t *testing.T) {
	store := memory.NewStore()
	service := newService(store)

	if _, err := service.StartCheckout(context.Background(), ""); err != nil {
		t.Fatalf("expected optional email, got %v", err)
	}
}

func TestStartCheckoutProviderFailure(t *testing.T) {
	store := memory.NewStore()
	store.FailCheckout()
	service := newService(store)

	_, err := service.StartCheckout(context.Background(), "")
	if !errors.Is(err, domainerrors.ErrCheckoutUnavailable) {
		t.Fatalf("expected ErrCheckoutUnavailable, got %v", err)
	}
}

func TestStartCheckoutUnconfiguredPrice(t *testing.T) {
	store := memory.NewStore()
	service := newService(store)
	service.PriceID = ""

	_, err := service.StartCheckout(context.Background(), "")
	if !errors.Is(err, domainerrors.ErrCheckoutUnavailable) {
		t.Fatalf("expected ErrCheckoutUnavailable for missing price id, got %v", err)
	}
}

func TestStartCheckoutInvalidProvidedEmail(t *testing.T) {
	store := memory.NewStore()
	service := newService(store)

	_, err := service.StartCheckout(context.Background(), "not-an-email")
	if !errors.Is(err, domainerrors.ErrInvalidEmail) {
		t.Fatalf("expected ErrInvalidEmail, got %v", err)
	}
}
