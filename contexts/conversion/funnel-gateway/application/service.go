package application

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	domainerrors "marquee/contexts/conversion/funnel-gateway/domain/errors"
	"marquee/contexts/conversion/funnel-gateway/ports"
)

type Service struct {
	Provider    ports.CheckoutProvider
	Waitlist    ports.WaitlistRepository
	Clock       ports.Clock
	IDGenerator ports.IDGenerator

	PriceID    string
	SuccessURL string
	CancelURL  string

	Logger *slog.Logger
}

// StartCheckout delegates to the payment collaborator to begin a subscription
// purchase. It resolves once the hosted flow is created, not when payment
// completes. Any provider failure, and missing configuration, map to
// ErrCheckoutUnavailable so the caller can present a retry prompt.
func (s Service) StartCheckout(ctx context.Context, email string) (ports.CheckoutSession, error) {
	email = strings.TrimSpace(email)
	if email != "" && !ValidEmail(email) {
		return ports.CheckoutSession{}, domainerrors.ErrInvalidEmail
	}
	if s.Provider == nil || strings.TrimSpace(s.PriceID) == "" {
		return ports.CheckoutSession{}, domainerrors.ErrCheckoutUnavailable
	}

	session, err := s.Provider.CreateSession(ctx, ports.CheckoutInput{
		PriceID:       s.PriceID,
		CustomerEmail: email,
		SuccessURL:    s.SuccessURL,
		CancelURL:     s.CancelURL,
	})
	if err != nil {
		ResolveLogger(s.Logger).Error("checkout session creation failed",
			"event", "checkout_unavailable",
			"module", "contexts/conversion/funnel-gateway",
			"layer", "application",
			"error", err,
		)
		return ports.CheckoutSession{}, domainerrors.ErrCheckoutUnavailable
	}
	return session, nil
}

// JoinWaitlist validates the email shape locally before any store call, then
// persists the entry. Duplicate emails surface as ErrDuplicateEmail without
// retry; any other store failure maps to ErrStoreUnavailable.
func (s Service) JoinWaitlist(ctx context.Context, email string, variantSeen string) (ports.WaitlistEntry, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	variantSeen = strings.TrimSpace(variantSeen)
	if !ValidEmail(email) {
		return ports.WaitlistEntry{}, domainerrors.ErrInvalidEmail
	}
	if s.Waitlist == nil {
		return ports.WaitlistEntry{}, domainerrors.ErrStoreUnavailable
	}

	entryID, err := s.newID(ctx)
	if err != nil {
		return ports.WaitlistEntry{}, domainerrors.ErrStoreUnavailable
	}

	entry, err := s.Waitlist.CreateEntry(ctx, entryID, email, variantSeen, s.now())
	if err != nil {
		if errorsIsDomain(err) {
			return ports.WaitlistEntry{}, err
		}
		ResolveLogger(s.Logger).Error("waitlist write failed",
			"event", "store_unavailable",
			"module", "contexts/conversion/funnel-gateway",
			"layer", "application",
			"error", err,
		)
		return ports.WaitlistEntry{}, domainerrors.ErrStoreUnavailable
	}
	return entry, nil
}

// ValidEmail is the conservative shape check: non-empty local part, one "@",
// and a non-empty domain containing an interior dot.
func ValidEmail(address string) bool {
	address = strings.TrimSpace(address)
	if address == "" || strings.ContainsAny(address, " \t") {
		return false
	}
	at := strings.LastIndex(address, "@")
	if at <= 0 || at == len(address)-1 {
		return false
	}
	domain := address[at+1:]
	dot := strings.Index(domain, ".")
	return dot > 0 && dot < len(domain)-1
}

func errorsIsDomain(err error) bool {
	return errors.Is(err, domainerrors.ErrDuplicateEmail) ||
		errors.Is(err, domainerrors.ErrInvalidEmail) ||
		errors.Is(err, domainerrors.ErrStoreUnavailable)
}

func (s Service) now() time.Time {
	if s.Clock == nil {
		return time.Now().UTC()
	}
	return s.Clock.Now()
}

func (s Service) newID(ctx context.Context) (string, error) {
	if s.IDGenerator == nil {
		return "", domainerrors.ErrStoreUnavailable
	}
	return s.IDGenerator.NewID(ctx)
}
