package ports

import (
	"context"
	"time"
)

// WaitlistEntry is a persisted record of interest-registration by email.
type WaitlistEntry struct {
	EntryID     string
	Email       string
	VariantSeen string
	CreatedAt   time.Time
}

type CheckoutInput struct {
	PriceID       string
	CustomerEmail string
	SuccessURL    string
	CancelURL     string
}

// CheckoutSession is a created hosted-checkout flow. The visitor is
// redirected to RedirectURL; completion is observed separately via the
// success destination carrying the opaque session reference.
type CheckoutSession struct {
	SessionRef  string
	RedirectURL string
}

// CheckoutProvider begins a subscription purchase with the external payment
// collaborator.
type CheckoutProvider interface {
	CreateSession(ctx context.Context, input CheckoutInput) (CheckoutSession, error)
}

// WaitlistRepository persists waitlist entries. Implementations report a
// uniqueness violation on email as ErrDuplicateEmail.
type WaitlistRepository interface {
	CreateEntry(ctx context.Context, entryID string, email string, variantSeen string, now time.Time) (WaitlistEntry, error)
}

type Clock interface {
	Now() time.Time
}

type IDGenerator interface {
	NewID(ctx context.Context) (string, error)
}
