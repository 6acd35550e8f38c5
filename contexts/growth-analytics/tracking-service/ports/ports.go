package ports

import (
	"context"
	"time"
)

// EventName is one of the closed set of funnel events.
type EventName string

const (
	EventPageView            EventName = "page_view"
	EventCTAClick            EventName = "cta_click"
	EventSectionView         EventName = "section_view"
	EventContactWidgetOpen   EventName = "contact_widget_open"
	EventContactChannelClick EventName = "contact_channel_click"
	EventWaitlistSignup      EventName = "waitlist_signup"
	EventCheckoutInitiated   EventName = "checkout_initiated"
	EventCheckoutCompleted   EventName = "checkout_completed"
	EventCheckoutCancelled   EventName = "checkout_cancelled"
)

var knownEvents = map[EventName]struct{}{
	EventPageView:            {},
	EventCTAClick:            {},
	EventSectionView:         {},
	EventContactWidgetOpen:   {},
	EventContactChannelClick: {},
	EventWaitlistSignup:      {},
	EventCheckoutInitiated:   {},
	EventCheckoutCompleted:   {},
	EventCheckoutCancelled:   {},
}

func KnownEvent(raw string) (EventName, bool) {
	name := EventName(raw)
	_, ok := knownEvents[name]
	return name, ok
}

// ClientContext is the client metadata stamped onto every event.
type ClientContext struct {
	UserAgent    string
	ScreenWidth  int
	ScreenHeight int
}

// TrackedEvent is an immutable analytics record. It is assembled once at the
// moment of the triggering action, handed to the sink and never mutated.
type TrackedEvent struct {
	EventID   string
	EventName EventName
	Variant   string
	SessionID string
	Metadata  map[string]any
	CreatedAt time.Time
}

type Clock interface {
	Now() time.Time
}

type IDGenerator interface {
	NewID(ctx context.Context) (string, error)
}

// EventSink durably stores tracked events. Writes are fire-and-forget;
// failures must never surface to the funnel.
type EventSink interface {
	Insert(ctx context.Context, event TrackedEvent) error
}

// EventFeed fans assembled events out in-process for debug inspection.
type EventFeed interface {
	Publish(ctx context.Context, event TrackedEvent) error
}
