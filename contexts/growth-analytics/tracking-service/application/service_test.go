package application

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"marquee/contexts/growth-analytics/tracking-service/adapters/memory"
	"marquee/contexts/growth-analytics/tracking-service/ports"
)

type captureSink struct {
	ch chan ports.TrackedEvent
}

func newCaptureSink() captureSink {
	return captureSink{ch: make(chan ports.TrackedEvent, 16)}
}

func (c captureSink) Insert(_ context.Context, event ports.TrackedEvent) error {
	c.ch <- event
	return nil
}

func (c captureSink) next(t *testing.T) ports.TrackedEvent {
	t.Helper()
	select {
	case event := <-c.ch:
		return event
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for tracked event")
		return ports.TrackedEvent{}
	}
}

type failingSink struct{}

func (failingSink) Insert(context.Context, ports.TrackedEvent) error {
	return errors.New("sink offline")
}

func TestTrackAssemblesSessionTimestampAndVariant(t *testing.T) {
	sink := newCaptureSink()
	store := memory.NewStore()
	service := Service{Sink: sink, Clock: store, IDGenerator: store}

	tracker := service.NewTracker("modern", ports.ClientContext{
		UserAgent:    "test-agent",
		ScreenWidth:  1920,
		ScreenHeight: 1080,
	})
	tracker.Track(context.Background(), ports.EventPageView, map[string]any{})

	event := sink.next(t)
	if event.EventName != ports.EventPageView {
		t.Fatalf("expected page_view, got %s", event.EventName)
	}
	sessionID, _ := event.Metadata["session_id"].(string)
	if sessionID == "" {
		t.Fatal("expected non-empty session id in metadata")
	}
	if sessionID != tracker.SessionID() {
		t.Fatalf("metadata session id %s does not match tracker session %s", sessionID, tracker.SessionID())
	}
	stamp, _ := event.Metadata["timestamp"].(string)
	if _, err := time.Parse(time.RFC3339, stamp); err != nil {
		t.Fatalf("expected RFC3339 timestamp, got %q: %v", stamp, err)
	}
	if event.Metadata["variant"] != "modern" || event.Variant != "modern" {
		t.Fatalf("expected event tagged with active variant, got %v / %s", event.Metadata["variant"], event.Variant)
	}
	if event.Metadata["user_agent"] != "test-agent" {
		t.Fatalf("expected user agent in metadata, got %v", event.Metadata["user_agent"])
	}
	if event.Metadata["screen_width"] != 1920 || event.Metadata["screen_height"] != 1080 {
		t.Fatalf("expected screen dimensions in metadata, got %v x %v",
			event.Metadata["screen_width"], event.Metadata["screen_height"])
	}
}

func TestTrackMergesCallerMetadata(t *testing.T) {
	sink := newCaptureSink()
	service := Service{Sink: sink}

	tracker := service.NewTracker("premium", ports.ClientContext{})
	tracker.TrackCTAClick(context.Background(), "Start subscription", "pricing")

	event := sink.next(t)
	if event.EventName != ports.EventCTAClick {
		t.Fatalf("expected cta_click, got %s", event.EventName)
	}
	if event.Metadata["button_text"] != "Start subscription" || event.Metadata["location"] != "pricing" {
		t.Fatalf("expected caller metadata preserved, got %v", event.Metadata)
	}
}

func TestSetVariantRetagsSubsequentEvents(t *testing.T) {
	sink := newCaptureSink()
	service := Service{Sink: sink}

	tracker := service.NewTracker("modern", ports.ClientContext{})
	tracker.SetVariant("modern_dark")
	tracker.TrackCheckoutInitiated(context.Background())

	event := sink.next(t)
	if event.Variant != "modern_dark" {
		t.Fatalf("expected retagged variant modern_dark, got %s", event.Variant)
	}
}

func TestSinkFailureIsSwallowed(t *testing.T) {
	service := Service{Sink: failingSink{}}

	tracker := service.NewTracker("modern", ports.ClientContext{})
	// Track must not panic or surface the sink error to the caller.
	tracker.Track(context.Background(), ports.EventWaitlistSignup, map[string]any{"email": "a@b.co"})
	time.Sleep(50 * time.Millisecond)
}

func TestSessionIDShape(t *testing.T) {
	service := Service{}
	tracker := service.NewTracker("modern", ports.ClientContext{})

	parts := strings.SplitN(tracker.SessionID(), "-", 2)
	if len(parts) != 2 {
		t.Fatalf("expected timestamp-suffix session id, got %s", tracker.SessionID())
	}
	if len(parts[1]) != 9 {
		t.Fatalf("expected 9 character suffix, got %q", parts[1])
	}
}

func TestSessionsAreUniquePerPageLoad(t *testing.T) {
	service := Service{}
	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		id := service.NewTracker("modern", ports.ClientContext{}).SessionID()
		if seen[id] {
			t.Fatalf("duplicate session id %s", id)
		}
		seen[id] = true
	}
}

func TestAdoptTrackerKeepsBeaconSession(t *testing.T) {
	service := Service{}
	tracker := service.AdoptTracker("1700000000000-abcdefghi", "modern", ports.ClientContext{})
	if tracker.SessionID() != "1700000000000-abcdefghi" {
		t.Fatalf("expected adopted session id, got %s", tracker.SessionID())
	}
}

func TestKnownEventRejectsNamesOutsideClosedSet(t *testing.T) {
	if _, ok := ports.KnownEvent("password_typed"); ok {
		t.Fatal("expected unknown event name to be rejected")
	}
	for _, name := range []string{
		"page_view", "cta_click", "section_view", "contact_widget_open",
		"contact_channel_click", "waitlist_signup", "checkout_initiated",
		"checkout_completed", "checkout_cancelled",
	} {
		if _, ok := ports.KnownEvent(name); !ok {
			t.Fatalf("expected %s to be a known event", name)
		}
	}
}
