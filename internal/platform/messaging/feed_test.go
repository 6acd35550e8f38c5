package messaging

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"marquee/contexts/growth-analytics/tracking-service/ports"
)

func TestFeedDeliversToSubscribers(t *testing.T) {
	feed := NewFeed(slog.New(slog.NewTextHandler(io.Discard, nil)))
	ch, cancel := feed.Subscribe(1)
	defer cancel()

	err := feed.Publish(context.Background(), ports.TrackedEvent{
		EventID:   "evt-1",
		EventName: ports.EventPageView,
		SessionID: "s-1",
		Variant:   "modern",
	})
	if err != nil {
		t.Fatalf("publish: %v", err)
	}

	select {
	case envelope := <-ch:
		if envelope.EventName != "page_view" {
			t.Fatalf("expected page_view, got %q", envelope.EventName)
		}
		if envelope.SessionID != "s-1" {
			t.Fatalf("expected session s-1, got %q", envelope.SessionID)
		}
	default:
		t.Fatal("expected a buffered envelope")
	}
}

func TestFeedDropsWhenSubscriberIsFull(t *testing.T) {
	feed := NewFeed(slog.New(slog.NewTextHandler(io.Discard, nil)))
	ch, cancel := feed.Subscribe(1)
	defer cancel()

	for i := 0; i < 3; i++ {
		if err := feed.Publish(context.Background(), ports.TrackedEvent{EventID: "evt"}); err != nil {
			t.Fatalf("publish: %v", err)
		}
	}

	// Only the first envelope fits; the rest are dropped, not blocked on.
	received := 0
	for {
		select {
		case <-ch:
			received++
			continue
		default:
		}
		break
	}
	if received != 1 {
		t.Fatalf("expected 1 buffered envelope, got %d", received)
	}
}

func TestFeedCancelRemovesSubscriber(t *testing.T) {
	feed := NewFeed(nil)
	ch, cancel := feed.Subscribe(1)
	cancel()

	if err := feed.Publish(context.Background(), ports.TrackedEvent{EventID: "evt"}); err != nil {
		t.Fatalf("publish: %v", err)
	}
	select {
	case <-ch:
		t.Fatal("expected no delivery after cancel")
	default:
	}
}
