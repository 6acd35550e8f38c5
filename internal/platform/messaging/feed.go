package messaging

import (
	"context"
	"log/slog"
	"sync"

	"marquee/contexts/growth-analytics/tracking-service/ports"
	"marquee/internal/shared/events"
)

// Feed is an in-process fan-out of analytics envelopes. The tracker publishes
// every assembled event; subscribers are the debug inspection surface and
// tests. Delivery is best-effort: a full subscriber buffer drops the event.
type Feed struct {
	mu          sync.RWMutex
	subscribers []chan events.Envelope
	logger      *slog.Logger
}

func NewFeed(logger *slog.Logger) *Feed {
	if logger == nil {
		logger = slog.Default()
	}
	return &Feed{logger: logger}
}

func (f *Feed) Publish(ctx context.Context, event ports.TrackedEvent) error {
	envelope := events.Envelope{
		EventID:       event.EventID,
		EventName:     string(event.EventName),
		Variant:       event.Variant,
		SessionID:     event.SessionID,
		OccurredAtUTC: event.CreatedAt,
		Metadata:      event.Metadata,
	}

	f.mu.RLock()
	subs := append([]chan events.Envelope(nil), f.subscribers...)
	f.mu.RUnlock()

	for _, sub := range subs {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case sub <- envelope:
		default:
			f.logger.Warn("dropping event for slow subscriber",
				"event", "feed_publish_drop",
				"module", "internal/platform/messaging",
				"layer", "platform",
				"event_id", envelope.EventID,
			)
		}
	}
	return nil
}

// Subscribe registers a buffered listener. The returned cancel func removes
// it; the channel is not closed so late publishes stay safe.
func (f *Feed) Subscribe(buffer int) (<-chan events.Envelope, func()) {
	if buffer <= 0 {
		buffer = 128
	}
	ch := make(chan events.Envelope, buffer)

	f.mu.Lock()
	f.subscribers = append(f.subscribers, ch)
	f.mu.Unlock()

	cancel := func() {
		f.mu.Lock()
		defer f.mu.Unlock()
		for i, sub := range f.subscribers {
			if sub == ch {
				f.subscribers = append(f.subscribers[:i], f.subscribers[i+1:]...)
				break
			}
		}
	}
	return ch, cancel
}
