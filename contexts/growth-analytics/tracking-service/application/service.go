package application

import (
	"context"
	"log/slog"
	"math/rand/v2"
	"strconv"
	"strings"
	"sync"
	"time"

	"marquee/contexts/growth-analytics/tracking-service/ports"
)

type Service struct {
	Sink        ports.EventSink
	Feed        ports.EventFeed
	Clock       ports.Clock
	IDGenerator ports.IDGenerator
	Logger      *slog.Logger
}

// NewTracker mints the session for one page load and binds it to the resolved
// variant and client context. The session is never persisted across loads.
func (s Service) NewTracker(variant string, client ports.ClientContext) *Tracker {
	return &Tracker{
		service:   s,
		sessionID: newSessionID(s.now()),
		variant:   strings.TrimSpace(variant),
		client:    client,
	}
}

// AdoptTracker rebinds an existing session carried by a beacon request.
func (s Service) AdoptTracker(sessionID string, variant string, client ports.ClientContext) *Tracker {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return s.NewTracker(variant, client)
	}
	return &Tracker{
		service:   s,
		sessionID: sessionID,
		variant:   strings.TrimSpace(variant),
		client:    client,
	}
}

// Tracker tags every tracked event with one page load's session, variant and
// client context.
type Tracker struct {
	mu      sync.Mutex
	service Service
	client  ports.ClientContext

	sessionID string
	variant   string
}

func (t *Tracker) SessionID() string {
	return t.sessionID
}

func (t *Tracker) Variant() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.variant
}

// SetVariant updates the tagging context for subsequent events.
func (t *Tracker) SetVariant(variant string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.variant = strings.TrimSpace(variant)
}

// Track assembles the event and forwards it to the sink, fire-and-forget.
// Sink failures are logged and swallowed; tracking must never block or break
// the funnel.
func (t *Tracker) Track(ctx context.Context, name ports.EventName, metadata map[string]any) {
	event := t.Assemble(name, metadata)
	go t.service.deliver(context.WithoutCancel(ctx), event)
}

// Assemble builds the immutable record: caller metadata merged with session
// id, RFC3339 timestamp, user agent, screen dimensions and the active
// variant.
func (t *Tracker) Assemble(name ports.EventName, metadata map[string]any) ports.TrackedEvent {
	now := t.service.now()

	merged := make(map[string]any, len(metadata)+6)
	for key, value := range metadata {
		merged[key] = value
	}
	merged["session_id"] = t.sessionID
	merged["timestamp"] = now.Format(time.RFC3339)
	merged["user_agent"] = t.client.UserAgent
	merged["screen_width"] = t.client.ScreenWidth
	merged["screen_height"] = t.client.ScreenHeight
	merged["variant"] = t.Variant()

	eventID, err := t.service.newID()
	if err != nil {
		t.service.logger().Warn("event id generation failed",
			"event", "tracking_failure",
			"module", "contexts/growth-analytics/tracking-service",
			"layer", "application",
			"error", err,
		)
	}

	return ports.TrackedEvent{
		EventID:   eventID,
		EventName: name,
		Variant:   t.Variant(),
		SessionID: t.sessionID,
		Metadata:  merged,
		CreatedAt: now,
	}
}

func (t *Tracker) TrackPageView(ctx context.Context, path string, referrer string) {
	t.Track(ctx, ports.EventPageView, map[string]any{
		"path":     path,
		"referrer": referrer,
	})
}

func (t *Tracker) TrackCTAClick(ctx context.Context, buttonText string, location string) {
	t.Track(ctx, ports.EventCTAClick, map[string]any{
		"button_text": buttonText,
		"location":    location,
	})
}

func (t *Tracker) TrackSectionView(ctx context.Context, sectionName string) {
	t.Track(ctx, ports.EventSectionView, map[string]any{
		"section_name": sectionName,
	})
}

func (t *Tracker) TrackContactWidgetOpen(ctx context.Context) {
	t.Track(ctx, ports.EventContactWidgetOpen, nil)
}

func (t *Tracker) TrackContactChannel(ctx context.Context, channel string) {
	t.Track(ctx, ports.EventContactChannelClick, map[string]any{
		"channel": channel,
	})
}

func (t *Tracker) TrackWaitlistSignup(ctx context.Context, email string) {
	t.Track(ctx, ports.EventWaitlistSignup, map[string]any{
		"email": email,
	})
}

func (t *Tracker) TrackCheckoutInitiated(ctx context.Context) {
	t.Track(ctx, ports.EventCheckoutInitiated, nil)
}

func (t *Tracker) TrackCheckoutCompleted(ctx context.Context, metadata map[string]any) {
	t.Track(ctx, ports.EventCheckoutCompleted, metadata)
}

func (t *Tracker) TrackCheckoutCancelled(ctx context.Context) {
	t.Track(ctx, ports.EventCheckoutCancelled, nil)
}

func (s Service) deliver(ctx context.Context, event ports.TrackedEvent) {
	if s.Feed != nil {
		if err := s.Feed.Publish(ctx, event); err != nil {
			s.logger().Warn("event feed publish failed",
				"event", "tracking_failure",
				"module", "contexts/growth-analytics/tracking-service",
				"layer", "application",
				"event_name", string(event.EventName),
				"error", err,
			)
		}
	}
	if s.Sink == nil {
		return
	}
	if err := s.Sink.Insert(ctx, event); err != nil {
		s.logger().Error("analytics event dropped",
			"event", "tracking_failure",
			"module", "contexts/growth-analytics/tracking-service",
			"layer", "application",
			"event_name", string(event.EventName),
			"session_id", event.SessionID,
			"error", err,
		)
	}
}

func (s Service) now() time.Time {
	if s.Clock == nil {
		return time.Now().UTC()
	}
	return s.Clock.Now()
}

func (s Service) newID() (string, error) {
	if s.IDGenerator == nil {
		return newSessionID(s.now()), nil
	}
	return s.IDGenerator.NewID(context.Background())
}

func (s Service) logger() *slog.Logger {
	return ResolveLogger(s.Logger)
}

const base36 = "0123456789abcdefghijklmnopqrstuvwxyz"

// newSessionID composes uniqueness from a timestamp plus a random suffix,
// matching the shape `<unix-millis>-<9 base36 chars>`.
func newSessionID(now time.Time) string {
	suffix := make([]byte, 9)
	for i := range suffix {
		suffix[i] = base36[rand.IntN(len(base36))]
	}
	return strconv.FormatInt(now.UnixMilli(), 10) + "-" + string(suffix)
}
