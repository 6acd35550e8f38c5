package events

import "time"

// Envelope is the shared analytics event shape carried on the in-process
// feed. Field names align with the analytics_events sink columns.
type Envelope struct {
	EventID       string         `json:"event_id"`
	EventName     string         `json:"event_name"`
	Variant       string         `json:"variant"`
	SessionID     string         `json:"session_id"`
	OccurredAtUTC time.Time      `json:"occurred_at_utc"`
	Metadata      map[string]any `json:"metadata"`
}
