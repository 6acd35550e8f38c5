package http

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type TrackRequest struct {
	SessionID    string         `json:"session_id"`
	Variant      string         `json:"variant"`
	EventName    string         `json:"event_name"`
	Metadata     map[string]any `json:"metadata,omitempty"`
	ScreenWidth  int            `json:"screen_width,omitempty"`
	ScreenHeight int            `json:"screen_height,omitempty"`
}

type TrackResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}

type SectionViewRequest struct {
	SessionID    string  `json:"session_id"`
	Variant      string  `json:"variant"`
	Section      string  `json:"section"`
	Ratio        float64 `json:"ratio"`
	ScreenWidth  int     `json:"screen_width,omitempty"`
	ScreenHeight int     `json:"screen_height,omitempty"`
}

type SectionViewResponse struct {
	Status string `json:"status"`
	Data   struct {
		Reported bool `json:"reported"`
	} `json:"data"`
	Timestamp string `json:"timestamp"`
}

type EventDTO struct {
	EventID   string         `json:"event_id"`
	EventName string         `json:"event_name"`
	Variant   string         `json:"variant"`
	SessionID string         `json:"session_id"`
	Metadata  map[string]any `json:"metadata"`
	CreatedAt string         `json:"created_at"`
}

type DebugEventsResponse struct {
	Status string `json:"status"`
	Data   struct {
		Events []EventDTO `json:"events"`
	} `json:"data"`
	Timestamp string `json:"timestamp"`
}
