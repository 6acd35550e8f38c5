package http

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type JoinWaitlistRequest struct {
	Email     string `json:"email"`
	Variant   string `json:"variant"`
	SessionID string `json:"session_id,omitempty"`
}

type WaitlistEntryDTO struct {
	EntryID     string `json:"entry_id"`
	Email       string `json:"email"`
	VariantSeen string `json:"variant_seen"`
	CreatedAt   string `json:"created_at"`
}

type JoinWaitlistResponse struct {
	Status string `json:"status"`
	Data   struct {
		Entry WaitlistEntryDTO `json:"entry"`
	} `json:"data"`
	Timestamp string `json:"timestamp"`
}

type StartCheckoutRequest struct {
	Email     string `json:"email,omitempty"`
	Variant   string `json:"variant,omitempty"`
	SessionID string `json:"session_id,omitempty"`
}

type StartCheckoutResponse struct {
	Status string `json:"status"`
	Data   struct {
		SessionRef  string `json:"session_ref"`
		RedirectURL string `json:"redirect_url"`
	} `json:"data"`
	Timestamp string `json:"timestamp"`
}
