package httpserver

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	funnelerrors "marquee/contexts/conversion/funnel-gateway/domain/errors"
	funnelhttp "marquee/contexts/conversion/funnel-gateway/transport/http"
)

func writeFunnelError(w http.ResponseWriter, status int, code string, message string) {
	writeJSON(w, status, funnelhttp.ErrorResponse{Code: code, Message: message})
}

func writeFunnelDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, funnelerrors.ErrInvalidEmail):
		writeFunnelError(w, http.StatusBadRequest, "invalid_email", err.Error())
	case errors.Is(err, funnelerrors.ErrDuplicateEmail):
		writeFunnelError(w, http.StatusConflict, "duplicate_email", err.Error())
	case errors.Is(err, funnelerrors.ErrStoreUnavailable):
		writeFunnelError(w, http.StatusServiceUnavailable, "store_unavailable", err.Error())
	case errors.Is(err, funnelerrors.ErrCheckoutUnavailable):
		writeFunnelError(w, http.StatusServiceUnavailable, "checkout_unavailable", err.Error())
	default:
		writeFunnelError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}

func (s *Server) handleJoinWaitlist(w http.ResponseWriter, r *http.Request) {
	var req funnelhttp.JoinWaitlistRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeFunnelError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}
	if strings.TrimSpace(req.Variant) == "" {
		req.Variant = string(s.variants.Service.Default)
	}

	resp, err := s.funnel.Handler.JoinWaitlistHandler(r.Context(), req)
	if err != nil {
		writeFunnelDomainError(w, err)
		return
	}

	if strings.TrimSpace(req.SessionID) != "" {
		tracker := s.tracking.Service.AdoptTracker(req.SessionID, req.Variant, clientContext(r))
		tracker.TrackWaitlistSignup(r.Context(), resp.Data.Entry.Email)
	}
	writeJSON(w, http.StatusCreated, resp)
}

func (s *Server) handleStartCheckout(w http.ResponseWriter, r *http.Request) {
	// The body is optional: checkout does not require an email up front.
	var req funnelhttp.StartCheckoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		writeFunnelError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}

	resp, err := s.funnel.Handler.StartCheckoutHandler(r.Context(), req)
	if err != nil {
		writeFunnelDomainError(w, err)
		return
	}

	if strings.TrimSpace(req.SessionID) != "" {
		variant := req.Variant
		if strings.TrimSpace(variant) == "" {
			variant = string(s.variants.Service.Default)
		}
		tracker := s.tracking.Service.AdoptTracker(req.SessionID, variant, clientContext(r))
		tracker.TrackCheckoutInitiated(r.Context())
	}
	writeJSON(w, http.StatusOK, resp)
}
