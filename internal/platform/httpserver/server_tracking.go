package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	httpadapter "marquee/contexts/growth-analytics/tracking-service/adapters/http"
	trackingerrors "marquee/contexts/growth-analytics/tracking-service/domain/errors"
	trackinghttp "marquee/contexts/growth-analytics/tracking-service/transport/http"
)

func writeTrackingError(w http.ResponseWriter, status int, code string, message string) {
	writeJSON(w, status, trackinghttp.ErrorResponse{Code: code, Message: message})
}

func writeTrackingDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, trackingerrors.ErrUnknownEvent):
		writeTrackingError(w, http.StatusBadRequest, "unknown_event", err.Error())
	case errors.Is(err, trackingerrors.ErrInvalidRequest):
		writeTrackingError(w, http.StatusBadRequest, "invalid_request", err.Error())
	default:
		writeTrackingError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}

func (s *Server) handleTrack(w http.ResponseWriter, r *http.Request) {
	var req trackinghttp.TrackRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeTrackingError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}

	resp, err := s.tracking.Handler.TrackHandler(r.Context(), r.UserAgent(), req)
	if err != nil {
		writeTrackingDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusAccepted, resp)
}

func (s *Server) handleSectionView(w http.ResponseWriter, r *http.Request) {
	var req trackinghttp.SectionViewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeTrackingError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}

	resp, err := s.tracking.Handler.SectionViewHandler(r.Context(), r.UserAgent(), req)
	if err != nil {
		writeTrackingDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusAccepted, resp)
}

// handleDebugEvents dumps the in-memory sink. Registered unconditionally
// but answers 404 unless the memory backend is active.
func (s *Server) handleDebugEvents(w http.ResponseWriter, r *http.Request) {
	if !s.debugEvents || s.tracking.Store == nil {
		writeTrackingError(w, http.StatusNotFound, "not_found", "event inspection is only available on the memory backend")
		return
	}

	resp := trackinghttp.DebugEventsResponse{
		Status:    "success",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
	resp.Data.Events = httpadapter.MapEvents(s.tracking.Store.Events())
	writeJSON(w, http.StatusOK, resp)
}
