package httpadapter

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"marquee/contexts/growth-analytics/tracking-service/application"
	domainerrors "marquee/contexts/growth-analytics/tracking-service/domain/errors"
	"marquee/contexts/growth-analytics/tracking-service/ports"
	httptransport "marquee/contexts/growth-analytics/tracking-service/transport/http"
)

type Handler struct {
	Service application.Service
	Watches *application.Watches
	Logger  *slog.Logger
}

// TrackHandler ingests one beacon event. The closed event-name set is
// enforced here so arbitrary names never reach the sink.
func (h Handler) TrackHandler(
	ctx context.Context,
	userAgent string,
	req httptransport.TrackRequest,
) (httptransport.TrackResponse, error) {
	name, ok := ports.KnownEvent(strings.TrimSpace(req.EventName))
	if !ok {
		return httptransport.TrackResponse{}, domainerrors.ErrUnknownEvent
	}
	if strings.TrimSpace(req.SessionID) == "" {
		return httptransport.TrackResponse{}, domainerrors.ErrInvalidRequest
	}

	tracker := h.Service.AdoptTracker(req.SessionID, req.Variant, ports.ClientContext{
		UserAgent:    userAgent,
		ScreenWidth:  req.ScreenWidth,
		ScreenHeight: req.ScreenHeight,
	})
	tracker.Track(ctx, name, req.Metadata)

	return httptransport.TrackResponse{
		Status:    "accepted",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}, nil
}

// SectionViewHandler ingests one visibility report and applies the
// once-per-section policy.
func (h Handler) SectionViewHandler(
	ctx context.Context,
	userAgent string,
	req httptransport.SectionViewRequest,
) (httptransport.SectionViewResponse, error) {
	if strings.TrimSpace(req.SessionID) == "" || strings.TrimSpace(req.Section) == "" {
		return httptransport.SectionViewResponse{}, domainerrors.ErrInvalidRequest
	}

	tracker := h.Service.AdoptTracker(req.SessionID, req.Variant, ports.ClientContext{
		UserAgent:    userAgent,
		ScreenWidth:  req.ScreenWidth,
		ScreenHeight: req.ScreenHeight,
	})
	watch := h.Watches.For(tracker.SessionID())
	reported := watch.Observe(ctx, tracker, strings.TrimSpace(req.Section), req.Ratio)

	resp := httptransport.SectionViewResponse{
		Status:    "accepted",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
	resp.Data.Reported = reported
	return resp, nil
}

func MapEvents(events []ports.TrackedEvent) []httptransport.EventDTO {
	dtos := make([]httptransport.EventDTO, 0, len(events))
	for _, event := range events {
		dtos = append(dtos, httptransport.EventDTO{
			EventID:   event.EventID,
			EventName: string(event.EventName),
			Variant:   event.Variant,
			SessionID: event.SessionID,
			Metadata:  event.Metadata,
			CreatedAt: event.CreatedAt.Format(time.RFC3339),
		})
	}
	return dtos
}
