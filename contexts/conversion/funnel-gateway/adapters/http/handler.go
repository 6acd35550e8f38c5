package httpadapter

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"marquee/contexts/conversion/funnel-gateway/application"
	httptransport "marquee/contexts/conversion/funnel-gateway/transport/http"
)

type Handler struct {
	Service application.Service
	Logger  *slog.Logger
}

func (h Handler) JoinWaitlistHandler(
	ctx context.Context,
	req httptransport.JoinWaitlistRequest,
) (httptransport.JoinWaitlistResponse, error) {
	entry, err := h.Service.JoinWaitlist(ctx, strings.TrimSpace(req.Email), strings.TrimSpace(req.Variant))
	if err != nil {
		return httptransport.JoinWaitlistResponse{}, err
	}

	resp := httptransport.JoinWaitlistResponse{
		Status:    "success",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
	resp.Data.Entry = httptransport.WaitlistEntryDTO{
		EntryID:     entry.EntryID,
		Email:       entry.Email,
		VariantSeen: entry.VariantSeen,
		CreatedAt:   entry.CreatedAt.Format(time.RFC3339),
	}
	return resp, nil
}

func (h Handler) StartCheckoutHandler(
	ctx context.Context,
	req httptransport.StartCheckoutRequest,
) (httptransport.StartCheckoutResponse, error) {
	session, err := h.Service.StartCheckout(ctx, strings.TrimSpace(req.Email))
	if err != nil {
		return httptransport.StartCheckoutResponse{}, err
	}

	resp := httptransport.StartCheckoutResponse{
		Status:    "success",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
	resp.Data.SessionRef = session.SessionRef
	resp.Data.RedirectURL = session.RedirectURL
	return resp, nil
}
