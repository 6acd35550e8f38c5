package hosted

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"marquee/contexts/conversion/funnel-gateway/ports"
)

// Provider creates hosted-checkout sessions against the configured payment
// endpoint. The endpoint owns card handling; this side only starts the flow
// and hands the visitor the redirect URL.
type Provider struct {
	Endpoint string
	Client   *http.Client
	Logger   *slog.Logger
}

func NewProvider(endpoint string, logger *slog.Logger) *Provider {
	if logger == nil {
		logger = slog.Default()
	}
	return &Provider{
		Endpoint: endpoint,
		Client:   &http.Client{Timeout: 10 * time.Second},
		Logger:   logger,
	}
}

type sessionRequest struct {
	PriceID       string `json:"price_id"`
	Quantity      int    `json:"quantity"`
	Mode          string `json:"mode"`
	SuccessURL    string `json:"success_url"`
	CancelURL     string `json:"cancel_url"`
	CustomerEmail string `json:"customer_email,omitempty"`
}

type sessionResponse struct {
	SessionRef  string `json:"session_ref"`
	RedirectURL string `json:"redirect_url"`
}

func (p *Provider) CreateSession(ctx context.Context, input ports.CheckoutInput) (ports.CheckoutSession, error) {
	if p.Endpoint == "" {
		return ports.CheckoutSession{}, errors.New("checkout endpoint is not configured")
	}

	payload, err := json.Marshal(sessionRequest{
		PriceID:       input.PriceID,
		Quantity:      1,
		Mode:          "subscription",
		SuccessURL:    input.SuccessURL,
		CancelURL:     input.CancelURL,
		CustomerEmail: input.CustomerEmail,
	})
	if err != nil {
		return ports.CheckoutSession{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.Endpoint, bytes.NewReader(payload))
	if err != nil {
		return ports.CheckoutSession{}, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.Client.Do(req)
	if err != nil {
		return ports.CheckoutSession{}, err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return ports.CheckoutSession{}, fmt.Errorf("checkout endpoint returned status %d", resp.StatusCode)
	}

	var body sessionResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return ports.CheckoutSession{}, err
	}
	if body.RedirectURL == "" {
		return ports.CheckoutSession{}, errors.New("checkout endpoint returned no redirect url")
	}
	return ports.CheckoutSession{
		SessionRef:  body.SessionRef,
		RedirectURL: body.RedirectURL,
	}, nil
}
