package httpserver

import (
	"encoding/json"
	"net/http"
	"testing"

	funnelhttp "marquee/contexts/conversion/funnel-gateway/transport/http"
)

func TestJoinWaitlistSuccess(t *testing.T) {
	server := newTestServer()
	rr := postJSON(t, server, "/api/waitlist", `{"email":"maker@example.com","variant":"modern","session_id":"s-1"}`)
	if rr.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d body=%s", rr.Code, rr.Body.String())
	}

	var resp funnelhttp.JoinWaitlistResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Data.Entry.Email != "maker@example.com" {
		t.Fatalf("expected normalized email, got %q", resp.Data.Entry.Email)
	}
	if resp.Data.Entry.VariantSeen != "modern" {
		t.Fatalf("expected variant_seen modern, got %q", resp.Data.Entry.VariantSeen)
	}
}

func TestJoinWaitlistRejectsInvalidEmail(t *testing.T) {
	server := newTestServer()
	rr := postJSON(t, server, "/api/waitlist", `{"email":"not-an-email","variant":"modern"}`)
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d body=%s", rr.Code, rr.Body.String())
	}

	var errResp funnelhttp.ErrorResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &errResp); err != nil {
		t.Fatalf("decode error response: %v", err)
	}
	if errResp.Code != "invalid_email" {
		t.Fatalf("expected invalid_email code, got %q", errResp.Code)
	}
}

func TestJoinWaitlistRejectsDuplicateEmail(t *testing.T) {
	server := newTestServer()

	first := postJSON(t, server, "/api/waitlist", `{"email":"maker@example.com","variant":"modern"}`)
	if first.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d body=%s", first.Code, first.Body.String())
	}

	second := postJSON(t, server, "/api/waitlist", `{"email":"Maker@Example.com","variant":"modern"}`)
	if second.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d body=%s", second.Code, second.Body.String())
	}

	var errResp funnelhttp.ErrorResponse
	if err := json.Unmarshal(second.Body.Bytes(), &errResp); err != nil {
		t.Fatalf("decode error response: %v", err)
	}
	if errResp.Code != "duplicate_email" {
		t.Fatalf("expected duplicate_email code, got %q", errResp.Code)
	}
}

func TestJoinWaitlistStoreFailure(t *testing.T) {
	server := newTestServer()
	server.funnel.Store.FailStore()

	rr := postJSON(t, server, "/api/waitlist", `{"email":"maker@example.com","variant":"modern"}`)
	if rr.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d body=%s", rr.Code, rr.Body.String())
	}

	var errResp funnelhttp.ErrorResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &errResp); err != nil {
		t.Fatalf("decode error response: %v", err)
	}
	if errResp.Code != "store_unavailable" {
		t.Fatalf("expected store_unavailable code, got %q", errResp.Code)
	}
}

func TestStartCheckoutReturnsRedirect(t *testing.T) {
	server := newTestServer()
	rr := postJSON(t, server, "/api/checkout", `{"session_id":"s-1","variant":"modern"}`)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", rr.Code, rr.Body.String())
	}

	var resp funnelhttp.StartCheckoutResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Data.RedirectURL == "" {
		t.Fatal("expected a redirect URL")
	}
	if resp.Data.SessionRef == "" {
		t.Fatal("expected a session reference")
	}
}

func TestStartCheckoutWithEmptyBody(t *testing.T) {
	server := newTestServer()
	rr := postJSON(t, server, "/api/checkout", "")
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", rr.Code, rr.Body.String())
	}
}

func TestStartCheckoutProviderFailure(t *testing.T) {
	server := newTestServer()
	server.funnel.Store.FailCheckout()

	rr := postJSON(t, server, "/api/checkout", `{}`)
	if rr.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d body=%s", rr.Code, rr.Body.String())
	}

	var errResp funnelhttp.ErrorResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &errResp); err != nil {
		t.Fatalf("decode error response: %v", err)
	}
	if errResp.Code != "checkout_unavailable" {
		t.Fatalf("expected checkout_unavailable code, got %q", errResp.Code)
	}
}
