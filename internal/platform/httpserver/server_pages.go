package httpserver

import (
	"net/http"

	"marquee/contexts/landing-experience/variant-service/adapters/cookie"
	variantports "marquee/contexts/landing-experience/variant-service/ports"
	"marquee/internal/platform/web"
)

// resolveVariant runs the full precedence chain (query override, then the
// visitor's cookie, then the configured default) and returns the profile
// to render with.
func (s *Server) resolveVariant(w http.ResponseWriter, r *http.Request) (variantports.VariantProfile, error) {
	prefs := cookie.NewStore(w, r)
	variant := s.variants.Service.Resolve(r.Context(), r.URL.Query().Get("variant"), prefs)
	return s.variants.Service.Profile(variant)
}

func (s *Server) handleLanding(w http.ResponseWriter, r *http.Request) {
	profile, err := s.resolveVariant(w, r)
	if err != nil {
		s.logger.Error("variant profile lookup failed",
			"event", "variant_profile_lookup_failed",
			"module", "internal/platform/httpserver",
			"layer", "platform",
			"error", err,
		)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	tracker := s.tracking.Service.NewTracker(string(profile.ID), clientContext(r))
	tracker.TrackPageView(r.Context(), r.URL.Path, r.Referer())
	if r.URL.Query().Get("checkout") == "cancelled" {
		tracker.TrackCheckoutCancelled(r.Context())
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := web.LandingPage(profile, tracker.SessionID()).Render(w); err != nil {
		s.logger.Error("landing render failed",
			"event", "landing_render_failed",
			"module", "internal/platform/httpserver",
			"layer", "platform",
			"error", err,
		)
	}
}

func (s *Server) handleSuccess(w http.ResponseWriter, r *http.Request) {
	profile, err := s.resolveVariant(w, r)
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	checkoutRef := r.URL.Query().Get("session_id")
	tracker := s.tracking.Service.NewTracker(string(profile.ID), clientContext(r))
	metadata := map[string]any{}
	if checkoutRef != "" {
		metadata["checkout_session"] = checkoutRef
	}
	tracker.TrackCheckoutCompleted(r.Context(), metadata)

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_ = web.SuccessPage(profile, tracker.SessionID(), checkoutRef, s.downloads).Render(w)
}

func (s *Server) handleStyleGuide(w http.ResponseWriter, r *http.Request) {
	profile, err := s.resolveVariant(w, r)
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	tracker := s.tracking.Service.NewTracker(string(profile.ID), clientContext(r))

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_ = web.StyleGuide(s.variants.Service.Registry.Profiles(), profile, tracker.SessionID()).Render(w)
}
