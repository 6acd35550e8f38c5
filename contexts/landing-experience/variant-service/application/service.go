package application

import (
	"context"
	"log/slog"
	"strings"

	"marquee/contexts/landing-experience/variant-service/ports"
)

// PreferenceKey is the single persisted-state key holding the last-resolved
// variant identifier.
const PreferenceKey = "landing_variant"

type Service struct {
	Registry *Registry
	Default  ports.Variant
	Logger   *slog.Logger
}

// Resolve picks the active variant for one page view: explicit query value,
// else stored preference, else the default. An explicit supported query value
// overwrites the stored preference. A stored value is always re-validated
// against the supported set; a stale value is ignored for rendering and for
// analytics tagging alike. Resolution never fails.
func (s Service) Resolve(ctx context.Context, queryValue string, prefs ports.PreferenceStore) ports.Variant {
	logger := ResolveLogger(s.Logger)

	queryValue = strings.TrimSpace(queryValue)
	if queryValue != "" {
		if variant, ok := s.Registry.Lookup(queryValue); ok {
			if prefs != nil {
				if err := prefs.Put(ctx, PreferenceKey, string(variant)); err != nil {
					logger.Warn("variant preference write failed",
						"event", "variant_preference_write_failed",
						"module", "contexts/landing-experience/variant-service",
						"layer", "application",
						"error", err,
					)
				}
			}
			return variant
		}
	}

	if prefs != nil {
		stored, ok, err := prefs.Get(ctx, PreferenceKey)
		if err != nil {
			logger.Warn("variant preference read failed",
				"event", "variant_preference_read_failed",
				"module", "contexts/landing-experience/variant-service",
				"layer", "application",
				"error", err,
			)
		} else if ok {
			if variant, supported := s.Registry.Lookup(strings.TrimSpace(stored)); supported {
				return variant
			}
		}
	}

	return s.Default
}

func (s Service) Profile(variant ports.Variant) (ports.VariantProfile, error) {
	return s.Registry.Profile(variant)
}
