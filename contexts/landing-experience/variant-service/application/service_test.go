package application

import (
	"context"
	"errors"
	"testing"

	"marquee/contexts/landing-experience/variant-service/adapters/memory"
	domainerrors "marquee/contexts/landing-experience/variant-service/domain/errors"
	"marquee/contexts/landing-experience/variant-service/ports"
)

func newService() Service {
	return Service{
		Registry: NewRegistry(),
		Default:  ports.VariantProductionStudio,
	}
}

func TestResolveQueryParameterSelectsAndPersistsEverySupportedVariant(t *testing.T) {
	service := newService()
	for _, want := range service.Registry.Supported() {
		prefs := memory.NewStore()
		got := service.Resolve(context.Background(), string(want), prefs)
		if got != want {
			t.Fatalf("expected %s, got %s", want, got)
		}
		stored, ok, err := prefs.Get(context.Background(), PreferenceKey)
		if err != nil || !ok {
			t.Fatalf("expected persisted preference for %s, ok=%v err=%v", want, ok, err)
		}
		if stored != string(want) {
			t.Fatalf("expected stored %s, got %s", want, stored)
		}
	}
}

func TestResolveQueryParameterOverwritesStoredPreference(t *testing.T) {
	service := newService()
	prefs := memory.NewStore()
	_ = prefs.Put(context.Background(), PreferenceKey, string(ports.VariantModern))

	got := service.Resolve(context.Background(), string(ports.VariantPremium), prefs)
	if got != ports.VariantPremium {
		t.Fatalf("expected premium, got %s", got)
	}
	stored, _, _ := prefs.Get(context.Background(), PreferenceKey)
	if stored != string(ports.VariantPremium) {
		t.Fatalf("expected preference overwritten with premium, got %s", stored)
	}
}

func TestResolveUnsupportedQueryFallsBackToStoredPreference(t *testing.T) {
	service := newService()
	prefs := memory.NewStore()
	_ = prefs.Put(context.Background(), PreferenceKey, string(ports.VariantModernDark))

	got := service.Resolve(context.Background(), "bogus", prefs)
	if got != ports.VariantModernDark {
		t.Fatalf("expected stored modern_dark, got %s", got)
	}
}

func TestResolveUnsupportedQueryWithoutPreferenceFallsBackToDefault(t *testing.T) {
	service := newService()
	got := service.Resolve(context.Background(), "bogus", memory.NewStore())
	if got != ports.VariantProductionStudio {
		t.Fatalf("expected default production_studio, got %s", got)
	}
}

func TestResolveRevalidatesStalePreference(t *testing.T) {
	// A stored value outside the supported set is ignored for rendering and
	// for analytics tagging alike; both fall back to the default.
	service := newService()
	prefs := memory.NewStore()
	_ = prefs.Put(context.Background(), PreferenceKey, "retired_variant")

	got := service.Resolve(context.Background(), "", prefs)
	if got != ports.VariantProductionStudio {
		t.Fatalf("expected stale preference discarded in favor of default, got %s", got)
	}
}

func TestResolveWithoutPreferenceStore(t *testing.T) {
	service := newService()
	got := service.Resolve(context.Background(), "", nil)
	if got != ports.VariantProductionStudio {
		t.Fatalf("expected default, got %s", got)
	}
}

func TestProfileUnknownVariant(t *testing.T) {
	service := newService()
	_, err := service.Profile(ports.Variant("bogus"))
	if !errors.Is(err, domainerrors.ErrUnknownVariant) {
		t.Fatalf("expected ErrUnknownVariant, got %v", err)
	}
}

func TestLocaleVariantsCarryPortugueseContent(t *testing.T) {
	service := newService()
	profile, err := service.Profile(ports.VariantModernPTBR)
	if err != nil {
		t.Fatalf("profile returned error: %v", err)
	}
	if profile.Content.Locale != "pt-BR" {
		t.Fatalf("expected pt-BR locale, got %s", profile.Content.Locale)
	}
}
