package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const (
	BackendMemory   = "memory"
	BackendPostgres = "postgres"
)

// Config is centralized process configuration. Adapter selection is explicit
// here; call sites never inspect the environment themselves.
type Config struct {
	ServiceName string
	HTTPPort    string
	Backend     string
	PostgresDSN string

	DefaultVariant   string
	SectionThreshold float64

	SiteOrigin       string
	CheckoutEndpoint string
	CheckoutPriceID  string
}

func Load() (Config, error) {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	service := os.Getenv("SERVICE_NAME")
	if service == "" {
		service = "marquee"
	}

	port := os.Getenv("HTTP_PORT")
	if port == "" {
		port = "8080"
	}

	backend := strings.TrimSpace(strings.ToLower(os.Getenv("BACKEND")))
	if backend == "" {
		backend = BackendMemory
	}
	if backend != BackendMemory && backend != BackendPostgres {
		return Config{}, fmt.Errorf("unsupported BACKEND %q", backend)
	}

	origin := strings.TrimRight(os.Getenv("SITE_ORIGIN"), "/")
	if origin == "" {
		origin = "http://localhost:" + port
	}

	defaultVariant := strings.TrimSpace(os.Getenv("DEFAULT_VARIANT"))
	if defaultVariant == "" {
		defaultVariant = "production_studio"
	}

	return Config{
		ServiceName: service,
		HTTPPort:    port,
		Backend:     backend,
		PostgresDSN: os.Getenv("POSTGRES_DSN"),

		DefaultVariant:   defaultVariant,
		SectionThreshold: envFloat("SECTION_VIEW_THRESHOLD", 0.5),

		SiteOrigin:       origin,
		CheckoutEndpoint: strings.TrimSpace(os.Getenv("CHECKOUT_ENDPOINT")),
		CheckoutPriceID:  strings.TrimSpace(os.Getenv("CHECKOUT_PRICE_ID")),
	}, nil
}

func envFloat(name string, fallback float64) float64 {
	raw := strings.TrimSpace(os.Getenv(name))
	if raw == "" {
		return fallback
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil || value <= 0 || value > 1 {
		return fallback
	}
	return value
}
