package bootstrap

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	funnelgateway "marquee/contexts/conversion/funnel-gateway"
	funnelhosted "marquee/contexts/conversion/funnel-gateway/adapters/hosted"
	funnelpostgres "marquee/contexts/conversion/funnel-gateway/adapters/postgres"
	trackingservice "marquee/contexts/growth-analytics/tracking-service"
	trackingpostgres "marquee/contexts/growth-analytics/tracking-service/adapters/postgres"
	variantservice "marquee/contexts/landing-experience/variant-service"
	variantports "marquee/contexts/landing-experience/variant-service/ports"
	"marquee/internal/platform/config"
	"marquee/internal/platform/db"
	"marquee/internal/platform/httpserver"
	"marquee/internal/platform/messaging"
)

// Package bootstrap is the composition root.
// Keep construction/wiring here so module code stays framework-agnostic.

type APIApp struct {
	server   *httpserver.Server
	postgres *db.Postgres
	logger   *slog.Logger
}

func BuildAPI() (*APIApp, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	logger := slog.Default().With("service", cfg.ServiceName, "process", "api")
	feed := messaging.NewFeed(logger)

	variants := variantservice.NewModule(variantservice.Dependencies{
		Default: variantports.Variant(cfg.DefaultVariant),
		Logger:  logger,
	})

	var (
		tracking trackingservice.Module
		funnel   funnelgateway.Module
		pg       *db.Postgres
	)

	switch cfg.Backend {
	case config.BackendPostgres:
		if strings.TrimSpace(cfg.PostgresDSN) == "" {
			return nil, errors.New("POSTGRES_DSN is required when BACKEND=postgres")
		}
		pg, err = db.Connect(cfg.PostgresDSN)
		if err != nil {
			return nil, err
		}

		tracking = trackingservice.NewModule(trackingservice.Dependencies{
			Sink:             trackingpostgres.NewRepository(pg.DB, logger),
			Feed:             feed,
			Clock:            trackingpostgres.SystemClock{},
			IDGenerator:      trackingpostgres.UUIDGenerator{},
			SectionThreshold: cfg.SectionThreshold,
			Logger:           logger,
		})

		if strings.TrimSpace(cfg.CheckoutEndpoint) == "" {
			return nil, errors.New("CHECKOUT_ENDPOINT is required when BACKEND=postgres")
		}
		funnel = funnelgateway.NewModule(funnelgateway.Dependencies{
			Provider:    funnelhosted.NewProvider(cfg.CheckoutEndpoint, logger),
			Waitlist:    funnelpostgres.NewRepository(pg.DB, logger),
			Clock:       funnelpostgres.SystemClock{},
			IDGenerator: funnelpostgres.UUIDGenerator{},
			PriceID:     cfg.CheckoutPriceID,
			SuccessURL:  cfg.SiteOrigin + "/success?session_id={CHECKOUT_SESSION_ID}",
			CancelURL:   cfg.SiteOrigin + "/?checkout=cancelled",
			Logger:      logger,
		})
	default:
		tracking = trackingservice.NewInMemoryModule(feed, logger)
		funnel = funnelgateway.NewInMemoryModule(logger)
	}

	debugEvents := cfg.Backend == config.BackendMemory
	server := httpserver.New(variants, tracking, funnel, logger, normalizeAddr(cfg.HTTPPort), debugEvents)
	return &APIApp{
		server:   server,
		postgres: pg,
		logger:   logger,
	}, nil
}

func (a *APIApp) Run(_ context.Context) error {
	if a.logger != nil {
		a.logger.Info("api app started",
			"event", "bootstrap_api_started",
			"module", "internal/app/bootstrap",
			"layer", "platform",
		)
	}
	return a.server.Start()
}

func (a *APIApp) Close() error {
	if a.postgres != nil {
		return a.postgres.Close()
	}
	return nil
}

func normalizeAddr(port string) string {
	value := strings.TrimSpace(port)
	if value == "" {
		return ":8080"
	}
	if strings.HasPrefix(value, ":") {
		return value
	}
	return ":" + value
}
