package trackingservice

import (
	"log/slog"

	httpadapter "marquee/contexts/growth-analytics/tracking-service/adapters/http"
	"marquee/contexts/growth-analytics/tracking-service/adapters/memory"
	"marquee/contexts/growth-analytics/tracking-service/application"
	"marquee/contexts/growth-analytics/tracking-service/ports"
)

type Module struct {
	Handler httpadapter.Handler
	Service application.Service
	Watches *application.Watches
	Store   *memory.Store
}

type Dependencies struct {
	Sink             ports.EventSink
	Feed             ports.EventFeed
	Clock            ports.Clock
	IDGenerator      ports.IDGenerator
	SectionThreshold float64
	Logger           *slog.Logger
}

func NewModule(deps Dependencies) Module {
	service := application.Service{
		Sink:        deps.Sink,
		Feed:        deps.Feed,
		Clock:       deps.Clock,
		IDGenerator: deps.IDGenerator,
		Logger:      deps.Logger,
	}
	watches := application.NewWatches(deps.SectionThreshold)
	return Module{
		Handler: httpadapter.Handler{
			Service: service,
			Watches: watches,
			Logger:  deps.Logger,
		},
		Service: service,
		Watches: watches,
	}
}

func NewInMemoryModule(feed ports.EventFeed, logger *slog.Logger) Module {
	store := memory.NewStore()
	module := NewModule(Dependencies{
		Sink:             store,
		Feed:             feed,
		Clock:            store,
		IDGenerator:      store,
		SectionThreshold: application.DefaultSectionThreshold,
		Logger:           logger,
	})
	module.Store = store
	return module
}
