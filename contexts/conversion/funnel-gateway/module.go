package funnelgateway

import (
	"log/slog"

	httpadapter "marquee/contexts/conversion/funnel-gateway/adapters/http"
	"marquee/contexts/conversion/funnel-gateway/adapters/memory"
	"marquee/contexts/conversion/funnel-gateway/application"
	"marquee/contexts/conversion/funnel-gateway/ports"
)

type Module struct {
	Handler httpadapter.Handler
	Service application.Service
	Store   *memory.Store
}

type Dependencies struct {
	Provider    ports.CheckoutProvider
	Waitlist    ports.WaitlistRepository
	Clock       ports.Clock
	IDGenerator ports.IDGenerator
	PriceID     string
	SuccessURL  string
	CancelURL   string
	Logger      *slog.Logger
}

func NewModule(deps Dependencies) Module {
	service := application.Service{
		Provider:    deps.Provider,
		Waitlist:    deps.Waitlist,
		Clock:       deps.Clock,
		IDGenerator: deps.IDGenerator,
		PriceID:     deps.PriceID,
		SuccessURL:  deps.SuccessURL,
		CancelURL:   deps.CancelURL,
		Logger:      deps.Logger,
	}
	return Module{
		Handler: httpadapter.Handler{
			Service: service,
			Logger:  deps.Logger,
		},
		Service: service,
	}
}

func NewInMemoryModule(logger *slog.Logger) Module {
	store := memory.NewStore()
	module := NewModule(Dependencies{
		Provider:    store,
		Waitlist:    store,
		Clock:       store,
		IDGenerator: store,
		PriceID:     "price_framewise_creator",
		SuccessURL:  "http://localhost:8080/success?session_id={CHECKOUT_SESSION_ID}",
		CancelURL:   "http://localhost:8080/",
		Logger:      logger,
	})
	module.Store = store
	return module
}
