package variantservice

import (
	"log/slog"

	"marquee/contexts/landing-experience/variant-service/adapters/memory"
	"marquee/contexts/landing-experience/variant-service/application"
	"marquee/contexts/landing-experience/variant-service/ports"
)

type Module struct {
	Service application.Service
	Prefs   *memory.Store
}

type Dependencies struct {
	Default ports.Variant
	Logger  *slog.Logger
}

func NewModule(deps Dependencies) Module {
	if deps.Default == "" {
		deps.Default = ports.VariantProductionStudio
	}
	return Module{
		Service: application.Service{
			Registry: application.NewRegistry(),
			Default:  deps.Default,
			Logger:   deps.Logger,
		},
	}
}

func NewInMemoryModule(logger *slog.Logger) Module {
	module := NewModule(Dependencies{Logger: logger})
	module.Prefs = memory.NewStore()
	return module
}
