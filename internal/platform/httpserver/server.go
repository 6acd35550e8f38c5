package httpserver

import (
	"encoding/json"
	"io/fs"
	"log/slog"
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	funnelgateway "marquee/contexts/conversion/funnel-gateway"
	trackingservice "marquee/contexts/growth-analytics/tracking-service"
	trackingports "marquee/contexts/growth-analytics/tracking-service/ports"
	variantservice "marquee/contexts/landing-experience/variant-service"
	_ "marquee/internal/platform/httpserver/docs"
	"marquee/internal/platform/web"
)

type Server struct {
	mux    *http.ServeMux
	logger *slog.Logger
	addr   string

	variants variantservice.Module
	tracking trackingservice.Module
	funnel   funnelgateway.Module

	// debugEvents exposes the in-memory sink; only set in memory mode.
	debugEvents bool
	downloads   web.DownloadLinks
}

func New(
	variants variantservice.Module,
	tracking trackingservice.Module,
	funnel funnelgateway.Module,
	logger *slog.Logger,
	addr string,
	debugEvents bool,
) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	if addr == "" {
		addr = ":8080"
	}

	s := &Server{
		mux:         http.NewServeMux(),
		logger:      logger,
		addr:        addr,
		variants:    variants,
		tracking:    tracking,
		funnel:      funnel,
		debugEvents: debugEvents,
		downloads: web.DownloadLinks{
			Windows: "/downloads/framewise-setup.exe",
			MacOS:   "/downloads/framewise.dmg",
			Linux:   "/downloads/framewise.AppImage",
		},
	}
	s.registerRoutes()
	return s
}

func (s *Server) Start() error {
	s.logger.Info("http server starting",
		"event", "http_server_starting",
		"module", "internal/platform/httpserver",
		"layer", "platform",
		"addr", s.addr,
	)
	return http.ListenAndServe(s.addr, s.mux)
}

func (s *Server) registerRoutes() {
	s.mux.Handle("/swagger/", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	staticSub, err := fs.Sub(web.StaticFS, "static")
	if err == nil {
		s.mux.Handle("GET /static/", http.StripPrefix("/static/", http.FileServer(http.FS(staticSub))))
	}

	s.mux.HandleFunc("GET /{$}", s.handleLanding)
	s.mux.HandleFunc("GET /success", s.handleSuccess)
	s.mux.HandleFunc("GET /styleguide", s.handleStyleGuide)
	s.mux.HandleFunc("GET /health", s.handleHealth)

	s.mux.HandleFunc("POST /api/track", s.handleTrack)
	s.mux.HandleFunc("POST /api/sections/view", s.handleSectionView)
	s.mux.HandleFunc("POST /api/waitlist", s.handleJoinWaitlist)
	s.mux.HandleFunc("POST /api/checkout", s.handleStartCheckout)
	s.mux.HandleFunc("GET /api/debug/events", s.handleDebugEvents)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func clientContext(r *http.Request) trackingports.ClientContext {
	return trackingports.ClientContext{UserAgent: r.UserAgent()}
}
