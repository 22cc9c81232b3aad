package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/dmitrijs2005/lostfound/internal/client/services"
	"github.com/dmitrijs2005/lostfound/internal/config"
	"github.com/dmitrijs2005/lostfound/internal/logging"
)

// Server is the HTTP front of one catalog.
type Server struct {
	httpServer      *http.Server
	log             logging.Logger
	shutdownTimeout time.Duration
}

// New builds the router and the underlying http.Server. Nothing listens
// until Run is called.
func New(cfg *config.Config, catalog *services.Catalog, log logging.Logger) *Server {
	log = log.With("module", "http_server")

	return &Server{
		httpServer: &http.Server{
			Addr:              cfg.HTTPAddr,
			Handler:           NewRouter(catalog, log),
			ReadHeaderTimeout: 10 * time.Second,
			IdleTimeout:       60 * time.Second,
		},
		log:             log,
		shutdownTimeout: cfg.ShutdownTimeout,
	}
}

// NewRouter mounts the API, health and metrics routes behind the metrics,
// request-logging and panic-recovery middleware.
func NewRouter(catalog *services.Catalog, log logging.Logger) http.Handler {
	h := newHandler(catalog, log)

	r := chi.NewRouter()
	r.Use(Metrics(), RequestLogger(log), middleware.Recoverer)

	r.Get("/health/live", h.healthLive)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	r.Route("/api/v1/entries", func(r chi.Router) {
		r.Get("/", h.listEntries)
		r.Post("/", h.createEntry)
		r.Get("/{id}", h.getEntry)
		r.Post("/{id}/toggle", h.toggleEntry)
	})

	return r
}

// Handler returns the root handler, mainly for tests.
func (s *Server) Handler() http.Handler { return s.httpServer.Handler }

// Run serves until ctx is cancelled, then shuts down gracefully within the
// configured timeout.
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)

	go func() {
		s.log.Info(ctx, "Starting HTTP server", "address", s.httpServer.Addr)
		err := s.httpServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case <-ctx.Done():
		s.log.Info(ctx, "Stopping HTTP server...")
	case err, ok := <-errCh:
		if ok && err != nil {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	}

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.shutdownTimeout)
	defer cancel()

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown: %w", err)
	}

	s.log.Info(shutdownCtx, "HTTP server stopped")
	return nil
}
