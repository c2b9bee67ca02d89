package httpserver

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/davidbz/estimator/internal/config"
	"github.com/davidbz/estimator/internal/httpserver/middleware"
	"github.com/davidbz/estimator/internal/metrics"
	"github.com/davidbz/estimator/internal/observability"
)

// Server represents the HTTP server.
type Server struct {
	config      config.ServerConfig
	handler     *Handler
	middlewares middleware.Middleware
	httpMetrics *metrics.HTTPMetrics
	gatherer    prometheus.Gatherer
	srv         *http.Server
}

// NewServer creates a new HTTP server.
func NewServer(
	cfg *config.ServerConfig,
	handler *Handler,
	middlewares middleware.Middleware,
	httpMetrics *metrics.HTTPMetrics,
	gatherer prometheus.Gatherer,
) *Server {
	s := &Server{
		config:      *cfg,
		handler:     handler,
		middlewares: middlewares,
		httpMetrics: httpMetrics,
		gatherer:    gatherer,
		srv:         nil,
	}

	s.srv = &http.Server{
		Addr:         fmt.Sprintf(":%d", s.config.Port),
		Handler:      s.Routes(),
		ReadTimeout:  time.Duration(s.config.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(s.config.WriteTimeout) * time.Second,
	}

	return s
}

// Routes builds the request multiplexer wrapped in the middleware chain.
func (s *Server) Routes() http.Handler {
	mux := http.NewServeMux()

	// Register routes.
	s.handle(mux, "/v1/estimates", http.HandlerFunc(s.handler.HandleEstimate))
	s.handle(mux, "/v1/rates", http.HandlerFunc(s.handler.HandleRates))
	s.handle(mux, "/health", http.HandlerFunc(s.handler.HandleHealth))

	if s.gatherer != nil {
		mux.Handle("/metrics", metrics.Handler(s.gatherer))
	}

	// Apply middleware chain.
	if s.middlewares == nil {
		return mux
	}
	return s.middlewares(mux)
}

func (s *Server) handle(mux *http.ServeMux, route string, h http.Handler) {
	if s.httpMetrics != nil {
		h = s.httpMetrics.Instrument(route, h)
	}
	mux.Handle(route, h)
}

// Start starts the HTTP server and blocks until it stops.
func (s *Server) Start() error {
	ctx := context.Background()
	observability.FromContext(ctx).Info("starting HTTP server", observability.Int("port", s.config.Port))

	if err := s.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("server failed: %w", err)
	}
	return nil
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	observability.FromContext(ctx).Info("shutting down HTTP server")

	if s.srv == nil {
		return nil
	}

	if err := s.srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("failed to shutdown server: %w", err)
	}

	return nil
}
