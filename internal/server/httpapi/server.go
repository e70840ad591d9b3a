// Package httpapi exposes the booking form, the admin views and the JSON API
// over HTTP.
package httpapi

import (
	"context"
	"net/http"
	"time"

	"github.com/dmitrijs2005/bookline/internal/logging"
	"github.com/dmitrijs2005/bookline/internal/server/bookings"
	"github.com/dmitrijs2005/bookline/internal/server/config"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Server struct {
	config  *config.Config
	router  *mux.Router
	service *bookings.Service
	limiter RateLimiter
	logger  logging.Logger
}

// NewServer builds the router around the booking service. limiter may be nil
// when rate limiting is not configured.
func NewServer(cfg *config.Config, service *bookings.Service, limiter RateLimiter, logger logging.Logger) *Server {
	s := &Server{
		config:  cfg,
		router:  mux.NewRouter(),
		service: service,
		limiter: limiter,
		logger:  logger.With("module", "httpapi"),
	}
	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	s.router.HandleFunc("/", s.handleHome).Methods(http.MethodGet)
	s.router.Handle("/book", s.rateLimitMiddleware(http.HandlerFunc(s.handleBook))).Methods(http.MethodPost)
	s.router.HandleFunc("/admin", s.handleAdminPage).Methods(http.MethodGet)
	s.router.HandleFunc("/static/style.css", s.handleStyle).Methods(http.MethodGet)

	s.router.HandleFunc("/api/admin/login", s.handleAdminLogin).Methods(http.MethodPost)
	s.router.Handle("/api/appointments", s.authMiddleware(http.HandlerFunc(s.handleAppointments))).Methods(http.MethodGet)

	s.router.HandleFunc("/health", s.handleHealth).Methods(http.MethodGet)
	s.router.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)

	s.router.Use(s.requestIDMiddleware)
	s.router.Use(s.loggingMiddleware)
}

// Handler returns the fully wired router, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:         s.config.EndpointAddr,
		Handler:      s.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.config.EndpointAddr)

	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}

	return nil
}
