// Package server provides the HTTP API for the Fibonacci calculator:
// calculation, algorithm discovery, health and Prometheus metrics
// endpoints, with graceful shutdown.
package server

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	apperrors "github.com/agbru/fibmatrix/internal/errors"
	"github.com/agbru/fibmatrix/internal/logging"
	"github.com/agbru/fibmatrix/internal/parallel"
	"github.com/agbru/fibmatrix/internal/service"
)

// Server hosts the HTTP API.
type Server struct {
	service  *service.CalculatorService
	logger   logging.Logger
	metrics  *Metrics
	timeouts Timeouts
	httpSrv  *http.Server
}

// Timeouts bounds the server's request handling.
type Timeouts struct {
	// RequestTimeout caps a single calculation request.
	RequestTimeout time.Duration
	// ShutdownTimeout caps the graceful drain on shutdown.
	ShutdownTimeout time.Duration
	// ReadHeaderTimeout mitigates slow-header connections.
	ReadHeaderTimeout time.Duration
}

// NewServer creates a Server bound to addr, applying any options over the
// defaults.
func NewServer(addr string, svc *service.CalculatorService, logger logging.Logger, opts ...Option) *Server {
	s := &Server{
		service: svc,
		logger:  logger,
		metrics: NewMetrics(),
		timeouts: Timeouts{
			RequestTimeout:    2 * time.Minute,
			ShutdownTimeout:   10 * time.Second,
			ReadHeaderTimeout: 5 * time.Second,
		},
	}
	for _, opt := range opts {
		opt(s)
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/health", s.metricsMiddleware(s.handleHealth))
	mux.HandleFunc("/api/v1/algorithms", s.metricsMiddleware(s.handleAlgorithms))
	mux.HandleFunc("/api/v1/fibonacci", s.metricsMiddleware(s.handleCalculate))
	mux.HandleFunc("/metrics", s.handleMetrics)

	s.httpSrv = &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: s.timeouts.ReadHeaderTimeout,
	}
	return s
}

// Handler exposes the configured router, primarily for httptest.
func (s *Server) Handler() http.Handler { return s.httpSrv.Handler }

// Run starts the listener and blocks until ctx is cancelled or serving
// fails, then drains in-flight requests within the shutdown timeout.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.httpSrv.Addr)
	if err != nil {
		return err
	}
	return s.serve(ctx, ln)
}

// serve runs the HTTP server on ln. It returns immediately when Serve fails,
// so a dead listener never leaves the caller blocked waiting for a signal.
// On context cancellation the shutdown error and any late serve error are
// funneled through a collector so the first failure wins regardless of
// goroutine ordering.
func (s *Server) serve(ctx context.Context, ln net.Listener) error {
	s.logger.Info("server listening", logging.String("addr", ln.Addr().String()))

	errCh := make(chan error, 1)
	go func() {
		if serveErr := s.httpSrv.Serve(ln); serveErr != nil && !errors.Is(serveErr, http.ErrServerClosed) {
			errCh <- serveErr
		}
	}()

	select {
	case <-ctx.Done():
	case serveErr := <-errCh:
		return apperrors.NewServerError("server failed", serveErr)
	}

	var ec parallel.ErrorCollector
	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.timeouts.ShutdownTimeout)
	defer cancel()
	if shutdownErr := s.httpSrv.Shutdown(shutdownCtx); shutdownErr != nil {
		ec.SetError(shutdownErr)
	}
	select {
	case serveErr := <-errCh:
		ec.SetError(serveErr)
	default:
	}

	s.logger.Info("server stopped")
	return ec.Err()
}
