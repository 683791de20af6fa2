package server

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Prometheus metrics for server-level observability. Calculation metrics
// (total, duration) are tracked in the fibonacci package; these cover the
// HTTP surface itself.
var (
	activeRequests = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "fibmatrix_active_requests",
		Help: "Current number of active HTTP requests",
	})
	totalRequests = promauto.NewCounter(prometheus.CounterOpts{
		Name: "fibmatrix_requests_total",
		Help: "Total number of HTTP requests received",
	})
)

// Metrics exposes the Prometheus registry over HTTP.
type Metrics struct {
	handler http.Handler
}

// NewMetrics creates the /metrics handler.
func NewMetrics() *Metrics {
	return &Metrics{handler: promhttp.Handler()}
}

// handleMetrics serves the Prometheus scrape endpoint.
func (s *Server) handleMetrics(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	s.metrics.handler.ServeHTTP(w, r)
}

// metricsMiddleware tracks request counts and in-flight requests.
func (s *Server) metricsMiddleware(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		activeRequests.Inc()
		totalRequests.Inc()
		defer activeRequests.Dec()
		next(w, r)
	}
}
