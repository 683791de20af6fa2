package server

import "time"

// Option customizes a Server at construction time.
type Option func(*Server)

// WithRequestTimeout sets the per-request calculation timeout.
func WithRequestTimeout(d time.Duration) Option {
	return func(s *Server) { s.timeouts.RequestTimeout = d }
}

// WithShutdownTimeout sets the graceful shutdown drain timeout.
func WithShutdownTimeout(d time.Duration) Option {
	return func(s *Server) { s.timeouts.ShutdownTimeout = d }
}
