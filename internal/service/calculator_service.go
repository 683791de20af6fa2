// Package service provides the application service layer between the HTTP
// API and the calculation engines. It owns the concerns an exposed endpoint
// needs that a CLI does not: an upper bound on the requested index, and
// request-scoped tracing.
package service

import (
	"context"
	"errors"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"github.com/agbru/fibmatrix/internal/bigint"
	apperrors "github.com/agbru/fibmatrix/internal/errors"
	"github.com/agbru/fibmatrix/internal/fibonacci"
	"github.com/agbru/fibmatrix/internal/logging"
)

// DefaultMaxN is the default upper bound on the index accepted from the
// network. F(10^8) already weighs in at tens of megabytes of digits; the
// bound exists to keep a single request from exhausting the process.
const DefaultMaxN int64 = 100_000_000

// ErrMaxValueExceeded is returned when a request asks for an index above
// the configured maximum.
var ErrMaxValueExceeded = errors.New("requested index exceeds the configured maximum")

// CalculatorService executes calculations on behalf of the HTTP API.
type CalculatorService struct {
	factory fibonacci.CalculatorFactory
	logger  logging.Logger
	maxN    int64
	tracer  trace.Tracer
}

// NewCalculatorService creates a service over the given factory. A
// non-positive maxN falls back to DefaultMaxN.
func NewCalculatorService(factory fibonacci.CalculatorFactory, logger logging.Logger, maxN int64) *CalculatorService {
	if maxN <= 0 {
		maxN = DefaultMaxN
	}
	return &CalculatorService{
		factory: factory,
		logger:  logger,
		maxN:    maxN,
		tracer:  otel.Tracer("service"),
	}
}

// MaxN returns the configured index ceiling.
func (s *CalculatorService) MaxN() int64 { return s.maxN }

// Algorithms returns the names of the available algorithms.
func (s *CalculatorService) Algorithms() []string { return s.factory.List() }

// Calculate computes F(n) with the named algorithm.
//
// Parameters:
//   - ctx: The request context; cancellation aborts the calculation.
//   - algo: The registered algorithm name.
//   - n: The Fibonacci index.
//
// Returns:
//   - *bigint.Int: The result.
//   - error: ErrMaxValueExceeded if n is above the ceiling, an
//     InvalidArgumentError for a negative n or an unknown algorithm name,
//     or the engine error.
func (s *CalculatorService) Calculate(ctx context.Context, algo string, n int64) (*bigint.Int, error) {
	ctx, span := s.tracer.Start(ctx, "CalculatorService.Calculate")
	defer span.End()

	if n > s.maxN {
		return nil, ErrMaxValueExceeded
	}

	calc, err := s.factory.Get(algo)
	if err != nil {
		// The algorithm name comes straight from the caller's request, so
		// a lookup failure is their mistake, not a server fault.
		return nil, apperrors.NewInvalidArgumentError("algo", "%v", err)
	}

	result, err := calc.Calculate(ctx, nil, 0, n, fibonacci.Options{})
	if err != nil {
		s.logger.Error("calculation failed", err,
			logging.String("algo", algo), logging.Int64("n", n))
		return nil, err
	}
	return result, nil
}
