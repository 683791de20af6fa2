package fibonacci

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/rs/zerolog/log"
	"go.opentelemetry.io/otel"

	"github.com/agbru/fibmatrix/internal/bigint"
	apperrors "github.com/agbru/fibmatrix/internal/errors"
)

var (
	calculationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fibmatrix_calculations_total",
			Help: "The total number of Fibonacci calculations processed",
		},
		[]string{"algorithm", "status"},
	)
	calculationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "fibmatrix_calculation_duration_seconds",
			Help: "The duration of Fibonacci calculations in seconds",
		},
		[]string{"algorithm"},
	)
)

// Calculator defines the public interface for a Fibonacci calculator.
// It is the primary abstraction used by the orchestration, service and
// server layers to interact with the calculation algorithms.
type Calculator interface {
	// Calculate computes the n-th Fibonacci number. It is safe for
	// concurrent use and supports cancellation through the provided
	// context. Progress updates are sent asynchronously to progressChan.
	//
	// Parameters:
	//   - ctx: The context for managing cancellation and deadlines.
	//   - progressChan: The channel for progress updates (may be nil).
	//   - calcIndex: A unique index for the calculator instance.
	//   - n: The index of the Fibonacci number to calculate.
	//   - opts: Configuration options for the calculation.
	//
	// Returns:
	//   - *bigint.Int: The calculated Fibonacci number.
	//   - error: An InvalidArgumentError if n is negative, or a context
	//     error if the calculation was cancelled.
	Calculate(ctx context.Context, progressChan chan<- ProgressUpdate, calcIndex int, n int64, opts Options) (*bigint.Int, error)

	// Name returns the display name of the calculation algorithm.
	Name() string
}

// coreCalculator defines the internal interface for a pure calculation
// algorithm. Cores receive an already-validated non-negative index.
type coreCalculator interface {
	CalculateCore(ctx context.Context, reporter ProgressReporter, n uint64, opts Options) (*bigint.Int, error)
	Name() string
}

// MatrixExponentiation computes F(n) through powers of the symmetric
// generator matrix.
//
// Mathematical basis: the n-th power of Q = [[1,1],[1,0]] holds
// [[F(n+1), F(n)], [F(n), F(n-1)]], so the top-left entry of Q^(n-1) is
// F(n). Binary exponentiation brings the matrix multiplication count down
// to O(log n), and the symmetric three-scalar representation brings each
// multiplication down from 8 to 6 big-integer products.
type MatrixExponentiation struct{}

// Name returns the descriptive name of the algorithm.
func (c *MatrixExponentiation) Name() string {
	return "Matrix Exponentiation (O(log n), Symmetric)"
}

// CalculateCore computes F(n) using the matrix-power engine.
// Indices below 2 are returned directly: F(0)=0 and F(1)=1 need no matrix
// machinery, and short-circuiting them keeps the exponent passed to power
// at least 1, as its contract requires.
func (c *MatrixExponentiation) CalculateCore(ctx context.Context, reporter ProgressReporter, n uint64, opts Options) (*bigint.Int, error) {
	if n < 2 {
		reporter(1.0)
		return bigint.FromUint64(n), nil
	}
	m, err := power(ctx, reporter, generatorMatrix(), n-1)
	if err != nil {
		return nil, err
	}
	return m.a, nil
}

// FibCalculator is an implementation of the Calculator interface using the
// Decorator pattern. It wraps a coreCalculator to add cross-cutting
// concerns: argument validation, Prometheus metrics, an OpenTelemetry span,
// a completion log, and the adaptation of channel-based progress reporting
// to the ProgressReporter callback the cores use.
type FibCalculator struct {
	core coreCalculator
}

// NewCalculator constructs a Calculator around the given core algorithm.
// It panics if core is nil.
func NewCalculator(core coreCalculator) Calculator {
	if core == nil {
		panic("fibonacci: the coreCalculator implementation cannot be nil")
	}
	return &FibCalculator{core: core}
}

// Name returns the name of the wrapped core algorithm.
func (c *FibCalculator) Name() string {
	return c.core.Name()
}

// Calculate validates n, then delegates to the wrapped core with a reporter
// that forwards progress to progressChan.
//
// A negative n is out of the function's domain and fails immediately with
// an InvalidArgumentError; it is never coerced to a default.
func (c *FibCalculator) Calculate(ctx context.Context, progressChan chan<- ProgressUpdate, calcIndex int, n int64, opts Options) (result *bigint.Int, err error) {
	subject := NewProgressSubject()
	if progressChan != nil {
		subject.Register(NewChannelObserver(progressChan))
	}
	return c.CalculateWithObservers(ctx, subject, calcIndex, n, opts)
}

// CalculateWithObservers executes the calculation with observer-based
// progress reporting. Use this method to register multiple observers
// (logging, metrics, UI) for a single calculation; Calculate covers the
// common single-channel case.
func (c *FibCalculator) CalculateWithObservers(ctx context.Context, subject *ProgressSubject, calcIndex int, n int64, opts Options) (result *bigint.Int, err error) {
	if n < 0 {
		return nil, apperrors.NewInvalidArgumentError("n", "index must be non-negative, got %d", n)
	}

	tracer := otel.Tracer("fibonacci")
	ctx, span := tracer.Start(ctx, "Calculate")
	defer span.End()

	start := time.Now()
	defer func() {
		duration := time.Since(start).Seconds()
		status := "success"
		if err != nil {
			status = "error"
		}
		algoName := c.core.Name()
		calculationsTotal.WithLabelValues(algoName, status).Inc()
		calculationDuration.WithLabelValues(algoName).Observe(duration)

		log.Debug().
			Str("algo", algoName).
			Int64("n", n).
			Float64("duration", duration).
			Str("status", status).
			Msg("calculation completed")
	}()

	var reporter ProgressReporter
	if subject != nil {
		reporter = subject.AsProgressReporter(calcIndex)
	} else {
		reporter = func(float64) {}
	}

	result, err = c.core.CalculateCore(ctx, reporter, uint64(n), opts)
	if err == nil && result != nil {
		reporter(1.0)
	}
	return result, err
}
