package fibonacci

import (
	"context"

	"github.com/agbru/fibmatrix/internal/bigint"
)

// IterativeAddition computes F(n) by additive iteration in O(n) big-integer
// additions. It exists as the reference algorithm: the matrix engine is
// cross-checked against it by the orchestration layer and the test suite,
// and its simplicity makes it the natural oracle for small indices.
type IterativeAddition struct{}

// Name returns the descriptive name of the algorithm.
func (c *IterativeAddition) Name() string {
	return "Iterative Addition (O(n), Reference)"
}

// CalculateCore computes F(n) by summing forward from F(0) and F(1).
// Context cancellation and progress are checked every opts interval of
// iterations; the additions themselves are cheap, so polling on each one
// would cost more than the arithmetic.
func (c *IterativeAddition) CalculateCore(ctx context.Context, reporter ProgressReporter, n uint64, opts Options) (*bigint.Int, error) {
	if n < 2 {
		reporter(1.0)
		return bigint.FromUint64(n), nil
	}

	interval := opts.progressInterval()
	a, b := bigint.Zero(), bigint.One()
	for i := uint64(2); i <= n; i++ {
		a, b = b, a.Add(b)
		if i%interval == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			reporter(float64(i) / float64(n))
		}
	}
	return b, nil
}
