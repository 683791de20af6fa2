package fibonacci

import (
	"context"
	"math/bits"
)

// power returns m raised to the n-th matrix power using binary
// exponentiation. The exponent is halved at each step, so the loop performs
// Theta(log n) matrix multiplications: one squaring per bit of n, plus one
// accumulator multiplication for each set bit.
//
// The loop is the iterative accumulator-and-squaring formulation rather than
// the recursive halving one. Both are semantically equivalent, but the loop
// bounds stack usage to O(1) no matter how large n is, which matters when n
// reaches into the millions.
//
// power requires n >= 1. A smaller exponent is a contract violation on the
// caller's side (fib handles n < 2 before ever reaching power), so it
// panics rather than returning a recoverable error.
//
// The context is polled once per squaring step. A single step multiplies
// numbers of up to O(n) bits, so cancellation latency is bounded by one
// big-integer multiplication, not by the whole computation.
func power(ctx context.Context, reporter ProgressReporter, m symMatrix, n uint64) (symMatrix, error) {
	if n < 1 {
		panic("fibonacci: power requires a positive exponent")
	}

	totalSteps := bits.Len64(n)
	result := identityMatrix()
	base := m

	for step := 1; n > 0; step++ {
		if err := ctx.Err(); err != nil {
			return symMatrix{}, err
		}
		if n&1 == 1 {
			result = times(result, base)
		}
		n >>= 1
		if n > 0 {
			// The final squaring would only feed an exponent of 0,
			// so it is skipped.
			base = times(base, base)
		}
		reporter(float64(step) / float64(totalSteps))
	}
	return result, nil
}
