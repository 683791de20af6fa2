package fibonacci

// DefaultProgressInterval is the number of iterative steps between context
// checks and progress reports in the O(n) reference algorithm.
const DefaultProgressInterval = 4096

// Options configures a Fibonacci calculation.
type Options struct {
	// ProgressInterval is the number of additive steps the iterative
	// reference performs between progress reports and context checks.
	// If 0, DefaultProgressInterval is used. The matrix engine ignores
	// this value: it reports once per squaring step, of which there are
	// only O(log n).
	ProgressInterval uint64
}

func (o Options) progressInterval() uint64 {
	if o.ProgressInterval == 0 {
		return DefaultProgressInterval
	}
	return o.ProgressInterval
}
