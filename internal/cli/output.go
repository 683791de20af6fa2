package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/agbru/fibmatrix/internal/bigint"
	"github.com/agbru/fibmatrix/internal/ui"
)

// truncationThreshold is the digit count above which the result is elided
// unless verbose output was requested. F(1000000) has over 200k digits;
// nobody wants those on a terminal by accident.
const (
	truncationThreshold = 50
	truncationEdge      = 20
)

// FormatResult renders a Fibonacci value as a decimal string. Values longer
// than the threshold are elided to their first and last digits with a digit
// count, unless verbose is set.
func FormatResult(value *bigint.Int, verbose bool) string {
	s := value.String()
	if verbose || len(s) <= truncationThreshold {
		return s
	}
	return fmt.Sprintf("%s...%s (%d digits)", s[:truncationEdge], s[len(s)-truncationEdge:], len(s))
}

// PrintResult writes the human-readable result summary.
//
// Parameters:
//   - out: Destination writer.
//   - algoName: Display name of the algorithm that produced the value.
//   - n: The calculated index.
//   - value: The Fibonacci number.
//   - duration: How long the calculation took.
//   - verbose: Whether to print the full decimal expansion.
func PrintResult(out io.Writer, algoName string, n int64, value *bigint.Int, duration time.Duration, verbose bool) {
	fmt.Fprintf(out, "%sAlgorithm:%s %s\n", ui.ColorUnderline(), ui.ColorReset(), algoName)
	fmt.Fprintf(out, "%sDuration:%s  %s\n", ui.ColorUnderline(), ui.ColorReset(), duration)
	fmt.Fprintf(out, "%sF(%d)%s = %s\n", ui.ColorGreen(), n, ui.ColorReset(), FormatResult(value, verbose))
}

// ResultJSON is the machine-readable form of a calculation result.
type ResultJSON struct {
	N          int64  `json:"n"`
	Algorithm  string `json:"algorithm"`
	Value      string `json:"value"`
	Digits     int    `json:"digits"`
	DurationMs int64  `json:"duration_ms"`
}

// WriteJSONResult writes the result as a single JSON document. The full
// value is always included: JSON output is for machines, which do not need
// the truncation courtesy.
func WriteJSONResult(out io.Writer, algoName string, n int64, value *bigint.Int, duration time.Duration) error {
	doc := ResultJSON{
		N:          n,
		Algorithm:  algoName,
		Value:      value.String(),
		Digits:     len(value.String()),
		DurationMs: duration.Milliseconds(),
	}
	enc := json.NewEncoder(out)
	return enc.Encode(doc)
}
