// Package orchestration coordinates the concurrent execution of one or more
// Fibonacci calculators and the comparison of their results. Running the
// matrix engine next to the iterative reference and demanding identical
// values is the application's strongest end-to-end correctness check.
package orchestration

import (
	"context"
	"fmt"
	"io"
	"sort"
	"sync"
	"text/tabwriter"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/agbru/fibmatrix/internal/bigint"
	"github.com/agbru/fibmatrix/internal/cli"
	"github.com/agbru/fibmatrix/internal/config"
	apperrors "github.com/agbru/fibmatrix/internal/errors"
	"github.com/agbru/fibmatrix/internal/fibonacci"
	"github.com/agbru/fibmatrix/internal/ui"
)

// CalculationResult encapsulates the outcome of a single calculation,
// standardized across algorithms so results can be compared and reported.
type CalculationResult struct {
	// Name is the display name of the algorithm.
	Name string
	// Result is the computed Fibonacci number, nil if an error occurred.
	Result *bigint.Int
	// Duration is the time taken to complete the calculation.
	Duration time.Duration
	// Err holds any error that occurred.
	Err error
}

// ProgressBufferMultiplier sizes the progress channel buffer per
// calculator. A larger buffer reduces the chance that a slow display blocks
// an update send (sends are non-blocking anyway; dropped updates just make
// the display coarser).
const ProgressBufferMultiplier = 5

// ExecuteCalculations runs every calculator concurrently on cfg.N, feeding
// a shared progress display, and collects their individual outcomes. An
// individual failure does not abort the others; it is recorded in that
// calculator's result slot.
//
// Parameters:
//   - ctx: The context bounding all calculations.
//   - calculators: The calculators to run.
//   - cfg: The application configuration (index, quiet mode).
//   - out: Writer for the progress display.
//
// Returns:
//   - []CalculationResult: One result per calculator, in input order.
func ExecuteCalculations(ctx context.Context, calculators []fibonacci.Calculator, cfg config.AppConfig, out io.Writer) []CalculationResult {
	g, ctx := errgroup.WithContext(ctx)
	results := make([]CalculationResult, len(calculators))
	progressChan := make(chan fibonacci.ProgressUpdate, len(calculators)*ProgressBufferMultiplier)

	displayCount := len(calculators)
	if cfg.Quiet {
		displayCount = 0 // drain silently
	}
	var displayWg sync.WaitGroup
	displayWg.Add(1)
	go cli.DisplayProgress(&displayWg, progressChan, displayCount, out)

	for i, calc := range calculators {
		idx, calculator := i, calc
		g.Go(func() error {
			startTime := time.Now()
			res, err := calculator.Calculate(ctx, progressChan, idx, cfg.N, fibonacci.Options{})
			results[idx] = CalculationResult{
				Name: calculator.Name(), Result: res, Duration: time.Since(startTime), Err: err,
			}
			return nil
		})
	}

	g.Wait()
	close(progressChan)
	displayWg.Wait()

	return results
}

// VerifyConsistency checks that all successful results agree on the value.
// It returns the first mismatching pair, if any.
func VerifyConsistency(results []CalculationResult) (mismatchA, mismatchB *CalculationResult) {
	var reference *CalculationResult
	for i := range results {
		if results[i].Err != nil || results[i].Result == nil {
			continue
		}
		if reference == nil {
			reference = &results[i]
			continue
		}
		if reference.Result.Cmp(results[i].Result) != 0 {
			return reference, &results[i]
		}
	}
	return nil, nil
}

// AnalyzeComparisonResults sorts the results by execution time, validates
// consistency across the successful ones, and writes a comparative summary
// table. The returned exit code reflects the overall outcome: a value
// mismatch between two algorithms outranks every other failure, because it
// means at least one of them computed a wrong number.
func AnalyzeComparisonResults(results []CalculationResult, cfg config.AppConfig, out io.Writer) int {
	sort.Slice(results, func(i, j int) bool {
		if (results[i].Err == nil) != (results[j].Err == nil) {
			return results[i].Err == nil
		}
		return results[i].Duration < results[j].Duration
	})

	fmt.Fprintf(out, "\n--- Comparison Summary ---\n")
	tw := tabwriter.NewWriter(out, 0, 0, 3, ' ', 0)
	fmt.Fprintf(tw, "%sAlgorithm%s\t%sDuration%s\t%sStatus%s\n",
		ui.ColorUnderline(), ui.ColorReset(), ui.ColorUnderline(), ui.ColorReset(), ui.ColorUnderline(), ui.ColorReset())

	successCount := 0
	var firstErr error
	for _, res := range results {
		var status string
		if res.Err != nil {
			status = fmt.Sprintf("%sFailure (%v)%s", ui.ColorRed(), res.Err, ui.ColorReset())
			if firstErr == nil {
				firstErr = res.Err
			}
		} else {
			status = fmt.Sprintf("%sOK%s", ui.ColorGreen(), ui.ColorReset())
			successCount++
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\n", res.Name, res.Duration, status)
	}
	tw.Flush()

	if a, b := VerifyConsistency(results); a != nil {
		fmt.Fprintf(out, "%sResult mismatch between %q and %q: the algorithms disagree on F(%d).%s\n",
			ui.ColorRed(), a.Name, b.Name, cfg.N, ui.ColorReset())
		return apperrors.ExitErrorMismatch
	}

	if successCount == 0 {
		return apperrors.HandleCalculationError(firstErr, 0, out)
	}

	// Print the value once; all successful algorithms agree on it.
	for _, res := range results {
		if res.Err == nil && res.Result != nil {
			fmt.Fprintf(out, "\nF(%d) = %s\n", cfg.N, cli.FormatResult(res.Result, cfg.Verbose))
			break
		}
	}
	return apperrors.ExitSuccess
}
