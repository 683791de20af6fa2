// Package cli implements the command-line presentation layer: live progress
// display while calculations run, and formatting of the final result.
package cli

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/briandowns/spinner"

	"github.com/agbru/fibmatrix/internal/fibonacci"
)

// spinnerInterval is the refresh rate of the progress spinner.
const spinnerInterval = 100 * time.Millisecond

// DisplayProgress consumes progress updates until the channel is closed,
// rendering an animated spinner whose suffix shows the aggregate progress of
// all running calculators. It signals wg when the channel drains, so the
// orchestrator can wait for the display to finish before printing results.
//
// Parameters:
//   - wg: Signalled via Done when the display loop exits.
//   - progressChan: The channel of updates; closing it ends the display.
//   - numCalculators: How many calculators feed the channel.
//   - out: Destination writer, usually stderr.
func DisplayProgress(wg *sync.WaitGroup, progressChan <-chan fibonacci.ProgressUpdate, numCalculators int, out io.Writer) {
	defer wg.Done()

	if numCalculators <= 0 {
		for range progressChan {
		}
		return
	}

	s := spinner.New(spinner.CharSets[14], spinnerInterval, spinner.WithWriter(out))
	s.Suffix = " calculating... 0.0%"
	s.Start()
	defer s.Stop()

	perCalculator := make([]float64, numCalculators)
	for update := range progressChan {
		if update.CalculatorIndex < 0 || update.CalculatorIndex >= numCalculators {
			continue
		}
		if update.Value > perCalculator[update.CalculatorIndex] {
			perCalculator[update.CalculatorIndex] = update.Value
		}
		var total float64
		for _, p := range perCalculator {
			total += p
		}
		s.Suffix = fmt.Sprintf(" calculating... %.1f%%", total/float64(numCalculators)*100)
	}
}
