package apperrors

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"
)

// HandleCalculationError formats a failed calculation for the user and maps
// the failure to a process exit code. Timeouts, cancellations, invalid
// arguments and generic failures each get their own message and code.
//
// Parameters:
//   - err: The error that occurred (nil returns ExitSuccess).
//   - duration: How long the calculation ran before failing; zero omits it.
//   - out: Where the message is written.
//
// Returns:
//   - int: The exit code for the error class.
func HandleCalculationError(err error, duration time.Duration, out io.Writer) int {
	if err == nil {
		return ExitSuccess
	}

	suffix := ""
	if duration > 0 {
		suffix = fmt.Sprintf(" after %s", duration)
	}

	if errors.Is(err, context.DeadlineExceeded) {
		fmt.Fprintf(out, "Status: Failure (Timeout). The execution limit was reached%s.\n", suffix)
		return ExitErrorTimeout
	}
	if errors.Is(err, context.Canceled) {
		fmt.Fprintf(out, "Status: Canceled%s.\n", suffix)
		return ExitErrorCanceled
	}
	if IsInvalidArgument(err) {
		fmt.Fprintf(out, "Status: Failure. %v\n", err)
		return ExitErrorConfig
	}
	fmt.Fprintf(out, "Status: Failure. An unexpected error occurred: %v\n", err)
	return ExitErrorGeneric
}
