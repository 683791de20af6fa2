// Package apperrors defines structured application error types, allowing a
// clear distinction between error classes (invalid arguments, configuration,
// calculation, server) and carrying the underlying cause where one exists.
//
// The calculation core itself is total over its valid domain: the only
// recoverable failure it can surface is an invalid argument. Everything else
// in this package belongs to the surrounding glue (configuration parsing,
// the HTTP server, context cancellation).
package apperrors

import (
	"context"
	"errors"
	"fmt"
)

// Application exit codes signal the outcome of the program to the OS.
const (
	ExitSuccess       = 0   // Successful execution.
	ExitErrorGeneric  = 1   // Generic error.
	ExitErrorTimeout  = 2   // The operation timed out.
	ExitErrorMismatch = 3   // Result mismatch between algorithms.
	ExitErrorConfig   = 4   // Configuration or argument error.
	ExitErrorCanceled = 130 // The operation was canceled (e.g. SIGINT).
)

// InvalidArgumentError reports that a caller passed a value outside an
// operation's domain, such as a negative Fibonacci index. It is surfaced
// immediately and never retried: there is no sensible default to fall back
// to.
type InvalidArgumentError struct {
	// Argument is the name of the offending argument.
	Argument string
	// Message describes why the value is invalid.
	Message string
}

// Error returns the error message for an InvalidArgumentError.
func (e InvalidArgumentError) Error() string {
	if e.Argument != "" {
		return fmt.Sprintf("invalid argument '%s': %s", e.Argument, e.Message)
	}
	return fmt.Sprintf("invalid argument: %s", e.Message)
}

// NewInvalidArgumentError creates an InvalidArgumentError for the named
// argument with a formatted message.
func NewInvalidArgumentError(argument, format string, a ...any) error {
	return InvalidArgumentError{Argument: argument, Message: fmt.Sprintf(format, a...)}
}

// IsInvalidArgument reports whether err is (or wraps) an
// InvalidArgumentError.
func IsInvalidArgument(err error) bool {
	var target InvalidArgumentError
	return errors.As(err, &target)
}

// ConfigError represents a user configuration error, such as an invalid
// flag or environment value. It indicates that the application cannot
// proceed due to incorrect user input.
type ConfigError struct {
	Message string
}

// Error returns the error message for a ConfigError.
func (e ConfigError) Error() string { return e.Message }

// NewConfigError creates a ConfigError with a formatted message.
func NewConfigError(format string, a ...any) error {
	return ConfigError{Message: fmt.Sprintf(format, a...)}
}

// CalculationError wraps an error that occurred while computing a Fibonacci
// number, preserving the original cause for inspection with errors.Is and
// errors.As.
type CalculationError struct {
	Cause error
}

// Error returns the message of the underlying cause.
func (e CalculationError) Error() string { return e.Cause.Error() }

// Unwrap returns the wrapped cause.
func (e CalculationError) Unwrap() error { return e.Cause }

// ServerError represents a failure in the HTTP server component.
type ServerError struct {
	// Message describes the server operation that failed.
	Message string
	// Cause is the underlying error, if any.
	Cause error
}

// Error returns the error message, combining the description with the
// underlying cause when present.
func (e ServerError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap returns the underlying cause, which may be nil.
func (e ServerError) Unwrap() error { return e.Cause }

// NewServerError creates a ServerError with a message and optional cause.
func NewServerError(message string, cause error) error {
	return ServerError{Message: message, Cause: cause}
}

// WrapError wraps err with additional context using %w semantics, so the
// result remains inspectable with errors.Is and errors.As. A nil err yields
// nil.
func WrapError(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), err)
}

// IsContextError reports whether err is a context cancellation or deadline
// error.
func IsContextError(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
