// Package config provides configuration management for the fibmatrix
// application. It defines the configuration structure, parses command-line
// arguments with environment-variable fallbacks, and validates the result.
package config

import (
	"errors"
	"flag"
	"io"
	"strings"
	"time"

	apperrors "github.com/agbru/fibmatrix/internal/errors"
)

// Default configuration values, overridable via flags or environment
// variables.
const (
	// DefaultN is the default Fibonacci index to calculate.
	DefaultN int64 = 1_000_000
	// DefaultTimeout is the default calculation timeout.
	DefaultTimeout = 5 * time.Minute
	// DefaultPort is the default server port.
	DefaultPort = "8080"
	// DefaultAlgo is the default algorithm selection.
	DefaultAlgo = "matrix"
)

// AppConfig aggregates the application's configuration parameters.
type AppConfig struct {
	// N is the index of the Fibonacci number to calculate.
	N int64
	// Algo selects the algorithm: a registered name, or "all" to run
	// every algorithm and cross-check their results.
	Algo string
	// Timeout bounds the calculation duration.
	Timeout time.Duration
	// Verbose, if true, prints the full decimal value instead of the
	// truncated head...tail form.
	Verbose bool
	// JSONOutput, if true, emits the result as a JSON document.
	JSONOutput bool
	// Quiet suppresses progress display and informational messages,
	// for scripting.
	Quiet bool
	// NoColor disables ANSI colors in the CLI output.
	NoColor bool
	// ServerMode, if true, starts the HTTP API instead of a one-shot
	// calculation.
	ServerMode bool
	// Port is the listen port in server mode.
	Port string
	// Debug enables debug-level logging.
	Debug bool
}

// Validate checks the semantic consistency of the configuration.
//
// Parameters:
//   - availableAlgos: The registered algorithm names.
//
// Returns:
//   - error: A ConfigError describing the first problem found, or nil.
func (c AppConfig) Validate(availableAlgos []string) error {
	if c.N < 0 {
		return apperrors.NewConfigError("the Fibonacci index cannot be negative: %d", c.N)
	}
	if c.Timeout <= 0 {
		return apperrors.NewConfigError("timeout value must be strictly positive")
	}
	if c.ServerMode && c.Port == "" {
		return apperrors.NewConfigError("server mode requires a listen port")
	}
	if c.Algo != "all" {
		found := false
		for _, a := range availableAlgos {
			if a == c.Algo {
				found = true
				break
			}
		}
		if !found {
			return apperrors.NewConfigError("unrecognized algorithm: '%s'. Valid algorithms are: 'all' or [%s]",
				c.Algo, strings.Join(availableAlgos, ", "))
		}
	}
	return nil
}

// ParseConfig parses command-line arguments into an AppConfig. Defaults are
// taken first from the FIBMATRIX_* environment, then overridden by flags.
// The output writer receives usage text, which keeps the function testable.
//
// Parameters:
//   - args: The raw arguments, without the program name.
//   - output: Destination for usage and flag error messages.
//
// Returns:
//   - AppConfig: The parsed configuration.
//   - error: A ConfigError if parsing failed, or flag.ErrHelp.
func ParseConfig(args []string, output io.Writer) (AppConfig, error) {
	fs := flag.NewFlagSet("fibmatrix", flag.ContinueOnError)
	fs.SetOutput(output)

	defaults := defaultsFromEnv()

	var cfg AppConfig
	fs.Int64Var(&cfg.N, "n", defaults.N, "index of the Fibonacci number to calculate")
	fs.StringVar(&cfg.Algo, "algo", defaults.Algo, "algorithm to use ('matrix', 'iterative', or 'all' to cross-check)")
	fs.DurationVar(&cfg.Timeout, "timeout", defaults.Timeout, "maximum calculation duration")
	fs.BoolVar(&cfg.Verbose, "v", defaults.Verbose, "display the full calculated number")
	fs.BoolVar(&cfg.JSONOutput, "json", defaults.JSONOutput, "output the result as JSON")
	fs.BoolVar(&cfg.Quiet, "quiet", defaults.Quiet, "suppress progress and informational output")
	fs.BoolVar(&cfg.NoColor, "no-color", defaults.NoColor, "disable colored output")
	fs.BoolVar(&cfg.ServerMode, "server", defaults.ServerMode, "start the HTTP API server")
	fs.StringVar(&cfg.Port, "port", defaults.Port, "port to listen on in server mode")
	fs.BoolVar(&cfg.Debug, "debug", defaults.Debug, "enable debug logging")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return AppConfig{}, err
		}
		return AppConfig{}, apperrors.NewConfigError("invalid arguments: %v", err)
	}
	if fs.NArg() > 0 {
		return AppConfig{}, apperrors.NewConfigError("unexpected positional arguments: %s", strings.Join(fs.Args(), " "))
	}
	return cfg, nil
}
