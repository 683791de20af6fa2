// Package app wires the application together: configuration, logging, the
// calculator registry, and either the one-shot CLI calculation or the HTTP
// server, mapping every outcome to a process exit code.
package app

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"

	"github.com/agbru/fibmatrix/internal/cli"
	"github.com/agbru/fibmatrix/internal/config"
	apperrors "github.com/agbru/fibmatrix/internal/errors"
	"github.com/agbru/fibmatrix/internal/fibonacci"
	"github.com/agbru/fibmatrix/internal/logging"
	"github.com/agbru/fibmatrix/internal/orchestration"
	"github.com/agbru/fibmatrix/internal/server"
	"github.com/agbru/fibmatrix/internal/service"
	"github.com/agbru/fibmatrix/internal/ui"
)

// Run executes the application and returns its exit code.
//
// Parameters:
//   - args: Command-line arguments, without the program name.
//   - stdout: Destination for results and summaries.
//   - stderr: Destination for progress display and diagnostics.
//
// Returns:
//   - int: The process exit code (see apperrors exit codes).
func Run(args []string, stdout, stderr io.Writer) int {
	cfg, err := config.ParseConfig(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return apperrors.ExitSuccess
		}
		fmt.Fprintf(stderr, "Configuration error: %v\n", err)
		return apperrors.ExitErrorConfig
	}

	factory := fibonacci.NewDefaultFactory()
	if err := cfg.Validate(factory.List()); err != nil {
		fmt.Fprintf(stderr, "Configuration error: %v\n", err)
		return apperrors.ExitErrorConfig
	}

	ui.SetNoColor(cfg.NoColor)
	if cfg.Debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	}
	logger := logging.NewDefaultLogger()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.ServerMode {
		return runServer(ctx, cfg, factory, logger, stderr)
	}
	return runCalculation(ctx, cfg, factory, stdout, stderr)
}

// runServer hosts the HTTP API until the context is cancelled.
func runServer(ctx context.Context, cfg config.AppConfig, factory fibonacci.CalculatorFactory, logger logging.Logger, stderr io.Writer) int {
	svc := service.NewCalculatorService(factory, logger, 0)
	srv := server.NewServer(":"+cfg.Port, svc, logger,
		server.WithRequestTimeout(cfg.Timeout))
	if err := srv.Run(ctx); err != nil {
		fmt.Fprintf(stderr, "Server error: %v\n", err)
		return apperrors.ExitErrorGeneric
	}
	return apperrors.ExitSuccess
}

// runCalculation performs the one-shot CLI calculation, with either the
// selected algorithm or all of them cross-checked against each other.
func runCalculation(ctx context.Context, cfg config.AppConfig, factory fibonacci.CalculatorFactory, stdout, stderr io.Writer) int {
	ctx, cancel := context.WithTimeout(ctx, cfg.Timeout)
	defer cancel()

	names := []string{cfg.Algo}
	if cfg.Algo == "all" {
		names = factory.List()
	}
	calculators := make([]fibonacci.Calculator, 0, len(names))
	for _, name := range names {
		calc, err := factory.Get(name)
		if err != nil {
			fmt.Fprintf(stderr, "Configuration error: %v\n", err)
			return apperrors.ExitErrorConfig
		}
		calculators = append(calculators, calc)
	}

	results := orchestration.ExecuteCalculations(ctx, calculators, cfg, stderr)

	if len(results) > 1 {
		return orchestration.AnalyzeComparisonResults(results, cfg, stdout)
	}
	return reportSingleResult(results[0], cfg, stdout, stderr)
}

// reportSingleResult renders one calculation's outcome and maps it to an
// exit code.
func reportSingleResult(res orchestration.CalculationResult, cfg config.AppConfig, stdout, stderr io.Writer) int {
	if res.Err != nil {
		return apperrors.HandleCalculationError(res.Err, res.Duration, stderr)
	}
	if cfg.JSONOutput {
		if err := cli.WriteJSONResult(stdout, res.Name, cfg.N, res.Result, res.Duration); err != nil {
			fmt.Fprintf(stderr, "Failed to write result: %v\n", err)
			return apperrors.ExitErrorGeneric
		}
		return apperrors.ExitSuccess
	}
	if cfg.Quiet {
		fmt.Fprintln(stdout, cli.FormatResult(res.Result, cfg.Verbose))
		return apperrors.ExitSuccess
	}
	cli.PrintResult(stdout, res.Name, cfg.N, res.Result, res.Duration, cfg.Verbose)
	return apperrors.ExitSuccess
}
