package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"runtime"

	"salescli/internal/config"
	"salescli/internal/dataprocessing"
	"salescli/internal/errors"
	"salescli/internal/infrastructure"
)

// Version information, set at build time using ldflags.
var (
	Version   = "1.0.0"
	BuildDate = "unknown"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	fs := flag.NewFlagSet("aggregator", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	cfgFile := fs.String("config", "", "path to an optional YAML config file")
	outPath := fs.String("out", "", "output workbook path (default output.xlsx)")
	verbose := fs.Bool("verbose", false, "enable debug logging")
	showVersion := fs.Bool("version", false, "print version information and exit")
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags] <statements.xlsx>\n\n", fs.Name())
		fmt.Fprintln(os.Stderr, "Aggregates per-platform music-sales statements into per-release net EUR totals.")
		fmt.Fprintln(os.Stderr, "\nFlags:")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return 2
	}

	if *showVersion {
		fmt.Println("Music Sales Statement Aggregator")
		fmt.Printf("Version:    %s\n", Version)
		fmt.Printf("Build Date: %s\n", BuildDate)
		fmt.Printf("Go Version: %s\n", runtime.Version())
		return 0
	}

	if err := validateArgs(fs.NArg()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fs.Usage()
		return 2
	}
	inputPath := fs.Arg(0)

	cfg, err := config.Load(*cfgFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	if *verbose {
		cfg.Logging.Level = "debug"
	}
	if *outPath != "" {
		cfg.Processing.OutputPath = *outPath
	}

	if _, err := infrastructure.InitializeLogger(cfg.Logging); err != nil {
		slog.Warn("failed to initialize logger, using default", "error", err)
	}
	defer infrastructure.CloseLogFile()
	logger := infrastructure.NewRunLogger()

	fmt.Printf("=== Music Sales Statement Aggregator v%s ===\n", Version)
	logger.Info("starting run",
		slog.String("version", Version),
		slog.String("input", inputPath))

	pipeline := dataprocessing.NewPipeline(logger, cfg.Processing)
	summary, err := pipeline.Run(context.Background(), inputPath)
	if err != nil {
		logger.Error("aggregation failed",
			slog.String("error", err.Error()),
			slog.String("error_type", string(errors.TypeOf(err))))
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	fmt.Printf("Processed %d platform sheet(s), %d release(s)\n", summary.Platforms, summary.Releases)
	fmt.Printf("Combined net total: %.2f EUR\n", summary.CombinedTotal)
	fmt.Printf("Output written to %s\n", summary.OutputPath)
	return 0
}

// validateArgs enforces the single required positional argument: the input
// workbook path. Anything else is a usage error reported on stderr with a
// non-zero exit code.
func validateArgs(narg int) error {
	switch {
	case narg < 1:
		return errors.NewUsageError("missing input workbook path")
	case narg > 1:
		return errors.NewUsageError("expected exactly one input workbook path")
	}
	return nil
}
