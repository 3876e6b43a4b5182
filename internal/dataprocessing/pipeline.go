package dataprocessing

import (
	"context"
	"fmt"
	"log/slog"

	"salescli/internal/config"
	"salescli/internal/errors"
	"salescli/internal/exporter"
	"salescli/pkg/contracts/domain"
)

// Pipeline drives one aggregation run: parse the input workbook, aggregate
// each platform sheet, fold the per-platform totals into the combined
// Cross-Platform result, and save the output workbook. Processing is
// strictly sequential — one sheet at a time, platforms merged in discovery
// order — and fails atomically: the first error aborts the run with no
// partial output written.
type Pipeline struct {
	logger *slog.Logger
	cfg    config.ProcessingConfig
}

// NewPipeline creates a pipeline with the given processing configuration.
func NewPipeline(logger *slog.Logger, cfg config.ProcessingConfig) *Pipeline {
	if logger == nil {
		logger = slog.Default()
	}
	return &Pipeline{logger: logger, cfg: cfg}
}

// RunSummary reports what one aggregation run produced.
type RunSummary struct {
	Platforms     int
	Releases      int
	CombinedTotal float64
	OutputPath    string
}

// Run processes the workbook at inputPath and writes the output workbook to
// the configured output path.
func (p *Pipeline) Run(ctx context.Context, inputPath string) (*RunSummary, error) {
	p.logger.InfoContext(ctx, "starting statement aggregation",
		slog.String("input", inputPath),
		slog.String("output", p.cfg.OutputPath))

	statements, err := ParseFile(inputPath, p.cfg.SummarySheet)
	if err != nil {
		return nil, err
	}
	if len(statements) == 0 {
		return nil, errors.NewAppValidationError("input workbook contains no platform sheets")
	}

	builder := exporter.NewWorkbookBuilder(p.logger)
	aggregator := NewAggregator(p.logger)
	merged := domain.NewReleaseTotals()

	first := statements[0]
	for _, stmt := range statements {
		totals, total, err := aggregator.Aggregate(ctx, stmt)
		if err != nil {
			return nil, err
		}

		p.logger.InfoContext(ctx, "platform total",
			slog.String("platform", stmt.Platform),
			slog.Float64("total_net_eur", total))

		if err := builder.AddSheet(stmt.Platform, stmt.HeaderLines, totals); err != nil {
			return nil, err
		}
		merged.Merge(totals)
	}

	crossHeader := exporter.CrossPlatformHeaderLines(first.HeaderLines, first.Platform, p.cfg.CrossPlatformSheet)
	if err := builder.AddSheet(p.cfg.CrossPlatformSheet, crossHeader, merged); err != nil {
		return nil, err
	}

	combinedTotal := merged.Total()
	p.logger.InfoContext(ctx, "combined total across platforms",
		slog.Int("platforms", len(statements)),
		slog.Int("releases", merged.Len()),
		slog.Float64("total_net_eur", combinedTotal))

	if err := builder.Save(p.cfg.OutputPath); err != nil {
		return nil, fmt.Errorf("writing %s: %w", p.cfg.OutputPath, err)
	}

	return &RunSummary{
		Platforms:     len(statements),
		Releases:      merged.Len(),
		CombinedTotal: combinedTotal,
		OutputPath:    p.cfg.OutputPath,
	}, nil
}
