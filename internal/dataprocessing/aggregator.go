package dataprocessing

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"salescli/internal/errors"
	"salescli/pkg/contracts/domain"
)

// Aggregator computes per-release net EUR totals for one platform statement
// at a time. It is stateless across sheets; the currency-rate cache lives
// only for the duration of a single Aggregate call.
type Aggregator struct {
	logger *slog.Logger
}

// NewAggregator creates a new statement aggregator.
func NewAggregator(logger *slog.Logger) *Aggregator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Aggregator{logger: logger}
}

// ComputeGain computes the net euro gain of one statement row:
// quantity * unit price * conversion rate * (1 - fee fraction).
// No rounding and no clamping is applied; a fee fraction outside [0,1] is
// the caller's data-quality problem and silently produces negative or
// inflated gains.
func ComputeGain(quantity, unitPrice, rate, feeFraction float64) float64 {
	return quantity * unitPrice * rate * (1 - feeFraction)
}

// Aggregate walks the statement's data rows, skips empty rows, resolves
// each row's currency rate lazily, and accumulates fee-adjusted gains per
// release key in first-appearance order. It returns the per-release totals
// and the sheet's grand total. The grand total is reported in logs only and
// is never written to the output workbook.
//
// Any malformed row aborts the run: errors propagate, nothing is skipped.
func (a *Aggregator) Aggregate(ctx context.Context, stmt domain.PlatformStatement) (*domain.ReleaseTotals, float64, error) {
	totals := domain.NewReleaseTotals()
	rates := NewRateCache()

	var grandTotal float64
	var dataRows int

	for i, row := range stmt.Rows {
		if row.IsEmpty() {
			continue
		}
		sheetRow := i + domain.DataStartRow

		rate, err := rates.Resolve(row.Currency, row.RateFormula)
		if err != nil {
			return nil, 0, fmt.Errorf("sheet %q row %d: %w", stmt.Platform, sheetRow, err)
		}

		quantity, err := parseAmount("quantity", row.Quantity)
		if err != nil {
			return nil, 0, fmt.Errorf("sheet %q row %d: %w", stmt.Platform, sheetRow, err)
		}
		unitPrice, err := parseAmount("unit price", row.UnitPrice)
		if err != nil {
			return nil, 0, fmt.Errorf("sheet %q row %d: %w", stmt.Platform, sheetRow, err)
		}
		feeFraction, err := parseAmount("fee fraction", row.FeeFraction)
		if err != nil {
			return nil, 0, fmt.Errorf("sheet %q row %d: %w", stmt.Platform, sheetRow, err)
		}

		gain := ComputeGain(quantity, unitPrice, rate, feeFraction)
		totals.Add(row.Key(), gain)
		grandTotal += gain
		dataRows++
	}

	a.logger.InfoContext(ctx, "aggregated platform statement",
		slog.String("platform", stmt.Platform),
		slog.Int("data_rows", dataRows),
		slog.Int("releases", totals.Len()),
		slog.Int("currencies", rates.Len()),
		slog.Float64("total_net_eur", grandTotal))

	return totals, grandTotal, nil
}

// parseAmount parses a numeric statement cell. Thousands separators are
// tolerated; anything else non-numeric, including an empty cell, is a fatal
// parsing error.
func parseAmount(field, raw string) (float64, error) {
	cleaned := strings.ReplaceAll(strings.TrimSpace(raw), ",", "")
	value, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0, errors.NewParsingError(fmt.Sprintf("non-numeric %s %q", field, raw), err)
	}
	return value, nil
}
