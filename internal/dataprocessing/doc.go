// Package dataprocessing turns per-platform music-sales statements into
// per-release net EUR totals.
//
// # Architecture
//
// The package is organized into three main components:
//
// 1. Parser: reads the input workbook and extracts one PlatformStatement per
// platform sheet (the Summary sheet is skipped entirely)
//
// 2. Aggregator: validates rows, resolves currency conversion rates, computes
// fee-adjusted gains, and groups them by release identity
//
// 3. Pipeline: drives the per-sheet aggregation, folds the per-platform
// totals into one combined Cross-Platform result, and hands the assembled
// sheets to the exporter
//
// # Data Flow
//
//	Workbook → Parser → PlatformStatements → Aggregator → ReleaseTotals → Exporter
//
// # Error Handling
//
// Processing is fail-fast: a malformed row (non-numeric quantity, price, or
// fee, or an unparseable currency-conversion formula) aborts the whole run
// with a PARSING error. There is no row-level recovery and no partial output.
package dataprocessing
