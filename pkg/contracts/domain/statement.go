package domain

import (
	"strconv"
	"strings"
)

// Sheet geometry shared by the reader and the aggregation core.
// Header lines occupy the first three sheet rows across the first six
// columns; data rows start at sheet row 5 in a window beginning at
// sheet column 2.
const (
	HeaderRowCount = 3
	HeaderColCount = 6
	DataStartRow   = 5
	WindowStartCol = 2
)

// ReleaseKey is the grouping identity for aggregation. Two statement rows
// with field-wise equal keys have their gains summed, including rows from
// different platforms. Artist, title, and label may be empty and are still
// valid key components.
type ReleaseKey struct {
	ISRC    string `json:"isrc"`
	Catalog string `json:"catalog"`
	Artist  string `json:"artist"`
	Title   string `json:"title"`
	Label   string `json:"label"`
}

// StatementRow is one data row of a platform sheet, cut to the column window
// the aggregation uses. Fields keep the raw cell text; numeric parsing
// happens during aggregation so a malformed cell aborts the run instead of
// being coerced to a default.
type StatementRow struct {
	ISRC        string `json:"isrc"`
	Catalog     string `json:"catalog"`
	Quantity    string `json:"quantity"`
	UnitPrice   string `json:"unit_price"`
	Currency    string `json:"currency"`
	Artist      string `json:"artist"`
	Title       string `json:"title"`
	Label       string `json:"label"`
	FeeFraction string `json:"fee_fraction"`
	RateFormula string `json:"rate_formula"`
}

// IsEmpty reports whether the row is a blank separator or trailing row.
// A row is empty when both its ISRC and catalog number are blank; such rows
// are skipped silently, never treated as errors.
func (r StatementRow) IsEmpty() bool {
	return IsBlankCell(r.ISRC) && IsBlankCell(r.Catalog)
}

// Key derives the release identity of the row.
func (r StatementRow) Key() ReleaseKey {
	return ReleaseKey{
		ISRC:    r.ISRC,
		Catalog: r.Catalog,
		Artist:  r.Artist,
		Title:   r.Title,
		Label:   r.Label,
	}
}

// PlatformStatement is the parsed form of one platform sheet.
type PlatformStatement struct {
	Platform    string         `json:"platform"`
	HeaderLines [][]string     `json:"header_lines"`
	Rows        []StatementRow `json:"rows"`
}

// IsBlankCell reports whether a cell value counts as absent: an empty or
// whitespace-only string, or a numeric value equal to zero. The same
// predicate decides row emptiness and rate-operand emptiness.
func IsBlankCell(s string) bool {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return true
	}
	if n, err := strconv.ParseFloat(trimmed, 64); err == nil && n == 0 {
		return true
	}
	return false
}

// LabelRow returns the synthesized column-label header row appended after
// the verbatim header lines of every output sheet.
func LabelRow() []string {
	return []string{"ISRC", "CATALOG NUMBER", "ARTIST", "TITLE", "LABEL", "TOTAL NET IN EUR"}
}
