package exporter

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/xuri/excelize/v2"

	"salescli/internal/errors"
	"salescli/pkg/contracts/domain"
)

// AssembleRows produces the ordered rows of one output sheet: each header
// line verbatim (the synthesized column-label row included), followed by one
// row per release in the totals' first-insertion order.
func AssembleRows(headerLines [][]string, totals *domain.ReleaseTotals) [][]interface{} {
	rows := make([][]interface{}, 0, len(headerLines)+totals.Len())

	for _, header := range headerLines {
		row := make([]interface{}, len(header))
		for i, cell := range header {
			row[i] = cell
		}
		rows = append(rows, row)
	}

	for _, key := range totals.Keys() {
		gain, _ := totals.Get(key)
		rows = append(rows, []interface{}{key.ISRC, key.Catalog, key.Artist, key.Title, key.Label, gain})
	}

	return rows
}

// CrossPlatformHeaderLines derives the merged sheet's header from the first
// platform's header lines: a copy with the platform's name in the second
// header row's first cell rewritten to "Cross-Platform".
func CrossPlatformHeaderLines(headerLines [][]string, platform, crossPlatformName string) [][]string {
	copied := make([][]string, len(headerLines))
	for i, line := range headerLines {
		copied[i] = make([]string, len(line))
		copy(copied[i], line)
	}
	if len(copied) > 1 && len(copied[1]) > 0 && platform != "" {
		copied[1][0] = strings.ReplaceAll(copied[1][0], platform, crossPlatformName)
	}
	return copied
}

// WorkbookBuilder accumulates output sheets and writes them to disk.
type WorkbookBuilder struct {
	file         *excelize.File
	logger       *slog.Logger
	defaultSheet string
	sheets       int
}

// NewWorkbookBuilder creates a builder around a fresh workbook.
func NewWorkbookBuilder(logger *slog.Logger) *WorkbookBuilder {
	if logger == nil {
		logger = slog.Default()
	}
	f := excelize.NewFile()
	return &WorkbookBuilder{
		file:         f,
		logger:       logger,
		defaultSheet: f.GetSheetName(0),
	}
}

// AddSheet appends one output sheet holding the assembled header lines and
// release rows, in order.
func (b *WorkbookBuilder) AddSheet(name string, headerLines [][]string, totals *domain.ReleaseTotals) error {
	if _, err := b.file.NewSheet(name); err != nil {
		return errors.NewStorageError(fmt.Sprintf("failed to create output sheet %s", name), err)
	}

	for r, row := range AssembleRows(headerLines, totals) {
		for c, value := range row {
			cell, err := excelize.CoordinatesToCellName(c+1, r+1)
			if err != nil {
				return errors.NewStorageError(
					fmt.Sprintf("invalid cell coordinates (%d,%d) in sheet %s", c+1, r+1, name), err)
			}
			if err := b.file.SetCellValue(name, cell, value); err != nil {
				return errors.NewStorageError(
					fmt.Sprintf("failed to write cell %s in sheet %s", cell, name), err)
			}
		}
	}

	b.sheets++
	b.logger.Info("assembled output sheet",
		slog.String("sheet", name),
		slog.Int("releases", totals.Len()))
	return nil
}

// Save removes the workbook's default sheet and writes the file to path.
func (b *WorkbookBuilder) Save(path string) error {
	defer b.file.Close()

	if b.sheets == 0 {
		return errors.NewAppValidationError("no output sheets were assembled")
	}
	if err := b.file.DeleteSheet(b.defaultSheet); err != nil {
		return errors.NewStorageError(
			fmt.Sprintf("failed to remove default sheet %s", b.defaultSheet), err)
	}
	if err := b.file.SaveAs(path); err != nil {
		return errors.NewStorageError(fmt.Sprintf("failed to save workbook %s", path), err)
	}

	b.logger.Info("saved output workbook",
		slog.String("path", path),
		slog.Int("sheets", b.sheets))
	return nil
}
