package dataprocessing

import (
	stderrors "errors"
	"fmt"
	"io/fs"

	"github.com/xuri/excelize/v2"

	"salescli/internal/errors"
	"salescli/pkg/contracts/domain"
)

// Column offsets within the row window, which starts at sheet column
// domain.WindowStartCol. Offsets 2 and 6 are present in the statements but
// unused by aggregation.
const (
	colISRC        = 0
	colCatalog     = 1
	colQuantity    = 3
	colUnitPrice   = 4
	colCurrency    = 5
	colArtist      = 7
	colTitle       = 8
	colLabel       = 9
	colFeeFraction = 10
	colRateFormula = 11
)

// ParseFile opens a statement workbook and extracts one PlatformStatement
// per platform sheet, in the workbook's sheet order. The sheet named
// summarySheet is skipped entirely: it is neither aggregated nor emitted.
func ParseFile(path, summarySheet string) ([]domain.PlatformStatement, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		if stderrors.Is(err, fs.ErrNotExist) {
			return nil, errors.NewNotFoundError(fmt.Sprintf("input workbook %s", path))
		}
		return nil, errors.NewStorageError(fmt.Sprintf("failed to open workbook %s", path), err)
	}
	defer f.Close()

	var statements []domain.PlatformStatement
	for _, name := range f.GetSheetList() {
		if name == summarySheet {
			continue
		}
		stmt, err := parseSheet(f, name)
		if err != nil {
			return nil, err
		}
		statements = append(statements, stmt)
	}

	return statements, nil
}

// parseSheet reads one platform sheet: the verbatim header lines, the
// synthesized column-label row, and the raw data rows of the column window.
func parseSheet(f *excelize.File, name string) (domain.PlatformStatement, error) {
	rows, err := f.GetRows(name)
	if err != nil {
		return domain.PlatformStatement{}, errors.NewStorageError(
			fmt.Sprintf("failed to read sheet %s", name), err)
	}

	stmt := domain.PlatformStatement{Platform: name}

	// Header lines: sheet rows 1-3, columns 1-6, kept verbatim. Short or
	// missing rows pad with empty cells so the output replays the same shape.
	for r := 0; r < domain.HeaderRowCount; r++ {
		header := make([]string, domain.HeaderColCount)
		for c := 0; c < domain.HeaderColCount; c++ {
			header[c] = cellAt(rows, r, c)
		}
		stmt.HeaderLines = append(stmt.HeaderLines, header)
	}
	stmt.HeaderLines = append(stmt.HeaderLines, domain.LabelRow())

	windowBase := domain.WindowStartCol - 1 // 0-based index of the window's first column
	for r := domain.DataStartRow - 1; r < len(rows); r++ {
		row := domain.StatementRow{
			ISRC:        cellAt(rows, r, windowBase+colISRC),
			Catalog:     cellAt(rows, r, windowBase+colCatalog),
			Quantity:    cellAt(rows, r, windowBase+colQuantity),
			UnitPrice:   cellAt(rows, r, windowBase+colUnitPrice),
			Currency:    cellAt(rows, r, windowBase+colCurrency),
			Artist:      cellAt(rows, r, windowBase+colArtist),
			Title:       cellAt(rows, r, windowBase+colTitle),
			Label:       cellAt(rows, r, windowBase+colLabel),
			FeeFraction: cellAt(rows, r, windowBase+colFeeFraction),
		}

		formula, err := rateFormulaAt(f, name, r+1, windowBase+colRateFormula+1)
		if err != nil {
			return domain.PlatformStatement{}, err
		}
		if formula == "" {
			formula = cellAt(rows, r, windowBase+colRateFormula)
		}
		row.RateFormula = formula

		stmt.Rows = append(stmt.Rows, row)
	}

	return stmt, nil
}

// rateFormulaAt reads the conversion-formula cell as a formula. Statements
// store the conversion as a spreadsheet formula ("=A5 * 1.08"); when the
// cell holds a literal string instead, the caller falls back to the cached
// cell value.
func rateFormulaAt(f *excelize.File, sheet string, row, col int) (string, error) {
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return "", errors.NewStorageError(
			fmt.Sprintf("invalid cell coordinates (%d,%d) in sheet %s", col, row, sheet), err)
	}
	formula, err := f.GetCellFormula(sheet, cell)
	if err != nil {
		return "", errors.NewStorageError(
			fmt.Sprintf("failed to read formula cell %s in sheet %s", cell, sheet), err)
	}
	return formula, nil
}

// cellAt returns the cell value at the 0-based row/column position, or the
// empty string when the row is short. excelize trims trailing empty cells
// from GetRows results, so short rows are routine, not errors.
func cellAt(rows [][]string, r, c int) string {
	if r >= len(rows) || c >= len(rows[r]) {
		return ""
	}
	return rows[r][c]
}
