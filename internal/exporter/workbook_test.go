package exporter

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"salescli/pkg/contracts/domain"
)

func sampleTotals() *domain.ReleaseTotals {
	totals := domain.NewReleaseTotals()
	totals.Add(domain.ReleaseKey{ISRC: "X2", Catalog: "C2", Artist: "B", Title: "U", Label: "M"}, 5.0)
	totals.Add(domain.ReleaseKey{ISRC: "X1", Catalog: "C1", Artist: "A", Title: "T", Label: "L"}, 18.0)
	return totals
}

func sampleHeaders() [][]string {
	return [][]string{
		{"Sales Statement", "", "", "", "", "EUR"},
		{"Bandcamp Q3 2025", "", "", "", "", ""},
		{"All amounts gross", "", "", "", "", ""},
		domain.LabelRow(),
	}
}

func TestAssembleRows(t *testing.T) {
	rows := AssembleRows(sampleHeaders(), sampleTotals())

	require.Len(t, rows, 6)
	// Header lines replayed verbatim, label row included.
	assert.Equal(t, "Sales Statement", rows[0][0])
	assert.Equal(t, "Bandcamp Q3 2025", rows[1][0])
	assert.Equal(t, "TOTAL NET IN EUR", rows[3][5])

	// Release rows follow insertion order, key fields then gain.
	assert.Equal(t, []interface{}{"X2", "C2", "B", "U", "M", 5.0}, rows[4])
	assert.Equal(t, []interface{}{"X1", "C1", "A", "T", "L", 18.0}, rows[5])
}

func TestAssembleRows_EmptyTotals(t *testing.T) {
	rows := AssembleRows(sampleHeaders(), domain.NewReleaseTotals())
	assert.Len(t, rows, 4)
}

func TestCrossPlatformHeaderLines(t *testing.T) {
	headers := sampleHeaders()
	rewritten := CrossPlatformHeaderLines(headers, "Bandcamp", "Cross-Platform")

	assert.Equal(t, "Cross-Platform Q3 2025", rewritten[1][0])
	// The input header lines are untouched.
	assert.Equal(t, "Bandcamp Q3 2025", headers[1][0])
	// Other lines are copied verbatim.
	assert.Equal(t, headers[0], rewritten[0])
	assert.Equal(t, domain.LabelRow(), rewritten[3])
}

func TestCrossPlatformHeaderLines_NameAbsent(t *testing.T) {
	headers := [][]string{{"a"}, {"no platform here"}}
	rewritten := CrossPlatformHeaderLines(headers, "Bandcamp", "Cross-Platform")
	assert.Equal(t, "no platform here", rewritten[1][0])
}

func TestWorkbookBuilder_SaveRoundTrip(t *testing.T) {
	builder := NewWorkbookBuilder(nil)
	require.NoError(t, builder.AddSheet("Bandcamp", sampleHeaders(), sampleTotals()))

	path := filepath.Join(t.TempDir(), "output.xlsx")
	require.NoError(t, builder.Save(path))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	// The default sheet of the fresh workbook is gone.
	assert.Equal(t, []string{"Bandcamp"}, f.GetSheetList())

	rows, err := f.GetRows("Bandcamp")
	require.NoError(t, err)
	require.Len(t, rows, 6)
	assert.Equal(t, "Sales Statement", rows[0][0])
	assert.Equal(t, "ISRC", rows[3][0])
	assert.Equal(t, "X2", rows[4][0])
	assert.Equal(t, "5", rows[4][5])
	assert.Equal(t, "18", rows[5][5])
}

func TestWorkbookBuilder_SaveWithoutSheets(t *testing.T) {
	builder := NewWorkbookBuilder(nil)
	err := builder.Save(filepath.Join(t.TempDir(), "output.xlsx"))
	require.Error(t, err)
}
