package table

import (
	"compat-matrix/internal/utils"
)

// Table is the fixed-layout slice of a sheet
type Table struct {
	Source string
	Header []string   // Header row across the span, informational only
	Rows   [][]string // Each row: version key followed by compatibility cells
}

// Load reads src and cuts out the block described by layout.
// Every failure is a *LoadError and no partial table is returned.
func Load(src Source, layout Layout) (*Table, error) {
	name := src.Name()

	if err := layout.Validate(); err != nil {
		return nil, loadErrorf(name, err, "invalid layout")
	}

	grid, err := src.Grid()
	if err != nil {
		return nil, loadErrorf(name, err, "source unreadable")
	}

	needed := layout.HeaderRow + 1 + layout.RowCount
	if len(grid) < needed {
		return nil, loadErrorf(name, nil, "expected at least %d rows (header offset %d + header + %d data rows), found %d",
			needed, layout.HeaderRow, layout.RowCount, len(grid))
	}

	span := layout.ColumnSpan()
	first := layout.FirstColumn - 1

	t := &Table{
		Source: name,
		Header: sliceSpan(grid[layout.HeaderRow], first, span),
		Rows:   make([][]string, 0, layout.RowCount),
	}

	for i := 0; i < layout.RowCount; i++ {
		sheetRow := layout.HeaderRow + 1 + i
		raw := grid[sheetRow]

		if len(raw) < first+span {
			return nil, loadErrorf(name, nil, "sheet row %d has %d columns, layout needs %d",
				sheetRow+1, len(raw), first+span)
		}

		row := make([]string, span)
		for j := 0; j < span; j++ {
			cell := utils.CleanCell(raw[first+j])
			if cell == "" {
				return nil, loadErrorf(name, nil, "sheet row %d column %d is blank", sheetRow+1, first+j+1)
			}
			row[j] = cell
		}
		t.Rows = append(t.Rows, row)
	}

	return t, nil
}

// sliceSpan copies span cells starting at first, padding missing cells with ""
func sliceSpan(raw []string, first, span int) []string {
	out := make([]string, span)
	for j := 0; j < span; j++ {
		if first+j < len(raw) {
			out[j] = utils.CleanCell(raw[first+j])
		}
	}
	return out
}
