package table

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Layout fixes where the compatibility table lives inside a sheet.
// Nothing about it is inferred from the data.
type Layout struct {
	HeaderRow   int // Rows above the header row (0-based offset of the header)
	FirstColumn int // 1-based, inclusive; holds the version key
	LastColumn  int // 1-based, inclusive
	RowCount    int // Exact number of data rows below the header
}

// DefaultLayout is the second table of the compatibility workbook: header on
// row 17, columns B through Q, 54 versions.
func DefaultLayout() Layout {
	return Layout{
		HeaderRow:   16,
		FirstColumn: 2,
		LastColumn:  17,
		RowCount:    54,
	}
}

// ColumnSpan returns the number of columns read per row, key included
func (l Layout) ColumnSpan() int {
	return l.LastColumn - l.FirstColumn + 1
}

// Validate rejects layouts that cannot describe a table
func (l Layout) Validate() error {
	if l.HeaderRow < 0 {
		return fmt.Errorf("header row offset must not be negative: %d", l.HeaderRow)
	}
	if l.FirstColumn < 1 {
		return fmt.Errorf("first column must be 1 or greater: %d", l.FirstColumn)
	}
	if l.LastColumn <= l.FirstColumn {
		return fmt.Errorf("column span %d..%d needs a key column and at least one value column", l.FirstColumn, l.LastColumn)
	}
	if l.RowCount < 1 {
		return fmt.Errorf("row count must be positive: %d", l.RowCount)
	}
	return nil
}

// ParseColumnRange converts a spreadsheet range such as "B:Q" into 1-based
// column numbers.
func ParseColumnRange(columns string) (first, last int, err error) {
	parts := strings.Split(strings.TrimSpace(columns), ":")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("invalid column range %q: expected FIRST:LAST", columns)
	}

	first, err = excelize.ColumnNameToNumber(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0, 0, fmt.Errorf("invalid column range %q: %w", columns, err)
	}
	last, err = excelize.ColumnNameToNumber(strings.TrimSpace(parts[1]))
	if err != nil {
		return 0, 0, fmt.Errorf("invalid column range %q: %w", columns, err)
	}
	if last < first {
		return 0, 0, fmt.Errorf("invalid column range %q: last column before first", columns)
	}
	return first, last, nil
}
