package common

import "compat-matrix/internal/model"

// ColumnStats counts verdicts for one catalog column
type ColumnStats struct {
	Column string
	Yes    int
	No     int
	Noted  int // Cells carrying a footnote marker
}

// Summarize counts verdicts per column, in catalog order
func Summarize(report *model.Report) []ColumnStats {
	stats := make([]ColumnStats, len(report.Columns))
	for i, col := range report.Columns {
		stats[i].Column = col
	}

	for _, row := range report.Rows {
		for i, cell := range row.Cells {
			if i >= len(stats) {
				break
			}
			if cell.Verdict == "Yes" {
				stats[i].Yes++
			} else {
				stats[i].No++
			}
			if cell.HasNote() {
				stats[i].Noted++
			}
		}
	}
	return stats
}

// Totals sums Yes and No over every cell
func Totals(report *model.Report) (yes, no int) {
	for _, s := range Summarize(report) {
		yes += s.Yes
		no += s.No
	}
	return yes, no
}
