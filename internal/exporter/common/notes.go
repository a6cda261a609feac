package common

import (
	"fmt"

	"compat-matrix/internal/model"
)

// RowNotes lists the notes attached to a row as "Column: explanation" lines,
// the version note first. Unregistered markers are skipped.
func RowNotes(report *model.Report, row model.ReportRow) []string {
	var notes []string
	if row.VersionNote != "" {
		notes = append(notes, fmt.Sprintf("%s: %s", row.Version, row.VersionNote))
	}
	for i, cell := range row.Cells {
		if cell.Note == "" || i >= len(report.Columns) {
			continue
		}
		notes = append(notes, fmt.Sprintf("%s %s: %s", report.Columns[i], cell.Marker, cell.Note))
	}
	return notes
}
