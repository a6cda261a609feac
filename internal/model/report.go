package model

// Report is the full compatibility matrix prepared for export
type Report struct {
	Title       string
	Source      string
	GeneratedAt string

	// Columns is the catalog order of tracked devices/software
	Columns []string

	Rows []ReportRow

	// Footnotes lists every marker the report refers to, in numeric order
	Footnotes []Footnote
}

// ReportRow is one product version and its cells in catalog order
type ReportRow struct {
	Version string

	// VersionNote explains a marker carried by the version key itself, if any
	VersionNote string

	Cells []ReportCell
}

// ReportCell is a single intersection of a version and a column
type ReportCell struct {
	Raw     string // Cell text as found in the source, e.g. "Yes[4]"
	Verdict string // "Yes" or "No"
	Marker  string // First footnote marker, e.g. "[4]", or empty
	Note    string // Explanation of Marker, empty when unregistered or absent
}

// Footnote pairs a marker with its explanation
type Footnote struct {
	Marker      string
	Explanation string
	Registered  bool
}

// NewReport creates an empty report
func NewReport() *Report {
	return &Report{
		Columns:   make([]string, 0),
		Rows:      make([]ReportRow, 0),
		Footnotes: make([]Footnote, 0),
	}
}

// HasNote reports whether the cell carries a footnote marker
func (c ReportCell) HasNote() bool {
	return c.Marker != ""
}
