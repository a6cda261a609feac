package html

import (
	"fmt"
	"html/template"
	"os"

	"compat-matrix/internal/config"
	"compat-matrix/internal/exporter/common"
	"compat-matrix/internal/model"
)

type HTMLExporter struct{}

func NewHTMLExporter() *HTMLExporter {
	return &HTMLExporter{}
}

// ReportData is what the page template renders
type ReportData struct {
	*model.Report
	TotalYes int
	TotalNo  int
	Stats    []common.ColumnStats
	Notes    map[string][]string // Version -> note lines
}

func (e *HTMLExporter) Export(report *model.Report, cfg *config.Config) error {
	yes, no := common.Totals(report)

	data := ReportData{
		Report:   report,
		TotalYes: yes,
		TotalNo:  no,
		Stats:    common.Summarize(report),
		Notes:    make(map[string][]string, len(report.Rows)),
	}
	for _, row := range report.Rows {
		data.Notes[row.Version] = common.RowNotes(report, row)
	}

	tmpl, err := template.New("compat-report").Funcs(template.FuncMap{
		"verdictClass": verdictClass,
		"notesFor": func(version string) []string {
			return data.Notes[version]
		},
	}).Parse(ReportTemplate)
	if err != nil {
		return fmt.Errorf("failed to parse report template: %w", err)
	}

	f, err := os.Create(cfg.GetOutputPath(".html"))
	if err != nil {
		return err
	}
	defer f.Close()

	return tmpl.Execute(f, data)
}

// verdictClass returns the CSS class for a cell
func verdictClass(cell model.ReportCell) string {
	class := "verdict-no"
	if cell.Verdict == "Yes" {
		class = "verdict-yes"
	}
	if cell.HasNote() {
		class += " noted"
	}
	return class
}
