package html

import (
	"os"
	"strings"
	"testing"

	"compat-matrix/internal/config"
	"compat-matrix/internal/model"
)

func TestHTMLExport(t *testing.T) {
	r := model.NewReport()
	r.Title = "Eagle Compatibility Master"
	r.GeneratedAt = "2026-10-19"
	r.Columns = []string{"SafetyNet", "MICT"}
	r.Rows = []model.ReportRow{{
		Version: "V1002 – V1303",
		Cells: []model.ReportCell{
			{Raw: "Yes[1]", Verdict: "Yes", Marker: "[1]", Note: "Requires minimum SafetyNet V4400"},
			{Raw: "No", Verdict: "No"},
		},
	}}
	r.Footnotes = []model.Footnote{
		{Marker: "[1]", Explanation: "Requires minimum SafetyNet V4400", Registered: true},
		{Marker: "[99]", Explanation: "no annotation", Registered: false},
	}

	cfg := &config.Config{Output: config.OutputConfig{Dir: t.TempDir(), FileName: "report"}}
	if err := NewHTMLExporter().Export(r, cfg); err != nil {
		t.Fatalf("Export failed: %v", err)
	}

	content, err := os.ReadFile(cfg.GetOutputPath(".html"))
	if err != nil {
		t.Fatalf("Failed to read output: %v", err)
	}
	page := string(content)

	for _, want := range []string{
		"<title>Eagle Compatibility Master - 2026-10-19</title>",
		`<td class="version">V1002 – V1303</td>`,
		`class="verdict-yes noted"`,
		`class="verdict-no"`,
		"SafetyNet [1]: Requires minimum SafetyNet V4400",
		`class="unregistered"`,
	} {
		if !strings.Contains(page, want) {
			t.Errorf("Page missing %q", want)
		}
	}
}

func TestVerdictClass(t *testing.T) {
	tests := []struct {
		cell     model.ReportCell
		expected string
	}{
		{model.ReportCell{Verdict: "Yes"}, "verdict-yes"},
		{model.ReportCell{Verdict: "Yes", Marker: "[4]"}, "verdict-yes noted"},
		{model.ReportCell{Verdict: "No"}, "verdict-no"},
		{model.ReportCell{Verdict: "No", Marker: "[99]"}, "verdict-no noted"},
	}

	for _, tt := range tests {
		if got := verdictClass(tt.cell); got != tt.expected {
			t.Errorf("verdictClass(%+v) = %q, expected %q", tt.cell, got, tt.expected)
		}
	}
}
