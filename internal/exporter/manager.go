package exporter

import (
	"strings"

	"compat-matrix/internal/exporter/html"
	"compat-matrix/internal/exporter/jsonfile"
	"compat-matrix/internal/exporter/word"
)

// GetExporters returns one Exporter per recognized format, in request order.
// Unknown formats are ignored.
func GetExporters(formats []string) []Exporter {
	exporters := []Exporter{}
	seen := make(map[string]bool)

	for _, fmtStr := range formats {
		fmtStr = strings.ToLower(strings.TrimSpace(fmtStr))
		if fmtStr == "" {
			continue
		}

		var exp Exporter
		var key string
		switch fmtStr {
		case "excel", "xlsx":
			exp, key = NewExcelExporter(), "excel"
		case "html":
			exp, key = html.NewHTMLExporter(), "html"
		case "word", "docx":
			exp, key = word.NewWordExporter(), "word"
		case "json":
			exp, key = jsonfile.NewJSONExporter(), "json"
		default:
			continue
		}

		if seen[key] {
			continue
		}
		seen[key] = true
		exporters = append(exporters, exp)
	}

	return exporters
}
