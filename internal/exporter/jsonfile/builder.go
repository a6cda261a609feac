package jsonfile

import (
	"encoding/json"
	"os"

	"compat-matrix/internal/config"
	"compat-matrix/internal/model"
)

// Document is the JSON layout of a compatibility report
type Document struct {
	Title       string            `json:"title"`
	Source      string            `json:"source"`
	GeneratedAt string            `json:"generated_at"`
	Columns     []string          `json:"columns"`
	Versions    []VersionEntry    `json:"versions"`
	Footnotes   map[string]string `json:"footnotes"`
}

// VersionEntry is one matrix row keyed by column name
type VersionEntry struct {
	Version     string           `json:"version"`
	VersionNote string           `json:"version_note,omitempty"`
	Cells       map[string]Entry `json:"cells"`
}

// Entry is a single cell
type Entry struct {
	Verdict string `json:"verdict"`
	Raw     string `json:"raw"`
	Note    string `json:"note,omitempty"`
}

type JSONExporter struct{}

func NewJSONExporter() *JSONExporter {
	return &JSONExporter{}
}

func (e *JSONExporter) Export(report *model.Report, cfg *config.Config) error {
	file, err := os.Create(cfg.GetOutputPath(".json"))
	if err != nil {
		return err
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	encoder.SetEscapeHTML(false)
	return encoder.Encode(BuildDocument(report))
}

// BuildDocument converts a report to its JSON form
func BuildDocument(report *model.Report) Document {
	doc := Document{
		Title:       report.Title,
		Source:      report.Source,
		GeneratedAt: report.GeneratedAt,
		Columns:     report.Columns,
		Versions:    make([]VersionEntry, 0, len(report.Rows)),
		Footnotes:   make(map[string]string, len(report.Footnotes)),
	}

	for _, row := range report.Rows {
		entry := VersionEntry{
			Version:     row.Version,
			VersionNote: row.VersionNote,
			Cells:       make(map[string]Entry, len(row.Cells)),
		}
		for i, cell := range row.Cells {
			if i >= len(report.Columns) {
				break
			}
			entry.Cells[report.Columns[i]] = Entry{
				Verdict: cell.Verdict,
				Raw:     cell.Raw,
				Note:    cell.Note,
			}
		}
		doc.Versions = append(doc.Versions, entry)
	}

	for _, fn := range report.Footnotes {
		if fn.Registered {
			doc.Footnotes[fn.Marker] = fn.Explanation
		}
	}

	return doc
}
