package word

import (
	"embed"
	"fmt"
	"os"
	"strings"

	"compat-matrix/internal/config"
	"compat-matrix/internal/exporter/common"
	"compat-matrix/internal/model"
	"compat-matrix/internal/utils"

	"github.com/nguyenthenguyen/docx"
)

//go:embed template.docx
var templateFS embed.FS

type WordExporter struct{}

func NewWordExporter() *WordExporter {
	return &WordExporter{}
}

func (e *WordExporter) Export(report *model.Report, cfg *config.Config) error {
	templateBytes, err := templateFS.ReadFile("template.docx")
	if err != nil {
		return fmt.Errorf("failed to read embedded template: %w", err)
	}

	// The docx reader needs a path, so stage the template on disk
	tmpFile, err := os.CreateTemp("", "compat-matrix-template-*.docx")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	defer os.Remove(tmpFile.Name())

	if _, err := tmpFile.Write(templateBytes); err != nil {
		tmpFile.Close()
		return fmt.Errorf("failed to write template to temp file: %w", err)
	}
	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}

	r, err := docx.ReadDocxFile(tmpFile.Name())
	if err != nil {
		return fmt.Errorf("failed to read docx from temp file: %w", err)
	}
	defer r.Close()

	doc := r.Editable()

	replacements := []struct{ placeholder, value string }{
		{"{{Title}}", report.Title},
		{"{{Date}}", report.GeneratedAt},
		{"{{Source}}", report.Source},
		{"{{TotalVersions}}", fmt.Sprintf("%d", len(report.Rows))},
		{"{{Content}}", buildContent(report)},
	}
	for _, rep := range replacements {
		if err := doc.Replace(rep.placeholder, rep.value, -1); err != nil {
			return fmt.Errorf("failed to fill %s: %w", rep.placeholder, err)
		}
	}

	if err := doc.WriteToFile(cfg.GetOutputPath(".docx")); err != nil {
		return fmt.Errorf("failed to write Word document: %w", err)
	}
	return nil
}

// buildContent lays the matrix out as fixed-width text, one block per version
func buildContent(report *model.Report) string {
	var sb strings.Builder

	yes, no := common.Totals(report)
	sb.WriteString("COMPATIBILITY MATRIX\n\n")
	sb.WriteString(fmt.Sprintf("  • Versions: %d\n", len(report.Rows)))
	sb.WriteString(fmt.Sprintf("  • Devices/Software: %d\n", len(report.Columns)))
	sb.WriteString(fmt.Sprintf("  • Compatible cells: %d, not compatible: %d\n\n", yes, no))
	sb.WriteString(strings.Repeat("=", 80) + "\n\n")

	for i, row := range report.Rows {
		sb.WriteString(fmt.Sprintf("VERSION %s\n", row.Version))
		sb.WriteString(fmt.Sprintf("%-25s %-8s %s\n", "Device/Software", "Verdict", "Cell"))
		sb.WriteString(strings.Repeat("-", 60) + "\n")

		for j, cell := range row.Cells {
			if j >= len(report.Columns) {
				break
			}
			sb.WriteString(fmt.Sprintf("%-25s %-8s %s\n",
				utils.Truncate(report.Columns[j], 25), cell.Verdict, cell.Raw))
		}

		if notes := common.RowNotes(report, row); len(notes) > 0 {
			sb.WriteString("\nSpecial requirements:\n")
			for _, note := range notes {
				sb.WriteString("  - " + note + "\n")
			}
		}

		if i < len(report.Rows)-1 {
			sb.WriteString("\n" + strings.Repeat("-", 80) + "\n\n")
		}
	}

	if len(report.Footnotes) > 0 {
		sb.WriteString("\n" + strings.Repeat("=", 80) + "\n\nFOOTNOTES\n")
		for _, fn := range report.Footnotes {
			sb.WriteString(fmt.Sprintf("%-6s %s\n", fn.Marker, fn.Explanation))
		}
	}

	return sb.String()
}
