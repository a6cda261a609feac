package exporter

import (
	"fmt"
	"strings"

	"compat-matrix/internal/config"
	"compat-matrix/internal/exporter/common"
	"compat-matrix/internal/model"

	"github.com/xuri/excelize/v2"
)

const (
	sheetMatrix    = "Matrix"
	sheetSummary   = "Summary"
	sheetFootnotes = "Footnotes"
)

// ExcelExporter writes the report as a styled workbook
type ExcelExporter struct{}

func NewExcelExporter() *ExcelExporter {
	return &ExcelExporter{}
}

// Export generates <output>/<file_name>.xlsx
func (e *ExcelExporter) Export(report *model.Report, cfg *config.Config) error {
	f := excelize.NewFile()
	defer f.Close()

	styler, err := NewStyler(f)
	if err != nil {
		return err
	}

	if err := e.writeMatrix(f, styler, report); err != nil {
		return err
	}
	if err := e.writeSummary(f, styler, report); err != nil {
		return err
	}
	if err := e.writeFootnotes(f, styler, report); err != nil {
		return err
	}

	if idx, err := f.GetSheetIndex("Sheet1"); err == nil && idx != -1 {
		f.DeleteSheet("Sheet1")
	}
	if idx, err := f.GetSheetIndex(sheetMatrix); err == nil && idx != -1 {
		f.SetActiveSheet(idx)
	}

	if err := f.SaveAs(cfg.GetOutputPath(".xlsx")); err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}
	return nil
}

// --- Matrix Sheet ---

func (e *ExcelExporter) writeMatrix(f *excelize.File, s *Styler, report *model.Report) error {
	if _, err := f.NewSheet(sheetMatrix); err != nil {
		return err
	}

	headers := append([]string{"Version"}, report.Columns...)
	headers = append(headers, "Notes")
	e.writeRow(f, sheetMatrix, 1, headers, s.HeaderStyle)

	f.SetPanes(sheetMatrix, &excelize.Panes{
		Freeze:      true,
		XSplit:      1,
		YSplit:      1,
		TopLeftCell: "B2",
		ActivePane:  "bottomRight",
	})

	notesCol := len(report.Columns) + 2
	for i, row := range report.Rows {
		rowNum := i + 2

		cell, _ := excelize.CoordinatesToCellName(1, rowNum)
		f.SetCellValue(sheetMatrix, cell, row.Version)
		f.SetCellStyle(sheetMatrix, cell, cell, s.VersionStyle)

		for j, c := range row.Cells {
			cell, _ = excelize.CoordinatesToCellName(j+2, rowNum)
			f.SetCellValue(sheetMatrix, cell, c.Raw)
			f.SetCellStyle(sheetMatrix, cell, cell, s.CellStyle(c.Verdict, c.HasNote()))
		}

		cell, _ = excelize.CoordinatesToCellName(notesCol, rowNum)
		f.SetCellValue(sheetMatrix, cell, strings.Join(common.RowNotes(report, row), "\n"))
		f.SetCellStyle(sheetMatrix, cell, cell, s.DefaultStyle)
	}

	lastCol, _ := excelize.ColumnNumberToName(notesCol)
	lastMatrixCol, _ := excelize.ColumnNumberToName(notesCol - 1)
	f.SetColWidth(sheetMatrix, "A", "A", 18)
	f.SetColWidth(sheetMatrix, "B", lastMatrixCol, 12)
	f.SetColWidth(sheetMatrix, lastCol, lastCol, 60)

	return nil
}

// --- Summary Sheet ---

func (e *ExcelExporter) writeSummary(f *excelize.File, s *Styler, report *model.Report) error {
	if _, err := f.NewSheet(sheetSummary); err != nil {
		return err
	}

	row := 1
	for _, kv := range [][2]string{
		{"Title", report.Title},
		{"Source", report.Source},
		{"Generated", report.GeneratedAt},
		{"Versions", fmt.Sprintf("%d", len(report.Rows))},
	} {
		f.SetCellValue(sheetSummary, fmt.Sprintf("A%d", row), kv[0])
		f.SetCellStyle(sheetSummary, fmt.Sprintf("A%d", row), fmt.Sprintf("A%d", row), s.HeaderStyle)
		f.SetCellValue(sheetSummary, fmt.Sprintf("B%d", row), kv[1])
		row++
	}

	row += 1
	e.writeRow(f, sheetSummary, row, []string{"Column", "Yes", "No", "With Footnote"}, s.HeaderStyle)
	row++

	for _, st := range common.Summarize(report) {
		f.SetCellValue(sheetSummary, fmt.Sprintf("A%d", row), st.Column)
		f.SetCellValue(sheetSummary, fmt.Sprintf("B%d", row), st.Yes)
		f.SetCellValue(sheetSummary, fmt.Sprintf("C%d", row), st.No)
		f.SetCellValue(sheetSummary, fmt.Sprintf("D%d", row), st.Noted)
		f.SetCellStyle(sheetSummary, fmt.Sprintf("A%d", row), fmt.Sprintf("D%d", row), s.DefaultStyle)
		row++
	}

	f.SetColWidth(sheetSummary, "A", "A", 20)
	f.SetColWidth(sheetSummary, "B", "B", 50)
	return nil
}

// --- Footnotes Sheet ---

func (e *ExcelExporter) writeFootnotes(f *excelize.File, s *Styler, report *model.Report) error {
	if _, err := f.NewSheet(sheetFootnotes); err != nil {
		return err
	}

	e.writeRow(f, sheetFootnotes, 1, []string{"Marker", "Explanation"}, s.HeaderStyle)
	for i, fn := range report.Footnotes {
		row := i + 2
		f.SetCellValue(sheetFootnotes, fmt.Sprintf("A%d", row), fn.Marker)
		f.SetCellValue(sheetFootnotes, fmt.Sprintf("B%d", row), fn.Explanation)
		f.SetCellStyle(sheetFootnotes, fmt.Sprintf("A%d", row), fmt.Sprintf("B%d", row), s.DefaultStyle)
	}
	f.SetColWidth(sheetFootnotes, "B", "B", 90)
	return nil
}

func (e *ExcelExporter) writeRow(f *excelize.File, sheet string, row int, values []string, style int) {
	for i, val := range values {
		cell, _ := excelize.CoordinatesToCellName(i+1, row)
		f.SetCellValue(sheet, cell, val)
		f.SetCellStyle(sheet, cell, cell, style)
	}
}
