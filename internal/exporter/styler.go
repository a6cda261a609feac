package exporter

import (
	"github.com/xuri/excelize/v2"
)

// Styler holds the cell styles registered on a workbook
type Styler struct {
	File *excelize.File

	HeaderStyle  int
	VersionStyle int
	YesStyle     int
	NoStyle      int
	NotedYes     int
	NotedNo      int
	DefaultStyle int
}

// NewStyler registers every style the exporter uses on f
func NewStyler(f *excelize.File) (*Styler, error) {
	s := &Styler{File: f}

	entries := []struct {
		target *int
		style  *excelize.Style
	}{
		// Header: bold on gray, centered
		{&s.HeaderStyle, &excelize.Style{
			Font:      &excelize.Font{Bold: true, Color: "#000000"},
			Fill:      excelize.Fill{Type: "pattern", Color: []string{"#E0E0E0"}, Pattern: 1},
			Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center", WrapText: true},
			Border:    createBorder(),
		}},
		// Version key: bold blue
		{&s.VersionStyle, &excelize.Style{
			Font:      &excelize.Font{Bold: true, Color: "#0000FF"},
			Alignment: &excelize.Alignment{Vertical: "center"},
			Border:    createBorder(),
		}},
		{&s.YesStyle, verdictStyle("#C8E6C9", false)},
		{&s.NoStyle, verdictStyle("#FFCDD2", false)},
		// Cells with a footnote: same fill, italic
		{&s.NotedYes, verdictStyle("#C8E6C9", true)},
		{&s.NotedNo, verdictStyle("#FFCDD2", true)},
		{&s.DefaultStyle, &excelize.Style{
			Alignment: &excelize.Alignment{Vertical: "center", WrapText: true},
			Border:    createBorder(),
		}},
	}

	for _, entry := range entries {
		id, err := f.NewStyle(entry.style)
		if err != nil {
			return nil, err
		}
		*entry.target = id
	}

	return s, nil
}

// CellStyle picks the style for a verdict cell
func (s *Styler) CellStyle(verdict string, noted bool) int {
	switch {
	case verdict == "Yes" && noted:
		return s.NotedYes
	case verdict == "Yes":
		return s.YesStyle
	case noted:
		return s.NotedNo
	default:
		return s.NoStyle
	}
}

func verdictStyle(fill string, italic bool) *excelize.Style {
	return &excelize.Style{
		Font:      &excelize.Font{Italic: italic, Color: "#212121"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{fill}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		Border:    createBorder(),
	}
}

func createBorder() []excelize.Border {
	return []excelize.Border{
		{Type: "left", Color: "D4D4D4", Style: 1},
		{Type: "top", Color: "D4D4D4", Style: 1},
		{Type: "bottom", Color: "D4D4D4", Style: 1},
		{Type: "right", Color: "D4D4D4", Style: 1},
	}
}
