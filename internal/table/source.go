package table

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/xuri/excelize/v2"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

// Source yields the raw cell grid of a sheet, row-major, starting at the
// sheet origin. Rows may be ragged.
type Source interface {
	Name() string
	Grid() ([][]string, error)
}

// Open picks a Source for path by its extension.
// sheet is only used for workbooks; empty means the first sheet.
func Open(path, sheet string) (Source, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".xlsx", ".xlsm", ".xltx", ".xltm":
		return NewXLSXSource(path, sheet), nil
	case ".csv":
		return NewCSVSource(path), nil
	default:
		return nil, loadErrorf(path, nil, "unsupported file type %q", ext)
	}
}

// XLSXSource reads one sheet of an Office Open XML workbook
type XLSXSource struct {
	Path  string
	Sheet string
}

func NewXLSXSource(path, sheet string) *XLSXSource {
	return &XLSXSource{Path: path, Sheet: sheet}
}

func (s *XLSXSource) Name() string {
	if s.Sheet == "" {
		return s.Path
	}
	return fmt.Sprintf("%s [%s]", s.Path, s.Sheet)
}

func (s *XLSXSource) Grid() ([][]string, error) {
	f, err := excelize.OpenFile(s.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	sheet := s.Sheet
	if sheet == "" {
		sheet = f.GetSheetName(0)
		if sheet == "" {
			return nil, fmt.Errorf("workbook has no sheets")
		}
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheet, err)
	}
	return rows, nil
}

// CSVSource reads a comma-separated export of the sheet. Exports that are not
// valid UTF-8 are treated as Windows-1252, which is what Excel writes by default.
type CSVSource struct {
	Path string
}

func NewCSVSource(path string) *CSVSource {
	return &CSVSource{Path: path}
}

func (s *CSVSource) Name() string {
	return s.Path
}

func (s *CSVSource) Grid() ([][]string, error) {
	raw, err := os.ReadFile(s.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	content, err := decodeText(raw)
	if err != nil {
		return nil, err
	}

	reader := csv.NewReader(bytes.NewReader(content))
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse CSV: %w", err)
	}
	return rows, nil
}

// decodeText returns UTF-8 bytes, stripping a BOM and decoding Windows-1252
// when the input is not already UTF-8.
func decodeText(raw []byte) ([]byte, error) {
	raw = bytes.TrimPrefix(raw, []byte("\xef\xbb\xbf"))
	if utf8.Valid(raw) {
		return raw, nil
	}

	decoded, _, err := transform.Bytes(charmap.Windows1252.NewDecoder(), raw)
	if err != nil {
		return nil, fmt.Errorf("failed to decode Windows-1252 text: %w", err)
	}
	return decoded, nil
}

// GridSource serves a table held in memory
type GridSource struct {
	Label string
	Cells [][]string
}

func NewGridSource(label string, cells [][]string) *GridSource {
	return &GridSource{Label: label, Cells: cells}
}

func (s *GridSource) Name() string {
	return s.Label
}

func (s *GridSource) Grid() ([][]string, error) {
	out := make([][]string, len(s.Cells))
	for i, row := range s.Cells {
		out[i] = append([]string(nil), row...)
	}
	return out, nil
}
