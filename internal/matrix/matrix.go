package matrix

import (
	"fmt"
)

// Catalog is the ordered list of tracked devices and software.
// Position i names value i of every matrix row.
type Catalog []string

// Position returns the value index of name
func (c Catalog) Position(name string) (int, error) {
	for i, col := range c {
		if col == name {
			return i, nil
		}
	}
	return -1, &KeyNotFoundError{Kind: "column", Key: name}
}

// Validate rejects an empty catalog or repeated names
func (c Catalog) Validate() error {
	if len(c) == 0 {
		return fmt.Errorf("catalog must name at least one column")
	}
	seen := make(map[string]bool, len(c))
	for _, name := range c {
		if name == "" {
			return fmt.Errorf("catalog contains an empty column name")
		}
		if seen[name] {
			return fmt.Errorf("catalog lists %q twice", name)
		}
		seen[name] = true
	}
	return nil
}

// Matrix maps version keys to their compatibility cells. It is built once
// and never modified.
type Matrix struct {
	keys   []string
	values map[string][]string
	width  int
}

// Build indexes rows by their first cell. Any duplicate key or row whose
// value count differs from the catalog aborts the build.
func Build(rows [][]string, catalog Catalog) (*Matrix, error) {
	m := &Matrix{
		keys:   make([]string, 0, len(rows)),
		values: make(map[string][]string, len(rows)),
		width:  len(catalog),
	}
	firstSeen := make(map[string]int, len(rows))

	for i, row := range rows {
		if len(row) == 0 {
			return nil, &WidthError{Row: i, Width: 0, Expected: len(catalog)}
		}

		key := row[0]
		values := row[1:]

		if prev, ok := firstSeen[key]; ok {
			return nil, &DuplicateKeyError{Key: key, FirstRow: prev, SecondRow: i}
		}
		if len(values) != len(catalog) {
			return nil, &WidthError{Key: key, Row: i, Width: len(values), Expected: len(catalog)}
		}

		firstSeen[key] = i
		m.keys = append(m.keys, key)
		m.values[key] = append([]string(nil), values...)
	}

	return m, nil
}

// Get returns the values stored for key
func (m *Matrix) Get(key string) ([]string, error) {
	values, ok := m.values[key]
	if !ok {
		return nil, &KeyNotFoundError{Kind: "version", Key: key}
	}
	return values, nil
}

// Keys returns the version keys in load order
func (m *Matrix) Keys() []string {
	return append([]string(nil), m.keys...)
}

func (m *Matrix) Len() int {
	return len(m.keys)
}

// Width is the number of values per row
func (m *Matrix) Width() int {
	return m.width
}

// Reverse returns a reversed copy of seq
func Reverse(seq []string) []string {
	out := make([]string, len(seq))
	for i, v := range seq {
		out[len(seq)-1-i] = v
	}
	return out
}
