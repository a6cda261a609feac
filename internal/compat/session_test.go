package compat

import (
	"errors"
	"fmt"
	"testing"

	"compat-matrix/internal/footnote"
	"compat-matrix/internal/matrix"
	"compat-matrix/internal/table"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixtureRows returns 54 rows of key + 15 cells. Row 0 is V9999 with
// "Yes[4]" under SafetyNet; the rest alternate Yes/No.
func fixtureRows() [][]string {
	rows := make([][]string, 0, 54)

	first := []string{"V9999", "Yes[4]", "No"}
	for len(first) < 16 {
		first = append(first, "Yes")
	}
	rows = append(rows, first)

	rows = append(rows, append([]string{"V2120[3]", "Yes[1]", "No[99]"}, repeat("No", 13)...))

	for i := 2; i < 54; i++ {
		row := []string{fmt.Sprintf("V%d", 1400+i)}
		for j := 0; j < 15; j++ {
			if (i+j)%2 == 0 {
				row = append(row, "Yes")
			} else {
				row = append(row, "No")
			}
		}
		rows = append(rows, row)
	}
	return rows
}

func repeat(s string, n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = s
	}
	return out
}

// fixtureSource places rows at the default layout position
func fixtureSource(rows [][]string) table.Source {
	layout := table.DefaultLayout()
	grid := make([][]string, 0, layout.HeaderRow+1+len(rows))
	for i := 0; i < layout.HeaderRow; i++ {
		grid = append(grid, []string{})
	}
	grid = append(grid, append([]string{"", "Eagle Version"}, DefaultCatalog()...))
	for _, row := range rows {
		grid = append(grid, append([]string{""}, row...))
	}
	return table.NewGridSource("fixture", grid)
}

func loadedSession(t *testing.T) *Session {
	t.Helper()
	s, err := NewSession(DefaultCatalog(), footnote.DefaultTable())
	require.NoError(t, err)
	require.NoError(t, s.Load(fixtureSource(fixtureRows()), table.DefaultLayout()))
	return s
}

func TestQueryRoundTrip(t *testing.T) {
	s := loadedSession(t)

	require.Equal(t, "SafetyNet", s.ListColumns()[0])

	res, err := s.Query("V9999", "SafetyNet")
	require.NoError(t, err)
	assert.Equal(t, VerdictYes, res.Verdict)
	assert.Equal(t, "Yes[4]", res.Raw)
	assert.Equal(t, "Requires minimum MICT V1049", s.Explain(res.Raw))
}

func TestQueryVerdictsAreYesOrNo(t *testing.T) {
	s := loadedSession(t)

	for _, version := range s.ListVersions() {
		for _, column := range s.ListColumns() {
			res, err := s.Query(version, column)
			require.NoError(t, err)
			assert.Contains(t, []Verdict{VerdictYes, VerdictNo}, res.Verdict)
		}
	}
}

func TestQueryUnknownKeys(t *testing.T) {
	s := loadedSession(t)

	_, err := s.Query("V0000", "SafetyNet")
	var notFound *matrix.KeyNotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "version", notFound.Kind)

	_, err = s.Query("V9999", "Falcon")
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "column", notFound.Kind)
}

func TestQueryBeforeLoad(t *testing.T) {
	s, err := NewSession(DefaultCatalog(), nil)
	require.NoError(t, err)

	_, err = s.Query("V9999", "SafetyNet")
	assert.ErrorIs(t, err, ErrNotLoaded)
	assert.False(t, s.Loaded())
	assert.Nil(t, s.ListVersions())
}

func TestExplainEdgeCases(t *testing.T) {
	s := loadedSession(t)

	assert.Equal(t, footnote.NoAnnotation, s.Explain("No[99]"))
	assert.Equal(t, footnote.NoAnnotation, s.Explain("No"))
	assert.Equal(t, s.Explain("Yes[4]"), s.Explain("Yes[4]"))
}

func TestListVersionsKeepsSheetOrder(t *testing.T) {
	s := loadedSession(t)

	versions := s.ListVersions()
	require.Len(t, versions, 54)
	assert.Equal(t, "V9999", versions[0])
	assert.Equal(t, "V2120[3]", versions[1])

	versions[0] = "changed"
	assert.Equal(t, "V9999", s.ListVersions()[0])
	assert.Equal(t, "V1453", matrix.Reverse(s.ListVersions())[0])
}

func TestLoadDuplicateKeepsPreviousMatrix(t *testing.T) {
	s := loadedSession(t)

	rows := fixtureRows()
	rows[2][0] = "V1002 – V1303"
	rows[3][0] = "V1002 – V1303"

	err := s.Load(fixtureSource(rows), table.DefaultLayout())

	var dup *matrix.DuplicateKeyError
	require.ErrorAs(t, err, &dup)
	assert.Equal(t, "V1002 – V1303", dup.Key)

	res, err := s.Query("V9999", "SafetyNet")
	require.NoError(t, err)
	assert.Equal(t, "Yes[4]", res.Raw)
}

func TestLoadWidthMismatch(t *testing.T) {
	s, err := NewSession(DefaultCatalog(), footnote.DefaultTable())
	require.NoError(t, err)

	narrow := table.Layout{HeaderRow: 16, FirstColumn: 2, LastColumn: 16, RowCount: 54}
	err = s.Load(fixtureSource(fixtureRows()), narrow)

	var widthErr *matrix.WidthError
	require.ErrorAs(t, err, &widthErr)
	assert.Equal(t, 14, widthErr.Width)
	assert.Equal(t, 15, widthErr.Expected)
	assert.False(t, s.Loaded())
}

func TestLoadUndersizedSource(t *testing.T) {
	s, err := NewSession(DefaultCatalog(), footnote.DefaultTable())
	require.NoError(t, err)

	err = s.Load(fixtureSource(fixtureRows()[:50]), table.DefaultLayout())

	var loadErr *table.LoadError
	assert.True(t, errors.As(err, &loadErr))
	assert.False(t, s.Loaded())
}

func TestNewSessionRejectsBadCatalog(t *testing.T) {
	_, err := NewSession([]string{"MICT", "MICT"}, nil)
	assert.Error(t, err)

	_, err = NewSession(nil, nil)
	assert.Error(t, err)
}

func TestVerdictOf(t *testing.T) {
	tests := []struct {
		raw      string
		expected Verdict
	}{
		{"Yes", VerdictYes},
		{"Yes[4]", VerdictYes},
		{"No", VerdictNo},
		{"No[2]", VerdictNo},
		{"yes", VerdictNo},
		{"N/A", VerdictNo},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, VerdictOf(tt.raw), tt.raw)
	}
	assert.True(t, VerdictYes.Compatible())
	assert.False(t, VerdictNo.Compatible())
}
