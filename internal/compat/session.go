package compat

import (
	"errors"
	"fmt"

	"compat-matrix/internal/footnote"
	"compat-matrix/internal/logger"
	"compat-matrix/internal/matrix"
	"compat-matrix/internal/table"
)

var (
	// ErrNotLoaded is returned by queries issued before a successful Load
	ErrNotLoaded = errors.New("compatibility matrix not loaded")

	// ErrColumnOutOfRange means the catalog names more columns than a row holds
	ErrColumnOutOfRange = errors.New("column position outside row")
)

// Session owns everything a lookup needs: the column catalog, the footnote
// resolver and the most recently loaded matrix. Callers create one and pass
// it around; the engine keeps no package-level state.
type Session struct {
	catalog  matrix.Catalog
	resolver *footnote.Resolver

	matrix *matrix.Matrix
	header []string
	source string
}

// Result is the answer to a single version/column query
type Result struct {
	Version string
	Column  string
	Verdict Verdict
	Raw     string
}

// NewSession validates the catalog and prepares an empty session
func NewSession(catalog []string, notes footnote.Table) (*Session, error) {
	cat := matrix.Catalog(append([]string(nil), catalog...))
	if err := cat.Validate(); err != nil {
		return nil, fmt.Errorf("invalid catalog: %w", err)
	}

	return &Session{
		catalog:  cat,
		resolver: footnote.NewResolver(notes),
	}, nil
}

// Load reads src with layout and replaces the current matrix. On failure
// the previous matrix stays in place.
func (s *Session) Load(src table.Source, layout table.Layout) error {
	logger.Debug("Loading compatibility table from %s", src.Name())

	tbl, err := table.Load(src, layout)
	if err != nil {
		logger.LogLoadError(src.Name(), err, "table")
		return err
	}
	return s.LoadTable(tbl)
}

// LoadTable indexes an already loaded table and swaps it in
func (s *Session) LoadTable(tbl *table.Table) error {
	m, err := matrix.Build(tbl.Rows, s.catalog)
	if err != nil {
		logger.LogLoadError(tbl.Source, err, "index")
		return fmt.Errorf("index %s: %w", tbl.Source, err)
	}

	s.matrix = m
	s.header = append([]string(nil), tbl.Header...)
	s.source = tbl.Source

	logger.Debug("Indexed %d versions x %d columns from %s", m.Len(), m.Width(), tbl.Source)
	return nil
}

// Loaded reports whether a matrix is available
func (s *Session) Loaded() bool {
	return s.matrix != nil
}

// Source names where the current matrix was loaded from
func (s *Session) Source() string {
	return s.source
}

// ListVersions returns the version keys in sheet order
func (s *Session) ListVersions() []string {
	if s.matrix == nil {
		return nil
	}
	return s.matrix.Keys()
}

// ListColumns returns the catalog in its configured order
func (s *Session) ListColumns() []string {
	return append([]string(nil), s.catalog...)
}

// Query returns the cell at version/column together with its verdict
func (s *Session) Query(version, column string) (Result, error) {
	if s.matrix == nil {
		return Result{}, ErrNotLoaded
	}

	pos, err := s.catalog.Position(column)
	if err != nil {
		return Result{}, err
	}

	values, err := s.matrix.Get(version)
	if err != nil {
		return Result{}, err
	}

	if pos >= len(values) {
		return Result{}, fmt.Errorf("%w: %q is column %d, row %q has %d values",
			ErrColumnOutOfRange, column, pos+1, version, len(values))
	}

	raw := values[pos]
	return Result{
		Version: version,
		Column:  column,
		Verdict: VerdictOf(raw),
		Raw:     raw,
	}, nil
}

// Explain returns the explanation of the first footnote marker in text,
// or footnote.NoAnnotation.
func (s *Session) Explain(text string) string {
	return s.resolver.Explain(text)
}

// Resolver exposes the session's footnote resolver
func (s *Session) Resolver() *footnote.Resolver {
	return s.resolver
}
