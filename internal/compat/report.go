package compat

import (
	"time"

	"compat-matrix/internal/footnote"
	"compat-matrix/internal/model"
)

// Report renders the whole loaded matrix, with verdicts and notes resolved,
// for the exporters. Rows follow the order of versions.
func (s *Session) Report(title string, versions []string) (*model.Report, error) {
	if s.matrix == nil {
		return nil, ErrNotLoaded
	}
	if versions == nil {
		versions = s.matrix.Keys()
	}

	r := model.NewReport()
	r.Title = title
	r.Source = s.source
	r.GeneratedAt = time.Now().Format("2006-01-02")
	r.Columns = s.ListColumns()

	used := make(map[string]bool)

	for _, version := range versions {
		row := model.ReportRow{
			Version: version,
			Cells:   make([]model.ReportCell, 0, len(s.catalog)),
		}
		if marker := s.resolver.Marker(version); marker != "" {
			used[marker] = true
			row.VersionNote, _ = s.resolver.Resolve(version)
		}

		for _, column := range s.catalog {
			res, err := s.Query(version, column)
			if err != nil {
				return nil, err
			}

			cell := model.ReportCell{
				Raw:     res.Raw,
				Verdict: res.Verdict.String(),
				Marker:  s.resolver.Marker(res.Raw),
			}
			if cell.Marker != "" {
				used[cell.Marker] = true
				cell.Note, _ = s.resolver.Resolve(res.Raw)
			}
			row.Cells = append(row.Cells, cell)
		}

		r.Rows = append(r.Rows, row)
	}

	markers := make([]string, 0, len(used))
	for marker := range used {
		markers = append(markers, marker)
	}
	footnote.SortMarkers(markers)

	for _, marker := range markers {
		explanation, ok := s.resolver.Resolve(marker)
		if !ok {
			explanation = footnote.NoAnnotation
		}
		r.Footnotes = append(r.Footnotes, model.Footnote{
			Marker:      marker,
			Explanation: explanation,
			Registered:  ok,
		})
	}

	return r, nil
}
