package compat

import (
	"fmt"
	"strings"
)

// Finding describes a cell or header that does not look the way the lookup
// expects. Findings never stop a load.
type Finding struct {
	Version string
	Column  string
	Raw     string
	Problem string
}

func (f Finding) String() string {
	switch {
	case f.Version == "":
		return fmt.Sprintf("header %s: %s", f.Column, f.Problem)
	case f.Column == "":
		return fmt.Sprintf("%s: %s", f.Version, f.Problem)
	default:
		return fmt.Sprintf("%s / %s (%q): %s", f.Version, f.Column, f.Raw, f.Problem)
	}
}

// Audit inspects the loaded matrix for header text that disagrees with the
// catalog, cells that are neither Yes nor No, and unregistered markers.
func (s *Session) Audit() ([]Finding, error) {
	if s.matrix == nil {
		return nil, ErrNotLoaded
	}

	var findings []Finding

	for i, name := range s.catalog {
		idx := i + 1
		if idx >= len(s.header) {
			break
		}
		if !strings.EqualFold(s.header[idx], name) {
			findings = append(findings, Finding{
				Column:  name,
				Raw:     s.header[idx],
				Problem: fmt.Sprintf("sheet header reads %q", s.header[idx]),
			})
		}
	}

	for _, version := range s.matrix.Keys() {
		if marker := s.resolver.Marker(version); marker != "" && !s.resolver.Registered(marker) {
			findings = append(findings, Finding{
				Version: version,
				Raw:     version,
				Problem: fmt.Sprintf("footnote %s is not registered", marker),
			})
		}

		values, _ := s.matrix.Get(version)
		for i, raw := range values {
			column := s.catalog[i]

			if !strings.HasPrefix(raw, string(VerdictYes)) && !strings.HasPrefix(raw, string(VerdictNo)) {
				findings = append(findings, Finding{
					Version: version,
					Column:  column,
					Raw:     raw,
					Problem: "cell is neither Yes nor No",
				})
			}

			if marker := s.resolver.Marker(raw); marker != "" && !s.resolver.Registered(marker) {
				findings = append(findings, Finding{
					Version: version,
					Column:  column,
					Raw:     raw,
					Problem: fmt.Sprintf("footnote %s is not registered", marker),
				})
			}
		}
	}

	return findings, nil
}
