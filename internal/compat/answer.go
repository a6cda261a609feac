package compat

import "fmt"

// Answer is a query result with both footnote lookups applied: one over the
// version key (e.g. "V2120[3]") and one over the raw cell.
type Answer struct {
	Result
	VersionNote string
	DeviceNote  string
}

// Lookup runs Query and resolves the version and cell footnotes independently
func (s *Session) Lookup(version, column string) (Answer, error) {
	res, err := s.Query(version, column)
	if err != nil {
		return Answer{}, err
	}

	a := Answer{Result: res}
	if note, ok := s.resolver.Resolve(version); ok {
		a.VersionNote = note
	}
	if note, ok := s.resolver.Resolve(res.Raw); ok {
		a.DeviceNote = note
	}
	return a, nil
}

// Sentence phrases the verdict, e.g. "Yes: version V1593 is compatible with SafetyNet"
func (a Answer) Sentence() string {
	phrase := "is not"
	if a.Verdict.Compatible() {
		phrase = "is"
	}
	return fmt.Sprintf("%s: version %s %s compatible with %s", a.Verdict, a.Version, phrase, a.Column)
}

// Notes returns the special requirements to show, version first. When there
// are none a single line says so.
func (a Answer) Notes() []string {
	var notes []string
	if a.VersionNote != "" {
		notes = append(notes, a.VersionNote)
	}
	if a.DeviceNote != "" {
		notes = append(notes, a.DeviceNote)
	}
	if len(notes) == 0 {
		notes = append(notes, fmt.Sprintf("There are no special requirements for %s and %s compatibility.", a.Version, a.Column))
	}
	return notes
}

// HasRequirements reports whether either footnote resolved
func (a Answer) HasRequirements() bool {
	return a.VersionNote != "" || a.DeviceNote != ""
}
