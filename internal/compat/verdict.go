package compat

import "strings"

// Verdict is the normalized outcome of a compatibility cell
type Verdict string

const (
	VerdictYes Verdict = "Yes"
	VerdictNo  Verdict = "No"
)

// VerdictOf reduces raw cell text to a verdict. Only text starting with
// "Yes" is compatible; "Yes[4]" is Yes, everything else is No.
func VerdictOf(raw string) Verdict {
	if strings.HasPrefix(raw, string(VerdictYes)) {
		return VerdictYes
	}
	return VerdictNo
}

// Compatible reports whether v is Yes
func (v Verdict) Compatible() bool {
	return v == VerdictYes
}

func (v Verdict) String() string {
	return string(v)
}
