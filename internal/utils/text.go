package utils

import "strings"

// CleanCell normalizes a raw spreadsheet cell for use as a key or value.
// Non-breaking spaces and line breaks left by spreadsheet editors are folded
// into plain spaces before trimming.
func CleanCell(raw string) string {
	replacer := strings.NewReplacer(
		"\u00a0", " ",
		"\r\n", " ",
		"\n", " ",
		"\r", " ",
		"\t", " ",
	)
	return strings.TrimSpace(replacer.Replace(raw))
}

// IsBlank reports whether a cell holds no visible text
func IsBlank(raw string) bool {
	return CleanCell(raw) == ""
}

// Truncate shortens s to maxLen runes, marking the cut with "..."
func Truncate(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return string(runes[:maxLen])
	}
	return string(runes[:maxLen-3]) + "..."
}
