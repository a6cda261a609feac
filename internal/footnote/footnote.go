package footnote

import (
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// NoAnnotation is what Explain returns when text carries no registered marker
const NoAnnotation = "no annotation"

// markerPattern matches one or two digits in brackets, e.g. [2] or [10]
var markerPattern = regexp.MustCompile(`\[\d{1,2}\]`)

// Table maps a bracketed marker such as "[12]" to its explanation
type Table map[string]string

// Resolver turns footnote markers embedded in cell text into explanations
type Resolver struct {
	table Table
}

// NewResolver copies table so later changes by the caller are not observed
func NewResolver(table Table) *Resolver {
	copied := make(Table, len(table))
	for marker, text := range table {
		copied[strings.TrimSpace(marker)] = text
	}
	return &Resolver{table: copied}
}

// Marker returns the first marker in text, or "" when there is none
func (r *Resolver) Marker(text string) string {
	return markerPattern.FindString(text)
}

// Resolve looks up the first marker in text. Text without a marker and
// markers missing from the table both yield ok == false.
func (r *Resolver) Resolve(text string) (explanation string, ok bool) {
	marker := r.Marker(text)
	if marker == "" {
		return "", false
	}
	explanation, ok = r.table[marker]
	return explanation, ok
}

// Explain is Resolve for display: the explanation or NoAnnotation
func (r *Resolver) Explain(text string) string {
	if explanation, ok := r.Resolve(text); ok {
		return explanation
	}
	return NoAnnotation
}

// Registered reports whether marker has an explanation
func (r *Resolver) Registered(marker string) bool {
	_, ok := r.table[marker]
	return ok
}

// Markers lists the registered markers in numeric order
func (r *Resolver) Markers() []string {
	markers := make([]string, 0, len(r.table))
	for marker := range r.table {
		markers = append(markers, marker)
	}
	SortMarkers(markers)
	return markers
}

// SortMarkers orders markers by their number; anything unparsable sorts last
func SortMarkers(markers []string) {
	sort.SliceStable(markers, func(i, j int) bool {
		return markerNumber(markers[i]) < markerNumber(markers[j])
	})
}

func markerNumber(marker string) int {
	n, err := strconv.Atoi(strings.Trim(marker, "[]"))
	if err != nil {
		return int(^uint(0) >> 1)
	}
	return n
}

// DefaultTable is the exception list shipped with the compatibility workbook
func DefaultTable() Table {
	return Table{
		"[1]":  "Requires minimum SafetyNet V4400",
		"[2]":  "Requires minimum SafetyNet V5008",
		"[3]":  "Requires Sedline V1203 to support all features",
		"[4]":  "Requires minimum MICT V1049",
		"[5]":  "Requires minimum Radius-7 IB V1012 for all features supported",
		"[6]":  "Minimum Eagle version to support Falcon-pro.",
		"[7]":  "Requires minimum MICT V1109",
		"[8]":  "Requires minimum Radius-7 V1020",
		"[9]":  "Requires minimum Trace V2026",
		"[10]": "Requires minimum IB-Pro V205X, requires minimum Radius-7 BB V2015 to support all features",
		"[11]": "Requires minimum SedLine V2320 for all Eagle enhancements to be available",
		"[12]": "Added support for Safety Net V5027-5085",
		"[13]": "Minimum eagle version to support PSN V5647",
		"[14]": "Requires minimum IB-Pro V206x and minimum IB V103x with minimum BBV202x to support all features",
		"[15]": "Minimum Eagle version to support PSN V5672",
		"[16]": "Requires minimum Trace V2.0.2.8",
		"[17]": "Minimum Eagle version to support Iris Gateway V1613",
		"[18]": "Minimum Eagle version to support PSN V5675",
		"[19]": "Requires minimum Trace V3025",
		"[20]": "Minimum Eagle version to support VSM V1020",
		"[21]": "V2120 is built from V2106",
		"[22]": "Requires minimum MICT V1248 to support all features",
		"[23]": "Requires minimum MICT V1252 to support all features",
		"[24]": "Requires minimum MICT V1253 to support all features",
		"[25]": "Requires minimum Trace V3025",
		"[26]": "Requires minimum Centroid V2101",
	}
}
