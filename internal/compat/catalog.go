package compat

// DefaultCatalog lists the devices and software tracked by the compatibility
// workbook, in sheet column order after the version key.
func DefaultCatalog() []string {
	return []string{
		"SafetyNet", "MICT", "Sketch", "Trace", "Tir-1",
		"Radius-7", "Radius-7 Wifi", "Radius T", "Centroid", "VSM",
		"SedLine", "MOA", "External SatShare", "Iris - DMS", "Iris Gateway",
	}
}
