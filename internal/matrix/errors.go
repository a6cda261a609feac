package matrix

import "fmt"

// DuplicateKeyError means two rows carry the same version key.
// The source data is inconsistent; no matrix is built.
type DuplicateKeyError struct {
	Key       string
	FirstRow  int
	SecondRow int
}

func (e *DuplicateKeyError) Error() string {
	return fmt.Sprintf("duplicate version key %q in rows %d and %d", e.Key, e.FirstRow+1, e.SecondRow+1)
}

// WidthError means a row does not carry one value per catalog column
type WidthError struct {
	Key      string
	Row      int
	Width    int
	Expected int
}

func (e *WidthError) Error() string {
	return fmt.Sprintf("row %d (%q) has %d values, catalog has %d columns", e.Row+1, e.Key, e.Width, e.Expected)
}

// KeyNotFoundError is returned for a version or column that does not exist
type KeyNotFoundError struct {
	Kind string // "version" or "column"
	Key  string
}

func (e *KeyNotFoundError) Error() string {
	return fmt.Sprintf("unknown %s %q", e.Kind, e.Key)
}
