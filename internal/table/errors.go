package table

import "fmt"

// LoadError reports that a source could not be turned into a table matching
// the fixed layout. Nothing is returned alongside it.
type LoadError struct {
	Source string
	Reason string
	Err    error
}

func (e *LoadError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("load %s: %s: %v", e.Source, e.Reason, e.Err)
	}
	return fmt.Sprintf("load %s: %s", e.Source, e.Reason)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

func loadErrorf(source string, err error, format string, args ...interface{}) *LoadError {
	return &LoadError{
		Source: source,
		Reason: fmt.Sprintf(format, args...),
		Err:    err,
	}
}
