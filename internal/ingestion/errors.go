// Package ingestion provides functionality to load the local text inputs for a run.
package ingestion

import "fmt"

// FileReadError represents a failure to read an input file
type FileReadError struct {
	Path  string
	Cause error
}

func (e *FileReadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("error reading %s: %v", e.Path, e.Cause)
	}
	return fmt.Sprintf("error reading %s", e.Path)
}

func (e *FileReadError) Unwrap() error {
	return e.Cause
}
