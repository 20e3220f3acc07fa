// Package resume provides validation for the YAML resume document format.
package resume

import "fmt"

// Stage identifies which validation pass an error came from.
type Stage string

const (
	// StageInput is the validation of the resume file before the remote call
	StageInput Stage = "resume file"
	// StageResponse is the validation of the model response after the remote call
	StageResponse Stage = "AI response"
)

// StructuredTextError represents a YAML document that failed to parse.
// Cause carries the parser's location-bearing message verbatim.
type StructuredTextError struct {
	Stage Stage
	Cause error
}

func (e *StructuredTextError) Error() string {
	return fmt.Sprintf("invalid YAML in %s: %v", e.Stage, e.Cause)
}

func (e *StructuredTextError) Unwrap() error {
	return e.Cause
}
