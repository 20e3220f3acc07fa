// Package rendering stages the customized resume YAML and invokes the
// external RenderCV renderer to produce the final document.
package rendering

import "fmt"

// RenderError represents a renderer invocation that ran but failed.
// Stderr carries the renderer's diagnostic stream verbatim.
type RenderError struct {
	Stderr string
	Cause  error
}

func (e *RenderError) Error() string {
	if e.Stderr != "" {
		return fmt.Sprintf("failed to render resume: %s", e.Stderr)
	}
	return fmt.Sprintf("failed to render resume: %v", e.Cause)
}

func (e *RenderError) Unwrap() error {
	return e.Cause
}

// ToolMissingError indicates the renderer executable is not installed
type ToolMissingError struct {
	Tool  string
	Cause error
}

func (e *ToolMissingError) Error() string {
	return fmt.Sprintf("%s command not found. Please ensure RenderCV is installed", e.Tool)
}

func (e *ToolMissingError) Unwrap() error {
	return e.Cause
}

// StagingError represents a failure to write the staging file
type StagingError struct {
	Cause error
}

func (e *StagingError) Error() string {
	return fmt.Sprintf("failed to stage modified resume: %v", e.Cause)
}

func (e *StagingError) Unwrap() error {
	return e.Cause
}
