package llm

import "fmt"

// RemoteCallError represents a failed call to the text-generation service.
// It covers transport failures, authentication failures, malformed responses,
// and empty completion lists; the run treats all of them as fatal.
type RemoteCallError struct {
	Provider Provider
	Message  string
	Cause    error
}

func (e *RemoteCallError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s API request failed: %s: %v", e.Provider, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s API request failed: %s", e.Provider, e.Message)
}

func (e *RemoteCallError) Unwrap() error {
	return e.Cause
}
