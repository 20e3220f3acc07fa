package config

import (
	"fmt"

	"github.com/jonathan/resume-tailor/internal/llm"
)

// MissingCredentialError indicates the provider credential could not be
// resolved from flags or the environment. It carries setup guidance for
// the operator.
type MissingCredentialError struct {
	Provider llm.Provider
	EnvVar   string
}

func (e *MissingCredentialError) Error() string {
	return fmt.Sprintf(
		"%s API key not found. Please set %s in your environment or .env file.\nExample .env file:\n%s=your-key-here",
		e.Provider, e.EnvVar, e.EnvVar,
	)
}
