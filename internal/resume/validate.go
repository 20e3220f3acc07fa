package resume

import (
	"gopkg.in/yaml.v3"
)

// Validate checks that text parses as a well-formed YAML document.
// It is a pure check: the parsed document is discarded, nothing is
// normalized or rewritten. The transformation contract only promises to
// touch Experience highlights and Technologies details, but that narrower
// property is a request instruction, not something this validator can
// enforce; structural well-formedness is the guarantee here.
func Validate(text string, stage Stage) error {
	var doc any
	if err := yaml.Unmarshal([]byte(text), &doc); err != nil {
		return &StructuredTextError{Stage: stage, Cause: err}
	}
	return nil
}
