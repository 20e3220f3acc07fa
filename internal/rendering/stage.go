package rendering

import (
	"os"
)

// StageResume writes the modified resume YAML to a durable temporary file
// and returns its path. The file is deliberately never deleted by this
// program so the operator can inspect the model's modifications after the
// run; ownership passes to the filesystem once the render step completes.
func StageResume(content string) (string, error) {
	f, err := os.CreateTemp("", "resume-tailor-*.yml")
	if err != nil {
		return "", &StagingError{Cause: err}
	}

	if _, err := f.WriteString(content); err != nil {
		_ = f.Close()
		return "", &StagingError{Cause: err}
	}

	if err := f.Close(); err != nil {
		return "", &StagingError{Cause: err}
	}

	return f.Name(), nil
}
