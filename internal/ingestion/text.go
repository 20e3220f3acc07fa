package ingestion

import (
	"errors"
	"os"
	"unicode/utf8"
)

// ReadTextFile reads a file and returns its full content as a UTF-8 string.
// Any failure (missing file, permission denied, invalid encoding) is wrapped
// in a FileReadError naming the path; the caller treats it as fatal.
func ReadTextFile(path string) (string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return "", &FileReadError{Path: path, Cause: err}
	}

	if !utf8.Valid(content) {
		return "", &FileReadError{Path: path, Cause: errors.New("file content is not valid UTF-8")}
	}

	return string(content), nil
}
