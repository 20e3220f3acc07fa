package ingestion

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadTextFile_Valid(t *testing.T) {
	tmpFile := filepath.Join(t.TempDir(), "resume.yml")
	content := "name: Jane Doe\nsections: {}\n"
	err := os.WriteFile(tmpFile, []byte(content), 0644)
	require.NoError(t, err)

	got, err := ReadTextFile(tmpFile)
	require.NoError(t, err)
	assert.Equal(t, content, got)
}

func TestReadTextFile_NotFound(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.yml")

	got, err := ReadTextFile(path)
	assert.Empty(t, got)
	require.Error(t, err)

	var readErr *FileReadError
	require.ErrorAs(t, err, &readErr)
	assert.Equal(t, path, readErr.Path)
	assert.Contains(t, err.Error(), path)
}

func TestReadTextFile_PermissionDenied(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("permission checks do not apply to root")
	}

	tmpFile := filepath.Join(t.TempDir(), "locked.txt")
	err := os.WriteFile(tmpFile, []byte("secret"), 0000)
	require.NoError(t, err)

	_, err = ReadTextFile(tmpFile)
	var readErr *FileReadError
	require.ErrorAs(t, err, &readErr)
	assert.Equal(t, tmpFile, readErr.Path)
}

func TestReadTextFile_InvalidUTF8(t *testing.T) {
	tmpFile := filepath.Join(t.TempDir(), "binary.yml")
	err := os.WriteFile(tmpFile, []byte{0xff, 0xfe, 0x00, 0x41}, 0644)
	require.NoError(t, err)

	_, err = ReadTextFile(tmpFile)
	var readErr *FileReadError
	require.ErrorAs(t, err, &readErr)
	assert.Contains(t, err.Error(), "UTF-8")
}

func TestReadTextFile_Empty(t *testing.T) {
	tmpFile := filepath.Join(t.TempDir(), "empty.txt")
	err := os.WriteFile(tmpFile, nil, 0644)
	require.NoError(t, err)

	got, err := ReadTextFile(tmpFile)
	require.NoError(t, err)
	assert.Empty(t, got)
}
