package rendering

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStageResume_WritesContent(t *testing.T) {
	content := "name: Jane Doe\nsections: {}\n"

	path, err := StageResume(content)
	require.NoError(t, err)
	t.Cleanup(func() { _ = os.Remove(path) })

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, content, string(got))
}

func TestStageResume_YAMLSuffix(t *testing.T) {
	path, err := StageResume("name: X")
	require.NoError(t, err)
	t.Cleanup(func() { _ = os.Remove(path) })

	assert.True(t, strings.HasSuffix(path, ".yml"), "staging file should carry a .yml suffix, got %s", path)
	assert.Contains(t, filepath.Base(path), "resume-tailor-")
}

func TestStageResume_FileSurvives(t *testing.T) {
	// The staging file is retained on purpose; nothing in the package
	// removes it after writing.
	path, err := StageResume("name: X")
	require.NoError(t, err)
	t.Cleanup(func() { _ = os.Remove(path) })

	_, err = os.Stat(path)
	assert.NoError(t, err)
}

func TestStageResume_DistinctFilesPerRun(t *testing.T) {
	first, err := StageResume("name: A")
	require.NoError(t, err)
	t.Cleanup(func() { _ = os.Remove(first) })

	second, err := StageResume("name: B")
	require.NoError(t, err)
	t.Cleanup(func() { _ = os.Remove(second) })

	assert.NotEqual(t, first, second)
}
