package observability

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrintRunSetup(t *testing.T) {
	var buf strings.Builder
	p := NewPrinter(&buf)

	p.PrintRunSetup("resume.yml", "job.txt", "tempresume", "openrouter", "openai/gpt-5-mini")
	out := buf.String()

	assert.Contains(t, out, "Run Setup")
	assert.Contains(t, out, "resume.yml")
	assert.Contains(t, out, "job.txt")
	assert.Contains(t, out, "tempresume")
	assert.Contains(t, out, "openrouter")
	assert.Contains(t, out, "openai/gpt-5-mini")
	assert.Contains(t, out, "┌")
	assert.Contains(t, out, "└")
}

func TestPrintRunSetup_TruncatesLongLines(t *testing.T) {
	var buf strings.Builder
	p := NewPrinter(&buf)

	longPath := "/very/long/path/" + strings.Repeat("x", 100) + "/resume.yml"
	p.PrintRunSetup(longPath, "job.txt", "out", "openrouter", "m")

	for _, line := range strings.Split(buf.String(), "\n") {
		assert.LessOrEqual(t, len([]rune(line)), boxWidth, "line exceeds box width: %q", line)
	}
}
