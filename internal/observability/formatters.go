// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"
)

// boxWidth is the default width for formatted output boxes
const boxWidth = 60

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintRunSetup outputs the resolved inputs before the pipeline runs.
// Verbose mode only adds informational lines up front, never extra error detail.
func (p *Printer) PrintRunSetup(resumePath, jobPath, outputName, provider, model string) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Resume:      %s\n", resumePath))
	sb.WriteString(fmt.Sprintf("Job posting: %s\n", jobPath))
	sb.WriteString(fmt.Sprintf("Output:      %s\n", outputName))
	sb.WriteString(fmt.Sprintf("Provider:    %s\n", provider))
	sb.WriteString(fmt.Sprintf("Model:       %s", model))

	p.printBox("Run Setup", sb.String())
}
