package rendering

import (
	"context"
	"os/exec"
	"strings"
)

// rendercvBinary is the external renderer executable looked up on PATH
const rendercvBinary = "rendercv"

// Outcome describes a completed render invocation
type Outcome struct {
	// ArtifactName is the expected name of the rendered document
	ArtifactName string
	// Diagnostics is the renderer's standard error stream, which RenderCV
	// uses for human-readable progress output
	Diagnostics string
}

// Renderer turns a staged resume file into the final document.
// It is an interface so the orchestrator can be tested against a fake
// without invoking a real external binary.
type Renderer interface {
	Render(ctx context.Context, stagedPath, outputName string) (*Outcome, error)
}

// RenderCV invokes the rendercv CLI as a subprocess
type RenderCV struct{}

// NewRenderCV creates a RenderCV invoker
func NewRenderCV() *RenderCV {
	return &RenderCV{}
}

// Render runs `rendercv render <stagedPath>` and waits for it to finish.
// The renderer's exit code is the sole success signal; its stderr is
// returned as diagnostics on success and inside the error on failure.
func (r *RenderCV) Render(ctx context.Context, stagedPath, outputName string) (*Outcome, error) {
	if _, err := exec.LookPath(rendercvBinary); err != nil {
		return nil, &ToolMissingError{Tool: rendercvBinary, Cause: err}
	}

	cmd := exec.CommandContext(ctx, rendercvBinary, "render", stagedPath)

	var stdout, stderr strings.Builder
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return nil, &RenderError{Stderr: stderr.String(), Cause: err}
	}

	return &Outcome{
		ArtifactName: outputName + ".pdf",
		Diagnostics:  stderr.String(),
	}, nil
}
