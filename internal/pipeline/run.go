// Package pipeline provides the high-level orchestration for the resume
// customization process.
package pipeline

import (
	"context"
	"fmt"

	"github.com/jonathan/resume-tailor/internal/config"
	"github.com/jonathan/resume-tailor/internal/ingestion"
	"github.com/jonathan/resume-tailor/internal/llm"
	"github.com/jonathan/resume-tailor/internal/notify"
	"github.com/jonathan/resume-tailor/internal/prompts"
	"github.com/jonathan/resume-tailor/internal/rendering"
	"github.com/jonathan/resume-tailor/internal/resume"
)

// ProgressEvent represents a progress update during pipeline execution
type ProgressEvent struct {
	Step    string `json:"step"`
	Message string `json:"message"`
}

// ProgressCallback is called when pipeline progress occurs
type ProgressCallback func(event ProgressEvent)

// ClientFactory builds the LLM client for a run. Tests inject a fake here
// so no network activity ever occurs.
type ClientFactory func(ctx context.Context, config *llm.Config, apiKey string) (llm.Client, error)

// Options holds configuration and collaborators for running the pipeline.
// The credential is an explicit value resolved by the caller before Run is
// invoked; the pipeline itself never consults process environment state.
type Options struct {
	ResumePath string
	JobPath    string
	OutputName string
	APIKey     string
	LLMConfig  *llm.Config

	// Collaborators; nil fields use the real implementations
	NewClient  ClientFactory
	Renderer   rendering.Renderer
	Notifier   notify.Notifier
	OnProgress ProgressCallback
}

// Result describes a fully successful run
type Result struct {
	// ArtifactName is the renderer's output document name
	ArtifactName string
	// StagingPath is the retained YAML staging file
	StagingPath string
	// Diagnostics is the renderer's stderr stream, echoed to the operator
	Diagnostics string
}

// emitProgress calls the progress callback if configured
func emitProgress(opts *Options, step, message string) {
	if opts.OnProgress != nil {
		opts.OnProgress(ProgressEvent{Step: step, Message: message})
	}
}

// Run executes the customization pipeline end to end. Steps run strictly
// in sequence; the first failure short-circuits the rest and is the single
// error reported for the run.
func Run(ctx context.Context, opts Options) (*Result, error) {
	if opts.LLMConfig == nil {
		opts.LLMConfig = llm.DefaultConfig()
	}
	if opts.APIKey == "" {
		return nil, &config.MissingCredentialError{
			Provider: opts.LLMConfig.Provider,
			EnvVar:   llm.CredentialEnvVar(opts.LLMConfig.Provider),
		}
	}
	if opts.NewClient == nil {
		opts.NewClient = llm.NewClient
	}
	if opts.Renderer == nil {
		opts.Renderer = rendering.NewRenderCV()
	}
	if opts.Notifier == nil {
		opts.Notifier = notify.Noop{}
	}

	// Read both inputs up front; either failure is fatal
	resumeContent, err := ingestion.ReadTextFile(opts.ResumePath)
	if err != nil {
		return nil, err
	}
	jobPosting, err := ingestion.ReadTextFile(opts.JobPath)
	if err != nil {
		return nil, err
	}

	// Fail fast on a malformed resume before spending a remote call
	if err := resume.Validate(resumeContent, resume.StageInput); err != nil {
		return nil, err
	}

	prompt := prompts.BuildCustomizePrompt(resumeContent, jobPosting)

	client, err := opts.NewClient(ctx, opts.LLMConfig, opts.APIKey)
	if err != nil {
		return nil, fmt.Errorf("failed to create LLM client: %w", err)
	}
	defer func() { _ = client.Close() }()

	emitProgress(&opts, "customize", "Customizing resume with AI...")
	completion, err := client.CustomizeResume(ctx, prompt)
	if err != nil {
		return nil, err
	}

	modifiedYAML := llm.CleanYAMLBlock(completion)

	// A malformed model response halts before anything touches the renderer
	if err := resume.Validate(modifiedYAML, resume.StageResponse); err != nil {
		return nil, err
	}

	stagingPath, err := rendering.StageResume(modifiedYAML)
	if err != nil {
		return nil, err
	}

	emitProgress(&opts, "render", "Rendering resume...")
	outcome, err := opts.Renderer.Render(ctx, stagingPath, opts.OutputName)
	if err != nil {
		return nil, err
	}

	// Best-effort side channel; implementations swallow their own failures
	opts.Notifier.Notify(
		"Resume Customization Complete",
		fmt.Sprintf("Resume has been successfully customized and saved as '%s'", outcome.ArtifactName),
	)

	return &Result{
		ArtifactName: outcome.ArtifactName,
		StagingPath:  stagingPath,
		Diagnostics:  outcome.Diagnostics,
	}, nil
}
