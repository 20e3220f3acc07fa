// Package main provides the entry point for the Resume Tailor CLI tool.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/jonathan/resume-tailor/internal/config"
	"github.com/jonathan/resume-tailor/internal/ingestion"
	"github.com/jonathan/resume-tailor/internal/llm"
	"github.com/jonathan/resume-tailor/internal/rendering"
	"github.com/jonathan/resume-tailor/internal/resume"
)

var rootCmd = &cobra.Command{
	Use:           "resume_tailor",
	Short:         "Resume Tailor CLI Tool",
	Long:          "Resume Tailor customizes a RenderCV YAML resume to better match a job posting using an LLM, then renders the result to PDF.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, errorMessage(err))
		os.Exit(1)
	}
}

// errorMessage formats the single error a failed run reports. Anticipated
// failure kinds get the plain error prefix; anything else is surfaced as
// unexpected.
func errorMessage(err error) string {
	var (
		readErr  *ingestion.FileReadError
		yamlErr  *resume.StructuredTextError
		credErr  *config.MissingCredentialError
		callErr  *llm.RemoteCallError
		rendErr  *rendering.RenderError
		toolErr  *rendering.ToolMissingError
		stageErr *rendering.StagingError
	)
	switch {
	case errors.As(err, &readErr),
		errors.As(err, &yamlErr),
		errors.As(err, &credErr),
		errors.As(err, &callErr),
		errors.As(err, &rendErr),
		errors.As(err, &toolErr),
		errors.As(err, &stageErr):
		return fmt.Sprintf("❌ Error: %v", err)
	default:
		return fmt.Sprintf("❌ Unexpected error: %v", err)
	}
}
