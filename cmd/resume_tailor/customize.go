package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-tailor/internal/config"
	"github.com/jonathan/resume-tailor/internal/llm"
	"github.com/jonathan/resume-tailor/internal/notify"
	"github.com/jonathan/resume-tailor/internal/observability"
	"github.com/jonathan/resume-tailor/internal/pipeline"
)

var customizeCmd = &cobra.Command{
	Use:   "customize RESUME_FILE JOB_POSTING_FILE",
	Short: "Customize a resume based on a job posting",
	Long: `Reads a RenderCV YAML resume and a plain-text job posting, asks the LLM to
reorder Experience highlights and rework Technologies details for relevance,
validates the returned YAML, and renders it with the external rendercv tool.

Configuration can be loaded from a JSON file using --config. Command-line
arguments override config file values.`,
	Args: cobra.ExactArgs(2),
	RunE: runCustomize,
}

var (
	customizeConfigPath string
	customizeOutput     string
	customizeProvider   string
	customizeModel      string
	customizeAPIKey     string
	customizeVerbose    bool
)

func init() {
	customizeCmd.Flags().StringVar(&customizeConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")
	customizeCmd.Flags().StringVarP(&customizeOutput, "output", "o", "", "Output filename without extension (default \"tempresume\")")
	customizeCmd.Flags().StringVar(&customizeProvider, "provider", "", "LLM provider: openrouter or gemini (default \"openrouter\")")
	customizeCmd.Flags().StringVarP(&customizeModel, "model", "m", "", "Model identifier (defaults to the provider's default model)")
	customizeCmd.Flags().StringVar(&customizeAPIKey, "api-key", "", "API key (optional, defaults to the provider's environment variable)")
	customizeCmd.Flags().BoolVarP(&customizeVerbose, "verbose", "v", false, "Enable verbose output")

	rootCmd.AddCommand(customizeCmd)
}

func runCustomize(_ *cobra.Command, args []string) error {
	resumePath, jobPath := args[0], args[1]

	// Load config file if provided; flags take priority over file values
	cfg := config.Config{
		Output:   customizeOutput,
		Provider: customizeProvider,
		Model:    customizeModel,
		APIKey:   customizeAPIKey,
		Verbose:  customizeVerbose,
	}
	if customizeConfigPath != "" {
		loaded, err := config.LoadConfig(customizeConfigPath)
		if err != nil {
			return err
		}
		cfg = cfg.MergeWithDefaults(*loaded)
		cfg.Verbose = cfg.Verbose || loaded.Verbose
	}
	if cfg.Output == "" {
		cfg.Output = "tempresume"
	}
	if cfg.Provider == "" {
		cfg.Provider = string(llm.ProviderOpenRouter)
	}

	llmConfig := (&llm.Config{Provider: llm.Provider(cfg.Provider)}).WithModel(cfg.Model)

	// Resolve the credential before touching anything else; a missing key
	// halts the run with setup guidance and zero network or file activity
	apiKey, err := config.ResolveAPIKey(llmConfig.Provider, cfg.APIKey)
	if err != nil {
		return err
	}

	if cfg.Verbose {
		printer := observability.NewPrinter(os.Stdout)
		printer.PrintRunSetup(resumePath, jobPath, cfg.Output, string(llmConfig.Provider), llmConfig.Model)
	}

	result, err := pipeline.Run(context.Background(), pipeline.Options{
		ResumePath: resumePath,
		JobPath:    jobPath,
		OutputName: cfg.Output,
		APIKey:     apiKey,
		LLMConfig:  llmConfig,
		Notifier:   notify.NewDesktop(),
		OnProgress: func(event pipeline.ProgressEvent) {
			fmt.Println(event.Message)
		},
	})
	if err != nil {
		return err
	}

	fmt.Printf("Resume rendered successfully as '%s'\n", result.ArtifactName)
	fmt.Fprintln(os.Stderr, "RenderCV output:")
	fmt.Fprintln(os.Stderr, result.Diagnostics)
	fmt.Printf("Temporary YAML file saved as: %s\n", result.StagingPath)
	fmt.Println("You can inspect the modified resume YAML file before deleting it.")
	fmt.Println("✅ Resume customization completed successfully!")

	return nil
}
