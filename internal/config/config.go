// Package config provides configuration loading and validation for the CLI.
package config

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/xeipuuv/gojsonschema"

	"github.com/jonathan/resume-tailor/internal/llm"
)

//go:embed schema.json
var configSchema string

// validate is the shared struct validator instance
var validate = validator.New()

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or CLI flags.
type Config struct {
	Output   string `json:"output,omitempty" validate:"omitempty,printascii"` // Output base name (without extension)
	Provider string `json:"provider,omitempty" validate:"omitempty,oneof=openrouter gemini"`
	Model    string `json:"model,omitempty"`
	APIKey   string `json:"api_key,omitempty"`
	Verbose  bool   `json:"verbose,omitempty"`
}

// LoadConfig loads configuration from a JSON file.
// The document is checked against the embedded JSON schema before
// unmarshaling so typos in field names fail loudly instead of being ignored.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	result, err := gojsonschema.Validate(
		gojsonschema.NewStringLoader(configSchema),
		gojsonschema.NewBytesLoader(data),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}
	if !result.Valid() {
		issues := make([]string, 0, len(result.Errors()))
		for _, desc := range result.Errors() {
			issues = append(issues, desc.String())
		}
		return nil, fmt.Errorf("config error: %s", strings.Join(issues, "; "))
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	if err := validate.Struct(&cfg); err != nil {
		return nil, fmt.Errorf("config error: %w", err)
	}

	return &cfg, nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.Output == "" {
		result.Output = defaults.Output
	}
	if result.Provider == "" {
		result.Provider = defaults.Provider
	}
	if result.Model == "" {
		result.Model = defaults.Model
	}
	if result.APIKey == "" {
		result.APIKey = defaults.APIKey
	}

	// Bool fields: cannot distinguish unset from false, so CLI flags win

	return result
}

// ResolveAPIKey returns the credential for the given provider, preferring the
// explicit value over the provider's environment variable. It fails closed:
// a missing credential is a MissingCredentialError, surfaced before any
// network or file activity for the remote step.
func ResolveAPIKey(provider llm.Provider, explicit string) (string, error) {
	if explicit != "" {
		return explicit, nil
	}

	envVar := llm.CredentialEnvVar(provider)
	if key := os.Getenv(envVar); key != "" {
		return key, nil
	}

	return "", &MissingCredentialError{Provider: provider, EnvVar: envVar}
}
