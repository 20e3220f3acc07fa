// Package llm provides centralized LLM configuration and client abstractions.
// This package enables easy switching between providers for the single
// customization call the tool performs.
package llm

// Provider represents an LLM provider
type Provider string

// Provider constants define supported LLM providers
const (
	// ProviderOpenRouter is the OpenRouter provider (OpenAI-compatible API)
	ProviderOpenRouter Provider = "openrouter"
	// ProviderGemini is the Google Gemini provider
	ProviderGemini Provider = "gemini"
)

// Config holds the model configuration for the application
type Config struct {
	Provider Provider
	Model    string
}

// DefaultConfig returns the default configuration (OpenRouter with GPT-5 mini)
func DefaultConfig() *Config {
	return &Config{
		Provider: ProviderOpenRouter,
		Model:    "openai/gpt-5-mini",
	}
}

// DefaultModel returns the default model name for a provider
func DefaultModel(provider Provider) string {
	switch provider {
	case ProviderGemini:
		return "gemini-2.5-flash"
	default:
		return "openai/gpt-5-mini"
	}
}

// WithModel returns a new Config with the given model, keeping the provider.
// An empty model falls back to the provider default.
func (c *Config) WithModel(model string) *Config {
	if model == "" {
		model = DefaultModel(c.Provider)
	}
	return &Config{
		Provider: c.Provider,
		Model:    model,
	}
}

// CredentialEnvVar returns the environment variable holding the API key for a provider
func CredentialEnvVar(provider Provider) string {
	switch provider {
	case ProviderGemini:
		return "GEMINI_API_KEY"
	default:
		return "OPENROUTER_API_KEY"
	}
}
