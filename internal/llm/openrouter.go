package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

const (
	// openRouterBaseURL is the OpenAI-compatible API root
	openRouterBaseURL = "https://openrouter.ai/api/v1"
	// temperature keeps the edit focused without being fully deterministic
	temperature = 0.2

	attributionReferer = "https://github.com/jonathan/resume-tailor"
	attributionTitle   = "Resume Tailor CLI"
)

// OpenRouterClient implements Client against OpenRouter's chat completions
// endpoint. It is stateless between calls; the tool performs at most one
// call per run, so no connection pooling or session reuse is set up.
type OpenRouterClient struct {
	BaseURL string
	HTTP    *http.Client

	config *Config
	apiKey string
}

// NewOpenRouterClient creates a new OpenRouter client
func NewOpenRouterClient(config *Config, apiKey string) (*OpenRouterClient, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("API key is required")
	}

	return &OpenRouterClient{
		BaseURL: openRouterBaseURL,
		HTTP:    &http.Client{},
		config:  config,
		apiKey:  apiKey,
	}, nil
}

// chatRequest is the OpenAI-compatible request payload
type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// chatResponse is the OpenAI-compatible response payload
type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

// CustomizeResume performs exactly one synchronous chat completion call
// and returns the completion text with surrounding whitespace trimmed.
func (c *OpenRouterClient) CustomizeResume(ctx context.Context, prompt string) (string, error) {
	payload := chatRequest{
		Model: c.config.Model,
		Messages: []chatMessage{
			{Role: "user", Content: prompt},
		},
		Temperature: temperature,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", &RemoteCallError{Provider: ProviderOpenRouter, Message: "failed to encode request", Cause: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", &RemoteCallError{Provider: ProviderOpenRouter, Message: "failed to build request", Cause: err}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("HTTP-Referer", attributionReferer)
	req.Header.Set("X-Title", attributionTitle)

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return "", &RemoteCallError{Provider: ProviderOpenRouter, Message: "request failed", Cause: err}
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &RemoteCallError{Provider: ProviderOpenRouter, Message: "failed to read response", Cause: err}
	}

	var parsed chatResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		if resp.StatusCode != http.StatusOK {
			return "", &RemoteCallError{
				Provider: ProviderOpenRouter,
				Message:  fmt.Sprintf("unexpected status %d", resp.StatusCode),
			}
		}
		return "", &RemoteCallError{Provider: ProviderOpenRouter, Message: "malformed response body", Cause: err}
	}

	if resp.StatusCode != http.StatusOK {
		msg := fmt.Sprintf("unexpected status %d", resp.StatusCode)
		if parsed.Error != nil && parsed.Error.Message != "" {
			msg = fmt.Sprintf("%s: %s", msg, parsed.Error.Message)
		}
		return "", &RemoteCallError{Provider: ProviderOpenRouter, Message: msg}
	}

	if len(parsed.Choices) == 0 {
		return "", &RemoteCallError{Provider: ProviderOpenRouter, Message: "no choices in response"}
	}

	content := strings.TrimSpace(parsed.Choices[0].Message.Content)
	if content == "" {
		return "", &RemoteCallError{Provider: ProviderOpenRouter, Message: "empty completion content"}
	}

	return content, nil
}

// Model returns the configured model name
func (c *OpenRouterClient) Model() string {
	return c.config.Model
}

// Close releases resources held by the client
func (c *OpenRouterClient) Close() error {
	c.HTTP.CloseIdleConnections()
	return nil
}
