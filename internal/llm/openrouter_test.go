package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *OpenRouterClient {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client, err := NewOpenRouterClient(DefaultConfig(), "test-key")
	require.NoError(t, err)
	client.BaseURL = srv.URL
	return client
}

func TestNewOpenRouterClient_RequiresAPIKey(t *testing.T) {
	client, err := NewOpenRouterClient(DefaultConfig(), "")
	assert.Nil(t, client)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "API key")
}

func TestCustomizeResume_Success(t *testing.T) {
	var gotPath, gotAuth, gotReferer string
	var gotBody chatRequest

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		gotReferer = r.Header.Get("HTTP-Referer")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))

		resp := map[string]any{
			"choices": []map[string]any{
				{"message": map[string]any{"content": "name: Jane Doe\nsections: {}"}},
			},
		}
		require.NoError(t, json.NewEncoder(w).Encode(resp))
	})

	text, err := client.CustomizeResume(context.Background(), "the prompt")
	require.NoError(t, err)
	assert.Equal(t, "name: Jane Doe\nsections: {}", text)

	assert.Equal(t, "/chat/completions", gotPath)
	assert.Equal(t, "Bearer test-key", gotAuth)
	assert.NotEmpty(t, gotReferer)
	assert.Equal(t, "openai/gpt-5-mini", gotBody.Model)
	require.Len(t, gotBody.Messages, 1)
	assert.Equal(t, "user", gotBody.Messages[0].Role)
	assert.Equal(t, "the prompt", gotBody.Messages[0].Content)
	assert.InDelta(t, 0.2, gotBody.Temperature, 0.001)
}

func TestCustomizeResume_AuthFailure(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error": {"message": "Invalid API key"}}`))
	})

	_, err := client.CustomizeResume(context.Background(), "prompt")
	require.Error(t, err)

	var callErr *RemoteCallError
	require.ErrorAs(t, err, &callErr)
	assert.Equal(t, ProviderOpenRouter, callErr.Provider)
	assert.Contains(t, err.Error(), "401")
	assert.Contains(t, err.Error(), "Invalid API key")
}

func TestCustomizeResume_EmptyChoices(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"choices": []}`))
	})

	_, err := client.CustomizeResume(context.Background(), "prompt")
	var callErr *RemoteCallError
	require.ErrorAs(t, err, &callErr)
	assert.Contains(t, err.Error(), "no choices")
}

func TestCustomizeResume_EmptyContent(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"choices": [{"message": {"content": "  "}}]}`))
	})

	_, err := client.CustomizeResume(context.Background(), "prompt")
	var callErr *RemoteCallError
	require.ErrorAs(t, err, &callErr)
	assert.Contains(t, err.Error(), "empty completion")
}

func TestCustomizeResume_MalformedBody(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`not json at all`))
	})

	_, err := client.CustomizeResume(context.Background(), "prompt")
	var callErr *RemoteCallError
	require.ErrorAs(t, err, &callErr)
	assert.Contains(t, err.Error(), "malformed response")
}

func TestCustomizeResume_TransportFailure(t *testing.T) {
	client, err := NewOpenRouterClient(DefaultConfig(), "test-key")
	require.NoError(t, err)
	// Unroutable address: the request must fail without retrying
	client.BaseURL = "http://127.0.0.1:1"

	_, err = client.CustomizeResume(context.Background(), "prompt")
	var callErr *RemoteCallError
	require.ErrorAs(t, err, &callErr)
	assert.Equal(t, ProviderOpenRouter, callErr.Provider)
}

func TestCustomizeResume_TrimsWhitespace(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		resp := map[string]any{
			"choices": []map[string]any{
				{"message": map[string]any{"content": "\nname: X\n\n"}},
			},
		}
		require.NoError(t, json.NewEncoder(w).Encode(resp))
	})

	text, err := client.CustomizeResume(context.Background(), "prompt")
	require.NoError(t, err)
	assert.Equal(t, "name: X", text)
}
