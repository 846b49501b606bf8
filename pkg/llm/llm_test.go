package llm

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_SelectsProvider(t *testing.T) {
	p, err := New(Config{Provider: "OpenAI", APIKey: "k"})
	require.NoError(t, err)
	assert.Equal(t, ProviderOpenAI, p.Name())

	p, err = New(Config{Provider: "anthropic", APIKey: "k"})
	require.NoError(t, err)
	assert.Equal(t, ProviderAnthropic, p.Name())

	_, err = New(Config{Provider: "cohere"})
	assert.EqualError(t, err, "unsupported AI provider: cohere")
}

func TestNew_DefaultModels(t *testing.T) {
	assert.Equal(t, DefaultOpenAIModel, NewOpenAI("k", "", "").model)
	assert.Equal(t, DefaultAnthropicModel, NewAnthropic("k", "", "").model)
	assert.Equal(t, "custom", NewOpenAI("k", "custom", "").model)
}

func TestOpenAIClient_Complete(t *testing.T) {
	var got map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		body, _ := io.ReadAll(r.Body)
		assert.NoError(t, json.Unmarshal(body, &got))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"id": "chatcmpl-1",
			"object": "chat.completion",
			"created": 1700000000,
			"model": "gpt-test",
			"choices": [{"index": 0, "message": {"role": "assistant", "content": " Hola! "}, "finish_reason": "stop"}],
			"usage": {"prompt_tokens": 1, "completion_tokens": 1, "total_tokens": 2}
		}`))
	}))
	defer srv.Close()

	c := NewOpenAI("test-key", "gpt-test", srv.URL+"/v1")
	reply, err := c.Complete(context.Background(), "system prompt", "hi")

	require.NoError(t, err)
	assert.Equal(t, "Hola!", reply)
	assert.Equal(t, "gpt-test", got["model"])
	assert.EqualValues(t, DefaultMaxTokens, got["max_tokens"])
	assert.EqualValues(t, DefaultTemperature, got["temperature"])
	messages := got["messages"].([]any)
	require.Len(t, messages, 2)
	assert.Equal(t, "system", messages[0].(map[string]any)["role"])
	assert.Equal(t, "system prompt", messages[0].(map[string]any)["content"])
	assert.Equal(t, "user", messages[1].(map[string]any)["role"])
	assert.Equal(t, "hi", messages[1].(map[string]any)["content"])
}

func TestOpenAIClient_Complete_NoChoices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id": "x", "choices": []}`))
	}))
	defer srv.Close()

	_, err := NewOpenAI("k", "m", srv.URL+"/v1").Complete(context.Background(), "s", "u")

	assert.Error(t, err)
}

func TestOpenAIClient_Complete_APIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error": {"message": "bad key", "type": "invalid_request_error"}}`))
	}))
	defer srv.Close()

	_, err := NewOpenAI("k", "m", srv.URL+"/v1").Complete(context.Background(), "s", "u")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "bad key")
}

func TestAnthropicClient_Complete(t *testing.T) {
	var got map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/messages", r.URL.Path)
		assert.Equal(t, "test-key", r.Header.Get("X-Api-Key"))
		body, _ := io.ReadAll(r.Body)
		assert.NoError(t, json.Unmarshal(body, &got))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"id": "msg_1",
			"type": "message",
			"role": "assistant",
			"model": "claude-test",
			"content": [{"type": "text", "text": "Hello there"}],
			"stop_reason": "end_turn",
			"stop_sequence": null,
			"usage": {"input_tokens": 3, "output_tokens": 2}
		}`))
	}))
	defer srv.Close()

	c := NewAnthropic("test-key", "claude-test", srv.URL)
	reply, err := c.Complete(context.Background(), "be brief", "hi")

	require.NoError(t, err)
	assert.Equal(t, "Hello there", reply)
	assert.Equal(t, "claude-test", got["model"])
	assert.EqualValues(t, DefaultMaxTokens, got["max_tokens"])
	assert.NotContains(t, got, "temperature")
	system := got["system"].([]any)
	require.Len(t, system, 1)
	assert.Equal(t, "be brief", system[0].(map[string]any)["text"])
}
