package llm

import (
	"context"
	"errors"
	"strings"

	openai "github.com/sashabaranov/go-openai"
)

// DefaultOpenAIModel is used when no model is configured
const DefaultOpenAIModel = "gpt-4-turbo-preview"

// OpenAIClient talks to the OpenAI chat completions API
type OpenAIClient struct {
	client *openai.Client
	model  string
}

// NewOpenAI creates an OpenAI backed Provider
func NewOpenAI(apiKey, model, baseURL string) *OpenAIClient {
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	if model == "" {
		model = DefaultOpenAIModel
	}
	return &OpenAIClient{client: openai.NewClientWithConfig(cfg), model: model}
}

// Name implements Provider
func (c *OpenAIClient) Name() string { return ProviderOpenAI }

// Complete implements Provider
func (c *OpenAIClient) Complete(ctx context.Context, systemPrompt, userMessage string) (string, error) {
	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: userMessage},
		},
		Temperature: DefaultTemperature,
		MaxTokens:   DefaultMaxTokens,
	})
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("openai: empty response")
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}
