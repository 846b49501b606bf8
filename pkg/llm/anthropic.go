package llm

import (
	"context"
	"errors"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

// DefaultAnthropicModel is used when no model is configured
const DefaultAnthropicModel = "claude-3-5-sonnet-20241022"

// AnthropicClient talks to the Anthropic messages API
type AnthropicClient struct {
	client anthropic.Client
	model  string
}

// NewAnthropic creates an Anthropic backed Provider
func NewAnthropic(apiKey, model, baseURL string) *AnthropicClient {
	opts := []option.RequestOption{option.WithAPIKey(apiKey)}
	if baseURL != "" {
		opts = append(opts, option.WithBaseURL(baseURL))
	}
	if model == "" {
		model = DefaultAnthropicModel
	}
	return &AnthropicClient{client: anthropic.NewClient(opts...), model: model}
}

// Name implements Provider
func (c *AnthropicClient) Name() string { return ProviderAnthropic }

// Complete implements Provider
func (c *AnthropicClient) Complete(ctx context.Context, systemPrompt, userMessage string) (string, error) {
	msg, err := c.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(c.model),
		MaxTokens: DefaultMaxTokens,
		System:    []anthropic.TextBlockParam{{Text: systemPrompt}},
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(userMessage)),
		},
	})
	if err != nil {
		return "", err
	}
	for _, block := range msg.Content {
		if block.Type == "text" {
			return strings.TrimSpace(block.Text), nil
		}
	}
	return "", errors.New("anthropic: response has no text block")
}
