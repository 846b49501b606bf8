package llm

import (
	"context"
	"fmt"
	"strings"
)

// Supported provider names
const (
	ProviderOpenAI    = "openai"
	ProviderAnthropic = "anthropic"
)

// Generation settings. Temperature is only sent to OpenAI; Anthropic
// requests use the vendor default.
const (
	DefaultMaxTokens   = 500
	DefaultTemperature = 0.7
)

// Provider sends one system prompt and one user message to a language model
// and returns the text of its reply.
type Provider interface {
	Complete(ctx context.Context, systemPrompt, userMessage string) (string, error)
	Name() string
}

// Config selects and configures a provider
type Config struct {
	Provider string
	APIKey   string
	Model    string
	BaseURL  string // empty uses the vendor default
}

// New builds the provider named by cfg.Provider
func New(cfg Config) (Provider, error) {
	switch strings.ToLower(cfg.Provider) {
	case ProviderOpenAI:
		return NewOpenAI(cfg.APIKey, cfg.Model, cfg.BaseURL), nil
	case ProviderAnthropic:
		return NewAnthropic(cfg.APIKey, cfg.Model, cfg.BaseURL), nil
	default:
		return nil, fmt.Errorf("unsupported AI provider: %s", cfg.Provider)
	}
}
