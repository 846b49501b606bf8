package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Config holds every runtime setting of the API
type Config struct {
	Env     string        `yaml:"env"`
	Server  ServerConfig  `yaml:"server"`
	CORS    CORSConfig    `yaml:"cors"`
	Content ContentConfig `yaml:"content"`
	AI      AIConfig      `yaml:"ai"`
	Redis   RedisConfig   `yaml:"redis"`
}

// ServerConfig listener settings
type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port" validate:"min=1,max=65535"`
}

// CORSConfig cross-origin settings.
// Origins need an http(s) scheme, or are exactly "*".
type CORSConfig struct {
	AllowOrigins []string `yaml:"allow_origins" validate:"dive,required,startswith=http://|startswith=https://|eq=*"`
}

// ContentConfig locates the files the API serves
type ContentConfig struct {
	DataDir       string `yaml:"data_dir" validate:"required"`
	BlogDir       string `yaml:"blog_dir"`
	AppsFile      string `yaml:"apps_file"`
	ContextFile   string `yaml:"context_file"`
	DefaultAuthor string `yaml:"default_author"`
	// AssistantName is the person the chat assistant speaks for
	AssistantName string `yaml:"assistant_name"`
}

// RedisConfig backs the chat rate limiter. An empty URL disables it.
type RedisConfig struct {
	URL           string `yaml:"url"`
	ChatPerMinute int    `yaml:"chat_per_minute" validate:"min=1"`
}

// AIConfig selects the chat provider
type AIConfig struct {
	Provider  string         `yaml:"provider" validate:"oneof=openai anthropic"`
	OpenAI    ProviderConfig `yaml:"openai"`
	Anthropic ProviderConfig `yaml:"anthropic"`
}

// ProviderConfig credentials and model for one LLM vendor
type ProviderConfig struct {
	APIKey  string `yaml:"api_key"`
	Model   string `yaml:"model"`
	BaseURL string `yaml:"base_url"`
}

// Active returns the settings of the selected provider
func (a AIConfig) Active() ProviderConfig {
	if a.Provider == "anthropic" {
		return a.Anthropic
	}
	return a.OpenAI
}

// IsDevelopment reports whether the API runs locally
func (c *Config) IsDevelopment() bool {
	switch c.Env {
	case "", "local", "development", "dev":
		return true
	}
	return false
}

// Addr returns the listen address
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

// Default returns the configuration used when nothing is overridden
func Default() *Config {
	return &Config{
		Env: "local",
		Server: ServerConfig{
			Host: "0.0.0.0",
			Port: 8000,
		},
		CORS: CORSConfig{
			AllowOrigins: []string{"http://localhost"},
		},
		Content: ContentConfig{
			DataDir:       "data",
			DefaultAuthor: "Pablo Garay",
			AssistantName: "Dr. Pablo Garay",
		},
		AI: AIConfig{
			Provider:  "openai",
			OpenAI:    ProviderConfig{Model: "gpt-4-turbo-preview"},
			Anthropic: ProviderConfig{Model: "claude-3-5-sonnet-20241022"},
		},
		Redis: RedisConfig{ChatPerMinute: 20},
	}
}

// Load reads the YAML file at path (optional, a missing file is skipped),
// then applies environment overrides and validates the result.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
		case err != nil:
			return nil, fmt.Errorf("read config %s: %w", path, err)
		default:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("parse config %s: %w", path, err)
			}
		}
	}

	if err := applyEnv(cfg, os.LookupEnv); err != nil {
		return nil, err
	}
	cfg.resolvePaths()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks field constraints
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// resolvePaths fills content paths left empty from the data directory
func (c *Config) resolvePaths() {
	if c.Content.BlogDir == "" {
		c.Content.BlogDir = filepath.Join(c.Content.DataDir, "blog")
	}
	if c.Content.AppsFile == "" {
		c.Content.AppsFile = filepath.Join(c.Content.DataDir, "apps.json")
	}
	if c.Content.ContextFile == "" {
		c.Content.ContextFile = filepath.Join(c.Content.DataDir, "context.md")
	}
}

type lookupFunc func(key string) (string, bool)

func applyEnv(cfg *Config, lookup lookupFunc) error {
	str := func(key string, dst *string) {
		if v, ok := lookup(key); ok && v != "" {
			*dst = v
		}
	}

	str("APP_ENV", &cfg.Env)
	str("BACKEND_HOST", &cfg.Server.Host)
	if v, ok := lookup("BACKEND_PORT"); ok && v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid BACKEND_PORT %q: %w", v, err)
		}
		cfg.Server.Port = port
	}
	if v, ok := lookup("ALLOWED_ORIGINS"); ok && v != "" {
		cfg.CORS.AllowOrigins = SplitAndTrim(v, ",")
	}

	str("DATA_DIR", &cfg.Content.DataDir)
	str("BLOG_DIR", &cfg.Content.BlogDir)
	str("APPS_FILE", &cfg.Content.AppsFile)
	str("CONTEXT_FILE", &cfg.Content.ContextFile)
	str("DEFAULT_AUTHOR", &cfg.Content.DefaultAuthor)
	str("ASSISTANT_NAME", &cfg.Content.AssistantName)

	if v, ok := lookup("AI_PROVIDER"); ok && v != "" {
		cfg.AI.Provider = strings.ToLower(strings.TrimSpace(v))
	}
	str("OPENAI_API_KEY", &cfg.AI.OpenAI.APIKey)
	str("OPENAI_MODEL", &cfg.AI.OpenAI.Model)
	str("OPENAI_BASE_URL", &cfg.AI.OpenAI.BaseURL)
	str("ANTHROPIC_API_KEY", &cfg.AI.Anthropic.APIKey)
	str("ANTHROPIC_MODEL", &cfg.AI.Anthropic.Model)
	str("ANTHROPIC_BASE_URL", &cfg.AI.Anthropic.BaseURL)

	str("REDIS_URL", &cfg.Redis.URL)
	if v, ok := lookup("CHAT_RATE_LIMIT"); ok && v != "" {
		limit, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid CHAT_RATE_LIMIT %q: %w", v, err)
		}
		cfg.Redis.ChatPerMinute = limit
	}

	return nil
}

// SplitAndTrim splits s by sep, trims each part and drops empty ones
func SplitAndTrim(s, sep string) []string {
	parts := []string{}
	for _, part := range strings.Split(s, sep) {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			parts = append(parts, trimmed)
		}
	}
	return parts
}
