package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearEnv blanks every variable Load reads so the host environment cannot leak in.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"APP_ENV", "BACKEND_HOST", "BACKEND_PORT", "ALLOWED_ORIGINS",
		"DATA_DIR", "BLOG_DIR", "APPS_FILE", "CONTEXT_FILE", "DEFAULT_AUTHOR", "ASSISTANT_NAME",
		"AI_PROVIDER", "OPENAI_API_KEY", "OPENAI_MODEL", "OPENAI_BASE_URL",
		"ANTHROPIC_API_KEY", "ANTHROPIC_MODEL", "ANTHROPIC_BASE_URL",
		"REDIS_URL", "CHAT_RATE_LIMIT",
	} {
		t.Setenv(key, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0:8000", cfg.Addr())
	assert.Equal(t, []string{"http://localhost"}, cfg.CORS.AllowOrigins)
	assert.Equal(t, filepath.Join("data", "blog"), cfg.Content.BlogDir)
	assert.Equal(t, filepath.Join("data", "apps.json"), cfg.Content.AppsFile)
	assert.Equal(t, filepath.Join("data", "context.md"), cfg.Content.ContextFile)
	assert.Equal(t, "Pablo Garay", cfg.Content.DefaultAuthor)
	assert.Equal(t, "openai", cfg.AI.Provider)
	assert.Equal(t, "gpt-4-turbo-preview", cfg.AI.Active().Model)
	assert.True(t, cfg.IsDevelopment())
	assert.Empty(t, cfg.Redis.URL)
	assert.Equal(t, 20, cfg.Redis.ChatPerMinute)
}

func TestLoad_MissingFileIsSkipped(t *testing.T) {
	clearEnv(t)

	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, 8000, cfg.Server.Port)
}

func TestLoad_YAMLThenEnv(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
env: production
server:
  port: 9000
content:
  data_dir: /srv/data
ai:
  provider: anthropic
  anthropic:
    model: claude-test
`), 0o644))

	t.Setenv("BACKEND_PORT", "9100")
	t.Setenv("ALLOWED_ORIGINS", " https://a.example , ,https://b.example")
	t.Setenv("ANTHROPIC_API_KEY", "sk-ant")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9100, cfg.Server.Port)
	assert.False(t, cfg.IsDevelopment())
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORS.AllowOrigins)
	assert.Equal(t, filepath.Join("/srv/data", "blog"), cfg.Content.BlogDir)

	active := cfg.AI.Active()
	assert.Equal(t, "claude-test", active.Model)
	assert.Equal(t, "sk-ant", active.APIKey)
}

func TestLoad_ExplicitPathsWin(t *testing.T) {
	clearEnv(t)
	t.Setenv("DATA_DIR", "/d")
	t.Setenv("BLOG_DIR", "/posts")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "/posts", cfg.Content.BlogDir)
	assert.Equal(t, filepath.Join("/d", "apps.json"), cfg.Content.AppsFile)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  string
	}{
		{"port not a number", "BACKEND_PORT", "eighty"},
		{"port out of range", "BACKEND_PORT", "70000"},
		{"unknown provider", "AI_PROVIDER", "gemini"},
		{"rate limit not a number", "CHAT_RATE_LIMIT", "many"},
		{"rate limit zero", "CHAT_RATE_LIMIT", "0"},
		{"origin without scheme", "ALLOWED_ORIGINS", "localhost:3000"},
		{"one bad origin among good", "ALLOWED_ORIGINS", "https://a.example,a.example"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(tt.key, tt.val)

			_, err := Load("")
			assert.Error(t, err)
		})
	}
}

func TestLoad_OriginsAccepted(t *testing.T) {
	for _, origins := range []string{"*", "http://localhost:3000", "https://a.example, http://b.example"} {
		clearEnv(t)
		t.Setenv("ALLOWED_ORIGINS", origins)

		_, err := Load("")
		assert.NoError(t, err, origins)
	}
}

func TestLoad_BadYAML(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server: [unclosed"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoadDotEnv(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env.local"), []byte("DEFAULT_AUTHOR=Local\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("DEFAULT_AUTHOR=Base\nOPENAI_MODEL=gpt-x\n"), 0o644))
	os.Unsetenv("DEFAULT_AUTHOR")
	os.Unsetenv("OPENAI_MODEL")

	loaded := LoadDotEnv(dir)
	assert.Len(t, loaded, 2)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "Local", cfg.Content.DefaultAuthor)
	assert.Equal(t, "gpt-x", cfg.AI.OpenAI.Model)
}

func TestSplitAndTrim(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, SplitAndTrim(" a ,, b ", ","))
	assert.Equal(t, []string{}, SplitAndTrim("", ","))
}
