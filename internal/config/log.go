package config

import (
	"github.com/rs/zerolog"
)

// LogResolved logs the effective configuration with secrets masked
func LogResolved(cfg *Config, log *zerolog.Logger) {
	active := cfg.AI.Active()
	log.Info().
		Str("env", cfg.Env).
		Str("addr", cfg.Addr()).
		Strs("cors_origins", cfg.CORS.AllowOrigins).
		Str("blog_dir", cfg.Content.BlogDir).
		Str("apps_file", cfg.Content.AppsFile).
		Str("context_file", cfg.Content.ContextFile).
		Str("ai_provider", cfg.AI.Provider).
		Str("ai_model", active.Model).
		Str("ai_api_key", mask(active.APIKey)).
		Bool("chat_rate_limit", cfg.Redis.URL != "").
		Msg("config resolved")
}

func mask(secret string) string {
	if secret == "" {
		return "(unset)"
	}
	return "****"
}
