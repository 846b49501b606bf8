package main

import (
	"context"
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/pgaray/landing-api/internal/blog"
	"github.com/pgaray/landing-api/internal/config"
	"github.com/pgaray/landing-api/internal/handler"
	"github.com/pgaray/landing-api/internal/middleware"
	"github.com/pgaray/landing-api/internal/repository"
	"github.com/pgaray/landing-api/internal/routes"
	"github.com/pgaray/landing-api/internal/service"
	"github.com/pgaray/landing-api/pkg/llm"
	pkglogger "github.com/pgaray/landing-api/pkg/logger"
	pkgredis "github.com/pgaray/landing-api/pkg/redis"
)

func runServe(opts *options) error {
	cfg, err := opts.loadConfig()
	if err != nil {
		return err
	}

	pkglogger.InitStructured(cfg.Env)
	log := pkglogger.GetLogger()
	config.LogResolved(cfg, log)

	if !cfg.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}

	router, err := buildRouter(cfg)
	if err != nil {
		return err
	}

	addr := cfg.Addr()
	log.Info().Str("addr", addr).Msg("server listening")
	if err := router.Run(addr); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}
	return nil
}

// newPostService wires the blog pipeline: file repository, metadata resolver
// and goldmark renderer.
func newPostService(cfg *config.Config) service.PostService {
	return service.NewPostService(
		repository.NewPostRepository(cfg.Content.BlogDir),
		blog.NewResolver(cfg.Content.DefaultAuthor),
		blog.NewGoldmarkRenderer(),
		pkglogger.WithComponent("blog"),
	)
}

func newChatService(cfg *config.Config) (service.ChatService, error) {
	active := cfg.AI.Active()
	provider, err := llm.New(llm.Config{
		Provider: cfg.AI.Provider,
		APIKey:   active.APIKey,
		Model:    active.Model,
		BaseURL:  active.BaseURL,
	})
	if err != nil {
		return nil, err
	}

	biography, err := repository.NewContextRepository(cfg.Content.ContextFile).Load()
	if err != nil {
		return nil, fmt.Errorf("load chat context: %w", err)
	}

	return service.NewChatService(provider, cfg.Content.AssistantName, biography, pkglogger.WithComponent("chat")), nil
}

// buildRouter assembles every service and handler behind the gin engine
func buildRouter(cfg *config.Config) (*gin.Engine, error) {
	chatService, err := newChatService(cfg)
	if err != nil {
		return nil, err
	}

	h := routes.Handlers{
		Health: handler.NewHealthHandler(),
		Post:   handler.NewPostHandler(newPostService(cfg)),
		App:    handler.NewAppHandler(service.NewAppService(repository.NewAppRepository(cfg.Content.AppsFile))),
		Chat:   handler.NewChatHandler(chatService),
	}
	h.ChatLimit = newChatLimiter(cfg)

	return routes.NewRouter(cfg.CORS.AllowOrigins, h), nil
}

// newChatLimiter connects to Redis when configured. An unreachable server
// leaves chat unlimited rather than failing startup.
func newChatLimiter(cfg *config.Config) gin.HandlerFunc {
	if cfg.Redis.URL == "" {
		return nil
	}

	log := pkglogger.GetLogger()
	client, err := pkgredis.NewClient(context.Background(), cfg.Redis.URL)
	if err != nil {
		log.Warn().Err(err).Msg("Redis unavailable, chat rate limiting disabled")
		return nil
	}

	limit := middleware.DefaultRateLimitConfig()
	limit.RequestsPerMinute = cfg.Redis.ChatPerMinute
	log.Info().Int("per_minute", limit.RequestsPerMinute).Msg("chat rate limiting enabled")
	return middleware.RateLimit(client, limit)
}
