package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	_ "github.com/pgaray/landing-api/docs"
	"github.com/pgaray/landing-api/internal/common"
	"github.com/pgaray/landing-api/internal/handler"
	"github.com/pgaray/landing-api/internal/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Handlers groups every HTTP handler the API exposes
type Handlers struct {
	Health *handler.HealthHandler
	Post   *handler.PostHandler
	App    *handler.AppHandler
	Chat   *handler.ChatHandler

	// ChatLimit guards the chat endpoint when set
	ChatLimit gin.HandlerFunc
}

// Setup configures all API routes
func Setup(router *gin.Engine, h Handlers) {
	router.GET("/", h.Health.Root)
	router.GET("/health", h.Health.Health)

	// Prometheus metrics
	router.GET(middleware.MetricsPath, gin.WrapH(promhttp.Handler()))

	// Swagger UI
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := router.Group("/api")

	blog := api.Group("/blog")
	blog.GET("", h.Post.ListPosts)
	blog.GET("/:slug", h.Post.GetPost)

	api.GET("/apps", h.App.ListApps)
	if h.ChatLimit != nil {
		api.POST("/chat", h.ChatLimit, h.Chat.Chat)
	} else {
		api.POST("/chat", h.Chat.Chat)
	}
}

// NewRouter builds a gin engine with the standard middleware chain and all routes
func NewRouter(allowOrigins []string, h Handlers) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.CORS(allowOrigins))
	router.Use(middleware.SecurityHeaders())
	router.Use(middleware.Metrics())
	router.Use(middleware.RequestLogger())

	router.NoRoute(func(c *gin.Context) {
		common.ErrorResponse(c, http.StatusNotFound, "not found", nil)
	})

	Setup(router, h)
	return router
}
