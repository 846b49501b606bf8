package middleware

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// CORS allows the configured site origins to call the API with credentials
func CORS(allowOrigins []string) gin.HandlerFunc {
	cfg := cors.Config{
		AllowOrigins:     allowOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", RequestIDHeader},
		ExposeHeaders:    []string{RequestIDHeader},
		AllowCredentials: true,
		MaxAge:           24 * time.Hour,
	}
	if len(allowOrigins) == 0 {
		cfg.AllowOrigins = []string{"http://localhost"}
	}
	return cors.New(cfg)
}
