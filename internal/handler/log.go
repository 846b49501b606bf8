package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/pgaray/landing-api/internal/middleware"
	"github.com/pgaray/landing-api/pkg/logger"
)

// logFailure records a server-side failure against the request id
// the client sees in X-Request-ID.
func logFailure(c *gin.Context, err error, msg string) {
	log := logger.WithRequestID(middleware.GetRequestID(c))
	log.Error().Err(err).Str("path", c.Request.URL.Path).Msg(msg)
}
