package middleware

import (
	"time"

	"craftlink_backend/internal/logger"

	"github.com/gin-gonic/gin"
)

// RequestLogger логирует каждый HTTP запрос через slog
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		logger.Info("http request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration_ms", time.Since(start).Milliseconds(),
			"size_bytes", c.Writer.Size(),
		)
	}
}
