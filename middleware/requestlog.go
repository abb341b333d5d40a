package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RequestLogger writes one access-log entry per completed request: method,
// path, status, duration, and the caller id or "anonymous".
func RequestLogger(log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		caller := "anonymous"
		if ident, ok := CurrentIdentity(c); ok {
			caller = ident.ID
		}

		log.Info(c.Request.Method+" "+c.Request.URL.Path,
			zap.Int("status", c.Writer.Status()),
			zap.Duration("duration", time.Since(start)),
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.String("userId", caller),
		)
	}
}
