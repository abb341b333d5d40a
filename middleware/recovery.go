package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const defaultErrorMessage = "Internal Server Error"

// statusCoder lets a panicking error carry its own status code into the log
// entry. The response is still a 500: anything that escapes a handler is an
// internal failure by definition.
type statusCoder interface {
	StatusCode() int
}

// Recovery is the last-resort error reporter. Any panic escaping a handler
// is logged with the request method and URL, then answered with a uniform
// JSON body carrying the failure message and the correlation id. Stack
// detail stays in the logs, never in the response.
func Recovery(log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			r := recover()
			if r == nil {
				return
			}

			msg := defaultErrorMessage
			status := http.StatusInternalServerError
			switch v := r.(type) {
			case error:
				if v.Error() != "" {
					msg = v.Error()
				}
				if sc, ok := v.(statusCoder); ok {
					status = sc.StatusCode()
				}
			case string:
				if v != "" {
					msg = v
				}
			}

			log.Error(msg,
				zap.String("method", c.Request.Method),
				zap.String("url", c.Request.URL.String()),
				zap.Int("statusCode", status),
				zap.Stack("stack"),
			)

			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
				"error":     msg,
				"requestId": RequestIDFrom(c),
			})
		}()
		c.Next()
	}
}
