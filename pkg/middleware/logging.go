package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gogotex/gogotex/backend/blog-service/pkg/logger"
)

// RequestLogger writes one line per request once the handler chain is done.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		status := c.Writer.Status()
		line := "request id=%s method=%s route=%s status=%d bytes=%d duration=%s"
		args := []interface{}{
			c.GetString(RequestIDKey),
			c.Request.Method,
			route(c),
			status,
			c.Writer.Size(),
			time.Since(start),
		}
		switch {
		case status >= 500:
			logger.Errorf(line, args...)
		case status >= 400:
			logger.Warnf(line, args...)
		default:
			logger.Infof(line, args...)
		}
	}
}

// route prefers the matched template so ids do not end up in logs and labels.
func route(c *gin.Context) string {
	if p := c.FullPath(); p != "" {
		return p
	}
	return "unmatched"
}
