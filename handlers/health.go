package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gogotex/gogotex/backend/blog-service/internal/config"
	"github.com/gogotex/gogotex/backend/blog-service/pkg/logger"
)

// Pinger is satisfied by the blog service; readiness only needs the store ping.
type Pinger interface {
	Ping(ctx context.Context) error
}

// RegisterHealth registers GET /health (liveness) and GET /ready (store reachable).
func RegisterHealth(r gin.IRouter, store Pinger, storeKind string, started time.Time) {
	r.GET(config.HealthPath, func(c *gin.Context) {
		c.String(http.StatusOK, "healthy")
	})

	r.GET(config.ReadyPath, func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		deps := map[string]bool{"store": true}
		status, code := "ready", http.StatusOK
		if err := store.Ping(ctx); err != nil {
			logger.Warnf("readiness: %s store ping failed: %v", storeKind, err)
			deps["store"] = false
			status, code = "not_ready", http.StatusServiceUnavailable
		}
		c.JSON(code, gin.H{
			"status": status,
			"store":  storeKind,
			"deps":   deps,
			"uptime": time.Since(started).String(),
		})
	})
}
