package main

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gogotex/gogotex/backend/blog-service/handlers"
	"github.com/gogotex/gogotex/backend/blog-service/internal/blog/handler"
	"github.com/gogotex/gogotex/backend/blog-service/internal/blog/service"
	"github.com/gogotex/gogotex/backend/blog-service/internal/config"
	"github.com/gogotex/gogotex/backend/blog-service/pkg/middleware"
	"github.com/gogotex/gogotex/backend/blog-service/pkg/response"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// newRouter wires middleware and every route. gatherer backs /metrics.
func newRouter(cfg *config.Config, svc service.Service, storeKind string, gatherer prometheus.Gatherer) *gin.Engine {
	r := gin.New()
	r.Use(
		middleware.RequestID(),
		middleware.RequestLogger(),
		middleware.Metrics(),
		middleware.Recovery(),
		middleware.CORS(),
	)

	msgs := cfg.Messages()
	handlers.RegisterHome(r, msgs)
	handler.RegisterBlogRoutes(r, handler.New(svc, msgs, cfg.Server.StrictStatus))
	handlers.RegisterHealth(r, svc, storeKind, time.Now())
	handlers.RegisterSwagger(r)
	r.GET(config.MetricsPath, gin.WrapH(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))

	r.NoRoute(func(c *gin.Context) {
		response.JSON(c, http.StatusNotFound, response.Error(http.StatusNotFound, msgs.NotFound, nil))
	})
	return r
}
