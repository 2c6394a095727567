package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gogotex/gogotex/backend/blog-service/internal/blog/repository"
	"github.com/gogotex/gogotex/backend/blog-service/internal/blog/service"
	"github.com/gogotex/gogotex/backend/blog-service/internal/config"
	"github.com/gogotex/gogotex/backend/blog-service/internal/database"
	"github.com/gogotex/gogotex/backend/blog-service/pkg/logger"
	"github.com/gogotex/gogotex/backend/blog-service/pkg/metrics"
	"github.com/prometheus/client_golang/prometheus"
	"go.mongodb.org/mongo-driver/mongo"
)

func main() {
	// initialize logging (can be controlled with LOG_LEVEL env: debug|info|warn|error|fatal)
	logger.Init(os.Getenv("LOG_LEVEL"))

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Fatalf("failed to load config: %v", err)
	}
	logger.Init(cfg.Log.Level)
	msgs := cfg.Messages()
	logger.Infof("config loaded: app=%q env=%s mongo=%v strict=%v", cfg.App.Name, cfg.Server.Environment, cfg.MongoDB.URI != "", cfg.Server.StrictStatus)

	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	gin.DefaultWriter = logger.Writer()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	metrics.RegisterCollectors(prometheus.DefaultRegisterer)

	// Prefer the Mongo-backed service when a URI is configured; fall back to memory otherwise.
	svc, storeKind := service.NewMemoryService(), "memory"
	var client *mongo.Client
	if cfg.MongoDB.URI != "" {
		client, err = database.ConnectWithRetry(ctx, cfg.MongoDB, database.NewTracker(msgs), 5, time.Second)
		if err != nil {
			logger.Errorf("%s: %v", msgs.DBConnectionFailed, err)
			logger.Warnf("using memory-backed blog store")
		} else {
			col := client.Database(cfg.MongoDB.Database).Collection(cfg.MongoDB.Collection)
			repo := repository.NewMongoRepo(col)
			if err := repo.EnsureIndexes(ctx); err != nil {
				logger.Warnf("failed to create blog indexes: %v", err)
			}
			svc, storeKind = service.NewService(repo), "mongodb"
		}
	} else {
		logger.Warnf("MONGODB_URI not set, using memory-backed blog store")
	}

	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      newRouter(cfg, svc, storeKind, prometheus.DefaultGatherer),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		logger.Infof("%s", msgs.ApplicationRunning)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatalf("server failed: %v", err)
		}
	}()

	<-ctx.Done()
	logger.Infof("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Errorf("http shutdown: %v", err)
	}
	if client != nil {
		if err := database.Disconnect(shutdownCtx, client, msgs); err != nil {
			logger.Errorf("%v", err)
		}
	}
}
