package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"storefront/internal/cache"
	"storefront/internal/catalog"
	"storefront/internal/config"
	"storefront/internal/filters"
	"storefront/internal/logger"
	"storefront/internal/postgrest"
	"storefront/internal/repository"
	"storefront/internal/routes"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("❌ %v", err)
	}

	appLog, err := logger.New(logger.Options{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
		Output: cfg.LogOutput,
		File:   cfg.LogFile,
	})
	if err != nil {
		log.Fatalf("❌ logger: %v", err)
	}

	api := postgrest.NewClient(cfg.BackendURL, cfg.BackendAPIKey, cfg.BackendAuthToken,
		postgrest.WithHTTPClient(&http.Client{Timeout: cfg.HTTPTimeout}),
		postgrest.WithLogger(logger.Component(appLog, "postgrest")),
	)

	cacheCfg := cache.DefaultConfig()
	cacheCfg.StaleTime = cfg.CacheStaleTime
	cacheCfg.GCTime = cfg.CacheGCTime
	cacheCfg.Retry = cfg.CacheRetry
	cacheCfg.ShouldRetry = catalog.Retryable
	queries := cache.New(cacheCfg, logger.Component(appLog, "cache"))
	defer queries.Close()

	svc := catalog.NewService(
		repository.NewProductRepository(api, time.Now),
		repository.NewStoreRepository(api, time.Now),
		repository.NewUserRepository(api, time.Now),
		queries,
		logger.Component(appLog, "catalog"),
	)

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	routes.RegisterRoutes(router, routes.Deps{
		Catalog: svc,
		Filters: filters.NewStore(),
		Log:     logger.Component(appLog, "http"),
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		appLog.WithField("port", cfg.Port).Info("🚀 Server running")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLog.WithError(err).Fatal("server stopped")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLog.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		appLog.WithError(err).Error("graceful shutdown failed")
	}
}
