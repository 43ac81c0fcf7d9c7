// ABOUTME: Main entry point for the Pagemeta API server
// ABOUTME: Wires together all components and starts the HTTP server

package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"pagemeta-api/api"
	"pagemeta-api/api/handlers"
	"pagemeta-api/core/extract"
	"pagemeta-api/core/interfaces"
	"pagemeta-api/infrastructure/cache/memory"
	"pagemeta-api/infrastructure/logger/logruslog"
	"pagemeta-api/infrastructure/logger/standard"
	"pagemeta-api/pkg/config"
)

func main() {
	cfg, err := config.LoadFromEnv()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	var logger interfaces.Logger
	if cfg.Log.Format == "text" {
		logger = standard.NewStandardLoggerAt(cfg.Log.Level)
	} else {
		logger = logruslog.NewLogrusLogger(cfg.Log.Level)
	}
	logger.Info("Starting Pagemeta API", map[string]interface{}{
		"port":       cfg.Server.Port,
		"cache_type": cfg.Cache.Type,
	})

	cacheTTL := time.Duration(cfg.Cache.TTLSeconds) * time.Second
	var cache interfaces.Cache
	if cfg.Cache.Type == "memory" {
		cache = memory.NewMemoryCache(cacheTTL)
		logger.Info("Using memory cache", map[string]interface{}{
			"ttl": cacheTTL.String(),
		})
	}

	deps := interfaces.Dependencies{
		Cache:  cache,
		Logger: logger,
	}
	extractService := extract.NewService(deps).WithCacheTTL(cacheTTL)

	apiConfig := api.APIConfig{
		Logger:     logger,
		RateLimit:  cfg.Server.RateLimit,
		RateWindow: time.Duration(cfg.Server.RateWindowSeconds) * time.Second,
	}
	humaAPI, router := api.NewAPI(apiConfig)

	extractHandler := handlers.NewExtractHandler(extractService)
	extractHandler.RegisterRoutes(humaAPI)

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("HTTP server starting", map[string]interface{}{
			"addr": srv.Addr,
		})
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("HTTP server failed", map[string]interface{}{
				"error": err.Error(),
			})
			os.Exit(1)
		}
	}()

	// Wait for interrupt, then drain in-flight requests
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server", nil)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", map[string]interface{}{
			"error": err.Error(),
		})
	}
	logger.Info("Server stopped", nil)
}
