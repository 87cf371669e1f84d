package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/stocktrack/inventory-service/internal/config"
	"github.com/stocktrack/inventory-service/internal/handlers"
	"github.com/stocktrack/inventory-service/internal/middleware"
	"github.com/stocktrack/inventory-service/internal/storage"
	"github.com/stocktrack/inventory-service/internal/store"
	"github.com/stocktrack/inventory-service/pkg/logger"
	"github.com/stocktrack/inventory-service/pkg/metrics"
)

func main() {
	// Load .env file if it exists (for development)
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	if err := cfg.Validate(); err != nil {
		fmt.Printf("Configuration validation failed: %v\n", err)
		os.Exit(1)
	}

	log := logger.NewLogger(cfg.LogLevel)
	log.Info("Starting inventory-tracker", "config", cfg.String())

	metricsCollector := metrics.New()

	gin.SetMode(gin.ReleaseMode)

	// Storage and store
	doc := storage.NewFileDocument(cfg.DataFile, log, metricsCollector)
	itemStore := store.New(doc, log, metricsCollector)

	// Public API router
	publicRouter := gin.New()
	publicRouter.Use(gin.Recovery())
	publicRouter.Use(middleware.RequestID())
	publicRouter.Use(middleware.RequestLogger(log))
	publicRouter.Use(middleware.Metrics(metricsCollector))

	itemHandler := handlers.NewItemHandler(itemStore, log)
	handlers.RegisterRoutes(publicRouter, itemHandler)

	// Internal router: health and metrics only
	internalRouter := gin.New()
	internalRouter.Use(gin.Recovery())
	internalRouter.Use(middleware.RequestLogger(log))

	healthHandler := handlers.NewHealthHandler(log, doc)
	internalRouter.GET("/health", healthHandler.Health)
	internalRouter.GET("/metrics", gin.WrapH(promhttp.Handler()))

	publicServer := &http.Server{
		Addr:         fmt.Sprintf("%s:%s", cfg.ServiceHost, cfg.ServicePort),
		Handler:      publicRouter,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	internalServer := &http.Server{
		Addr:         fmt.Sprintf("%s:%s", cfg.ServiceHost, cfg.InternalServicePort),
		Handler:      internalRouter,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Periodically refresh the data-file health gauge
	go func() {
		ticker := time.NewTicker(30 * time.Second)
		defer ticker.Stop()

		for range ticker.C {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			metricsCollector.UpdateDataFileHealth(doc.Health(ctx) == nil)
			cancel()
		}
	}()

	go func() {
		log.Info("Public server starting", "address", publicServer.Addr)
		if err := publicServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("Public server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	go func() {
		log.Info("Internal server starting", "address", internalServer.Addr)
		if err := internalServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("Internal server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Server shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	go func() {
		if err := publicServer.Shutdown(ctx); err != nil {
			log.Error("Public server forced to shutdown", "error", err)
		}
	}()

	if err := internalServer.Shutdown(ctx); err != nil {
		log.Error("Internal server forced to shutdown", "error", err)
		os.Exit(1)
	}

	log.Info("Server exited")
}
