package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"screenwell/wellness-agent/internal/aggregate"
	"screenwell/wellness-agent/internal/category"
	"screenwell/wellness-agent/internal/config"
	"screenwell/wellness-agent/internal/handler"
	"screenwell/wellness-agent/internal/logger"
	"screenwell/wellness-agent/internal/notify"
	"screenwell/wellness-agent/internal/platform"
	"screenwell/wellness-agent/internal/report"
	"screenwell/wellness-agent/internal/router"
	"screenwell/wellness-agent/internal/sampler"
	"screenwell/wellness-agent/internal/service"

	"go.uber.org/zap"
)

func main() {
	// Parse command line flags
	configPath := flag.String("config", "config/local.yaml", "Path to configuration file")
	flag.Parse()

	// Load configuration
	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log, err := logger.New(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	log.Info("Starting wellness agent",
		zap.String("env", cfg.Env),
		zap.String("config_path", *configPath),
	)

	// Initialize platform
	platformInstance, err := platform.NewPlatform()
	if err != nil {
		log.Fatal("Failed to initialize platform", zap.Error(err))
	}

	// Initialize category registry
	registry := category.NewRegistry(cfg.Categories, cfg.DisplayNames)

	// Initialize notifier
	var notifier notify.Notifier
	if cfg.Notifications.Enabled {
		notifier = notify.NewDesktopNotifier(log.Logger)
	} else {
		log.Info("Desktop notifications disabled in configuration")
		notifier = notify.NopNotifier{}
	}

	// Initialize sampler
	appSampler := sampler.New(
		platformInstance,
		registry,
		notifier,
		sampler.OptionsFromConfig(cfg),
		log.Logger,
	)

	// Initialize report builder
	builder := report.NewBuilder(
		aggregate.New(registry),
		cfg.Notifications,
		log.Logger,
	)

	// Initialize tracking service
	trackingService := service.NewTrackingService(
		appSampler,
		builder,
		cfg.Tracking.Continuous,
		log.Logger,
	)

	// Start dashboard API server if enabled
	var apiServer *http.Server
	if cfg.Server.Enabled {
		reportHandler := handler.NewReportHandler(trackingService, log.Logger)
		addr := fmt.Sprintf("localhost:%d", cfg.Server.Port)
		apiServer = &http.Server{
			Addr:         addr,
			Handler:      router.New(reportHandler, log.Logger),
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 15 * time.Second,
			IdleTimeout:  60 * time.Second,
		}

		go func() {
			log.Info("Starting dashboard API server", zap.String("address", addr))
			if err := apiServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				log.Error("Dashboard API server error", zap.Error(err))
			}
		}()
	} else {
		log.Info("Dashboard API server disabled in configuration")
	}

	// Start tracking service
	if err := trackingService.Start(); err != nil {
		log.Fatal("Failed to start tracking service", zap.Error(err))
	}

	log.Info("Wellness agent started successfully",
		zap.Int("session_duration_seconds", cfg.Tracking.SessionDuration),
		zap.Bool("continuous", cfg.Tracking.Continuous),
	)

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	sig := <-quit
	log.Info("Received shutdown signal", zap.String("signal", sig.String()))

	log.Info("Shutting down wellness agent...")

	// Stop dashboard API server if enabled
	if apiServer != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := apiServer.Shutdown(ctx); err != nil {
			log.Warn("Dashboard API server shutdown error", zap.Error(err))
		} else {
			log.Info("Dashboard API server stopped")
		}
	}

	// Stop tracking service with timeout
	done := make(chan struct{})
	go func() {
		trackingService.Stop()
		close(done)
	}()

	select {
	case <-done:
		log.Info("Tracking service stopped successfully")
	case <-time.After(3 * time.Second):
		log.Warn("Shutdown timeout reached, forcing immediate exit")
		os.Exit(1)
	}

	log.Info("Wellness agent stopped")
}
