package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"schoolactivities/config"
	delivery "schoolactivities/internal/delivery/http"
	"schoolactivities/internal/delivery/http/controllers"
	"schoolactivities/internal/delivery/http/middleware"
	"schoolactivities/internal/repository/memory"
	"schoolactivities/internal/services"

	_ "schoolactivities/docs"
)

// @title School Activities API
// @version 1.0
// @description Activity signup service for Mergington High School: list extracurricular activities, sign students up, and unregister them.
// @BasePath /
func main() {
	logger := config.NewLogger()

	cfg, err := config.Load()
	if err != nil {
		logger.Error("config load failed", "err", err)
		os.Exit(1)
	}

	activityRepo := memory.NewActivityRepository(memory.SeedActivities())
	activityService := services.NewActivityService(activityRepo)
	activityController := controllers.NewActivityController(logger, activityService)

	mux := delivery.NewRouter(activityController, cfg.StaticDir)
	handler := middleware.RequestID(
		middleware.LoggingMiddleware(logger,
			middleware.CORS(cfg.CORSAllowedOrigins,
				middleware.Metrics(mux))))

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Info("server starting", "port", cfg.Port, "env", cfg.Environment)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server failed", "err", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown failed", "err", err)
		os.Exit(1)
	}
	logger.Info("server stopped")
}
