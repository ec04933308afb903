package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/arenaduna/booking-backend/internal/app"
	"github.com/arenaduna/booking-backend/internal/calendar"
	"github.com/arenaduna/booking-backend/internal/config"
	"github.com/arenaduna/booking-backend/internal/pkg/logger"
)

func main() {
	// For receiving Ctrl+C / SIGTERM
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Load config
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	zlog, err := logger.New(cfg.IsProduction)
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer zlog.Sync()

	loc, err := time.LoadLocation(cfg.VenueTimezone)
	if err != nil {
		zlog.Fatal("invalid venue timezone", zap.String("tz", cfg.VenueTimezone), zap.Error(err))
	}

	// Calendar collaborator
	creds, err := cfg.CredentialsData()
	if err != nil {
		zlog.Fatal("failed to load calendar credentials", zap.Error(err))
	}
	source, err := calendar.NewGoogleSource(ctx, creds, cfg.CalendarID, loc)
	if err != nil {
		zlog.Fatal("failed to create calendar client", zap.Error(err))
	}

	// Classifier rule set (defaults unless a rules file is configured)
	rules, err := config.LoadClassifierRules(cfg.ClassifierRulesFile)
	if err != nil {
		zlog.Fatal("failed to load classifier rules", zap.Error(err))
	}

	container := app.NewContainer(app.Config{
		IsProduction:  cfg.IsProduction,
		ProdOrigins:   cfg.ProdOrigins,
		EventSource:   source,
		VenueLocation: loc,
		WeekendPolicy: cfg.WeekendPolicy,
		UnknownPolicy: cfg.UnknownEventPolicy,
		Rules:         rules,
		UsersFile:     cfg.UsersFile,
		JWTSecret:     cfg.JWTSecret,
		JWTTTL:        cfg.JWTAccessTokenTTL,
		BcryptCost:    cfg.BcryptCost,
		Logger:        zlog,
	})

	// Use http.Server for graceful shutdown
	server := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: container.Router,
	}

	// Run server in separate goroutine
	go func() {
		zlog.Info("server running", zap.String("addr", cfg.HTTPAddr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zlog.Fatal("server error", zap.Error(err))
		}
	}()

	// Wait for Ctrl+C
	<-ctx.Done()
	zlog.Info("shutdown signal received")

	// Create a shutdown context with timeout
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	// Shutdown HTTP server
	if err := server.Shutdown(shutdownCtx); err != nil {
		zlog.Warn("server forced to shutdown", zap.Error(err))
	}

	zlog.Info("server exited gracefully")
}
