// @title       Beem SMS Gateway API
// @version     1.0
// @description HTTP front for sending SMS through the Beem gateway.
// @host        localhost:8080
// @BasePath    /
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/oggyb/beem-sms/internal/cache/redis"
	"github.com/oggyb/beem-sms/internal/config"
	"github.com/oggyb/beem-sms/internal/db/gormdb"
	"github.com/oggyb/beem-sms/internal/handler"
	dispatchRepo "github.com/oggyb/beem-sms/internal/repository/gorm/dispatch"
	routes "github.com/oggyb/beem-sms/internal/router"
	"github.com/oggyb/beem-sms/internal/server"
	"github.com/oggyb/beem-sms/internal/service"
	"github.com/oggyb/beem-sms/sms"
)

func main() {
	// Base context for the whole application lifetime.
	rootCtx := context.Background()

	// Load configuration from environment/.env.
	cfg := config.New()
	log := cfg.Logger()
	mainLog := log.WithField("component", "main")

	// Init cache.
	cache := redis.New(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
	if err := cache.Ping(rootCtx); err != nil {
		mainLog.WithError(err).Fatal("failed to connect to redis")
	}
	defer cache.Close()

	// Init DB.
	dsn := cfg.PostgresDSN()
	db, err := gormdb.New(dsn)
	if err != nil {
		mainLog.WithError(err).Fatal("failed to connect db")
	}

	// Init Beem client.
	smsClient, err := sms.NewClient(
		cfg.Beem.APIKey,
		cfg.Beem.SecretKey,
		cfg.SMSOptions(log.WithField("component", "beem-sms"))...,
	)
	if err != nil {
		mainLog.WithError(err).Fatal("failed to create Beem SMS client")
	}
	defer smsClient.Close()

	// Init repository and services.
	repo := dispatchRepo.NewRepository(db)
	dispatchSvc := service.NewDispatchService(
		smsClient,
		repo,
		cache,
		cfg.Beem.DefaultSource,
		cfg.Beem.BatchSize,
		log,
	)

	// HTTP dependencies & server wiring.
	deps := routes.AppDeps{
		Home: handler.NewHomeHandler(cache),
		SMS:  handler.NewSMSHandler(dispatchSvc),
	}

	addr := fmt.Sprintf("%s:%s", cfg.API.Host, cfg.API.Port)
	srv := server.New(addr, deps, server.Options{
		RateLimit: cfg.API.RateLimit,
		RateBurst: cfg.API.RateBurst,
		Logger:    log.WithField("component", "http"),
	})

	// Create a context that is cancelled on SIGINT/SIGTERM (Ctrl+C, docker stop etc.).
	ctx, stop := signal.NotifyContext(rootCtx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Start the HTTP server in a separate goroutine so we can listen for signals.
	go func() {
		mainLog.WithField("addr", addr).Info("HTTP server listening")

		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			mainLog.WithError(err).Fatal("HTTP server error")
		}
	}()

	// Block until we receive a shutdown signal.
	<-ctx.Done()
	mainLog.Info("Shutdown signal received, starting graceful shutdown...")

	// Give in-flight sends some time to finish.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		mainLog.WithError(err).Error("HTTP server graceful shutdown failed")
	} else {
		mainLog.Info("HTTP server stopped.")
	}

	mainLog.Info("Shutdown complete.")
}
