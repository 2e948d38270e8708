// Package main starts the bankagent HTTP API.
package main

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	"bankagent/internal/app"
	"bankagent/internal/config"
	"bankagent/internal/handlers"
	"bankagent/internal/logger"
	"bankagent/internal/repositories"
	"bankagent/internal/routes"

	"go.uber.org/zap"
)

func main() {
	config.LoadEnv()

	log := logger.New(config.IsProduction())
	defer func() { _ = log.Sync() }()

	a, err := app.New(log)
	if err != nil {
		log.Fatal("failed to start", zap.Error(err))
	}
	defer func() {
		if err := a.Close(); err != nil {
			log.Warn("shutdown", zap.Error(err))
		}
	}()

	go reportPoolStats(a, log)

	server := routes.NewApp(routes.ConfigFromEnv(), handlers.Deps{
		Auth:      a.Auth,
		Banks:     a.Banks,
		Transfers: a.Transfers,
		Health: map[string]handlers.HealthChecker{
			"database": repositories.DBHealth{DB: a.DB},
			"redis":    a.Cache,
		},
		Log: log.Named("http"),
	})

	go func() {
		stop := make(chan os.Signal, 1)
		signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
		<-stop
		log.Info("shutting down")
		// In-flight transfers finish their legs before the server exits.
		if err := server.ShutdownWithTimeout(time.Minute); err != nil {
			log.Error("shutdown failed", zap.Error(err))
		}
	}()

	addr := ":" + config.GetEnv("PORT", "3000")
	log.Info("listening", zap.String("addr", addr))
	if err := server.Listen(addr); err != nil {
		log.Error("server stopped", zap.Error(err))
	}
}

func reportPoolStats(a *app.App, log *zap.Logger) {
	sqlDB, err := a.DB.DB()
	if err != nil {
		return
	}
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()
	for range ticker.C {
		stats := sqlDB.Stats()
		redis := a.Cache.GetStats()
		log.Debug("pool stats",
			zap.Int("db_open", stats.OpenConnections),
			zap.Int("db_in_use", stats.InUse),
			zap.Int64("db_wait_count", stats.WaitCount),
			zap.Duration("db_wait", stats.WaitDuration),
			zap.Uint32("redis_hits", redis.Hits),
			zap.Uint32("redis_misses", redis.Misses),
			zap.Uint32("redis_total_conns", redis.TotalConns),
		)
	}
}
