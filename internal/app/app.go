// Package app wires the database, cache and services shared by the HTTP
// server and the bankctl CLI.
package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"bankagent/internal/config"
	"bankagent/internal/repositories"
	"bankagent/internal/repositories/cache"
	"bankagent/internal/services/auth"
	"bankagent/internal/services/bank"
	"bankagent/internal/services/ledger"
	"bankagent/internal/services/request"
	"bankagent/internal/services/transfer"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// App bundles the services built from the environment.
type App struct {
	DB        *gorm.DB
	Cache     *cache.CacheService
	Auth      auth.Service
	Banks     bank.Service
	Transfers request.Service
	Log       *zap.Logger
}

// New opens the database and redis connections and builds every service.
func New(log *zap.Logger) (*App, error) {
	db, err := repositories.InitDB(repositories.DBConfigFromEnv(), log)
	if err != nil {
		return nil, err
	}

	redisClient := cache.NewRedisClient(cache.RedisConfigFromEnv())
	cacheService := cache.NewCacheService(redisClient, config.GetDurationEnv("BANK_CACHE_TTL", 10*time.Minute))
	if err := cacheService.HealthCheck(context.Background()); err != nil {
		// Bank lookups fall back to the database.
		log.Warn("redis unavailable, bank cache disabled until it recovers", zap.Error(err))
	}

	secret := config.GetEnv("JWT_SECRET", "")
	if secret == "" {
		_ = repositories.CloseDB(db)
		_ = cacheService.Close()
		return nil, errors.New("JWT_SECRET must be set")
	}

	banks := bank.NewService(repositories.NewBankRepository(db), cacheService, log.Named("bank"))
	ledgers := ledger.NewFactory(config.Ledger(), log.Named("ledger"))
	transfers := transfer.NewService(transfer.LedgerFactory(ledgers), log.Named("transfer"))

	return &App{
		DB:    db,
		Cache: cacheService,
		Auth: auth.NewService(repositories.NewOperatorRepository(db), auth.Config{
			Secret:   secret,
			TokenTTL: config.GetDurationEnv("JWT_TTL", 15*time.Minute),
		}, log.Named("auth")),
		Banks:     banks,
		Transfers: request.NewService(repositories.NewTransferRequestRepository(db), banks, transfers, log.Named("request")),
		Log:       log,
	}, nil
}

// Close releases the database and redis connections.
func (a *App) Close() error {
	var errs []error
	if err := repositories.CloseDB(a.DB); err != nil {
		errs = append(errs, fmt.Errorf("close database: %w", err))
	}
	if err := a.Cache.Close(); err != nil {
		errs = append(errs, fmt.Errorf("close redis: %w", err))
	}
	return errors.Join(errs...)
}
