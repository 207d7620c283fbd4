// Package initializer builds the application dependencies from configuration.
package initializer

import (
	"github.com/redis/go-redis/v9"

	"github.com/moneta-app/moneta/infra"
	infracache "github.com/moneta-app/moneta/infra/cache"
	infra_eventbus "github.com/moneta-app/moneta/infra/eventbus"
	infra_provider "github.com/moneta-app/moneta/infra/provider"
	infra_repository "github.com/moneta-app/moneta/infra/repository"
	"github.com/moneta-app/moneta/pkg/app"
	"github.com/moneta-app/moneta/pkg/config"
)

// InitializeDependencies initializes all the application dependencies.
func InitializeDependencies(cfg *config.App) (*app.Deps, error) {
	deps := &app.Deps{}
	logger := setupLogger(cfg.Log)
	deps.Logger = logger

	db, err := infra.NewDatabase(cfg.DB.Url)
	if err != nil {
		logger.Error("Failed to initialize database", "error", err)
		return nil, err
	}

	bus := infra_eventbus.NewWithMemory(logger)
	deps.EventBus = bus

	deps.Uow = infra_repository.NewUoW(db, bus, logger)

	redisOpt := &redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	}
	deps.InflationStore = infracache.NewRedisStore(redisOpt, cfg.Redis.Prefix, logger)
	deps.GoalStore = infracache.NewRedisStore(redisOpt, cfg.Redis.Prefix, logger)

	deps.InflationSource = infra_provider.NewIMFClient(
		cfg.Inflation.ApiUrl,
		cfg.Inflation.HTTPTimeout,
		logger,
	)

	return deps, nil
}
