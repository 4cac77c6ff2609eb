package router

import (
	"context"

	"ourstory/config"
	"ourstory/internal/application"
	"ourstory/internal/container"
	repo "ourstory/internal/domain/repository"
	pginfra "ourstory/internal/infrastructure/postgres"
	"ourstory/internal/infrastructure/redisstore"
	handlers "ourstory/internal/interface/http"
	"ourstory/internal/router/modules"
)

type diaryDeps struct {
	Profiles repo.ProfileRepository
	Entries  repo.EntryRepository
	Ping     func(ctx context.Context) error
}

// buildRepositories picks the storage driver. Postgres is the canonical
// store; the redis driver mirrors the deployment where the whole diary
// lived in a KV space.
func buildRepositories() diaryDeps {
	cfg := container.GetConfig()
	if cfg.StorageDriver == config.DriverRedis {
		rdb := container.GetRedis()
		return diaryDeps{
			Profiles: redisstore.NewProfileRepository(rdb),
			Entries:  redisstore.NewEntryRepository(rdb),
			Ping:     func(ctx context.Context) error { return rdb.Ping(ctx).Err() },
		}
	}
	pool := container.GetPGPool()
	return diaryDeps{
		Profiles: pginfra.NewProfileRepository(pool),
		Entries:  pginfra.NewEntryRepository(pool),
		Ping:     func(ctx context.Context) error { return pool.Ping(ctx) },
	}
}

// InitModules initializes all application modules and registers them with the router registry
// This function should be called once during application startup to wire up all modules
func InitModules(r *Registry) {
	cfg := container.GetConfig()
	logger := container.GetLogger()
	deps := buildRepositories()

	profileSvc := application.NewProfileService(deps.Profiles, deps.Entries, cfg.BcryptCost, logger)
	diarySvc := application.NewDiaryService(profileSvc, deps.Entries, logger)

	r.Add(modules.NewProfileModule(handlers.NewProfileHandler(profileSvc, logger)))
	r.Add(modules.NewDiaryModule(handlers.NewDiaryHandler(diarySvc, logger)))
	r.Add(modules.NewHealthModule(handlers.NewHealthHandler(cfg.StorageDriver, deps.Ping)))
	if cfg.DebugMetricsEnabled {
		r.Add(modules.NewDebugModule())
	}
}
