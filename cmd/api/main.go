package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/rs/zerolog"

	"github.com/pageza/pantrychef/backend/config"
	"github.com/pageza/pantrychef/backend/internal/api"
	"github.com/pageza/pantrychef/backend/internal/database"
	"github.com/pageza/pantrychef/backend/internal/logger"
	"github.com/pageza/pantrychef/backend/internal/metrics"
	"github.com/pageza/pantrychef/backend/internal/middleware"
	"github.com/pageza/pantrychef/backend/internal/server"
	"github.com/pageza/pantrychef/backend/internal/service"
	"github.com/pageza/pantrychef/backend/internal/store"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		bootLog := logger.New(logger.Options{ServiceName: "pantrychef-api"})
		bootLog.Fatal().Err(err).Msg("failed to load configuration")
	}

	log := logger.New(logger.Options{
		ServiceName: "pantrychef-api",
		Level:       logger.ParseLevel(cfg.LogLevel),
		Format:      cfg.LogFormat,
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	healthChecks := map[string]api.HealthCheck{}

	stores, err := openStore(ctx, cfg, log, healthChecks)
	if err != nil {
		log.Fatal().Err(err).Str("driver", cfg.StorageDriver).Msg("failed to open storage")
	}

	limiter := newRateLimiter(cfg, log, healthChecks)

	images := newImageMirror(ctx, cfg, log)

	generator, err := service.NewGeneratorFromConfig(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Str("provider", cfg.LLMProvider).Msg("failed to initialize recipe generator")
	}
	if generator == nil {
		log.Warn().Msg("no LLM provider configured, recipe generation disabled")
	} else {
		log.Info().Str("provider", generator.Provider()).Msg("recipe generation enabled")
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	m := metrics.New(registry)

	recipes := service.NewRecipeService(stores)
	srv := server.New(cfg, server.Deps{
		Services: api.Services{
			Recipes:    recipes,
			Pantry:     service.NewPantryService(stores.Pantry),
			Favorites:  service.NewFavoriteService(recipes, stores.Favorites),
			Shopping:   service.NewShoppingService(stores.Shopping),
			Generation: service.NewGenerationService(generator, stores.Recipes, images, m),
		},
		RateLimiter:  limiter,
		Metrics:      m,
		Registry:     registry,
		HealthChecks: healthChecks,
		Logger:       log,
	})

	errChan := make(chan error, 1)
	go func() {
		errChan <- srv.Start()
	}()

	select {
	case err := <-errChan:
		if err != nil {
			log.Fatal().Err(err).Msg("server error")
		}
	case <-ctx.Done():
		log.Info().Msg("shutdown signal received")
	}

	if err := srv.Shutdown(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("server shutdown error")
	}
	log.Info().Msg("server stopped")
}

// openStore builds the stores for the configured driver and seeds the
// sample recipes into an empty catalog.
func openStore(ctx context.Context, cfg *config.Config, log zerolog.Logger, checks map[string]api.HealthCheck) (*store.Store, error) {
	var stores *store.Store
	if cfg.StorageDriver == config.StorageMemory {
		stores = store.NewMemoryStore()
	} else {
		db, err := database.Open(cfg, log)
		if err != nil {
			return nil, err
		}
		if cfg.RunMigrations {
			if err := database.RunMigrations(db, log); err != nil {
				return nil, err
			}
		}
		checks["database"] = func(ctx context.Context) error {
			return database.HealthCheck(ctx, db)
		}
		stores = store.NewGormStore(db)
	}

	if cfg.StorageDriver == config.StorageMemory || cfg.SeedSampleData {
		seeded, err := store.Seed(ctx, stores.Recipes)
		if err != nil {
			return nil, err
		}
		if seeded > 0 {
			log.Info().Int("recipes", seeded).Msg("seeded sample recipes")
		}
	}

	log.Info().Str("driver", cfg.StorageDriver).Msg("storage ready")
	return stores, nil
}

// newRateLimiter returns a limiter for the generate endpoint. Without Redis
// generation is not limited.
func newRateLimiter(cfg *config.Config, log zerolog.Logger, checks map[string]api.HealthCheck) *middleware.RateLimiter {
	if cfg.GenerateRateLimit <= 0 {
		return nil
	}
	client, err := database.NewRedisClient(cfg, log)
	if err != nil {
		log.Warn().Err(err).Msg("redis unavailable, generation rate limiting disabled")
		return nil
	}
	checks["redis"] = func(ctx context.Context) error {
		return client.Ping(ctx).Err()
	}
	return middleware.NewGenerationRateLimiter(client, cfg.GenerateRateLimit, cfg.GenerateRateWindow)
}

func newImageMirror(ctx context.Context, cfg *config.Config, log zerolog.Logger) service.ImageMirror {
	s3Config, err := config.NewS3Config(ctx, cfg)
	if err != nil {
		log.Warn().Err(err).Msg("S3 unavailable, generated image URLs are kept as returned")
		return nil
	}
	if s3Config == nil {
		return nil
	}
	if err := s3Config.SetupBucketPolicy(ctx); err != nil {
		log.Warn().Err(err).Str("bucket", s3Config.BucketName).Msg("failed to apply bucket policy")
	}
	log.Info().Str("bucket", s3Config.BucketName).Msg("mirroring generated images to S3")
	return service.NewImageService(s3Config)
}
