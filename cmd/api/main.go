package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	"github.com/pageza/moodbites/backend/config"
	"github.com/pageza/moodbites/backend/internal/database"
	"github.com/pageza/moodbites/backend/internal/logging"
	"github.com/pageza/moodbites/backend/internal/metrics"
	"github.com/pageza/moodbites/backend/internal/middleware"
	"github.com/pageza/moodbites/backend/internal/router"
	"github.com/pageza/moodbites/backend/internal/seed"
	"github.com/pageza/moodbites/backend/internal/server"
	"github.com/pageza/moodbites/backend/internal/service"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.Config{Level: cfg.Logging.Level, Format: cfg.Logging.Format})

	if err := run(cfg); err != nil {
		logging.Fatal().Err(err).Msg("Server error")
	}
	logging.Info().Msg("Server stopped")
}

func run(cfg *config.Config) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := database.New(cfg)
	if err != nil {
		return err
	}
	if sqlDB, err := db.DB(); err == nil {
		defer sqlDB.Close()
	}

	if err := database.RunMigrations(db); err != nil {
		return err
	}

	recipes := service.NewRecipeService(db)

	// Seeding completes before the server accepts any request.
	loader, err := seed.NewLoader(ctx, cfg.Seed.Source, cfg.AWS.Region)
	if err != nil {
		return err
	}
	inserted, err := seed.Populate(ctx, recipes, loader, cfg.Seed.Source)
	if err != nil {
		return err
	}
	metrics.SeededRecipes.Add(float64(inserted))

	deps := router.Deps{
		Recipes:     recipes,
		Ping:        pinger(db),
		CORSOrigins: cfg.CORS.Origins,

		TrustedProxies: cfg.Server.TrustedProxies,
	}

	if cfg.RateLimit.Enabled {
		rdb, err := database.NewRedisClient(cfg.Redis)
		if err != nil {
			return err
		}
		defer rdb.Close()
		deps.RateLimiter = middleware.NewRateLimiter(rdb, middleware.RateLimitConfig{
			Window: cfg.RateLimit.Window,
			Limit:  cfg.RateLimit.Limit,
		})
		logging.Info().Int("limit", cfg.RateLimit.Limit).Dur("window", cfg.RateLimit.Window).Msg("Rate limiting enabled")
	}

	engine, err := router.SetupRouter(deps)
	if err != nil {
		return err
	}
	srv := server.New(cfg, engine)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(srv.Start)
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout(cfg))
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil && !errors.Is(err, context.Canceled) {
			return err
		}
		return nil
	})
	return g.Wait()
}

func pinger(db *gorm.DB) func(context.Context) error {
	return func(ctx context.Context) error {
		return database.HealthCheck(ctx, db)
	}
}

func shutdownTimeout(cfg *config.Config) time.Duration {
	if cfg.Server.ShutdownTimeout > 0 {
		return cfg.Server.ShutdownTimeout
	}
	return 10 * time.Second
}
