package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/pageza/moodbites/backend/config"
	"github.com/pageza/moodbites/backend/internal/database"
	"github.com/pageza/moodbites/backend/internal/logging"
	"github.com/pageza/moodbites/backend/internal/seed"
	"github.com/pageza/moodbites/backend/internal/service"
)

func main() {
	var (
		source string
		dryRun bool
	)
	flag.StringVar(&source, "source", "", "Seed file path or s3://bucket/key (default: SEED_SOURCE, then the built-in set)")
	flag.BoolVar(&dryRun, "dry-run", false, "Validate the seed source without writing")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}
	logging.Init(logging.Config{Level: cfg.Logging.Level, Format: cfg.Logging.Format})

	if source == "" {
		source = cfg.Seed.Source
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	loader, err := seed.NewLoader(ctx, source, cfg.AWS.Region)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to create seed loader")
	}

	if dryRun {
		recipes, err := loader.Load(ctx, source)
		if err != nil {
			logging.Fatal().Err(err).Msg("Seed source is invalid")
		}
		fmt.Printf("%d recipes OK\n", len(recipes))
		return
	}

	db, err := database.New(cfg)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to connect to database")
	}
	if err := database.RunMigrations(db); err != nil {
		logging.Fatal().Err(err).Msg("Migration failed")
	}

	inserted, err := seed.Populate(ctx, service.NewRecipeService(db), loader, source)
	if err != nil {
		logging.Fatal().Err(err).Msg("Seeding failed")
	}
	fmt.Printf("inserted %d recipes\n", inserted)
}
