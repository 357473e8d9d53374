package seed

import (
	"context"
	"fmt"

	"github.com/pageza/moodbites/backend/config"
	"github.com/pageza/moodbites/backend/internal/logging"
	"github.com/pageza/moodbites/backend/internal/models"
)

// Store is the write side of the recipe store used for seeding
type Store interface {
	CountRecipes(ctx context.Context) (int64, error)
	SeedIfEmpty(ctx context.Context, sample []models.Recipe) (int, error)
}

// NewLoader returns a Loader for source, with an S3 client when source is an s3:// URI
func NewLoader(ctx context.Context, source, region string) (*Loader, error) {
	if !IsS3Source(source) {
		return &Loader{}, nil
	}
	s3, err := config.NewS3Config(ctx, region)
	if err != nil {
		return nil, fmt.Errorf("failed to create S3 client: %w", err)
	}
	return &Loader{S3: s3}, nil
}

// Populate loads source and inserts it when the store is empty. A populated
// store is left alone without reading source. It returns the number of
// recipes inserted.
func Populate(ctx context.Context, store Store, loader *Loader, source string) (int, error) {
	existing, err := store.CountRecipes(ctx)
	if err != nil {
		return 0, err
	}
	if existing > 0 {
		logging.Info().Int64("existing", existing).Msg("[Seed] store already populated, skipping")
		return 0, nil
	}

	recipes, err := loader.Load(ctx, source)
	if err != nil {
		return 0, err
	}

	inserted, err := store.SeedIfEmpty(ctx, recipes)
	if err != nil {
		return 0, fmt.Errorf("failed to seed recipes: %w", err)
	}

	if inserted == 0 {
		logging.Info().Msg("[Seed] store populated by another writer, nothing inserted")
	} else {
		logging.Info().Int("count", inserted).Str("source", describeSource(source)).Msg("[Seed] inserted sample recipes")
	}
	return inserted, nil
}

func describeSource(source string) string {
	if source == "" {
		return "built-in"
	}
	return source
}
