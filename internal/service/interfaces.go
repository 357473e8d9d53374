package service

import (
	"context"

	"github.com/pageza/moodbites/backend/internal/models"
)

// IRecipeService defines the interface for recipe store operations
type IRecipeService interface {
	ListMoods(ctx context.Context) ([]string, error)
	GetRandomRecipeForMood(ctx context.Context, mood string) (*models.Recipe, error)
	CountRecipes(ctx context.Context) (int64, error)
	SeedIfEmpty(ctx context.Context, sample []models.Recipe) (int, error)
}

var _ IRecipeService = (*RecipeService)(nil)
