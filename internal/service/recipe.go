package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/pageza/moodbites/backend/internal/logging"
	"github.com/pageza/moodbites/backend/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ErrNoRecipesForMood is returned when no recipe carries the requested mood.
// It is an expected outcome, not a storage failure.
var ErrNoRecipesForMood = errors.New("no recipes found for this mood")

// RecipeService is the recipe store. Its contents only change through SeedIfEmpty.
type RecipeService struct {
	db *gorm.DB
}

// NewRecipeService creates a new RecipeService instance
func NewRecipeService(db *gorm.DB) *RecipeService {
	return &RecipeService{db: db}
}

// ListMoods returns the distinct mood labels present in the store, in no particular order
func (s *RecipeService) ListMoods(ctx context.Context) ([]string, error) {
	moods := []string{}
	if err := s.db.WithContext(ctx).
		Model(&models.Recipe{}).
		Distinct().
		Pluck("mood", &moods).Error; err != nil {
		return nil, fmt.Errorf("failed to list moods: %w", err)
	}
	return moods, nil
}

// GetRandomRecipeForMood picks one recipe uniformly at random among those whose
// mood equals mood exactly. The pick is made by the database on every call.
func (s *RecipeService) GetRandomRecipeForMood(ctx context.Context, mood string) (*models.Recipe, error) {
	var recipe models.Recipe
	err := s.db.WithContext(ctx).
		Where("mood = ?", mood).
		Clauses(clause.OrderBy{Expression: clause.Expr{SQL: "RANDOM()"}}).
		Take(&recipe).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNoRecipesForMood
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get recipe for mood %q: %w", mood, err)
	}
	return &recipe, nil
}

// CountRecipes returns the total number of stored recipes
func (s *RecipeService) CountRecipes(ctx context.Context) (int64, error) {
	var count int64
	if err := s.db.WithContext(ctx).Model(&models.Recipe{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count recipes: %w", err)
	}
	return count, nil
}

// SeedIfEmpty inserts the whole sample set when, and only when, the store holds
// no recipes. The check and the inserts share one transaction. It returns the
// number of recipes inserted.
func (s *RecipeService) SeedIfEmpty(ctx context.Context, sample []models.Recipe) (int, error) {
	inserted := 0
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.Recipe{}).Count(&count).Error; err != nil {
			return fmt.Errorf("failed to check recipes: %w", err)
		}
		if count > 0 {
			logging.Ctx(ctx).Debug().Int64("existing", count).Msg("[RecipeService] store already seeded")
			return nil
		}
		if len(sample) == 0 {
			return nil
		}

		rows := make([]models.Recipe, len(sample))
		copy(rows, sample)
		if err := tx.CreateInBatches(&rows, 100).Error; err != nil {
			return fmt.Errorf("failed to insert sample recipes: %w", err)
		}
		inserted = len(rows)
		return nil
	})
	if err != nil {
		return 0, err
	}

	if inserted > 0 {
		logging.Ctx(ctx).Info().Int("inserted", inserted).Msg("[RecipeService] sample recipes inserted")
	}
	return inserted, nil
}
