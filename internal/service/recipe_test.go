package service

import (
	"context"
	"testing"

	"github.com/pageza/moodbites/backend/internal/models"
	"github.com/pageza/moodbites/backend/internal/seed"
	"github.com/pageza/moodbites/backend/internal/testhelpers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newSeededService(t *testing.T, db *gorm.DB, sample []models.Recipe) *RecipeService {
	t.Helper()
	svc := NewRecipeService(db)
	_, err := svc.SeedIfEmpty(context.Background(), sample)
	require.NoError(t, err)
	return svc
}

func recipe(name, mood string) models.Recipe {
	return models.Recipe{
		Name:         name,
		Ingredients:  "A, B, C",
		Instructions: "1. X\n2. Y",
		Mood:         mood,
		PrepTime:     10,
		Difficulty:   models.DifficultyEasy,
		Dietary:      models.DietaryVegan,
	}
}

func TestListMoods(t *testing.T) {
	svc := newSeededService(t, testhelpers.SetupTestDatabase(t), seed.SampleRecipes())

	moods, err := svc.ListMoods(context.Background())
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{
		"sad", "happy", "excited", "anxious", "sick",
		"romantic", "refreshed", "cozy", "adventurous", "cheerful",
	}, moods)
}

func TestListMoodsDistinct(t *testing.T) {
	svc := newSeededService(t, testhelpers.SetupTestDatabase(t), []models.Recipe{
		recipe("one", "happy"), recipe("two", "happy"), recipe("three", "sad"),
	})

	moods, err := svc.ListMoods(context.Background())
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"happy", "sad"}, moods)
}

func TestListMoodsEmptyStore(t *testing.T) {
	svc := NewRecipeService(testhelpers.SetupTestDatabase(t))

	moods, err := svc.ListMoods(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, moods)
	assert.Empty(t, moods)
}

func TestEveryListedMoodHasARecipe(t *testing.T) {
	svc := newSeededService(t, testhelpers.SetupTestDatabase(t), seed.SampleRecipes())
	ctx := context.Background()

	moods, err := svc.ListMoods(ctx)
	require.NoError(t, err)
	for _, mood := range moods {
		r, err := svc.GetRandomRecipeForMood(ctx, mood)
		require.NoError(t, err, mood)
		assert.Equal(t, mood, r.Mood)
	}
}

func TestGetRandomRecipeForMoodNotFound(t *testing.T) {
	svc := newSeededService(t, testhelpers.SetupTestDatabase(t), seed.SampleRecipes())

	r, err := svc.GetRandomRecipeForMood(context.Background(), "nonexistent-mood")
	assert.Nil(t, r)
	assert.ErrorIs(t, err, ErrNoRecipesForMood)
}

func TestGetRandomRecipeForMoodIsCaseSensitive(t *testing.T) {
	svc := newSeededService(t, testhelpers.SetupTestDatabase(t), seed.SampleRecipes())

	_, err := svc.GetRandomRecipeForMood(context.Background(), "Happy")
	assert.ErrorIs(t, err, ErrNoRecipesForMood)
}

func TestGetRandomRecipeForMoodSingleMatch(t *testing.T) {
	svc := newSeededService(t, testhelpers.SetupTestDatabase(t), seed.SampleRecipes())

	for i := 0; i < 20; i++ {
		r, err := svc.GetRandomRecipeForMood(context.Background(), "cozy")
		require.NoError(t, err)
		assert.Equal(t, "Warm Apple Cinnamon Oatmeal", r.Name)
	}
}

func TestGetRandomRecipeForMoodRerolls(t *testing.T) {
	svc := newSeededService(t, testhelpers.SetupTestDatabase(t), []models.Recipe{
		recipe("first", "happy"), recipe("second", "happy"), recipe("other", "sad"),
	})

	seen := map[string]int{}
	for i := 0; i < 200; i++ {
		r, err := svc.GetRandomRecipeForMood(context.Background(), "happy")
		require.NoError(t, err)
		require.Equal(t, "happy", r.Mood)
		seen[r.Name]++
	}
	assert.Len(t, seen, 2, "both happy recipes should be picked across 200 calls")
	assert.NotContains(t, seen, "other")
}

func TestSeedIfEmptyIsIdempotent(t *testing.T) {
	svc := NewRecipeService(testhelpers.SetupTestDatabase(t))
	ctx := context.Background()

	inserted, err := svc.SeedIfEmpty(ctx, seed.SampleRecipes())
	require.NoError(t, err)
	assert.Equal(t, 10, inserted)

	first, err := svc.CountRecipes(ctx)
	require.NoError(t, err)

	inserted, err = svc.SeedIfEmpty(ctx, seed.SampleRecipes())
	require.NoError(t, err)
	assert.Zero(t, inserted)

	second, err := svc.CountRecipes(ctx)
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, int64(10), second)
}

func TestSeedIfEmptyAssignsIdentifiers(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	svc := newSeededService(t, db, seed.SampleRecipes())

	var ids []string
	require.NoError(t, db.Model(&models.Recipe{}).Pluck("id", &ids).Error)
	assert.Len(t, ids, 10)

	unique := map[string]struct{}{}
	for _, id := range ids {
		unique[id] = struct{}{}
	}
	assert.Len(t, unique, 10)

	r, err := svc.GetRandomRecipeForMood(context.Background(), "sad")
	require.NoError(t, err)
	assert.NotZero(t, r.ID)
}

func TestSeedIfEmptyWithEmptySample(t *testing.T) {
	svc := NewRecipeService(testhelpers.SetupTestDatabase(t))

	inserted, err := svc.SeedIfEmpty(context.Background(), nil)
	require.NoError(t, err)
	assert.Zero(t, inserted)
}

func TestStorageErrorsAreNotNotFound(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	svc := NewRecipeService(db)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())

	_, err = svc.GetRandomRecipeForMood(context.Background(), "happy")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNoRecipesForMood)

	_, err = svc.ListMoods(context.Background())
	assert.Error(t, err)
}

func TestRecipeServicePostgres(t *testing.T) {
	db := testhelpers.SetupPostgresDatabase(t)
	svc := newSeededService(t, db, seed.SampleRecipes())
	ctx := context.Background()

	moods, err := svc.ListMoods(ctx)
	require.NoError(t, err)
	assert.Len(t, moods, 10)

	r, err := svc.GetRandomRecipeForMood(ctx, "romantic")
	require.NoError(t, err)
	assert.Equal(t, "Chocolate Lava Cake", r.Name)

	_, err = svc.GetRandomRecipeForMood(ctx, "ROMANTIC")
	assert.ErrorIs(t, err, ErrNoRecipesForMood)

	inserted, err := svc.SeedIfEmpty(ctx, seed.SampleRecipes())
	require.NoError(t, err)
	assert.Zero(t, inserted)
}
