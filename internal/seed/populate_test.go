package seed

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/pageza/moodbites/backend/internal/mocks"
	"github.com/pageza/moodbites/backend/internal/service"
	"github.com/pageza/moodbites/backend/internal/testhelpers"
)

func TestPopulateBuiltIn(t *testing.T) {
	ctx := context.Background()
	store := service.NewRecipeService(testhelpers.SetupTestDatabase(t))
	loader, err := NewLoader(ctx, "", "us-east-1")
	require.NoError(t, err)

	inserted, err := Populate(ctx, store, loader, "")
	require.NoError(t, err)
	assert.Equal(t, 10, inserted)

	inserted, err = Populate(ctx, store, loader, "")
	require.NoError(t, err)
	assert.Zero(t, inserted)

	count, err := store.CountRecipes(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 10, count)
}

func TestPopulateFromFile(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "recipes.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
- name: Midnight Toast
  ingredients: Bread, butter
  instructions: Toast bread
  mood: sleepy
  prep_time: 3
  difficulty: easy
  dietary: vegetarian
`), 0o600))

	store := service.NewRecipeService(testhelpers.SetupTestDatabase(t))
	inserted, err := Populate(ctx, store, &Loader{}, path)
	require.NoError(t, err)
	assert.Equal(t, 1, inserted)

	moods, err := store.ListMoods(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"sleepy"}, moods)
}

func TestPopulateStoreError(t *testing.T) {
	store := new(mocks.MockRecipeService)
	store.On("CountRecipes", mock.Anything).Return(int64(0), nil)
	store.On("SeedIfEmpty", mock.Anything, mock.Anything).Return(0, errors.New("read-only database"))

	_, err := Populate(context.Background(), store, &Loader{}, "")
	assert.ErrorContains(t, err, "read-only database")
}

func TestPopulateSkipsSourceWhenStoreHasRecipes(t *testing.T) {
	fetcher := new(mockFetcher)
	store := new(mocks.MockRecipeService)
	store.On("CountRecipes", mock.Anything).Return(int64(10), nil)

	inserted, err := Populate(context.Background(), store, &Loader{S3: fetcher}, "s3://recipes/missing.json")
	require.NoError(t, err)
	assert.Zero(t, inserted)

	fetcher.AssertNotCalled(t, "FetchObject", mock.Anything, mock.Anything, mock.Anything)
	store.AssertNotCalled(t, "SeedIfEmpty", mock.Anything, mock.Anything)
}

func TestPopulateCountError(t *testing.T) {
	store := new(mocks.MockRecipeService)
	store.On("CountRecipes", mock.Anything).Return(int64(0), errors.New("no such table: recipes"))

	_, err := Populate(context.Background(), store, &Loader{}, "")
	assert.ErrorContains(t, err, "no such table")
	store.AssertNotCalled(t, "SeedIfEmpty", mock.Anything, mock.Anything)
}
