package seed

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/pageza/moodbites/backend/internal/models"
	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockFetcher struct {
	mock.Mock
}

func (m *mockFetcher) FetchObject(ctx context.Context, bucket, key string) ([]byte, error) {
	args := m.Called(ctx, bucket, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

const jsonSeed = `[
  {"name": "Toast", "ingredients": "Bread, butter", "instructions": "1. Toast\n2. Butter",
   "mood": "lazy", "prep_time": 5, "difficulty": "easy", "dietary": "vegetarian"}
]`

func TestSampleRecipes(t *testing.T) {
	sample := SampleRecipes()
	require.Len(t, sample, 10)

	moods := lo.Uniq(lo.Map(sample, func(r models.Recipe, _ int) string { return r.Mood }))
	assert.Len(t, moods, 10)

	records := lo.Map(sample, func(r models.Recipe, _ int) Record {
		return Record{
			Name: r.Name, Ingredients: r.Ingredients, Instructions: r.Instructions, Mood: r.Mood,
			PrepTime: r.PrepTime, Difficulty: string(r.Difficulty), Dietary: string(r.Dietary),
		}
	})
	assert.NoError(t, ValidateRecords(records))

	// callers get their own copy
	sample[0].Name = "changed"
	assert.Equal(t, "Comforting Mac and Cheese", SampleRecipes()[0].Name)
}

func TestLoadBuiltIn(t *testing.T) {
	recipes, err := (&Loader{}).Load(context.Background(), "")
	require.NoError(t, err)
	assert.Len(t, recipes, 10)
}

func TestLoadJSONFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "recipes.json")
	require.NoError(t, os.WriteFile(path, []byte(jsonSeed), 0o644))

	recipes, err := (&Loader{}).Load(context.Background(), path)
	require.NoError(t, err)
	require.Len(t, recipes, 1)
	assert.Equal(t, "Toast", recipes[0].Name)
	assert.Equal(t, "lazy", recipes[0].Mood)
	assert.Equal(t, models.DietaryVegetarian, recipes[0].Dietary)
}

func TestLoadYAMLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "recipes.yaml")
	content := `- name: Pho
  ingredients: Rice noodles, beef, broth
  instructions: |-
    1. Simmer broth
    2. Assemble
  mood: sick
  prep_time: 90
  difficulty: hard
  dietary: meat
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	recipes, err := (&Loader{}).Load(context.Background(), path)
	require.NoError(t, err)
	require.Len(t, recipes, 1)
	assert.Equal(t, models.DifficultyHard, recipes[0].Difficulty)
	assert.Equal(t, "1. Simmer broth\n2. Assemble", recipes[0].Instructions)
}

func TestLoadRejectsInvalidRecords(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	bad := `[{"name": "", "ingredients": "x", "instructions": "y", "mood": "happy",
	          "prep_time": -1, "difficulty": "extreme", "dietary": "meat"}]`
	require.NoError(t, os.WriteFile(path, []byte(bad), 0o644))

	_, err := (&Loader{}).Load(context.Background(), path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "field Name failed required")
	assert.Contains(t, err.Error(), "field PrepTime failed gte=0")
	assert.Contains(t, err.Error(), "field Difficulty failed oneof=easy medium hard")
}

func TestLoadEmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.json")
	require.NoError(t, os.WriteFile(path, []byte("[]"), 0o644))

	_, err := (&Loader{}).Load(context.Background(), path)
	assert.ErrorContains(t, err, "no records")
}

func TestLoadMissingFile(t *testing.T) {
	_, err := (&Loader{}).Load(context.Background(), filepath.Join(t.TempDir(), "nope.json"))
	assert.ErrorContains(t, err, "failed to read seed file")
}

func TestLoadFromS3(t *testing.T) {
	fetcher := new(mockFetcher)
	fetcher.On("FetchObject", mock.Anything, "seed-bucket", "moods/recipes.json").Return([]byte(jsonSeed), nil)

	recipes, err := (&Loader{S3: fetcher}).Load(context.Background(), "s3://seed-bucket/moods/recipes.json")
	require.NoError(t, err)
	assert.Len(t, recipes, 1)
	fetcher.AssertExpectations(t)
}

func TestLoadFromS3Errors(t *testing.T) {
	_, err := (&Loader{}).Load(context.Background(), "s3://bucket/key.json")
	assert.ErrorContains(t, err, "needs an S3 client")

	_, err = (&Loader{S3: new(mockFetcher)}).Load(context.Background(), "s3://bucket")
	assert.ErrorContains(t, err, "want s3://bucket/key")

	fetcher := new(mockFetcher)
	fetcher.On("FetchObject", mock.Anything, "bucket", "key.json").Return(nil, errors.New("access denied"))
	_, err = (&Loader{S3: fetcher}).Load(context.Background(), "s3://bucket/key.json")
	assert.ErrorContains(t, err, "access denied")
}
