package mocks

import (
	"context"

	"github.com/pageza/moodbites/backend/internal/models"
	"github.com/stretchr/testify/mock"
)

// MockRecipeService is a mock implementation of the recipe service
type MockRecipeService struct {
	mock.Mock
}

// ListMoods mocks the ListMoods method
func (m *MockRecipeService) ListMoods(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

// GetRandomRecipeForMood mocks the GetRandomRecipeForMood method
func (m *MockRecipeService) GetRandomRecipeForMood(ctx context.Context, mood string) (*models.Recipe, error) {
	args := m.Called(ctx, mood)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Recipe), args.Error(1)
}

// CountRecipes mocks the CountRecipes method
func (m *MockRecipeService) CountRecipes(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

// SeedIfEmpty mocks the SeedIfEmpty method
func (m *MockRecipeService) SeedIfEmpty(ctx context.Context, sample []models.Recipe) (int, error) {
	args := m.Called(ctx, sample)
	return args.Int(0), args.Error(1)
}
