package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pageza/moodbites/backend/internal/logging"
	"github.com/pageza/moodbites/backend/internal/metrics"
	"github.com/pageza/moodbites/backend/internal/models"
	"github.com/pageza/moodbites/backend/internal/service"
	"github.com/pageza/moodbites/backend/internal/types"
)

// NotFoundMessage is the error body for moods without recipes
const NotFoundMessage = "No recipes found for this mood"

type RecipeHandler struct {
	recipes service.IRecipeService
}

func NewRecipeHandler(recipes service.IRecipeService) *RecipeHandler {
	return &RecipeHandler{recipes: recipes}
}

func (h *RecipeHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/moods", h.ListMoods)
	router.GET("/recipes/:mood", h.GetRecipeForMood)
}

// ListMoods answers GET /api/moods with the distinct mood labels
func (h *RecipeHandler) ListMoods(c *gin.Context) {
	moods, err := h.recipes.ListMoods(c.Request.Context())
	if err != nil {
		logging.Ctx(c.Request.Context()).Error().Err(err).Msg("[RecipeHandler] listing moods failed")
		c.JSON(http.StatusInternalServerError, types.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, moods)
}

// GetRecipeForMood answers GET /api/recipes/:mood with one random matching recipe
func (h *RecipeHandler) GetRecipeForMood(c *gin.Context) {
	mood := c.Param("mood")

	recipe, err := h.recipes.GetRandomRecipeForMood(c.Request.Context(), mood)
	switch {
	case errors.Is(err, service.ErrNoRecipesForMood):
		metrics.RecipeLookups.WithLabelValues(metrics.OutcomeNotFound).Inc()
		c.JSON(http.StatusNotFound, types.ErrorResponse{Error: NotFoundMessage})
		return
	case err != nil:
		metrics.RecipeLookups.WithLabelValues(metrics.OutcomeError).Inc()
		logging.Ctx(c.Request.Context()).Error().Err(err).Str("mood", mood).Msg("[RecipeHandler] recipe lookup failed")
		c.JSON(http.StatusInternalServerError, types.ErrorResponse{Error: err.Error()})
		return
	}

	metrics.RecipeLookups.WithLabelValues(metrics.OutcomeFound).Inc()
	c.JSON(http.StatusOK, toRecipeResponse(recipe))
}

func toRecipeResponse(r *models.Recipe) types.Recipe {
	return types.Recipe{
		ID:           r.ID.String(),
		Name:         r.Name,
		Ingredients:  r.Ingredients,
		Instructions: r.Instructions,
		Mood:         r.Mood,
		PrepTime:     r.PrepTime,
		Difficulty:   string(r.Difficulty),
		Dietary:      string(r.Dietary),
	}
}
