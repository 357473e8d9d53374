package presentation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pageza/moodbites/backend/internal/types"
)

func TestHintForMood(t *testing.T) {
	assert.Equal(t, "😢", HintForMood("sad").Emoji)
	assert.Equal(t, "text-gray-800", HintForMood("happy").TextColor)
	assert.Equal(t, FallbackHint, HintForMood("melancholic"))
	assert.Equal(t, FallbackHint, HintForMood("Sad"))
}

func TestHintsReturnsCopy(t *testing.T) {
	hints := Hints()
	assert.Len(t, hints, 10)
	hints["sad"] = MoodHint{Emoji: "x"}
	assert.Equal(t, "😢", HintForMood("sad").Emoji)
}

func TestBadges(t *testing.T) {
	assert.Equal(t, Badge{Label: "easy", Class: "bg-green-100 text-green-800"}, DifficultyBadge("easy"))
	assert.Equal(t, Badge{Label: "extreme", Class: FallbackBadgeClass}, DifficultyBadge("extreme"))
	assert.Equal(t, "🥩 Contains Meat", DietaryBadge("meat").Label)
	assert.Equal(t, Badge{Label: "pescatarian", Class: FallbackBadgeClass}, DietaryBadge("pescatarian"))
}

func TestSplitIngredients(t *testing.T) {
	assert.Equal(t, []string{"A", "B", "C"}, SplitIngredients("A, B, C"))
	assert.Equal(t, []string{"A", "B"}, SplitIngredients("A,, B ,"))
	assert.Empty(t, SplitIngredients(""))
}

func TestSplitInstructions(t *testing.T) {
	steps := SplitInstructions("1. X\n2. Y\n\n3. Z")
	require.Len(t, steps, 3)
	assert.Equal(t, []Step{{1, "X"}, {2, "Y"}, {3, "Z"}}, steps)

	steps = SplitInstructions("Boil water\n   \nAdd pasta\n")
	assert.Equal(t, []Step{{1, "Boil water"}, {2, "Add pasta"}}, steps)

	steps = SplitInstructions("5) Stir\n2024")
	assert.Equal(t, []Step{{1, "Stir"}, {2, "2024"}}, steps)
}

func TestRenderRecipe(t *testing.T) {
	view := RenderRecipe(types.Recipe{
		Name:         "Cozy Hot Chocolate",
		Ingredients:  "Milk, dark chocolate, cinnamon",
		Instructions: "1. Heat milk\n2. Melt chocolate",
		Mood:         "cozy",
		PrepTime:     15,
		Difficulty:   "easy",
		Dietary:      "vegetarian",
	})

	assert.Equal(t, "Cozy Hot Chocolate", view.Title)
	assert.Equal(t, "15 minutes", view.PrepTime)
	assert.Equal(t, "🥬 Vegetarian", view.Dietary.Label)
	assert.Equal(t, []string{"Milk", "dark chocolate", "cinnamon"}, view.Ingredients)
	assert.Len(t, view.Steps, 2)
}

func TestMoodOptions(t *testing.T) {
	options := MoodOptions([]string{"adventurous", "mystery"})
	require.Len(t, options, 2)
	assert.Equal(t, "Adventurous", options[0].Label)
	assert.Equal(t, "🤠", options[0].Hint.Emoji)
	assert.Equal(t, FallbackHint, options[1].Hint)
}

func TestAllTables(t *testing.T) {
	tables := AllTables()
	assert.Len(t, tables.Moods, 10)
	assert.Len(t, tables.Difficulty, 3)
	assert.Len(t, tables.Dietary, 3)
	assert.Equal(t, FallbackBadgeClass, tables.FallbackBadge)
	assert.Equal(t, leadingNumeral.String(), tables.StepNumeral)
	assert.Equal(t, IngredientSeparator, tables.IngredientSeparator)
}
