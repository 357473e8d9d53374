package presentation

import "github.com/samber/lo"

// Badge is a short label with its CSS classes
type Badge struct {
	Label string `json:"label,omitempty"`
	Class string `json:"class"`
}

// FallbackBadgeClass styles unknown difficulty and dietary values
const FallbackBadgeClass = "bg-gray-100 text-gray-800"

var difficultyClasses = map[string]string{
	"easy":   "bg-green-100 text-green-800",
	"medium": "bg-yellow-100 text-yellow-800",
	"hard":   "bg-red-100 text-red-800",
}

var dietaryBadges = map[string]Badge{
	"vegan":      {Label: "🌱 Vegan", Class: "bg-green-100 text-green-800"},
	"vegetarian": {Label: "🥬 Vegetarian", Class: "bg-blue-100 text-blue-800"},
	"meat":       {Label: "🥩 Contains Meat", Class: "bg-red-100 text-red-800"},
}

// DifficultyBadge labels a difficulty with its own value
func DifficultyBadge(difficulty string) Badge {
	class, ok := difficultyClasses[difficulty]
	if !ok {
		class = FallbackBadgeClass
	}
	return Badge{Label: difficulty, Class: class}
}

// DietaryBadge falls back to the raw value on the gray badge
func DietaryBadge(dietary string) Badge {
	if badge, ok := dietaryBadges[dietary]; ok {
		return badge
	}
	return Badge{Label: dietary, Class: FallbackBadgeClass}
}

// Tables is the complete set of lookup tables and splitting rules handed to
// the entry page
type Tables struct {
	Moods               map[string]MoodHint `json:"moods"`
	Fallback            MoodHint            `json:"fallback"`
	Difficulty          map[string]string   `json:"difficulty"`
	Dietary             map[string]Badge    `json:"dietary"`
	FallbackBadge       string              `json:"fallbackBadge"`
	IngredientSeparator string              `json:"ingredientSeparator"`
	StepNumeral         string              `json:"stepNumeral"`
}

// AllTables snapshots every presentation table
func AllTables() Tables {
	return Tables{
		Moods:               Hints(),
		Fallback:            FallbackHint,
		Difficulty:          lo.Assign(difficultyClasses),
		Dietary:             lo.Assign(dietaryBadges),
		FallbackBadge:       FallbackBadgeClass,
		IngredientSeparator: IngredientSeparator,
		StepNumeral:         StepNumeralPattern,
	}
}
