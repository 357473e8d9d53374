package presentation

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/samber/lo"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/pageza/moodbites/backend/internal/types"
)

// Step is one numbered instruction line
type Step struct {
	Number int    `json:"number"`
	Text   string `json:"text"`
}

// RecipeView is a recipe laid out for display
type RecipeView struct {
	Title       string   `json:"title"`
	Mood        string   `json:"mood"`
	PrepTime    string   `json:"prepTime"`
	Difficulty  Badge    `json:"difficulty"`
	Dietary     Badge    `json:"dietary"`
	Ingredients []string `json:"ingredients"`
	Steps       []Step   `json:"steps"`
}

// MoodOption is one selectable mood control
type MoodOption struct {
	Mood  string   `json:"mood"`
	Label string   `json:"label"`
	Hint  MoodHint `json:"hint"`
}

// IngredientSeparator delimits the stored ingredient string
const IngredientSeparator = ","

// StepNumeralPattern matches a number already written at the start of an
// instruction line. It is valid in both Go and JavaScript.
const StepNumeralPattern = `^\d+[.)]\s*`

var leadingNumeral = regexp.MustCompile(StepNumeralPattern)

// SplitIngredients splits a comma delimited ingredient string, dropping blanks
func SplitIngredients(ingredients string) []string {
	parts := lo.Map(strings.Split(ingredients, IngredientSeparator), func(s string, _ int) string {
		return strings.TrimSpace(s)
	})
	return lo.Compact(parts)
}

// SplitInstructions numbers each non-blank line sequentially. A numeral
// already present at the start of a line is replaced by the new number.
func SplitInstructions(instructions string) []Step {
	lines := lo.FilterMap(strings.Split(instructions, "\n"), func(line string, _ int) (string, bool) {
		line = strings.TrimSpace(line)
		return line, line != ""
	})
	return lo.Map(lines, func(line string, i int) Step {
		text := strings.TrimSpace(leadingNumeral.ReplaceAllString(line, ""))
		if text == "" {
			text = line
		}
		return Step{Number: i + 1, Text: text}
	})
}

// FormatPrepTime renders a prep time in minutes
func FormatPrepTime(minutes int) string {
	return strconv.Itoa(minutes) + " minutes"
}

// RenderRecipe prepares every field of a recipe for display
func RenderRecipe(r types.Recipe) RecipeView {
	return RecipeView{
		Title:       r.Name,
		Mood:        r.Mood,
		PrepTime:    FormatPrepTime(r.PrepTime),
		Difficulty:  DifficultyBadge(r.Difficulty),
		Dietary:     DietaryBadge(r.Dietary),
		Ingredients: SplitIngredients(r.Ingredients),
		Steps:       SplitInstructions(r.Instructions),
	}
}

// MoodLabel is the display label for a mood button
func MoodLabel(mood string) string {
	return cases.Title(language.English).String(mood)
}

// MoodOptions builds one option per mood, in the order given
func MoodOptions(moods []string) []MoodOption {
	return lo.Map(moods, func(mood string, _ int) MoodOption {
		return MoodOption{Mood: mood, Label: MoodLabel(mood), Hint: HintForMood(mood)}
	})
}
