// Package presentation holds the display tables and rendering rules shared by
// the web entry page and the terminal client.
package presentation

import "github.com/samber/lo"

// MoodHint is the icon and color pair shown on a mood's selection control
type MoodHint struct {
	Emoji     string `json:"emoji"`
	Color     string `json:"color"`
	TextColor string `json:"textColor"`
}

// FallbackHint is used for moods missing from the hint table
var FallbackHint = MoodHint{Emoji: "🍽️", Color: "bg-gray-500", TextColor: "text-white"}

var moodHints = map[string]MoodHint{
	"sad":         {Emoji: "😢", Color: "bg-mood-sad", TextColor: "text-white"},
	"happy":       {Emoji: "😊", Color: "bg-mood-happy", TextColor: "text-gray-800"},
	"excited":     {Emoji: "🤩", Color: "bg-mood-excited", TextColor: "text-white"},
	"anxious":     {Emoji: "😰", Color: "bg-mood-anxious", TextColor: "text-white"},
	"sick":        {Emoji: "🤒", Color: "bg-mood-sick", TextColor: "text-white"},
	"romantic":    {Emoji: "💕", Color: "bg-mood-romantic", TextColor: "text-white"},
	"refreshed":   {Emoji: "😌", Color: "bg-mood-refreshed", TextColor: "text-white"},
	"cozy":        {Emoji: "🥰", Color: "bg-mood-cozy", TextColor: "text-white"},
	"adventurous": {Emoji: "🤠", Color: "bg-mood-adventurous", TextColor: "text-white"},
	"cheerful":    {Emoji: "😄", Color: "bg-mood-cheerful", TextColor: "text-gray-800"},
}

// HintForMood looks up the hint for an exact mood label
func HintForMood(mood string) MoodHint {
	if hint, ok := moodHints[mood]; ok {
		return hint
	}
	return FallbackHint
}

// Hints returns a copy of the full hint table
func Hints() map[string]MoodHint {
	return lo.Assign(moodHints)
}
