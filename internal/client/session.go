package client

import (
	"context"
	"errors"

	"github.com/pageza/moodbites/backend/internal/logging"
	"github.com/pageza/moodbites/backend/internal/presentation"
	"github.com/pageza/moodbites/backend/internal/types"
)

// State is where a Session sits in the mood picker flow
type State int

const (
	NoMoodSelected State = iota
	Loading
	RecipeDisplayed
)

func (s State) String() string {
	switch s {
	case NoMoodSelected:
		return "NoMoodSelected"
	case Loading:
		return "Loading"
	case RecipeDisplayed:
		return "RecipeDisplayed"
	default:
		return "Unknown"
	}
}

// User-facing failure notices
const (
	MsgMoodsFailed  = "Failed to load moods. Please refresh the page."
	MsgRecipeFailed = "Failed to fetch recipe. Please try again."
	MsgRerollFailed = "Failed to fetch new recipe. Please try again."
)

// ErrNoMoodSelected is returned by Reroll before a mood is chosen
var ErrNoMoodSelected = errors.New("no mood selected")

// API is the part of Client a Session needs
type API interface {
	Moods(ctx context.Context) ([]string, error)
	RecipeForMood(ctx context.Context, mood string) (*types.Recipe, error)
}

// View renders session transitions. Notify blocks until the user acknowledges.
type View interface {
	ShowMoods(options []presentation.MoodOption)
	ShowLoading()
	HideLoading()
	ShowRecipe(recipe presentation.RecipeView)
	HideRecipe()
	Notify(message string)
}

// Session owns the current mood and the displayed recipe. It is not safe for
// concurrent use; each user action runs to completion before the next.
type Session struct {
	api  API
	view View

	state  State
	mood   string
	recipe *presentation.RecipeView
	moods  []string
}

func NewSession(api API, view View) *Session {
	return &Session{api: api, view: view, state: NoMoodSelected}
}

func (s *Session) State() State    { return s.state }
func (s *Session) Mood() string    { return s.mood }
func (s *Session) Moods() []string { return s.moods }

// Recipe returns the recipe on display, or nil
func (s *Session) Recipe() *presentation.RecipeView { return s.recipe }

// Start loads the mood list and shows one option per mood
func (s *Session) Start(ctx context.Context) error {
	moods, err := s.api.Moods(ctx)
	if err != nil {
		logging.Ctx(ctx).Warn().Err(err).Msg("[Session] loading moods failed")
		s.view.Notify(MsgMoodsFailed)
		return err
	}
	s.moods = moods
	s.view.ShowMoods(presentation.MoodOptions(moods))
	return nil
}

// SelectMood makes mood current and displays a random recipe for it
func (s *Session) SelectMood(ctx context.Context, mood string) error {
	return s.load(ctx, mood, MsgRecipeFailed)
}

// Reroll fetches another recipe for the current mood
func (s *Session) Reroll(ctx context.Context) error {
	if s.mood == "" {
		return ErrNoMoodSelected
	}
	return s.load(ctx, s.mood, MsgRerollFailed)
}

// Reset clears the current mood and returns to the picker
func (s *Session) Reset() {
	s.view.HideRecipe()
	s.mood = ""
	s.recipe = nil
	s.state = NoMoodSelected
	s.view.ShowMoods(presentation.MoodOptions(s.moods))
}

func (s *Session) load(ctx context.Context, mood, failure string) error {
	prevState, prevMood := s.state, s.mood

	s.mood = mood
	s.state = Loading
	s.view.ShowLoading()

	recipe, err := s.api.RecipeForMood(ctx, mood)
	s.view.HideLoading()
	if err != nil {
		logging.Ctx(ctx).Warn().Err(err).Str("mood", mood).Msg("[Session] fetching recipe failed")
		s.state, s.mood = prevState, prevMood
		if s.recipe != nil {
			s.view.ShowRecipe(*s.recipe)
		}
		s.view.Notify(failure)
		return err
	}

	view := presentation.RenderRecipe(*recipe)
	s.recipe = &view
	s.state = RecipeDisplayed
	s.view.ShowRecipe(view)
	return nil
}
