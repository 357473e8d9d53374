package client

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pageza/moodbites/backend/internal/presentation"
)

// Terminal is a line-oriented View reading commands from in
type Terminal struct {
	in      *bufio.Reader
	out     io.Writer
	options []presentation.MoodOption
}

func NewTerminal(in io.Reader, out io.Writer) *Terminal {
	return &Terminal{in: bufio.NewReader(in), out: out}
}

func (t *Terminal) ShowMoods(options []presentation.MoodOption) {
	t.options = options
	fmt.Fprintln(t.out, "\nHow are you feeling?")
	if len(options) == 0 {
		fmt.Fprintln(t.out, "  (no moods available)")
	}
	for i, opt := range options {
		fmt.Fprintf(t.out, "  %2d) %s %s\n", i+1, opt.Hint.Emoji, opt.Label)
	}
}

func (t *Terminal) ShowLoading() {
	fmt.Fprintln(t.out, "Finding a recipe...")
}

func (t *Terminal) HideLoading() {}

func (t *Terminal) ShowRecipe(r presentation.RecipeView) {
	hint := presentation.HintForMood(r.Mood)
	fmt.Fprintf(t.out, "\n%s %s\n", hint.Emoji, r.Title)
	fmt.Fprintf(t.out, "Prep time: %s | Difficulty: %s | %s\n", r.PrepTime, r.Difficulty.Label, r.Dietary.Label)
	fmt.Fprintln(t.out, "\nIngredients:")
	for _, ing := range r.Ingredients {
		fmt.Fprintf(t.out, "  • %s\n", ing)
	}
	fmt.Fprintln(t.out, "\nInstructions:")
	for _, step := range r.Steps {
		fmt.Fprintf(t.out, "  %d. %s\n", step.Number, step.Text)
	}
}

func (t *Terminal) HideRecipe() {}

// Notify prints message and waits for Enter
func (t *Terminal) Notify(message string) {
	fmt.Fprintf(t.out, "\n! %s\nPress Enter to continue...", message)
	_, _ = t.readLine()
}

func (t *Terminal) readLine() (string, error) {
	line, err := t.in.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// resolve maps a typed number or mood label onto a listed mood
func (t *Terminal) resolve(input string) (string, bool) {
	if n, err := strconv.Atoi(input); err == nil {
		if n >= 1 && n <= len(t.options) {
			return t.options[n-1].Mood, true
		}
		return "", false
	}
	for _, opt := range t.options {
		if opt.Mood == input {
			return opt.Mood, true
		}
	}
	return "", false
}

// Run drives session from terminal input until the user quits or input ends
func (t *Terminal) Run(ctx context.Context, session *Session) error {
	if err := session.Start(ctx); err != nil {
		return err
	}

	for {
		if err := ctx.Err(); err != nil {
			return nil
		}

		switch session.State() {
		case RecipeDisplayed:
			fmt.Fprint(t.out, "\n[n] new recipe  [c] change mood  [q] quit: ")
		default:
			fmt.Fprint(t.out, "\nPick a mood by number or name (q to quit): ")
		}

		input, err := t.readLine()
		if err != nil {
			fmt.Fprintln(t.out)
			return nil
		}
		if input == "q" {
			return nil
		}

		if session.State() == RecipeDisplayed {
			switch input {
			case "n":
				_ = session.Reroll(ctx)
			case "c":
				session.Reset()
			default:
				fmt.Fprintf(t.out, "Unknown command %q\n", input)
			}
			continue
		}

		mood, ok := t.resolve(input)
		if !ok {
			fmt.Fprintf(t.out, "Unknown mood %q\n", input)
			continue
		}
		_ = session.SelectMood(ctx, mood)
	}
}
