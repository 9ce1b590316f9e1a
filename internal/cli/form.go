package cli

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/Morris-Command-Center/agentic-skill-tree/internal/cli/formatter"
)

// skilltreeHuhTheme returns a custom huh theme using the Gruvbox palette.
func skilltreeHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// completionForm collects a challenge completion interactively. challengeID
// is pre-filled when the user already passed one on the command line.
func completionForm(app *App, challengeID *string, rating *int, confidence *string, notes *string) *huh.Form {
	groups := make([]*huh.Group, 0, 2)

	if *challengeID == "" {
		challenges := app.Catalog.Challenges()
		options := make([]huh.Option[string], 0, len(challenges))
		for _, ch := range challenges {
			label := fmt.Sprintf("%s (%d XP, %s)", ch.Name, ch.XPReward, ch.Difficulty)
			options = append(options, huh.NewOption(label, ch.ID))
		}
		groups = append(groups, huh.NewGroup(
			huh.NewSelect[string]().
				Title("Which Challenge?").
				Options(options...).
				Value(challengeID),
		))
	}

	ratingStr := strconv.Itoa(*rating)
	groups = append(groups, huh.NewGroup(
		huh.NewSelect[string]().
			Title("How did it go?").
			Options(
				huh.NewOption("1 — struggled the whole way", "1"),
				huh.NewOption("2 — rough, needed a lot of help", "2"),
				huh.NewOption("3 — okay, some friction", "3"),
				huh.NewOption("4 — smooth", "4"),
				huh.NewOption("5 — nailed it", "5"),
			).
			Value(&ratingStr).
			Validate(func(s string) error {
				n, err := strconv.Atoi(s)
				if err != nil || n < 1 || n > 5 {
					return fmt.Errorf("rating must be 1-5")
				}
				*rating = n
				return nil
			}),
		huh.NewSelect[string]().
			Title("Confidence in the trained skills?").
			Options(
				huh.NewOption("keep current", ""),
				huh.NewOption("red", "red"),
				huh.NewOption("yellow", "yellow"),
				huh.NewOption("green", "green"),
			).
			Value(confidence),
		huh.NewText().
			Title("Notes").
			Placeholder("What did you learn?").
			Value(notes),
	))

	return huh.NewForm(groups...).WithTheme(skilltreeHuhTheme()).WithShowHelp(false)
}
