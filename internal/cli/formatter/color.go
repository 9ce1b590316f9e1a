package formatter

import (
	"fmt"
	"strings"

	"github.com/Morris-Command-Center/agentic-skill-tree/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

// Predefined lipgloss styles.
var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// LevelStyle returns the style used for the given skill level.
func LevelStyle(level domain.SkillLevel) lipgloss.Style {
	switch level {
	case domain.LevelCompleted:
		return StyleGreen
	case domain.LevelInProgress:
		return StyleBlue
	case domain.LevelAvailable:
		return StyleYellow
	default:
		return StyleDim
	}
}

// LevelIndicator returns a colored level marker such as "◆ IN PROGRESS".
func LevelIndicator(level domain.SkillLevel) string {
	switch level {
	case domain.LevelCompleted:
		return StyleGreen.Render("◆ COMPLETED")
	case domain.LevelInProgress:
		return StyleBlue.Render("◆ IN PROGRESS")
	case domain.LevelAvailable:
		return StyleYellow.Render("◆ AVAILABLE")
	default:
		return StyleDim.Render("◆ LOCKED")
	}
}

// ConfidenceIndicator returns a colored confidence dot such as "● green".
func ConfidenceIndicator(conf domain.Confidence) string {
	switch conf {
	case domain.ConfidenceGreen:
		return StyleGreen.Render("● green")
	case domain.ConfidenceYellow:
		return StyleYellow.Render("● yellow")
	default:
		return StyleRed.Render("● red")
	}
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", len(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

// Dim renders text in the muted/dim color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold with the foreground color.
func Bold(text string) string {
	return StyleBold.Render(text)
}
