package formatter

import (
	"fmt"
	"strings"

	"github.com/Morris-Command-Center/agentic-skill-tree/internal/domain"
)

const (
	filledBlock = "█"
	emptyBlock  = "░"
)

// RenderXPBar renders an XP bar like [████░░░░] 60/100. A completed skill
// renders a full green bar regardless of how far past the threshold the XP
// has run.
func RenderXPBar(p *domain.SkillProgress, xpRequired, width int) string {
	if width < 2 {
		width = 2
	}
	if xpRequired <= 0 {
		xpRequired = 1
	}

	pct := float64(p.CurrentXP) / float64(xpRequired)
	if p.Level == domain.LevelCompleted || pct > 1 {
		pct = 1
	}

	filled := int(pct * float64(width))
	if filled > width {
		filled = width
	}
	bar := strings.Repeat(filledBlock, filled) + strings.Repeat(emptyBlock, width-filled)

	style := StyleGreen
	if pct < 0.33 {
		style = StyleRed
	} else if pct < 0.66 {
		style = StyleYellow
	}

	return fmt.Sprintf("[%s] %d/%d", style.Render(bar), p.CurrentXP, xpRequired)
}

// RenderBranchBar renders a completion ratio bar for a whole branch, like
// [██░░░░░░] 1/4 skills.
func RenderBranchBar(completed, total, width int) string {
	if width < 2 {
		width = 2
	}
	pct := 0.0
	if total > 0 {
		pct = float64(completed) / float64(total)
	}

	filled := int(pct * float64(width))
	if filled > width {
		filled = width
	}
	bar := strings.Repeat(filledBlock, filled) + strings.Repeat(emptyBlock, width-filled)

	style := StyleGreen
	if pct < 0.33 {
		style = StyleRed
	} else if pct < 0.66 {
		style = StyleYellow
	}

	return fmt.Sprintf("[%s] %d/%d skills", style.Render(bar), completed, total)
}
