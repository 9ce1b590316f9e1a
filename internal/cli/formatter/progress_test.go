package formatter

import (
	"testing"

	"github.com/Morris-Command-Center/agentic-skill-tree/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestRenderXPBar(t *testing.T) {
	tests := []struct {
		name       string
		xp         int
		level      domain.SkillLevel
		xpRequired int
		wantRatio  string
	}{
		{"empty", 0, domain.LevelLocked, 100, "0/100"},
		{"partial", 60, domain.LevelLocked, 100, "60/100"},
		{"at threshold", 100, domain.LevelAvailable, 100, "100/100"},
		{"overshoot keeps raw xp", 150, domain.LevelAvailable, 100, "150/100"},
		{"completed shows raw xp", 750, domain.LevelCompleted, 100, "750/100"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &domain.SkillProgress{SkillID: "s", CurrentXP: tt.xp, Level: tt.level}
			got := RenderXPBar(p, tt.xpRequired, 10)
			assert.Contains(t, got, tt.wantRatio)
			assert.Contains(t, got, "[")
			assert.Contains(t, got, "]")
		})
	}
}

func TestRenderXPBar_ClampsDegenerateInputs(t *testing.T) {
	p := &domain.SkillProgress{SkillID: "s", CurrentXP: 10, Level: domain.LevelLocked}
	assert.NotEmpty(t, RenderXPBar(p, 0, 1))
	assert.NotEmpty(t, RenderXPBar(p, -5, 0))
}

func TestRenderBranchBar(t *testing.T) {
	got := RenderBranchBar(1, 4, 8)
	assert.Contains(t, got, "1/4 skills")

	full := RenderBranchBar(4, 4, 8)
	assert.Contains(t, full, "4/4 skills")
	assert.Contains(t, full, filledBlock)

	empty := RenderBranchBar(0, 4, 8)
	assert.Contains(t, empty, emptyBlock)
}

func TestRenderBranchBar_EmptyBranch(t *testing.T) {
	assert.Contains(t, RenderBranchBar(0, 0, 8), "0/0 skills")
}
