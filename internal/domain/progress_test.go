package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNextLevel_ForwardOnly(t *testing.T) {
	assert.Equal(t, LevelAvailable, NextLevel(LevelLocked))
	assert.Equal(t, LevelInProgress, NextLevel(LevelAvailable))
	assert.Equal(t, LevelCompleted, NextLevel(LevelInProgress))
	assert.Equal(t, LevelCompleted, NextLevel(LevelCompleted), "completed is terminal")
}

func TestApplyReward_BelowThresholdAccruesOnly(t *testing.T) {
	p := NewSkillProgress("test-writing")

	p.ApplyReward(60, 100)

	assert.Equal(t, 60, p.CurrentXP)
	assert.Equal(t, LevelLocked, p.Level, "60 < 100 should not advance")
}

func TestApplyReward_CrossingThresholdAdvancesOneStep(t *testing.T) {
	p := NewSkillProgress("test-writing")
	p.ApplyReward(60, 100)

	p.ApplyReward(50, 100)

	assert.Equal(t, 110, p.CurrentXP)
	assert.Equal(t, LevelAvailable, p.Level, "should advance exactly one step, not skip")
}

func TestApplyReward_LargeOvershootStillOneStep(t *testing.T) {
	p := NewSkillProgress("shell-fu")

	p.ApplyReward(10000, 100)

	assert.Equal(t, LevelAvailable, p.Level, "overshoot never skips levels")
}

func TestApplyReward_RepeatedThresholdCrossingsRatchetToCompleted(t *testing.T) {
	p := NewSkillProgress("shell-fu")

	levels := []SkillLevel{LevelAvailable, LevelInProgress, LevelCompleted, LevelCompleted, LevelCompleted}
	for i, want := range levels {
		p.ApplyReward(150, 100)
		assert.Equal(t, want, p.Level, "completion %d", i+1)
	}
	assert.Equal(t, 750, p.CurrentXP, "XP keeps accruing after completion")
}

func TestNewSkillProgress_Defaults(t *testing.T) {
	p := NewSkillProgress("prompting")

	assert.Equal(t, "prompting", p.SkillID)
	assert.Equal(t, 0, p.CurrentXP)
	assert.Equal(t, LevelLocked, p.Level)
	assert.Equal(t, ConfidenceRed, p.Confidence)
}
