package domain

import "time"

// SkillProgress is the mutable per-skill progression record. A row exists
// only once a skill has been written to; before that, callers materialize
// the default via NewSkillProgress.
type SkillProgress struct {
	SkillID    string     `json:"skill_id"`
	CurrentXP  int        `json:"current_xp"`
	Level      SkillLevel `json:"level"`
	Confidence Confidence `json:"confidence"`
	UpdatedAt  time.Time  `json:"-"`
}

// NewSkillProgress returns the default progress state for a skill that has
// never been written: locked, zero XP, red confidence.
func NewSkillProgress(skillID string) *SkillProgress {
	return &SkillProgress{
		SkillID:    skillID,
		CurrentXP:  0,
		Level:      LevelLocked,
		Confidence: ConfidenceRed,
	}
}

// ApplyReward accrues xp and, when the new total has reached xpRequired,
// advances the level exactly one step from the level held before the call.
// XP accrual is strictly additive. A single call never advances more than
// one step no matter how far the threshold is overshot, and a completed
// skill keeps accruing XP without changing level.
func (p *SkillProgress) ApplyReward(xp, xpRequired int) {
	p.CurrentXP += xp
	if p.CurrentXP >= xpRequired {
		p.Level = NextLevel(p.Level)
	}
}

// ChallengeCompletion is an immutable, append-only record of a challenge
// having been performed. XPEarned snapshots the challenge reward at
// completion time; later catalog changes never alter past completions.
type ChallengeCompletion struct {
	ID          int64       `json:"id"`
	ChallengeID string      `json:"challenge_id"`
	CompletedAt time.Time   `json:"completed_at"`
	XPEarned    int         `json:"xp_earned"`
	Notes       string      `json:"notes"`
	SelfRating  int         `json:"self_rating"`
	Confidence  *Confidence `json:"confidence,omitempty"`
}

// AchievementUnlock records when an achievement was first unlocked.
type AchievementUnlock struct {
	AchievementID string    `json:"achievement_id"`
	UnlockedAt    time.Time `json:"unlocked_at"`
}

// UserProgress is the derived overall picture: every stored skill progress
// row plus completion totals. Computed on demand, never cached.
type UserProgress struct {
	Skills              map[string]*SkillProgress `json:"skills"`
	TotalXP             int                       `json:"total_xp"`
	ChallengesCompleted int                       `json:"challenges_completed"`
}

// BranchStats summarizes one branch: how many of its skills are completed
// and how much XP has been accrued across them. Skills with no stored
// progress contribute zero.
type BranchStats struct {
	Name            string `json:"name"`
	TotalSkills     int    `json:"total_skills"`
	CompletedSkills int    `json:"completed_skills"`
	TotalXP         int    `json:"total_xp"`
}

// Stats is the global summary: completion totals plus per-branch
// breakdown keyed by branch id.
type Stats struct {
	TotalXP             int                     `json:"total_xp"`
	ChallengesCompleted int                     `json:"challenges_completed"`
	Branches            map[string]*BranchStats `json:"branches"`
}
