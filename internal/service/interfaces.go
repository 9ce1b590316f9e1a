package service

import (
	"context"
	"time"

	"github.com/Morris-Command-Center/agentic-skill-tree/internal/domain"
)

// CompletionRequest carries everything the caller supplies when logging a
// challenge completion. The XP awarded comes from the catalog, not the
// caller.
type CompletionRequest struct {
	ChallengeID string
	Notes       string
	SelfRating  int
	Confidence  *domain.Confidence
}

// CompletionResult reports the stored completion id and the XP awarded.
type CompletionResult struct {
	CompletionID int64 `json:"completion_id"`
	XPEarned     int   `json:"xp_earned"`
}

// AchievementStatus pairs an achievement definition with its unlock state.
type AchievementStatus struct {
	domain.Achievement
	Unlocked   bool       `json:"unlocked"`
	UnlockedAt *time.Time `json:"unlocked_at,omitempty"`
}

// ProgressionService is the state machine governing how challenge
// completions accrue XP and advance skill levels, plus the confidence and
// achievement mutations around it.
type ProgressionService interface {
	// RecordCompletion validates the request, appends a completion record
	// with the challenge's current reward snapshotted, then applies the
	// reward to every skill the challenge trains. Each skill's update is
	// persisted independently: a storage failure mid-loop leaves earlier
	// skills updated. Retrying a failed call re-applies XP to those
	// skills; the ratchet still caps level advance at one step per call.
	RecordCompletion(ctx context.Context, req CompletionRequest) (*CompletionResult, error)
	// UpdateConfidence overwrites the skill's confidence only; XP and
	// level are untouched.
	UpdateConfidence(ctx context.Context, skillID string, conf domain.Confidence) error
	// SkillProgress returns the stored progress for a catalog skill, or
	// the materialized default (locked, 0 XP, red) without creating a row.
	SkillProgress(ctx context.Context, skillID string) (*domain.SkillProgress, error)
	// Completions returns the completion history, most recent first,
	// optionally filtered to one challenge.
	Completions(ctx context.Context, challengeID string) ([]*domain.ChallengeCompletion, error)
	// UnlockAchievement records an unlock for a catalog achievement.
	// Unlocking an already-unlocked achievement is a no-op.
	UnlockAchievement(ctx context.Context, achievementID string) error
	// Achievements lists every catalog achievement with unlock state.
	Achievements(ctx context.Context) ([]AchievementStatus, error)
}

// StatsService derives read-only summaries by folding catalog definitions
// with stored progress. It never mutates state and never caches.
type StatsService interface {
	UserProgress(ctx context.Context) (*domain.UserProgress, error)
	BranchStats(ctx context.Context) (map[string]*domain.BranchStats, error)
	Summary(ctx context.Context) (*domain.Stats, error)
}
