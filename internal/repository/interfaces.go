package repository

import (
	"context"

	"github.com/Morris-Command-Center/agentic-skill-tree/internal/domain"
)

// ProgressRepo stores per-skill progression rows keyed by skill id.
// A row appears only once a skill has been written; Get returns
// ErrNotFound for skills that were never touched.
type ProgressRepo interface {
	Get(ctx context.Context, skillID string) (*domain.SkillProgress, error)
	GetAll(ctx context.Context) (map[string]*domain.SkillProgress, error)
	// Upsert inserts or overwrites the full row (current_xp, level,
	// confidence) and bumps updated_at. This is the only mutation path;
	// callers always supply the complete record.
	Upsert(ctx context.Context, p *domain.SkillProgress) error
}

// CompletionRepo stores the append-only challenge completion history.
type CompletionRepo interface {
	// Append inserts a completion and returns its assigned id.
	// Assigned ids are strictly increasing.
	Append(ctx context.Context, c *domain.ChallengeCompletion) (int64, error)
	// List returns completions ordered most recent first. An empty
	// challengeID returns the full history.
	List(ctx context.Context, challengeID string) ([]*domain.ChallengeCompletion, error)
	TotalXP(ctx context.Context) (int, error)
	Count(ctx context.Context) (int, error)
}

// AchievementRepo stores achievement unlock records with insert-once
// semantics: unlocking an already-unlocked id is a silent no-op and the
// original unlock timestamp is retained.
type AchievementRepo interface {
	Unlock(ctx context.Context, achievementID string) error
	ListUnlocked(ctx context.Context) ([]domain.AchievementUnlock, error)
}
