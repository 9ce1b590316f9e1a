package testutil

import (
	"testing"
	"time"

	"github.com/Morris-Command-Center/agentic-skill-tree/internal/catalog"
	"github.com/Morris-Command-Center/agentic-skill-tree/internal/domain"
)

// SkillOption customizes a test skill.
type SkillOption func(*domain.Skill)

// WithXPRequired sets the skill's level threshold.
func WithXPRequired(xp int) SkillOption {
	return func(s *domain.Skill) { s.XPRequired = xp }
}

// WithPrerequisites sets the skill's prerequisite ids.
func WithPrerequisites(ids ...string) SkillOption {
	return func(s *domain.Skill) { s.Prerequisites = ids }
}

// NewTestSkill creates a skill with sensible defaults (threshold 100).
// The branch id is assigned by NewTestBranch.
func NewTestSkill(id string, opts ...SkillOption) domain.Skill {
	s := domain.Skill{
		ID:          id,
		Name:        id,
		Description: "test skill " + id,
		XPRequired:  100,
	}
	for _, opt := range opts {
		opt(&s)
	}
	return s
}

// NewTestBranch groups skills into a branch and stamps the branch id onto
// each skill, mirroring the catalog loader.
func NewTestBranch(id string, skills ...domain.Skill) domain.SkillBranch {
	for i := range skills {
		skills[i].Branch = id
	}
	return domain.SkillBranch{
		ID:          id,
		Name:        id,
		Description: "test branch " + id,
		Color:       "#83a598",
		Skills:      skills,
	}
}

// ChallengeOption customizes a test challenge.
type ChallengeOption func(*domain.Challenge)

// WithDifficulty sets the challenge difficulty tag.
func WithDifficulty(d string) ChallengeOption {
	return func(c *domain.Challenge) { c.Difficulty = d }
}

// NewTestChallenge creates a challenge worth xp training the given skills.
func NewTestChallenge(id string, xp int, skillIDs []string, opts ...ChallengeOption) domain.Challenge {
	c := domain.Challenge{
		ID:              id,
		Name:            id,
		Description:     "test challenge " + id,
		SkillIDs:        skillIDs,
		XPReward:        xp,
		Difficulty:      "easy",
		SuccessCriteria: "it works",
	}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// NewTestAchievement creates an achievement definition.
func NewTestAchievement(id string) domain.Achievement {
	return domain.Achievement{
		ID:          id,
		Name:        id,
		Description: "test achievement " + id,
		Icon:        "🏆",
		Criteria:    "do the thing",
	}
}

// NewTestCatalog builds a validated catalog from branches and challenges.
func NewTestCatalog(t *testing.T, branches []domain.SkillBranch, challenges []domain.Challenge, achievements ...domain.Achievement) *catalog.Catalog {
	t.Helper()
	c, err := catalog.New(branches, challenges, achievements, "")
	if err != nil {
		t.Fatalf("failed to build test catalog: %v", err)
	}
	return c
}

// CompletionOption customizes a test completion record.
type CompletionOption func(*domain.ChallengeCompletion)

// WithCompletedAt sets the completion timestamp.
func WithCompletedAt(at time.Time) CompletionOption {
	return func(c *domain.ChallengeCompletion) { c.CompletedAt = at }
}

// WithNotes sets the completion notes.
func WithNotes(notes string) CompletionOption {
	return func(c *domain.ChallengeCompletion) { c.Notes = notes }
}

// WithRating sets the 1-5 self rating.
func WithRating(rating int) CompletionOption {
	return func(c *domain.ChallengeCompletion) { c.SelfRating = rating }
}

// WithCompletionConfidence sets the optional confidence snapshot.
func WithCompletionConfidence(conf domain.Confidence) CompletionOption {
	return func(c *domain.ChallengeCompletion) { c.Confidence = &conf }
}

// NewTestCompletion creates a completion record for a challenge worth xp.
func NewTestCompletion(challengeID string, xp int, opts ...CompletionOption) *domain.ChallengeCompletion {
	c := &domain.ChallengeCompletion{
		ChallengeID: challengeID,
		CompletedAt: time.Now().UTC(),
		XPEarned:    xp,
		SelfRating:  3,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}
