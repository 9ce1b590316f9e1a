package service

import (
	"context"
	"testing"

	"github.com/Morris-Command-Center/agentic-skill-tree/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserProgress_EmptyStore(t *testing.T) {
	f := setupEngine(t)

	up, err := f.stats.UserProgress(context.Background())
	require.NoError(t, err)
	assert.Empty(t, up.Skills)
	assert.Equal(t, 0, up.TotalXP)
	assert.Equal(t, 0, up.ChallengesCompleted)
}

func TestUserProgress_TotalsMatchCompletionHistory(t *testing.T) {
	f := setupEngine(t)
	ctx := context.Background()

	_, err := f.engine.RecordCompletion(ctx, CompletionRequest{ChallengeID: "ch-60", SelfRating: 3})
	require.NoError(t, err)
	_, err = f.engine.RecordCompletion(ctx, CompletionRequest{ChallengeID: "ch-multi", SelfRating: 3})
	require.NoError(t, err)

	up, err := f.stats.UserProgress(ctx)
	require.NoError(t, err)
	assert.Equal(t, 100, up.TotalXP, "60 + 40")
	assert.Equal(t, 2, up.ChallengesCompleted)
	require.Len(t, up.Skills, 2)
	assert.Equal(t, 100, up.Skills["test-writing"].CurrentXP)
	assert.Equal(t, 40, up.Skills["shell-fu"].CurrentXP)
}

func TestBranchStats_UntouchedSkillsContributeZero(t *testing.T) {
	f := setupEngine(t)
	ctx := context.Background()

	// Drive shell-fu to completed; test-writing and prompting stay untouched.
	for i := 0; i < 3; i++ {
		_, err := f.engine.RecordCompletion(ctx, CompletionRequest{ChallengeID: "ch-big", SelfRating: 3})
		require.NoError(t, err)
	}

	stats, err := f.stats.BranchStats(ctx)
	require.NoError(t, err)
	require.Contains(t, stats, "agentic")

	agentic := stats["agentic"]
	assert.Equal(t, 3, agentic.TotalSkills)
	assert.Equal(t, 1, agentic.CompletedSkills)
	assert.Equal(t, 450, agentic.TotalXP, "untouched skills add zero")
}

func TestBranchStats_BranchWithNoProgressAtAll(t *testing.T) {
	f := setupEngine(t)

	stats, err := f.stats.BranchStats(context.Background())
	require.NoError(t, err)
	require.Contains(t, stats, "ops")
	assert.Equal(t, &domain.BranchStats{Name: "ops", TotalSkills: 1}, stats["ops"])
}

func TestSummary_CombinesTotalsAndBranches(t *testing.T) {
	f := setupEngine(t)
	ctx := context.Background()

	_, err := f.engine.RecordCompletion(ctx, CompletionRequest{ChallengeID: "ch-60", SelfRating: 3})
	require.NoError(t, err)

	summary, err := f.stats.Summary(ctx)
	require.NoError(t, err)
	assert.Equal(t, 60, summary.TotalXP)
	assert.Equal(t, 1, summary.ChallengesCompleted)
	require.Len(t, summary.Branches, 2)
	assert.Equal(t, 60, summary.Branches["agentic"].TotalXP)
	assert.Equal(t, 0, summary.Branches["ops"].TotalXP)
}

func TestStatsAreDerivedNotCached(t *testing.T) {
	f := setupEngine(t)
	ctx := context.Background()

	before, err := f.stats.Summary(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, before.TotalXP)

	_, err = f.engine.RecordCompletion(ctx, CompletionRequest{ChallengeID: "ch-50", SelfRating: 3})
	require.NoError(t, err)

	after, err := f.stats.Summary(ctx)
	require.NoError(t, err)
	assert.Equal(t, 50, after.TotalXP, "subsequent reads reflect new completions")
}
