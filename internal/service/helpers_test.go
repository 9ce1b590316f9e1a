package service

import (
	"testing"

	"github.com/Morris-Command-Center/agentic-skill-tree/internal/catalog"
	"github.com/Morris-Command-Center/agentic-skill-tree/internal/domain"
	"github.com/Morris-Command-Center/agentic-skill-tree/internal/repository"
	"github.com/Morris-Command-Center/agentic-skill-tree/internal/testutil"
)

// engineFixture bundles the progression engine with direct repo access so
// tests can inspect stored state underneath the service.
type engineFixture struct {
	engine       ProgressionService
	stats        StatsService
	cat          *catalog.Catalog
	progress     *repository.SQLiteProgressRepo
	completions  *repository.SQLiteCompletionRepo
	achievements *repository.SQLiteAchievementRepo
}

// setupEngine wires the standard test catalog over a fresh in-memory db:
//
//	branch "agentic": test-writing (100), shell-fu (100), prompting (50)
//	branch "ops":     deploys (100)
//	ch-60  → 60 XP, trains test-writing
//	ch-50  → 50 XP, trains test-writing
//	ch-multi → 40 XP, trains test-writing + shell-fu
//	ch-big → 150 XP, trains shell-fu
func setupEngine(t *testing.T) *engineFixture {
	t.Helper()
	db := testutil.NewTestDB(t)

	cat := testutil.NewTestCatalog(t,
		[]domain.SkillBranch{
			testutil.NewTestBranch("agentic",
				testutil.NewTestSkill("test-writing"),
				testutil.NewTestSkill("shell-fu"),
				testutil.NewTestSkill("prompting", testutil.WithXPRequired(50)),
			),
			testutil.NewTestBranch("ops",
				testutil.NewTestSkill("deploys"),
			),
		},
		[]domain.Challenge{
			testutil.NewTestChallenge("ch-60", 60, []string{"test-writing"}),
			testutil.NewTestChallenge("ch-50", 50, []string{"test-writing"}),
			testutil.NewTestChallenge("ch-multi", 40, []string{"test-writing", "shell-fu"}),
			testutil.NewTestChallenge("ch-big", 150, []string{"shell-fu"}),
		},
		testutil.NewTestAchievement("first-steps"),
		testutil.NewTestAchievement("branch-master"),
	)

	progress := repository.NewSQLiteProgressRepo(db)
	completions := repository.NewSQLiteCompletionRepo(db)
	achievements := repository.NewSQLiteAchievementRepo(db)

	return &engineFixture{
		engine:       NewProgressionService(cat, progress, completions, achievements),
		stats:        NewStatsService(cat, progress, completions),
		cat:          cat,
		progress:     progress,
		completions:  completions,
		achievements: achievements,
	}
}
