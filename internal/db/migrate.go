package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations in order. Statements are idempotent;
// ALTER TABLE duplicates from re-runs are tolerated.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS skill_progress (
		skill_id   TEXT PRIMARY KEY,
		current_xp INTEGER NOT NULL DEFAULT 0 CHECK(current_xp >= 0),
		level      TEXT NOT NULL DEFAULT 'locked'
		           CHECK(level IN ('locked','available','in_progress','completed')),
		confidence TEXT NOT NULL DEFAULT 'red'
		           CHECK(confidence IN ('red','yellow','green')),
		updated_at TEXT NOT NULL
	)`,

	// AUTOINCREMENT so completion ids are strictly increasing and never
	// reused, even across deletes of the sqlite sequence table.
	`CREATE TABLE IF NOT EXISTS challenge_completions (
		id           INTEGER PRIMARY KEY AUTOINCREMENT,
		challenge_id TEXT NOT NULL,
		completed_at TEXT NOT NULL,
		xp_earned    INTEGER NOT NULL CHECK(xp_earned >= 0),
		notes        TEXT NOT NULL DEFAULT '',
		self_rating  INTEGER NOT NULL CHECK(self_rating BETWEEN 1 AND 5),
		confidence   TEXT CHECK(confidence IN ('red','yellow','green'))
	)`,

	`CREATE INDEX IF NOT EXISTS idx_completions_challenge ON challenge_completions(challenge_id)`,
	`CREATE INDEX IF NOT EXISTS idx_completions_completed ON challenge_completions(completed_at)`,

	`CREATE TABLE IF NOT EXISTS achievements (
		achievement_id TEXT PRIMARY KEY,
		unlocked_at    TEXT NOT NULL
	)`,
}
