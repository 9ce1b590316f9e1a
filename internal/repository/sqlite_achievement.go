package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/Morris-Command-Center/agentic-skill-tree/internal/db"
	"github.com/Morris-Command-Center/agentic-skill-tree/internal/domain"
)

// SQLiteAchievementRepo implements AchievementRepo using a SQLite database.
type SQLiteAchievementRepo struct {
	db db.DBTX
}

// NewSQLiteAchievementRepo creates a new SQLiteAchievementRepo.
func NewSQLiteAchievementRepo(conn db.DBTX) *SQLiteAchievementRepo {
	return &SQLiteAchievementRepo{db: conn}
}

// Unlock records an achievement unlock. INSERT OR IGNORE keeps the first
// unlock timestamp when the achievement is already unlocked.
func (r *SQLiteAchievementRepo) Unlock(ctx context.Context, achievementID string) error {
	query := `INSERT OR IGNORE INTO achievements (achievement_id, unlocked_at) VALUES (?, ?)`
	_, err := r.db.ExecContext(ctx, query, achievementID, nowUTC())
	if err != nil {
		return fmt.Errorf("unlocking achievement: %w", err)
	}
	return nil
}

func (r *SQLiteAchievementRepo) ListUnlocked(ctx context.Context) ([]domain.AchievementUnlock, error) {
	query := `SELECT achievement_id, unlocked_at FROM achievements ORDER BY unlocked_at`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing achievements: %w", err)
	}
	defer rows.Close()

	var unlocks []domain.AchievementUnlock
	for rows.Next() {
		var u domain.AchievementUnlock
		var unlockedAtStr string
		if err := rows.Scan(&u.AchievementID, &unlockedAtStr); err != nil {
			return nil, fmt.Errorf("scanning achievement row: %w", err)
		}
		u.UnlockedAt, err = time.Parse(time.RFC3339, unlockedAtStr)
		if err != nil {
			return nil, fmt.Errorf("parsing unlocked_at: %w", err)
		}
		unlocks = append(unlocks, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating achievements: %w", err)
	}
	return unlocks, nil
}
