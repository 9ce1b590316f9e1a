package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Morris-Command-Center/agentic-skill-tree/internal/db"
	"github.com/Morris-Command-Center/agentic-skill-tree/internal/domain"
)

// SQLiteCompletionRepo implements CompletionRepo using a SQLite database.
// Completions are append-only: there is no update or delete path.
type SQLiteCompletionRepo struct {
	db db.DBTX
}

// NewSQLiteCompletionRepo creates a new SQLiteCompletionRepo.
func NewSQLiteCompletionRepo(conn db.DBTX) *SQLiteCompletionRepo {
	return &SQLiteCompletionRepo{db: conn}
}

func (r *SQLiteCompletionRepo) Append(ctx context.Context, c *domain.ChallengeCompletion) (int64, error) {
	if c.CompletedAt.IsZero() {
		c.CompletedAt = time.Now().UTC()
	}
	query := `INSERT INTO challenge_completions (challenge_id, completed_at, xp_earned, notes, self_rating, confidence)
		VALUES (?, ?, ?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, query,
		c.ChallengeID,
		c.CompletedAt.UTC().Format(time.RFC3339),
		c.XPEarned,
		c.Notes,
		c.SelfRating,
		nullableConfidence(c.Confidence),
	)
	if err != nil {
		return 0, fmt.Errorf("inserting challenge completion: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("reading completion id: %w", err)
	}
	c.ID = id
	return id, nil
}

func (r *SQLiteCompletionRepo) List(ctx context.Context, challengeID string) ([]*domain.ChallengeCompletion, error) {
	query := `SELECT id, challenge_id, completed_at, xp_earned, notes, self_rating, confidence
		FROM challenge_completions`
	args := []any{}
	if challengeID != "" {
		query += ` WHERE challenge_id = ?`
		args = append(args, challengeID)
	}
	// id breaks ties between completions recorded within the same second.
	query += ` ORDER BY completed_at DESC, id DESC`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing completions: %w", err)
	}
	defer rows.Close()
	return r.scanCompletions(rows)
}

func (r *SQLiteCompletionRepo) TotalXP(ctx context.Context) (int, error) {
	var total int
	query := `SELECT COALESCE(SUM(xp_earned), 0) FROM challenge_completions`
	if err := r.db.QueryRowContext(ctx, query).Scan(&total); err != nil {
		return 0, fmt.Errorf("summing earned xp: %w", err)
	}
	return total, nil
}

func (r *SQLiteCompletionRepo) Count(ctx context.Context) (int, error) {
	var count int
	query := `SELECT COUNT(*) FROM challenge_completions`
	if err := r.db.QueryRowContext(ctx, query).Scan(&count); err != nil {
		return 0, fmt.Errorf("counting completions: %w", err)
	}
	return count, nil
}

// scanCompletions scans multiple completions from *sql.Rows.
func (r *SQLiteCompletionRepo) scanCompletions(rows *sql.Rows) ([]*domain.ChallengeCompletion, error) {
	var completions []*domain.ChallengeCompletion
	for rows.Next() {
		var c domain.ChallengeCompletion
		var completedAtStr string
		var confidenceStr sql.NullString

		err := rows.Scan(
			&c.ID, &c.ChallengeID, &completedAtStr, &c.XPEarned, &c.Notes, &c.SelfRating, &confidenceStr,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning completion row: %w", err)
		}

		c.CompletedAt, err = time.Parse(time.RFC3339, completedAtStr)
		if err != nil {
			return nil, fmt.Errorf("parsing completed_at: %w", err)
		}
		c.Confidence = parseNullableConfidence(confidenceStr)

		completions = append(completions, &c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating completions: %w", err)
	}
	return completions, nil
}
