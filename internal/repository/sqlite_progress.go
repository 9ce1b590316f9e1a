package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Morris-Command-Center/agentic-skill-tree/internal/db"
	"github.com/Morris-Command-Center/agentic-skill-tree/internal/domain"
)

// SQLiteProgressRepo implements ProgressRepo using a SQLite database.
type SQLiteProgressRepo struct {
	db db.DBTX
}

// NewSQLiteProgressRepo creates a new SQLiteProgressRepo.
func NewSQLiteProgressRepo(conn db.DBTX) *SQLiteProgressRepo {
	return &SQLiteProgressRepo{db: conn}
}

func (r *SQLiteProgressRepo) Get(ctx context.Context, skillID string) (*domain.SkillProgress, error) {
	query := `SELECT skill_id, current_xp, level, confidence, updated_at
		FROM skill_progress WHERE skill_id = ?`
	row := r.db.QueryRowContext(ctx, query, skillID)
	return r.scanProgress(row)
}

func (r *SQLiteProgressRepo) GetAll(ctx context.Context) (map[string]*domain.SkillProgress, error) {
	query := `SELECT skill_id, current_xp, level, confidence, updated_at FROM skill_progress`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing skill progress: %w", err)
	}
	defer rows.Close()

	progress := make(map[string]*domain.SkillProgress)
	for rows.Next() {
		p, err := r.scanProgressFromRows(rows)
		if err != nil {
			return nil, err
		}
		progress[p.SkillID] = p
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating skill progress: %w", err)
	}
	return progress, nil
}

func (r *SQLiteProgressRepo) Upsert(ctx context.Context, p *domain.SkillProgress) error {
	query := `INSERT INTO skill_progress (skill_id, current_xp, level, confidence, updated_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(skill_id) DO UPDATE SET
			current_xp = excluded.current_xp,
			level      = excluded.level,
			confidence = excluded.confidence,
			updated_at = excluded.updated_at`
	_, err := r.db.ExecContext(ctx, query,
		p.SkillID,
		p.CurrentXP,
		string(p.Level),
		string(p.Confidence),
		nowUTC(),
	)
	if err != nil {
		return fmt.Errorf("upserting skill progress: %w", err)
	}
	return nil
}

// scanProgress scans a single progress row from a *sql.Row.
func (r *SQLiteProgressRepo) scanProgress(row *sql.Row) (*domain.SkillProgress, error) {
	var p domain.SkillProgress
	var levelStr, confidenceStr, updatedAtStr string

	err := row.Scan(&p.SkillID, &p.CurrentXP, &levelStr, &confidenceStr, &updatedAtStr)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("skill progress: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning skill progress: %w", err)
	}

	return r.populateProgress(&p, levelStr, confidenceStr, updatedAtStr)
}

// scanProgressFromRows scans a single progress row from *sql.Rows.
func (r *SQLiteProgressRepo) scanProgressFromRows(rows *sql.Rows) (*domain.SkillProgress, error) {
	var p domain.SkillProgress
	var levelStr, confidenceStr, updatedAtStr string

	err := rows.Scan(&p.SkillID, &p.CurrentXP, &levelStr, &confidenceStr, &updatedAtStr)
	if err != nil {
		return nil, fmt.Errorf("scanning skill progress row: %w", err)
	}

	return r.populateProgress(&p, levelStr, confidenceStr, updatedAtStr)
}

// populateProgress fills in parsed fields after scanning raw strings.
func (r *SQLiteProgressRepo) populateProgress(p *domain.SkillProgress, levelStr, confidenceStr, updatedAtStr string) (*domain.SkillProgress, error) {
	p.Level = domain.SkillLevel(levelStr)
	p.Confidence = domain.Confidence(confidenceStr)

	var parseErr error
	p.UpdatedAt, parseErr = time.Parse(time.RFC3339, updatedAtStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", parseErr)
	}
	return p, nil
}
