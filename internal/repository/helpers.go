package repository

import (
	"database/sql"
	"time"

	"github.com/Morris-Command-Center/agentic-skill-tree/internal/domain"
)

// nullableConfidence converts an optional confidence to a value suitable
// for SQLite storage. Returns nil (SQL NULL) when unset.
func nullableConfidence(c *domain.Confidence) interface{} {
	if c == nil {
		return nil
	}
	return string(*c)
}

// parseNullableConfidence converts a scanned sql.NullString back to an
// optional confidence.
func parseNullableConfidence(s sql.NullString) *domain.Confidence {
	if !s.Valid || s.String == "" {
		return nil
	}
	c := domain.Confidence(s.String)
	return &c
}

// nowUTC returns the current UTC time formatted as RFC3339.
func nowUTC() string {
	return time.Now().UTC().Format(time.RFC3339)
}
