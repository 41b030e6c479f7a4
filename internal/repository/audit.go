package repository

import (
	"context"
	"database/sql"

	"github.com/vaultpass/passgen-go/internal/model"
)

const createEventsTable = `
	CREATE TABLE IF NOT EXISTS generation_events (
		id                 CHAR(36)    NOT NULL PRIMARY KEY,
		source             VARCHAR(16) NOT NULL,
		length             INT         NOT NULL,
		count              INT         NOT NULL,
		classes            VARCHAR(64) NOT NULL,
		exclude_ambiguous  BOOLEAN     NOT NULL,
		custom_chars_count INT         NOT NULL,
		created_at         DATETIME(6) NOT NULL,
		INDEX idx_generation_events_created_at (created_at)
	)`

// AuditRepository persists generation events.
type AuditRepository struct {
	db *sql.DB
}

// NewAuditRepository creates a new AuditRepository.
func NewAuditRepository(db *sql.DB) *AuditRepository {
	return &AuditRepository{db: db}
}

// EnsureSchema creates the events table if it does not exist.
func (r *AuditRepository) EnsureSchema(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, createEventsTable)
	return err
}

// Record inserts a generation event.
func (r *AuditRepository) Record(ctx context.Context, event *model.GenerationEvent) error {
	query := `INSERT INTO generation_events
		(id, source, length, count, classes, exclude_ambiguous, custom_chars_count, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`

	_, err := r.db.ExecContext(ctx, query,
		event.ID,
		event.Source,
		event.Length,
		event.Count,
		event.Classes,
		event.ExcludeAmbiguous,
		event.CustomCharsCount,
		event.CreatedAt,
	)
	return err
}

// ListRecent retrieves up to limit events, most recent first.
func (r *AuditRepository) ListRecent(ctx context.Context, limit int) ([]model.GenerationEvent, error) {
	query := `SELECT id, source, length, count, classes, exclude_ambiguous, custom_chars_count, created_at
		FROM generation_events ORDER BY created_at DESC LIMIT ?`

	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []model.GenerationEvent
	for rows.Next() {
		var e model.GenerationEvent
		if err := rows.Scan(
			&e.ID, &e.Source, &e.Length, &e.Count, &e.Classes,
			&e.ExcludeAmbiguous, &e.CustomCharsCount, &e.CreatedAt,
		); err != nil {
			return nil, err
		}
		events = append(events, e)
	}

	return events, rows.Err()
}
