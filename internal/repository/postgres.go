package repository

import (
	"context"
	"fmt"

	"github.com/UnknownOlympus/pitstop/internal/models"
)

const createJournalTable = `
	CREATE TABLE IF NOT EXISTS lookup_journal (
		id BIGSERIAL PRIMARY KEY,
		query TEXT NOT NULL,
		outcome TEXT NOT NULL,
		latitude DOUBLE PRECISION,
		longitude DOUBLE PRECISION,
		point_count INTEGER NOT NULL DEFAULT 0,
		duration_ms BIGINT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	);
`

// EnsureSchema creates the journal table when it does not exist yet.
func (r *Repository) EnsureSchema(ctx context.Context) error {
	if _, err := r.db.Exec(ctx, createJournalTable); err != nil {
		return fmt.Errorf("failed to create lookup journal table: %w", err)
	}

	return nil
}

// RecordLookup appends a finished lookup to the journal. The journal is write-only:
// nothing in the lookup flow ever reads it back.
func (r *Repository) RecordLookup(ctx context.Context, record models.LookupRecord) error {
	query := `
		INSERT INTO lookup_journal (query, outcome, latitude, longitude, point_count, duration_ms)
		VALUES ($1, $2, $3, $4, $5, $6);
	`

	var lat, lon *float64
	if record.Center != nil {
		lat, lon = &record.Center.Latitude, &record.Center.Longitude
	}

	_, err := r.db.Exec(ctx, query,
		record.Query, record.Outcome, lat, lon, record.PointCount, record.Duration.Milliseconds())
	if err != nil {
		return fmt.Errorf("failed to insert lookup record: %w", err)
	}

	r.log.DebugContext(ctx, "Lookup recorded", "query", record.Query, "outcome", record.Outcome)

	return nil
}

// Ping reports whether the database is reachable.
func (r *Repository) Ping(ctx context.Context) error {
	return r.db.Ping(ctx)
}
