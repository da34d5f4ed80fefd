package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/noelwild/Watchtower/pkg/core/model"
)

// InsertRosterPeriod inserts a new roster period record
func (db *DB) InsertRosterPeriod(ctx context.Context, period *model.RosterPeriod) error {
	_, err := db.pool.Exec(ctx, `
		INSERT INTO roster_period (id, station, start_date, end_date, status,
			created_by, created_at, published_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`, period.ID, string(period.Station), period.StartDate, period.EndDate,
		string(period.Status), period.CreatedBy, period.CreatedAt, period.PublishedAt)
	if err != nil {
		return fmt.Errorf("failed to insert roster period: %w", err)
	}
	return nil
}

// GetRosterPeriod retrieves a roster period by id. Returns nil when no
// period exists.
func (db *DB) GetRosterPeriod(ctx context.Context, rosterPeriodID string) (*model.RosterPeriod, error) {
	rows, err := db.pool.Query(ctx, `
		SELECT id, station, start_date, end_date, status, created_by, created_at, published_at
		FROM roster_period
		WHERE id = $1
	`, rosterPeriodID)
	if err != nil {
		return nil, fmt.Errorf("failed to query roster period: %w", err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, fmt.Errorf("error reading roster period: %w", err)
		}
		return nil, nil
	}

	var p model.RosterPeriod
	var station, status string
	if err := rows.Scan(&p.ID, &station, &p.StartDate, &p.EndDate, &status,
		&p.CreatedBy, &p.CreatedAt, &p.PublishedAt); err != nil {
		return nil, fmt.Errorf("failed to scan roster period: %w", err)
	}
	p.Station = model.Station(station)
	p.Status = model.RosterStatus(status)

	return &p, nil
}

// UpdateRosterStatus updates a roster period's lifecycle status. publishedAt
// is stamped when non-nil.
func (db *DB) UpdateRosterStatus(ctx context.Context, rosterPeriodID string, status model.RosterStatus, publishedAt *time.Time) error {
	tag, err := db.pool.Exec(ctx, `
		UPDATE roster_period
		SET status = $2, published_at = COALESCE($3, published_at)
		WHERE id = $1
	`, rosterPeriodID, string(status), publishedAt)
	if err != nil {
		return fmt.Errorf("failed to update roster status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("roster period not found: %s", rosterPeriodID)
	}
	return nil
}
