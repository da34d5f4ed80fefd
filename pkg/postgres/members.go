package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/noelwild/Watchtower/pkg/core/model"
)

const memberColumns = `id, vp_number, name, email, station, rank, seniority_years, active,
	night_shift_tolerance, recall_willingness, avoid_consecutive_doubles,
	avoid_four_earlies, preferred_rest_days, medical_limitations, welfare_notes`

// ListActiveMembers retrieves all active members for a station
func (db *DB) ListActiveMembers(ctx context.Context, station model.Station) ([]model.Member, error) {
	rows, err := db.pool.Query(ctx, `
		SELECT `+memberColumns+`
		FROM member
		WHERE station = $1 AND active
		ORDER BY name
	`, string(station))
	if err != nil {
		return nil, fmt.Errorf("failed to query members: %w", err)
	}
	defer rows.Close()

	var members []model.Member
	for rows.Next() {
		m, err := scanMember(rows)
		if err != nil {
			return nil, err
		}
		members = append(members, m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating members: %w", err)
	}

	return members, nil
}

// GetMember retrieves a single member by id. Returns nil when no member exists.
func (db *DB) GetMember(ctx context.Context, memberID string) (*model.Member, error) {
	rows, err := db.pool.Query(ctx, `
		SELECT `+memberColumns+`
		FROM member
		WHERE id = $1
	`, memberID)
	if err != nil {
		return nil, fmt.Errorf("failed to query member: %w", err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, fmt.Errorf("error reading member: %w", err)
		}
		return nil, nil
	}

	m, err := scanMember(rows)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// InsertMember inserts a member record with their preference set
func (db *DB) InsertMember(ctx context.Context, m *model.Member) error {
	_, err := db.pool.Exec(ctx, `
		INSERT INTO member (`+memberColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
	`,
		m.ID, m.VPNumber, m.Name, m.Email, string(m.Station), m.Rank, m.SeniorityYears, m.Active,
		m.Preferences.NightShiftTolerance, m.Preferences.RecallWillingness,
		m.Preferences.AvoidConsecutiveDoubles, m.Preferences.AvoidFourEarlies,
		m.Preferences.PreferredRestDays, nullable(m.Preferences.MedicalLimitations),
		nullable(m.Preferences.WelfareNotes))
	if err != nil {
		return fmt.Errorf("failed to insert member: %w", err)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanMember(row rowScanner) (model.Member, error) {
	var m model.Member
	var station string
	var restDays []string
	var medical, welfare *string

	err := row.Scan(&m.ID, &m.VPNumber, &m.Name, &m.Email, &station, &m.Rank,
		&m.SeniorityYears, &m.Active,
		&m.Preferences.NightShiftTolerance, &m.Preferences.RecallWillingness,
		&m.Preferences.AvoidConsecutiveDoubles, &m.Preferences.AvoidFourEarlies,
		&restDays, &medical, &welfare)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return m, nil
		}
		return m, fmt.Errorf("failed to scan member: %w", err)
	}

	m.Station = model.Station(station)
	m.Preferences.PreferredRestDays = restDays
	if medical != nil {
		m.Preferences.MedicalLimitations = *medical
	}
	if welfare != nil {
		m.Preferences.WelfareNotes = *welfare
	}

	return m, nil
}

func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
