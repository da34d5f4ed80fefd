package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/noelwild/Watchtower/pkg/core/model"
)

// GetShiftHistory retrieves a member's shift records since the given date,
// sorted ascending by date
func (db *DB) GetShiftHistory(ctx context.Context, memberID string, since time.Time) ([]model.ShiftRecord, error) {
	rows, err := db.pool.Query(ctx, `
		SELECT id, member_id, shift_type, date, start_time, end_time,
			overtime_hours, was_recalled, notes
		FROM shift
		WHERE member_id = $1 AND date >= $2
		ORDER BY date
	`, memberID, since)
	if err != nil {
		return nil, fmt.Errorf("failed to query shift history: %w", err)
	}
	defer rows.Close()

	var shifts []model.ShiftRecord
	for rows.Next() {
		var s model.ShiftRecord
		var shiftType string
		var notes *string
		if err := rows.Scan(&s.ID, &s.MemberID, &shiftType, &s.Date, &s.StartTime,
			&s.EndTime, &s.OvertimeHours, &s.WasRecalled, &notes); err != nil {
			return nil, fmt.Errorf("failed to scan shift: %w", err)
		}
		s.Type = model.ShiftType(shiftType)
		if notes != nil {
			s.Notes = *notes
		}
		shifts = append(shifts, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating shifts: %w", err)
	}

	return shifts, nil
}

// InsertShift records a worked shift
func (db *DB) InsertShift(ctx context.Context, s *model.ShiftRecord) error {
	_, err := db.pool.Exec(ctx, `
		INSERT INTO shift (id, member_id, shift_type, date, start_time, end_time,
			overtime_hours, was_recalled, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`, s.ID, s.MemberID, string(s.Type), s.Date, s.StartTime, s.EndTime,
		s.OvertimeHours, s.WasRecalled, nullable(s.Notes))
	if err != nil {
		return fmt.Errorf("failed to insert shift: %w", err)
	}
	return nil
}
