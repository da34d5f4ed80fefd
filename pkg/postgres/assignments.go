package postgres

import (
	"context"
	"fmt"

	"github.com/noelwild/Watchtower/pkg/core/model"
)

// InsertAssignments bulk-inserts shift assignments in one transaction
func (db *DB) InsertAssignments(ctx context.Context, assignments []model.ShiftAssignment) error {
	if len(assignments) == 0 {
		return nil
	}

	tx, err := db.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	for _, a := range assignments {
		_, err := tx.Exec(ctx, `
			INSERT INTO shift_assignment (id, roster_period_id, member_id, date,
				shift_type, start_time, end_time, hours, is_overtime,
				assigned_by, assignment_reason, created_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		`, a.ID, a.RosterPeriodID, a.MemberID, a.Date, string(a.Type),
			a.StartTime, a.EndTime, a.Hours, a.IsOvertime,
			a.AssignedBy, a.AssignmentReason, a.CreatedAt)
		if err != nil {
			return fmt.Errorf("failed to insert assignment: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit assignments: %w", err)
	}

	return nil
}

// GetAssignments retrieves all assignments for a roster period, sorted by
// date then shift type
func (db *DB) GetAssignments(ctx context.Context, rosterPeriodID string) ([]model.ShiftAssignment, error) {
	rows, err := db.pool.Query(ctx, `
		SELECT id, roster_period_id, member_id, date, shift_type, start_time,
			end_time, hours, is_overtime, assigned_by, assignment_reason, created_at
		FROM shift_assignment
		WHERE roster_period_id = $1
		ORDER BY date, shift_type
	`, rosterPeriodID)
	if err != nil {
		return nil, fmt.Errorf("failed to query assignments: %w", err)
	}
	defer rows.Close()

	var assignments []model.ShiftAssignment
	for rows.Next() {
		var a model.ShiftAssignment
		var shiftType string
		if err := rows.Scan(&a.ID, &a.RosterPeriodID, &a.MemberID, &a.Date,
			&shiftType, &a.StartTime, &a.EndTime, &a.Hours, &a.IsOvertime,
			&a.AssignedBy, &a.AssignmentReason, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan assignment: %w", err)
		}
		a.Type = model.ShiftType(shiftType)
		assignments = append(assignments, a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating assignments: %w", err)
	}

	return assignments, nil
}
