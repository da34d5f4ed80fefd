package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/noelwild/Watchtower/pkg/core/model"
	"github.com/noelwild/Watchtower/pkg/core/roster"
)

// ValidateRosterStore defines the database operations needed for
// auditing a stored roster
type ValidateRosterStore interface {
	GetRosterPeriod(ctx context.Context, rosterPeriodID string) (*model.RosterPeriod, error)
	GetAssignments(ctx context.Context, rosterPeriodID string) ([]model.ShiftAssignment, error)
}

// ValidateRoster fetches a roster period's assignments and audits them.
// This is the whole-period pass used to gate publication, distinct from
// the per-member history evaluation in CheckCompliance.
func ValidateRoster(
	ctx context.Context,
	store ValidateRosterStore,
	logger *zap.Logger,
	rosterPeriodID string,
) (*roster.ComplianceSummary, error) {
	logger.Debug("Starting validateRoster", zap.String("roster_period_id", rosterPeriodID))

	period, err := store.GetRosterPeriod(ctx, rosterPeriodID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch roster period: %w", err)
	}
	if period == nil {
		return nil, fmt.Errorf("%w: %s", ErrRosterNotFound, rosterPeriodID)
	}

	assignments, err := store.GetAssignments(ctx, rosterPeriodID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch assignments: %w", err)
	}

	summary := roster.ValidateAssignments(assignments)

	logger.Info("Roster validated",
		zap.String("roster_period_id", rosterPeriodID),
		zap.Int("members_checked", summary.MembersChecked),
		zap.Bool("has_violations", summary.HasViolations),
		zap.Bool("has_warnings", summary.HasWarnings))

	return &summary, nil
}
