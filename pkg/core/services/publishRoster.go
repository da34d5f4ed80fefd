package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/noelwild/Watchtower/pkg/core/model"
	"github.com/noelwild/Watchtower/pkg/core/roster"
)

// PublishRosterStore defines the database operations needed for
// publishing a roster
type PublishRosterStore interface {
	GetRosterPeriod(ctx context.Context, rosterPeriodID string) (*model.RosterPeriod, error)
	GetAssignments(ctx context.Context, rosterPeriodID string) ([]model.ShiftAssignment, error)
	UpdateRosterStatus(ctx context.Context, rosterPeriodID string, status model.RosterStatus, publishedAt *time.Time) error
}

// PublishRosterResult contains the publication outcome
type PublishRosterResult struct {
	RosterPeriodID string
	PublishedAt    time.Time
	DaysInAdvance  int
	Compliance     roster.ComplianceSummary
}

// PublishRoster transitions a draft roster to published. The transition is
// gated on a fresh compliance audit of the stored assignments: any
// violation blocks publication and leaves the status unchanged.
func PublishRoster(
	ctx context.Context,
	store PublishRosterStore,
	logger *zap.Logger,
	rosterPeriodID string,
) (*PublishRosterResult, error) {
	logger.Debug("Starting publishRoster", zap.String("roster_period_id", rosterPeriodID))

	period, err := store.GetRosterPeriod(ctx, rosterPeriodID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch roster period: %w", err)
	}
	if period == nil {
		return nil, fmt.Errorf("%w: %s", ErrRosterNotFound, rosterPeriodID)
	}

	if !period.Status.CanTransitionTo(model.RosterPublished) {
		return nil, fmt.Errorf("%w: %s -> %s",
			ErrInvalidStatusTransition, period.Status, model.RosterPublished)
	}

	assignments, err := store.GetAssignments(ctx, rosterPeriodID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch assignments: %w", err)
	}

	summary := roster.ValidateAssignments(assignments)
	if summary.HasViolations {
		logger.Warn("Publication blocked by compliance violations",
			zap.String("roster_period_id", rosterPeriodID),
			zap.Int("violations", len(summary.Violations)))
		return nil, fmt.Errorf("%w: %s",
			ErrComplianceViolations, strings.Join(summary.Violations, "; "))
	}

	publishedAt := time.Now().UTC()
	if err := store.UpdateRosterStatus(ctx, rosterPeriodID, model.RosterPublished, &publishedAt); err != nil {
		return nil, fmt.Errorf("failed to update roster status: %w", err)
	}

	daysInAdvance := int(period.StartDate.Sub(publishedAt).Hours() / 24)

	logger.Info("Roster published",
		zap.String("roster_period_id", rosterPeriodID),
		zap.Time("published_at", publishedAt),
		zap.Int("days_in_advance", daysInAdvance))

	return &PublishRosterResult{
		RosterPeriodID: rosterPeriodID,
		PublishedAt:    publishedAt,
		DaysInAdvance:  daysInAdvance,
		Compliance:     summary,
	}, nil
}
