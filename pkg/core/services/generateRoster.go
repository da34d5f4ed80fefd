package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/noelwild/Watchtower/pkg/core/model"
	"github.com/noelwild/Watchtower/pkg/core/roster"
)

// GenerateRosterStore defines the database operations needed for
// generating a roster
type GenerateRosterStore interface {
	ListActiveMembers(ctx context.Context, station model.Station) ([]model.Member, error)
	InsertRosterPeriod(ctx context.Context, period *model.RosterPeriod) error
	InsertAssignments(ctx context.Context, assignments []model.ShiftAssignment) error
}

// GenerateRosterResult contains the generation results
type GenerateRosterResult struct {
	RosterPeriodID string
	PeriodStart    time.Time
	PeriodEnd      time.Time
	Status         model.RosterStatus
	Assignments    []model.ShiftAssignment
	Compliance     roster.ComplianceSummary
	MemberSummary  map[string]*MemberRosterSummary
}

// GenerateRoster creates a draft roster period and allocates shifts for it.
// A zero periodStart defaults to the next Monday. The resulting roster is
// always stored as a draft; publication is a separate, compliance-gated step.
func GenerateRoster(
	ctx context.Context,
	store GenerateRosterStore,
	logger *zap.Logger,
	cfg roster.GenerationConfig,
	periodStart time.Time,
	createdBy string,
) (*GenerateRosterResult, error) {
	logger.Debug("Starting generateRoster",
		zap.String("station", string(cfg.Station)),
		zap.Int("period_weeks", cfg.PeriodWeeks))

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if periodStart.IsZero() {
		periodStart = nextMonday(time.Now().UTC())
		logger.Debug("No start date given, defaulting to next Monday",
			zap.Time("period_start", periodStart))
	}
	periodEnd := periodStart.AddDate(0, 0, cfg.PeriodWeeks*7)

	members, err := store.ListActiveMembers(ctx, cfg.Station)
	if err != nil {
		return nil, fmt.Errorf("failed to list active members: %w", err)
	}
	logger.Debug("Found active members", zap.Int("count", len(members)))

	period := &model.RosterPeriod{
		ID:        uuid.NewString(),
		Station:   cfg.Station,
		StartDate: periodStart,
		EndDate:   periodEnd,
		Status:    model.RosterDraft,
		CreatedBy: createdBy,
		CreatedAt: time.Now().UTC(),
	}

	if err := store.InsertRosterPeriod(ctx, period); err != nil {
		return nil, fmt.Errorf("failed to insert roster period: %w", err)
	}

	dates, err := calculateRosterDates(periodStart, cfg.PeriodWeeks)
	if err != nil {
		return nil, err
	}

	assignments := roster.GenerateAssignments(period.ID, dates, members, cfg)
	logger.Info("Allocation complete",
		zap.String("roster_period_id", period.ID),
		zap.Int("assignments", len(assignments)),
		zap.Int("days", len(dates)))

	if err := store.InsertAssignments(ctx, assignments); err != nil {
		return nil, fmt.Errorf("failed to insert assignments: %w", err)
	}

	summary := roster.ValidateAssignments(assignments)
	if summary.HasViolations {
		logger.Warn("Generated roster has compliance violations",
			zap.Int("violations", len(summary.Violations)))
	}

	return &GenerateRosterResult{
		RosterPeriodID: period.ID,
		PeriodStart:    periodStart,
		PeriodEnd:      periodEnd,
		Status:         model.RosterDraft,
		Assignments:    assignments,
		Compliance:     summary,
		MemberSummary:  summarizeAssignments(assignments),
	}, nil
}
