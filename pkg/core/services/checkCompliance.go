package services

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/noelwild/Watchtower/pkg/core/compliance"
	"github.com/noelwild/Watchtower/pkg/core/model"
)

// historyWeeks is how far back shift history is fetched for evaluation
const historyWeeks = 4

// CheckComplianceStore defines the database operations needed for
// evaluating a member's compliance
type CheckComplianceStore interface {
	GetMember(ctx context.Context, memberID string) (*model.Member, error)
	GetShiftHistory(ctx context.Context, memberID string, since time.Time) ([]model.ShiftRecord, error)
}

// CheckCompliance evaluates one member's recent shift history against the
// EBA rule set. The reference time now is injected so repeated evaluations
// of the same history are identical.
func CheckCompliance(
	ctx context.Context,
	store CheckComplianceStore,
	logger *zap.Logger,
	memberID string,
	now time.Time,
) (*model.ComplianceReport, error) {
	logger.Debug("Starting checkCompliance", zap.String("member_id", memberID))

	member, err := store.GetMember(ctx, memberID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch member: %w", err)
	}
	if member == nil {
		return nil, fmt.Errorf("%w: %s", ErrMemberNotFound, memberID)
	}

	since := now.AddDate(0, 0, -historyWeeks*7)
	history, err := store.GetShiftHistory(ctx, memberID, since)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch shift history: %w", err)
	}
	logger.Debug("Fetched shift history",
		zap.String("member_id", memberID),
		zap.Int("shifts", len(history)))

	report := compliance.Evaluate(memberID, history, now)

	logger.Info("Compliance evaluated",
		zap.String("member_id", memberID),
		zap.String("status", string(report.Status)),
		zap.Float64("fortnight_hours", report.FortnightHours))

	return &report, nil
}
