package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/noelwild/Watchtower/pkg/core/model"
)

// mockPublishRosterStore implements PublishRosterStore for testing
type mockPublishRosterStore struct {
	period            *model.RosterPeriod
	assignments       []model.ShiftAssignment
	getPeriodErr      error
	getAssignmentsErr error
	updateStatusErr   error

	updatedStatus      model.RosterStatus
	updatedPublishedAt *time.Time
	updateCalls        int
}

func (m *mockPublishRosterStore) GetRosterPeriod(ctx context.Context, rosterPeriodID string) (*model.RosterPeriod, error) {
	if m.getPeriodErr != nil {
		return nil, m.getPeriodErr
	}
	return m.period, nil
}

func (m *mockPublishRosterStore) GetAssignments(ctx context.Context, rosterPeriodID string) ([]model.ShiftAssignment, error) {
	if m.getAssignmentsErr != nil {
		return nil, m.getAssignmentsErr
	}
	return m.assignments, nil
}

func (m *mockPublishRosterStore) UpdateRosterStatus(ctx context.Context, rosterPeriodID string, status model.RosterStatus, publishedAt *time.Time) error {
	if m.updateStatusErr != nil {
		return m.updateStatusErr
	}
	m.updateCalls++
	m.updatedStatus = status
	m.updatedPublishedAt = publishedAt
	return nil
}

func draftPeriod(start time.Time) *model.RosterPeriod {
	return &model.RosterPeriod{
		ID:        "rp1",
		Station:   model.StationGeelong,
		StartDate: start,
		EndDate:   start.AddDate(0, 0, 14),
		Status:    model.RosterDraft,
		CreatedBy: "admin",
		CreatedAt: start.AddDate(0, 0, -20),
	}
}

func cleanAssignments(memberID string, count int) []model.ShiftAssignment {
	var assignments []model.ShiftAssignment
	for i := 0; i < count; i++ {
		assignments = append(assignments, model.ShiftAssignment{
			ID:             "a" + string(rune('0'+i)),
			RosterPeriodID: "rp1",
			MemberID:       memberID,
			Date:           testMonday.AddDate(0, 0, i),
			Type:           model.ShiftEarly,
			StartTime:      "06:00",
			EndTime:        "14:00",
			Hours:          8.0,
		})
	}
	return assignments
}

func TestPublishRoster_NotFound(t *testing.T) {
	store := &mockPublishRosterStore{}

	_, err := PublishRoster(context.Background(), store, zap.NewNop(), "rp1")

	assert.ErrorIs(t, err, ErrRosterNotFound)
}

func TestPublishRoster_InvalidTransition(t *testing.T) {
	period := draftPeriod(testMonday)
	period.Status = model.RosterArchived
	store := &mockPublishRosterStore{period: period}

	_, err := PublishRoster(context.Background(), store, zap.NewNop(), "rp1")

	assert.ErrorIs(t, err, ErrInvalidStatusTransition)
	assert.Zero(t, store.updateCalls)
}

func TestPublishRoster_BlockedByViolations(t *testing.T) {
	// 10 shifts for one member: 80h breaches the period audit
	store := &mockPublishRosterStore{
		period:      draftPeriod(testMonday),
		assignments: cleanAssignments("m1", 10),
	}

	_, err := PublishRoster(context.Background(), store, zap.NewNop(), "rp1")

	assert.ErrorIs(t, err, ErrComplianceViolations)
	assert.ErrorContains(t, err, "exceeds 76h limit")
	// Status must stay untouched when publication is blocked
	assert.Zero(t, store.updateCalls)
}

func TestPublishRoster_Success(t *testing.T) {
	start := time.Now().UTC().AddDate(0, 0, 10)
	store := &mockPublishRosterStore{
		period:      draftPeriod(start),
		assignments: cleanAssignments("m1", 8),
	}

	result, err := PublishRoster(context.Background(), store, zap.NewNop(), "rp1")
	require.NoError(t, err)

	assert.Equal(t, 1, store.updateCalls)
	assert.Equal(t, model.RosterPublished, store.updatedStatus)
	require.NotNil(t, store.updatedPublishedAt)
	assert.Equal(t, *store.updatedPublishedAt, result.PublishedAt)

	assert.WithinDuration(t, time.Now().UTC(), result.PublishedAt, time.Minute)
	assert.Equal(t, int(start.Sub(result.PublishedAt).Hours()/24), result.DaysInAdvance)
	assert.False(t, result.Compliance.HasViolations)
}

func TestPublishRoster_WarningsDoNotBlock(t *testing.T) {
	// 9 shifts: 72h triggers a warning but publication proceeds
	store := &mockPublishRosterStore{
		period:      draftPeriod(testMonday),
		assignments: cleanAssignments("m1", 9),
	}

	result, err := PublishRoster(context.Background(), store, zap.NewNop(), "rp1")
	require.NoError(t, err)

	assert.True(t, result.Compliance.HasWarnings)
	assert.Equal(t, 1, store.updateCalls)
}

func TestPublishRoster_UpdateStatusError(t *testing.T) {
	store := &mockPublishRosterStore{
		period:          draftPeriod(testMonday),
		assignments:     cleanAssignments("m1", 8),
		updateStatusErr: errors.New("connection refused"),
	}

	_, err := PublishRoster(context.Background(), store, zap.NewNop(), "rp1")

	assert.ErrorContains(t, err, "failed to update roster status")
}
