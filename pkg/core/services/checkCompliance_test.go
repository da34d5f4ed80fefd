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

// mockCheckComplianceStore implements CheckComplianceStore for testing
type mockCheckComplianceStore struct {
	member        *model.Member
	history       []model.ShiftRecord
	getMemberErr  error
	getHistoryErr error
	requestedFrom time.Time
}

func (m *mockCheckComplianceStore) GetMember(ctx context.Context, memberID string) (*model.Member, error) {
	if m.getMemberErr != nil {
		return nil, m.getMemberErr
	}
	return m.member, nil
}

func (m *mockCheckComplianceStore) GetShiftHistory(ctx context.Context, memberID string, since time.Time) ([]model.ShiftRecord, error) {
	m.requestedFrom = since
	if m.getHistoryErr != nil {
		return nil, m.getHistoryErr
	}
	return m.history, nil
}

func TestCheckCompliance_MemberNotFound(t *testing.T) {
	store := &mockCheckComplianceStore{}

	_, err := CheckCompliance(context.Background(), store, zap.NewNop(), "missing", testMonday)

	assert.ErrorIs(t, err, ErrMemberNotFound)
	assert.ErrorContains(t, err, "missing")
}

func TestCheckCompliance_GetMemberError(t *testing.T) {
	store := &mockCheckComplianceStore{getMemberErr: errors.New("connection refused")}

	_, err := CheckCompliance(context.Background(), store, zap.NewNop(), "m1", testMonday)

	assert.ErrorContains(t, err, "failed to fetch member")
}

func TestCheckCompliance_GetHistoryError(t *testing.T) {
	member := rosterMembers(1)[0]
	store := &mockCheckComplianceStore{member: &member, getHistoryErr: errors.New("timeout")}

	_, err := CheckCompliance(context.Background(), store, zap.NewNop(), member.ID, testMonday)

	assert.ErrorContains(t, err, "failed to fetch shift history")
}

func TestCheckCompliance_FetchesFourWeeksOfHistory(t *testing.T) {
	member := rosterMembers(1)[0]
	store := &mockCheckComplianceStore{member: &member}

	_, err := CheckCompliance(context.Background(), store, zap.NewNop(), member.ID, testMonday)
	require.NoError(t, err)

	assert.Equal(t, testMonday.AddDate(0, 0, -28), store.requestedFrom)
}

func TestCheckCompliance_EmptyHistoryIsCompliant(t *testing.T) {
	member := rosterMembers(1)[0]
	store := &mockCheckComplianceStore{member: &member}

	report, err := CheckCompliance(context.Background(), store, zap.NewNop(), member.ID, testMonday)
	require.NoError(t, err)

	assert.Equal(t, member.ID, report.MemberID)
	assert.Equal(t, model.StatusCompliant, report.Status)
	assert.Equal(t, testMonday, report.CheckedAt)
}

func TestCheckCompliance_ViolationSurfaces(t *testing.T) {
	member := rosterMembers(1)[0]

	// 10 shifts of 8h within the trailing fortnight: over the 76h limit
	var history []model.ShiftRecord
	for i := 0; i <= 13; i++ {
		if i == 3 || i == 6 || i == 9 || i == 12 {
			continue
		}
		history = append(history, model.ShiftRecord{
			MemberID:  member.ID,
			Type:      model.ShiftEarly,
			Date:      testMonday.AddDate(0, 0, i-13),
			StartTime: "06:00",
			EndTime:   "14:00",
		})
	}
	store := &mockCheckComplianceStore{member: &member, history: history}

	report, err := CheckCompliance(context.Background(), store, zap.NewNop(), member.ID, testMonday)
	require.NoError(t, err)

	assert.Equal(t, model.StatusViolation, report.Status)
	assert.Equal(t, 80.0, report.FortnightHours)
	require.NotEmpty(t, report.Violations)
	assert.Contains(t, report.Violations[0], "76h")
}
