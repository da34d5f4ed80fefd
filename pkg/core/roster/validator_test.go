package roster

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noelwild/Watchtower/pkg/core/model"
)

func assignmentOn(memberID string, date time.Time, shiftType model.ShiftType) model.ShiftAssignment {
	pattern := PatternFor(shiftType)
	return model.ShiftAssignment{
		ID:             "a-" + memberID + date.Format("20060102") + string(shiftType),
		RosterPeriodID: "rp1",
		MemberID:       memberID,
		Date:           date,
		Type:           shiftType,
		StartTime:      pattern.Start,
		EndTime:        pattern.End,
		Hours:          pattern.Hours,
	}
}

func TestValidateAssignments_Empty(t *testing.T) {
	summary := ValidateAssignments(nil)

	assert.False(t, summary.HasViolations)
	assert.False(t, summary.HasWarnings)
	assert.Empty(t, summary.Violations)
	assert.Empty(t, summary.Warnings)
	assert.Equal(t, 0, summary.MembersChecked)
}

func TestValidateAssignments_CleanRoster(t *testing.T) {
	// 8 shifts, 64h, no nights: under every threshold
	var assignments []model.ShiftAssignment
	for i := 0; i < 8; i++ {
		assignments = append(assignments, assignmentOn("m1", monday.AddDate(0, 0, i), model.ShiftEarly))
	}

	summary := ValidateAssignments(assignments)

	assert.False(t, summary.HasViolations)
	assert.False(t, summary.HasWarnings)
	assert.Equal(t, 1, summary.MembersChecked)
}

func TestValidateAssignments_PeriodHoursViolation(t *testing.T) {
	// 10 shifts: 80h over the period
	var assignments []model.ShiftAssignment
	for i := 0; i < 10; i++ {
		assignments = append(assignments, assignmentOn("m1", monday.AddDate(0, 0, i), model.ShiftEarly))
	}

	summary := ValidateAssignments(assignments)

	assert.True(t, summary.HasViolations)
	require.Len(t, summary.Violations, 1)
	assert.Contains(t, summary.Violations[0], "80.0h exceeds 76h limit")
	assert.Contains(t, summary.Violations[0], "m1")
}

func TestValidateAssignments_PeriodHoursWarning(t *testing.T) {
	// 9 shifts: 72h, over the 65h warning line but under the limit
	var assignments []model.ShiftAssignment
	for i := 0; i < 9; i++ {
		assignments = append(assignments, assignmentOn("m1", monday.AddDate(0, 0, i), model.ShiftEarly))
	}

	summary := ValidateAssignments(assignments)

	assert.False(t, summary.HasViolations)
	assert.True(t, summary.HasWarnings)
	require.Len(t, summary.Warnings, 1)
	assert.Contains(t, summary.Warnings[0], "approaching 76h limit")
}

func TestValidateAssignments_NightRunViolation(t *testing.T) {
	var assignments []model.ShiftAssignment
	for i := 0; i < 8; i++ {
		assignments = append(assignments, assignmentOn("m1", monday.AddDate(0, 0, i), model.ShiftNight))
	}

	summary := ValidateAssignments(assignments)

	assert.True(t, summary.HasViolations)
	require.Len(t, summary.Violations, 1)
	assert.Contains(t, summary.Violations[0], "8 consecutive night shifts")
}

func TestValidateAssignments_NightRunWarning(t *testing.T) {
	var assignments []model.ShiftAssignment
	for i := 0; i < 6; i++ {
		assignments = append(assignments, assignmentOn("m1", monday.AddDate(0, 0, i), model.ShiftNight))
	}

	summary := ValidateAssignments(assignments)

	assert.False(t, summary.HasViolations)
	require.Len(t, summary.Warnings, 1)
	assert.Contains(t, summary.Warnings[0], "6 consecutive night shifts")
}

func TestValidateAssignments_NightRunBrokenByDayShift(t *testing.T) {
	var assignments []model.ShiftAssignment
	for i := 0; i < 4; i++ {
		assignments = append(assignments, assignmentOn("m1", monday.AddDate(0, 0, i), model.ShiftNight))
	}
	assignments = append(assignments, assignmentOn("m1", monday.AddDate(0, 0, 4), model.ShiftLate))
	for i := 5; i < 9; i++ {
		assignments = append(assignments, assignmentOn("m1", monday.AddDate(0, 0, i), model.ShiftNight))
	}

	summary := ValidateAssignments(assignments)

	// Two runs of 4: no run reaches the warning line
	for _, w := range summary.Warnings {
		assert.NotContains(t, w, "consecutive night shifts")
	}
	assert.False(t, summary.HasViolations)
}

func TestValidateAssignments_RestDayViolation(t *testing.T) {
	// 11 day shifts leave only 3 rest days in the fortnight approximation
	var assignments []model.ShiftAssignment
	for i := 0; i < 11; i++ {
		assignments = append(assignments, assignmentOn("m1", monday.AddDate(0, 0, i), model.ShiftEarly))
	}

	summary := ValidateAssignments(assignments)

	assert.True(t, summary.HasViolations)
	require.Len(t, summary.Violations, 2)
	assert.Contains(t, summary.Violations[0], "88.0h exceeds 76h limit")
	assert.Contains(t, summary.Violations[1], "Only 3 rest days")
}

func TestValidateAssignments_MemberOrderIsFirstAppearance(t *testing.T) {
	var assignments []model.ShiftAssignment
	for i := 0; i < 10; i++ {
		assignments = append(assignments, assignmentOn("zulu", monday.AddDate(0, 0, i), model.ShiftEarly))
	}
	for i := 0; i < 10; i++ {
		assignments = append(assignments, assignmentOn("alpha", monday.AddDate(0, 0, i), model.ShiftEarly))
	}

	summary := ValidateAssignments(assignments)

	require.Len(t, summary.Violations, 2)
	assert.Contains(t, summary.Violations[0], "zulu")
	assert.Contains(t, summary.Violations[1], "alpha")
	assert.Equal(t, 2, summary.MembersChecked)
}

func TestMaxConsecutiveNightRun_UnsortedInput(t *testing.T) {
	shifts := []model.ShiftAssignment{
		assignmentOn("m1", monday.AddDate(0, 0, 2), model.ShiftNight),
		assignmentOn("m1", monday, model.ShiftNight),
		assignmentOn("m1", monday.AddDate(0, 0, 3), model.ShiftEarly),
		assignmentOn("m1", monday.AddDate(0, 0, 1), model.ShiftNight),
	}

	assert.Equal(t, 3, maxConsecutiveNightRun(shifts))
}
