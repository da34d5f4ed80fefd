package roster

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/noelwild/Watchtower/pkg/core/model"
)

// monday is a fixed weekday anchor for scoring and allocation tests
var monday = time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)

// saturday is the weekend anchor following monday
var saturday = time.Date(2025, 6, 7, 0, 0, 0, 0, time.UTC)

func neutralMember(id string) model.Member {
	return model.Member{
		ID:      id,
		Name:    "Member " + id,
		Station: model.StationGeelong,
		Active:  true,
		Preferences: model.MemberPreferences{
			NightShiftTolerance: 2,
		},
	}
}

func TestPreferenceScore_Neutral(t *testing.T) {
	member := neutralMember("m1")

	assert.Equal(t, 50.0, PreferenceScore(member, model.ShiftEarly, monday))
}

func TestPreferenceScore_NightAverse(t *testing.T) {
	member := neutralMember("m1")
	member.Preferences.NightShiftTolerance = 0

	assert.Equal(t, 20.0, PreferenceScore(member, model.ShiftNight, monday))
	// Aversion only applies to night shifts
	assert.Equal(t, 50.0, PreferenceScore(member, model.ShiftEarly, monday))
}

func TestPreferenceScore_NightTolerant(t *testing.T) {
	member := neutralMember("m1")
	member.Preferences.NightShiftTolerance = 8

	assert.Equal(t, 70.0, PreferenceScore(member, model.ShiftNight, monday))
}

func TestPreferenceScore_MidToleranceNeutralOnNights(t *testing.T) {
	member := neutralMember("m1")
	member.Preferences.NightShiftTolerance = 4

	assert.Equal(t, 50.0, PreferenceScore(member, model.ShiftNight, monday))
}

func TestPreferenceScore_RecallWillingness(t *testing.T) {
	member := neutralMember("m1")
	member.Preferences.RecallWillingness = true

	assert.Equal(t, 60.0, PreferenceScore(member, model.ShiftLate, monday))
}

func TestPreferenceScore_PreferredRestDay(t *testing.T) {
	member := neutralMember("m1")
	member.Preferences.PreferredRestDays = []string{"Saturday"}

	assert.Equal(t, 25.0, PreferenceScore(member, model.ShiftEarly, saturday))
	// Other days are unaffected
	assert.Equal(t, 50.0, PreferenceScore(member, model.ShiftEarly, monday))
}

func TestWorkloadBalanceScore_Flat(t *testing.T) {
	a := neutralMember("m1")
	b := neutralMember("m2")
	b.Preferences.NightShiftTolerance = 8

	assert.Equal(t, WorkloadBalanceScore(a, model.ShiftEarly), WorkloadBalanceScore(b, model.ShiftNight))
}
