package roster

import (
	"time"

	"github.com/noelwild/Watchtower/pkg/core/model"
)

// Scoring adjustments applied on top of the base score. Scores are
// comparison keys only; ties resolve by candidate order via stable sort.
const (
	baseScore            = 50.0
	nightAversePenalty   = 30.0 // night tolerance 0
	nightTolerantBonus   = 20.0 // night tolerance >= 6
	recallWillingBonus   = 10.0
	preferredRestPenalty = 25.0
)

// PreferenceScore scores a member for a shift type on a date based on
// their stored preferences
func PreferenceScore(member model.Member, shiftType model.ShiftType, date time.Time) float64 {
	score := baseScore

	if shiftType.IsNight() {
		switch tolerance := member.Preferences.NightShiftTolerance; {
		case tolerance == 0:
			score -= nightAversePenalty
		case tolerance >= 6:
			score += nightTolerantBonus
		}
	}

	if member.Preferences.RecallWillingness {
		score += recallWillingBonus
	}

	if member.Preferences.PrefersRestOn(date.Weekday().String()) {
		score -= preferredRestPenalty
	}

	return score
}

// WorkloadBalanceScore is the fairness term added to every candidate's
// score. Currently a flat constant; computing true workload variance here
// would change ranking outcomes, so any replacement needs its own review.
func WorkloadBalanceScore(member model.Member, shiftType model.ShiftType) float64 {
	return 25.0
}
