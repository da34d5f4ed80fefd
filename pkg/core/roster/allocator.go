package roster

import (
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/noelwild/Watchtower/pkg/core/model"
)

// nightEndTime is the time-of-day a night shift ends. Used by the
// turnaround guard, which compares literal time-of-day strings rather
// than elapsed hours.
var nightEndTime = PatternFor(model.ShiftNight).End

// candidate pairs a member with their score for one shift-type/date slot
type candidate struct {
	member model.Member
	score  float64
}

// GenerateAssignments runs the day-by-day greedy allocation over the given
// roster dates. For each day it walks the fixed shift-type order, filters
// members against the hard constraints, ranks the rest by score, and
// assigns the top candidates. Single pass, no backtracking: earlier days
// are never revisited when later days run short.
//
// When fewer eligible members exist than a slot requires, the slot is
// left under-covered and no error is raised.
func GenerateAssignments(rosterPeriodID string, dates []time.Time, members []model.Member, cfg GenerationConfig) []model.ShiftAssignment {
	state := newAllocationState(memberIDs(members))
	var assignments []model.ShiftAssignment

	for _, date := range dates {
		coverage := requiredCoverage(cfg, date)

		for _, shiftType := range model.AllShiftTypes {
			required := coverage[shiftType]
			if required == 0 {
				continue
			}

			pattern := PatternFor(shiftType)
			eligible := eligibleCandidates(state, members, shiftType, pattern, date, cfg)

			// Stable sort keeps original member order on equal scores
			sort.SliceStable(eligible, func(i, j int) bool {
				return eligible[i].score > eligible[j].score
			})

			if len(eligible) > required {
				eligible = eligible[:required]
			}

			for _, selected := range eligible {
				assignments = append(assignments, model.ShiftAssignment{
					ID:               uuid.NewString(),
					RosterPeriodID:   rosterPeriodID,
					MemberID:         selected.member.ID,
					Date:             date,
					Type:             shiftType,
					StartTime:        pattern.Start,
					EndTime:          pattern.End,
					Hours:            pattern.Hours,
					AssignedBy:       "system",
					AssignmentReason: fmt.Sprintf("automatic_allocation_score_%.1f", selected.score),
					CreatedAt:        time.Now().UTC(),
				})

				state.recordAssignment(selected.member.ID, pattern, shiftType.IsNight())
			}
		}
	}

	return assignments
}

// eligibleCandidates filters members against the hard constraints and
// scores the survivors
func eligibleCandidates(state *allocationState, members []model.Member, shiftType model.ShiftType, pattern ShiftPattern, date time.Time, cfg GenerationConfig) []candidate {
	var eligible []candidate

	for _, member := range members {
		st := state.stateFor(member.ID)

		// Projected fortnight hours across the whole run
		if st.hours+pattern.Hours > cfg.MaxFortnightHours {
			continue
		}

		if shiftType.IsNight() && st.consecutiveNights >= cfg.MaxConsecutiveNights {
			continue
		}

		// Immediate-turnaround guard: a shift starting at the night-shift
		// end time straight after a shift that ended at it
		if st.shiftCount > 0 && st.lastEndTime == nightEndTime && pattern.Start == nightEndTime {
			continue
		}

		score := PreferenceScore(member, shiftType, date) + WorkloadBalanceScore(member, shiftType)
		eligible = append(eligible, candidate{member: member, score: score})
	}

	return eligible
}

func memberIDs(members []model.Member) []string {
	ids := make([]string, len(members))
	for i, m := range members {
		ids[i] = m.ID
	}
	return ids
}
