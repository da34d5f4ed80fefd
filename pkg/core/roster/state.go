package roster

// memberRunState tracks one member's running totals across a single
// generation run. Owned exclusively by that run and discarded with it.
type memberRunState struct {
	hours             float64
	consecutiveNights int
	shiftCount        int
	lastEndTime       string // time-of-day the member's most recent assigned shift ended, "" if none
}

// allocationState is the per-run working state of the allocation engine.
// Created at the start of a generation call, never shared across calls.
type allocationState struct {
	members map[string]*memberRunState
}

func newAllocationState(memberIDs []string) *allocationState {
	members := make(map[string]*memberRunState, len(memberIDs))
	for _, id := range memberIDs {
		members[id] = &memberRunState{}
	}
	return &allocationState{members: members}
}

func (s *allocationState) stateFor(memberID string) *memberRunState {
	if st, ok := s.members[memberID]; ok {
		return st
	}
	st := &memberRunState{}
	s.members[memberID] = st
	return st
}

// recordAssignment updates the member's running totals after a shift is
// assigned. Must be called before the next shift type is evaluated so
// later eligibility checks see the new hours and night streak.
func (s *allocationState) recordAssignment(memberID string, pattern ShiftPattern, night bool) {
	st := s.stateFor(memberID)
	st.hours += pattern.Hours
	st.shiftCount++
	st.lastEndTime = pattern.End

	if night {
		st.consecutiveNights++
	} else {
		st.consecutiveNights = 0
	}
}
