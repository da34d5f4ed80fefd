package services

import (
	"fmt"
	"time"

	"github.com/teambition/rrule-go"

	"github.com/noelwild/Watchtower/pkg/core/model"
)

// calculateRosterDates expands a roster period into its daily date
// sequence using a daily recurrence rule
func calculateRosterDates(periodStart time.Time, weeks int) ([]time.Time, error) {
	rule, err := rrule.NewRRule(rrule.ROption{
		Freq:    rrule.DAILY,
		Count:   weeks * 7,
		Dtstart: periodStart,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to build roster date rule: %w", err)
	}

	return rule.All(), nil
}

// nextMonday returns the first Monday strictly after the given time,
// truncated to midnight
func nextMonday(now time.Time) time.Time {
	daysAhead := (int(time.Monday) - int(now.Weekday()) + 7) % 7
	if daysAhead == 0 {
		daysAhead = 7
	}
	next := now.AddDate(0, 0, daysAhead)
	return time.Date(next.Year(), next.Month(), next.Day(), 0, 0, 0, 0, now.Location())
}

// MemberRosterSummary aggregates one member's assignments within a period
type MemberRosterSummary struct {
	TotalShifts int
	TotalHours  float64
	ShiftTypes  map[model.ShiftType]int
}

// summarizeAssignments groups assignments per member with shift-type counts
func summarizeAssignments(assignments []model.ShiftAssignment) map[string]*MemberRosterSummary {
	summary := make(map[string]*MemberRosterSummary)

	for _, a := range assignments {
		s, ok := summary[a.MemberID]
		if !ok {
			s = &MemberRosterSummary{ShiftTypes: make(map[model.ShiftType]int)}
			summary[a.MemberID] = s
		}
		s.TotalShifts++
		s.TotalHours += a.Hours
		s.ShiftTypes[a.Type]++
	}

	return summary
}
