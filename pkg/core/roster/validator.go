package roster

import (
	"fmt"
	"sort"

	"github.com/noelwild/Watchtower/pkg/core/model"
)

// Post-allocation audit thresholds. This pass totals hours over the whole
// period rather than sliding 14-day windows, so its results deliberately
// differ from the history evaluator in pkg/core/compliance when a period
// spans more than one fortnight. Callers depend on each pass's semantics;
// do not unify them.
const (
	periodHoursViolation = 76.0
	periodHoursWarning   = 65.0
	nightRunViolation    = 7
	nightRunWarning      = 5
	minPeriodRestDays    = 4
	fortnightDays        = 14
)

// ValidateAssignments audits all assignments of one roster period and
// returns the aggregate compliance summary gating publication.
func ValidateAssignments(assignments []model.ShiftAssignment) ComplianceSummary {
	summary := ComplianceSummary{
		Violations: []string{},
		Warnings:   []string{},
	}

	byMember := make(map[string][]model.ShiftAssignment)
	var memberOrder []string
	for _, a := range assignments {
		if _, seen := byMember[a.MemberID]; !seen {
			memberOrder = append(memberOrder, a.MemberID)
		}
		byMember[a.MemberID] = append(byMember[a.MemberID], a)
	}

	for _, memberID := range memberOrder {
		shifts := byMember[memberID]

		var totalHours float64
		for _, s := range shifts {
			totalHours += s.Hours
		}
		if totalHours > periodHoursViolation {
			summary.Violations = append(summary.Violations, fmt.Sprintf(
				"Member %s: %.1fh exceeds 76h limit", memberID, totalHours))
		} else if totalHours > periodHoursWarning {
			summary.Warnings = append(summary.Warnings, fmt.Sprintf(
				"Member %s: %.1fh approaching 76h limit", memberID, totalHours))
		}

		maxNights := maxConsecutiveNightRun(shifts)
		if maxNights > nightRunViolation {
			summary.Violations = append(summary.Violations, fmt.Sprintf(
				"Member %s: %d consecutive night shifts", memberID, maxNights))
		} else if maxNights > nightRunWarning {
			summary.Warnings = append(summary.Warnings, fmt.Sprintf(
				"Member %s: %d consecutive night shifts", memberID, maxNights))
		}

		// Approximates the period as exactly one fortnight
		restDays := fortnightDays - len(shifts)
		if restDays < minPeriodRestDays {
			summary.Violations = append(summary.Violations, fmt.Sprintf(
				"Member %s: Only %d rest days", memberID, restDays))
		}
	}

	summary.HasViolations = len(summary.Violations) > 0
	summary.HasWarnings = len(summary.Warnings) > 0
	summary.MembersChecked = len(byMember)

	return summary
}

// maxConsecutiveNightRun returns the longest run of night shifts in date order
func maxConsecutiveNightRun(shifts []model.ShiftAssignment) int {
	sorted := make([]model.ShiftAssignment, len(shifts))
	copy(sorted, shifts)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date.Before(sorted[j].Date)
	})

	run := 0
	maxRun := 0
	for _, s := range sorted {
		if s.Type.IsNight() {
			run++
			if run > maxRun {
				maxRun = run
			}
		} else {
			run = 0
		}
	}
	return maxRun
}
