package compliance

import (
	"fmt"
	"sort"
	"time"

	"github.com/noelwild/Watchtower/pkg/core/model"
)

// Warning thresholds applied to the current (trailing 14-day) fortnight
const (
	warnFortnightHours   = 65.0
	urgentFortnightHours = 80.0
	monitorNightStreak   = 5
)

// Evaluate runs the full EBA rule set over one member's shift history and
// returns a derived compliance report. The history does not need to be
// pre-sorted. The reference time now must be supplied by the caller so the
// trailing-fortnight calculations are deterministic.
func Evaluate(memberID string, history []model.ShiftRecord, now time.Time) model.ComplianceReport {
	if len(history) == 0 {
		return model.ComplianceReport{
			MemberID:   memberID,
			Status:     model.StatusCompliant,
			Violations: []string{},
			Warnings:   []string{},
			CheckedAt:  now,
		}
	}

	sorted := make([]model.ShiftRecord, len(history))
	copy(sorted, history)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date.Before(sorted[j].Date)
	})

	fortnightViolations := checkFortnightHours(sorted)
	breakViolations := checkTenHourBreak(sorted)
	nightViolations, nightWarnings := checkNightRecovery(sorted)
	restViolations, restWarnings := checkRestDays(sorted)
	hoursViolations := checkMaxWorkingHours(sorted)

	currentHours := currentFortnightHours(sorted, now)
	currentNights := trailingNightStreak(sorted)

	violations := []string{}
	violations = append(violations, fortnightViolations...)
	violations = append(violations, breakViolations...)
	violations = append(violations, nightViolations...)
	violations = append(violations, restViolations...)
	violations = append(violations, hoursViolations...)

	warnings := []string{}
	warnings = append(warnings, nightWarnings...)
	warnings = append(warnings, restWarnings...)

	if currentHours > warnFortnightHours {
		warnings = append(warnings, fmt.Sprintf(
			"Approaching 76h limit: currently at %.1fh this fortnight", currentHours))
	}
	if currentHours > urgentFortnightHours {
		warnings = append(warnings, "URGENT: Exceeding safe working hours")
	}
	if currentNights >= monitorNightStreak {
		warnings = append(warnings, fmt.Sprintf(
			"Currently working %d consecutive night shifts - monitor for recovery needs", currentNights))
	}

	status := model.StatusCompliant
	switch {
	case len(violations) > 0:
		status = model.StatusViolation
	case len(warnings) > 0:
		status = model.StatusWarning
	}

	return model.ComplianceReport{
		MemberID:          memberID,
		FortnightHours:    currentHours,
		ConsecutiveNights: currentNights,
		Status:            status,
		Violations:        violations,
		Warnings:          warnings,
		CheckedAt:         now,
	}
}

// currentFortnightHours sums shift hours over the trailing 14 calendar days
func currentFortnightHours(sorted []model.ShiftRecord, now time.Time) float64 {
	cutoff := now.AddDate(0, 0, -14)

	var total float64
	for _, s := range sorted {
		if !s.Date.Before(cutoff) {
			total += s.Hours()
		}
	}
	return total
}

// trailingNightStreak counts night shifts at the end of the sorted history
func trailingNightStreak(sorted []model.ShiftRecord) int {
	streak := 0
	for i := len(sorted) - 1; i >= 0; i-- {
		if !sorted[i].Type.IsNight() {
			break
		}
		streak++
	}
	return streak
}
