package compliance

import (
	"fmt"
	"math"
	"time"

	"github.com/noelwild/Watchtower/pkg/core/model"
)

// EBA rule thresholds. Fixed example values, not a complete legal rule set.
const (
	fortnightLimitHours  = 76.0
	minBreakHours        = 10.0
	maxNightStreak       = 7
	nightRecoveryHours   = 24.0
	minRestDaysFortnight = 4
	weeklyLimitHours     = 60.0
	postWeekBreakHours   = 48.0
)

const dateFormat = "2006-01-02"

// checkFortnightHours checks the sliding 76-hour fortnight limit.
// A 14-day window is anchored at every shift's date, not calendar-aligned.
func checkFortnightHours(sorted []model.ShiftRecord) []string {
	var violations []string

	for _, anchor := range sorted {
		windowStart := anchor.Date
		windowEnd := windowStart.AddDate(0, 0, 14)

		var total float64
		for _, s := range sorted {
			if !s.Date.Before(windowStart) && s.Date.Before(windowEnd) {
				total += s.Hours()
			}
		}

		if total > fortnightLimitHours {
			violations = append(violations, fmt.Sprintf(
				"Exceeded 76h limit: %.1fh in fortnight starting %s",
				total, windowStart.Format(dateFormat)))
		}
	}

	return violations
}

// checkTenHourBreak checks the minimum break between consecutive shifts
func checkTenHourBreak(sorted []model.ShiftRecord) []string {
	var violations []string

	for i := 1; i < len(sorted); i++ {
		gap := sorted[i].Date.Sub(sorted[i-1].Date).Hours()
		if gap < minBreakHours {
			violations = append(violations, fmt.Sprintf(
				"Only %.1fh break between shifts on %s",
				gap, sorted[i].Date.Format(dateFormat)))
		}
	}

	return violations
}

// checkNightRecovery tracks the consecutive-night streak and flags missing
// 24-hour recovery periods. The streak resets on the first non-night shift.
func checkNightRecovery(sorted []model.ShiftRecord) (violations, warnings []string) {
	streak := 0

	for i, shift := range sorted {
		if !shift.Type.IsNight() {
			streak = 0
			continue
		}

		streak++

		if streak == maxNightStreak-1 {
			warnings = append(warnings,
				"Approaching 7 consecutive night shifts - recovery period required after next night shift")
		}

		if streak >= maxNightStreak {
			if i+1 < len(sorted) {
				toNext := sorted[i+1].Date.Sub(shift.Date).Hours()
				if toNext < nightRecoveryHours {
					violations = append(violations, fmt.Sprintf(
						"7+ consecutive night shifts without 24h recovery - ended %s",
						shift.Date.Format(dateFormat)))
				}
			} else {
				// Streak still open at the end of history
				violations = append(violations, fmt.Sprintf(
					"Currently working %d consecutive night shifts - immediate 24h recovery required",
					streak))
			}
		}
	}

	return violations, warnings
}

// checkRestDays checks rest-day compliance: at least 4 rest days per
// sequential 14-day block, and an expected yearly rate of 2+ consecutive
// rest-day runs scaled to the history span.
func checkRestDays(sorted []model.ShiftRecord) (violations, warnings []string) {
	if len(sorted) == 0 {
		return nil, nil
	}

	startDate := dateOnly(sorted[0].Date)
	endDate := dateOnly(sorted[len(sorted)-1].Date)

	worked := make(map[time.Time]bool)
	for _, s := range sorted {
		worked[dateOnly(s.Date)] = true
	}

	// Sequential non-overlapping fortnight blocks from the first shift date
	for blockStart := startDate; !blockStart.After(endDate); blockStart = blockStart.AddDate(0, 0, 14) {
		restDays := 0
		for offset := 0; offset < 14; offset++ {
			day := blockStart.AddDate(0, 0, offset)
			if !worked[day] && !day.After(endDate) {
				restDays++
			}
		}

		if restDays < minRestDaysFortnight {
			violations = append(violations, fmt.Sprintf(
				"Only %d rest days in fortnight starting %s (minimum: 4)",
				restDays, blockStart.Format(dateFormat)))
		}
	}

	// Runs of 2+ consecutive rest days across the full span
	restRuns := 0
	runLength := 0
	for day := startDate; !day.After(endDate); day = day.AddDate(0, 0, 1) {
		if !worked[day] {
			runLength++
			continue
		}
		if runLength >= 2 {
			restRuns++
		}
		runLength = 0
	}
	if runLength >= 2 {
		restRuns++
	}

	// 15 runs of 2+ consecutive rest days expected per year, scaled to the span
	weeksCovered := endDate.Sub(startDate).Hours() / 24 / 7
	expectedRuns := int(math.Round(weeksCovered / 52 * 15))

	if restRuns < expectedRuns && weeksCovered > 4 {
		warnings = append(warnings, fmt.Sprintf(
			"Only %d periods of 2+ consecutive rest days (expected ~%d for this period)",
			restRuns, expectedRuns))
	}

	return violations, warnings
}

// checkMaxWorkingHours checks the sliding 60-hour weekly limit and the
// 48-hour break required after an over-limit week.
func checkMaxWorkingHours(sorted []model.ShiftRecord) []string {
	var violations []string

	for _, anchor := range sorted {
		weekStart := anchor.Date
		weekEnd := weekStart.AddDate(0, 0, 7)

		var total float64
		for _, s := range sorted {
			if !s.Date.Before(weekStart) && s.Date.Before(weekEnd) {
				total += s.Hours()
			}
		}

		if total <= weeklyLimitHours {
			continue
		}

		violations = append(violations, fmt.Sprintf(
			"Exceeded 60h in 7 days: %.1fh starting %s",
			total, weekStart.Format(dateFormat)))

		for _, s := range sorted {
			if s.Date.Before(weekEnd) {
				continue
			}
			if s.Date.Sub(weekEnd).Hours() < postWeekBreakHours {
				violations = append(violations,
					"No 48h break after exceeding 60h weekly limit")
			}
			break
		}
	}

	return violations
}

// dateOnly truncates a timestamp to its calendar date
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
