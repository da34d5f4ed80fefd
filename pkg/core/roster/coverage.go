package roster

import (
	"time"

	"github.com/noelwild/Watchtower/pkg/core/model"
)

// ShiftPattern is the fixed start/end/hours template for a shift type
type ShiftPattern struct {
	Start string
	End   string
	Hours float64
}

// PatternFor returns the fixed pattern for a shift type. All standard
// shifts are 8 hours.
func PatternFor(shiftType model.ShiftType) ShiftPattern {
	switch shiftType {
	case model.ShiftEarly:
		return ShiftPattern{Start: "06:00", End: "14:00", Hours: 8.0}
	case model.ShiftLate:
		return ShiftPattern{Start: "14:00", End: "22:00", Hours: 8.0}
	case model.ShiftNight:
		return ShiftPattern{Start: "22:00", End: "06:00", Hours: 8.0}
	case model.ShiftVan:
		return ShiftPattern{Start: "06:00", End: "14:00", Hours: 8.0}
	case model.ShiftWatchhouse:
		return ShiftPattern{Start: "06:00", End: "14:00", Hours: 8.0}
	case model.ShiftCorro:
		return ShiftPattern{Start: "09:00", End: "17:00", Hours: 8.0}
	}
	return ShiftPattern{Start: "06:00", End: "14:00", Hours: 8.0}
}

// requiredCoverage builds the per-shift-type staffing requirement for one day
func requiredCoverage(cfg GenerationConfig, date time.Time) map[model.ShiftType]int {
	coverage := make(map[model.ShiftType]int, len(model.AllShiftTypes))

	for _, shiftType := range model.AllShiftTypes {
		switch shiftType {
		case model.ShiftEarly:
			coverage[shiftType] = 2
		case model.ShiftLate:
			coverage[shiftType] = 2
		case model.ShiftNight:
			coverage[shiftType] = 1
		case model.ShiftVan:
			coverage[shiftType] = cfg.MinVanCoverage
		case model.ShiftWatchhouse:
			coverage[shiftType] = cfg.MinWatchhouseCoverage
		case model.ShiftCorro:
			if isWeekday(date) {
				coverage[shiftType] = 1
			} else {
				coverage[shiftType] = 0
			}
		}
	}

	// Corro is never staffed on weekends
	if !isWeekday(date) {
		coverage[model.ShiftCorro] = 0
	}

	return coverage
}

func isWeekday(date time.Time) bool {
	wd := date.Weekday()
	return wd != time.Saturday && wd != time.Sunday
}
