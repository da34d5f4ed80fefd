package roster

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/noelwild/Watchtower/pkg/core/model"
)

func TestPatternFor_StandardShifts(t *testing.T) {
	assert.Equal(t, ShiftPattern{Start: "06:00", End: "14:00", Hours: 8.0}, PatternFor(model.ShiftEarly))
	assert.Equal(t, ShiftPattern{Start: "14:00", End: "22:00", Hours: 8.0}, PatternFor(model.ShiftLate))
	assert.Equal(t, ShiftPattern{Start: "22:00", End: "06:00", Hours: 8.0}, PatternFor(model.ShiftNight))
	assert.Equal(t, ShiftPattern{Start: "06:00", End: "14:00", Hours: 8.0}, PatternFor(model.ShiftVan))
	assert.Equal(t, ShiftPattern{Start: "06:00", End: "14:00", Hours: 8.0}, PatternFor(model.ShiftWatchhouse))
	assert.Equal(t, ShiftPattern{Start: "09:00", End: "17:00", Hours: 8.0}, PatternFor(model.ShiftCorro))
}

func TestRequiredCoverage_Weekday(t *testing.T) {
	cfg := DefaultGenerationConfig(model.StationGeelong)

	coverage := requiredCoverage(cfg, monday)

	assert.Equal(t, 2, coverage[model.ShiftEarly])
	assert.Equal(t, 2, coverage[model.ShiftLate])
	assert.Equal(t, 1, coverage[model.ShiftNight])
	assert.Equal(t, cfg.MinVanCoverage, coverage[model.ShiftVan])
	assert.Equal(t, cfg.MinWatchhouseCoverage, coverage[model.ShiftWatchhouse])
	assert.Equal(t, 1, coverage[model.ShiftCorro])
}

func TestRequiredCoverage_WeekendDropsCorro(t *testing.T) {
	cfg := DefaultGenerationConfig(model.StationGeelong)

	coverage := requiredCoverage(cfg, saturday)

	assert.Equal(t, 0, coverage[model.ShiftCorro])
	// Every other requirement is unchanged on weekends
	assert.Equal(t, 2, coverage[model.ShiftEarly])
	assert.Equal(t, 1, coverage[model.ShiftNight])
}

func TestRequiredCoverage_ConfiguredCounts(t *testing.T) {
	cfg := DefaultGenerationConfig(model.StationCorio)
	cfg.MinVanCoverage = 3
	cfg.MinWatchhouseCoverage = 0

	coverage := requiredCoverage(cfg, monday)

	assert.Equal(t, 3, coverage[model.ShiftVan])
	assert.Equal(t, 0, coverage[model.ShiftWatchhouse])
}
