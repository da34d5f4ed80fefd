package roster

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/noelwild/Watchtower/pkg/core/model"
)

// GenerationConfig controls one roster generation run
type GenerationConfig struct {
	Station               model.Station `validate:"required"`
	PeriodWeeks           int           `validate:"min=1"`
	MinVanCoverage        int           `validate:"min=0"`
	MinWatchhouseCoverage int           `validate:"min=0"`
	MaxConsecutiveNights  int           `validate:"min=1"`
	// MinRestDaysPerFortnight is advisory only. It is reported on, never
	// enforced as a hard constraint inside the allocator.
	MinRestDaysPerFortnight int     `validate:"min=0"`
	MaxFortnightHours       float64 `validate:"gt=0"`

	// Accepted for compatibility with stored configs. The current
	// algorithm does not change behavior based on these flags.
	EnableFatigueBalancing  bool
	EnablePreferenceWeights bool
	CorroRotationPriority   bool
}

// DefaultGenerationConfig returns the standard config for a station
func DefaultGenerationConfig(station model.Station) GenerationConfig {
	return GenerationConfig{
		Station:                 station,
		PeriodWeeks:             2,
		MinVanCoverage:          2,
		MinWatchhouseCoverage:   1,
		MaxConsecutiveNights:    7,
		MinRestDaysPerFortnight: 4,
		MaxFortnightHours:       76.0,
		EnableFatigueBalancing:  true,
		EnablePreferenceWeights: true,
		CorroRotationPriority:   true,
	}
}

var validate = validator.New()

// Validate checks the config for malformed values (negative coverage
// counts, non-positive period length)
func (c GenerationConfig) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("roster generation config validation failed: %w", err)
	}
	return nil
}

// ComplianceSummary is the aggregate result of auditing a generated
// roster's assignments
type ComplianceSummary struct {
	HasViolations  bool
	HasWarnings    bool
	Violations     []string
	Warnings       []string
	MembersChecked int
}
