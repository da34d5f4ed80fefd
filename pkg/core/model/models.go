package model

import "time"

// ShiftType identifies one of the fixed duty types a member can be rostered on
type ShiftType string

const (
	ShiftEarly      ShiftType = "early"
	ShiftLate       ShiftType = "late"
	ShiftNight      ShiftType = "night"
	ShiftVan        ShiftType = "van"
	ShiftWatchhouse ShiftType = "watchhouse"
	ShiftCorro      ShiftType = "corro"
)

// AllShiftTypes is the fixed allocation order used by the roster engine
var AllShiftTypes = []ShiftType{
	ShiftEarly,
	ShiftLate,
	ShiftNight,
	ShiftVan,
	ShiftWatchhouse,
	ShiftCorro,
}

func (s ShiftType) IsValid() bool {
	switch s {
	case ShiftEarly, ShiftLate, ShiftNight, ShiftVan, ShiftWatchhouse, ShiftCorro:
		return true
	}
	return false
}

// IsNight reports whether the shift type counts toward consecutive-night tracking
func (s ShiftType) IsNight() bool {
	return s == ShiftNight
}

// Station identifies an organizational site a member or roster belongs to
type Station string

const (
	StationGeelong Station = "geelong"
	StationCorio   Station = "corio"
)

// RosterStatus is the lifecycle state of a roster period.
// Transitions are monotonic: draft -> published -> approved -> archived.
type RosterStatus string

const (
	RosterDraft     RosterStatus = "draft"
	RosterPublished RosterStatus = "published"
	RosterApproved  RosterStatus = "approved"
	RosterArchived  RosterStatus = "archived"
)

// rosterStatusRank orders statuses for monotonic transition checks
func rosterStatusRank(s RosterStatus) int {
	switch s {
	case RosterDraft:
		return 0
	case RosterPublished:
		return 1
	case RosterApproved:
		return 2
	case RosterArchived:
		return 3
	}
	return -1
}

// CanTransitionTo reports whether moving from s to next is a legal forward step
func (s RosterStatus) CanTransitionTo(next RosterStatus) bool {
	from := rosterStatusRank(s)
	to := rosterStatusRank(next)
	return from >= 0 && to >= 0 && to > from
}

// MemberPreferences holds a member's rostering preferences
type MemberPreferences struct {
	NightShiftTolerance    int
	RecallWillingness      bool
	AvoidConsecutiveDoubles bool
	AvoidFourEarlies       bool
	PreferredRestDays      []string // Weekday names, e.g. "Saturday"
	MedicalLimitations     string
	WelfareNotes           string
}

// DefaultPreferences returns the preference set applied to members without a stored record
func DefaultPreferences() MemberPreferences {
	return MemberPreferences{
		NightShiftTolerance:     2,
		RecallWillingness:       true,
		AvoidConsecutiveDoubles: true,
		AvoidFourEarlies:        true,
	}
}

// PrefersRestOn reports whether the weekday name is one of the member's preferred rest days
func (p MemberPreferences) PrefersRestOn(dayName string) bool {
	for _, d := range p.PreferredRestDays {
		if d == dayName {
			return true
		}
	}
	return false
}

// Member represents a rostered employee. Treated as an immutable snapshot
// for the duration of one allocation run.
type Member struct {
	ID             string
	VPNumber       string
	Name           string
	Email          string
	Station        Station
	Rank           string
	SeniorityYears int
	Preferences    MemberPreferences
	Active         bool
}

// ShiftRecord is a historical shift worked by a member. Append-only.
type ShiftRecord struct {
	ID            string
	MemberID      string
	Type          ShiftType
	Date          time.Time
	StartTime     string // "06:00"
	EndTime       string // "14:00"
	OvertimeHours float64
	WasRecalled   bool
	Notes         string
}

// Hours returns the shift's contribution to any accounting window:
// the standard 8-hour shift length plus overtime.
func (s ShiftRecord) Hours() float64 {
	return 8 + s.OvertimeHours
}

// RosterPeriod is one multi-week rostering window for a station
type RosterPeriod struct {
	ID          string
	Station     Station
	StartDate   time.Time
	EndDate     time.Time
	Status      RosterStatus
	CreatedBy   string
	CreatedAt   time.Time
	PublishedAt *time.Time
}

// ShiftAssignment is a single member/date/shift-type allocation produced by
// the roster engine. Never mutated after creation.
type ShiftAssignment struct {
	ID               string
	RosterPeriodID   string
	MemberID         string
	Date             time.Time
	Type             ShiftType
	StartTime        string
	EndTime          string
	Hours            float64
	IsOvertime       bool
	AssignedBy       string
	AssignmentReason string
	CreatedAt        time.Time
}

// ComplianceStatus is the worst rule-evaluation category present for a member
type ComplianceStatus string

const (
	StatusCompliant ComplianceStatus = "compliant"
	StatusWarning   ComplianceStatus = "warning"
	StatusViolation ComplianceStatus = "violation"
)

// ComplianceReport is the derived result of evaluating one member's shift
// history against the EBA rule set. Always computed on demand.
type ComplianceReport struct {
	MemberID          string
	FortnightHours    float64
	ConsecutiveNights int
	Status            ComplianceStatus
	Violations        []string
	Warnings          []string
	CheckedAt         time.Time
}
