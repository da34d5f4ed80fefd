package services

import "errors"

var (
	// ErrRosterNotFound is returned when no roster period exists for the given id
	ErrRosterNotFound = errors.New("roster period not found")

	// ErrMemberNotFound is returned when no member exists for the given id
	ErrMemberNotFound = errors.New("member not found")

	// ErrComplianceViolations is returned when publishing a roster whose
	// assignments fail the compliance audit
	ErrComplianceViolations = errors.New("roster has compliance violations")

	// ErrInvalidStatusTransition is returned when a roster status change
	// would move backwards through the lifecycle
	ErrInvalidStatusTransition = errors.New("invalid roster status transition")
)
