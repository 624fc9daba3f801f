package order

import (
	"fmt"

	"pizzeria/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions to ensure
// orders follow the kitchen workflow.
//
// State transitions:
//
//	Pending ──> InProgress ──> Ready ──> Completed
//
// The progression is strictly monotonic: no transition moves an order
// backward or skips a state, and Completed is terminal.
//
// Status is a value object that validates state transitions and provides
// string representations for persistence and display.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status when an order is first created.
	// Orders in this status are waiting to be claimed by a kitchen worker.
	Pending

	// InProgress indicates a kitchen worker has claimed the order
	// and is preparing it.
	InProgress

	// Ready indicates the order has been prepared and is awaiting pickup.
	Ready

	// Completed indicates the order has been picked up.
	// This is a final state with no further transitions allowed.
	Completed
)

// getStatusStrings returns a map of Status values to their string representations.
// All statuses are included for string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "UNKNOWN",
		Pending:    "PENDING",
		InProgress: "IN_PROGRESS",
		Ready:      "READY",
		Completed:  "COMPLETED",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
// Only valid statuses are included to support validation and parsing.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:    "PENDING",
		InProgress: "IN_PROGRESS",
		Ready:      "READY",
		Completed:  "COMPLETED",
	}
}

// StatusFromString parses a status from its persisted string form.
// Returns an error for strings that do not name a valid status.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status",
		fmt.Errorf("%q is not a valid status", s),
	)
}

// Validate checks if the Status value is valid.
//
// Valid statuses are: Pending, InProgress, Ready, Completed.
// Unknown (0) and any other values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the persisted name of the status ("PENDING", "IN_PROGRESS",
// "READY", "COMPLETED"), or "UNKNOWN" for invalid values.
// Implements the fmt.Stringer interface.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// Description returns a human-readable description of the status.
// This is a presentation-layer lookup kept beside the state machine;
// transition logic never depends on it.
func (s Status) Description() string {
	switch s {
	case Pending:
		return "Waiting to be claimed"
	case InProgress:
		return "Being prepared"
	case Ready:
		return "Ready for pickup"
	case Completed:
		return "Completed"
	default:
		return "Unknown"
	}
}

// CanClaim reports whether an order in this status may be claimed
// by a kitchen worker. Only Pending orders are claimable.
func (s Status) CanClaim() bool {
	return s == Pending
}

// CanMarkReady reports whether an order in this status may be marked ready.
// Only InProgress orders can become Ready.
func (s Status) CanMarkReady() bool {
	return s == InProgress
}

// CanComplete reports whether an order in this status may be completed.
// Only Ready orders can become Completed.
func (s Status) CanComplete() bool {
	return s == Ready
}
