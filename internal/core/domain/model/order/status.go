package order

import (
	"fmt"

	"fulfillment/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
//
// The status vocabulary is declarative: a closed set of labels with a derived
// failure predicate, not a transition-guarded automaton. Any status may
// replace any other, both through the processing pipeline and through
// out-of-band status updates.
//
// Status values are stored and transmitted as their string literals.
type Status string

const (
	// Unknown represents an invalid or undefined status.
	// The zero value ("") helps catch uninitialized Status values.
	Unknown Status = ""

	// New is the initial status of an order before it has been handed
	// to a delivery provider.
	New Status = "NEW"

	// Processing indicates the order was accepted by a delivery provider
	// but no definitive status has been reported yet.
	Processing Status = "PROCESSING"

	// Done indicates the order was delivered.
	Done Status = "DONE"

	// Cancelled indicates the order was cancelled.
	Cancelled Status = "CANCELLED"

	// Rejected indicates the delivery provider refused the order.
	Rejected Status = "REJECTED"

	// Failed indicates order processing failed, typically because the
	// registration call to the delivery provider did not succeed.
	Failed Status = "FAILED"

	// Registered indicates the delivery provider confirmed registration.
	Registered Status = "REGISTERED"
)

// getValidStatuses returns the set of valid Status values.
// Unknown is intentionally excluded as it's invalid.
func getValidStatuses() map[Status]struct{} {
	return map[Status]struct{}{
		New:        {},
		Processing: {},
		Done:       {},
		Cancelled:  {},
		Rejected:   {},
		Failed:     {},
		Registered: {},
	}
}

// StatusFromString converts an external string into a Status.
//
// Returns an error for anything outside the seven-value vocabulary, so
// callers must normalize input before relying on enum semantics.
func StatusFromString(s string) (Status, error) {
	status := Status(s)
	if err := status.Validate(); err != nil {
		return Unknown, err
	}
	return status, nil
}

// StatusFromProvider coerces a status string reported by a delivery provider
// into the Status vocabulary. A missing or unrecognized value degrades to
// Processing, matching the default applied when a provider response omits
// the status field entirely.
func StatusFromProvider(s string) Status {
	status := Status(s)
	if _, ok := getValidStatuses()[status]; !ok {
		return Processing
	}
	return status
}

// Validate checks that the Status is one of the seven valid values.
func (s Status) Validate() error {
	if _, ok := getValidStatuses()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid",
			fmt.Errorf("%q is not a valid status", string(s)))
	}
	return nil
}

// String returns the status literal, or "UNKNOWN" for invalid values.
func (s Status) String() string {
	if _, ok := getValidStatuses()[s]; !ok {
		return "UNKNOWN"
	}
	return string(s)
}

// IsFailed reports whether the status is one of the terminal failure
// states: Cancelled, Rejected or Failed. It is total over the valid
// vocabulary and returns false for the other four values.
func (s Status) IsFailed() bool {
	return s == Cancelled || s == Rejected || s == Failed
}
