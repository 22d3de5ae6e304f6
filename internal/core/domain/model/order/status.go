package order

import (
	"fmt"
	"slices"
	"strings"

	"shop/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
//
// State transitions:
//
//	Pending    -> Paid, Cancelled
//	Paid       -> Processing, Cancelled, Refunded
//	Processing -> Shipped, Cancelled, Refunded
//	Shipped    -> Delivered, Refunded
//	Delivered  -> Refunded
//
// Cancelled and Refunded are final.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status: the order is placed and awaits payment.
	Pending

	// Paid indicates payment has been captured.
	Paid

	// Processing indicates the order is being picked and packed.
	Processing

	// Shipped indicates the parcel has left the warehouse. Stock is consumed here.
	Shipped

	// Delivered indicates the parcel reached the customer.
	Delivered

	// Cancelled is a final state reached before shipping.
	Cancelled

	// Refunded is a final state reached after payment.
	Refunded
)

// transitions is the complete table of allowed status changes. Any pair not
// listed here is rejected.
//
//nolint:gochecknoglobals // read-only lookup table
var transitions = map[Status][]Status{
	Pending:    {Paid, Cancelled},
	Paid:       {Processing, Cancelled, Refunded},
	Processing: {Shipped, Cancelled, Refunded},
	Shipped:    {Delivered, Refunded},
	Delivered:  {Refunded},
	Cancelled:  {},
	Refunded:   {},
}

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "Unknown",
		Pending:    "Pending",
		Paid:       "Paid",
		Processing: "Processing",
		Shipped:    "Shipped",
		Delivered:  "Delivered",
		Cancelled:  "Cancelled",
		Refunded:   "Refunded",
	}
}

// AllStatuses returns every valid status in lifecycle order.
func AllStatuses() []Status {
	return []Status{Pending, Paid, Processing, Shipped, Delivered, Cancelled, Refunded}
}

// ParseStatus converts a case-insensitive status name into a Status.
func ParseStatus(s string) (Status, error) {
	for status, name := range getStatusStrings() {
		if status != Unknown && strings.EqualFold(name, strings.TrimSpace(s)) {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%q is not a valid status", s))
}

// Validate checks that s is one of the defined statuses other than Unknown.
func (s Status) Validate() error {
	if _, ok := transitions[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String implements fmt.Stringer. Invalid values render as "Unknown".
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// AllowedTransitions returns the statuses reachable from s in one step.
func (s Status) AllowedTransitions() []Status {
	return slices.Clone(transitions[s])
}

// CanTransitionTo reports whether s -> target is in the transition table.
func (s Status) CanTransitionTo(target Status) bool {
	return slices.Contains(transitions[s], target)
}

// IsTerminal reports whether no transition leaves s.
func (s Status) IsTerminal() bool {
	return len(transitions[s]) == 0
}

// IsCancellable reports whether Cancel is accepted in s.
func (s Status) IsCancellable() bool {
	return s != Delivered && s != Cancelled && s != Refunded
}

// HoldsStockReservation reports whether the order's units are still reserved
// rather than consumed, which is the case until the order ships.
func (s Status) HoldsStockReservation() bool {
	return s == Pending || s == Paid || s == Processing
}

// ValidateTransition returns a BusinessRuleViolationError unless s -> target is allowed.
func (s Status) ValidateTransition(target Status) error {
	if err := target.Validate(); err != nil {
		return err
	}
	if !s.CanTransitionTo(target) {
		return errs.NewBusinessRuleViolationError("cannot transition order from %s to %s", s, target)
	}
	return nil
}
