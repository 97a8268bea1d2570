package order

import (
	"fmt"

	"foodorder/internal/pkg/errs"
)

const (
	// StatusPreparing is the initial status of every order.
	StatusPreparing Status = "preparing"

	// StatusOutForDelivery is reachable only on the home-delivery path,
	// after the first timed transition.
	StatusOutForDelivery Status = "out_for_delivery"

	// StatusDone is the terminal status. Once reached it never changes.
	StatusDone Status = "done"
)

// Status represents the lifecycle state of an order.
//
// State transitions, driven purely by elapsed time:
//
//	home_delivery: preparing ──> out_for_delivery ──> done
//	anything else: preparing ──────────────────────> done
//
// The value is persisted verbatim, so the constants double as the store
// contract for the status column.
type Status string

// validStatuses lists every status the store may round-trip.
func validStatuses() map[Status]struct{} {
	return map[Status]struct{}{
		StatusPreparing:      {},
		StatusOutForDelivery: {},
		StatusDone:           {},
	}
}

// Validate checks that the status is one of the known lifecycle states.
// Used when reconstructing orders from persistence.
func (s Status) Validate() error {
	if _, ok := validStatuses()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%q is not a valid order status", string(s)))
	}
	return nil
}

// String returns the persisted representation of the status.
func (s Status) String() string {
	return string(s)
}

// IsTerminal reports whether no further transitions are possible.
func (s Status) IsTerminal() bool {
	return s == StatusDone
}
