// Package kernel contains shared value objects of the domain model.
package kernel

const (
	// DeliveryTypeHomeDelivery requires a delivery agent and runs the long
	// three-step lifecycle.
	DeliveryTypeHomeDelivery DeliveryType = "home_delivery"

	// DeliveryTypeTakeaway runs the short single-step lifecycle without an agent.
	DeliveryTypeTakeaway DeliveryType = "takeaway"
)

// Initial time_remaining values, in transition intervals.
const (
	homeDeliverySteps = 3
	takeawaySteps     = 1
)

// DeliveryType is how an order leaves the restaurant.
//
// Any string is a valid DeliveryType. Unrecognized values are preserved
// verbatim, persisted as given, and timed like takeaway; only
// DeliveryTypeHomeDelivery ever involves a delivery agent.
type DeliveryType string

// ParseDeliveryType wraps a raw string as a DeliveryType.
// It never fails: unknown values are kept as-is by policy.
func ParseDeliveryType(s string) DeliveryType {
	return DeliveryType(s)
}

// String returns the raw delivery type value.
func (d DeliveryType) String() string {
	return string(d)
}

// IsHomeDelivery reports whether this order needs a delivery agent.
func (d DeliveryType) IsHomeDelivery() bool {
	return d == DeliveryTypeHomeDelivery
}

// InitialTimeRemaining returns how many transition intervals an order of this
// type takes to complete: 3 for home delivery, 1 for everything else.
func (d DeliveryType) InitialTimeRemaining() int {
	if d.IsHomeDelivery() {
		return homeDeliverySteps
	}
	return takeawaySteps
}
