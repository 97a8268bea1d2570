// Package order contains the Order aggregate and its lifecycle state machine.
//
// The aggregate enforces construction through NewOrder/RestoreOrder, the
// strictly decreasing time_remaining, and the terminal done status. Timing
// itself lives outside the aggregate: callers decide when a transition
// interval has elapsed and call Advance.
package order
