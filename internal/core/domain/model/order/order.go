package order

import (
	"errors"
	"fmt"
	"time"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/errs"
	"foodorder/internal/pkg/guard"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")

	// ErrOrderAlreadyDone is returned when advancing an order that has
	// already reached its terminal status.
	ErrOrderAlreadyDone = errors.New("order is already done")

	// ErrAgentNotAllowed is returned when assigning an agent to an order
	// that must not have one.
	ErrAgentNotAllowed = errors.New("only a preparing home-delivery order can take an agent")
)

// Order is the aggregate root of the order lifecycle.
//
// An order is created in StatusPreparing with a delivery-type-dependent
// time_remaining (3 intervals for home delivery, 1 otherwise) and advances
// through its state machine one timed step at a time until StatusDone, which
// is terminal. time_remaining strictly decreases and reaches 0 exactly when
// the order is done.
//
// Invariants:
//   - exactly one owning user
//   - an agent is assigned iff the order is home delivery and an agent was
//     available at creation time
//   - done is permanent
type Order struct {
	// id is assigned by the store on first persistence; 0 until then
	id int64

	userID       int64
	createdAt    time.Time
	deliveryType kernel.DeliveryType
	status       Status

	// assignedAgentID is nil for anything that is not home delivery,
	// and for home-delivery orders that were never persisted
	assignedAgentID *int64

	// timeRemaining counts transition intervals until done
	timeRemaining int

	items []LineItem

	guard guard.ConstructorGuard
}

// NewOrder creates a new order for the given user in StatusPreparing.
//
// The line items are attached as given: the permissive policy of the system
// means they are not checked against the menu here. The only validated input
// is the owning user id, since every order must have exactly one owner.
func NewOrder(userID int64, deliveryType kernel.DeliveryType, items []LineItem) (*Order, error) {
	if userID <= 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("userID",
			fmt.Errorf("%d is not a valid user id", userID))
	}

	return &Order{
		userID:        userID,
		createdAt:     time.Now().UTC(),
		deliveryType:  deliveryType,
		status:        StatusPreparing,
		timeRemaining: deliveryType.InitialTimeRemaining(),
		items:         append([]LineItem(nil), items...),
		guard:         guard.NewConstructorGuard(),
	}, nil
}

// RestoreOrder reconstructs an order from persistent storage.
// Unlike NewOrder it accepts any point of the lifecycle.
func RestoreOrder(
	id int64,
	userID int64,
	createdAt time.Time,
	deliveryType kernel.DeliveryType,
	status Status,
	assignedAgentID *int64,
	timeRemaining int,
	items []LineItem,
) (*Order, error) {
	if id <= 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("id",
			fmt.Errorf("%d is not a valid order id", id))
	}
	if userID <= 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("userID",
			fmt.Errorf("%d is not a valid user id", userID))
	}
	if err := status.Validate(); err != nil {
		return nil, err
	}

	return &Order{
		id:              id,
		userID:          userID,
		createdAt:       createdAt,
		deliveryType:    deliveryType,
		status:          status,
		assignedAgentID: assignedAgentID,
		timeRemaining:   timeRemaining,
		items:           append([]LineItem(nil), items...),
		guard:           guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the order was created via a constructor.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// ID returns the store-assigned order id, or 0 before first persistence.
func (o *Order) ID() int64 {
	return o.id
}

// UserID returns the owning user's id.
func (o *Order) UserID() int64 {
	return o.userID
}

// CreatedAt returns the order creation timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// DeliveryType returns the delivery type as given at creation.
func (o *Order) DeliveryType() kernel.DeliveryType {
	return o.deliveryType
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// AssignedAgentID returns the delivery agent's id, or nil when no agent
// is involved.
func (o *Order) AssignedAgentID() *int64 {
	return o.assignedAgentID
}

// TimeRemaining returns the number of transition intervals left until done.
func (o *Order) TimeRemaining() int {
	return o.timeRemaining
}

// Items returns the order's line items.
func (o *Order) Items() []LineItem {
	return append([]LineItem(nil), o.items...)
}

// IsDone reports whether the order reached its terminal status.
func (o *Order) IsDone() bool {
	return o.status.IsTerminal()
}

// AssignID attaches the store-assigned id to a freshly persisted order.
// It can be called exactly once, with a positive id.
func (o *Order) AssignID(id int64) error {
	if id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("id",
			fmt.Errorf("%d is not a valid order id", id))
	}
	if o.id != 0 {
		return errs.NewValueIsInvalidErrorWithCause("id",
			fmt.Errorf("order already has id %d", o.id))
	}

	o.id = id
	return nil
}

// AssignAgent records the delivery agent acquired for this order.
// Only a home-delivery order that is still preparing and has no agent yet
// can take one; everything else is a programming error in the caller.
func (o *Order) AssignAgent(agentID int64) error {
	if agentID <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("agentID",
			fmt.Errorf("%d is not a valid agent id", agentID))
	}
	if !o.deliveryType.IsHomeDelivery() || o.status != StatusPreparing || o.assignedAgentID != nil {
		return ErrAgentNotAllowed
	}

	o.assignedAgentID = &agentID
	return nil
}

// Advance applies the next timed transition of the lifecycle.
//
// Home delivery: preparing/3 -> out_for_delivery/2 -> out_for_delivery/1 ->
// done/0. Every other delivery type: preparing/1 -> done/0.
//
// Advancing a done order returns ErrOrderAlreadyDone; the status never
// changes again once terminal.
func (o *Order) Advance() error {
	if o.status.IsTerminal() {
		return ErrOrderAlreadyDone
	}

	o.timeRemaining--
	if o.timeRemaining <= 0 {
		o.timeRemaining = 0
		o.status = StatusDone
		return nil
	}

	if o.deliveryType.IsHomeDelivery() && o.status == StatusPreparing {
		o.status = StatusOutForDelivery
	}

	return nil
}
