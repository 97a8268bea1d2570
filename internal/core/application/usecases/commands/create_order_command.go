package commands

import (
	"errors"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrUserIDIsInvalid = errors.New("user id must be greater than 0")
)

// CreateOrderCommand represents a request to place a new food order.
// Encapsulates the ordering user, the chosen line items and the delivery type.
//
// Example:
//
//	items := []order.LineItem{order.NewLineItem(1, 2)}
//	cmd, err := NewCreateOrderCommand(userID, items, kernel.DeliveryTypeHomeDelivery)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory, scheduler)
//	orderID, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("failed to place order: %w", err)
//	}
//	fmt.Printf("Order %d placed and now preparing", orderID)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	userID       int64
	items        []order.LineItem
	deliveryType kernel.DeliveryType

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to place a new food order.
// Validates that the user id is positive. Line items and delivery type are
// accepted as given: unknown delivery types and unknown menu references are
// stored verbatim.
func NewCreateOrderCommand(
	userID int64,
	items []order.LineItem,
	deliveryType kernel.DeliveryType,
) (CreateOrderCommand, error) {
	orderCommand := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderCommand.setUserID(userID),
		orderCommand.setItems(items),
		orderCommand.setDeliveryType(deliveryType),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateOrderCommandIsNotConstructed if validation fails.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// UserID returns the identifier of the ordering user.
func (c CreateOrderCommand) UserID() int64 {
	return c.userID
}

// Items returns the ordered line items.
func (c CreateOrderCommand) Items() []order.LineItem {
	return c.items
}

// DeliveryType returns how the order will be fulfilled.
func (c CreateOrderCommand) DeliveryType() kernel.DeliveryType {
	return c.deliveryType
}

func (c *CreateOrderCommand) setUserID(userID int64) error {
	if userID <= 0 {
		return ErrUserIDIsInvalid
	}

	c.userID = userID
	return nil
}

func (c *CreateOrderCommand) setItems(items []order.LineItem) error {
	c.items = items
	return nil
}

func (c *CreateOrderCommand) setDeliveryType(deliveryType kernel.DeliveryType) error {
	c.deliveryType = deliveryType
	return nil
}
