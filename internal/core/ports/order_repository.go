// Package ports defines the persistence contracts between the domain layer
// and the infrastructure adapters.
package ports

import (
	"context"

	"foodorder/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order header together with its line items as one
	// atomic unit, and attaches the store-assigned id to the aggregate.
	// A reader can never observe the header without its items.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists the current status and time_remaining of an existing
	// order. Each lifecycle transition is one independent durable write.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate with its line items by id.
	// Returns an errs.ObjectNotFoundError when no such order exists.
	Get(ctx context.Context, id int64) (*order.Order, error)

	// GetAllInProgress retrieves every order that has not reached the
	// terminal status. Used to re-schedule lifecycle tasks after a restart.
	GetAllInProgress(ctx context.Context) ([]*order.Order, error)
}
