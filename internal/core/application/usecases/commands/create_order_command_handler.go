package commands

import (
	"context"

	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/core/domain/services"
)

// CreateOrderCommandHandler handles the business logic for order placement.
// Creates new orders in "preparing" status and, for home delivery, acquires
// a delivery agent from the shared pool inside the same transaction.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory, scheduler)
//	cmd, _ := NewCreateOrderCommand(userID, items, kernel.DeliveryTypeTakeaway)
//
//	orderID, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("order placement failed: %w", err)
//	}
//	// Order is now persisted and its timed progression is running
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	scheduler  LifecycleScheduler
}

// NewCreateOrderCommandHandler creates a handler for order placement operations.
// Requires an OrderUoWFactory for transactional persistence and a
// LifecycleScheduler to start the timed status progression after commit.
func NewCreateOrderCommandHandler(
	uowFactory OrderUoWFactory,
	scheduler LifecycleScheduler,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		scheduler:  scheduler,
	}
}

// Handle processes the order placement command and returns the assigned order id.
// Home delivery orders acquire an available agent before the order is stored;
// if no agent is free the whole transaction rolls back and
// services.ErrNoAgentAvailable is returned, so the order is never persisted.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (int64, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	newOrder, err := order.NewOrder(cmd.UserID(), cmd.DeliveryType(), cmd.Items())
	if err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if newOrder.DeliveryType().IsHomeDelivery() {
		agentRepo := uow.AgentRepository()
		availableAgents, agentsErr := agentRepo.GetAllAvailableLocked(ctx)
		if agentsErr != nil {
			return 0, agentsErr
		}

		pool := services.NewAgentPool()
		acquiredAgent, acquireErr := pool.Acquire(newOrder, availableAgents)
		if acquireErr != nil {
			return 0, acquireErr
		}

		if err = agentRepo.Update(ctx, acquiredAgent); err != nil {
			return 0, err
		}
	}

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	h.scheduler.Schedule(newOrder.ID(), newOrder.TimeRemaining())

	return newOrder.ID(), nil
}
