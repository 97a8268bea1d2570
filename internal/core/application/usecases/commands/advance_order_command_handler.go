package commands

import (
	"context"

	"foodorder/internal/core/domain/services"
)

// AdvanceOrderCommandHandler moves an order one step along its progression.
// When the step completes the order, the assigned delivery agent (if any)
// is released back to the pool within the same transaction.
type AdvanceOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewAdvanceOrderCommandHandler creates a handler for order progression steps.
func NewAdvanceOrderCommandHandler(uowFactory OrderUoWFactory) AdvanceOrderCommandHandler {
	return AdvanceOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle loads the order, applies one progression step and persists the result.
// Returns order.ErrOrderAlreadyDone if the order has already completed, which
// lets callers stop scheduling further steps.
func (h *AdvanceOrderCommandHandler) Handle(ctx context.Context, cmd AdvanceOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	trackedOrder, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = trackedOrder.Advance(); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, trackedOrder); err != nil {
		return err
	}

	if trackedOrder.Status().IsTerminal() && trackedOrder.AssignedAgentID() != nil {
		agentRepo := uow.AgentRepository()
		assignedAgent, agentErr := agentRepo.Get(ctx, *trackedOrder.AssignedAgentID())
		if agentErr != nil {
			return agentErr
		}

		pool := services.NewAgentPool()
		if err = pool.Release(assignedAgent); err != nil {
			return err
		}

		if err = agentRepo.Update(ctx, assignedAgent); err != nil {
			return err
		}
	}

	return uow.Commit(ctx)
}
