package jobs

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"foodorder/internal/core/application/usecases/commands"
	"foodorder/internal/core/domain/model/order"
)

// transitionHandler applies one lifecycle step to an order.
type transitionHandler interface {
	Handle(ctx context.Context, cmd commands.AdvanceOrderCommand) error
}

// OrderLifecycleScheduler drives the timed status progression of orders.
// Each scheduled order gets its own goroutine that fires one transition per
// interval until the order is done. Tasks hold no order state beyond the id
// and the remaining step count; every transition re-reads the order from the
// store, so a task that dies is fully recoverable from persisted state.
type OrderLifecycleScheduler struct {
	handler  transitionHandler
	interval time.Duration
	logger   *slog.Logger

	mu     sync.Mutex
	active map[int64]struct{}
}

// NewOrderLifecycleScheduler creates a scheduler that fires one transition
// per interval.
func NewOrderLifecycleScheduler(
	handler transitionHandler,
	interval time.Duration,
	logger *slog.Logger,
) *OrderLifecycleScheduler {
	return &OrderLifecycleScheduler{
		handler:  handler,
		interval: interval,
		logger:   logger.With("component", "order_lifecycle_scheduler"),
		active:   make(map[int64]struct{}),
	}
}

// Schedule starts the timed progression for an order. A no-op when the order
// already has a running task or when no transitions remain, so the recovery
// job can call it repeatedly without double-advancing anything.
func (s *OrderLifecycleScheduler) Schedule(orderID int64, transitions int) {
	if transitions <= 0 {
		return
	}

	s.mu.Lock()
	if _, running := s.active[orderID]; running {
		s.mu.Unlock()
		return
	}
	s.active[orderID] = struct{}{}
	s.mu.Unlock()

	go s.run(orderID, transitions)
}

// IsActive reports whether the order currently has a running lifecycle task.
func (s *OrderLifecycleScheduler) IsActive(orderID int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, running := s.active[orderID]
	return running
}

func (s *OrderLifecycleScheduler) run(orderID int64, transitions int) {
	defer func() {
		s.mu.Lock()
		delete(s.active, orderID)
		s.mu.Unlock()
	}()

	ctx := context.Background()

	for range transitions {
		time.Sleep(s.interval)

		cmd, err := commands.NewAdvanceOrderCommand(orderID)
		if err != nil {
			s.logger.ErrorContext(ctx, "Invalid advance command", "orderID", orderID, "error", err)
			return
		}

		if err := s.handler.Handle(ctx, cmd); err != nil {
			if errors.Is(err, order.ErrOrderAlreadyDone) {
				// another task already finished this order
				return
			}

			s.logger.ErrorContext(ctx, "Order transition failed, task stopped",
				"orderID", orderID, "error", err)
			return
		}
	}
}
