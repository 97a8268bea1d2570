package jobs

import (
	"context"
	"log/slog"

	"github.com/robfig/cron/v3"

	"foodorder/internal/core/application/usecases/queries"
)

// pendingOrdersHandler lists the orders that have not completed yet.
type pendingOrdersHandler interface {
	Handle(ctx context.Context, query queries.GetPendingOrdersQuery) ([]queries.GetPendingOrdersQueryResponse, error)
}

// OrderRecoveryJob re-arms lifecycle tasks for in-flight orders.
// After a restart no tasks are running, yet the store still holds orders that
// never reached the terminal status; this job finds them and hands them back
// to the scheduler, which ignores orders that already have a task.
type OrderRecoveryJob struct {
	handler   pendingOrdersHandler
	scheduler *OrderLifecycleScheduler
	cron      *cron.Cron
	logger    *slog.Logger
}

// NewOrderRecoveryJob creates a job that rescans for stranded orders every
// thirty seconds.
func NewOrderRecoveryJob(
	handler pendingOrdersHandler,
	scheduler *OrderLifecycleScheduler,
	logger *slog.Logger,
) *OrderRecoveryJob {
	return &OrderRecoveryJob{
		handler:   handler,
		scheduler: scheduler,
		cron:      cron.New(cron.WithSeconds()),
		logger:    logger.With("component", "order_recovery_job"),
	}
}

// Start runs one recovery pass immediately, then every thirty seconds.
func (j *OrderRecoveryJob) Start() error {
	_, err := j.cron.AddFunc("*/30 * * * * *", j.recover)
	if err != nil {
		return err
	}

	j.recover()

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Order recovery job started (running every 30 seconds)")
	return nil
}

// Stop stops the order recovery job.
func (j *OrderRecoveryJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Order recovery job stopped")
}

func (j *OrderRecoveryJob) recover() {
	ctx := context.Background()

	pending, err := j.handler.Handle(ctx, queries.NewGetPendingOrdersQuery())
	if err != nil {
		j.logger.ErrorContext(ctx, "Order recovery pass failed", "error", err)
		return
	}

	for _, p := range pending {
		j.scheduler.Schedule(p.ID, p.TimeRemaining)
	}
}
