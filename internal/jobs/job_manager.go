package jobs

import (
	"fmt"
	"log/slog"
	"time"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	scheduler   *OrderLifecycleScheduler
	recoveryJob *OrderRecoveryJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes the handlers as dependencies to wire up the job execution.
func NewJobManager(
	advanceHandler transitionHandler,
	pendingHandler pendingOrdersHandler,
	transitionInterval time.Duration,
	logger *slog.Logger,
) *JobManager {
	scheduler := NewOrderLifecycleScheduler(advanceHandler, transitionInterval, logger)

	return &JobManager{
		scheduler:   scheduler,
		recoveryJob: NewOrderRecoveryJob(pendingHandler, scheduler, logger),
	}
}

// Scheduler exposes the lifecycle scheduler so order placement can arm tasks
// for freshly created orders.
func (jm *JobManager) Scheduler() *OrderLifecycleScheduler {
	return jm.scheduler
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.recoveryJob.Start(); err != nil {
		return fmt.Errorf("failed to start order recovery job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully. Lifecycle tasks already in
// flight keep running; their state is in the store, so an abrupt process exit
// loses nothing the recovery job cannot restore.
func (jm *JobManager) StopAll() {
	jm.recoveryJob.Stop()
}
