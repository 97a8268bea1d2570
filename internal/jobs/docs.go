// Package jobs provides the background machinery that moves orders through
// their timed lifecycle.
//
// This package combines per-order tasks with a cron-based recovery job using
// github.com/robfig/cron/v3.
//
// # Components
//
// 1. OrderLifecycleScheduler - one goroutine per in-flight order, firing one
// status transition per configured interval until the order is done
// 2. OrderRecoveryJob - runs at startup and every thirty seconds to re-arm
// tasks for orders that are pending in the store but have no running task
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(advanceHandler, pendingHandler, interval, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
//	// order placement arms a task per new order
//	jobManager.Scheduler().Schedule(orderID, transitions)
//
// # Crash Behavior
//
// Tasks keep no state between ticks: each transition loads the
// order from the store, advances it and writes it back. If the process dies,
// the next start's recovery pass picks up every unfinished order, so progress
// resumes from persisted state rather than being lost.
package jobs
