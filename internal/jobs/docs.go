// Package jobs provides scheduled background tasks for the logistics system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required by the order pipeline.
//
// # Available Jobs
//
// 1. NotificationRedeliveryJob - Runs every thirty seconds to re-queue
// customer notifications whose delivery failed.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(dispatcher, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Error Handling
//
// Redelivery hands notifications back to the dispatcher; a notification that
// fails again simply returns to the failed set and is retried on the next
// tick.
package jobs
