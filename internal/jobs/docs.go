// Package jobs provides scheduled background tasks for the pizzeria service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations around the order queue.
//
// # Available Jobs
//
// 1. KitchenReportJob - Runs every minute and logs the current backlog
// (pending and in-preparation counts) for kitchen visibility.
// 2. StaleOrderAlertJob - Runs every minute and warns about pending orders
// that have been waiting longer than the alert threshold.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(pendingHandler, inProgressHandler, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Error Handling
//
// Both jobs only read from the database; failures are logged and retried on
// the next tick, never escalated.
package jobs
