// Package jobs provides scheduled background tasks for the transportation
// system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3 to
// handle periodic operations around the transport order lifecycle.
//
// # Available Jobs
//
// 1. OrderInitializerJob - Runs every second to initialize created orders that
// have received their transport unit and target
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(initializeOrdersHandler, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Scheduling
//
// The initializer job uses the cron expression "* * * * * *", running every
// second so completed orders move on without waiting for an explicit request.
//
// # Error Handling
//
// Incomplete orders are an expected condition and are skipped inside the
// handler; everything else is logged as a system issue.
package jobs
