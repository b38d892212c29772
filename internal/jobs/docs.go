// Package jobs provides scheduled background tasks for the ordering service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
//
// # Available Jobs
//
// 1. OrderStatsReportJob - computes order counts, confirmed revenue and the best
// selling products, logs them and publishes them as Prometheus gauges
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(statsHandler, serverMetrics, config.OrderStatsSchedule, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Scheduling
//
// Schedules are six-field cron expressions with a leading seconds field.
// The stats report defaults to "0 */5 * * * *".
//
// # Error Handling
//
// A failed report is logged and retried on the next tick. A malformed schedule
// fails StartAll.
package jobs
