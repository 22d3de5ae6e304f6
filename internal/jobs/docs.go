// Package jobs provides scheduled background tasks for the shop.
//
// Jobs are cron-based (github.com/robfig/cron/v3, six-field expressions with
// seconds) and are started and stopped together through JobManager.
//
// # Available Jobs
//
// StaleOrderCancellationJob cancels orders that stayed Pending longer than the
// configured TTL. Each tick works through up to ten batches of
// commands.DefaultStaleOrderBatchSize orders; every batch is one transaction
// that cancels the orders and releases their stock reservations.
//
// # Usage
//
//	jobManager := jobs.NewJobManager(cancelStaleOrdersHandler, "0 */5 * * * *", 30*time.Minute, logger)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
// A failed batch is logged and ends the tick; the next tick retries.
package jobs
