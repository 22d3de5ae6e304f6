package jobs

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"shop/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// maxBatchesPerRun caps how many full batches one tick works through; the
// rest is left to the next tick.
const maxBatchesPerRun = 10

// StaleOrderCanceller is satisfied by commands.CancelStaleOrdersCommandHandler.
type StaleOrderCanceller interface {
	Handle(ctx context.Context, cmd commands.CancelStaleOrdersCommand) (int, error)
}

// StaleOrderCancellationJob cancels Pending orders older than ttl and releases
// their reserved stock.
type StaleOrderCancellationJob struct {
	handler   StaleOrderCanceller
	cron      *cron.Cron
	schedule  string
	ttl       time.Duration
	batchSize int
	now       func() time.Time
	logger    *slog.Logger
}

// NewStaleOrderCancellationJob creates the job. schedule is a six-field cron
// expression (with seconds).
func NewStaleOrderCancellationJob(
	handler StaleOrderCanceller,
	schedule string,
	ttl time.Duration,
	logger *slog.Logger,
) *StaleOrderCancellationJob {
	return &StaleOrderCancellationJob{
		handler:   handler,
		cron:      cron.New(cron.WithSeconds()),
		schedule:  schedule,
		ttl:       ttl,
		batchSize: commands.DefaultStaleOrderBatchSize,
		now:       time.Now,
		logger:    logger.With("component", "stale_order_cancellation_job"),
	}
}

// Start schedules the job.
func (j *StaleOrderCancellationJob) Start() error {
	if j.ttl <= 0 {
		return fmt.Errorf("stale order ttl must be positive, got %s", j.ttl)
	}

	_, err := j.cron.AddFunc(j.schedule, func() {
		j.Run(context.Background())
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Stale order cancellation job started",
		"schedule", j.schedule,
		"ttl", j.ttl.String(),
	)
	return nil
}

// Stop stops scheduling and waits for a running tick to finish.
func (j *StaleOrderCancellationJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Stale order cancellation job stopped")
}

// Run performs one tick and returns how many orders were cancelled.
func (j *StaleOrderCancellationJob) Run(ctx context.Context) int {
	cmd, err := commands.NewCancelStaleOrdersCommand(j.now().Add(-j.ttl), j.batchSize)
	if err != nil {
		j.logger.ErrorContext(ctx, "Stale order cancellation job misconfigured", "error", err)
		return 0
	}

	total := 0
	for range maxBatchesPerRun {
		if ctx.Err() != nil {
			break
		}

		n, handleErr := j.handler.Handle(ctx, cmd)
		if handleErr != nil {
			j.logger.ErrorContext(ctx, "Stale order cancellation job failed", "error", handleErr)
			break
		}

		total += n
		if n < j.batchSize {
			break
		}
	}

	if total > 0 {
		j.logger.InfoContext(ctx, "Stale orders cancelled", "count", total)
	}
	return total
}
