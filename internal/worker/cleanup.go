package worker

import (
	"context"
	"fmt"
	"smartdomain/pkg/logger"
	"time"

	"github.com/riverqueue/river"
	"go.uber.org/zap"
)

// Cleaner removes bookkeeping rows that are no longer needed.
type Cleaner interface {
	DeleteRequestsBefore(ctx context.Context, before time.Time) (int64, error)
	DeleteAPIKeyUsageBefore(ctx context.Context, before time.Time) (int64, error)
}

// Retention is how long each kind of bookkeeping row is kept. Zero keeps rows forever.
type Retention struct {
	Requests time.Duration
	Usage    time.Duration
}

// CleanupArgs is the periodic retention job. It has no arguments.
type CleanupArgs struct{}

// Kind returns the River job kind used to register and dispatch the cleanup worker.
func (CleanupArgs) Kind() string { return "CleanupJob" }

// InsertOpts keeps a single pending cleanup at a time.
func (CleanupArgs) InsertOpts() river.InsertOpts {
	return river.InsertOpts{
		MaxAttempts: 1,
		UniqueOpts: river.UniqueOpts{
			ByPeriod: time.Minute,
		},
	}
}

// CleanupWorker deletes rate limiting and API key usage rows past their retention.
type CleanupWorker struct {
	river.WorkerDefaults[CleanupArgs]

	cleaner   Cleaner
	retention Retention
	now       func() time.Time
}

// NewCleanupWorker constructs a CleanupWorker.
func NewCleanupWorker(cleaner Cleaner, retention Retention) *CleanupWorker {
	return &CleanupWorker{
		cleaner:   cleaner,
		retention: retention,
		now:       time.Now,
	}
}

// Work runs one retention pass.
func (w *CleanupWorker) Work(ctx context.Context, job *river.Job[CleanupArgs]) error {
	ctx = logger.WithFields(ctx, zap.Int64("jobID", job.ID))
	now := w.now().UTC()

	if w.retention.Requests > 0 {
		n, err := w.cleaner.DeleteRequestsBefore(ctx, now.Add(-w.retention.Requests))
		if err != nil {
			return fmt.Errorf("could not delete old rate limit records: %w", err)
		}

		logger.Info(ctx, "removed old rate limit records", zap.Int64("count", n))
	}

	if w.retention.Usage > 0 {
		n, err := w.cleaner.DeleteAPIKeyUsageBefore(ctx, now.Add(-w.retention.Usage))
		if err != nil {
			return fmt.Errorf("could not delete old api key usage: %w", err)
		}

		logger.Info(ctx, "removed old api key usage", zap.Int64("count", n))
	}

	return nil
}
