package worker

import (
	"context"
	"fmt"
	"log/slog"
	"smartdomain/internal/config"
	"smartdomain/internal/history"
	"smartdomain/pkg/logger"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/riverqueue/river"
	"github.com/riverqueue/river/riverdriver/riverpgxv5"
	"go.uber.org/zap/exp/zapslog"
)

// Options configure the background job client.
type Options struct {
	MaxWorkers      int
	CleanupInterval time.Duration
	Retention       Retention
}

// DefaultOptions mirror the configuration defaults.
var DefaultOptions = Options{
	MaxWorkers:      10,
	CleanupInterval: time.Hour,
	Retention: Retention{
		Requests: 7 * 24 * time.Hour,
		Usage:    90 * 24 * time.Hour,
	},
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		MaxWorkers:      cfg.Worker.MaxWorkers,
		CleanupInterval: cfg.Worker.CleanupInterval,
		Retention: Retention{
			Requests: cfg.Worker.RateLimitRetention,
			Usage:    cfg.Worker.UsageRetention,
		},
	}
}

// Start registers the history and cleanup workers and starts processing jobs.
func Start(ctx context.Context,
	dbPool *pgxpool.Pool,
	history history.History,
	cleaner Cleaner,
	options Options) (*river.Client[pgx.Tx], error) {
	workers := river.NewWorkers()
	river.AddWorker(workers, NewHistoryWorker(history))
	river.AddWorker(workers, NewCleanupWorker(cleaner, options.Retention))

	riverClient, err := river.NewClient(riverpgxv5.New(dbPool), &river.Config{
		Queues: map[string]river.QueueConfig{
			river.QueueDefault: {MaxWorkers: max(options.MaxWorkers, 1)},
		},
		PeriodicJobs: []*river.PeriodicJob{
			river.NewPeriodicJob(
				river.PeriodicInterval(options.CleanupInterval),
				func() (river.JobArgs, *river.InsertOpts) {
					return CleanupArgs{}, nil
				},
				&river.PeriodicJobOpts{RunOnStart: true},
			),
		},
		Workers: workers,
		Logger:  slog.New(zapslog.NewHandler(logger.Get(ctx).Core())),
	})
	if err != nil {
		return nil, fmt.Errorf("could not create river queue client: %w", err)
	}

	if err := riverClient.Start(ctx); err != nil {
		return nil, fmt.Errorf("could not start river queue client: %w", err)
	}

	return riverClient, nil
}
