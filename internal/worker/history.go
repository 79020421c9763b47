package worker

import (
	"context"
	"errors"
	"fmt"
	"smartdomain/internal/history"
	"smartdomain/pkg/logger"
	"smartdomain/pkg/serrors"

	"github.com/riverqueue/river"
	"go.uber.org/zap"
)

// HistoryWorker persists searches queued by the generate endpoints.
type HistoryWorker struct {
	river.WorkerDefaults[history.JobArgs]

	history history.History
}

// NewHistoryWorker constructs a HistoryWorker backed by the history service.
func NewHistoryWorker(history history.History) *HistoryWorker {
	return &HistoryWorker{history: history}
}

// Work records a single search. Entries that can never be stored cancel the
// job instead of retrying it.
func (w *HistoryWorker) Work(ctx context.Context, job *river.Job[history.JobArgs]) error {
	ctx = logger.WithFields(ctx,
		zap.Int64("jobID", job.ID),
		zap.String("userID", job.Args.UserID.String()),
		zap.String("searchTerm", job.Args.Input.SearchTerm))

	entry, created, err := w.history.Record(ctx, job.Args.UserID, job.Args.Input)
	if err != nil {
		if errors.Is(err, serrors.ErrBadRequest) || errors.Is(err, serrors.ErrNotFound) {
			logger.Warn(ctx, "dropping invalid history entry", zap.Error(err))

			return river.JobCancel(err) //nolint: wrapcheck
		}

		logger.Error(ctx, "error in recording search history", zap.Error(err))

		return fmt.Errorf("could not record search history: %w", err)
	}

	if !created {
		logger.Debug(ctx, "search already recorded recently", zap.String("historyID", entry.ID.String()))

		return nil
	}

	logger.Info(ctx, "search history recorded", zap.String("historyID", entry.ID.String()))

	return nil
}
