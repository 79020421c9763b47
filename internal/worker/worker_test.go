package worker_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/riverqueue/river"
	"github.com/riverqueue/river/rivertype"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"smartdomain/internal/history"
	mockhistory "smartdomain/internal/history/mock"
	"smartdomain/internal/worker"
	"smartdomain/pkg/domain"
	"smartdomain/pkg/logger"
	"smartdomain/pkg/serrors"
	mockstorage "smartdomain/pkg/storage/mock"
)

func TestMain(m *testing.M) {
	logger.Setup(logger.DevelopmentEnvironment)
	m.Run()
}

func makeHistoryJob(id int64, userID domain.UserID, term string) *river.Job[history.JobArgs] {
	return &river.Job[history.JobArgs]{
		JobRow: &rivertype.JobRow{ID: id},
		Args: history.JobArgs{
			UserID: userID,
			Input:  history.RecordInput{SearchTerm: term},
		},
	}
}

func TestHistoryWorker_Work(t *testing.T) {
	userID := domain.UserID(uuid.New())

	t.Run("records", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mock := mockhistory.NewMockHistory(ctrl)
		w := worker.NewHistoryWorker(mock)

		entry := &domain.SearchHistory{ID: domain.HistoryID(uuid.New()), UserID: userID, SearchTerm: "coffee"}
		mock.EXPECT().Record(gomock.Any(), userID, history.RecordInput{SearchTerm: "coffee"}).Return(entry, true, nil)

		require.NoError(t, w.Work(context.Background(), makeHistoryJob(1, userID, "coffee")))
	})

	t.Run("duplicate is not an error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mock := mockhistory.NewMockHistory(ctrl)
		w := worker.NewHistoryWorker(mock)

		entry := &domain.SearchHistory{ID: domain.HistoryID(uuid.New()), UserID: userID, SearchTerm: "coffee"}
		mock.EXPECT().Record(gomock.Any(), userID, gomock.Any()).Return(entry, false, nil)

		require.NoError(t, w.Work(context.Background(), makeHistoryJob(2, userID, "coffee")))
	})

	t.Run("invalid input cancels", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mock := mockhistory.NewMockHistory(ctrl)
		w := worker.NewHistoryWorker(mock)

		mock.EXPECT().Record(gomock.Any(), userID, gomock.Any()).
			Return(nil, false, serrors.With(serrors.ErrBadRequest, "search term is required"))

		err := w.Work(context.Background(), makeHistoryJob(3, userID, ""))
		require.Error(t, err)
		var cancelErr *river.JobCancelError
		require.ErrorAs(t, err, &cancelErr)
	})

	t.Run("storage failure retries", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mock := mockhistory.NewMockHistory(ctrl)
		w := worker.NewHistoryWorker(mock)

		mock.EXPECT().Record(gomock.Any(), userID, gomock.Any()).Return(nil, false, errors.New("db down"))

		err := w.Work(context.Background(), makeHistoryJob(4, userID, "coffee"))
		require.Error(t, err)
		var cancelErr *river.JobCancelError
		require.False(t, errors.As(err, &cancelErr))
		require.ErrorContains(t, err, "db down")
	})
}

func TestCleanupWorker_Work(t *testing.T) {
	job := &river.Job[worker.CleanupArgs]{JobRow: &rivertype.JobRow{ID: 10}}

	t.Run("deletes past retention", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := mockstorage.NewMockAllStorage(ctrl)
		w := worker.NewCleanupWorker(store, worker.Retention{Requests: 24 * time.Hour, Usage: 48 * time.Hour})

		before := time.Now().UTC()
		store.EXPECT().DeleteRequestsBefore(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, cutoff time.Time) (int64, error) {
				require.WithinDuration(t, before.Add(-24*time.Hour), cutoff, time.Minute)

				return 3, nil
			})
		store.EXPECT().DeleteAPIKeyUsageBefore(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, cutoff time.Time) (int64, error) {
				require.WithinDuration(t, before.Add(-48*time.Hour), cutoff, time.Minute)

				return 1, nil
			})

		require.NoError(t, w.Work(context.Background(), job))
	})

	t.Run("zero retention keeps rows", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := mockstorage.NewMockAllStorage(ctrl)
		w := worker.NewCleanupWorker(store, worker.Retention{})

		require.NoError(t, w.Work(context.Background(), job))
	})

	t.Run("error stops the pass", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := mockstorage.NewMockAllStorage(ctrl)
		w := worker.NewCleanupWorker(store, worker.DefaultOptions.Retention)

		store.EXPECT().DeleteRequestsBefore(gomock.Any(), gomock.Any()).Return(int64(0), errors.New("boom"))

		require.ErrorContains(t, w.Work(context.Background(), job), "boom")
	})
}
