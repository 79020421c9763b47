package postgres_test

import (
	"context"
	"encoding/json"
	"smartdomain/pkg/domain"
	"smartdomain/pkg/storage"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestPgSQL_History(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)

	ctx := context.Background()

	t.Run("store defaults", func(t *testing.T) {
		t.Parallel()

		userID := domain.UserID(uuid.New())
		h, err := pgSQL.StoreHistory(ctx, domain.SearchHistory{UserID: userID, SearchTerm: "coffee shop"})
		require.NoError(t, err)
		require.Equal(t, domain.SearchTypeKeyword, h.SearchType)
		require.JSONEq(t, "[]", string(h.DomainResults))
		require.Nil(t, h.Filters)

		got, err := pgSQL.HistoryByID(ctx, userID, h.ID)
		require.NoError(t, err)
		require.Equal(t, "coffee shop", got.SearchTerm)

		got, err = pgSQL.HistoryByID(ctx, domain.UserID(uuid.New()), h.ID)
		require.NoError(t, err)
		require.Nil(t, got)
	})

	t.Run("list, search, recent and stats", func(t *testing.T) {
		t.Parallel()

		userID := domain.UserID(uuid.New())
		results := json.RawMessage(`[{"name":"Brewly"}]`)
		filters := json.RawMessage(`{"targetMarket":"us"}`)
		for _, h := range []domain.SearchHistory{
			{UserID: userID, SearchTerm: "coffee shop", DomainResults: results, ResultCount: 4, Filters: filters},
			{UserID: userID, SearchTerm: "tea house", ResultCount: 2, SearchType: domain.SearchTypeCompany},
			{UserID: userID, SearchTerm: "coffee roaster", ResultCount: 1},
		} {
			_, err := pgSQL.StoreHistory(ctx, h)
			require.NoError(t, err)
		}

		page, total, err := pgSQL.UserHistory(ctx, userID, storage.HistoryFilter{Limit: 10})
		require.NoError(t, err)
		require.EqualValues(t, 3, total)
		require.Len(t, page, 3)
		require.Equal(t, "coffee roaster", page[0].SearchTerm)
		require.JSONEq(t, string(results), string(page[2].DomainResults))
		require.JSONEq(t, string(filters), string(page[2].Filters))

		coffee, total, err := pgSQL.UserHistory(ctx, userID, storage.HistoryFilter{Search: "Coffee", Limit: 1})
		require.NoError(t, err)
		require.EqualValues(t, 2, total)
		require.Len(t, coffee, 1)

		companies, total, err := pgSQL.UserHistory(ctx, userID, storage.HistoryFilter{
			SearchType: domain.SearchTypeCompany,
			Limit:      10,
		})
		require.NoError(t, err)
		require.EqualValues(t, 1, total)
		require.Equal(t, "tea house", companies[0].SearchTerm)

		recent, err := pgSQL.RecentHistory(ctx, userID, "coffee shop", domain.SearchTypeKeyword, time.Now().Add(-time.Hour))
		require.NoError(t, err)
		require.NotNil(t, recent)
		require.Equal(t, 4, recent.ResultCount)

		recent, err = pgSQL.RecentHistory(ctx, userID, "coffee shop", domain.SearchTypeDomain, time.Now().Add(-time.Hour))
		require.NoError(t, err)
		require.Nil(t, recent)

		recent, err = pgSQL.RecentHistory(ctx, userID, "coffee shop", domain.SearchTypeKeyword, time.Now().Add(time.Hour))
		require.NoError(t, err)
		require.Nil(t, recent)

		stats, err := pgSQL.HistoryStats(ctx, userID, time.Now().Add(-time.Hour))
		require.NoError(t, err)
		require.EqualValues(t, 3, stats.TotalSearches)
		require.EqualValues(t, 3, stats.TodaySearches)
		require.EqualValues(t, 7, stats.TotalResults)
		require.False(t, stats.LastSearchAt.IsZero())

		stats, err = pgSQL.HistoryStats(ctx, userID, time.Now().Add(time.Hour))
		require.NoError(t, err)
		require.Zero(t, stats.TodaySearches)
	})

	t.Run("empty stats", func(t *testing.T) {
		t.Parallel()

		stats, err := pgSQL.HistoryStats(ctx, domain.UserID(uuid.New()), time.Now())
		require.NoError(t, err)
		require.Equal(t, domain.HistoryStats{}, stats)
	})

	t.Run("delete and clear", func(t *testing.T) {
		t.Parallel()

		userID := domain.UserID(uuid.New())
		var ids []domain.HistoryID
		for _, term := range []string{"a", "b", "c"} {
			h, err := pgSQL.StoreHistory(ctx, domain.SearchHistory{UserID: userID, SearchTerm: term})
			require.NoError(t, err)
			ids = append(ids, h.ID)
		}

		n, err := pgSQL.DeleteHistory(ctx, userID, ids[0])
		require.NoError(t, err)
		require.EqualValues(t, 1, n)

		n, err = pgSQL.ClearHistory(ctx, domain.UserID(uuid.New()))
		require.NoError(t, err)
		require.Zero(t, n)

		n, err = pgSQL.ClearHistory(ctx, userID)
		require.NoError(t, err)
		require.EqualValues(t, 2, n)
	})
}
