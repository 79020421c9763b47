package postgres_test

import (
	"context"
	"smartdomain/pkg/domain"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestPgSQL_SystemStats(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)

	ctx := context.Background()

	stats, err := pgSQL.SystemStats(ctx, time.Now())
	require.NoError(t, err)
	require.Equal(t, domain.SystemStats{}, stats)

	userID := domain.UserID(uuid.New())
	_, err = pgSQL.UpsertProfile(ctx, domain.Profile{ID: userID})
	require.NoError(t, err)
	_, err = pgSQL.StoreFavorite(ctx, domain.Favorite{UserID: userID, Domain: "stats.com"})
	require.NoError(t, err)
	_, err = pgSQL.StoreHistory(ctx, domain.SearchHistory{UserID: userID, SearchTerm: "x", ResultCount: 3})
	require.NoError(t, err)
	_, err = pgSQL.StoreHistory(ctx, domain.SearchHistory{UserID: userID, SearchTerm: "y", ResultCount: 2})
	require.NoError(t, err)

	stats, err = pgSQL.SystemStats(ctx, time.Now().Add(-time.Minute))
	require.NoError(t, err)
	require.Equal(t, domain.SystemStats{
		TotalUsers:            1,
		TotalFavorites:        1,
		TotalSearches:         2,
		TodaySearches:         2,
		TotalDomainsGenerated: 5,
	}, stats)
}
