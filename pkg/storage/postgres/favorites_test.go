package postgres_test

import (
	"context"
	"smartdomain/pkg/domain"
	"smartdomain/pkg/storage"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestPgSQL_Favorites(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)

	ctx := context.Background()
	available, taken := true, false

	t.Run("store and duplicate", func(t *testing.T) {
		t.Parallel()

		userID := domain.UserID(uuid.New())
		f, err := pgSQL.StoreFavorite(ctx, domain.Favorite{
			UserID: userID,
			Domain: "brandly.com",
			Tags:   []string{"short", "tech"},
			Notes:  "first pick",
		})
		require.NoError(t, err)
		require.Equal(t, "brandly.com", f.Domain)
		require.Equal(t, []string{"short", "tech"}, f.Tags)
		require.Nil(t, f.IsAvailable)
		require.False(t, f.CreatedAt.IsZero())

		_, err = pgSQL.StoreFavorite(ctx, domain.Favorite{UserID: userID, Domain: "brandly.com"})
		require.ErrorIs(t, err, storage.ErrDuplicate)

		// another user may save the same domain
		_, err = pgSQL.StoreFavorite(ctx, domain.Favorite{UserID: domain.UserID(uuid.New()), Domain: "brandly.com"})
		require.NoError(t, err)
	})

	t.Run("list filters and pages", func(t *testing.T) {
		t.Parallel()

		userID := domain.UserID(uuid.New())
		for _, f := range []domain.Favorite{
			{UserID: userID, Domain: "alpha.com", IsAvailable: &available},
			{UserID: userID, Domain: "beta.io", Notes: "alpha backup", IsAvailable: &taken},
			{UserID: userID, Domain: "gamma.ai"},
		} {
			_, err := pgSQL.StoreFavorite(ctx, f)
			require.NoError(t, err)
		}

		all, total, err := pgSQL.UserFavorites(ctx, userID, storage.FavoriteFilter{Limit: 2})
		require.NoError(t, err)
		require.EqualValues(t, 3, total)
		require.Len(t, all, 2)
		require.Equal(t, "gamma.ai", all[0].Domain)
		require.Empty(t, all[0].Tags)

		rest, _, err := pgSQL.UserFavorites(ctx, userID, storage.FavoriteFilter{Offset: 2, Limit: 2})
		require.NoError(t, err)
		require.Len(t, rest, 1)
		require.Equal(t, "alpha.com", rest[0].Domain)

		searched, total, err := pgSQL.UserFavorites(ctx, userID, storage.FavoriteFilter{Search: "ALPHA", Limit: 10})
		require.NoError(t, err)
		require.EqualValues(t, 2, total)
		require.Len(t, searched, 2)

		onlyAvailable, total, err := pgSQL.UserFavorites(ctx, userID, storage.FavoriteFilter{Available: &available, Limit: 10})
		require.NoError(t, err)
		require.EqualValues(t, 1, total)
		require.Equal(t, "alpha.com", onlyAvailable[0].Domain)

		n, err := pgSQL.CountUserFavorites(ctx, userID)
		require.NoError(t, err)
		require.EqualValues(t, 3, n)
	})

	t.Run("search escapes wildcards", func(t *testing.T) {
		t.Parallel()

		userID := domain.UserID(uuid.New())
		_, err := pgSQL.StoreFavorite(ctx, domain.Favorite{UserID: userID, Domain: "plain.com"})
		require.NoError(t, err)

		res, total, err := pgSQL.UserFavorites(ctx, userID, storage.FavoriteFilter{Search: "%", Limit: 10})
		require.NoError(t, err)
		require.Zero(t, total)
		require.Empty(t, res)
	})

	t.Run("update", func(t *testing.T) {
		t.Parallel()

		userID := domain.UserID(uuid.New())
		f, err := pgSQL.StoreFavorite(ctx, domain.Favorite{UserID: userID, Domain: "update.me", Notes: "old"})
		require.NoError(t, err)

		tags := []string{"new"}
		notes := "fresh"
		updated, err := pgSQL.UpdateFavorite(ctx, userID, f.ID, storage.FavoriteUpdates{
			Tags:        &tags,
			Notes:       &notes,
			IsAvailable: &available,
		})
		require.NoError(t, err)
		require.NotNil(t, updated)
		require.Equal(t, tags, updated.Tags)
		require.Equal(t, notes, updated.Notes)
		require.NotNil(t, updated.IsAvailable)
		require.True(t, *updated.IsAvailable)
		require.False(t, updated.LastCheckedAt.IsZero())
		require.False(t, updated.UpdatedAt.IsZero())

		// other users cannot see or update it
		missing, err := pgSQL.UpdateFavorite(ctx, domain.UserID(uuid.New()), f.ID, storage.FavoriteUpdates{Notes: &notes})
		require.NoError(t, err)
		require.Nil(t, missing)

		got, err := pgSQL.FavoriteByID(ctx, userID, f.ID)
		require.NoError(t, err)
		require.Equal(t, "fresh", got.Notes)
	})

	t.Run("delete", func(t *testing.T) {
		t.Parallel()

		userID := domain.UserID(uuid.New())
		f1, err := pgSQL.StoreFavorite(ctx, domain.Favorite{UserID: userID, Domain: "one.com"})
		require.NoError(t, err)
		f2, err := pgSQL.StoreFavorite(ctx, domain.Favorite{UserID: userID, Domain: "two.com"})
		require.NoError(t, err)

		n, err := pgSQL.DeleteFavorites(ctx, domain.UserID(uuid.New()), f1.ID)
		require.NoError(t, err)
		require.Zero(t, n)

		n, err = pgSQL.DeleteFavorites(ctx, userID, f1.ID, f2.ID, domain.FavoriteID(uuid.New()))
		require.NoError(t, err)
		require.EqualValues(t, 2, n)

		n, err = pgSQL.DeleteFavorites(ctx, userID)
		require.NoError(t, err)
		require.Zero(t, n)

		got, err := pgSQL.FavoriteByID(ctx, userID, f1.ID)
		require.NoError(t, err)
		require.Nil(t, got)
	})
}
