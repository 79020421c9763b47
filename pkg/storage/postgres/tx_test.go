package postgres_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"smartdomain/pkg/domain"
	"smartdomain/pkg/storage"
	"smartdomain/pkg/storage/postgres"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestPgSQL_Begin_SuccessAndAlreadyInTx(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()

	txStorage, err := pg.Begin(ctx)
	require.NoError(t, err)
	require.NotNil(t, txStorage)

	inner, ok := txStorage.(*postgres.PgSQL)
	require.True(t, ok)
	_, isTx := inner.DB.(*sql.Tx)
	require.True(t, isTx)

	// nested transactions are not supported
	_, err = inner.Begin(ctx)
	require.ErrorIs(t, err, storage.ErrAlreadyInTx)

	require.NoError(t, inner.Rollback())
}

func TestPgSQL_Commit_SuccessAndNotInTx(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()

	require.ErrorIs(t, pg.Commit(), storage.ErrNotInTx)

	userID := domain.UserID(uuid.New())
	txStorage, err := pg.Begin(ctx)
	require.NoError(t, err)

	_, err = txStorage.UpsertProfile(ctx, domain.Profile{ID: userID, SubscriptionPlan: domain.PlanFree})
	require.NoError(t, err)

	// not visible before commit
	profile, err := pg.ProfileByID(ctx, userID)
	require.NoError(t, err)
	require.Nil(t, profile)

	require.NoError(t, txStorage.Commit())

	profile, err = pg.ProfileByID(ctx, userID)
	require.NoError(t, err)
	require.NotNil(t, profile)
	require.Equal(t, domain.PlanFree, profile.SubscriptionPlan)
}

func TestPgSQL_Rollback_SuccessAndNotInTx(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()

	require.ErrorIs(t, pg.Rollback(), storage.ErrNotInTx)

	userID := domain.UserID(uuid.New())
	txStorage, err := pg.Begin(ctx)
	require.NoError(t, err)

	_, err = txStorage.UpsertProfile(ctx, domain.Profile{ID: userID, SubscriptionPlan: domain.PlanFree})
	require.NoError(t, err)

	require.NoError(t, txStorage.Rollback())

	profile, err := pg.ProfileByID(ctx, userID)
	require.NoError(t, err)
	require.Nil(t, profile)
}

func TestPgSQL_WithTx_CommitAndRollback(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()

	// Success callback: profile and key are committed together
	userID := domain.UserID(uuid.New())
	err := pg.WithTx(ctx, func(s storage.AllStorage) error {
		if _, err := s.UpsertProfile(ctx, domain.Profile{ID: userID, SubscriptionPlan: domain.PlanProfessional}); err != nil {
			return err
		}
		_, err := s.StoreAPIKey(ctx, domain.APIKey{
			UserID:    userID,
			Name:      "ci",
			KeyHash:   "hash-commit",
			KeyPrefix: "sd_pro_abcd1234",
		})

		return err
	})
	require.NoError(t, err)

	profile, err := pg.ProfileByID(ctx, userID)
	require.NoError(t, err)
	require.NotNil(t, profile)
	keys, err := pg.UserAPIKeys(ctx, userID)
	require.NoError(t, err)
	require.Len(t, keys, 1)

	// Error in callback: nothing is persisted
	otherID := domain.UserID(uuid.New())
	err = pg.WithTx(ctx, func(s storage.AllStorage) error {
		_, _ = s.UpsertProfile(ctx, domain.Profile{ID: otherID})

		return errors.New("boom")
	})
	require.Error(t, err)

	profile, err = pg.ProfileByID(ctx, otherID)
	require.NoError(t, err)
	require.Nil(t, profile)
}
