package postgres_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"smartdomain/pkg/storage"
	"smartdomain/pkg/storage/postgres"

	"github.com/riverqueue/river"
	"github.com/riverqueue/river/riverdriver/riverdatabasesql"
	"github.com/riverqueue/river/rivermigrate"
	"github.com/riverqueue/river/rivertest"
	"github.com/stretchr/testify/require"
)

type recordSearchArgs struct {
	SearchTerm string `json:"searchTerm"`
}

func (recordSearchArgs) Kind() string { return "test_record_search" }

func migrateRiver(t *testing.T, pg *postgres.PgSQL) {
	t.Helper()
	migrator, err := rivermigrate.New(riverdatabasesql.New(pg.DB.(*sql.DB)), nil)
	require.NoError(t, err)
	_, err = migrator.Migrate(t.Context(), rivermigrate.DirectionUp, nil)
	require.NoError(t, err)
}

func TestPgSQL_AddJob_InsideTransaction(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()
	migrateRiver(t, pg)

	ctx := context.Background()

	txStorage, err := pg.Begin(ctx)
	require.NoError(t, err)
	defer func() { _ = txStorage.Rollback() }()

	added, err := txStorage.AddJob(ctx, recordSearchArgs{SearchTerm: "coffee shop"}, nil)
	require.NoError(t, err)
	require.True(t, added)

	rivertest.RequireInsertedTx[*riverdatabasesql.Driver](
		ctx,
		t,
		txStorage.(*postgres.PgSQL).DB.(*sql.Tx),
		&recordSearchArgs{},
		nil,
	)
}

func TestPgSQL_AddJob_RolledBackTransaction(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()
	migrateRiver(t, pg)

	ctx := context.Background()

	err := pg.WithTx(ctx, func(tx storage.AllStorage) error {
		_, err := tx.AddJob(ctx, recordSearchArgs{SearchTerm: "coffee shop"}, nil)
		require.NoError(t, err)

		return context.Canceled
	})
	require.ErrorIs(t, err, context.Canceled)

	var count int
	require.NoError(t, pg.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM river_job`).Scan(&count))
	require.Zero(t, count)
}

func TestPgSQL_AddJob_OutsideTransaction(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()
	migrateRiver(t, pg)

	ctx := context.Background()

	added, err := pg.AddJob(ctx, recordSearchArgs{SearchTerm: "coffee shop"}, nil)
	require.NoError(t, err)
	require.True(t, added)

	rivertest.RequireInserted[*riverdatabasesql.Driver](
		ctx,
		t,
		riverdatabasesql.New(pg.DB.(*sql.DB)),
		&recordSearchArgs{},
		nil,
	)
}

func TestPgSQL_AddJob_UniqueDuplicateSkipped(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()
	migrateRiver(t, pg)

	ctx := context.Background()
	opts := &river.InsertOpts{UniqueOpts: river.UniqueOpts{ByArgs: true, ByPeriod: time.Hour}}

	added, err := pg.AddJob(ctx, recordSearchArgs{SearchTerm: "coffee shop"}, opts)
	require.NoError(t, err)
	require.True(t, added)

	added, err = pg.AddJob(ctx, recordSearchArgs{SearchTerm: "coffee shop"}, opts)
	require.NoError(t, err)
	require.False(t, added)

	added, err = pg.AddJob(ctx, recordSearchArgs{SearchTerm: "tea house"}, opts)
	require.NoError(t, err)
	require.True(t, added)
}
