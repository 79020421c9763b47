package postgres_test

import (
	"context"
	"smartdomain/pkg/domain"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestPgSQL_Profiles(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)

	ctx := context.Background()
	userID := domain.UserID(uuid.New())

	got, err := pgSQL.ProfileByID(ctx, userID)
	require.NoError(t, err)
	require.Nil(t, got)

	p, err := pgSQL.UpsertProfile(ctx, domain.Profile{ID: userID, Email: "jane@example.com"})
	require.NoError(t, err)
	require.Equal(t, domain.PlanFree, p.SubscriptionPlan)
	require.Equal(t, "jane@example.com", p.Email)
	require.True(t, p.UpdatedAt.IsZero())

	p, err = pgSQL.UpsertProfile(ctx, domain.Profile{ID: userID, SubscriptionPlan: domain.PlanEnterprise})
	require.NoError(t, err)
	require.Equal(t, domain.PlanEnterprise, p.SubscriptionPlan)
	require.Equal(t, "jane@example.com", p.Email)
	require.False(t, p.UpdatedAt.IsZero())

	got, err = pgSQL.ProfileByID(ctx, userID)
	require.NoError(t, err)
	require.Equal(t, domain.PlanEnterprise, got.SubscriptionPlan)
}
