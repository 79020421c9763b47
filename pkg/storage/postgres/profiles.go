package postgres

import (
	"context"
	"fmt"
	"smartdomain/pkg/domain"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
)

const (
	profilesTable = "profiles"
)

func (p *PgSQL) ProfileByID(ctx context.Context, id domain.UserID) (*domain.Profile, error) {
	var row PgProfile
	found, err := p.Builder.From(profilesTable).
		Where(goqu.I("id").Eq(uuid.UUID(id))).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch profile by id: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

// UpsertProfile inserts the profile or, when it exists, replaces its plan and
// fills contact fields that were provided.
func (p *PgSQL) UpsertProfile(ctx context.Context, profile domain.Profile) (*domain.Profile, error) {
	var row PgProfile
	row.FromDomain(profile)

	var result PgProfile
	if _, err := p.Builder.Insert(profilesTable).
		Rows(row).
		OnConflict(goqu.DoUpdate("id", goqu.Record{
			"email":             goqu.L("COALESCE(EXCLUDED.email, profiles.email)"),
			"full_name":         goqu.L("COALESCE(EXCLUDED.full_name, profiles.full_name)"),
			"subscription_plan": goqu.L("EXCLUDED.subscription_plan"),
			"updated_at":        goqu.L("CURRENT_TIMESTAMP"),
		})).
		Returning(&PgProfile{}).
		Executor().ScanStructContext(ctx, &result); err != nil {
		return nil, fmt.Errorf("could not upsert profile into pg: %w", err)
	}

	return result.ToDomain(), nil
}
