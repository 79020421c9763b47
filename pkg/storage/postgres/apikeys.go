package postgres

import (
	"context"
	"fmt"
	"smartdomain/pkg/domain"
	"time"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
)

const (
	apiKeysTable     = "api_keys"
	apiKeyUsageTable = "api_key_usage"
)

func (p *PgSQL) StoreAPIKey(ctx context.Context, key domain.APIKey) (*domain.APIKey, error) {
	var row PgAPIKey
	row.FromDomain(key)

	var result PgAPIKey
	if _, err := p.Builder.Insert(apiKeysTable).
		Rows(row).
		Returning(&PgAPIKey{}).
		Executor().ScanStructContext(ctx, &result); err != nil {
		return nil, fmt.Errorf("could not store api key into pg: %w", err)
	}

	return result.ToDomain(), nil
}

func (p *PgSQL) UserAPIKeys(ctx context.Context, userID domain.UserID) ([]domain.APIKey, error) {
	var rows []PgAPIKey
	if err := p.Builder.From(apiKeysTable).
		Where(goqu.I("user_id").Eq(uuid.UUID(userID))).
		Order(goqu.I("created_at").Desc()).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch user api keys from pg: %w", err)
	}

	out := make([]domain.APIKey, 0, len(rows))
	for i := range rows {
		out = append(out, *rows[i].ToDomain())
	}

	return out, nil
}

func (p *PgSQL) APIKeyByHash(ctx context.Context, hash string) (*domain.APIKey, error) {
	var row PgAPIKey
	found, err := p.Builder.From(apiKeysTable).
		Where(goqu.I("key_hash").Eq(hash)).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch api key by hash: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

func (p *PgSQL) DeleteAPIKey(ctx context.Context, userID domain.UserID, id domain.APIKeyID) (bool, error) {
	res, err := p.Builder.Delete(apiKeysTable).
		Where(
			goqu.I("id").Eq(uuid.UUID(id)),
			goqu.I("user_id").Eq(uuid.UUID(userID)),
		).Executor().ExecContext(ctx)
	if err != nil {
		return false, fmt.Errorf("could not delete api key in pg: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("could not read deleted api key count: %w", err)
	}

	return n > 0, nil
}

func (p *PgSQL) TouchAPIKey(ctx context.Context, id domain.APIKeyID, at time.Time) error {
	if _, err := p.Builder.Update(apiKeysTable).
		Set(goqu.Record{"last_used_at": at}).
		Where(goqu.I("id").Eq(uuid.UUID(id))).
		Executor().ExecContext(ctx); err != nil {
		return fmt.Errorf("could not touch api key in pg: %w", err)
	}

	return nil
}

func (p *PgSQL) StoreAPIKeyUsage(ctx context.Context, usage domain.APIKeyUsage) error {
	var row PgAPIKeyUsage
	row.FromDomain(usage)

	if _, err := p.Builder.Insert(apiKeyUsageTable).Rows(row).Executor().ExecContext(ctx); err != nil {
		return fmt.Errorf("could not store api key usage into pg: %w", err)
	}

	return nil
}

func (p *PgSQL) APIUsageCount(ctx context.Context, userID domain.UserID, since time.Time) (int64, error) {
	n, err := p.Builder.From(apiKeyUsageTable).
		Where(
			goqu.I("user_id").Eq(uuid.UUID(userID)),
			goqu.I("created_at").Gte(since),
		).CountContext(ctx)
	if err != nil {
		return 0, fmt.Errorf("could not count api key usage in pg: %w", err)
	}

	return n, nil
}

func (p *PgSQL) DeleteAPIKeyUsageBefore(ctx context.Context, before time.Time) (int64, error) {
	res, err := p.Builder.Delete(apiKeyUsageTable).
		Where(goqu.I("created_at").Lt(before)).
		Executor().ExecContext(ctx)
	if err != nil {
		return 0, fmt.Errorf("could not delete api key usage in pg: %w", err)
	}

	return res.RowsAffected()
}
