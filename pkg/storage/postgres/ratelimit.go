package postgres

import (
	"context"
	"fmt"
	"smartdomain/pkg/domain"
	"smartdomain/pkg/storage"
	"time"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
)

const (
	rateLimitTable = "rate_limiting"
)

// CountRequests counts recorded requests. Every non-empty field of the filter
// narrows the count.
func (p *PgSQL) CountRequests(ctx context.Context, filter storage.RequestFilter) (int64, error) {
	var w []goqu.Expression
	if filter.Endpoint != "" {
		w = append(w, goqu.I("endpoint").Eq(filter.Endpoint))
	}
	if filter.IPAddress != "" {
		w = append(w, goqu.I("ip_address").Eq(filter.IPAddress))
	}
	if !filter.UserID.IsZero() {
		w = append(w, goqu.I("user_id").Eq(uuid.UUID(filter.UserID)))
	}
	if filter.SessionID != "" {
		w = append(w, goqu.I("session_id").Eq(filter.SessionID))
	}
	if !filter.Since.IsZero() {
		w = append(w, goqu.I("created_at").Gte(filter.Since))
	}

	n, err := p.Builder.From(rateLimitTable).Where(w...).CountContext(ctx)
	if err != nil {
		return 0, fmt.Errorf("could not count requests in pg: %w", err)
	}

	return n, nil
}

func (p *PgSQL) StoreRequest(ctx context.Context, record domain.RequestRecord) error {
	var row PgRequest
	row.FromDomain(record)

	if _, err := p.Builder.Insert(rateLimitTable).Rows(row).Executor().ExecContext(ctx); err != nil {
		return fmt.Errorf("could not store request into pg: %w", err)
	}

	return nil
}

func (p *PgSQL) DeleteRequestsBefore(ctx context.Context, before time.Time) (int64, error) {
	res, err := p.Builder.Delete(rateLimitTable).
		Where(goqu.I("created_at").Lt(before)).
		Executor().ExecContext(ctx)
	if err != nil {
		return 0, fmt.Errorf("could not delete requests in pg: %w", err)
	}

	return res.RowsAffected()
}
