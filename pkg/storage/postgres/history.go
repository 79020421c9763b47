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
	historyTable = "search_history"
)

func (p *PgSQL) StoreHistory(ctx context.Context, entry domain.SearchHistory) (*domain.SearchHistory, error) {
	var row PgHistory
	row.FromDomain(entry)

	var result PgHistory
	if _, err := p.Builder.Insert(historyTable).
		Rows(row).
		Returning(&PgHistory{}).
		Executor().ScanStructContext(ctx, &result); err != nil {
		return nil, fmt.Errorf("could not store search history into pg: %w", err)
	}

	return result.ToDomain(), nil
}

// UserHistory returns a page of history entries ordered by created_at DESC and
// the number of rows matching the filter.
func (p *PgSQL) UserHistory(ctx context.Context,
	userID domain.UserID,
	filter storage.HistoryFilter) ([]domain.SearchHistory, int64, error) {
	w := []goqu.Expression{
		goqu.I("user_id").Eq(uuid.UUID(userID)),
	}
	if filter.Search != "" {
		w = append(w, goqu.I("search_term").ILike(likePattern(filter.Search)))
	}
	if filter.SearchType != "" {
		w = append(w, goqu.I("search_type").Eq(string(filter.SearchType)))
	}

	ds := p.Builder.From(historyTable).Where(w...)

	total, err := ds.CountContext(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("could not count user history in pg: %w", err)
	}

	var rows []PgHistory
	if err := ds.Order(goqu.I("created_at").Desc(), goqu.I("id").Desc()).
		Offset(filter.Offset).
		Limit(filter.Limit).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, 0, fmt.Errorf("could not fetch user history from pg: %w", err)
	}

	return pgHistoryToDomain(rows), total, nil
}

func (p *PgSQL) HistoryByID(ctx context.Context,
	userID domain.UserID,
	id domain.HistoryID) (*domain.SearchHistory, error) {
	var row PgHistory
	found, err := p.Builder.From(historyTable).
		Where(
			goqu.I("id").Eq(uuid.UUID(id)),
			goqu.I("user_id").Eq(uuid.UUID(userID)),
		).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch search history by id: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

// RecentHistory returns the newest entry of the user for the same term and
// search type created at or after since.
func (p *PgSQL) RecentHistory(ctx context.Context,
	userID domain.UserID,
	term string,
	searchType domain.SearchType,
	since time.Time) (*domain.SearchHistory, error) {
	var row PgHistory
	found, err := p.Builder.From(historyTable).
		Where(
			goqu.I("user_id").Eq(uuid.UUID(userID)),
			goqu.I("search_term").Eq(term),
			goqu.I("search_type").Eq(string(searchType)),
			goqu.I("created_at").Gte(since),
		).
		Order(goqu.I("created_at").Desc()).
		Limit(1).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch recent search history: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

func (p *PgSQL) DeleteHistory(ctx context.Context, userID domain.UserID, ids ...domain.HistoryID) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	uuids := make([]uuid.UUID, len(ids))
	for i, id := range ids {
		uuids[i] = uuid.UUID(id)
	}

	return p.deleteHistory(ctx,
		goqu.I("user_id").Eq(uuid.UUID(userID)),
		goqu.I("id").In(uuids),
	)
}

func (p *PgSQL) ClearHistory(ctx context.Context, userID domain.UserID) (int64, error) {
	return p.deleteHistory(ctx, goqu.I("user_id").Eq(uuid.UUID(userID)))
}

func (p *PgSQL) deleteHistory(ctx context.Context, w ...goqu.Expression) (int64, error) {
	res, err := p.Builder.Delete(historyTable).Where(w...).Executor().ExecContext(ctx)
	if err != nil {
		return 0, fmt.Errorf("could not delete search history in pg: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("could not read deleted search history count: %w", err)
	}

	return n, nil
}

// HistoryStats aggregates the history of a user in a single query.
func (p *PgSQL) HistoryStats(ctx context.Context,
	userID domain.UserID,
	dayStart time.Time) (domain.HistoryStats, error) {
	var row PgHistoryStats
	_, err := p.Builder.From(historyTable).
		Select(
			goqu.COUNT(goqu.Star()).As("total_searches"),
			goqu.L("COUNT(*) FILTER (WHERE created_at >= ?)", dayStart).As("today_searches"),
			goqu.COALESCE(goqu.SUM("result_count"), 0).As("total_results"),
			goqu.MAX("created_at").As("last_search_at"),
		).
		Where(goqu.I("user_id").Eq(uuid.UUID(userID))).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return domain.HistoryStats{}, fmt.Errorf("could not aggregate search history: %w", err)
	}

	return domain.HistoryStats{
		TotalSearches: row.TotalSearches,
		TodaySearches: row.TodaySearches,
		TotalResults:  row.TotalResults,
		LastSearchAt:  row.LastSearchAt.Time,
	}, nil
}
