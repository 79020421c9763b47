package postgres

import (
	"context"
	"fmt"
	"smartdomain/pkg/domain"
	"time"

	"github.com/doug-martin/goqu/v9"
)

type pgSystemStats struct {
	TotalSearches int64 `db:"total_searches"`
	TodaySearches int64 `db:"today_searches"`
	TotalResults  int64 `db:"total_results"`
}

// SystemStats gathers the service-wide counters.
func (p *PgSQL) SystemStats(ctx context.Context, dayStart time.Time) (domain.SystemStats, error) {
	users, err := p.Builder.From(profilesTable).CountContext(ctx)
	if err != nil {
		return domain.SystemStats{}, fmt.Errorf("could not count profiles: %w", err)
	}

	favorites, err := p.Builder.From(favoritesTable).CountContext(ctx)
	if err != nil {
		return domain.SystemStats{}, fmt.Errorf("could not count favorites: %w", err)
	}

	var searches pgSystemStats
	if _, err := p.Builder.From(historyTable).
		Select(
			goqu.COUNT(goqu.Star()).As("total_searches"),
			goqu.L("COUNT(*) FILTER (WHERE created_at >= ?)", dayStart).As("today_searches"),
			goqu.COALESCE(goqu.SUM("result_count"), 0).As("total_results"),
		).
		Executor().ScanStructContext(ctx, &searches); err != nil {
		return domain.SystemStats{}, fmt.Errorf("could not aggregate searches: %w", err)
	}

	return domain.SystemStats{
		TotalUsers:            users,
		TotalFavorites:        favorites,
		TotalSearches:         searches.TotalSearches,
		TodaySearches:         searches.TodaySearches,
		TotalDomainsGenerated: searches.TotalResults,
	}, nil
}
