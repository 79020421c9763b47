package postgres

import (
	"context"
	"fmt"
	"smartdomain/pkg/domain"
	"smartdomain/pkg/storage"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
)

const (
	favoritesTable = "domain_favorites"
)

// StoreFavorite inserts a favorite and returns the stored row. A second
// favorite for the same user and domain yields storage.ErrDuplicate.
func (p *PgSQL) StoreFavorite(ctx context.Context, favorite domain.Favorite) (*domain.Favorite, error) {
	var row PgFavorite
	row.FromDomain(favorite)

	var result PgFavorite
	if _, err := p.Builder.Insert(favoritesTable).
		Rows(row).
		Returning(&PgFavorite{}).
		Executor().ScanStructContext(ctx, &result); err != nil {
		if isUniqueViolation(err) {
			return nil, storage.ErrDuplicate
		}

		return nil, fmt.Errorf("could not store favorite into pg: %w", err)
	}

	return result.ToDomain(), nil
}

// UserFavorites returns a page of favorites ordered by created_at DESC and the
// number of rows matching the filter.
func (p *PgSQL) UserFavorites(ctx context.Context,
	userID domain.UserID,
	filter storage.FavoriteFilter) ([]domain.Favorite, int64, error) {
	w := []goqu.Expression{
		goqu.I("user_id").Eq(uuid.UUID(userID)),
	}
	if filter.Search != "" {
		pattern := likePattern(filter.Search)
		w = append(w, goqu.Or(
			goqu.I("domain").ILike(pattern),
			goqu.I("notes").ILike(pattern),
		))
	}
	if filter.Available != nil {
		w = append(w, goqu.I("is_available").Eq(*filter.Available))
	}

	ds := p.Builder.From(favoritesTable).Where(w...)

	total, err := ds.CountContext(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("could not count user favorites in pg: %w", err)
	}

	var rows []PgFavorite
	if err := ds.Order(goqu.I("created_at").Desc(), goqu.I("id").Desc()).
		Offset(filter.Offset).
		Limit(filter.Limit).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, 0, fmt.Errorf("could not fetch user favorites from pg: %w", err)
	}

	return pgFavoritesToDomain(rows), total, nil
}

// FavoriteByID returns a favorite of the user, or nil when it does not exist.
func (p *PgSQL) FavoriteByID(ctx context.Context,
	userID domain.UserID,
	id domain.FavoriteID) (*domain.Favorite, error) {
	var row PgFavorite
	found, err := p.Builder.From(favoritesTable).
		Where(
			goqu.I("id").Eq(uuid.UUID(id)),
			goqu.I("user_id").Eq(uuid.UUID(userID)),
		).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch favorite by id: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

// UpdateFavorite sets the non-nil fields of updates and stamps updated_at.
// Setting the availability also stamps last_checked_at.
func (p *PgSQL) UpdateFavorite(ctx context.Context,
	userID domain.UserID,
	id domain.FavoriteID,
	updates storage.FavoriteUpdates) (*domain.Favorite, error) {
	rec := goqu.Record{
		"updated_at": goqu.L("CURRENT_TIMESTAMP"),
	}
	if updates.Tags != nil {
		rec["tags"] = Tags(*updates.Tags)
	}
	if updates.Notes != nil {
		rec["notes"] = nullString(*updates.Notes)
	}
	if updates.IsAvailable != nil {
		rec["is_available"] = *updates.IsAvailable
		rec["last_checked_at"] = goqu.L("CURRENT_TIMESTAMP")
	}

	var row PgFavorite
	found, err := p.Builder.Update(favoritesTable).
		Set(rec).
		Where(
			goqu.I("id").Eq(uuid.UUID(id)),
			goqu.I("user_id").Eq(uuid.UUID(userID)),
		).Returning(&PgFavorite{}).Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not update favorite in pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

// DeleteFavorites removes the given favorites of the user.
func (p *PgSQL) DeleteFavorites(ctx context.Context, userID domain.UserID, ids ...domain.FavoriteID) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	uuids := make([]uuid.UUID, len(ids))
	for i, id := range ids {
		uuids[i] = uuid.UUID(id)
	}

	res, err := p.Builder.Delete(favoritesTable).
		Where(
			goqu.I("user_id").Eq(uuid.UUID(userID)),
			goqu.I("id").In(uuids),
		).Executor().ExecContext(ctx)
	if err != nil {
		return 0, fmt.Errorf("could not delete favorites in pg: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("could not read deleted favorites count: %w", err)
	}

	return n, nil
}

// CountUserFavorites returns the number of favorites saved by the user.
func (p *PgSQL) CountUserFavorites(ctx context.Context, userID domain.UserID) (int64, error) {
	n, err := p.Builder.From(favoritesTable).
		Where(goqu.I("user_id").Eq(uuid.UUID(userID))).
		CountContext(ctx)
	if err != nil {
		return 0, fmt.Errorf("could not count user favorites in pg: %w", err)
	}

	return n, nil
}
