package storage

import (
	"context"

	"smartdomain/pkg/domain"
)

// FavoriteFilter narrows and pages a favorites listing.
type FavoriteFilter struct {
	// Search matches case-insensitively against the domain and the notes.
	Search string
	// Available, when set, keeps only favorites with that availability.
	Available *bool
	Offset    uint
	Limit     uint
}

// FavoriteUpdates lists the fields of a favorite to change. Nil fields are
// left untouched.
type FavoriteUpdates struct {
	Tags  *[]string
	Notes *string
	// IsAvailable also stamps last_checked_at when set.
	IsAvailable *bool
}

// FavoriteStorage persists saved domains. Every operation is scoped to a user.
//
//go:generate mockgen -package mockstorage -source=favorite.go -destination=mock/mockfavorite.go *
type FavoriteStorage interface {
	// StoreFavorite inserts a favorite. It returns ErrDuplicate when the user
	// already saved the domain.
	StoreFavorite(ctx context.Context, favorite domain.Favorite) (*domain.Favorite, error)
	// UserFavorites returns a page of favorites, newest first, and the number
	// of favorites matching the filter.
	UserFavorites(ctx context.Context, userID domain.UserID, filter FavoriteFilter) ([]domain.Favorite, int64, error)
	// FavoriteByID returns a favorite, or nil when not found.
	FavoriteByID(ctx context.Context, userID domain.UserID, id domain.FavoriteID) (*domain.Favorite, error)
	// UpdateFavorite applies updates and returns the new row, or nil when not found.
	UpdateFavorite(ctx context.Context,
		userID domain.UserID,
		id domain.FavoriteID,
		updates FavoriteUpdates) (*domain.Favorite, error)
	// DeleteFavorites removes favorites by id and returns how many were deleted.
	DeleteFavorites(ctx context.Context, userID domain.UserID, ids ...domain.FavoriteID) (int64, error)
	// CountUserFavorites returns the number of favorites of a user.
	CountUserFavorites(ctx context.Context, userID domain.UserID) (int64, error)
}
