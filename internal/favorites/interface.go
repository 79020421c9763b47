package favorites

import (
	"context"
	"smartdomain/pkg/domain"
)

// ListQuery selects a page of favorites. Zero Page and Limit take defaults.
type ListQuery struct {
	Page      int
	Limit     int
	Search    string
	Available *bool
}

// CreateInput is a domain to save.
type CreateInput struct {
	Domain      string
	Tags        []string
	Notes       string
	IsAvailable *bool
}

// UpdateInput lists the fields to change. Nil fields are left untouched.
type UpdateInput struct {
	Tags        *[]string
	Notes       *string
	IsAvailable *bool
}

//go:generate mockgen -package mockfavorites -source=interface.go -destination=mock/mockfavorites.go *
type Favorites interface {
	List(ctx context.Context, userID domain.UserID, query ListQuery) ([]domain.Favorite, domain.Pagination, error)
	Create(ctx context.Context, userID domain.UserID, input CreateInput) (*domain.Favorite, error)
	Get(ctx context.Context, userID domain.UserID, id domain.FavoriteID) (*domain.Favorite, error)
	Update(ctx context.Context, userID domain.UserID, id domain.FavoriteID, input UpdateInput) (*domain.Favorite, error)
	Delete(ctx context.Context, userID domain.UserID, id domain.FavoriteID) error
	DeleteMany(ctx context.Context, userID domain.UserID, ids []domain.FavoriteID) (int64, error)
}
