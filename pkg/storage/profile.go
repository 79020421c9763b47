package storage

import (
	"context"

	"smartdomain/pkg/domain"
)

// ProfileStorage persists user profiles.
//
//go:generate mockgen -package mockstorage -source=profile.go -destination=mock/mockprofile.go *
type ProfileStorage interface {
	// ProfileByID returns the profile of a user, or nil when none exists.
	ProfileByID(ctx context.Context, id domain.UserID) (*domain.Profile, error)
	// UpsertProfile creates the profile or updates its plan and contact fields.
	UpsertProfile(ctx context.Context, profile domain.Profile) (*domain.Profile, error)
}
