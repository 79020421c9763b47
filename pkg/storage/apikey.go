package storage

import (
	"context"
	"time"

	"smartdomain/pkg/domain"
)

// APIKeyStorage persists API keys and their usage log.
//
//go:generate mockgen -package mockstorage -source=apikey.go -destination=mock/mockapikey.go *
type APIKeyStorage interface {
	// StoreAPIKey inserts a key and returns the stored row.
	StoreAPIKey(ctx context.Context, key domain.APIKey) (*domain.APIKey, error)
	// UserAPIKeys lists the keys of a user, newest first.
	UserAPIKeys(ctx context.Context, userID domain.UserID) ([]domain.APIKey, error)
	// APIKeyByHash looks a key up by the hash of its secret. It returns nil
	// when no key matches.
	APIKeyByHash(ctx context.Context, hash string) (*domain.APIKey, error)
	// DeleteAPIKey removes a key of the user and reports whether it existed.
	DeleteAPIKey(ctx context.Context, userID domain.UserID, id domain.APIKeyID) (bool, error)
	// TouchAPIKey sets the last used time of a key.
	TouchAPIKey(ctx context.Context, id domain.APIKeyID, at time.Time) error
	// StoreAPIKeyUsage logs one request made with a key.
	StoreAPIKeyUsage(ctx context.Context, usage domain.APIKeyUsage) error
	// APIUsageCount counts the API requests made with any key of a user since
	// the given time, including keys deleted since.
	APIUsageCount(ctx context.Context, userID domain.UserID, since time.Time) (int64, error)
	// DeleteAPIKeyUsageBefore removes usage rows older than before.
	DeleteAPIKeyUsageBefore(ctx context.Context, before time.Time) (int64, error)
}
