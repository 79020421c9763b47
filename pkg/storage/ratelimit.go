package storage

import (
	"context"
	"time"

	"smartdomain/pkg/domain"
)

// RequestFilter selects recorded requests to count. Empty fields are ignored.
type RequestFilter struct {
	Endpoint  string
	IPAddress string
	UserID    domain.UserID
	SessionID string
	// Since keeps requests recorded at or after this time.
	Since time.Time
}

// RateLimitStorage records requests and counts them over time windows.
//
//go:generate mockgen -package mockstorage -source=ratelimit.go -destination=mock/mockratelimit.go *
type RateLimitStorage interface {
	// CountRequests counts the recorded requests matching filter.
	CountRequests(ctx context.Context, filter RequestFilter) (int64, error)
	// StoreRequest records a request.
	StoreRequest(ctx context.Context, record domain.RequestRecord) error
	// DeleteRequestsBefore removes records older than before.
	DeleteRequestsBefore(ctx context.Context, before time.Time) (int64, error)
}
