package storage

import (
	"context"
	"time"

	"smartdomain/pkg/domain"
)

// StatsStorage computes service-wide counters.
//
//go:generate mockgen -package mockstorage -source=stats.go -destination=mock/mockstats.go *
type StatsStorage interface {
	// SystemStats counts users, favorites and searches. Searches created at or
	// after dayStart count as today's.
	SystemStats(ctx context.Context, dayStart time.Time) (domain.SystemStats, error)
}
