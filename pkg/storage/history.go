package storage

import (
	"context"
	"time"

	"smartdomain/pkg/domain"
)

// HistoryFilter narrows and pages a history listing.
type HistoryFilter struct {
	// Search matches case-insensitively against the search term.
	Search     string
	SearchType domain.SearchType
	Offset     uint
	Limit      uint
}

// HistoryStorage persists search history. Every operation is scoped to a user.
//
//go:generate mockgen -package mockstorage -source=history.go -destination=mock/mockhistory.go *
type HistoryStorage interface {
	// StoreHistory inserts a history entry and returns the stored row.
	StoreHistory(ctx context.Context, entry domain.SearchHistory) (*domain.SearchHistory, error)
	// UserHistory returns a page of entries, newest first, and the number of
	// entries matching the filter.
	UserHistory(ctx context.Context,
		userID domain.UserID,
		filter HistoryFilter) ([]domain.SearchHistory, int64, error)
	// HistoryByID returns an entry, or nil when not found.
	HistoryByID(ctx context.Context, userID domain.UserID, id domain.HistoryID) (*domain.SearchHistory, error)
	// RecentHistory returns the newest entry with the same term and type
	// created at or after since, or nil.
	RecentHistory(ctx context.Context,
		userID domain.UserID,
		term string,
		searchType domain.SearchType,
		since time.Time) (*domain.SearchHistory, error)
	// DeleteHistory removes entries by id and returns how many were deleted.
	DeleteHistory(ctx context.Context, userID domain.UserID, ids ...domain.HistoryID) (int64, error)
	// ClearHistory removes every entry of the user.
	ClearHistory(ctx context.Context, userID domain.UserID) (int64, error)
	// HistoryStats aggregates the history of a user. Entries created at or
	// after dayStart count as today's.
	HistoryStats(ctx context.Context, userID domain.UserID, dayStart time.Time) (domain.HistoryStats, error)
}
