package history

import (
	"context"
	"encoding/json"
	"smartdomain/pkg/domain"
)

// ListQuery selects a page of history. Zero Page and Limit take defaults.
type ListQuery struct {
	Page       int
	Limit      int
	Search     string
	SearchType domain.SearchType
}

// RecordInput is one search to remember. A nil ResultCount defaults to the
// length of DomainResults when it is an array.
type RecordInput struct {
	SearchTerm    string            `json:"searchTerm"`
	DomainResults json.RawMessage   `json:"domainResults,omitempty"`
	ResultCount   *int              `json:"resultCount,omitempty"`
	SearchType    domain.SearchType `json:"searchType,omitempty"`
	Filters       json.RawMessage   `json:"filters,omitempty"`
}

//go:generate mockgen -package mockhistory -source=interface.go -destination=mock/mockhistory.go *
type History interface {
	List(ctx context.Context, userID domain.UserID, query ListQuery) ([]domain.SearchHistory, domain.Pagination, error)
	// Record stores a search unless the same term and type was recorded within
	// the dedup window. It reports whether a new entry was created.
	Record(ctx context.Context, userID domain.UserID, input RecordInput) (*domain.SearchHistory, bool, error)
	// Enqueue schedules Record to run in the background.
	Enqueue(ctx context.Context, userID domain.UserID, input RecordInput) error
	Get(ctx context.Context, userID domain.UserID, id domain.HistoryID) (*domain.SearchHistory, error)
	Delete(ctx context.Context, userID domain.UserID, ids []domain.HistoryID) (int64, error)
	Clear(ctx context.Context, userID domain.UserID) (int64, error)
	Stats(ctx context.Context, userID domain.UserID) (domain.HistoryStats, error)
}
