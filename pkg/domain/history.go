package domain

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// HistoryID uniquely identifies a search history entry.
type HistoryID uuid.UUID

// String returns the canonical UUID representation.
func (id HistoryID) String() string { return uuid.UUID(id).String() }

// MarshalText encodes the id in its canonical UUID form.
func (id HistoryID) MarshalText() ([]byte, error) { return uuid.UUID(id).MarshalText() }

// UnmarshalText decodes a UUID string into the id.
func (id *HistoryID) UnmarshalText(b []byte) error { return (*uuid.UUID)(id).UnmarshalText(b) }

// SearchType classifies what the user searched for.
type SearchType string

const (
	SearchTypeKeyword SearchType = "keyword"
	SearchTypeDomain  SearchType = "domain"
	SearchTypeCompany SearchType = "company"
)

// Valid reports whether t is a known search type.
func (t SearchType) Valid() bool {
	switch t {
	case SearchTypeKeyword, SearchTypeDomain, SearchTypeCompany:
		return true
	default:
		return false
	}
}

// SearchHistory is one recorded search with its results stored verbatim.
type SearchHistory struct {
	ID            HistoryID       `json:"id"`
	UserID        UserID          `json:"userId"`
	SearchTerm    string          `json:"searchTerm"`
	DomainResults json.RawMessage `json:"domainResults"`
	ResultCount   int             `json:"resultCount"`
	SearchType    SearchType      `json:"searchType"`
	Filters       json.RawMessage `json:"filters,omitempty"`
	CreatedAt     time.Time       `json:"createdAt"`
}

// HistoryStats summarizes the search history of a user.
type HistoryStats struct {
	TotalSearches int64     `json:"totalSearches"`
	TodaySearches int64     `json:"todaySearches"`
	TotalResults  int64     `json:"totalResults"`
	LastSearchAt  time.Time `json:"lastSearchAt,omitzero"`
}
