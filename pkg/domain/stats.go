package domain

import "time"

// RequestRecord is one rate-limited request attempt.
type RequestRecord struct {
	IPAddress string
	Endpoint  string
	UserID    UserID
	SessionID string
	UserAgent string
	CreatedAt time.Time
}

// SystemStats are the public service counters.
type SystemStats struct {
	TotalUsers            int64 `json:"totalUsers"`
	TotalFavorites        int64 `json:"totalFavorites"`
	TotalSearches         int64 `json:"totalSearches"`
	TodaySearches         int64 `json:"todaySearches"`
	TotalDomainsGenerated int64 `json:"totalDomainsGenerated"`
}
