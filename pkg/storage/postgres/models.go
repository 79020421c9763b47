package postgres

import (
	"database/sql"
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"smartdomain/pkg/domain"
	"time"

	"github.com/google/uuid"
)

// JSONB is a raw jsonb column value. An empty value is written as NULL.
type JSONB json.RawMessage

// Value implements driver.Valuer.
func (j JSONB) Value() (driver.Value, error) {
	if len(j) == 0 {
		return nil, nil
	}

	return string(j), nil
}

// Scan implements sql.Scanner.
func (j *JSONB) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*j = nil
	case []byte:
		*j = append(JSONB(nil), v...)
	case string:
		*j = JSONB(v)
	default:
		return fmt.Errorf("could not scan %T into jsonb", src)
	}

	return nil
}

// Tags is a jsonb array of strings. A nil slice is written as an empty array.
type Tags []string

// Value implements driver.Valuer.
func (t Tags) Value() (driver.Value, error) {
	if t == nil {
		return "[]", nil
	}

	b, err := json.Marshal([]string(t))
	if err != nil {
		return nil, fmt.Errorf("could not marshal tags: %w", err)
	}

	return string(b), nil
}

// Scan implements sql.Scanner.
func (t *Tags) Scan(src any) error {
	var raw JSONB
	if err := raw.Scan(src); err != nil {
		return err
	}
	if len(raw) == 0 {
		*t = Tags{}

		return nil
	}

	var out []string
	if err := json.Unmarshal(raw, &out); err != nil {
		return fmt.Errorf("could not unmarshal tags: %w", err)
	}
	if out == nil {
		out = []string{}
	}
	*t = out

	return nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func nullTime(t time.Time) sql.NullTime {
	return sql.NullTime{Time: t, Valid: !t.IsZero()}
}

type PgProfile struct {
	ID               uuid.UUID      `db:"id"`
	Email            sql.NullString `db:"email"`
	FullName         sql.NullString `db:"full_name"`
	SubscriptionPlan string         `db:"subscription_plan"`
	CreatedAt        time.Time      `db:"created_at"        goqu:"skipinsert"`
	UpdatedAt        sql.NullTime   `db:"updated_at"        goqu:"skipinsert"`
}

func (p *PgProfile) ToDomain() *domain.Profile {
	return &domain.Profile{
		ID:               domain.UserID(p.ID),
		Email:            p.Email.String,
		FullName:         p.FullName.String,
		SubscriptionPlan: domain.SubscriptionPlan(p.SubscriptionPlan),
		CreatedAt:        p.CreatedAt,
		UpdatedAt:        p.UpdatedAt.Time,
	}
}

func (p *PgProfile) FromDomain(profile domain.Profile) {
	plan := profile.SubscriptionPlan
	if plan == "" {
		plan = domain.PlanFree
	}

	*p = PgProfile{
		ID:               uuid.UUID(profile.ID),
		Email:            nullString(profile.Email),
		FullName:         nullString(profile.FullName),
		SubscriptionPlan: string(plan),
	}
}

type PgFavorite struct {
	ID            uuid.UUID      `db:"id"              goqu:"skipinsert"`
	UserID        uuid.UUID      `db:"user_id"`
	Domain        string         `db:"domain"`
	Tags          Tags           `db:"tags"`
	Notes         sql.NullString `db:"notes"`
	IsAvailable   sql.NullBool   `db:"is_available"`
	LastCheckedAt sql.NullTime   `db:"last_checked_at"`
	CreatedAt     time.Time      `db:"created_at"      goqu:"skipinsert"`
	UpdatedAt     sql.NullTime   `db:"updated_at"      goqu:"skipinsert"`
}

func (p *PgFavorite) ToDomain() *domain.Favorite {
	f := &domain.Favorite{
		ID:            domain.FavoriteID(p.ID),
		UserID:        domain.UserID(p.UserID),
		Domain:        p.Domain,
		Tags:          []string(p.Tags),
		Notes:         p.Notes.String,
		LastCheckedAt: p.LastCheckedAt.Time,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt.Time,
	}
	if f.Tags == nil {
		f.Tags = []string{}
	}
	if p.IsAvailable.Valid {
		available := p.IsAvailable.Bool
		f.IsAvailable = &available
	}

	return f
}

func (p *PgFavorite) FromDomain(favorite domain.Favorite) {
	*p = PgFavorite{
		UserID:        uuid.UUID(favorite.UserID),
		Domain:        favorite.Domain,
		Tags:          Tags(favorite.Tags),
		Notes:         nullString(favorite.Notes),
		LastCheckedAt: nullTime(favorite.LastCheckedAt),
	}
	if favorite.IsAvailable != nil {
		p.IsAvailable = sql.NullBool{Bool: *favorite.IsAvailable, Valid: true}
	}
}

func pgFavoritesToDomain(rows []PgFavorite) []domain.Favorite {
	out := make([]domain.Favorite, 0, len(rows))
	for i := range rows {
		out = append(out, *rows[i].ToDomain())
	}

	return out
}

type PgHistory struct {
	ID            uuid.UUID `db:"id"             goqu:"skipinsert"`
	UserID        uuid.UUID `db:"user_id"`
	SearchTerm    string    `db:"search_term"`
	DomainResults JSONB     `db:"domain_results"`
	ResultCount   int       `db:"result_count"`
	SearchType    string    `db:"search_type"`
	Filters       JSONB     `db:"filters"`
	CreatedAt     time.Time `db:"created_at"     goqu:"skipinsert"`
}

func (p *PgHistory) ToDomain() *domain.SearchHistory {
	results := json.RawMessage(p.DomainResults)
	if len(results) == 0 {
		results = json.RawMessage("[]")
	}

	return &domain.SearchHistory{
		ID:            domain.HistoryID(p.ID),
		UserID:        domain.UserID(p.UserID),
		SearchTerm:    p.SearchTerm,
		DomainResults: results,
		ResultCount:   p.ResultCount,
		SearchType:    domain.SearchType(p.SearchType),
		Filters:       json.RawMessage(p.Filters),
		CreatedAt:     p.CreatedAt,
	}
}

func (p *PgHistory) FromDomain(entry domain.SearchHistory) {
	results := JSONB(entry.DomainResults)
	if len(results) == 0 {
		results = JSONB("[]")
	}
	searchType := entry.SearchType
	if searchType == "" {
		searchType = domain.SearchTypeKeyword
	}

	*p = PgHistory{
		UserID:        uuid.UUID(entry.UserID),
		SearchTerm:    entry.SearchTerm,
		DomainResults: results,
		ResultCount:   entry.ResultCount,
		SearchType:    string(searchType),
		Filters:       JSONB(entry.Filters),
	}
}

func pgHistoryToDomain(rows []PgHistory) []domain.SearchHistory {
	out := make([]domain.SearchHistory, 0, len(rows))
	for i := range rows {
		out = append(out, *rows[i].ToDomain())
	}

	return out
}

type PgHistoryStats struct {
	TotalSearches int64        `db:"total_searches"`
	TodaySearches int64        `db:"today_searches"`
	TotalResults  int64        `db:"total_results"`
	LastSearchAt  sql.NullTime `db:"last_search_at"`
}

type PgAPIKey struct {
	ID          uuid.UUID      `db:"id"           goqu:"skipinsert"`
	UserID      uuid.UUID      `db:"user_id"`
	Name        string         `db:"name"`
	Description sql.NullString `db:"description"`
	KeyHash     string         `db:"key_hash"`
	KeyPrefix   string         `db:"key_prefix"`
	LastUsedAt  sql.NullTime   `db:"last_used_at" goqu:"skipinsert"`
	ExpiresAt   sql.NullTime   `db:"expires_at"`
	CreatedAt   time.Time      `db:"created_at"   goqu:"skipinsert"`
	UpdatedAt   sql.NullTime   `db:"updated_at"   goqu:"skipinsert"`
}

func (p *PgAPIKey) ToDomain() *domain.APIKey {
	return &domain.APIKey{
		ID:          domain.APIKeyID(p.ID),
		UserID:      domain.UserID(p.UserID),
		Name:        p.Name,
		Description: p.Description.String,
		KeyHash:     p.KeyHash,
		KeyPrefix:   p.KeyPrefix,
		LastUsedAt:  p.LastUsedAt.Time,
		ExpiresAt:   p.ExpiresAt.Time,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt.Time,
	}
}

func (p *PgAPIKey) FromDomain(key domain.APIKey) {
	*p = PgAPIKey{
		UserID:      uuid.UUID(key.UserID),
		Name:        key.Name,
		Description: nullString(key.Description),
		KeyHash:     key.KeyHash,
		KeyPrefix:   key.KeyPrefix,
		ExpiresAt:   nullTime(key.ExpiresAt),
	}
}

type PgAPIKeyUsage struct {
	APIKeyID   uuid.UUID      `db:"api_key_id"`
	UserID     uuid.UUID      `db:"user_id"`
	Endpoint   string         `db:"endpoint"`
	Method     string         `db:"method"`
	StatusCode int            `db:"status_code"`
	IPAddress  sql.NullString `db:"ip_address"`
	UserAgent  sql.NullString `db:"user_agent"`
	CreatedAt  time.Time      `db:"created_at"`
}

func (p *PgAPIKeyUsage) FromDomain(usage domain.APIKeyUsage) {
	createdAt := usage.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}

	*p = PgAPIKeyUsage{
		APIKeyID:   uuid.UUID(usage.APIKeyID),
		UserID:     uuid.UUID(usage.UserID),
		Endpoint:   usage.Endpoint,
		Method:     usage.Method,
		StatusCode: usage.StatusCode,
		IPAddress:  nullString(usage.IPAddress),
		UserAgent:  nullString(usage.UserAgent),
		CreatedAt:  createdAt,
	}
}

type PgRequest struct {
	IPAddress string         `db:"ip_address"`
	Endpoint  string         `db:"endpoint"`
	UserID    uuid.NullUUID  `db:"user_id"`
	SessionID sql.NullString `db:"session_id"`
	UserAgent sql.NullString `db:"user_agent"`
	CreatedAt time.Time      `db:"created_at"`
}

func (p *PgRequest) FromDomain(record domain.RequestRecord) {
	createdAt := record.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}

	*p = PgRequest{
		IPAddress: record.IPAddress,
		Endpoint:  record.Endpoint,
		UserID:    uuid.NullUUID{UUID: uuid.UUID(record.UserID), Valid: !record.UserID.IsZero()},
		SessionID: nullString(record.SessionID),
		UserAgent: nullString(record.UserAgent),
		CreatedAt: createdAt,
	}
}
