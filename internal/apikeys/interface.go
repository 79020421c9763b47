package apikeys

import (
	"context"
	"smartdomain/pkg/domain"
	"time"
)

// CreateInput describes a key to issue. A zero ExpiresAt never expires.
type CreateInput struct {
	Name        string
	Description string
	ExpiresAt   time.Time
}

// Created is a freshly issued key. Secret is the plaintext token; it is only
// available at creation time.
type Created struct {
	domain.APIKey

	Secret string `json:"key"`
}

// Principal is the identity behind a valid key.
type Principal struct {
	UserID domain.UserID
	KeyID  domain.APIKeyID
	Plan   domain.SubscriptionPlan
}

// Quota is the monthly allowance of a key. Limit is negative when unlimited.
type Quota struct {
	Limit     int       `json:"limit"`
	Used      int64     `json:"used"`
	Remaining int64     `json:"remaining"`
	ResetAt   time.Time `json:"resetAt"`
}

//go:generate mockgen -package mockapikeys -source=interface.go -destination=mock/mockapikeys.go *
type APIKeys interface {
	Create(ctx context.Context, userID domain.UserID, input CreateInput) (*Created, error)
	List(ctx context.Context, userID domain.UserID) ([]domain.APIKey, error)
	Delete(ctx context.Context, userID domain.UserID, id domain.APIKeyID) error
	// Validate resolves a plaintext token. Unknown, malformed and expired
	// tokens are UNAUTHORIZED.
	Validate(ctx context.Context, token string) (*Principal, error)
	// CheckQuota counts this month's usage of the key against its plan.
	CheckQuota(ctx context.Context, principal Principal) (Quota, error)
	// RecordUsage logs a request made with a key. Failures are only logged.
	RecordUsage(ctx context.Context, usage domain.APIKeyUsage)
}
