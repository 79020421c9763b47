package domain

import (
	"time"

	"github.com/google/uuid"
)

// APIKeyID uniquely identifies an API key.
type APIKeyID uuid.UUID

// String returns the canonical UUID representation.
func (id APIKeyID) String() string { return uuid.UUID(id).String() }

// MarshalText encodes the id in its canonical UUID form.
func (id APIKeyID) MarshalText() ([]byte, error) { return uuid.UUID(id).MarshalText() }

// UnmarshalText decodes a UUID string into the id.
func (id *APIKeyID) UnmarshalText(b []byte) error { return (*uuid.UUID)(id).UnmarshalText(b) }

// APIKey is a stored API key. Only the hash of the secret is persisted.
type APIKey struct {
	ID          APIKeyID  `json:"id"`
	UserID      UserID    `json:"userId"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	KeyHash     string    `json:"-"`
	KeyPrefix   string    `json:"keyPrefix"`
	LastUsedAt  time.Time `json:"lastUsedAt,omitzero"`
	ExpiresAt   time.Time `json:"expiresAt,omitzero"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt,omitzero"`
}

// Expired reports whether the key has an expiry in the past relative to now.
func (k APIKey) Expired(now time.Time) bool {
	return !k.ExpiresAt.IsZero() && !now.Before(k.ExpiresAt)
}

// APIKeyUsage is a single logged request made with an API key.
type APIKeyUsage struct {
	APIKeyID   APIKeyID  `json:"apiKeyId"`
	UserID     UserID    `json:"userId"`
	Endpoint   string    `json:"endpoint"`
	Method     string    `json:"method"`
	StatusCode int       `json:"statusCode"`
	IPAddress  string    `json:"ipAddress,omitempty"`
	UserAgent  string    `json:"userAgent,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
}
