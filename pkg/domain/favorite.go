package domain

import (
	"time"

	"github.com/google/uuid"
)

// FavoriteID uniquely identifies a saved domain.
type FavoriteID uuid.UUID

// String returns the canonical UUID representation.
func (id FavoriteID) String() string { return uuid.UUID(id).String() }

// MarshalText encodes the id in its canonical UUID form.
func (id FavoriteID) MarshalText() ([]byte, error) { return uuid.UUID(id).MarshalText() }

// UnmarshalText decodes a UUID string into the id.
func (id *FavoriteID) UnmarshalText(b []byte) error { return (*uuid.UUID)(id).UnmarshalText(b) }

// Favorite is a domain a user saved for later.
type Favorite struct {
	ID            FavoriteID `json:"id"`
	UserID        UserID     `json:"userId"`
	Domain        string     `json:"domain"`
	Tags          []string   `json:"tags"`
	Notes         string     `json:"notes,omitempty"`
	IsAvailable   *bool      `json:"isAvailable,omitempty"`
	LastCheckedAt time.Time  `json:"lastCheckedAt,omitzero"`
	CreatedAt     time.Time  `json:"createdAt"`
	UpdatedAt     time.Time  `json:"updatedAt,omitzero"`
}
