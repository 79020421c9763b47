package domain

import (
	"time"

	"github.com/google/uuid"
)

// UserID uniquely identifies a user within the system.
// It is a thin wrapper around uuid.UUID to provide type safety at the domain layer.
type UserID uuid.UUID

// String returns the canonical UUID representation.
func (id UserID) String() string { return uuid.UUID(id).String() }

// MarshalText encodes the id in its canonical UUID form.
func (id UserID) MarshalText() ([]byte, error) { return uuid.UUID(id).MarshalText() }

// UnmarshalText decodes a UUID string into the id.
func (id *UserID) UnmarshalText(b []byte) error { return (*uuid.UUID)(id).UnmarshalText(b) }

// IsZero reports whether the id is unset (guest).
func (id UserID) IsZero() bool { return id == UserID{} }

// SubscriptionPlan is the billing tier of a profile. It drives API quotas.
type SubscriptionPlan string

const (
	PlanFree         SubscriptionPlan = "free"
	PlanProfessional SubscriptionPlan = "professional"
	PlanEnterprise   SubscriptionPlan = "enterprise"
)

// Valid reports whether the plan is a known tier.
func (p SubscriptionPlan) Valid() bool {
	switch p {
	case PlanFree, PlanProfessional, PlanEnterprise:
		return true
	default:
		return false
	}
}

// Profile is the per-user account record.
type Profile struct {
	ID               UserID           `json:"id"`
	Email            string           `json:"email,omitempty"`
	FullName         string           `json:"fullName,omitempty"`
	SubscriptionPlan SubscriptionPlan `json:"subscriptionPlan"`
	CreatedAt        time.Time        `json:"createdAt"`
	UpdatedAt        time.Time        `json:"updatedAt,omitzero"`
}
