package ratelimit

import (
	"context"
	"smartdomain/pkg/domain"
	"time"
)

// Subject identifies who is making a request. A zero UserID is a guest.
type Subject struct {
	IP        string
	SessionID string
	UserAgent string
	UserID    domain.UserID
}

// Decision reports the daily allowance left after a request.
type Decision struct {
	Limit     int       `json:"limit"`
	Remaining int       `json:"remaining"`
	ResetAt   time.Time `json:"resetAt"`
}

//go:generate mockgen -package mockratelimit -source=interface.go -destination=mock/mockratelimit.go *
type Limiter interface {
	// Allow checks the windows of the subject on endpoint and records the
	// request when it is allowed. A denied request yields RATE_LIMITED with the
	// Decision as details. Storage failures are logged and the request is
	// allowed with a zero Decision.
	Allow(ctx context.Context, endpoint string, subject Subject) (Decision, error)
}
