package stats

import (
	"context"
	"smartdomain/pkg/domain"
)

// Report is the public view of service counters.
type Report struct {
	domain.SystemStats

	ServiceUptime float64 `json:"serviceUptime"`
	Availability  string  `json:"availability"`
}

//go:generate mockgen -package mockstats -source=interface.go -destination=mock/mockstats.go *
type Stats interface {
	System(ctx context.Context) (*Report, error)
}
