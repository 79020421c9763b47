package domaincheck

import (
	"context"

	"smartdomain/pkg/domain"
)

// Checker reports the availability of the domain variants of a project name.
//
//go:generate mockgen -package mockdomaincheck -source=interface.go -destination=mock/mockdomaincheck.go *
type Checker interface {
	// Check expands name into variants over tlds and checks each of them. The
	// result has one entry per variant, in variant order. It never fails as a
	// whole: per-domain problems are reported in DomainInfo.Error.
	Check(ctx context.Context, name string, tlds []string, includePricing bool) []domain.DomainInfo
}
