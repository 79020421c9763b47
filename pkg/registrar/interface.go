// Package registrar defines the interface used to query a domain registrar for
// the availability and price of domain names.
package registrar

import (
	"context"
)

// Availability is the registrar's answer for a single domain.
type Availability struct {
	Domain    string // Domain is the fully qualified domain that was checked.
	Available bool   // Available reports whether the domain can be registered.
	// Price is the registration price in micro units of Currency (1/1,000,000).
	// Zero means the registrar did not quote a price.
	Price      int64
	Currency   string
	Definitive bool // Definitive is false when the answer came from a cache on the registrar side.
}

// Client is the abstraction for domain registrars.
//
//go:generate mockgen -package mockregistrar -source=interface.go -destination=mock/mockregistrar.go *
type Client interface {
	// Name is the display name of the registrar.
	Name() string
	// PurchaseURL returns the page where domain can be bought.
	PurchaseURL(domain string) string
	// Available checks whether domain can be registered.
	Available(ctx context.Context, domain string) (Availability, error)
	// TLDPrice returns the suggested registration price of tld in currency
	// units, or 0 when the registrar does not publish one.
	TLDPrice(ctx context.Context, tld string) (float64, error)
}
