package domaincheck

import (
	"math"
	"strings"
)

// DefaultPrice is quoted for TLDs missing from the static table.
const DefaultPrice = 15.99

// staticPrices is used when the registrar quotes no price, as its test
// environment does.
var staticPrices = map[string]float64{ //nolint: gochecknoglobals
	".com": 12.99,
	".net": 11.99,
	".org": 10.99,
	".io":  39.99,
	".app": 19.99,
}

// StaticPrice returns the table price of tld.
func StaticPrice(tld string) float64 {
	tld = "." + strings.TrimLeft(strings.ToLower(tld), ".")
	if p, ok := staticPrices[tld]; ok {
		return p
	}

	return DefaultPrice
}

// NormalizePrice converts a registrar quote in micro units to currency units
// rounded to cents. Without a quote it falls back to the registrar's TLD
// price, then to the static table.
func NormalizePrice(micro int64, tld string, tldPrice float64) float64 {
	switch {
	case micro > 0:
		return math.Round(float64(micro)/1e4) / 100
	case tldPrice > 0:
		return tldPrice
	default:
		return StaticPrice(tld)
	}
}
