package domain

import "strings"

// DomainInfo is the availability report for one candidate domain. Error is set
// when availability could not be determined; Available is then always false.
type DomainInfo struct {
	Domain      string   `json:"domain"`
	Available   bool     `json:"available"`
	Price       *float64 `json:"price,omitempty"`
	Currency    string   `json:"currency,omitempty"`
	Registrar   string   `json:"registrar,omitempty"`
	PurchaseURL string   `json:"purchaseUrl,omitempty"`
	Error       string   `json:"error,omitempty"`
	Message     string   `json:"message,omitempty"`
}

// TLD returns the domain suffix including the leading dot, e.g. ".com".
func (d DomainInfo) TLD() string {
	if i := strings.LastIndex(d.Domain, "."); i >= 0 {
		return strings.ToLower(d.Domain[i:])
	}

	return ""
}

// DomainSuggestion couples a project name with the availability of its domain variants.
type DomainSuggestion struct {
	ProjectName

	Domains              []DomainInfo `json:"domains"`
	AvailableDomainCount int          `json:"availableDomainCount"`
	BestDomain           *DomainInfo  `json:"bestDomain,omitempty"`
}
