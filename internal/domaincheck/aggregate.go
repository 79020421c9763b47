package domaincheck

import (
	"cmp"
	"slices"
	"strings"

	"smartdomain/pkg/domain"
)

// missingPrice ranks unpriced domains after every priced one.
const missingPrice = 999

// NameDomains is a project name with its checked domains.
type NameDomains struct {
	Name    domain.ProjectName
	Domains []domain.DomainInfo
}

// Aggregate builds the suggestions for names: it counts available domains,
// picks the best one and sorts suggestions by available count, then by
// confidence, both descending. Ties keep the input order.
func Aggregate(names []NameDomains) []domain.DomainSuggestion {
	out := make([]domain.DomainSuggestion, 0, len(names))
	for _, n := range names {
		s := domain.DomainSuggestion{ProjectName: n.Name, Domains: n.Domains}
		if s.Domains == nil {
			s.Domains = []domain.DomainInfo{}
		}
		for _, d := range n.Domains {
			if d.Available {
				s.AvailableDomainCount++
			}
		}
		s.BestDomain = BestDomain(n.Domains)
		out = append(out, s)
	}

	slices.SortStableFunc(out, func(a, b domain.DomainSuggestion) int {
		if c := cmp.Compare(b.AvailableDomainCount, a.AvailableDomainCount); c != 0 {
			return c
		}

		return cmp.Compare(b.Confidence, a.Confidence)
	})

	return out
}

// BestDomain returns the preferred available domain: .com first, then the
// lowest price. It returns nil when nothing is available.
func BestDomain(domains []domain.DomainInfo) *domain.DomainInfo {
	available := make([]domain.DomainInfo, 0, len(domains))
	for _, d := range domains {
		if d.Available {
			available = append(available, d)
		}
	}
	if len(available) == 0 {
		return nil
	}

	slices.SortStableFunc(available, func(a, b domain.DomainInfo) int {
		aCom, bCom := strings.HasSuffix(a.Domain, ".com"), strings.HasSuffix(b.Domain, ".com")
		switch {
		case aCom && !bCom:
			return -1
		case !aCom && bCom:
			return 1
		}

		return cmp.Compare(rankPrice(a), rankPrice(b))
	})
	best := available[0]

	return &best
}

func rankPrice(d domain.DomainInfo) float64 {
	if d.Price == nil || *d.Price <= 0 {
		return missingPrice
	}

	return *d.Price
}
