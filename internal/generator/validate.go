package generator

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"smartdomain/internal/domaincheck"
	"smartdomain/pkg/domain"
	"smartdomain/pkg/serrors"
)

const maxTLDs = 10

var tldPattern = regexp.MustCompile(`^\.?[a-z]{2,24}$`)

// normalize validates req and fills in defaults.
func (g generator) normalize(req Request) (Request, error) {
	var fields []serrors.FieldError
	invalid := func(field, format string, args ...any) {
		fields = append(fields, serrors.FieldError{Field: field, Message: fmt.Sprintf(format, args...)})
	}

	req.Description = strings.TrimSpace(req.Description)
	if n := utf8.RuneCountInString(req.Description); n < g.options.MinDescriptionLength {
		invalid("description", "must be at least %d characters", g.options.MinDescriptionLength)
	} else if n > g.options.MaxDescriptionLength {
		invalid("description", "must be at most %d characters", g.options.MaxDescriptionLength)
	}

	if req.MaxSuggestions == 0 {
		req.MaxSuggestions = g.options.DefaultSuggestions
	}
	if req.MaxSuggestions < 1 || req.MaxSuggestions > g.options.MaxSuggestions {
		invalid("options.maxSuggestions", "must be between 1 and %d", g.options.MaxSuggestions)
	}
	if req.SuggestionCap > 0 {
		req.MaxSuggestions = min(req.MaxSuggestions, req.SuggestionCap)
	}

	if req.TargetMarket == "" {
		req.TargetMarket = domain.MarketGlobal
	}
	if !req.TargetMarket.Valid() {
		invalid("options.targetMarket", "must be one of global, china, us, eu")
	}

	if req.IncludePricing == nil {
		include := true
		req.IncludePricing = &include
	}

	if len(req.PreferredTLDs) == 0 {
		req.PreferredTLDs = g.options.DefaultTLDs
	}
	if len(req.PreferredTLDs) > maxTLDs {
		invalid("options.preferredTlds", "must contain at most %d TLDs", maxTLDs)
	}
	for i, tld := range req.PreferredTLDs {
		if !tldPattern.MatchString(strings.ToLower(strings.TrimSpace(tld))) {
			invalid(fmt.Sprintf("options.preferredTlds[%d]", i), "%q is not a valid TLD", tld)
		}
	}
	req.PreferredTLDs = domaincheck.NormalizeTLDs(req.PreferredTLDs)

	if len(fields) > 0 {
		return req, serrors.Invalid("request validation failed", fields...)
	}

	return req, nil
}
