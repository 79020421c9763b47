package domaincheck

import (
	"regexp"
	"strings"
)

var nonAlnum = regexp.MustCompile(`[^a-z0-9]`)

// BaseName reduces a project name to the label used in domains.
func BaseName(name string) string {
	return nonAlnum.ReplaceAllString(strings.ToLower(name), "")
}

// NormalizeTLDs lowercases tlds, adds the leading dot and drops blanks and
// duplicates while keeping the original order.
func NormalizeTLDs(tlds []string) []string {
	out := make([]string, 0, len(tlds))
	seen := make(map[string]struct{}, len(tlds))
	for _, tld := range tlds {
		tld = strings.ToLower(strings.TrimSpace(tld))
		tld = strings.TrimLeft(tld, ".")
		if tld == "" {
			continue
		}
		tld = "." + tld
		if _, ok := seen[tld]; ok {
			continue
		}
		seen[tld] = struct{}{}
		out = append(out, tld)
	}

	return out
}

// Variants returns the candidate domains of name: the base label, the label
// with an "app" suffix and the label with a "get" prefix, each crossed with
// every TLD. Labels vary slowest, so all TLDs of the base label come first.
func Variants(name string, tlds []string) []string {
	base := BaseName(name)
	if base == "" {
		return nil
	}

	tlds = NormalizeTLDs(tlds)
	labels := []string{base, base + "app", "get" + base}
	out := make([]string, 0, len(labels)*len(tlds))
	for _, label := range labels {
		for _, tld := range tlds {
			out = append(out, label+tld)
		}
	}

	return out
}
