package generator

import (
	"context"
	"time"

	"smartdomain/pkg/domain"
)

// Request is a name generation request.
type Request struct {
	Description string
	// MaxSuggestions is the number of names wanted. Zero means the default.
	MaxSuggestions int
	// IncludePricing defaults to true when nil.
	IncludePricing *bool
	// TargetMarket defaults to global.
	TargetMarket domain.TargetMarket
	// PreferredTLDs defaults to the configured TLDs.
	PreferredTLDs []string
	// SuggestionCap is the largest number of names the caller may receive. It
	// silently lowers MaxSuggestions. Zero means no extra cap.
	SuggestionCap int
}

// Analysis is the part of the text analysis returned to clients.
type Analysis struct {
	Keywords           []string            `json:"keywords"`
	SemanticExtensions map[string][]string `json:"semanticExtensions"`
}

// Result is the outcome of a generation.
type Result struct {
	Query            string                    `json:"query"`
	Analysis         Analysis                  `json:"analysis"`
	Suggestions      []domain.DomainSuggestion `json:"suggestions"`
	GeneratedAt      time.Time                 `json:"generatedAt"`
	ProcessingTimeMs int64                     `json:"processingTimeMs"`
}

// Generator runs the whole suggestion pipeline: analysis, naming, domain
// checks and ranking.
//
//go:generate mockgen -package mockgenerator -source=interface.go -destination=mock/mockgenerator.go *
type Generator interface {
	Generate(ctx context.Context, req Request) (*Result, error)
}
