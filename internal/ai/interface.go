package ai

import (
	"context"

	"smartdomain/pkg/domain"
)

// Analyzer extracts keywords and their semantic extensions from a description.
//
//go:generate mockgen -package mockai -source=interface.go -destination=mock/mockai.go *
type Analyzer interface {
	Analyze(ctx context.Context, description string) (*domain.AnalysisResult, error)
}

// Namer turns keywords into project name candidates.
type Namer interface {
	Generate(ctx context.Context, req NameRequest) ([]domain.ProjectName, error)
}

// NameRequest is the input of a name generation.
type NameRequest struct {
	Keywords     []string
	Extensions   map[string][]string
	TargetMarket domain.TargetMarket
	// MaxCount caps the number of returned names.
	MaxCount int
}
