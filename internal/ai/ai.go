package ai

import (
	"context"
	"strings"

	"smartdomain/internal/config"
	"smartdomain/pkg/domain"
	"smartdomain/pkg/llm"
	"smartdomain/pkg/logger"
	"smartdomain/pkg/serrors"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	unknownContext    = "unknown"
	defaultConfidence = 0.7
)

// Options configure the sampling of both LLM calls.
type Options struct {
	AnalysisTemperature float64
	AnalysisMaxTokens   int
	NamingTemperature   float64
	NamingMaxTokens     int
}

// DefaultOptions are the sampling settings used when none are configured.
var DefaultOptions = Options{
	AnalysisTemperature: 0.7,
	AnalysisMaxTokens:   800,
	NamingTemperature:   0.9,
	NamingMaxTokens:     1000,
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		AnalysisTemperature: cfg.LLM.AnalysisTemperature,
		AnalysisMaxTokens:   cfg.LLM.AnalysisMaxTokens,
		NamingTemperature:   cfg.LLM.NamingTemperature,
		NamingMaxTokens:     cfg.LLM.NamingMaxTokens,
	}
}

type analyzer struct {
	options Options
	client  llm.Client
}

// Analyze asks the model for keywords, semantic extensions and the business
// context of description. Any failure is reported as an internal error.
func (a analyzer) Analyze(ctx context.Context, description string) (*domain.AnalysisResult, error) {
	out, err := a.client.Complete(ctx, llm.Prompt{
		System:      analysisSystemPrompt,
		User:        analysisPrompt(description),
		Temperature: a.options.AnalysisTemperature,
		MaxTokens:   a.options.AnalysisMaxTokens,
		JSON:        true,
	})
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrInternal, err, "text analysis failed")
	}

	res, err := parseAnalysis(out)
	if err != nil {
		logger.Warn(ctx, "could not decode analysis answer", zap.Error(err), zap.String("answer", out))

		return nil, serrors.Wrap(serrors.ErrInternal, err, "text analysis failed")
	}
	if len(res.Keywords) == 0 {
		return nil, serrors.With(serrors.ErrInternal, "text analysis failed: no keywords")
	}
	res.InputID = uuid.NewString()

	return res, nil
}

// NewAnalyzer creates an Analyzer backed by client.
func NewAnalyzer(client llm.Client, options Options) Analyzer {
	return &analyzer{options: options, client: client}
}

type namer struct {
	options Options
	client  llm.Client
}

// Generate asks the model for up to req.MaxCount names and coerces the answer
// into ProjectName values.
func (n namer) Generate(ctx context.Context, req NameRequest) ([]domain.ProjectName, error) {
	if req.TargetMarket == "" {
		req.TargetMarket = domain.MarketGlobal
	}

	out, err := n.client.Complete(ctx, llm.Prompt{
		System:      namingSystemPrompt,
		User:        namingPrompt(req),
		Temperature: n.options.NamingTemperature,
		MaxTokens:   n.options.NamingMaxTokens,
		JSON:        true,
	})
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrInternal, err, "name generation failed")
	}

	raw, err := parseNames(out)
	if err != nil {
		logger.Warn(ctx, "could not decode names answer", zap.Error(err), zap.String("answer", out))

		return nil, serrors.Wrap(serrors.ErrInternal, err, "name generation failed")
	}

	names := normalize(raw, req.MaxCount)
	if len(names) == 0 {
		return nil, serrors.With(serrors.ErrInternal, "name generation failed: no names")
	}

	return names, nil
}

// NewNamer creates a Namer backed by client.
func NewNamer(client llm.Client, options Options) Namer {
	return &namer{options: options, client: client}
}

// normalize coerces decoded names into ProjectName values: blank and
// duplicate names are dropped, unknown types fall back to new_word, missing
// or non-positive confidence becomes 0.7 and values above 1 are clamped. At
// most maxCount names are returned when maxCount is positive.
func normalize(raw []rawName, maxCount int) []domain.ProjectName {
	out := make([]domain.ProjectName, 0, len(raw))
	seen := make(map[string]struct{}, len(raw))
	for _, r := range raw {
		name := strings.TrimSpace(r.Name)
		key := strings.ToLower(name)
		if _, dup := seen[key]; name == "" || dup {
			continue
		}
		seen[key] = struct{}{}

		t := domain.NameType(strings.ToLower(strings.TrimSpace(r.Type)))
		if !t.Valid() {
			t = domain.NameTypeNewWord
		}

		confidence := r.Confidence
		if !r.HasConfidence || confidence <= 0 {
			confidence = defaultConfidence
		}
		confidence = min(confidence, 1)

		out = append(out, domain.ProjectName{
			ID:         uuid.NewString(),
			Name:       name,
			Type:       t,
			Confidence: confidence,
			Reasoning:  r.Reasoning,
		})
		if maxCount > 0 && len(out) == maxCount {
			break
		}
	}

	return out
}
