package generator

import (
	"context"
	"errors"
	"maps"
	"slices"
	"strconv"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"smartdomain/internal/ai"
	"smartdomain/internal/config"
	"smartdomain/internal/domaincheck"
	"smartdomain/pkg/cache"
	"smartdomain/pkg/domain"
	"smartdomain/pkg/logger"
	"smartdomain/pkg/metrics"
	"smartdomain/pkg/serrors"
)

// TimeoutSuggestions are attached to the timeout error as its details.
var TimeoutSuggestions = []string{ //nolint: gochecknoglobals
	"Try reducing the number of suggestions (maxSuggestions)",
	"Try reducing the number of TLDs (preferredTlds)",
	"Simplify your project description",
}

const tracerName = "smartdomain/internal/generator"

// Options configure the pipeline.
type Options struct {
	// Timeout bounds a whole generation.
	Timeout              time.Duration
	DefaultTLDs          []string
	DefaultSuggestions   int
	MaxSuggestions       int
	MinDescriptionLength int
	MaxDescriptionLength int
	AnalysisCacheTTL     time.Duration
	NamesCacheTTL        time.Duration
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		Timeout:              cfg.Generator.Timeout,
		DefaultTLDs:          cfg.Generator.DefaultTLDs,
		DefaultSuggestions:   cfg.Generator.DefaultSuggestions,
		MaxSuggestions:       cfg.Generator.UserMaxSuggestions,
		MinDescriptionLength: cfg.Generator.MinDescriptionLength,
		MaxDescriptionLength: cfg.Generator.MaxDescriptionLength,
		AnalysisCacheTTL:     cfg.Generator.AnalysisCacheTTL,
		NamesCacheTTL:        cfg.Generator.NamesCacheTTL,
	}
}

type generator struct {
	options     Options
	analyzer    ai.Analyzer
	namer       ai.Namer
	checker     domaincheck.Checker
	cache       cache.Cache
	instruments *metrics.Instruments
	tracer      trace.Tracer
}

type outcome struct {
	res *Result
	err error
}

// Generate validates req and runs the pipeline under the configured timeout.
// When the timeout fires first, the pipeline is cancelled and a TIMEOUT error
// carrying TimeoutSuggestions is returned.
func (g generator) Generate(ctx context.Context, req Request) (*Result, error) {
	req, err := g.normalize(req)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	ctx, span := g.tracer.Start(ctx, "generate", trace.WithAttributes(
		attribute.Int("max_suggestions", req.MaxSuggestions),
		attribute.Int("tlds", len(req.PreferredTLDs)),
		attribute.String("target_market", string(req.TargetMarket)),
	))
	defer span.End()

	runCtx, cancel := context.WithTimeout(ctx, g.options.Timeout)
	defer cancel()

	done := make(chan outcome, 1)
	go func() {
		res, err := g.run(runCtx, req, start)
		done <- outcome{res: res, err: err}
	}()

	var out outcome
	select {
	case out = <-done:
	case <-runCtx.Done():
		out.err = runCtx.Err()
	}

	if out.err != nil && errors.Is(runCtx.Err(), context.DeadlineExceeded) && ctx.Err() == nil {
		out = outcome{err: serrors.Wrap(serrors.ErrTimeout, runCtx.Err(), "request timeout").
			WithDetails(TimeoutSuggestions)}
	}

	g.instruments.GenerateDuration.Record(ctx, time.Since(start).Seconds(),
		metric.WithAttributes(attribute.String("outcome", outcomeLabel(out.err))))
	if out.err != nil {
		span.RecordError(out.err)
		span.SetStatus(codes.Error, out.err.Error())
		logger.Info(ctx, "generation failed", zap.Error(out.err), zap.Duration("elapsed", time.Since(start)))

		return nil, out.err
	}

	return out.res, nil
}

func (g generator) run(ctx context.Context, req Request, start time.Time) (*Result, error) {
	analysis, err := g.analyze(ctx, req.Description)
	if err != nil {
		return nil, err
	}

	names, err := g.names(ctx, ai.NameRequest{
		Keywords:     analysis.Keywords,
		Extensions:   analysis.SemanticExtensions,
		TargetMarket: req.TargetMarket,
		MaxCount:     req.MaxSuggestions,
	})
	if err != nil {
		return nil, err
	}

	checkCtx, span := g.tracer.Start(ctx, "check_domains")
	checked := make([]domaincheck.NameDomains, 0, len(names))
	for _, name := range names {
		checked = append(checked, domaincheck.NameDomains{
			Name:    name,
			Domains: g.checker.Check(checkCtx, name.Name, req.PreferredTLDs, *req.IncludePricing),
		})
	}
	span.End()
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	now := time.Now()

	return &Result{
		Query: req.Description,
		Analysis: Analysis{
			Keywords:           analysis.Keywords,
			SemanticExtensions: analysis.SemanticExtensions,
		},
		Suggestions:      domaincheck.Aggregate(checked),
		GeneratedAt:      now.UTC(),
		ProcessingTimeMs: now.Sub(start).Milliseconds(),
	}, nil
}

func (g generator) analyze(ctx context.Context, description string) (*domain.AnalysisResult, error) {
	key := cache.HashKey(cache.NamespaceAnalysis, description)

	var cached domain.AnalysisResult
	if g.lookup(ctx, key, &cached) {
		return &cached, nil
	}

	ctx, span := g.tracer.Start(ctx, "analyze")
	defer span.End()

	start := time.Now()
	res, err := g.analyzer.Analyze(ctx, description)
	g.instruments.LLMLatency.Record(ctx, time.Since(start).Seconds(),
		metric.WithAttributes(attribute.String("stage", "analysis")))
	if err != nil {
		span.RecordError(err)

		return nil, err
	}
	g.store(ctx, key, res, g.options.AnalysisCacheTTL)

	return res, nil
}

// namesKey identifies a naming request by market, count, keywords and the
// extensions of every keyword in key order.
func namesKey(req ai.NameRequest) string {
	parts := append([]string{string(req.TargetMarket), strconv.Itoa(req.MaxCount)}, req.Keywords...)
	for _, k := range slices.Sorted(maps.Keys(req.Extensions)) {
		parts = append(parts, "ext:"+k+"="+strings.Join(req.Extensions[k], ","))
	}

	return cache.HashKey(cache.NamespaceNames, parts...)
}

func (g generator) names(ctx context.Context, req ai.NameRequest) ([]domain.ProjectName, error) {
	key := namesKey(req)

	var cached []domain.ProjectName
	if g.lookup(ctx, key, &cached) && len(cached) > 0 {
		return cached, nil
	}

	ctx, span := g.tracer.Start(ctx, "name", trace.WithAttributes(
		attribute.String("keywords", strings.Join(req.Keywords, ","))))
	defer span.End()

	start := time.Now()
	res, err := g.namer.Generate(ctx, req)
	g.instruments.LLMLatency.Record(ctx, time.Since(start).Seconds(),
		metric.WithAttributes(attribute.String("stage", "naming")))
	if err != nil {
		span.RecordError(err)

		return nil, err
	}
	g.store(ctx, key, res, g.options.NamesCacheTTL)

	return res, nil
}

func (g generator) lookup(ctx context.Context, key string, dst any) bool {
	ok, err := g.cache.Get(ctx, key, dst)
	if err != nil {
		logger.Warn(ctx, "could not read cache", zap.String("key", key), zap.Error(err))

		return false
	}

	return ok
}

func (g generator) store(ctx context.Context, key string, value any, ttl time.Duration) {
	if err := g.cache.Set(ctx, key, value, ttl); err != nil {
		logger.Warn(ctx, "could not write cache", zap.String("key", key), zap.Error(err))
	}
}

func outcomeLabel(err error) string {
	switch {
	case err == nil:
		return "success"
	case errors.Is(err, serrors.ErrTimeout):
		return "timeout"
	case errors.Is(err, context.Canceled):
		return "cancelled"
	default:
		return "error"
	}
}

// New creates a Generator. A nil cache disables caching and nil instruments
// record nothing.
func New(analyzer ai.Analyzer,
	namer ai.Namer,
	checker domaincheck.Checker,
	c cache.Cache,
	instruments *metrics.Instruments,
	options Options) Generator {
	if c == nil {
		c = cache.Nop{}
	}
	if instruments == nil {
		instruments = metrics.Noop()
	}

	return &generator{
		options:     options,
		analyzer:    analyzer,
		namer:       namer,
		checker:     checker,
		cache:       c,
		instruments: instruments,
		tracer:      otel.Tracer(tracerName),
	}
}
