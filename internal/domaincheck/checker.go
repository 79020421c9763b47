package domaincheck

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.uber.org/zap"

	"smartdomain/internal/config"
	"smartdomain/pkg/cache"
	"smartdomain/pkg/domain"
	"smartdomain/pkg/logger"
	"smartdomain/pkg/metrics"
	"smartdomain/pkg/registrar"
)

// Messages reported in DomainInfo when availability is unknown.
const (
	ErrCheckFailed   = "API check failed"
	ErrNotConfigured = "Domain check requires API configuration"
	MsgNotConfigured = "Please configure registrar API credentials to check domain availability"
)

const (
	defaultCurrency  = "USD"
	defaultBatchSize = 5
	pricedKeySuffix  = "#priced"
)

// Values of the result attribute of the registrar checks counter.
const (
	resultAvailable    = "available"
	resultTaken        = "taken"
	resultError        = "error"
	resultUnconfigured = "unconfigured"
	resultCached       = "cached"
)

// Options configure a Checker.
type Options struct {
	// BatchSize is the number of concurrent registrar calls.
	BatchSize int
	// CacheTTL is how long successful checks are reused.
	CacheTTL time.Duration
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		BatchSize: cfg.Generator.BatchSize,
		CacheTTL:  cfg.Generator.DomainCacheTTL,
	}
}

type checker struct {
	options     Options
	client      registrar.Client
	cache       cache.Cache
	instruments *metrics.Instruments
}

// Check implements Checker.
func (c checker) Check(ctx context.Context, name string, tlds []string, includePricing bool) []domain.DomainInfo {
	domains := Variants(name, tlds)
	results := make([]domain.DomainInfo, len(domains))
	if len(domains) == 0 {
		return results
	}

	if c.client == nil {
		logger.Warn(ctx, "no domain registrar configured", zap.String("name", name))
		for i, d := range domains {
			results[i] = domain.DomainInfo{Domain: d, Error: ErrNotConfigured, Message: MsgNotConfigured}
		}
		c.count(ctx, resultUnconfigured, len(domains))

		return results
	}

	keys := make([]string, len(domains))
	for i, d := range domains {
		keys[i] = c.key(d, includePricing)
	}
	pending := c.fromCache(ctx, keys, results)

	batch := max(c.options.BatchSize, 1)
	for start := 0; start < len(pending); start += batch {
		end := min(start+batch, len(pending))
		if ctx.Err() != nil {
			for _, i := range pending[start:] {
				results[i] = failed(domains[i])
			}
			c.count(ctx, resultError, len(pending)-start)

			break
		}

		var wg sync.WaitGroup
		for _, i := range pending[start:end] {
			wg.Add(1)
			go func() {
				defer wg.Done()
				results[i] = c.checkOne(ctx, domains[i], includePricing)
			}()
		}
		wg.Wait()
	}

	for _, i := range pending {
		if results[i].Error != "" {
			continue
		}
		if err := c.cache.Set(ctx, keys[i], results[i], c.options.CacheTTL); err != nil {
			logger.Warn(ctx, "could not cache domain check", zap.String("domain", domains[i]), zap.Error(err))
		}
	}

	return results
}

// fromCache fills results from cached entries and returns the indexes still
// to be checked.
func (c checker) fromCache(ctx context.Context, keys []string, results []domain.DomainInfo) []int {
	pending := make([]int, 0, len(keys))
	values, err := c.cache.MGet(ctx, keys...)
	if err != nil {
		logger.Warn(ctx, "could not read domain cache", zap.Error(err))
		values = nil
	}

	hits := 0
	for i := range keys {
		if i < len(values) && values[i] != nil {
			if err := json.Unmarshal(values[i], &results[i]); err == nil {
				hits++

				continue
			}
		}
		pending = append(pending, i)
	}
	if hits > 0 {
		c.count(ctx, resultCached, hits)
	}

	return pending
}

func (c checker) checkOne(ctx context.Context, name string, includePricing bool) domain.DomainInfo {
	start := time.Now()
	av, err := c.client.Available(ctx, name)
	c.instruments.RegistrarLatency.Record(ctx, time.Since(start).Seconds())
	if err != nil {
		logger.Warn(ctx, "domain check failed", zap.String("domain", name), zap.Error(err))
		c.count(ctx, resultError, 1)

		return failed(name)
	}

	info := domain.DomainInfo{Domain: name, Available: av.Available}
	if !av.Available {
		c.count(ctx, resultTaken, 1)

		return info
	}

	info.Registrar = c.client.Name()
	info.PurchaseURL = c.client.PurchaseURL(name)
	if includePricing {
		var tldPrice float64
		if av.Price <= 0 {
			if tldPrice, err = c.client.TLDPrice(ctx, info.TLD()); err != nil {
				logger.Debug(ctx, "could not get tld price", zap.String("tld", info.TLD()), zap.Error(err))
			}
		}
		price := NormalizePrice(av.Price, info.TLD(), tldPrice)
		info.Price = &price
		info.Currency = av.Currency
		if info.Currency == "" {
			info.Currency = defaultCurrency
		}
	}
	c.count(ctx, resultAvailable, 1)

	return info
}

func (c checker) key(d string, includePricing bool) string {
	if includePricing {
		d += pricedKeySuffix
	}

	return cache.Key(cache.NamespaceDomain, d)
}

func (c checker) count(ctx context.Context, result string, n int) {
	c.instruments.RegistrarChecks.Add(ctx, int64(n),
		metric.WithAttributes(attribute.String("result", result)))
}

func failed(name string) domain.DomainInfo {
	return domain.DomainInfo{Domain: name, Error: ErrCheckFailed}
}

// New creates a Checker. A nil client makes every check report that the
// registrar is not configured. A nil cache disables caching and nil
// instruments record nothing.
func New(client registrar.Client, c cache.Cache, instruments *metrics.Instruments, options Options) Checker {
	if options.BatchSize <= 0 {
		options.BatchSize = defaultBatchSize
	}
	if c == nil {
		c = cache.Nop{}
	}
	if instruments == nil {
		instruments = metrics.Noop()
	}

	return &checker{
		options:     options,
		client:      client,
		cache:       c,
		instruments: instruments,
	}
}
