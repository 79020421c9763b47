package stats

import (
	"context"
	"fmt"
	"smartdomain/pkg/cache"
	"smartdomain/pkg/logger"
	"smartdomain/pkg/storage"
	"time"

	"go.uber.org/zap"
)

const (
	serviceUptime = 99.9
	availability  = "24/7"
)

var reportKey = cache.Key(cache.NamespaceStats, "system")

// Options configure how long a computed report is reused.
type Options struct {
	CacheTTL time.Duration
}

// DefaultOptions reuse a report for five minutes.
var DefaultOptions = Options{CacheTTL: 5 * time.Minute}

type stats struct {
	options Options
	storage storage.StatsStorage
	cache   cache.Cache
	now     func() time.Time
}

func (s stats) System(ctx context.Context) (*Report, error) {
	var cached Report
	hit, err := s.cache.Get(ctx, reportKey, &cached)
	if err != nil {
		logger.Warn(ctx, "could not read stats cache", zap.Error(err))
	}
	if hit {
		return &cached, nil
	}

	counters, err := s.storage.SystemStats(ctx, s.now().UTC().Truncate(24*time.Hour))
	if err != nil {
		return nil, fmt.Errorf("could not get system stats: %w", err)
	}

	report := &Report{
		SystemStats:   counters,
		ServiceUptime: serviceUptime,
		Availability:  availability,
	}
	if s.options.CacheTTL > 0 {
		if err := s.cache.Set(ctx, reportKey, report, s.options.CacheTTL); err != nil {
			logger.Warn(ctx, "could not write stats cache", zap.Error(err))
		}
	}

	return report, nil
}

// New creates a Stats service. A nil cache disables caching.
func New(storage storage.StatsStorage, c cache.Cache, options Options) Stats {
	if c == nil {
		c = cache.Nop{}
	}

	return &stats{
		options: options,
		storage: storage,
		cache:   c,
		now:     time.Now,
	}
}
