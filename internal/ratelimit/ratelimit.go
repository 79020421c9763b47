package ratelimit

import (
	"context"
	"smartdomain/internal/config"
	"smartdomain/pkg/domain"
	"smartdomain/pkg/logger"
	"smartdomain/pkg/serrors"
	"smartdomain/pkg/storage"
	"time"

	"go.uber.org/zap"
)

// Options hold the request allowances. Daily windows start at midnight UTC.
type Options struct {
	GuestDailyPerIP      int
	GuestDailyPerSession int
	GuestPerMinute       int
	UserDaily            int
	UserPerMinute        int
}

// DefaultOptions mirror the configuration defaults.
var DefaultOptions = Options{
	GuestDailyPerIP:      5,
	GuestDailyPerSession: 2,
	GuestPerMinute:       2,
	UserDaily:            10,
	UserPerMinute:        2,
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		GuestDailyPerIP:      cfg.RateLimit.GuestDailyPerIP,
		GuestDailyPerSession: cfg.RateLimit.GuestDailyPerSession,
		GuestPerMinute:       cfg.RateLimit.GuestPerMinute,
		UserDaily:            cfg.RateLimit.UserDaily,
		UserPerMinute:        cfg.RateLimit.UserPerMinute,
	}
}

type limiter struct {
	options Options
	storage storage.RateLimitStorage
	now     func() time.Time
}

// window is one counter checked before a request is allowed.
type window struct {
	filter  storage.RequestFilter
	limit   int
	resetAt time.Time
	message string
	daily   bool
}

func (l limiter) Allow(ctx context.Context, endpoint string, subject Subject) (Decision, error) {
	now := l.now().UTC()
	dayStart := now.Truncate(24 * time.Hour)
	nextDay := dayStart.Add(24 * time.Hour)
	minuteAgo := now.Add(-time.Minute)
	guest := subject.UserID.IsZero()

	perMinute, daily := l.options.UserPerMinute, l.options.UserDaily
	if guest {
		perMinute, daily = l.options.GuestPerMinute, l.options.GuestDailyPerIP
	}

	var windows []window
	if guest {
		windows = append(windows, window{
			filter:  storage.RequestFilter{Endpoint: endpoint, IPAddress: subject.IP, Since: dayStart},
			limit:   l.options.GuestDailyPerIP,
			resetAt: nextDay,
			message: "daily limit reached for this network, sign in to get more generations",
			daily:   true,
		})
	}
	windows = append(windows, window{
		filter:  storage.RequestFilter{Endpoint: endpoint, IPAddress: subject.IP, Since: minuteAgo},
		limit:   perMinute,
		resetAt: now.Add(time.Minute),
		message: "too many requests, please wait a minute",
	})
	if guest {
		windows = append(windows, window{
			filter:  storage.RequestFilter{Endpoint: endpoint, SessionID: subject.SessionID, Since: dayStart},
			limit:   l.options.GuestDailyPerSession,
			resetAt: nextDay,
			message: "daily limit reached, sign in to get more generations",
			daily:   true,
		})
	} else {
		windows = append(windows,
			window{
				filter:  storage.RequestFilter{Endpoint: endpoint, UserID: subject.UserID, Since: dayStart},
				limit:   l.options.UserDaily,
				resetAt: nextDay,
				message: "daily limit reached",
				daily:   true,
			},
			window{
				filter:  storage.RequestFilter{Endpoint: endpoint, UserID: subject.UserID, Since: minuteAgo},
				limit:   l.options.UserPerMinute,
				resetAt: now.Add(time.Minute),
				message: "too many requests, please wait a minute",
			},
		)
	}

	// the first daily window decides the reported allowance
	used := int64(-1)
	for _, w := range windows {
		n, err := l.storage.CountRequests(ctx, w.filter)
		if err != nil {
			// an unreachable counter store lets the request through without headers
			logger.Warn(ctx, "could not count requests, allowing request",
				zap.Error(err), zap.String("endpoint", endpoint))

			return Decision{}, nil
		}
		if n >= int64(w.limit) {
			d := Decision{Limit: w.limit, Remaining: 0, ResetAt: w.resetAt}

			return d, serrors.With(serrors.ErrRateLimited, "%s", w.message).WithDetails(d)
		}
		if used < 0 && w.daily {
			used = n
		}
	}

	if err := l.storage.StoreRequest(ctx, domain.RequestRecord{
		IPAddress: subject.IP,
		Endpoint:  endpoint,
		UserID:    subject.UserID,
		SessionID: subject.SessionID,
		UserAgent: subject.UserAgent,
		CreatedAt: now,
	}); err != nil {
		logger.Warn(ctx, "could not record request", zap.Error(err), zap.String("endpoint", endpoint))
	}

	return Decision{
		Limit:     daily,
		Remaining: max(daily-int(used)-1, 0),
		ResetAt:   nextDay,
	}, nil
}

// New creates a Limiter that counts requests in storage.
func New(storage storage.RateLimitStorage, options Options) Limiter {
	return &limiter{
		options: options,
		storage: storage,
		now:     time.Now,
	}
}
