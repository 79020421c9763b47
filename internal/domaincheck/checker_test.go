package domaincheck_test

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"smartdomain/internal/domaincheck"
	"smartdomain/pkg/cache"
	"smartdomain/pkg/registrar"
	mockregistrar "smartdomain/pkg/registrar/mock"
)

func newRegistrar(t *testing.T) *mockregistrar.MockClient {
	t.Helper()

	ctrl := gomock.NewController(t)
	m := mockregistrar.NewMockClient(ctrl)
	m.EXPECT().Name().Return("GoDaddy").AnyTimes()
	m.EXPECT().PurchaseURL(gomock.Any()).DoAndReturn(func(d string) string {
		return "https://www.godaddy.com/domainsearch/find?domainToCheck=" + d
	}).AnyTimes()

	return m
}

func TestChecker_NotConfigured(t *testing.T) {
	c := domaincheck.New(nil, nil, nil, domaincheck.Options{})

	res := c.Check(context.Background(), "foo", []string{".com"}, true)
	require.Len(t, res, 3)
	for _, d := range res {
		require.False(t, d.Available)
		require.Equal(t, domaincheck.ErrNotConfigured, d.Error)
		require.Equal(t, domaincheck.MsgNotConfigured, d.Message)
	}
}

func TestChecker_FailureIsolated(t *testing.T) {
	m := newRegistrar(t)
	m.EXPECT().Available(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, d string) (registrar.Availability, error) {
			if d == "fooapp.com" {
				return registrar.Availability{}, errors.New("boom")
			}

			return registrar.Availability{Domain: d, Available: d == "foo.com", Price: 12990000, Currency: "USD"}, nil
		},
	).Times(3)

	c := domaincheck.New(m, nil, nil, domaincheck.Options{BatchSize: 5})
	res := c.Check(context.Background(), "foo", []string{".com"}, true)
	require.Len(t, res, 3)

	require.Equal(t, "foo.com", res[0].Domain)
	require.True(t, res[0].Available)
	require.Equal(t, "GoDaddy", res[0].Registrar)
	require.Equal(t, "https://www.godaddy.com/domainsearch/find?domainToCheck=foo.com", res[0].PurchaseURL)
	require.NotNil(t, res[0].Price)
	require.InDelta(t, 12.99, *res[0].Price, 1e-9)
	require.Equal(t, "USD", res[0].Currency)

	require.Equal(t, "fooapp.com", res[1].Domain)
	require.False(t, res[1].Available)
	require.Equal(t, domaincheck.ErrCheckFailed, res[1].Error)

	require.Equal(t, "getfoo.com", res[2].Domain)
	require.False(t, res[2].Available)
	require.Empty(t, res[2].Error)
	require.Empty(t, res[2].Registrar)
	require.Nil(t, res[2].Price)
}

func TestChecker_PriceFallback(t *testing.T) {
	m := newRegistrar(t)
	m.EXPECT().Available(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, d string) (registrar.Availability, error) {
			return registrar.Availability{Domain: d, Available: true}, nil
		},
	).Times(3)
	m.EXPECT().TLDPrice(gomock.Any(), ".io").Return(0.0, errors.New("ote")).Times(3)

	c := domaincheck.New(m, nil, nil, domaincheck.Options{})
	res := c.Check(context.Background(), "foo", []string{".io"}, true)
	for _, d := range res {
		require.NotNil(t, d.Price)
		require.InDelta(t, 39.99, *d.Price, 1e-9)
		require.Equal(t, "USD", d.Currency)
	}
}

func TestChecker_NoPricing(t *testing.T) {
	m := newRegistrar(t)
	m.EXPECT().Available(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, d string) (registrar.Availability, error) {
			return registrar.Availability{Domain: d, Available: true, Price: 1}, nil
		},
	).Times(3)

	res := domaincheck.New(m, nil, nil, domaincheck.Options{}).Check(context.Background(), "foo", []string{".com"}, false)
	for _, d := range res {
		require.True(t, d.Available)
		require.Nil(t, d.Price)
	}
}

func TestChecker_Batches(t *testing.T) {
	m := newRegistrar(t)

	var inflight, peak atomic.Int32
	var mu sync.Mutex
	var seen []string
	m.EXPECT().Available(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, d string) (registrar.Availability, error) {
			n := inflight.Add(1)
			for {
				p := peak.Load()
				if n <= p || peak.CompareAndSwap(p, n) {
					break
				}
			}
			time.Sleep(20 * time.Millisecond)
			inflight.Add(-1)

			mu.Lock()
			seen = append(seen, d)
			mu.Unlock()

			return registrar.Availability{Domain: d}, nil
		},
	).Times(12)

	c := domaincheck.New(m, nil, nil, domaincheck.Options{BatchSize: 5})
	res := c.Check(context.Background(), "foo", []string{".com", ".io", ".app", ".dev"}, false)
	require.Len(t, res, 12)
	require.LessOrEqual(t, peak.Load(), int32(5))
	require.Len(t, seen, 12)

	want := domaincheck.Variants("foo", []string{".com", ".io", ".app", ".dev"})
	for i, d := range res {
		require.Equal(t, want[i], d.Domain)
	}
}

func TestChecker_CancelledContext(t *testing.T) {
	m := newRegistrar(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res := domaincheck.New(m, nil, nil, domaincheck.Options{}).Check(ctx, "foo", []string{".com"}, false)
	require.Len(t, res, 3)
	for _, d := range res {
		require.Equal(t, domaincheck.ErrCheckFailed, d.Error)
	}
}

func TestChecker_Cache(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	store := cache.NewRedis(client)

	m := newRegistrar(t)
	m.EXPECT().Available(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, d string) (registrar.Availability, error) {
			if d == "getfoo.com" {
				return registrar.Availability{}, errors.New("boom")
			}

			return registrar.Availability{Domain: d, Available: true, Price: 12990000}, nil
		},
	).Times(3 + 1)

	c := domaincheck.New(m, store, nil, domaincheck.Options{CacheTTL: 30 * time.Minute})

	first := c.Check(context.Background(), "foo", []string{".com"}, true)
	require.True(t, mr.Exists(cache.Key(cache.NamespaceDomain, "foo.com#priced")))
	require.False(t, mr.Exists(cache.Key(cache.NamespaceDomain, "getfoo.com#priced")))
	require.Equal(t, 30*time.Minute, mr.TTL(cache.Key(cache.NamespaceDomain, "foo.com#priced")))

	// only the failed domain is checked again
	second := c.Check(context.Background(), "foo", []string{".com"}, true)
	require.Equal(t, first[0], second[0])
	require.Equal(t, first[1], second[1])
	require.Equal(t, domaincheck.ErrCheckFailed, second[2].Error)
}
