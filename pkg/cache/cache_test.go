package cache_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"smartdomain/pkg/cache"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redismock/v9"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

type payload struct {
	Name  string  `json:"name"`
	Score float64 `json:"score"`
}

func newMiniredisCache(t *testing.T) (*miniredis.Miniredis, *cache.Redis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return mr, cache.NewRedis(client)
}

func TestKeys(t *testing.T) {
	require.Equal(t, "smart-domain:domain:example.com", cache.Key(cache.NamespaceDomain, " Example.COM "))

	a := cache.HashKey(cache.NamespaceAnalysis, "An AI note taking app")
	b := cache.HashKey(cache.NamespaceAnalysis, "  an ai note taking APP ")
	c := cache.HashKey(cache.NamespaceAnalysis, "a different app")
	require.Equal(t, a, b)
	require.NotEqual(t, a, c)
	require.True(t, strings.HasPrefix(a, "smart-domain:analysis:"))

	// part boundaries matter
	require.NotEqual(t,
		cache.HashKey(cache.NamespaceNames, "ab", "c"),
		cache.HashKey(cache.NamespaceNames, "a", "bc"))
}

func TestRedis_SetGetExpire(t *testing.T) {
	mr, c := newMiniredisCache(t)
	ctx := context.Background()
	key := cache.Key(cache.NamespaceNames, "k1")

	var got payload
	found, err := c.Get(ctx, key, &got)
	require.NoError(t, err)
	require.False(t, found)

	require.NoError(t, c.Set(ctx, key, payload{Name: "Notely", Score: 0.9}, time.Minute))

	found, err = c.Get(ctx, key, &got)
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, payload{Name: "Notely", Score: 0.9}, got)

	mr.FastForward(2 * time.Minute)
	found, err = c.Get(ctx, key, &got)
	require.NoError(t, err)
	require.False(t, found)
}

func TestRedis_MGet(t *testing.T) {
	_, c := newMiniredisCache(t)
	ctx := context.Background()

	k1 := cache.Key(cache.NamespaceDomain, "a.com")
	k2 := cache.Key(cache.NamespaceDomain, "b.com")
	require.NoError(t, c.Set(ctx, k1, payload{Name: "a"}, time.Minute))

	vals, err := c.MGet(ctx, k1, k2)
	require.NoError(t, err)
	require.Len(t, vals, 2)
	require.JSONEq(t, `{"name":"a","score":0}`, string(vals[0]))
	require.Nil(t, vals[1])

	vals, err = c.MGet(ctx)
	require.NoError(t, err)
	require.Empty(t, vals)
}

func TestRedis_DeleteAndClear(t *testing.T) {
	mr, c := newMiniredisCache(t)
	ctx := context.Background()

	for _, d := range []string{"a.com", "b.com", "c.com"} {
		require.NoError(t, c.Set(ctx, cache.Key(cache.NamespaceDomain, d), payload{Name: d}, time.Hour))
	}
	other := cache.HashKey(cache.NamespaceAnalysis, "x")
	require.NoError(t, c.Set(ctx, other, payload{}, time.Hour))

	require.NoError(t, c.Delete(ctx, cache.Key(cache.NamespaceDomain, "a.com")))
	require.False(t, mr.Exists(cache.Key(cache.NamespaceDomain, "a.com")))

	n, err := c.Clear(ctx, cache.NamespaceDomain)
	require.NoError(t, err)
	require.EqualValues(t, 2, n)
	require.True(t, mr.Exists(other))
}

func TestRedis_GetError(t *testing.T) {
	client, mock := redismock.NewClientMock()
	c := cache.NewRedis(client)
	key := cache.Key(cache.NamespaceDomain, "a.com")

	mock.ExpectGet(key).SetErr(errors.New("connection refused"))

	var got payload
	found, err := c.Get(context.Background(), key, &got)
	require.Error(t, err)
	require.False(t, found)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRedis_GetCorruptValue(t *testing.T) {
	client, mock := redismock.NewClientMock()
	c := cache.NewRedis(client)
	key := cache.Key(cache.NamespaceDomain, "a.com")

	mock.ExpectGet(key).SetVal("not-json")

	var got payload
	found, err := c.Get(context.Background(), key, &got)
	require.Error(t, err)
	require.False(t, found)
}

func TestNop(t *testing.T) {
	c, closeFn := cache.New(cache.Options{})
	require.IsType(t, cache.Nop{}, c)
	require.NoError(t, closeFn())

	ctx := context.Background()
	require.NoError(t, c.Set(ctx, "k", 1, time.Minute))
	var v int
	found, err := c.Get(ctx, "k", &v)
	require.NoError(t, err)
	require.False(t, found)

	vals, err := c.MGet(ctx, "a", "b")
	require.NoError(t, err)
	require.Len(t, vals, 2)
}
