// Package cache provides a small TTL key-value cache over Redis. Values are
// stored as JSON under "smart-domain:<namespace>:<id>" keys; expiry is left to
// Redis.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/redis/go-redis/v9"
)

// KeyPrefix is prepended to every key written by this package.
const KeyPrefix = "smart-domain"

// Namespaces used by the application.
const (
	NamespaceAnalysis = "analysis"
	NamespaceNames    = "names"
	NamespaceDomain   = "domain"
	NamespaceStats    = "stats"
)

// Cache is a JSON TTL cache.
type Cache interface {
	// Get decodes the value stored under key into dst. It reports false on a miss.
	Get(ctx context.Context, key string, dst any) (bool, error)
	// MGet returns the raw values stored under keys, in order. Misses are nil.
	MGet(ctx context.Context, keys ...string) ([][]byte, error)
	// Set stores value under key for ttl.
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	// Delete removes keys.
	Delete(ctx context.Context, keys ...string) error
	// Clear removes every key of a namespace and returns how many were deleted.
	Clear(ctx context.Context, namespace string) (int64, error)
	// Ping checks connectivity.
	Ping(ctx context.Context) error
}

// Key builds the key of a readable id, e.g. a domain name.
func Key(namespace, id string) string {
	return KeyPrefix + ":" + namespace + ":" + strings.ToLower(strings.TrimSpace(id))
}

// HashKey builds a fixed-length key from arbitrary input parts. Parts are
// normalized (trimmed, lowercased) so equivalent inputs share an entry.
func HashKey(namespace string, parts ...string) string {
	d := xxhash.New()
	for i, p := range parts {
		if i > 0 {
			_, _ = d.WriteString("\x00")
		}
		_, _ = d.WriteString(strings.ToLower(strings.TrimSpace(p)))
	}

	return KeyPrefix + ":" + namespace + ":" + strconv.FormatUint(d.Sum64(), 16)
}

// Redis implements Cache on a go-redis client.
type Redis struct {
	client redis.UniversalClient
}

// Ensure Redis conforms to the Cache interface at compile time.
var _ Cache = (*Redis)(nil)

// NewRedis wraps an existing client.
func NewRedis(client redis.UniversalClient) *Redis {
	return &Redis{client: client}
}

// Get implements Cache.
func (r *Redis) Get(ctx context.Context, key string, dst any) (bool, error) {
	b, err := r.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("could not get %q from redis: %w", key, err)
	}

	if err := json.Unmarshal(b, dst); err != nil {
		return false, fmt.Errorf("could not decode cached value %q: %w", key, err)
	}

	return true, nil
}

// MGet implements Cache.
func (r *Redis) MGet(ctx context.Context, keys ...string) ([][]byte, error) {
	if len(keys) == 0 {
		return nil, nil
	}

	vals, err := r.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, fmt.Errorf("could not mget from redis: %w", err)
	}

	out := make([][]byte, len(keys))
	for i, v := range vals {
		if s, ok := v.(string); ok {
			out[i] = []byte(s)
		}
	}

	return out, nil
}

// Set implements Cache.
func (r *Redis) Set(ctx context.Context, key string, value any, ttl time.Duration) error {
	b, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("could not encode value for %q: %w", key, err)
	}

	if err := r.client.Set(ctx, key, b, ttl).Err(); err != nil {
		return fmt.Errorf("could not set %q in redis: %w", key, err)
	}

	return nil
}

// Delete implements Cache.
func (r *Redis) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}

	if err := r.client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("could not delete keys from redis: %w", err)
	}

	return nil
}

// Clear implements Cache using SCAN so large namespaces do not block Redis.
func (r *Redis) Clear(ctx context.Context, namespace string) (int64, error) {
	match := KeyPrefix + ":" + namespace + ":*"

	var (
		cursor  uint64
		deleted int64
	)
	for {
		keys, next, err := r.client.Scan(ctx, cursor, match, 100).Result()
		if err != nil {
			return deleted, fmt.Errorf("could not scan redis keys: %w", err)
		}
		if len(keys) > 0 {
			n, err := r.client.Del(ctx, keys...).Result()
			if err != nil {
				return deleted, fmt.Errorf("could not delete keys from redis: %w", err)
			}
			deleted += n
		}

		cursor = next
		if cursor == 0 {
			return deleted, nil
		}
	}
}

// Ping implements Cache.
func (r *Redis) Ping(ctx context.Context) error {
	if err := r.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("could not ping redis: %w", err)
	}

	return nil
}

// Nop is a Cache that stores nothing. It is used when Redis is not configured.
type Nop struct{}

// Ensure Nop conforms to the Cache interface at compile time.
var _ Cache = Nop{}

func (Nop) Get(context.Context, string, any) (bool, error) { return false, nil }

func (Nop) MGet(_ context.Context, keys ...string) ([][]byte, error) {
	return make([][]byte, len(keys)), nil
}

func (Nop) Set(context.Context, string, any, time.Duration) error { return nil }

func (Nop) Delete(context.Context, ...string) error { return nil }

func (Nop) Clear(context.Context, string) (int64, error) { return 0, nil }

func (Nop) Ping(context.Context) error { return nil }
