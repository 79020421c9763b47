package cache

import (
	"time"

	"github.com/redis/go-redis/v9"
)

// Options configures the Redis connection.
type Options struct {
	// Addr is host:port of the Redis server. Empty disables caching.
	Addr     string
	Password string
	DB       int
	// DialTimeout bounds connection establishment.
	DialTimeout time.Duration
	// OperationTimeout bounds reads and writes.
	OperationTimeout time.Duration
	PoolSize         int
}

// New returns a Redis backed cache, or Nop when opts.Addr is empty. The
// returned close function releases the connection pool.
func New(opts Options) (Cache, func() error) {
	if opts.Addr == "" {
		return Nop{}, func() error { return nil }
	}

	client := redis.NewClient(&redis.Options{
		Addr:         opts.Addr,
		Password:     opts.Password,
		DB:           opts.DB,
		DialTimeout:  opts.DialTimeout,
		ReadTimeout:  opts.OperationTimeout,
		WriteTimeout: opts.OperationTimeout,
		PoolSize:     opts.PoolSize,
	})

	return NewRedis(client), client.Close
}
