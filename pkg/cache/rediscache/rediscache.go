// Package rediscache caches the bracket distribution KPI in Redis so the
// dashboard does not aggregate the simulations table on every read.
package rediscache

import (
	"context"
	"encoding/json"
	"errors"
	"flooow/pkg/domain"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	distributionKey = "stats:distribution"
	generationKey   = "stats:distribution:generation"
)

// Options configures the Redis connection and key layout.
type Options struct {
	// Addr is host:port of the Redis server.
	Addr string
	// Password is optional.
	Password string
	// DB selects the logical database.
	DB int
	// KeyPrefix is prepended to every key.
	KeyPrefix string
	// TTL bounds how long a stored distribution is served. Zero keeps it until overwritten.
	TTL time.Duration
	// DialTimeout defaults to 5s.
	DialTimeout time.Duration
}

// Cache stores the bracket distribution.
type Cache struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

// New connects to Redis and pings it.
func New(ctx context.Context, opts Options) (*Cache, error) {
	dialTimeout := opts.DialTimeout
	if dialTimeout <= 0 {
		dialTimeout = 5 * time.Second
	}

	client := redis.NewClient(&redis.Options{
		Addr:        opts.Addr,
		Password:    opts.Password,
		DB:          opts.DB,
		DialTimeout: dialTimeout,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()

		return nil, fmt.Errorf("could not ping redis: %w", err)
	}

	return NewWithClient(client, opts.KeyPrefix, opts.TTL), nil
}

// NewWithClient wraps an existing client.
func NewWithClient(client *redis.Client, prefix string, ttl time.Duration) *Cache {
	return &Cache{
		client: client,
		prefix: prefix,
		ttl:    ttl,
	}
}

// Distribution returns the cached distribution, or nil on a miss.
func (c *Cache) Distribution(ctx context.Context) (*domain.Distribution, error) {
	raw, err := c.client.Get(ctx, c.prefix+distributionKey).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("could not get distribution from redis: %w", err)
	}

	var d domain.Distribution
	if err := json.Unmarshal(raw, &d); err != nil {
		return nil, fmt.Errorf("could not unmarshal cached distribution: %w", err)
	}

	return &d, nil
}

// Generation returns the invalidation counter, zero when never invalidated.
func (c *Cache) Generation(ctx context.Context) (int64, error) {
	return c.generation(ctx, c.client)
}

func (c *Cache) generation(ctx context.Context, cmd redis.Cmdable) (int64, error) {
	gen, err := cmd.Get(ctx, c.prefix+generationKey).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("could not get distribution generation from redis: %w", err)
	}

	return gen, nil
}

// StoreDistribution overwrites the cached distribution when the generation is
// still the one given. It reports false, without writing, when an Invalidate
// happened since the caller read the generation.
func (c *Cache) StoreDistribution(ctx context.Context, d domain.Distribution, generation int64) (bool, error) {
	raw, err := json.Marshal(d)
	if err != nil {
		return false, fmt.Errorf("could not marshal distribution: %w", err)
	}

	stored := false
	err = c.client.Watch(ctx, func(tx *redis.Tx) error {
		current, err := c.generation(ctx, tx)
		if err != nil {
			return err
		}
		if current != generation {
			return nil
		}

		if _, err := tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, c.prefix+distributionKey, raw, c.ttl)

			return nil
		}); err != nil {
			return err //nolint: wrapcheck
		}
		stored = true

		return nil
	}, c.prefix+generationKey)
	if errors.Is(err, redis.TxFailedErr) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("could not store distribution in redis: %w", err)
	}

	return stored, nil
}

// Invalidate drops the cached distribution and bumps the generation.
func (c *Cache) Invalidate(ctx context.Context) error {
	if _, err := c.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Incr(ctx, c.prefix+generationKey)
		pipe.Del(ctx, c.prefix+distributionKey)

		return nil
	}); err != nil {
		return fmt.Errorf("could not invalidate distribution in redis: %w", err)
	}

	return nil
}

// Close closes the underlying client.
func (c *Cache) Close() error {
	if err := c.client.Close(); err != nil {
		return fmt.Errorf("could not close redis client: %w", err)
	}

	return nil
}
