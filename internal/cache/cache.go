// Package cache provides a TTL cache for expensive results behind a
// small Store interface, with in-memory and Redis drivers selected by
// a factory. The memory driver is the default and the only one needed
// for single-process deployments.
package cache

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// Driver identifies a cache backend.
type Driver string

const (
	DriverMemory Driver = "memory"
	DriverRedis  Driver = "redis"
)

// DefaultTTL is how long entries live unless configured otherwise.
const DefaultTTL = 3600 * time.Second

var (
	// ErrInvalidDriver indicates an unknown driver name.
	ErrInvalidDriver = errors.New("invalid cache driver")

	// ErrMissingRedisClient indicates the redis driver was selected
	// without providing a client.
	ErrMissingRedisClient = errors.New("redis driver requires a client")
)

// Store is a get/set cache with expiry. Expired entries are treated as
// absent. Not required to tolerate uncoordinated concurrent writers to
// the same key.
type Store interface {
	// Get returns the cached value and whether it was present and fresh.
	Get(ctx context.Context, key string) (string, bool, error)

	// Set stores value under key with the configured TTL.
	Set(ctx context.Context, key, value string) error

	// Clear drops all entries.
	Clear(ctx context.Context) error
}

// Option configures the factory.
type Option func(*storeConfig)

type storeConfig struct {
	ttl         time.Duration
	redisClient *redis.Client
}

// WithTTL overrides the entry lifetime.
func WithTTL(ttl time.Duration) Option {
	return func(c *storeConfig) { c.ttl = ttl }
}

// WithRedisClient supplies the client for the redis driver.
func WithRedisClient(client *redis.Client) Option {
	return func(c *storeConfig) { c.redisClient = client }
}

// New creates a Store for the given driver.
func New(driver Driver, opts ...Option) (Store, error) {
	cfg := &storeConfig{ttl: DefaultTTL}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.ttl <= 0 {
		cfg.ttl = DefaultTTL
	}

	switch driver {
	case DriverMemory:
		return newMemoryStore(cfg.ttl), nil
	case DriverRedis:
		if cfg.redisClient == nil {
			return nil, ErrMissingRedisClient
		}
		return &redisStore{client: cfg.redisClient, ttl: cfg.ttl}, nil
	default:
		return nil, ErrInvalidDriver
	}
}
