package internal

import (
	"context"
	"errors"
	"fmt"
	"math"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisConfig holds connection settings for a Redis-backed table store.
// A Redis store is useful for sharing built pattern databases between
// machines (for example CI runners) instead of rebuilding them per host.
type RedisConfig struct {
	Addr     string `yaml:"addr" json:"addr"`         // Redis server address (host:port)
	Password string `yaml:"password" json:"password"` // Redis password (optional)
	DB       int    `yaml:"db" json:"db"`             // Redis database number

	DialTimeout  time.Duration `yaml:"dial_timeout" json:"dial_timeout"`
	ReadTimeout  time.Duration `yaml:"read_timeout" json:"read_timeout"`
	WriteTimeout time.Duration `yaml:"write_timeout" json:"write_timeout"`

	Retry *RetryConfig `yaml:"retry" json:"retry"`
}

// RetryConfig defines retry behavior with exponential backoff
type RetryConfig struct {
	MaxAttempts  int           `yaml:"max_attempts" json:"max_attempts"`
	InitialDelay time.Duration `yaml:"initial_delay" json:"initial_delay"`
	MaxDelay     time.Duration `yaml:"max_delay" json:"max_delay"`
	Multiplier   float64       `yaml:"multiplier" json:"multiplier"`
	Jitter       bool          `yaml:"jitter" json:"jitter"`
}

// DefaultRetryConfig returns a RetryConfig with sensible default values
func DefaultRetryConfig() *RetryConfig {
	return &RetryConfig{
		MaxAttempts:  3,
		InitialDelay: 100 * time.Millisecond,
		MaxDelay:     5 * time.Second,
		Multiplier:   2.0,
		Jitter:       true,
	}
}

// DefaultRedisConfig returns a RedisConfig with sensible default values
func DefaultRedisConfig() *RedisConfig {
	return &RedisConfig{
		Addr:         "localhost:6379",
		DB:           0,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
		Retry:        DefaultRetryConfig(),
	}
}

func validateRedisConfig(cfg *RedisConfig) error {
	if cfg.Addr == "" {
		return fmt.Errorf("redis address cannot be empty")
	}
	if cfg.DB < 0 || cfg.DB > 15 {
		return fmt.Errorf("redis database must be between 0 and 15, got %d", cfg.DB)
	}
	if r := cfg.Retry; r != nil {
		if r.MaxAttempts < 1 {
			return fmt.Errorf("max attempts must be positive, got %d", r.MaxAttempts)
		}
		if r.Multiplier < 1.0 {
			return fmt.Errorf("multiplier must be >= 1.0, got %f", r.Multiplier)
		}
		if r.InitialDelay > r.MaxDelay {
			return fmt.Errorf("initial delay (%v) cannot be greater than max delay (%v)", r.InitialDelay, r.MaxDelay)
		}
	}
	return nil
}

// RedisClient is the subset of Redis operations the store needs, behind an
// interface so tests can substitute a mock.
type RedisClient interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Ping(ctx context.Context) error
	Close() error
}

// goRedisClient adapts go-redis with retry logic.
type goRedisClient struct {
	client *redis.Client
	retry  *RetryConfig
}

func newGoRedisClient(cfg *RedisConfig) *goRedisClient {
	return &goRedisClient{
		client: redis.NewClient(&redis.Options{
			Addr:         cfg.Addr,
			Password:     cfg.Password,
			DB:           cfg.DB,
			DialTimeout:  cfg.DialTimeout,
			ReadTimeout:  cfg.ReadTimeout,
			WriteTimeout: cfg.WriteTimeout,
		}),
		retry: cfg.Retry,
	}
}

// isRetryableError determines if an error should trigger a retry
func isRetryableError(err error) bool {
	if err == nil || errors.Is(err, redis.Nil) {
		return false
	}
	msg := strings.ToLower(err.Error())
	for _, s := range []string{
		"connection refused", "connection reset", "connection timeout",
		"network is unreachable", "no route to host", "broken pipe",
		"i/o timeout", "loading", "busy", "tryagain",
	} {
		if strings.Contains(msg, s) {
			return true
		}
	}
	return false
}

// backoffDelay calculates the delay before the next retry attempt
func (c *goRedisClient) backoffDelay(attempt int) time.Duration {
	delay := float64(c.retry.InitialDelay) * math.Pow(c.retry.Multiplier, float64(attempt))
	if delay > float64(c.retry.MaxDelay) {
		delay = float64(c.retry.MaxDelay)
	}
	if c.retry.Jitter {
		delay += rand.Float64() * 0.1 * delay
	}
	return time.Duration(delay)
}

// executeWithRetry executes a function with retry logic
func (c *goRedisClient) executeWithRetry(ctx context.Context, operation string, fn func() error) error {
	if c.retry == nil {
		return fn()
	}
	var lastErr error
	for attempt := 0; attempt < c.retry.MaxAttempts; attempt++ {
		err := fn()
		if err == nil {
			return nil
		}
		lastErr = err
		if !isRetryableError(err) {
			return err
		}
		if attempt == c.retry.MaxAttempts-1 {
			break
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(c.backoffDelay(attempt)):
		}
	}
	return fmt.Errorf("operation '%s' failed after %d attempts: %w", operation, c.retry.MaxAttempts, lastErr)
}

func (c *goRedisClient) Get(ctx context.Context, key string) ([]byte, error) {
	var result []byte
	err := c.executeWithRetry(ctx, "get", func() error {
		val, err := c.client.Get(ctx, key).Bytes()
		if err != nil {
			return err
		}
		result = val
		return nil
	})
	return result, err
}

func (c *goRedisClient) Set(ctx context.Context, key string, value []byte) error {
	return c.executeWithRetry(ctx, "set", func() error {
		// Tables are immutable once built; they never expire.
		return c.client.Set(ctx, key, value, 0).Err()
	})
}

func (c *goRedisClient) Ping(ctx context.Context) error {
	return c.executeWithRetry(ctx, "ping", func() error {
		pong, err := c.client.Ping(ctx).Result()
		if err != nil {
			return fmt.Errorf("ping failed: %w", err)
		}
		if pong != "PONG" {
			return fmt.Errorf("unexpected ping response: %s", pong)
		}
		return nil
	})
}

func (c *goRedisClient) Close() error {
	return c.client.Close()
}

// keyPrefix namespaces table keys inside a shared Redis database.
const keyPrefix = "slidy-cli:solver:pdb:"

// RedisStore implements TableStore on a Redis server.
type RedisStore struct {
	client RedisClient
}

// NewRedisStore connects to Redis and verifies the connection with a ping.
func NewRedisStore(cfg *RedisConfig) (*RedisStore, error) {
	if cfg == nil {
		cfg = DefaultRedisConfig()
	}
	if err := validateRedisConfig(cfg); err != nil {
		return nil, NewValidationError("invalid redis configuration", err)
	}
	client := newGoRedisClient(cfg)
	if err := client.Ping(context.Background()); err != nil {
		_ = client.Close()
		return nil, NewConnectionError("cannot reach redis table store", err)
	}
	return &RedisStore{client: client}, nil
}

// NewRedisStoreWithClient builds a store around an injected client, for
// testing.
func NewRedisStoreWithClient(client RedisClient) *RedisStore {
	return &RedisStore{client: client}
}

// Load retrieves table bytes. Missing keys are NOT_FOUND; connection
// failures are surfaced as connection errors so callers do not mistake an
// unreachable store for an absent table.
func (s *RedisStore) Load(ctx context.Context, key string) ([]byte, error) {
	data, err := s.client.Get(ctx, keyPrefix+key)
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, NewNotFoundError(key)
		}
		return nil, NewConnectionError(fmt.Sprintf("failed to load table '%s'", key), err)
	}
	return data, nil
}

// Save stores table bytes under the namespaced key.
func (s *RedisStore) Save(ctx context.Context, key string, data []byte) error {
	if err := s.client.Set(ctx, keyPrefix+key, data); err != nil {
		return NewPersistenceError(key, "failed to store table in redis", err)
	}
	return nil
}

// Close releases the underlying connection pool.
func (s *RedisStore) Close() error {
	return s.client.Close()
}
