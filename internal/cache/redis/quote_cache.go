package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/davidbz/estimator/internal/domain"
	"github.com/davidbz/estimator/internal/observability"
)

// Config contains Redis connection settings for the quote cache.
type Config struct {
	Enabled  bool   `env:"REDIS_ENABLED"  envDefault:"false"`
	Addr     string `env:"REDIS_ADDR"     envDefault:"localhost:6379"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB"       envDefault:"0"`
}

// NewClient creates a Redis client and verifies connectivity.
func NewClient(ctx context.Context, cfg Config) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to redis at %s: %w", cfg.Addr, err)
	}

	return client, nil
}

// QuoteCache implements domain.QuoteCache on Redis string keys.
type QuoteCache struct {
	client redis.Cmdable
}

// NewQuoteCache creates a new Redis quote cache.
func NewQuoteCache(client redis.Cmdable) *QuoteCache {
	return &QuoteCache{
		client: client,
	}
}

// Get retrieves a quote by key.
func (c *QuoteCache) Get(ctx context.Context, key string) (*domain.Quote, error) {
	logger := observability.FromContext(ctx)

	data, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, domain.ErrCacheMiss
	}
	if err != nil {
		logger.Error("redis get failed",
			observability.String("key", key),
			observability.Error(err))
		return nil, fmt.Errorf("failed to get quote: %w", err)
	}

	var quote domain.Quote
	if unmarshalErr := json.Unmarshal(data, &quote); unmarshalErr != nil {
		logger.Warn("discarding undecodable cached quote",
			observability.String("key", key),
			observability.Error(unmarshalErr))
		return nil, fmt.Errorf("failed to unmarshal cached quote: %w", unmarshalErr)
	}

	return &quote, nil
}

// Set stores a quote under key for ttl. A non-positive ttl stores without expiry.
func (c *QuoteCache) Set(ctx context.Context, key string, quote *domain.Quote, ttl time.Duration) error {
	if quote == nil {
		return errors.New("quote cannot be nil")
	}

	data, err := json.Marshal(quote)
	if err != nil {
		return fmt.Errorf("failed to marshal quote: %w", err)
	}

	if ttl < 0 {
		ttl = 0
	}

	if setErr := c.client.Set(ctx, key, data, ttl).Err(); setErr != nil {
		return fmt.Errorf("failed to store quote: %w", setErr)
	}

	observability.FromContext(ctx).Debug("quote cached",
		observability.String("key", key),
		observability.Int("data_size", len(data)),
		observability.Duration("ttl", ttl))

	return nil
}
