package domain

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// ErrCacheMiss indicates no cached entry was found.
var ErrCacheMiss = errors.New("cache miss")

// CacheKeyPrefix namespaces quote entries in the cache backend.
const CacheKeyPrefix = "quote:"

// QuoteCache stores rendered quotes for repeated identical requests.
type QuoteCache interface {
	// Get retrieves a quote by key, returning ErrCacheMiss when absent.
	Get(ctx context.Context, key string) (*Quote, error)

	// Set stores a quote under key for ttl.
	Set(ctx context.Context, key string, quote *Quote, ttl time.Duration) error
}

type cacheKeyMaterial struct {
	Input      EstimateInput `json:"input"`
	Summarizer string        `json:"summarizer"`
	Locale     string        `json:"locale"`
}

// QuoteCacheKey derives a stable key from a normalized input and presentation options.
// Inputs must be normalized first so that equivalent selections share a key.
func QuoteCacheKey(input EstimateInput, summarizer, locale string) (string, error) {
	material, err := json.Marshal(cacheKeyMaterial{
		Input:      input,
		Summarizer: summarizer,
		Locale:     locale,
	})
	if err != nil {
		return "", fmt.Errorf("failed to marshal cache key material: %w", err)
	}

	hash := sha256.Sum256(material)
	return CacheKeyPrefix + hex.EncodeToString(hash[:]), nil
}
