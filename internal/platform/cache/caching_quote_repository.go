// Package cache provides caching implementations for repository interfaces.
package cache

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"watchlist_backend/internal/feature/watchlist/usecase"
)

// CachingQuoteRepository decorates a QuoteRepository with Redis caching.
// It implements the decorator pattern, transparently adding a short positive
// cache without modifying the underlying provider client. Provider errors
// and not-found results are never cached, so a bad symbol is re-checked on
// every add.
type CachingQuoteRepository struct {
	inner     usecase.QuoteRepository
	rdb       *redis.Client
	ttl       time.Duration
	namespace string
}

var _ usecase.QuoteRepository = (*CachingQuoteRepository)(nil)

// NewCachingQuoteRepository decorates a QuoteRepository with Redis caching.
// If ttl is 0, it defaults to 1 minute. If namespace is empty, it uses "quotes".
func NewCachingQuoteRepository(rdb *redis.Client, ttl time.Duration, inner usecase.QuoteRepository, namespace string) *CachingQuoteRepository {
	if ttl <= 0 {
		ttl = time.Minute
	}
	if namespace == "" {
		namespace = "quotes"
	}
	return &CachingQuoteRepository{
		inner:     inner,
		rdb:       rdb,
		ttl:       ttl,
		namespace: namespace,
	}
}

// GetQuote retrieves a price, checking cache first then falling back to the
// provider.
func (c *CachingQuoteRepository) GetQuote(ctx context.Context, symbol string) (float64, error) {
	// Bypass cache if Redis is not configured
	if c.rdb == nil {
		return c.inner.GetQuote(ctx, symbol)
	}

	key := c.cacheKey(symbol)

	// 1) Check cache
	if s, err := c.rdb.Get(ctx, key).Result(); err == nil && s != "" {
		if price, err := strconv.ParseFloat(s, 64); err == nil {
			return price, nil
		}
		// Delete corrupted cache entry
		_ = c.rdb.Del(ctx, key).Err()
	}

	// 2) Fallback to the provider
	price, err := c.inner.GetQuote(ctx, symbol)
	if err != nil {
		return 0, err
	}

	// 3) Store in cache (best effort)
	_ = c.rdb.Set(ctx, key, strconv.FormatFloat(price, 'f', -1, 64), c.ttl).Err()

	return price, nil
}

// cacheKey generates the cache key for a symbol.
func (c *CachingQuoteRepository) cacheKey(symbol string) string {
	return fmt.Sprintf("%s:%s", c.namespace, safe(symbol))
}

// safe escapes characters that are problematic for Redis keys.
func safe(s string) string {
	s = strings.ReplaceAll(s, " ", "_")
	s = strings.ReplaceAll(s, ":", "_")
	return s
}
