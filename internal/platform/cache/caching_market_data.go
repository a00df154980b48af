// Package cache provides caching implementations for market data providers.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"trading_insights/internal/domain/entity"
	recusecase "trading_insights/internal/feature/recommendation/usecase"
)

const (
	defaultQuoteTTL    = time.Minute
	defaultRefreshHour = 8
	defaultNamespace   = "market"
)

// MarketData is the provider being decorated.
type MarketData interface {
	GetQuote(ctx context.Context, symbol string) (entity.Quote, error)
	GetHistory(ctx context.Context, symbol string, start, end time.Time) ([]entity.PricePoint, error)
}

// Options configures CachingMarketData. Zero values fall back to defaults.
type Options struct {
	QuoteTTL    time.Duration  // lifetime of cached quotes (default 1m)
	RefreshHour int            // hour of day at which cached history expires (default 8)
	Location    *time.Location // zone of RefreshHour (default UTC)
	Namespace   string         // key prefix (default "market")
}

// CachingMarketData decorates a MarketData provider with Redis caching.
// Quotes live for a short TTL; daily history lives until the next refresh hour,
// when the upstream has published the previous session's bar.
type CachingMarketData struct {
	inner       MarketData
	rdb         *redis.Client
	quoteTTL    time.Duration
	refreshHour int
	loc         *time.Location
	namespace   string
	now         func() time.Time
}

var _ recusecase.MarketDataProvider = (*CachingMarketData)(nil)

// NewCachingMarketData decorates inner with Redis caching.
// A nil rdb disables caching and every call goes straight to inner.
func NewCachingMarketData(rdb *redis.Client, inner MarketData, opts Options) *CachingMarketData {
	if opts.QuoteTTL <= 0 {
		opts.QuoteTTL = defaultQuoteTTL
	}
	if opts.RefreshHour < 0 || opts.RefreshHour > 23 {
		opts.RefreshHour = defaultRefreshHour
	}
	if opts.Location == nil {
		opts.Location = time.UTC
	}
	if opts.Namespace == "" {
		opts.Namespace = defaultNamespace
	}
	return &CachingMarketData{
		inner:       inner,
		rdb:         rdb,
		quoteTTL:    opts.QuoteTTL,
		refreshHour: opts.RefreshHour,
		loc:         opts.Location,
		namespace:   opts.Namespace,
		now:         time.Now,
	}
}

// GetQuote returns the cached quote or fetches and caches it.
func (c *CachingMarketData) GetQuote(ctx context.Context, symbol string) (entity.Quote, error) {
	if c.rdb == nil {
		return c.inner.GetQuote(ctx, symbol)
	}

	key := c.quoteKey(symbol)
	var q entity.Quote
	if c.load(ctx, key, &q) {
		return q, nil
	}

	q, err := c.inner.GetQuote(ctx, symbol)
	if err != nil {
		return entity.Quote{}, err
	}
	c.store(ctx, key, q, c.quoteTTL)
	return q, nil
}

// GetHistory returns cached daily bars for the date range or fetches and caches them.
// Keys use calendar dates, so calls within the same day share an entry.
func (c *CachingMarketData) GetHistory(ctx context.Context, symbol string, start, end time.Time) ([]entity.PricePoint, error) {
	if c.rdb == nil {
		return c.inner.GetHistory(ctx, symbol, start, end)
	}

	key := c.historyKey(symbol, start, end)
	var out []entity.PricePoint
	if c.load(ctx, key, &out) {
		return out, nil
	}

	out, err := c.inner.GetHistory(ctx, symbol, start, end)
	if err != nil {
		return nil, err
	}
	c.store(ctx, key, out, TimeUntilNextRefresh(c.now(), c.refreshHour, c.loc))
	return out, nil
}

// load reads key into dst. Corrupted entries are deleted.
func (c *CachingMarketData) load(ctx context.Context, key string, dst any) bool {
	b, err := c.rdb.Get(ctx, key).Bytes()
	if err != nil || len(b) == 0 {
		if err != nil && err != redis.Nil {
			slog.Warn("cache read failed", "key", key, "error", err)
		}
		return false
	}
	if err := json.Unmarshal(b, dst); err != nil {
		_ = c.rdb.Del(ctx, key).Err()
		return false
	}
	return true
}

// store writes v under key (best effort).
func (c *CachingMarketData) store(ctx context.Context, key string, v any, ttl time.Duration) {
	b, err := json.Marshal(v)
	if err != nil {
		return
	}
	if err := c.rdb.Set(ctx, key, b, ttl).Err(); err != nil {
		slog.Warn("cache write failed", "key", key, "error", err)
	}
}

// quoteKey generates the cache key for a quote.
func (c *CachingMarketData) quoteKey(symbol string) string {
	return fmt.Sprintf("%s:quote:%s", c.namespace, safe(symbol))
}

// historyKey generates the cache key for a history range.
func (c *CachingMarketData) historyKey(symbol string, start, end time.Time) string {
	return fmt.Sprintf("%s:history:%s:%s:%s",
		c.namespace,
		safe(symbol),
		start.UTC().Format(time.DateOnly),
		end.UTC().Format(time.DateOnly),
	)
}

// safe escapes characters that are problematic for Redis keys.
func safe(s string) string {
	s = strings.ReplaceAll(s, " ", "_")
	s = strings.ReplaceAll(s, ":", "_")
	return s
}
