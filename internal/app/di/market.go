// Package di provides dependency injection factories for creating application components.
package di

import (
	"time"

	"github.com/redis/go-redis/v9"

	"trading_insights/internal/app/config"
	"trading_insights/internal/platform/cache"
	"trading_insights/internal/platform/externalapi/twelvedata"
	"trading_insights/internal/platform/externalapi/yahoo"
	infrahttp "trading_insights/internal/platform/http"
	"trading_insights/internal/platform/ratelimiter"
)

// Market groups the upstream market data components shared by the features.
type Market struct {
	// Data is the configured quote/history source behind the Redis cache.
	Data *cache.CachingMarketData
	// Searcher serves ticker search; Yahoo is the only source with a search API.
	Searcher *yahoo.YahooMarket
}

// NewMarket creates the market data providers with a shared HTTP client and rate limiter.
// rdb may be nil, in which case caching is disabled.
func NewMarket(cfg *config.Config, rdb *redis.Client) *Market {
	httpClient := infrahttp.NewHTTPClient(cfg.UpstreamTimeout, cfg.UserAgent)
	limiter := ratelimiter.NewRateLimiter(cfg.UpstreamRateLimit, time.Minute)

	yahooMarket := yahoo.NewYahooMarket(cfg.Yahoo, httpClient, limiter)

	var source cache.MarketData = yahooMarket
	if cfg.MarketDataSource == config.SourceTwelveData {
		source = twelvedata.NewTwelveDataMarket(cfg.TwelveData, httpClient, limiter)
	}

	cached := cache.NewCachingMarketData(rdb, source, cache.Options{
		QuoteTTL:    cfg.QuoteCacheTTL,
		RefreshHour: cfg.HistoryRefreshHour,
		Location:    cfg.HistoryRefreshLocation(),
		Namespace:   "market:" + cfg.MarketDataSource,
	})

	return &Market{Data: cached, Searcher: yahooMarket}
}
