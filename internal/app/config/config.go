// Package config はアプリケーション設定を環境変数から読み込みます。
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
	_ "time/tzdata" // HISTORY_REFRESH_TZ on images without zoneinfo

	"github.com/joho/godotenv"

	"trading_insights/internal/platform/db"
	"trading_insights/internal/platform/externalapi/twelvedata"
	"trading_insights/internal/platform/externalapi/yahoo"
	"trading_insights/internal/platform/logger"
	"trading_insights/internal/platform/redis"
)

// マーケットデータの取得元
const (
	SourceYahoo      = "yahoo"
	SourceTwelveData = "twelvedata"
)

// Config はアプリケーション全体の設定です。
type Config struct {
	Port int

	MarketDataSource  string
	Yahoo             yahoo.Config
	TwelveData        twelvedata.Config
	UpstreamTimeout   time.Duration
	UpstreamRateLimit int // 1分あたりの上流API呼び出し上限。0以下なら無制限
	UserAgent         string

	Redis              redis.Config
	QuoteCacheTTL      time.Duration
	HistoryRefreshHour int
	HistoryRefreshTZ   string

	DB            db.Config
	RunMigrations bool

	JWTSecret        string
	AuthRequired     bool
	CORSAllowOrigins []string

	Log            logger.Config
	TracingEnabled bool
	ServiceVersion string
}

// CacheEnabled はRedisホストが設定されている場合にtrueを返します。
func (c *Config) CacheEnabled() bool {
	return c.Redis.Host != ""
}

// HistoryRefreshLocation は履歴キャッシュの更新時刻のタイムゾーンを返します。
func (c *Config) HistoryRefreshLocation() *time.Location {
	loc, err := time.LoadLocation(c.HistoryRefreshTZ)
	if err != nil {
		return time.UTC
	}
	return loc
}

// Load は .env（存在すれば）と環境変数から設定を読み込み、検証します。
func Load() (*Config, error) {
	_ = godotenv.Load()

	timeout := getEnvAsDuration("UPSTREAM_TIMEOUT", 10*time.Second)

	cfg := &Config{
		Port: getEnvAsInt("PORT", 8080),

		MarketDataSource: strings.ToLower(getEnv("MARKET_DATA_SOURCE", SourceYahoo)),
		Yahoo: yahoo.Config{
			BaseURL:   getEnv("YAHOO_BASE_URL", yahoo.DefaultBaseURL),
			SearchURL: getEnv("YAHOO_SEARCH_URL", yahoo.DefaultSearchURL),
			Timeout:   timeout,
		},
		TwelveData: twelvedata.Config{
			APIKey:  getEnv("TWELVE_DATA_API_KEY", ""),
			BaseURL: getEnv("TWELVE_DATA_BASE_URL", twelvedata.DefaultBaseURL),
			Timeout: timeout,
		},
		UpstreamTimeout:   timeout,
		UpstreamRateLimit: getEnvAsInt("UPSTREAM_RATE_LIMIT", 60),
		UserAgent:         getEnv("UPSTREAM_USER_AGENT", "Mozilla/5.0 (compatible; trading_insights/1.0)"),

		Redis: redis.Config{
			Host:     getEnv("REDIS_HOST", ""),
			Port:     getEnv("REDIS_PORT", "6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
		},
		QuoteCacheTTL:      getEnvAsDuration("QUOTE_CACHE_TTL", time.Minute),
		HistoryRefreshHour: getEnvAsInt("HISTORY_REFRESH_HOUR", 8),
		HistoryRefreshTZ:   getEnv("HISTORY_REFRESH_TZ", "Asia/Tokyo"),

		DB: db.Config{
			Driver:     strings.ToLower(getEnv("DB_DRIVER", db.DriverSQLite)),
			SQLitePath: getEnv("SQLITE_PATH", "trading_insights.db"),
			Host:       getEnv("DB_HOST", "localhost"),
			Port:       getEnv("DB_PORT", "5432"),
			User:       getEnv("DB_USER", ""),
			Password:   getEnv("DB_PASSWORD", ""),
			Name:       getEnv("DB_NAME", "trading_insights"),
			SSLMode:    getEnv("DB_SSLMODE", ""),
		},
		RunMigrations: getEnvAsBool("RUN_MIGRATIONS", true),

		JWTSecret:        getEnv("JWT_SECRET", ""),
		AuthRequired:     getEnvAsBool("AUTH_REQUIRED", false),
		CORSAllowOrigins: splitList(getEnv("CORS_ALLOW_ORIGINS", "*")),

		Log: logger.Config{
			Level:  getEnv("LOG_LEVEL", "INFO"),
			Format: getEnv("LOG_FORMAT", "json"),
		},
		TracingEnabled: getEnvAsBool("TRACING_ENABLED", false),
		ServiceVersion: getEnv("SERVICE_VERSION", "dev"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate は設定値の整合性を検証します。
func (c *Config) Validate() error {
	var errs []error

	if c.Port <= 0 || c.Port > 65535 {
		errs = append(errs, fmt.Errorf("PORT out of range: %d", c.Port))
	}
	switch c.MarketDataSource {
	case SourceYahoo:
	case SourceTwelveData:
		if c.TwelveData.APIKey == "" {
			errs = append(errs, errors.New("TWELVE_DATA_API_KEY is required when MARKET_DATA_SOURCE=twelvedata"))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown MARKET_DATA_SOURCE %q", c.MarketDataSource))
	}
	if c.UpstreamTimeout <= 0 {
		errs = append(errs, errors.New("UPSTREAM_TIMEOUT must be positive"))
	}
	if c.HistoryRefreshHour < 0 || c.HistoryRefreshHour > 23 {
		errs = append(errs, fmt.Errorf("HISTORY_REFRESH_HOUR out of range: %d", c.HistoryRefreshHour))
	}
	if _, err := time.LoadLocation(c.HistoryRefreshTZ); err != nil {
		errs = append(errs, fmt.Errorf("invalid HISTORY_REFRESH_TZ: %w", err))
	}
	switch c.DB.Driver {
	case db.DriverSQLite, db.DriverPostgres:
	default:
		errs = append(errs, fmt.Errorf("unknown DB_DRIVER %q", c.DB.Driver))
	}
	if c.AuthRequired && c.JWTSecret == "" {
		errs = append(errs, errors.New("JWT_SECRET is required when AUTH_REQUIRED=true"))
	}

	return errors.Join(errs...)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
