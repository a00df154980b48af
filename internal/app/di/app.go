package di

import (
	"context"
	"log/slog"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"trading_insights/internal/app/config"
	"trading_insights/internal/app/router"
	quoteshandler "trading_insights/internal/feature/quotes/transport/handler"
	quotesusecase "trading_insights/internal/feature/quotes/usecase"
	rechandler "trading_insights/internal/feature/recommendation/transport/handler"
	recusecase "trading_insights/internal/feature/recommendation/usecase"
	searchhandler "trading_insights/internal/feature/search/transport/handler"
	searchusecase "trading_insights/internal/feature/search/usecase"
	symboladapters "trading_insights/internal/feature/symbols/adapters"
	"trading_insights/internal/feature/symbols/domain/entity"
	symbolhandler "trading_insights/internal/feature/symbols/transport/handler"
	symbolusecase "trading_insights/internal/feature/symbols/usecase"
	"trading_insights/internal/platform/db"
	platformhandler "trading_insights/internal/platform/http/handler"
	infraredis "trading_insights/internal/platform/redis"
)

// App holds the wired HTTP engine and the connections it owns.
type App struct {
	Router *gin.Engine

	db  *gorm.DB
	rdb *redis.Client
}

// OpenRedis connects to Redis when it is configured.
// A failed connection is logged and the service runs without cache.
func OpenRedis(ctx context.Context, cfg *config.Config) *redis.Client {
	if !cfg.CacheEnabled() {
		slog.Info("REDIS_HOST not set, running without cache")
		return nil
	}
	rdb, err := infraredis.NewRedisClient(ctx, cfg.Redis)
	if err != nil {
		slog.Warn("Redis unavailable, running without cache", "error", err)
		return nil
	}
	return rdb
}

// OpenCatalogue opens the symbol catalogue database and migrates its schema when enabled.
func OpenCatalogue(cfg *config.Config) (*gorm.DB, error) {
	return db.OpenDB(cfg.DB, cfg.RunMigrations, &entity.Symbol{})
}

// NewApp wires every feature into a gin engine.
func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {
	gdb, err := OpenCatalogue(cfg)
	if err != nil {
		return nil, err
	}
	rdb := OpenRedis(ctx, cfg)

	market := NewMarket(cfg, rdb)

	// Repository
	symbolRepo := symboladapters.NewSymbolRepository(gdb)

	// Usecase
	symbolUC := symbolusecase.NewSymbolUsecase(symbolRepo)
	searchUC := searchusecase.NewSearchUsecase(market.Searcher, symbolUC)
	quotesUC := quotesusecase.NewQuotesUsecase(market.Data)
	recUC := recusecase.NewRecommendationUsecase(market.Data)

	// Handler
	checks := map[string]platformhandler.Checker{
		"db": func(ctx context.Context) error {
			sqlDB, err := gdb.DB()
			if err != nil {
				return err
			}
			return sqlDB.PingContext(ctx)
		},
	}
	if rdb != nil {
		checks["redis"] = func(ctx context.Context) error {
			return rdb.Ping(ctx).Err()
		}
	}

	r := router.NewRouter(router.Handlers{
		Health:         platformhandler.NewHealth(checks),
		Search:         searchhandler.NewSearchHandler(searchUC),
		Symbols:        symbolhandler.NewSymbolHandler(symbolUC),
		Quotes:         quoteshandler.NewQuotesHandler(quotesUC),
		Recommendation: rechandler.NewRecommendationHandler(recUC),
	}, router.Options{
		CORSAllowOrigins: cfg.CORSAllowOrigins,
		AuthRequired:     cfg.AuthRequired,
		JWTSecret:        cfg.JWTSecret,
	})

	return &App{Router: r, db: gdb, rdb: rdb}, nil
}

// Close releases the Redis and database connections.
func (a *App) Close() {
	if a.rdb != nil {
		if err := a.rdb.Close(); err != nil {
			slog.Error("failed to close Redis client", "error", err)
		}
	}
	if a.db != nil {
		if sqlDB, err := a.db.DB(); err == nil {
			if err := sqlDB.Close(); err != nil {
				slog.Error("failed to close database", "error", err)
			}
		}
	}
}
