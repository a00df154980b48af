// Package router はHTTPルーティングを定義します。
package router

import (
	"slices"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	quoteshandler "trading_insights/internal/feature/quotes/transport/handler"
	rechandler "trading_insights/internal/feature/recommendation/transport/handler"
	searchhandler "trading_insights/internal/feature/search/transport/handler"
	symbolhandler "trading_insights/internal/feature/symbols/transport/handler"
	jwtmw "trading_insights/internal/platform/jwt"
)

// Handlers はルーターに登録するハンドラー群です。
type Handlers struct {
	Health         gin.HandlerFunc
	Search         *searchhandler.SearchHandler
	Symbols        *symbolhandler.SymbolHandler
	Quotes         *quoteshandler.QuotesHandler
	Recommendation *rechandler.RecommendationHandler
}

// Options はルーターの横断的な設定です。
type Options struct {
	CORSAllowOrigins []string
	AuthRequired     bool
	JWTSecret        string
}

// NewRouter はginエンジンを生成し、全エンドポイントを登録します。
func NewRouter(h Handlers, opts Options) *gin.Engine {
	r := gin.Default()
	r.Use(cors.New(corsConfig(opts.CORSAllowOrigins)))

	// 導通確認用
	r.GET("/healthz", h.Health)
	r.HEAD("/healthz", h.Health)
	r.OPTIONS("/healthz", h.Health)

	// ティッカー検索は常に公開
	r.GET("/search", h.Search.Search)

	// AUTH_REQUIRED=true の場合は JWT が必要
	api := r.Group("/")
	if opts.AuthRequired {
		api.Use(jwtmw.AuthRequired(opts.JWTSecret))
	}
	{
		api.GET("/symbols", h.Symbols.List)
		api.GET("/stocks/:symbol/latest", h.Quotes.GetLatest)
		api.GET("/stocks/:symbol/history", h.Quotes.GetHistory)
		api.GET("/stocks/:symbol/recommendation", h.Recommendation.GetRecommendation)
	}

	return r
}

// corsConfig はブラウザのフロントエンドから読み取り専用APIを呼べるようにします。
func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods:  []string{"GET", "HEAD", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}
	if len(origins) == 0 || slices.Contains(origins, "*") {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
	}
	return cfg
}
