// Package usecase はレコメンド（BUY/SELL/HOLD）算出のアプリケーションロジックを実装します。
package usecase

import (
	"context"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel/attribute"
	oteltrace "go.opentelemetry.io/otel/trace"

	"trading_insights/internal/domain/entity"
	"trading_insights/internal/feature/recommendation/domain"
	recentity "trading_insights/internal/feature/recommendation/domain/entity"
	"trading_insights/internal/feature/recommendation/domain/scoring"
	"trading_insights/internal/platform/trace"
)

// MarketDataProvider は相場情報と日足履歴の取得を抽象化します。
// Goの慣例に従い、インターフェースは利用者（usecase）側で定義します。
type MarketDataProvider interface {
	// GetQuote は最新の相場情報を取得します。
	GetQuote(ctx context.Context, symbol string) (entity.Quote, error)
	// GetHistory は [start, end] の日足を取得します。
	GetHistory(ctx context.Context, symbol string, start, end time.Time) ([]entity.PricePoint, error)
}

// HistoryLookback はスコアリングに使う日足履歴の期間です。
const HistoryLookback = 1 // years

// RecommendationUsecase は銘柄のレコメンドを算出します。
type RecommendationUsecase struct {
	market MarketDataProvider
	now    func() time.Time
}

// NewRecommendationUsecase は RecommendationUsecase の新しいインスタンスを生成します。
func NewRecommendationUsecase(market MarketDataProvider) *RecommendationUsecase {
	return &RecommendationUsecase{market: market, now: time.Now}
}

// GetRecommendation は銘柄の相場情報と直近1年の日足を取得し、スコアリングエンジンで評価します。
//
// エラー:
//   - domain.ErrInvalidInput: 銘柄が空（外部APIは呼び出さない）
//   - domain.ErrInsufficientData: 日足が200本未満
//   - その他: MarketDataProvider のエラーをそのまま返す
func (uc *RecommendationUsecase) GetRecommendation(ctx context.Context, symbol string) (recentity.RecommendationResult, error) {
	symbol = scoring.NormalizeSymbol(symbol)
	if symbol == "" {
		return recentity.RecommendationResult{}, domain.ErrInvalidInput
	}

	ctx, span := trace.StartSpan(ctx, "recommendation.GetRecommendation",
		oteltrace.WithAttributes(attribute.String("symbol", symbol)))
	defer span.End()

	quote, err := uc.fetchQuote(ctx, symbol)
	if err != nil {
		trace.RecordError(span, err)
		return recentity.RecommendationResult{}, err
	}

	end := uc.now()
	start := end.AddDate(-HistoryLookback, 0, 0)
	history, err := uc.fetchHistory(ctx, symbol, start, end)
	if err != nil {
		trace.RecordError(span, err)
		return recentity.RecommendationResult{}, err
	}

	res, err := scoring.Compute(symbol, Snapshot(quote), history)
	if err != nil {
		slog.Warn("recommendation not computed", "symbol", symbol, "points", len(history), "error", err)
		trace.RecordError(span, err)
		return recentity.RecommendationResult{}, err
	}

	span.SetAttributes(
		attribute.String("recommendation", string(res.Classification)),
		attribute.Float64("total_score", res.TotalScore),
	)
	slog.Info("recommendation computed",
		"symbol", symbol,
		"recommendation", res.Classification,
		"total_score", res.TotalScore,
		"points", len(history),
	)
	return res, nil
}

func (uc *RecommendationUsecase) fetchQuote(ctx context.Context, symbol string) (entity.Quote, error) {
	ctx, span := trace.StartSpan(ctx, "market.GetQuote")
	defer span.End()
	return uc.market.GetQuote(ctx, symbol)
}

func (uc *RecommendationUsecase) fetchHistory(ctx context.Context, symbol string, start, end time.Time) (recentity.PriceSeries, error) {
	ctx, span := trace.StartSpan(ctx, "market.GetHistory")
	defer span.End()
	return uc.market.GetHistory(ctx, symbol, start, end)
}

// Snapshot はスコアリングエンジンが参照する項目だけを相場情報から取り出します。
func Snapshot(q entity.Quote) recentity.QuoteSnapshot {
	return recentity.QuoteSnapshot{
		Symbol:           q.Symbol,
		CurrentPrice:     q.RegularMarketPrice,
		FiftyTwoWeekHigh: q.FiftyTwoWeekHigh,
		FiftyTwoWeekLow:  q.FiftyTwoWeekLow,
	}
}
