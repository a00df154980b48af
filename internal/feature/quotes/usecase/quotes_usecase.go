// Package usecase は相場情報と価格履歴の取得ロジックを実装します。
package usecase

import (
	"context"
	"strings"
	"time"

	"trading_insights/internal/domain/entity"
)

// DefaultRange は期間未指定時の履歴期間です。
const DefaultRange = "1m"

// MarketDataProvider は相場情報と日足履歴の取得を抽象化します。
type MarketDataProvider interface {
	GetQuote(ctx context.Context, symbol string) (entity.Quote, error)
	GetHistory(ctx context.Context, symbol string, start, end time.Time) ([]entity.PricePoint, error)
}

// QuotesUsecase は最新相場と価格履歴のユースケースです。
type QuotesUsecase struct {
	market MarketDataProvider
	now    func() time.Time
}

// NewQuotesUsecase はQuotesUsecaseの新しいインスタンスを生成します。
func NewQuotesUsecase(market MarketDataProvider) *QuotesUsecase {
	return &QuotesUsecase{market: market, now: time.Now}
}

// GetQuote は銘柄の最新相場を返します。銘柄は前後の空白を除去し大文字に揃えます。
func (uc *QuotesUsecase) GetQuote(ctx context.Context, symbol string) (entity.Quote, error) {
	symbol = normalize(symbol)
	if symbol == "" {
		return entity.Quote{}, ErrSymbolRequired
	}
	return uc.market.GetQuote(ctx, symbol)
}

// GetHistory は指定期間（1w, 1m, 6m, 1y）の日足を返します。空の期間は DefaultRange として扱います。
func (uc *QuotesUsecase) GetHistory(ctx context.Context, symbol, rng string) ([]entity.PricePoint, error) {
	symbol = normalize(symbol)
	if symbol == "" {
		return nil, ErrSymbolRequired
	}

	end := uc.now()
	start, err := RangeStart(rng, end)
	if err != nil {
		return nil, err
	}
	return uc.market.GetHistory(ctx, symbol, start, end)
}

// RangeStart は期間文字列から開始日時を算出します。
func RangeStart(rng string, end time.Time) (time.Time, error) {
	if rng == "" {
		rng = DefaultRange
	}
	switch rng {
	case "1w":
		return end.AddDate(0, 0, -7), nil
	case "1m":
		return end.AddDate(0, -1, 0), nil
	case "6m":
		return end.AddDate(0, -6, 0), nil
	case "1y":
		return end.AddDate(-1, 0, 0), nil
	default:
		return time.Time{}, ErrInvalidRange
	}
}

func normalize(symbol string) string {
	return strings.ToUpper(strings.TrimSpace(symbol))
}
