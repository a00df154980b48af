// Package dto は相場APIのレスポンスDTOを定義します。
package dto

import (
	"time"

	"github.com/oapi-codegen/runtime/types"

	"trading_insights/internal/domain/entity"
)

// QuoteResponse は最新相場のレスポンスDTOです。取得できなかった項目は省略します。
type QuoteResponse struct {
	Symbol                     string     `json:"symbol"`
	ShortName                  string     `json:"shortName,omitempty"`
	LongName                   string     `json:"longName,omitempty"`
	RegularMarketPrice         *float64   `json:"regularMarketPrice,omitempty"`
	RegularMarketChange        *float64   `json:"regularMarketChange,omitempty"`
	RegularMarketChangePercent *float64   `json:"regularMarketChangePercent,omitempty"`
	RegularMarketTime          *time.Time `json:"regularMarketTime,omitempty"`
	Currency                   string     `json:"currency,omitempty"`
	Exchange                   string     `json:"exchange,omitempty"`
	QuoteType                  string     `json:"quoteType,omitempty"`
	MarketState                string     `json:"marketState,omitempty"`
	Volume                     *int64     `json:"volume,omitempty"`
	AverageVolume              *int64     `json:"averageVolume,omitempty"`
	DayHigh                    *float64   `json:"dayHigh,omitempty"`
	DayLow                     *float64   `json:"dayLow,omitempty"`
	FiftyTwoWeekHigh           *float64   `json:"fiftyTwoWeekHigh,omitempty"`
	FiftyTwoWeekLow            *float64   `json:"fiftyTwoWeekLow,omitempty"`
}

// FromQuote はドメインの相場情報をレスポンスDTOに変換します。
func FromQuote(q entity.Quote) QuoteResponse {
	return QuoteResponse{
		Symbol:                     q.Symbol,
		ShortName:                  q.ShortName,
		LongName:                   q.LongName,
		RegularMarketPrice:         q.RegularMarketPrice,
		RegularMarketChange:        q.RegularMarketChange,
		RegularMarketChangePercent: q.RegularMarketChangePercent,
		RegularMarketTime:          q.RegularMarketTime,
		Currency:                   q.Currency,
		Exchange:                   q.Exchange,
		QuoteType:                  q.QuoteType,
		MarketState:                q.MarketState,
		Volume:                     q.Volume,
		AverageVolume:              q.AverageVolume,
		DayHigh:                    q.DayHigh,
		DayLow:                     q.DayLow,
		FiftyTwoWeekHigh:           q.FiftyTwoWeekHigh,
		FiftyTwoWeekLow:            q.FiftyTwoWeekLow,
	}
}

// PricePointResponse は日足1本のレスポンスDTOです。
type PricePointResponse struct {
	Date   types.Date `json:"date"`   // 日付（YYYY-MM-DD）
	Open   float64    `json:"open"`   // 始値
	High   float64    `json:"high"`   // 高値
	Low    float64    `json:"low"`    // 安値
	Close  float64    `json:"close"`  // 終値
	Volume int64      `json:"volume"` // 出来高
}

// HistoryResponse は価格履歴のレスポンスDTOです。
type HistoryResponse struct {
	Symbol string               `json:"symbol"`
	Range  string               `json:"range"`
	Data   []PricePointResponse `json:"data"`
}

// FromHistory は日足のスライスをレスポンスDTOに変換します。
func FromHistory(symbol, rng string, points []entity.PricePoint) HistoryResponse {
	data := make([]PricePointResponse, 0, len(points))
	for _, p := range points {
		data = append(data, PricePointResponse{
			Date:   types.Date{Time: p.Date.UTC()},
			Open:   p.Open,
			High:   p.High,
			Low:    p.Low,
			Close:  p.Close,
			Volume: p.Volume,
		})
	}
	return HistoryResponse{Symbol: symbol, Range: rng, Data: data}
}
