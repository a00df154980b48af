package yahoo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"trading_insights/internal/domain/entity"
	recusecase "trading_insights/internal/feature/recommendation/usecase"
	searchusecase "trading_insights/internal/feature/search/usecase"
	"trading_insights/internal/platform/externalapi/yahoo/dto"
)

// ErrNoData は chart API が結果を返さなかった場合のエラーです。
var ErrNoData = errors.New("yahoo: no data returned")

// Limiter は外部API呼び出しの前に待機するレートリミッターです。
type Limiter interface {
	Wait(ctx context.Context) error
}

// YahooMarket は Yahoo Finance の chart / search API を利用するマーケットデータ実装です。
type YahooMarket struct {
	cfg     Config
	client  *http.Client
	limiter Limiter
}

// YahooMarketがMarketDataProviderとTickerSearcherを実装していることをコンパイル時に検証します。
var (
	_ recusecase.MarketDataProvider = (*YahooMarket)(nil)
	_ searchusecase.TickerSearcher  = (*YahooMarket)(nil)
)

// NewYahooMarket は YahooMarket の新しいインスタンスを生成します。
// limiter が nil の場合はレート制限を行いません。
func NewYahooMarket(cfg Config, client *http.Client, limiter Limiter) *YahooMarket {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.SearchURL == "" {
		cfg.SearchURL = DefaultSearchURL
	}
	if cfg.SearchLimit <= 0 {
		cfg.SearchLimit = defaultSearchLimit
	}
	return &YahooMarket{cfg: cfg, client: client, limiter: limiter}
}

// GetQuote は chart API のメタ情報から最新の相場情報を組み立てます。
func (y *YahooMarket) GetQuote(ctx context.Context, symbol string) (entity.Quote, error) {
	q := url.Values{}
	q.Set("range", "1d")
	q.Set("interval", "1d")

	res, err := y.chart(ctx, symbol, q)
	if err != nil {
		return entity.Quote{}, err
	}

	m := res.Meta
	quote := entity.Quote{
		Symbol:             m.Symbol,
		ShortName:          m.ShortName,
		LongName:           m.LongName,
		Currency:           m.Currency,
		Exchange:           m.ExchangeName,
		QuoteType:          m.InstrumentType,
		RegularMarketPrice: m.RegularMarketPrice,
		Volume:             m.RegularMarketVolume,
		DayHigh:            m.RegularMarketDayHigh,
		DayLow:             m.RegularMarketDayLow,
		FiftyTwoWeekHigh:   m.FiftyTwoWeekHigh,
		FiftyTwoWeekLow:    m.FiftyTwoWeekLow,
	}
	if quote.Symbol == "" {
		quote.Symbol = symbol
	}
	if m.RegularMarketTime != nil {
		ts := time.Unix(*m.RegularMarketTime, 0).UTC()
		quote.RegularMarketTime = &ts
	}

	// 前日終値から変化額・変化率を算出
	prev := m.PreviousClose
	if prev == nil {
		prev = m.ChartPreviousClose
	}
	if m.RegularMarketPrice != nil && prev != nil && *prev != 0 {
		change := *m.RegularMarketPrice - *prev
		pct := change / *prev * 100
		quote.RegularMarketChange = &change
		quote.RegularMarketChangePercent = &pct
	}
	return quote, nil
}

// GetHistory は [start, end] の日足を日付昇順で返します。終値が null のバー（休場日など）は除外します。
func (y *YahooMarket) GetHistory(ctx context.Context, symbol string, start, end time.Time) ([]entity.PricePoint, error) {
	q := url.Values{}
	q.Set("period1", strconv.FormatInt(start.Unix(), 10))
	q.Set("period2", strconv.FormatInt(end.Unix(), 10))
	q.Set("interval", "1d")
	q.Set("events", "history")

	res, err := y.chart(ctx, symbol, q)
	if err != nil {
		return nil, err
	}
	if len(res.Indicators.Quote) == 0 {
		return []entity.PricePoint{}, nil
	}

	bars := res.Indicators.Quote[0]
	points := make([]entity.PricePoint, 0, len(res.Timestamp))
	for i, ts := range res.Timestamp {
		c := at(bars.Close, i)
		if c == nil {
			continue
		}
		p := entity.PricePoint{
			Date:  time.Unix(ts, 0).UTC(),
			Close: *c,
			Open:  valueOr(at(bars.Open, i), *c),
			High:  valueOr(at(bars.High, i), *c),
			Low:   valueOr(at(bars.Low, i), *c),
		}
		if v := at(bars.Volume, i); v != nil {
			p.Volume = *v
		}
		points = append(points, p)
	}
	return points, nil
}

// Search は search API でティッカーを検索します。
func (y *YahooMarket) Search(ctx context.Context, query string) ([]entity.TickerMatch, error) {
	q := url.Values{}
	q.Set("q", query)
	q.Set("quotesCount", strconv.Itoa(y.cfg.SearchLimit))
	q.Set("newsCount", "0")

	var body dto.SearchResponse
	u := fmt.Sprintf("%s/v1/finance/search?%s", strings.TrimRight(y.cfg.SearchURL, "/"), q.Encode())
	if err := y.getJSON(ctx, u, &body); err != nil {
		return nil, err
	}

	out := make([]entity.TickerMatch, 0, len(body.Quotes))
	for _, r := range body.Quotes {
		out = append(out, entity.TickerMatch{
			Symbol:    r.Symbol,
			ShortName: r.ShortName,
			LongName:  r.LongName,
			QuoteType: r.QuoteType,
			Exchange:  r.Exchange,
			Index:     r.Index,
		})
	}
	return out, nil
}

// chart は chart API を呼び出し、最初の結果を返します。
func (y *YahooMarket) chart(ctx context.Context, symbol string, q url.Values) (dto.ChartResult, error) {
	u := fmt.Sprintf("%s/v8/finance/chart/%s?%s",
		strings.TrimRight(y.cfg.BaseURL, "/"), url.PathEscape(symbol), q.Encode())

	var body dto.ChartResponse
	if err := y.getJSON(ctx, u, &body); err != nil {
		return dto.ChartResult{}, err
	}
	if body.Chart.Error != nil {
		return dto.ChartResult{}, fmt.Errorf("yahoo api error: %s: %s", body.Chart.Error.Code, body.Chart.Error.Description)
	}
	if len(body.Chart.Result) == 0 {
		return dto.ChartResult{}, ErrNoData
	}
	return body.Chart.Result[0], nil
}

// getJSON はGETリクエストを送り、JSONレスポンスを out にデコードします。
// Yahoo はエラー時も JSON 本文を返すため、4xx では本文の error を優先して返します。
func (y *YahooMarket) getJSON(ctx context.Context, u string, out any) error {
	if y.limiter != nil {
		if err := y.limiter.Wait(ctx); err != nil {
			return err
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")

	res, err := y.client.Do(req)
	if err != nil {
		return fmt.Errorf("yahoo fetch: %w", err)
	}
	defer func() {
		if err := res.Body.Close(); err != nil {
			slog.Warn("failed to close response body", "error", err)
		}
	}()

	if res.StatusCode >= 400 {
		var body dto.ChartResponse
		if err := json.NewDecoder(res.Body).Decode(&body); err == nil && body.Chart.Error != nil {
			return fmt.Errorf("yahoo http %d: %s", res.StatusCode, body.Chart.Error.Description)
		}
		return fmt.Errorf("yahoo http %d", res.StatusCode)
	}

	if err := json.NewDecoder(res.Body).Decode(out); err != nil {
		return fmt.Errorf("yahoo decode: %w", err)
	}
	return nil
}

func at[T any](s []*T, i int) *T {
	if i < len(s) {
		return s[i]
	}
	return nil
}

func valueOr(v *float64, fallback float64) float64 {
	if v == nil {
		return fallback
	}
	return *v
}
