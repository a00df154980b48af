package twelvedata

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"trading_insights/internal/domain/entity"
	"trading_insights/internal/feature/recommendation/usecase"
	"trading_insights/internal/platform/externalapi/twelvedata/dto"
)

// maxOutputSize は time_series エンドポイントが一度に返せる最大件数です。
const maxOutputSize = 5000

// Limiter は外部API呼び出しの前に待機するレートリミッターです。
type Limiter interface {
	Wait(ctx context.Context) error
}

// TwelveDataMarket はTwelve Data外部APIから株価データを取得するMarketDataProvider実装です。
type TwelveDataMarket struct {
	cfg     Config
	client  *http.Client
	limiter Limiter
}

// TwelveDataMarketがMarketDataProviderを実装していることをコンパイル時に検証します。
var _ usecase.MarketDataProvider = (*TwelveDataMarket)(nil)

// NewTwelveDataMarket は指定された設定とHTTPクライアントでTwelveDataMarketの新しいインスタンスを生成します。
// limiter が nil の場合はレート制限を行いません。
func NewTwelveDataMarket(cfg Config, client *http.Client, limiter Limiter) *TwelveDataMarket {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	return &TwelveDataMarket{cfg: cfg, client: client, limiter: limiter}
}

// GetQuote は /quote エンドポイントから最新の相場情報を取得します。
func (t *TwelveDataMarket) GetQuote(ctx context.Context, symbol string) (entity.Quote, error) {
	q := url.Values{}
	q.Set("symbol", symbol)
	q.Set("apikey", t.cfg.APIKey)

	var body dto.QuoteResponse
	if err := t.get(ctx, "quote", q, &body); err != nil {
		return entity.Quote{}, err
	}
	if body.Status == "error" {
		return entity.Quote{}, fmt.Errorf("twelvedata: %s", body.Message)
	}

	quote := entity.Quote{
		Symbol:                     body.Symbol,
		ShortName:                  body.Name,
		LongName:                   body.Name,
		Currency:                   body.Currency,
		Exchange:                   body.Exchange,
		RegularMarketPrice:         optFloat(body.Close),
		RegularMarketChange:        optFloat(body.Change),
		RegularMarketChangePercent: optFloat(body.PercentChange),
		Volume:                     optInt(body.Volume),
		AverageVolume:              optInt(body.AverageVolume),
		DayHigh:                    optFloat(body.High),
		DayLow:                     optFloat(body.Low),
		FiftyTwoWeekHigh:           optFloat(body.FiftyTwoWeek.High),
		FiftyTwoWeekLow:            optFloat(body.FiftyTwoWeek.Low),
		MarketState:                "CLOSED",
	}
	if quote.Symbol == "" {
		quote.Symbol = symbol
	}
	if body.IsMarketOpen {
		quote.MarketState = "REGULAR"
	}
	if body.Timestamp > 0 {
		ts := time.Unix(body.Timestamp, 0).UTC()
		quote.RegularMarketTime = &ts
	}
	return quote, nil
}

// GetHistory は /time_series エンドポイントから [start, end] の日足を日付昇順で取得します。
func (t *TwelveDataMarket) GetHistory(ctx context.Context, symbol string, start, end time.Time) ([]entity.PricePoint, error) {
	q := url.Values{}
	// クエリパラメータを追加
	q.Set("symbol", symbol)
	q.Set("interval", "1day")
	q.Set("start_date", start.UTC().Format(time.DateOnly))
	q.Set("end_date", end.UTC().Format(time.DateOnly))
	q.Set("order", "ASC")
	q.Set("outputsize", strconv.Itoa(maxOutputSize))
	q.Set("apikey", t.cfg.APIKey)

	var body dto.TimeSeriesResponse
	if err := t.get(ctx, "time_series", q, &body); err != nil {
		return nil, err
	}
	if body.Status == "error" {
		return nil, fmt.Errorf("twelvedata: %s", body.Message)
	}

	points := make([]entity.PricePoint, 0, len(body.Values))
	for _, v := range body.Values {
		// タイムスタンプをパース
		tm, err := time.Parse(time.DateTime, v.Datetime)
		if err != nil {
			tm, err = time.Parse(time.DateOnly, v.Datetime)
			if err != nil {
				return nil, fmt.Errorf("parse time %q: %w", v.Datetime, err)
			}
		}
		o, err := strconv.ParseFloat(v.Open, 64)
		if err != nil {
			return nil, fmt.Errorf("parse open %q: %w", v.Open, err)
		}
		h, err := strconv.ParseFloat(v.High, 64)
		if err != nil {
			return nil, fmt.Errorf("parse high %q: %w", v.High, err)
		}
		l, err := strconv.ParseFloat(v.Low, 64)
		if err != nil {
			return nil, fmt.Errorf("parse low %q: %w", v.Low, err)
		}
		c, err := strconv.ParseFloat(v.Close, 64)
		if err != nil {
			return nil, fmt.Errorf("parse close %q: %w", v.Close, err)
		}
		// 指数などは出来高を返さないため、空文字は 0 として扱う
		var vol int64
		if v.Volume != "" {
			vol, err = strconv.ParseInt(v.Volume, 10, 64)
			if err != nil {
				return nil, fmt.Errorf("parse volume %q: %w", v.Volume, err)
			}
		}

		points = append(points, entity.PricePoint{
			Date:   tm,
			Open:   o,
			High:   h,
			Low:    l,
			Close:  c,
			Volume: vol,
		})
	}
	return points, nil
}

// get はエンドポイントにGETリクエストを送り、JSONレスポンスを out にデコードします。
func (t *TwelveDataMarket) get(ctx context.Context, endpoint string, q url.Values, out any) error {
	if t.limiter != nil {
		if err := t.limiter.Wait(ctx); err != nil {
			return err
		}
	}

	u := fmt.Sprintf("%s/%s?%s", strings.TrimRight(t.cfg.BaseURL, "/"), endpoint, q.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return err
	}

	res, err := t.client.Do(req)
	if err != nil {
		return err
	}
	defer func() {
		if err := res.Body.Close(); err != nil {
			slog.Warn("failed to close response body", "error", err)
		}
	}()

	if res.StatusCode >= 400 {
		return fmt.Errorf("twelvedata http %d", res.StatusCode)
	}

	// JSONレスポンスをDTOにデコード
	return json.NewDecoder(res.Body).Decode(out)
}

func optFloat(s string) *float64 {
	if s == "" {
		return nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return &f
}

func optInt(s string) *int64 {
	if s == "" {
		return nil
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return nil
	}
	return &n
}
