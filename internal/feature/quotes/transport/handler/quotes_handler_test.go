package handler_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"trading_insights/internal/domain/entity"
	"trading_insights/internal/feature/quotes/transport/handler"
	"trading_insights/internal/feature/quotes/usecase"
)

// mockQuotesUsecase はQuotesUsecaseインターフェースのモック実装です。
type mockQuotesUsecase struct {
	GetQuoteFunc   func(ctx context.Context, symbol string) (entity.Quote, error)
	GetHistoryFunc func(ctx context.Context, symbol, rng string) ([]entity.PricePoint, error)
}

func (m *mockQuotesUsecase) GetQuote(ctx context.Context, symbol string) (entity.Quote, error) {
	return m.GetQuoteFunc(ctx, symbol)
}

func (m *mockQuotesUsecase) GetHistory(ctx context.Context, symbol, rng string) ([]entity.PricePoint, error) {
	return m.GetHistoryFunc(ctx, symbol, rng)
}

func newRouter(uc handler.QuotesUsecase) *gin.Engine {
	h := handler.NewQuotesHandler(uc)
	r := gin.New()
	r.GET("/stocks/:symbol/latest", h.GetLatest)
	r.GET("/stocks/:symbol/history", h.GetHistory)
	return r
}

func TestQuotesHandler_GetLatest(t *testing.T) {
	gin.SetMode(gin.TestMode)

	price, high := 190.25, 199.62
	ts := time.Date(2025, 1, 15, 21, 0, 0, 0, time.UTC)

	tests := []struct {
		name           string
		mock           func(ctx context.Context, symbol string) (entity.Quote, error)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "success: unknown fields are omitted",
			mock: func(ctx context.Context, symbol string) (entity.Quote, error) {
				return entity.Quote{
					Symbol:             "AAPL",
					ShortName:          "Apple Inc.",
					Currency:           "USD",
					RegularMarketPrice: &price,
					RegularMarketTime:  &ts,
					FiftyTwoWeekHigh:   &high,
				}, nil
			},
			expectedStatus: http.StatusOK,
			expectedBody: `{
				"symbol": "AAPL",
				"shortName": "Apple Inc.",
				"currency": "USD",
				"regularMarketPrice": 190.25,
				"regularMarketTime": "2025-01-15T21:00:00Z",
				"fiftyTwoWeekHigh": 199.62
			}`,
		},
		{
			name: "error: blank symbol",
			mock: func(ctx context.Context, symbol string) (entity.Quote, error) {
				return entity.Quote{}, usecase.ErrSymbolRequired
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"error":"Symbol parameter is required"}`,
		},
		{
			name: "error: upstream",
			mock: func(ctx context.Context, symbol string) (entity.Quote, error) {
				return entity.Quote{}, errors.New("yahoo http 500")
			},
			expectedStatus: http.StatusBadGateway,
			expectedBody:   `{"error":"Failed to fetch stock quote","message":"yahoo http 500"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newRouter(&mockQuotesUsecase{GetQuoteFunc: tt.mock})

			w := httptest.NewRecorder()
			req, _ := http.NewRequest(http.MethodGet, "/stocks/AAPL/latest", nil)
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.JSONEq(t, tt.expectedBody, w.Body.String())
		})
	}
}

func TestQuotesHandler_GetHistory(t *testing.T) {
	gin.SetMode(gin.TestMode)

	d1 := time.Date(2025, 1, 14, 14, 30, 0, 0, time.UTC)
	d2 := time.Date(2025, 1, 15, 14, 30, 0, 0, time.UTC)

	tests := []struct {
		name           string
		url            string
		mock           func(ctx context.Context, symbol, rng string) ([]entity.PricePoint, error)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "success: sorted ascending with date only",
			url:  "/stocks/aapl/history?range=1w",
			mock: func(ctx context.Context, symbol, rng string) ([]entity.PricePoint, error) {
				assert.Equal(t, "1w", rng)
				return []entity.PricePoint{
					{Date: d2, Open: 2, High: 3, Low: 1, Close: 2.5, Volume: 20},
					{Date: d1, Open: 1, High: 2, Low: 0.5, Close: 1.5, Volume: 10},
				}, nil
			},
			expectedStatus: http.StatusOK,
			expectedBody: `{"symbol":"AAPL","range":"1w","data":[
				{"date":"2025-01-14","open":1,"high":2,"low":0.5,"close":1.5,"volume":10},
				{"date":"2025-01-15","open":2,"high":3,"low":1,"close":2.5,"volume":20}
			]}`,
		},
		{
			name: "success: default range",
			url:  "/stocks/AAPL/history",
			mock: func(ctx context.Context, symbol, rng string) ([]entity.PricePoint, error) {
				assert.Equal(t, "1m", rng)
				return nil, nil
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"symbol":"AAPL","range":"1m","data":[]}`,
		},
		{
			name: "error: invalid range",
			url:  "/stocks/AAPL/history?range=10y",
			mock: func(ctx context.Context, symbol, rng string) ([]entity.PricePoint, error) {
				return nil, usecase.ErrInvalidRange
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"error":"Invalid range","message":"invalid range: must be one of 1w, 1m, 6m, 1y"}`,
		},
		{
			name: "error: upstream",
			url:  "/stocks/AAPL/history?range=1y",
			mock: func(ctx context.Context, symbol, rng string) ([]entity.PricePoint, error) {
				return nil, errors.New("twelvedata http 429")
			},
			expectedStatus: http.StatusBadGateway,
			expectedBody:   `{"error":"Failed to fetch price history","message":"twelvedata http 429"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newRouter(&mockQuotesUsecase{GetHistoryFunc: tt.mock})

			w := httptest.NewRecorder()
			req, _ := http.NewRequest(http.MethodGet, tt.url, nil)
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.JSONEq(t, tt.expectedBody, w.Body.String())
		})
	}
}
