package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	marketentity "trading_insights/internal/domain/entity"
	"trading_insights/internal/feature/symbols/domain/entity"
	"trading_insights/internal/feature/symbols/usecase"
)

// mockSymbolRepository はSymbolRepositoryインターフェースのモック実装です。
type mockSymbolRepository struct {
	ListActiveFunc func(ctx context.Context) ([]entity.Symbol, error)
	SearchFunc     func(ctx context.Context, query string, limit int) ([]entity.Symbol, error)
	UpsertAllFunc  func(ctx context.Context, symbols []entity.Symbol) error

	searchCalls int
	upserted    []entity.Symbol
}

// ListActive はモックのListActive関数を呼び出します。
func (m *mockSymbolRepository) ListActive(ctx context.Context) ([]entity.Symbol, error) {
	if m.ListActiveFunc != nil {
		return m.ListActiveFunc(ctx)
	}
	return nil, nil
}

// Search はモックのSearch関数を呼び出します。
func (m *mockSymbolRepository) Search(ctx context.Context, query string, limit int) ([]entity.Symbol, error) {
	m.searchCalls++
	if m.SearchFunc != nil {
		return m.SearchFunc(ctx, query, limit)
	}
	return nil, nil
}

// UpsertAll は受け取った銘柄を記録し、モックのUpsertAll関数を呼び出します。
func (m *mockSymbolRepository) UpsertAll(ctx context.Context, symbols []entity.Symbol) error {
	m.upserted = symbols
	if m.UpsertAllFunc != nil {
		return m.UpsertAllFunc(ctx, symbols)
	}
	return nil
}

// TestNewSymbolUsecase はNewSymbolUsecaseコンストラクタが正しくインスタンスを生成することを検証します。
func TestNewSymbolUsecase(t *testing.T) {
	t.Parallel()

	mockRepo := &mockSymbolRepository{}
	uc := usecase.NewSymbolUsecase(mockRepo)

	assert.NotNil(t, uc, "usecase should not be nil")
}

// TestSymbolUsecase_ListActiveSymbols はListActiveSymbolsメソッドの各種シナリオをテーブル駆動テストで検証します。
func TestSymbolUsecase_ListActiveSymbols(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name            string
		mockListActive  func(ctx context.Context) ([]entity.Symbol, error)
		expectedSymbols []entity.Symbol
		wantErr         bool
		errMsg          string
	}{
		{
			name: "success: returns list of active symbols",
			mockListActive: func(ctx context.Context) ([]entity.Symbol, error) {
				return []entity.Symbol{
					{ID: 1, Code: "7203.T", Name: "Toyota Motor", Market: "TSE", IsActive: true, SortKey: 1},
					{ID: 2, Code: "6758.T", Name: "Sony Group", Market: "TSE", IsActive: true, SortKey: 2},
				}, nil
			},
			expectedSymbols: []entity.Symbol{
				{ID: 1, Code: "7203.T", Name: "Toyota Motor", Market: "TSE", IsActive: true, SortKey: 1},
				{ID: 2, Code: "6758.T", Name: "Sony Group", Market: "TSE", IsActive: true, SortKey: 2},
			},
			wantErr: false,
		},
		{
			name: "success: returns empty list when no active symbols",
			mockListActive: func(ctx context.Context) ([]entity.Symbol, error) {
				return []entity.Symbol{}, nil
			},
			expectedSymbols: []entity.Symbol{},
			wantErr:         false,
		},
		{
			name: "success: returns nil when repository returns nil",
			mockListActive: func(ctx context.Context) ([]entity.Symbol, error) {
				return nil, nil
			},
			expectedSymbols: nil,
			wantErr:         false,
		},
		{
			name: "failure: repository returns error",
			mockListActive: func(ctx context.Context) ([]entity.Symbol, error) {
				return nil, errors.New("database connection failed")
			},
			expectedSymbols: nil,
			wantErr:         true,
			errMsg:          "database connection failed",
		},
		{
			name: "success: returns single symbol",
			mockListActive: func(ctx context.Context) ([]entity.Symbol, error) {
				return []entity.Symbol{
					{ID: 1, Code: "9984.T", Name: "SoftBank Group", Market: "TSE", IsActive: true, SortKey: 1},
				}, nil
			},
			expectedSymbols: []entity.Symbol{
				{ID: 1, Code: "9984.T", Name: "SoftBank Group", Market: "TSE", IsActive: true, SortKey: 1},
			},
			wantErr: false,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			mockRepo := &mockSymbolRepository{
				ListActiveFunc: tt.mockListActive,
			}
			uc := usecase.NewSymbolUsecase(mockRepo)

			symbols, err := uc.ListActiveSymbols(context.Background())

			if tt.wantErr {
				assert.Error(t, err)
				if tt.errMsg != "" {
					assert.EqualError(t, err, tt.errMsg)
				}
				assert.Nil(t, symbols)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedSymbols, symbols)
			}
		})
	}
}

// TestSymbolUsecase_ListActiveSymbols_ContextCancellation はコンテキストがキャンセルされた場合にエラーが返されることを検証します。
func TestSymbolUsecase_ListActiveSymbols_ContextCancellation(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel() // Cancel context immediately

	mockRepo := &mockSymbolRepository{
		ListActiveFunc: func(ctx context.Context) ([]entity.Symbol, error) {
			return nil, ctx.Err()
		},
	}
	uc := usecase.NewSymbolUsecase(mockRepo)

	symbols, err := uc.ListActiveSymbols(ctx)

	assert.Error(t, err)
	assert.Nil(t, symbols)
	assert.ErrorIs(t, err, context.Canceled)
}

// TestSymbolUsecase_Search はカタログ検索結果がTickerMatchへ変換されることを検証します。
func TestSymbolUsecase_Search(t *testing.T) {
	t.Parallel()

	var gotQuery string
	var gotLimit int
	mockRepo := &mockSymbolRepository{
		SearchFunc: func(ctx context.Context, query string, limit int) ([]entity.Symbol, error) {
			gotQuery, gotLimit = query, limit
			return []entity.Symbol{
				{Code: "AAPL", Name: "Apple Inc.", Market: "NASDAQ", QuoteType: "EQUITY"},
			}, nil
		},
	}
	uc := usecase.NewSymbolUsecase(mockRepo)

	matches, err := uc.Search(context.Background(), "  app ")

	require.NoError(t, err)
	assert.Equal(t, "app", gotQuery)
	assert.Equal(t, usecase.DefaultSearchLimit, gotLimit)
	assert.Equal(t, []marketentity.TickerMatch{
		{Symbol: "AAPL", ShortName: "Apple Inc.", LongName: "Apple Inc.", QuoteType: "EQUITY", Exchange: "NASDAQ"},
	}, matches)
}

// TestSymbolUsecase_Search_BlankQuery は空クエリでリポジトリを呼ばないことを検証します。
func TestSymbolUsecase_Search_BlankQuery(t *testing.T) {
	t.Parallel()

	mockRepo := &mockSymbolRepository{}
	uc := usecase.NewSymbolUsecase(mockRepo)

	matches, err := uc.Search(context.Background(), "   ")

	require.NoError(t, err)
	assert.Empty(t, matches)
	assert.NotNil(t, matches)
	assert.Equal(t, 0, mockRepo.searchCalls)
}

// TestSymbolUsecase_Search_Error はリポジトリのエラーがそのまま返されることを検証します。
func TestSymbolUsecase_Search_Error(t *testing.T) {
	t.Parallel()

	dbErr := errors.New("database connection failed")
	mockRepo := &mockSymbolRepository{
		SearchFunc: func(ctx context.Context, query string, limit int) ([]entity.Symbol, error) {
			return nil, dbErr
		},
	}
	uc := usecase.NewSymbolUsecase(mockRepo)

	matches, err := uc.Search(context.Background(), "AAPL")

	assert.ErrorIs(t, err, dbErr)
	assert.Nil(t, matches)
}

// TestSymbolUsecase_Import はインポート時の正規化とバリデーションを検証します。
func TestSymbolUsecase_Import(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		input        []entity.Symbol
		upsertErr    error
		wantCount    int
		wantErr      error
		wantUpserted []entity.Symbol
	}{
		{
			name: "success: normalizes codes and fills defaults",
			input: []entity.Symbol{
				{Code: " aapl ", Name: "Apple Inc.", Market: "NASDAQ", IsActive: true},
				{Code: "spy", Name: "SPDR S&P 500 ETF Trust", Market: "NYSEArca", QuoteType: "ETF", IsActive: true, SortKey: 10},
			},
			wantCount: 2,
			wantUpserted: []entity.Symbol{
				{Code: "AAPL", Name: "Apple Inc.", Market: "NASDAQ", QuoteType: "EQUITY", IsActive: true, SortKey: 1},
				{Code: "SPY", Name: "SPDR S&P 500 ETF Trust", Market: "NYSEArca", QuoteType: "ETF", IsActive: true, SortKey: 10},
			},
		},
		{
			name:      "success: empty input is a no-op",
			input:     nil,
			wantCount: 0,
		},
		{
			name: "error: entry without code",
			input: []entity.Symbol{
				{Code: "AAPL", Name: "Apple Inc."},
				{Code: " ", Name: "Nameless"},
			},
			wantErr: usecase.ErrInvalidSymbol,
		},
		{
			name: "error: repository failure",
			input: []entity.Symbol{
				{Code: "AAPL", Name: "Apple Inc."},
			},
			upsertErr: errors.New("disk full"),
			wantErr:   errors.New("disk full"),
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			mockRepo := &mockSymbolRepository{
				UpsertAllFunc: func(ctx context.Context, symbols []entity.Symbol) error {
					return tt.upsertErr
				},
			}
			uc := usecase.NewSymbolUsecase(mockRepo)

			n, err := uc.Import(context.Background(), tt.input)

			if tt.wantErr != nil {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr.Error())
				assert.Equal(t, 0, n)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantCount, n)
			assert.Equal(t, tt.wantUpserted, mockRepo.upserted)
		})
	}
}
