// Package usecase implements the business logic for symbol-related operations.
package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	marketentity "trading_insights/internal/domain/entity"
	"trading_insights/internal/feature/symbols/domain/entity"
)

// DefaultSearchLimit caps the number of catalogue matches returned by Search.
const DefaultSearchLimit = 10

// ErrInvalidSymbol is returned by Import when an entry has no code or name.
var ErrInvalidSymbol = errors.New("symbol code and name are required")

// SymbolRepository abstracts the persistence layer for symbol (stock ticker) data.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type SymbolRepository interface {
	ListActive(ctx context.Context) ([]entity.Symbol, error)
	Search(ctx context.Context, query string, limit int) ([]entity.Symbol, error)
	UpsertAll(ctx context.Context, symbols []entity.Symbol) error
}

// SymbolUsecase provides business logic for symbol operations.
type SymbolUsecase struct {
	repo SymbolRepository
}

// NewSymbolUsecase creates a new SymbolUsecase with the given repository.
func NewSymbolUsecase(r SymbolRepository) *SymbolUsecase {
	return &SymbolUsecase{repo: r}
}

// ListActiveSymbols returns all active symbols ordered by sort key.
func (u *SymbolUsecase) ListActiveSymbols(ctx context.Context) ([]entity.Symbol, error) {
	return u.repo.ListActive(ctx)
}

// Search matches the catalogue by code prefix or name substring, case-insensitively,
// and returns the hits in the same shape as an upstream ticker search.
func (u *SymbolUsecase) Search(ctx context.Context, query string) ([]marketentity.TickerMatch, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return []marketentity.TickerMatch{}, nil
	}

	symbols, err := u.repo.Search(ctx, query, DefaultSearchLimit)
	if err != nil {
		return nil, err
	}

	out := make([]marketentity.TickerMatch, 0, len(symbols))
	for _, s := range symbols {
		out = append(out, marketentity.TickerMatch{
			Symbol:    s.Code,
			ShortName: s.Name,
			LongName:  s.Name,
			QuoteType: s.QuoteType,
			Exchange:  s.Market,
		})
	}
	return out, nil
}

// Import validates and upserts catalogue entries keyed by code.
// Codes are upper-cased; entries without an explicit sort key keep their input order.
func (u *SymbolUsecase) Import(ctx context.Context, symbols []entity.Symbol) (int, error) {
	normalized := make([]entity.Symbol, 0, len(symbols))
	for i, s := range symbols {
		s.Code = strings.ToUpper(strings.TrimSpace(s.Code))
		s.Name = strings.TrimSpace(s.Name)
		if s.Code == "" || s.Name == "" {
			return 0, fmt.Errorf("entry %d: %w", i, ErrInvalidSymbol)
		}
		if s.QuoteType == "" {
			s.QuoteType = "EQUITY"
		}
		if s.SortKey == 0 {
			s.SortKey = i + 1
		}
		normalized = append(normalized, s)
	}
	if len(normalized) == 0 {
		return 0, nil
	}

	if err := u.repo.UpsertAll(ctx, normalized); err != nil {
		return 0, err
	}
	return len(normalized), nil
}
