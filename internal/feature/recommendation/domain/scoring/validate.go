// Package scoring turns a validated price series and a quote snapshot into a
// classified recommendation.
package scoring

import (
	"fmt"
	"slices"
	"strings"

	"trading_insights/internal/domain/entity"
	"trading_insights/internal/feature/recommendation/domain"
	recentity "trading_insights/internal/feature/recommendation/domain/entity"
	"trading_insights/internal/feature/recommendation/domain/indicator"
)

// NormalizeSymbol trims and upper-cases a ticker symbol.
func NormalizeSymbol(symbol string) string {
	return strings.ToUpper(strings.TrimSpace(symbol))
}

// ValidateSeries checks the symbol and returns a copy of series sorted by
// ascending date. The input slice is never modified.
//
// A blank symbol yields domain.ErrInvalidInput; fewer than
// indicator.MinSeriesLength points yield domain.ErrInsufficientData.
// Gaps and duplicate dates are accepted as-is.
func ValidateSeries(symbol string, series recentity.PriceSeries) (recentity.PriceSeries, error) {
	if NormalizeSymbol(symbol) == "" {
		return nil, domain.ErrInvalidInput
	}
	if len(series) < indicator.MinSeriesLength {
		return nil, fmt.Errorf("%w: got %d points, need %d",
			domain.ErrInsufficientData, len(series), indicator.MinSeriesLength)
	}

	sorted := slices.Clone(series)
	slices.SortStableFunc(sorted, func(a, b entity.PricePoint) int {
		return a.Date.Compare(b.Date)
	})
	return sorted, nil
}
