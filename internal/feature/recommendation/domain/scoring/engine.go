package scoring

import (
	"math"

	recentity "trading_insights/internal/feature/recommendation/domain/entity"
	"trading_insights/internal/feature/recommendation/domain/indicator"
)

// Compute produces a recommendation for symbol from a quote snapshot and its
// daily price history. series may be unsorted; it is not modified.
//
// It performs no I/O and keeps no state, so concurrent calls are safe and
// identical inputs give identical results.
func Compute(symbol string, quote recentity.QuoteSnapshot, series recentity.PriceSeries) (recentity.RecommendationResult, error) {
	sorted, err := ValidateSeries(symbol, series)
	if err != nil {
		return recentity.RecommendationResult{}, err
	}

	ind := ComputeIndicators(quote, sorted)
	factors := ScoreFactors(ind)
	total, maxScore := Aggregate(factors)

	return recentity.RecommendationResult{
		Symbol:         NormalizeSymbol(symbol),
		Classification: Classify(total, maxScore),
		TotalScore:     total,
		MaxScore:       maxScore,
		Confidence:     Confidence(total, maxScore),
		Factors:        factors,
		Details: recentity.Details{
			CurrentPrice:  ind.CurrentPrice,
			MA50:          ind.MA50,
			MA200:         ind.MA200,
			RecentTrend:   ind.RecentTrend,
			PricePosition: ind.PricePosition,
			Volatility:    ind.Volatility,
			GoldenCross:   ind.GoldenCross,
		},
	}, nil
}

// ComputeIndicators derives every indicator from an ascending series.
// Quote values that are missing, zero or NaN fall back to the series: the
// last close for the price, the highest and lowest close for the band.
func ComputeIndicators(quote recentity.QuoteSnapshot, sorted recentity.PriceSeries) Indicators {
	closes := indicator.Closes(sorted)
	high, low := indicator.HighLow(closes)

	var lastClose float64
	if len(closes) > 0 {
		lastClose = closes[len(closes)-1]
	}
	current := valueOr(quote.CurrentPrice, lastClose)

	ma50 := indicator.MovingAverage(closes, indicator.ShortWindow)
	ma200 := indicator.MovingAverage(closes, indicator.LongWindow)

	return Indicators{
		CurrentPrice:  current,
		MA50:          ma50,
		MA200:         ma200,
		RecentTrend:   indicator.RecentTrend(closes),
		PricePosition: indicator.PricePosition(current, valueOr(quote.FiftyTwoWeekLow, low), valueOr(quote.FiftyTwoWeekHigh, high)),
		Volatility:    indicator.Volatility(closes),
		GoldenCross:   indicator.GoldenCross(ma50, ma200),
	}
}

func valueOr(v *float64, fallback float64) float64 {
	if v == nil || *v == 0 || math.IsNaN(*v) {
		return fallback
	}
	return *v
}
