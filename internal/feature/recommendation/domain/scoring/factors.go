package scoring

import (
	"fmt"
	"math"

	recentity "trading_insights/internal/feature/recommendation/domain/entity"
)

// Factor names, in scoring order.
const (
	FactorPriceVsMA     = "Price vs Moving Averages"
	FactorRecentTrend   = "Recent Trend"
	FactorPricePosition = "Price Position"
	FactorCross         = "Golden/Death Cross"
	FactorVolatility    = "Volatility"
)

// Maximum points per factor. They sum to 100.
const (
	maxPriceVsMA     = 30.0
	maxRecentTrend   = 25.0
	maxPricePosition = 20.0
	maxCross         = 15.0
	maxVolatility    = 10.0
)

// Indicators holds the computed values the factor rules read.
type Indicators struct {
	CurrentPrice  float64
	MA50          float64
	MA200         float64
	RecentTrend   float64
	PricePosition float64
	Volatility    float64
	GoldenCross   bool
}

// ScoreFactors applies the five weighting rules in their fixed order.
func ScoreFactors(ind Indicators) []recentity.FactorScore {
	return []recentity.FactorScore{
		scorePriceVsMA(ind),
		scoreRecentTrend(ind),
		scorePricePosition(ind),
		scoreCross(ind),
		scoreVolatility(ind),
	}
}

// scorePriceVsMA rewards a price above both averages.
// Max: 30
func scorePriceVsMA(ind Indicators) recentity.FactorScore {
	var score float64
	var explanation string
	switch {
	case ind.CurrentPrice > ind.MA50 && ind.CurrentPrice > ind.MA200:
		score = maxPriceVsMA
		explanation = "Price is above both 50-day and 200-day moving averages (bullish)"
	case ind.CurrentPrice < ind.MA50 && ind.CurrentPrice < ind.MA200:
		score = 0
		explanation = "Price is below both 50-day and 200-day moving averages (bearish)"
	default:
		score = 15
		explanation = "Price is between the moving averages (neutral)"
	}
	return recentity.FactorScore{Name: FactorPriceVsMA, Score: score, MaxScore: maxPriceVsMA, Explanation: explanation}
}

// scoreRecentTrend scores the 30-day momentum.
// Max: 25
func scoreRecentTrend(ind Indicators) recentity.FactorScore {
	trend := ind.RecentTrend
	var score float64
	var explanation string
	switch {
	case trend > 5:
		score = maxRecentTrend
		explanation = fmt.Sprintf("Strong upward trend: %.2f%% increase in last 30 days", trend)
	case trend < -5:
		score = 0
		explanation = fmt.Sprintf("Strong downward trend: %.2f%% decrease in last 30 days", math.Abs(trend))
	default:
		score = 12.5
		explanation = fmt.Sprintf("Neutral trend: %.2f%% change in last 30 days", trend)
	}
	return recentity.FactorScore{Name: FactorRecentTrend, Score: score, MaxScore: maxRecentTrend, Explanation: explanation}
}

// scorePricePosition favours prices near the bottom of the 52-week band.
// Out-of-band ratios fall into the low or high branch.
// Max: 20
func scorePricePosition(ind Indicators) recentity.FactorScore {
	pos := ind.PricePosition
	pct := pos * 100
	var score float64
	var explanation string
	switch {
	case pos < 0.3:
		score = maxPricePosition
		explanation = fmt.Sprintf("Price is near 52-week low (%.1f%% of range) - potential buying opportunity", pct)
	case pos > 0.7:
		score = 0
		explanation = fmt.Sprintf("Price is near 52-week high (%.1f%% of range) - potential selling opportunity", pct)
	default:
		score = 10
		explanation = fmt.Sprintf("Price is in middle of 52-week range (%.1f%% of range)", pct)
	}
	return recentity.FactorScore{Name: FactorPricePosition, Score: score, MaxScore: maxPricePosition, Explanation: explanation}
}

// Max: 15
func scoreCross(ind Indicators) recentity.FactorScore {
	if ind.GoldenCross {
		return recentity.FactorScore{
			Name:        FactorCross,
			Score:       maxCross,
			MaxScore:    maxCross,
			Explanation: "Golden Cross: 50-day MA is above 200-day MA (bullish signal)",
		}
	}
	return recentity.FactorScore{
		Name:        FactorCross,
		Score:       0,
		MaxScore:    maxCross,
		Explanation: "Death Cross: 50-day MA is below 200-day MA (bearish signal)",
	}
}

// scoreVolatility prefers stable prices.
// Max: 10
func scoreVolatility(ind Indicators) recentity.FactorScore {
	vol := ind.Volatility
	var score float64
	var explanation string
	switch {
	case vol < 15:
		score = maxVolatility
		explanation = fmt.Sprintf("Low volatility (%.2f%%) - stable price movement", vol)
	case vol > 30:
		score = 0
		explanation = fmt.Sprintf("High volatility (%.2f%%) - unstable price movement", vol)
	default:
		score = 5
		explanation = fmt.Sprintf("Moderate volatility (%.2f%%)", vol)
	}
	return recentity.FactorScore{Name: FactorVolatility, Score: score, MaxScore: maxVolatility, Explanation: explanation}
}
