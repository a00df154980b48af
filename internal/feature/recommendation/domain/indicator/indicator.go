// Package indicator implements the technical indicators the recommendation
// engine scores. Every function is pure and operates on closing prices
// ordered from oldest to newest.
//
// Sums are accumulated sequentially from the oldest value so results are
// reproducible bit for bit across platforms.
package indicator

import (
	"math"

	"gonum.org/v1/gonum/floats"

	marketentity "trading_insights/internal/domain/entity"
)

const (
	// ShortWindow and LongWindow are the moving-average periods.
	ShortWindow = 50
	LongWindow  = 200

	// TrendWindow is the length of each half of the recent-trend comparison.
	TrendWindow = 30

	// MinSeriesLength is the longest lookback the engine needs.
	MinSeriesLength = LongWindow
)

// Closes extracts closing prices from the bars, preserving order.
func Closes(bars []marketentity.PricePoint) []float64 {
	closes := make([]float64, len(bars))
	for i, b := range bars {
		closes[i] = b.Close
	}
	return closes
}

func mean(values []float64) float64 {
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// MovingAverage returns the simple moving average of the last period closes.
// When fewer closes than period are available it returns the mean of all of
// them, and 0 for an empty slice.
func MovingAverage(closes []float64, period int) float64 {
	if len(closes) == 0 {
		return 0
	}
	if period <= 0 || len(closes) < period {
		return mean(closes)
	}
	return mean(closes[len(closes)-period:])
}

// RecentTrend returns the percentage change between the mean of the last
// TrendWindow closes and the mean of the TrendWindow closes before them.
// It returns exactly 0 when fewer than 2*TrendWindow closes are available.
func RecentTrend(closes []float64) float64 {
	n := len(closes)
	if n < 2*TrendWindow {
		return 0
	}
	last := mean(closes[n-TrendWindow:])
	prev := mean(closes[n-2*TrendWindow : n-TrendWindow])
	return (last - prev) / prev * 100
}

// PricePosition locates current within the [low, high] band.
// The result is not clamped: a price outside the band yields a ratio below 0
// or above 1. A degenerate band (high == low) yields exactly 0.5.
func PricePosition(current, low, high float64) float64 {
	if high == low {
		return 0.5
	}
	return (current - low) / (high - low)
}

// Volatility returns the population standard deviation of closes as a
// percentage of their mean. Fewer than two closes yield 0.
func Volatility(closes []float64) float64 {
	if len(closes) < 2 {
		return 0
	}
	m := mean(closes)
	sumSq := 0.0
	for _, c := range closes {
		d := c - m
		sumSq += d * d
	}
	variance := sumSq / float64(len(closes))
	return math.Sqrt(variance) / m * 100
}

// GoldenCross reports whether the short average is strictly above the long one.
func GoldenCross(shortMA, longMA float64) bool {
	return shortMA > longMA
}

// HighLow returns the highest and lowest close. Both are 0 for an empty slice.
func HighLow(closes []float64) (high, low float64) {
	if len(closes) == 0 {
		return 0, 0
	}
	return floats.Max(closes), floats.Min(closes)
}
