// Package entity defines the value types produced and consumed by the recommendation engine.
package entity

import (
	marketentity "trading_insights/internal/domain/entity"
)

// PriceSeries is a sequence of daily bars ordered by ascending date.
type PriceSeries []marketentity.PricePoint

// QuoteSnapshot is the subset of a quote the engine reads.
// A nil or zero field is treated as missing and derived from the series instead.
type QuoteSnapshot struct {
	Symbol           string
	CurrentPrice     *float64
	FiftyTwoWeekHigh *float64
	FiftyTwoWeekLow  *float64
}

// Classification is the categorical trading signal.
type Classification string

const (
	Buy  Classification = "BUY"
	Sell Classification = "SELL"
	Hold Classification = "HOLD"
)

// FactorScore is the outcome of one weighting rule.
type FactorScore struct {
	Name        string
	Score       float64
	MaxScore    float64
	Explanation string
}

// Details exposes the raw indicators behind the factor scores.
type Details struct {
	CurrentPrice  float64
	MA50          float64
	MA200         float64
	RecentTrend   float64 // percent change, last 30 vs previous 30 observations
	PricePosition float64 // position within the 52-week band, nominally 0..1
	Volatility    float64 // standard deviation as a percentage of the mean
	GoldenCross   bool
}

// RecommendationResult is the engine's output for one symbol.
type RecommendationResult struct {
	Symbol         string
	Classification Classification
	TotalScore     float64
	MaxScore       float64
	Confidence     float64
	Factors        []FactorScore
	Details        Details
}
