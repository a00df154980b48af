// Package entity defines the market data models shared by every feature.
package entity

import "time"

// PricePoint is a single daily OHLCV bar.
type PricePoint struct {
	Date   time.Time // Trading day (UTC)
	Open   float64   // Opening price
	High   float64   // Highest price of the day
	Low    float64   // Lowest price of the day
	Close  float64   // Closing price
	Volume int64     // Trading volume
}
