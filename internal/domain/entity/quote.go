package entity

import "time"

// Quote is the latest market snapshot for a symbol.
// Pointer fields are nil when the upstream source did not report them.
type Quote struct {
	Symbol                     string
	ShortName                  string
	LongName                   string
	Currency                   string
	Exchange                   string
	QuoteType                  string
	MarketState                string
	RegularMarketPrice         *float64
	RegularMarketChange        *float64
	RegularMarketChangePercent *float64
	RegularMarketTime          *time.Time
	Volume                     *int64
	AverageVolume              *int64
	DayHigh                    *float64
	DayLow                     *float64
	FiftyTwoWeekHigh           *float64
	FiftyTwoWeekLow            *float64
}
