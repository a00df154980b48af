package entity

// TickerMatch is one result of a ticker search.
type TickerMatch struct {
	Symbol    string
	ShortName string
	LongName  string
	QuoteType string
	Exchange  string
	Index     string
}
