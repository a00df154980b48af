// Package dto defines data transfer objects for the search HTTP API.
package dto

import "trading_insights/internal/domain/entity"

// TickerMatchResponse is one ticker search hit, keyed the way the Yahoo search API names them.
type TickerMatchResponse struct {
	Symbol    string `json:"symbol"`
	ShortName string `json:"shortname"`
	LongName  string `json:"longname"`
	QuoteType string `json:"quoteType"`
	Exchange  string `json:"exchange"`
	Index     string `json:"index"`
}

// FromMatches converts domain matches into the response slice. The result is never nil.
func FromMatches(matches []entity.TickerMatch) []TickerMatchResponse {
	out := make([]TickerMatchResponse, 0, len(matches))
	for _, m := range matches {
		out = append(out, TickerMatchResponse{
			Symbol:    m.Symbol,
			ShortName: m.ShortName,
			LongName:  m.LongName,
			QuoteType: m.QuoteType,
			Exchange:  m.Exchange,
			Index:     m.Index,
		})
	}
	return out
}
