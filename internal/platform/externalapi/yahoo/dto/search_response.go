package dto

// SearchResponse represents the JSON response from the v1 search endpoint.
type SearchResponse struct {
	Quotes []struct {
		Symbol    string `json:"symbol"`
		ShortName string `json:"shortname"`
		LongName  string `json:"longname"`
		QuoteType string `json:"quoteType"`
		Exchange  string `json:"exchange"`
		Index     string `json:"index"`
	} `json:"quotes"`
}
