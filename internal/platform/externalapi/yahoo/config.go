// Package yahoo provides a client for the public Yahoo Finance chart and search APIs.
package yahoo

import "time"

const (
	// DefaultBaseURL serves the v8 chart endpoint.
	DefaultBaseURL = "https://query1.finance.yahoo.com"
	// DefaultSearchURL serves the v1 search endpoint.
	DefaultSearchURL = "https://query2.finance.yahoo.com"

	defaultSearchLimit = 10
)

// Config holds configuration for the Yahoo Finance client.
type Config struct {
	BaseURL     string        // Base URL for chart requests
	SearchURL   string        // Base URL for search requests
	SearchLimit int           // Maximum number of quotes returned by Search
	Timeout     time.Duration // HTTP request timeout
}
