// Package domain defines domain-level errors for the recommendation feature.
package domain

import "errors"

// Errors returned before any indicator is computed.
// Upstream (market data) errors are never wrapped with these; callers receive them as-is.
var (
	// ErrInvalidInput indicates that the symbol is empty or blank after trimming.
	ErrInvalidInput = errors.New("symbol is required")

	// ErrInsufficientData indicates that the price series is shorter than the longest lookback.
	ErrInsufficientData = errors.New("insufficient historical data for recommendation")
)
