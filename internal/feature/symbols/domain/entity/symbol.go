// Package entity defines the domain models for the symbols feature.
package entity

import "time"

// Symbol represents a stock ticker symbol in the local catalogue.
// It contains information about a tradable security including its code,
// name, market, instrument type and display ordering.
type Symbol struct {
	ID        uint      `gorm:"primaryKey"`
	Code      string    `gorm:"size:20;not null;uniqueIndex"`
	Name      string    `gorm:"size:255;not null"`
	Market    string    `gorm:"size:100;not null"`
	QuoteType string    `gorm:"size:32;not null;default:'EQUITY'"`
	IsActive  bool      `gorm:"not null"`
	SortKey   int       `gorm:"not null;default:0"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}
