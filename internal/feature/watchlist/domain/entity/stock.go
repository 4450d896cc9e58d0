// Package entity defines the domain models for the watchlist feature.
package entity

import "time"

// Stock represents a single watchlist entry keyed by its ticker symbol.
// Symbol is always stored normalized (trimmed, uppercased) and unique.
// Price holds the most recent successful quote when enrichment is enabled;
// UpdatedAt tracks the last price refresh (or creation time).
type Stock struct {
	ID        uint      `gorm:"primaryKey"`
	Symbol    string    `gorm:"size:5;not null;uniqueIndex"`
	Price     float64   `gorm:"not null;default:0"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}
