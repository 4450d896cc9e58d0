package dto

import "time"

// StockItem represents a watchlist entry in API responses. Price is omitted
// for symbol-only deployments where no quote is stored.
type StockItem struct {
	Name      string    `json:"name"`
	Price     float64   `json:"price,omitempty"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// MessageResponse is the envelope for outcomes that carry no entry.
type MessageResponse struct {
	Msg string `json:"msg"`
}

// StockResponse is the envelope for outcomes that carry the affected entry.
type StockResponse struct {
	Msg   string    `json:"msg"`
	Stock StockItem `json:"stock"`
}
