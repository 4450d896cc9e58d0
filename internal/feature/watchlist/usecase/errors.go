// Package usecase implements the business logic for watchlist operations.
package usecase

import "errors"

var (
	// ErrSymbolNotFound is returned when a validated symbol has no tradable
	// price at the quote provider (bad symbol, not an outage).
	ErrSymbolNotFound = errors.New("invalid stock symbol or no data found")

	// ErrStockExists is returned when adding a symbol that is already on the
	// watchlist while enrichment is disabled, or when a concurrent add wins
	// the insert race.
	ErrStockExists = errors.New("stock already in watchlist")

	// ErrStockNotFound is returned when removing a symbol that is not on the
	// watchlist.
	ErrStockNotFound = errors.New("stock not found")

	// ErrQuoteUnavailable is returned when the quote provider cannot be
	// reached or responds malformed. Safe to retry later.
	ErrQuoteUnavailable = errors.New("quote provider unavailable")

	// ErrQuoteNotFound is the sentinel a QuoteRepository implementation
	// returns when the provider responds but reports no tradable price.
	ErrQuoteNotFound = errors.New("no tradable price for symbol")

	// ErrDuplicateSymbol is the sentinel a StockRepository implementation
	// returns when an insert violates the symbol uniqueness constraint.
	// Only reachable under a race between two adds of the same new symbol.
	ErrDuplicateSymbol = errors.New("duplicate symbol")
)
