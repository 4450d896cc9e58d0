package usecase

import (
	"context"
	"errors"
	"fmt"

	"watchlist_backend/internal/feature/watchlist/domain"
	"watchlist_backend/internal/feature/watchlist/domain/entity"
)

// StockRepository abstracts the persistence layer for watchlist entries.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type StockRepository interface {
	// ListAll returns every watchlist entry in a deterministic order.
	ListAll(ctx context.Context) ([]entity.Stock, error)

	// FindBySymbol returns the entry for a symbol, or nil when absent.
	FindBySymbol(ctx context.Context, symbol string) (*entity.Stock, error)

	// Create inserts a new entry. Returns ErrDuplicateSymbol when the
	// uniqueness constraint on symbol is violated.
	Create(ctx context.Context, stock *entity.Stock) error

	// Upsert inserts the entry or fully replaces the existing row for the
	// same symbol. Atomic with respect to the uniqueness constraint.
	Upsert(ctx context.Context, stock *entity.Stock) error

	// DeleteBySymbol removes the entry for a symbol and reports whether a
	// row was actually removed.
	DeleteBySymbol(ctx context.Context, symbol string) (bool, error)
}

// QuoteRepository abstracts the external market-data provider.
// Implementations return ErrQuoteNotFound when the provider responds but has
// no tradable price; any other error means the provider itself failed.
type QuoteRepository interface {
	GetQuote(ctx context.Context, symbol string) (float64, error)
}

// WatchlistUsecase provides the list/add/remove business logic. The add
// policy for an existing symbol depends on the enrichment capability chosen
// at construction time: enriched deployments refresh price and updatedAt in
// place, simple deployments reject the duplicate.
type WatchlistUsecase struct {
	stocks StockRepository
	quotes QuoteRepository
	enrich bool
}

// NewWatchlistUsecase creates the symbol-only variant: entries carry no
// price and re-adding an existing symbol fails with ErrStockExists.
func NewWatchlistUsecase(stocks StockRepository) *WatchlistUsecase {
	return &WatchlistUsecase{stocks: stocks}
}

// NewEnrichedWatchlistUsecase creates the price-enriched variant: every add
// fetches a live quote and re-adding an existing symbol refreshes it.
func NewEnrichedWatchlistUsecase(stocks StockRepository, quotes QuoteRepository) *WatchlistUsecase {
	return &WatchlistUsecase{stocks: stocks, quotes: quotes, enrich: true}
}

// List returns all watchlist entries.
func (u *WatchlistUsecase) List(ctx context.Context) ([]entity.Stock, error) {
	return u.stocks.ListAll(ctx)
}

// Add validates a raw ticker string and inserts or refreshes its watchlist
// entry. It returns the stored entry and whether an existing entry was
// updated (enriched variant only).
//
// Failure modes: domain.ErrInvalidSymbol for malformed input,
// ErrSymbolNotFound when the provider knows no price for the symbol,
// ErrQuoteUnavailable when the provider is unreachable, ErrStockExists for a
// duplicate add in the simple variant (or a lost insert race).
func (u *WatchlistUsecase) Add(ctx context.Context, rawSymbol string) (*entity.Stock, bool, error) {
	symbol, err := domain.NormalizeSymbol(rawSymbol)
	if err != nil {
		return nil, false, err
	}

	var price float64
	if u.enrich {
		price, err = u.quotes.GetQuote(ctx, symbol)
		if err != nil {
			if errors.Is(err, ErrQuoteNotFound) {
				return nil, false, ErrSymbolNotFound
			}
			return nil, false, fmt.Errorf("%w: %v", ErrQuoteUnavailable, err)
		}
	}

	existing, err := u.stocks.FindBySymbol(ctx, symbol)
	if err != nil {
		return nil, false, err
	}

	if !u.enrich {
		if existing != nil {
			return nil, false, ErrStockExists
		}
		stock := &entity.Stock{Symbol: symbol}
		if err := u.stocks.Create(ctx, stock); err != nil {
			// Two concurrent adds of the same new symbol: the loser of the
			// insert race gets the same outcome as a plain duplicate.
			if errors.Is(err, ErrDuplicateSymbol) {
				return nil, false, ErrStockExists
			}
			return nil, false, err
		}
		return stock, false, nil
	}

	// Upsert keys on the symbol, so the surviving row keeps its identity
	// whether this turns out to be an insert or an in-place refresh.
	stock := &entity.Stock{Symbol: symbol, Price: price}
	if err := u.stocks.Upsert(ctx, stock); err != nil {
		return nil, false, err
	}
	return stock, existing != nil, nil
}

// Remove deletes the entry for a symbol. The key is only trimmed and
// uppercased; format validation is deliberately skipped so any stored row
// can be removed. Returns ErrStockNotFound when nothing was deleted.
func (u *WatchlistUsecase) Remove(ctx context.Context, rawSymbol string) error {
	symbol := domain.NormalizeDeletionKey(rawSymbol)
	removed, err := u.stocks.DeleteBySymbol(ctx, symbol)
	if err != nil {
		return err
	}
	if !removed {
		return ErrStockNotFound
	}
	return nil
}
