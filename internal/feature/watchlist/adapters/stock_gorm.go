// Package adapters provides the repository implementations for the watchlist feature.
package adapters

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"watchlist_backend/internal/feature/watchlist/domain/entity"
	"watchlist_backend/internal/feature/watchlist/usecase"
)

// stockGorm is the gorm implementation of the StockRepository interface.
// The uniqueness constraint on symbol lives in the database (unique index),
// so concurrent inserts of the same new symbol cannot both succeed.
type stockGorm struct {
	db *gorm.DB
}

var _ usecase.StockRepository = (*stockGorm)(nil)

// NewStockRepository creates a new stockGorm repository with the given DB
// connection. The connection must be opened with TranslateError enabled so
// unique-index violations surface as gorm.ErrDuplicatedKey.
func NewStockRepository(db *gorm.DB) *stockGorm {
	return &stockGorm{db: db}
}

// ListAll returns every watchlist entry ordered by symbol.
func (r *stockGorm) ListAll(ctx context.Context) ([]entity.Stock, error) {
	var stocks []entity.Stock
	if err := r.db.WithContext(ctx).
		Order("symbol ASC").
		Find(&stocks).Error; err != nil {
		return nil, fmt.Errorf("list stocks: %w", err)
	}
	return stocks, nil
}

// FindBySymbol returns the entry for a symbol, or nil when no row exists.
func (r *stockGorm) FindBySymbol(ctx context.Context, symbol string) (*entity.Stock, error) {
	var stock entity.Stock
	err := r.db.WithContext(ctx).
		Where("symbol = ?", symbol).
		First(&stock).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find stock %q: %w", symbol, err)
	}
	return &stock, nil
}

// Create inserts a new entry. A unique-index violation on symbol is
// translated to usecase.ErrDuplicateSymbol.
func (r *stockGorm) Create(ctx context.Context, stock *entity.Stock) error {
	if err := r.db.WithContext(ctx).Create(stock).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return usecase.ErrDuplicateSymbol
		}
		return fmt.Errorf("create stock %q: %w", stock.Symbol, err)
	}
	return nil
}

// Upsert inserts the entry or replaces price and updated_at of the existing
// row for the same symbol. The ON CONFLICT clause keys on the symbol index,
// which keeps the insert race atomic. The surviving row is reloaded so the
// caller sees its identity and refreshed timestamp.
func (r *stockGorm) Upsert(ctx context.Context, stock *entity.Stock) error {
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "symbol"}},
			DoUpdates: clause.AssignmentColumns([]string{"price", "updated_at"}),
		}).
		Create(stock).Error
	if err != nil {
		return fmt.Errorf("upsert stock %q: %w", stock.Symbol, err)
	}
	if err := r.db.WithContext(ctx).
		Where("symbol = ?", stock.Symbol).
		First(stock).Error; err != nil {
		return fmt.Errorf("reload stock %q: %w", stock.Symbol, err)
	}
	return nil
}

// DeleteBySymbol removes the entry for a symbol and reports whether a row
// was actually deleted.
func (r *stockGorm) DeleteBySymbol(ctx context.Context, symbol string) (bool, error) {
	res := r.db.WithContext(ctx).
		Where("symbol = ?", symbol).
		Delete(&entity.Stock{})
	if res.Error != nil {
		return false, fmt.Errorf("delete stock %q: %w", symbol, res.Error)
	}
	return res.RowsAffected > 0, nil
}
