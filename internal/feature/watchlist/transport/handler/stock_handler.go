// Package handler provides the HTTP handlers for the watchlist feature.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"watchlist_backend/internal/feature/watchlist/domain"
	"watchlist_backend/internal/feature/watchlist/domain/entity"
	"watchlist_backend/internal/feature/watchlist/transport/http/dto"
	"watchlist_backend/internal/feature/watchlist/usecase"
)

// WatchlistUsecase defines the watchlist operations this handler depends on.
// Following Go convention: interfaces are defined by the consumer (handler), not the provider (usecase).
type WatchlistUsecase interface {
	List(ctx context.Context) ([]entity.Stock, error)
	Add(ctx context.Context, rawSymbol string) (*entity.Stock, bool, error)
	Remove(ctx context.Context, rawSymbol string) error
}

// StockHandler handles the HTTP requests for watchlist operations.
type StockHandler struct {
	uc WatchlistUsecase
}

// NewStockHandler creates a new StockHandler with the given usecase.
func NewStockHandler(uc WatchlistUsecase) *StockHandler {
	return &StockHandler{uc: uc}
}

// List handles GET /stocks and returns every watchlist entry as a JSON array.
func (h *StockHandler) List(c *gin.Context) {
	stocks, err := h.uc.List(c.Request.Context())
	if err != nil {
		slog.Error("list stocks failed", "error", err)
		c.JSON(http.StatusInternalServerError, dto.MessageResponse{Msg: "Server error"})
		return
	}
	out := make([]dto.StockItem, 0, len(stocks))
	for _, s := range stocks {
		out = append(out, toStockItem(s))
	}
	c.JSON(http.StatusOK, out)
}

// Add handles POST /stocks.
//   - 201 with the new entry when the symbol was added
//   - 200 with the refreshed entry when an existing symbol was updated
//   - 400 for malformed input, unknown symbols, or duplicates
//   - 502 when the quote provider is down
//   - 500 when the store is down
func (h *StockHandler) Add(c *gin.Context) {
	var req dto.AddStockReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("add stock validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, dto.MessageResponse{Msg: "Stock name must be 1-5 uppercase letters."})
		return
	}

	stock, updated, err := h.uc.Add(c.Request.Context(), req.Name)
	if err != nil {
		h.writeAddError(c, req.Name, err)
		return
	}

	if updated {
		slog.Info("stock updated", "symbol", stock.Symbol, "price", stock.Price)
		c.JSON(http.StatusOK, dto.StockResponse{Msg: "Stock updated", Stock: toStockItem(*stock)})
		return
	}
	slog.Info("stock added", "symbol", stock.Symbol, "price", stock.Price)
	c.JSON(http.StatusCreated, dto.StockResponse{Msg: "Stock added", Stock: toStockItem(*stock)})
}

// Remove handles DELETE /stocks/:name.
func (h *StockHandler) Remove(c *gin.Context) {
	name := c.Param("name")
	if err := h.uc.Remove(c.Request.Context(), name); err != nil {
		if errors.Is(err, usecase.ErrStockNotFound) {
			c.JSON(http.StatusNotFound, dto.MessageResponse{Msg: "Stock not found"})
			return
		}
		slog.Error("remove stock failed", "symbol", name, "error", err)
		c.JSON(http.StatusInternalServerError, dto.MessageResponse{Msg: "Server error"})
		return
	}
	slog.Info("stock removed", "symbol", name)
	c.JSON(http.StatusOK, dto.MessageResponse{Msg: "Stock removed"})
}

// writeAddError maps usecase failures to status codes. Store and provider
// details are logged but never echoed back to the caller.
func (h *StockHandler) writeAddError(c *gin.Context, rawName string, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidSymbol):
		c.JSON(http.StatusBadRequest, dto.MessageResponse{Msg: "Stock name must be 1-5 uppercase letters."})
	case errors.Is(err, usecase.ErrSymbolNotFound):
		c.JSON(http.StatusBadRequest, dto.MessageResponse{Msg: "Invalid stock symbol or no data found."})
	case errors.Is(err, usecase.ErrStockExists):
		c.JSON(http.StatusBadRequest, dto.MessageResponse{Msg: "Stock already in watchlist"})
	case errors.Is(err, usecase.ErrQuoteUnavailable):
		slog.Warn("quote provider unavailable", "symbol", rawName, "error", err)
		c.JSON(http.StatusBadGateway, dto.MessageResponse{Msg: "Quote provider unavailable, try again later"})
	default:
		slog.Error("add stock failed", "symbol", rawName, "error", err)
		c.JSON(http.StatusInternalServerError, dto.MessageResponse{Msg: "Server error"})
	}
}

// toStockItem converts a domain entity into its API representation.
func toStockItem(s entity.Stock) dto.StockItem {
	return dto.StockItem{Name: s.Symbol, Price: s.Price, UpdatedAt: s.UpdatedAt}
}
