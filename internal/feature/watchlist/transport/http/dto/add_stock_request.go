// Package dto defines data transfer objects for the watchlist HTTP API.
package dto

// AddStockReq represents the request body for POST /stocks.
// Binding fails closed: a missing or non-string name is rejected before any
// business logic runs. Format validation (1-5 uppercase letters) stays in
// the domain so the rule lives in one place.
type AddStockReq struct {
	Name string `json:"name" binding:"required"`
}
