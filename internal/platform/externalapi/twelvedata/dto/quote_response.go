// Package dto defines the wire types of the Twelve Data API.
package dto

// QuoteResponse mirrors the /quote endpoint payload. Numeric fields arrive
// as strings. On failure the endpoint answers 200 with status "error" and a
// provider-specific code (404 means the symbol has no tradable price).
type QuoteResponse struct {
	Symbol  string `json:"symbol"`
	Close   string `json:"close"`
	Status  string `json:"status"`
	Code    int    `json:"code"`
	Message string `json:"message"`
}
