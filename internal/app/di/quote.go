// Package di provides dependency injection factories for creating application components.
package di

import (
	"watchlist_backend/internal/platform/externalapi/twelvedata"
	infrahttp "watchlist_backend/internal/platform/http"
)

// NewQuotes creates a fully configured TwelveDataQuotes with HTTP client.
func NewQuotes() *twelvedata.TwelveDataQuotes {
	cfg := twelvedata.LoadConfig()
	httpClient := infrahttp.NewHTTPClient(cfg.Timeout)
	return twelvedata.NewTwelveDataQuotes(cfg, httpClient)
}
