package twelvedata

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"

	"watchlist_backend/internal/feature/watchlist/usecase"
	"watchlist_backend/internal/platform/externalapi/twelvedata/dto"
)

// TwelveDataQuotes fetches live prices from the Twelve Data /quote endpoint.
// The exchange suffix convention (e.g. ":NSE") is configuration, not
// business logic: callers pass bare symbols and the suffix is appended here.
type TwelveDataQuotes struct {
	cfg    Config
	client *http.Client
}

// Compile-time check that TwelveDataQuotes implements QuoteRepository.
var _ usecase.QuoteRepository = (*TwelveDataQuotes)(nil)

// NewTwelveDataQuotes creates a new TwelveDataQuotes with the given config
// and HTTP client.
func NewTwelveDataQuotes(cfg Config, client *http.Client) *TwelveDataQuotes {
	return &TwelveDataQuotes{cfg: cfg, client: client}
}

// GetQuote returns the current price for a symbol.
//
// It returns usecase.ErrQuoteNotFound when the provider responds but has no
// tradable price for the symbol, and a plain error for network failures,
// HTTP errors, or malformed bodies. It never substitutes a default price.
func (t *TwelveDataQuotes) GetQuote(ctx context.Context, symbol string) (float64, error) {
	q := url.Values{}
	q.Set("symbol", symbol+t.cfg.ExchangeSuffix)
	q.Set("apikey", t.cfg.TwelveDataAPIKey)

	u := fmt.Sprintf("%s/quote?%s", t.cfg.BaseURL, q.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return 0, err
	}

	res, err := t.client.Do(req)
	if err != nil {
		return 0, err
	}
	defer func() {
		if err := res.Body.Close(); err != nil {
			slog.Warn("failed to close response body", "error", err)
		}
	}()

	if res.StatusCode >= 400 {
		return 0, fmt.Errorf("twelvedata http %d", res.StatusCode)
	}

	var body dto.QuoteResponse
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		return 0, fmt.Errorf("decode quote response: %w", err)
	}

	if body.Status == "error" {
		// The provider answers 200 with an embedded code; 404 means the
		// symbol is unknown, everything else is a provider-side failure.
		if body.Code == http.StatusNotFound {
			return 0, usecase.ErrQuoteNotFound
		}
		return 0, fmt.Errorf("twelvedata: %s", body.Message)
	}

	if body.Close == "" {
		return 0, usecase.ErrQuoteNotFound
	}

	price, err := strconv.ParseFloat(body.Close, 64)
	if err != nil {
		return 0, fmt.Errorf("parse close %q: %w", body.Close, err)
	}
	if price < 0 {
		return 0, fmt.Errorf("negative close %q", body.Close)
	}
	return price, nil
}
