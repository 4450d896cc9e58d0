// Package client implements the watchlist client: an API client over the
// HTTP surface and the view state it feeds. The view is a thin reflection of
// the service state, not a source of truth.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

// Stock is a watchlist entry as the API exposes it.
type Stock struct {
	Name      string    `json:"name"`
	Price     float64   `json:"price,omitempty"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// APIError is a non-2xx outcome carrying the server's msg field.
type APIError struct {
	Status int
	Msg    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api: %d %s", e.Status, e.Msg)
}

// Client calls the watchlist HTTP API.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient creates a Client for the given base URL. The HTTP client must
// carry a timeout; pass the one from platform/http.
func NewClient(baseURL string, httpClient *http.Client) *Client {
	return &Client{baseURL: baseURL, http: httpClient}
}

// List fetches every watchlist entry.
func (c *Client) List(ctx context.Context) ([]Stock, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/stocks", nil)
	if err != nil {
		return nil, err
	}
	res, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return nil, decodeAPIError(res)
	}
	var stocks []Stock
	if err := json.NewDecoder(res.Body).Decode(&stocks); err != nil {
		return nil, fmt.Errorf("decode list response: %w", err)
	}
	return stocks, nil
}

// Add submits a symbol and returns the stored entry plus whether an
// existing entry was updated (200) rather than created (201).
func (c *Client) Add(ctx context.Context, name string) (*Stock, bool, error) {
	payload, err := json.Marshal(map[string]string{"name": name})
	if err != nil {
		return nil, false, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/stocks", bytes.NewReader(payload))
	if err != nil {
		return nil, false, err
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := c.http.Do(req)
	if err != nil {
		return nil, false, err
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusCreated && res.StatusCode != http.StatusOK {
		return nil, false, decodeAPIError(res)
	}
	var body struct {
		Msg   string `json:"msg"`
		Stock Stock  `json:"stock"`
	}
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		return nil, false, fmt.Errorf("decode add response: %w", err)
	}
	return &body.Stock, res.StatusCode == http.StatusOK, nil
}

// Remove deletes a symbol from the watchlist.
func (c *Client) Remove(ctx context.Context, name string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete,
		c.baseURL+"/stocks/"+url.PathEscape(name), nil)
	if err != nil {
		return err
	}
	res, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return decodeAPIError(res)
	}
	return nil
}

// decodeAPIError turns an error response into an APIError, falling back to
// the HTTP status text when the body carries no msg.
func decodeAPIError(res *http.Response) error {
	var body struct {
		Msg string `json:"msg"`
	}
	_ = json.NewDecoder(res.Body).Decode(&body)
	if body.Msg == "" {
		body.Msg = http.StatusText(res.StatusCode)
	}
	return &APIError{Status: res.StatusCode, Msg: body.Msg}
}
