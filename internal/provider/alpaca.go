package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"stockdock/internal/model"
)

// AlpacaClient implements SnapshotProvider and BarProvider against the
// Alpaca market-data API.
type AlpacaClient struct {
	Client    *http.Client
	BaseURL   string
	APIKey    string
	APISecret string
}

// NewAlpacaClient creates a new Alpaca market-data client.
func NewAlpacaClient(baseURL, apiKey, apiSecret string) *AlpacaClient {
	return &AlpacaClient{
		Client:    &http.Client{Timeout: 30 * time.Second},
		BaseURL:   strings.TrimSuffix(baseURL, "/"),
		APIKey:    apiKey,
		APISecret: apiSecret,
	}
}

func (c *AlpacaClient) get(ctx context.Context, u string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("APCA-API-KEY-ID", c.APIKey)
	req.Header.Set("APCA-API-SECRET-KEY", c.APISecret)
	req.Header.Set("Accept", "application/json")

	resp, err := c.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("alpaca fetch: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("alpaca read body: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("alpaca: status %d, body: %s", resp.StatusCode, string(body))
	}
	return body, nil
}

// snapshotResponse is the wire shape of the latest-quotes endpoint.
type snapshotResponse struct {
	Currency string                         `json:"currency"`
	Quotes   map[string]model.SnapshotQuote `json:"quotes"`
}

// GetSnapshot fetches the latest quotes for symbols in one request.
// The returned Snapshot keeps the requested symbol order for the
// symbols the provider actually answered.
func (c *AlpacaClient) GetSnapshot(ctx context.Context, symbols []string) (*model.Snapshot, error) {
	q := url.Values{}
	q.Set("symbols", strings.Join(symbols, ","))
	u := c.BaseURL + "/v2/stocks/quotes/latest?" + q.Encode()

	body, err := c.get(ctx, u)
	if err != nil {
		return nil, err
	}

	var wire snapshotResponse
	if err := json.Unmarshal(body, &wire); err != nil {
		return nil, fmt.Errorf("alpaca decode snapshot: %w", err)
	}

	snap := &model.Snapshot{
		Currency: wire.Currency,
		Quotes:   wire.Quotes,
	}
	for _, s := range symbols {
		if _, ok := wire.Quotes[s]; ok {
			snap.Symbols = append(snap.Symbols, s)
		}
	}
	return snap, nil
}

// barsResponse is the wire shape of the daily-bars endpoint.
type barsResponse struct {
	Bars []model.ProviderBar `json:"bars"`
}

// GetBars fetches daily bars for symbol over [startDate, endDate].
func (c *AlpacaClient) GetBars(ctx context.Context, symbol, startDate, endDate string) ([]model.ProviderBar, error) {
	q := url.Values{}
	q.Set("timeframe", "1Day")
	q.Set("start", startDate)
	q.Set("end", endDate)
	u := c.BaseURL + "/v2/stocks/" + url.PathEscape(symbol) + "/bars?" + q.Encode()

	body, err := c.get(ctx, u)
	if err != nil {
		return nil, err
	}

	var wire barsResponse
	if err := json.Unmarshal(body, &wire); err != nil {
		return nil, fmt.Errorf("alpaca decode bars: %w", err)
	}
	return wire.Bars, nil
}
