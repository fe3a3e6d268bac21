package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"stockdock/internal/model"
)

const alphaVantageURL = "https://www.alphavantage.co/query"

// AlphaVantageClient implements QuoteProvider against the Alpha Vantage
// GLOBAL_QUOTE endpoint.
type AlphaVantageClient struct {
	Client  *http.Client
	BaseURL string
	APIKey  string
}

// NewAlphaVantageClient creates a new Alpha Vantage client.
func NewAlphaVantageClient(apiKey string) *AlphaVantageClient {
	return &AlphaVantageClient{
		Client:  &http.Client{Timeout: 30 * time.Second},
		BaseURL: alphaVantageURL,
		APIKey:  apiKey,
	}
}

func (c *AlphaVantageClient) GetQuote(ctx context.Context, symbol string) (*model.GlobalQuoteResponse, error) {
	q := url.Values{}
	q.Set("function", "GLOBAL_QUOTE")
	q.Set("symbol", symbol)
	q.Set("apikey", c.APIKey)
	u := c.BaseURL + "?" + q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("alphavantage fetch: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("alphavantage read body: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("alphavantage: status %d, body: %s", resp.StatusCode, string(body))
	}

	var out model.GlobalQuoteResponse
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, fmt.Errorf("alphavantage decode: %w", err)
	}
	return &out, nil
}
