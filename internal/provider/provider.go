package provider

import (
	"context"

	"stockdock/internal/model"
)

// QuoteProvider fetches the latest global quote for one symbol.
type QuoteProvider interface {
	GetQuote(ctx context.Context, symbol string) (*model.GlobalQuoteResponse, error)
}

// SnapshotProvider fetches the latest quotes for a symbol set in one call.
type SnapshotProvider interface {
	GetSnapshot(ctx context.Context, symbols []string) (*model.Snapshot, error)
}

// BarProvider fetches daily OHLCV bars for a symbol over an inclusive
// calendar-date range (YYYY-MM-DD).
type BarProvider interface {
	GetBars(ctx context.Context, symbol, startDate, endDate string) ([]model.ProviderBar, error)
}
