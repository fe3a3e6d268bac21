package store

import (
	"context"
	"errors"

	"stockdock/internal/model"
)

// ErrNotFound is returned by single-record lookups that match nothing.
// Callers treat it as an ordinary outcome, not a fault.
var ErrNotFound = errors.New("record not found")

// SecurityStore persists the one-record-per-symbol security entities.
type SecurityStore interface {
	// FindSecurity returns the live record for symbol, or ErrNotFound.
	FindSecurity(ctx context.Context, symbol string) (model.Security, error)
	// SaveSecurity upserts sec. A record with a retained ID is updated
	// in place; a record with an empty ID gets a fresh one assigned.
	// The persisted record is returned.
	SaveSecurity(ctx context.Context, sec model.Security) (model.Security, error)
}

// QuoteStore persists snapshot quotes keyed by symbol.
type QuoteStore interface {
	// SaveCurrent replaces the stored reading for cs.Symbol.
	SaveCurrent(ctx context.Context, cs model.CurrentStock) error
}

// BarStore persists historical bars. Bars are append-only: SaveBars
// never deduplicates by (symbol, timestamp), so overlapping backfills
// insert duplicate observations.
type BarStore interface {
	SaveBars(ctx context.Context, bars []model.HistoricalBar) error
	// BarsBySymbol returns all stored bars for symbol in storage order.
	// An empty result is returned as an empty slice, not an error.
	BarsBySymbol(ctx context.Context, symbol string) ([]model.HistoricalBar, error)
}

// Store is the full persistence surface the services need.
type Store interface {
	SecurityStore
	QuoteStore
	BarStore
	Close() error
}
