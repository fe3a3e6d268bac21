// Package history backfills daily historical bars from the provider
// into the store and reads them back.
package history

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"stockdock/internal/apperr"
	"stockdock/internal/model"
	"stockdock/internal/provider"
	"stockdock/internal/store"
)

const dateLayout = "2006-01-02"

// Service is the historical backfill pipeline.
type Service struct {
	Provider provider.BarProvider
	Store    store.BarStore
	Symbols  []string
}

// NewService creates a backfill service over the given symbol universe.
func NewService(p provider.BarProvider, st store.BarStore, symbols []string) *Service {
	return &Service{Provider: p, Store: st, Symbols: symbols}
}

// validateDateRange checks both dates parse as calendar dates and that
// start is not after end. Malformed text and inverted ranges report the
// same error kind.
func validateDateRange(startDate, endDate string) error {
	start, err := time.Parse(dateLayout, startDate)
	if err != nil {
		return fmt.Errorf("%w: invalid date format, use YYYY-MM-DD: %q", apperr.ErrInvalidDateRange, startDate)
	}
	end, err := time.Parse(dateLayout, endDate)
	if err != nil {
		return fmt.Errorf("%w: invalid date format, use YYYY-MM-DD: %q", apperr.ErrInvalidDateRange, endDate)
	}
	if start.After(end) {
		return fmt.Errorf("%w: start date %s is after end date %s", apperr.ErrInvalidDateRange, startDate, endDate)
	}
	return nil
}

// Backfill fetches daily bars for symbol over [startDate, endDate],
// assigns each a fresh identifier, and persists them in one batch. Bars
// are never deduplicated against earlier runs: overlapping ranges
// insert duplicate observations.
func (s *Service) Backfill(ctx context.Context, symbol, startDate, endDate string) ([]model.HistoricalBar, error) {
	if strings.TrimSpace(symbol) == "" {
		return nil, fmt.Errorf("%w: symbol cannot be blank", apperr.ErrInvalidSymbol)
	}
	if err := validateDateRange(startDate, endDate); err != nil {
		return nil, err
	}

	log.Printf("[INFO] fetching historical data for symbol: %s, start: %s, end: %s", symbol, startDate, endDate)

	providerBars, err := s.Provider.GetBars(ctx, symbol, startDate, endDate)
	if err != nil {
		return nil, fmt.Errorf("%w: fetch bars for %s: %v", apperr.ErrProvider, symbol, err)
	}

	bars := make([]model.HistoricalBar, 0, len(providerBars))
	for _, pb := range providerBars {
		bars = append(bars, model.HistoricalBar{
			ID:        uuid.NewString(),
			Symbol:    symbol,
			Currency:  model.DefaultCurrency,
			Timestamp: pb.Timestamp,
			Open:      pb.Open,
			Close:     pb.Close,
			High:      pb.High,
			Low:       pb.Low,
			Volume:    pb.Volume,
		})
	}

	// An empty successful response is a client-visible condition, not
	// something to silently accept as "nothing to persist".
	if len(bars) == 0 {
		return nil, fmt.Errorf("%w: no historical data for symbol %s in [%s, %s]", apperr.ErrNoData, symbol, startDate, endDate)
	}

	log.Printf("[INFO] saving %d bars for symbol: %s", len(bars), symbol)
	if err := s.Store.SaveBars(ctx, bars); err != nil {
		return nil, fmt.Errorf("persist bars for %s: %w", symbol, err)
	}
	return bars, nil
}

// BackfillAll runs Backfill for every symbol in the universe, in order.
// The range is validated once up front; past that, a failed symbol is
// logged and skipped so it never aborts the rest of the batch. The
// result holds the persisted bars of the successful symbols in input
// order.
func (s *Service) BackfillAll(ctx context.Context, startDate, endDate string) ([]model.HistoricalBar, error) {
	if err := validateDateRange(startDate, endDate); err != nil {
		return nil, err
	}

	var out []model.HistoricalBar
	for _, symbol := range s.Symbols {
		bars, err := s.Backfill(ctx, symbol, startDate, endDate)
		if err != nil {
			log.Printf("[ERROR] backfill %s: %v", symbol, err)
			continue
		}
		out = append(out, bars...)
	}
	return out, nil
}

// StoredBars returns all persisted bars for symbol in storage order.
func (s *Service) StoredBars(ctx context.Context, symbol string) ([]model.HistoricalBar, error) {
	if strings.TrimSpace(symbol) == "" {
		return nil, fmt.Errorf("%w: symbol cannot be blank", apperr.ErrInvalidSymbol)
	}

	bars, err := s.Store.BarsBySymbol(ctx, symbol)
	if err != nil {
		return nil, fmt.Errorf("read bars for %s: %w", symbol, err)
	}
	if len(bars) == 0 {
		return nil, fmt.Errorf("%w: no historical data found for symbol %s", apperr.ErrNoData, symbol)
	}
	return bars, nil
}
