// Package quotes serves the latest multi-symbol snapshot quotes and
// persists them as current-stock records.
package quotes

import (
	"context"
	"fmt"
	"log"
	"strings"

	"stockdock/internal/apperr"
	"stockdock/internal/model"
	"stockdock/internal/provider"
	"stockdock/internal/store"
)

// Service fetches snapshot quotes for the configured universe.
type Service struct {
	Provider provider.SnapshotProvider
	Store    store.QuoteStore
	Symbols  []string
}

// NewService creates a snapshot quote service.
func NewService(p provider.SnapshotProvider, st store.QuoteStore, symbols []string) *Service {
	return &Service{Provider: p, Store: st, Symbols: symbols}
}

// FetchAll returns the latest quotes for every symbol in the universe.
func (s *Service) FetchAll(ctx context.Context) (*model.Snapshot, error) {
	log.Println("[INFO] fetching all quotes")

	snap, err := s.Provider.GetSnapshot(ctx, s.Symbols)
	if err != nil {
		return nil, fmt.Errorf("%w: fetch snapshot: %v", apperr.ErrProvider, err)
	}
	if snap == nil || snap.Currency == "" {
		return nil, fmt.Errorf("%w: snapshot missing currency", apperr.ErrProvider)
	}
	if len(snap.Quotes) == 0 {
		return nil, fmt.Errorf("%w: no quotes for the predefined symbols", apperr.ErrNoData)
	}

	log.Printf("[INFO] successfully fetched %d quotes", len(snap.Quotes))
	return snap, nil
}

// FetchOne returns the latest quote for one symbol.
func (s *Service) FetchOne(ctx context.Context, symbol string) (model.SnapshotQuote, error) {
	if strings.TrimSpace(symbol) == "" {
		return model.SnapshotQuote{}, fmt.Errorf("%w: symbol cannot be blank", apperr.ErrInvalidSymbol)
	}

	snap, err := s.Provider.GetSnapshot(ctx, []string{symbol})
	if err != nil {
		return model.SnapshotQuote{}, fmt.Errorf("%w: fetch quote for %s: %v", apperr.ErrProvider, symbol, err)
	}
	if snap == nil {
		return model.SnapshotQuote{}, fmt.Errorf("%w: nil snapshot for %s", apperr.ErrProvider, symbol)
	}
	q, ok := snap.Quotes[symbol]
	if !ok {
		return model.SnapshotQuote{}, fmt.Errorf("%w: no quote found for symbol %s", apperr.ErrNoData, symbol)
	}
	return q, nil
}

// PersistAll fetches the snapshot and upserts one current-stock record
// per symbol, in the snapshot's symbol order. It returns the number of
// records saved.
func (s *Service) PersistAll(ctx context.Context) (int, error) {
	snap, err := s.FetchAll(ctx)
	if err != nil {
		return 0, err
	}

	log.Printf("[INFO] saving %d quotes", len(snap.Quotes))

	saved := 0
	for _, symbol := range snap.Symbols {
		q, ok := snap.Quotes[symbol]
		if !ok {
			continue
		}
		cs := model.CurrentStock{Symbol: symbol, Currency: snap.Currency, Quote: q}
		if err := s.Store.SaveCurrent(ctx, cs); err != nil {
			return saved, fmt.Errorf("save quote %s: %w", symbol, err)
		}
		saved++
	}

	log.Printf("[INFO] all %d quotes saved", saved)
	return saved, nil
}
