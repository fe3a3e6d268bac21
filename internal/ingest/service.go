// Package ingest fetches per-symbol quotes, reconciles them against the
// stored records, and persists the result.
package ingest

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"stockdock/internal/apperr"
	"stockdock/internal/model"
	"stockdock/internal/provider"
	"stockdock/internal/store"
)

// Service ingests securities one symbol at a time.
type Service struct {
	Provider provider.QuoteProvider
	Store    store.SecurityStore
	Symbols  []string
}

// NewService creates an ingestion service over the given symbol universe.
func NewService(p provider.QuoteProvider, st store.SecurityStore, symbols []string) *Service {
	return &Service{Provider: p, Store: st, Symbols: symbols}
}

// Ingest fetches one symbol, merges with any stored record, and
// persists the result. The store is not written when the provider step
// fails.
func (s *Service) Ingest(ctx context.Context, symbol string) (model.Security, error) {
	if strings.TrimSpace(symbol) == "" {
		return model.Security{}, fmt.Errorf("%w: symbol cannot be blank", apperr.ErrInvalidSymbol)
	}

	log.Printf("[INFO] fetching data for symbol: %s", symbol)

	resp, err := s.Provider.GetQuote(ctx, symbol)
	if err != nil {
		return model.Security{}, fmt.Errorf("%w: fetch quote for %s: %v", apperr.ErrProvider, symbol, err)
	}
	// A response is only acceptable once every required nesting level is
	// present.
	if resp == nil || resp.GlobalQuote == nil || strings.TrimSpace(resp.GlobalQuote.Symbol) == "" {
		return model.Security{}, fmt.Errorf("%w: invalid response for symbol %s", apperr.ErrProvider, symbol)
	}

	var existing *model.Security
	if found, err := s.Store.FindSecurity(ctx, symbol); err == nil {
		existing = &found
	} else if !errors.Is(err, store.ErrNotFound) {
		return model.Security{}, fmt.Errorf("lookup %s: %w", symbol, err)
	}

	merged := mergeSecurity(*resp.GlobalQuote, existing)

	saved, err := s.Store.SaveSecurity(ctx, merged)
	if err != nil {
		return model.Security{}, fmt.Errorf("persist %s: %w", symbol, err)
	}

	log.Printf("[INFO] successfully persisted data for symbol: %s", symbol)
	return saved, nil
}

// IngestAll runs Ingest for every symbol in the universe, in order. A
// failed symbol is logged and skipped; it never aborts the batch or
// rolls back earlier symbols. The result holds the successes in input
// order.
func (s *Service) IngestAll(ctx context.Context) []model.Security {
	log.Println("[INFO] fetching data for predefined symbols...")

	out := make([]model.Security, 0, len(s.Symbols))
	for _, symbol := range s.Symbols {
		sec, err := s.Ingest(ctx, symbol)
		if err != nil {
			log.Printf("[ERROR] ingest %s: %v", symbol, err)
			continue
		}
		out = append(out, sec)
	}

	log.Printf("[INFO] completed batch ingestion: %d/%d symbols", len(out), len(s.Symbols))
	return out
}
