package store

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"stockdock/internal/model"
)

// MemoryStore keeps everything in process memory. It backs storeless
// development runs and the service tests; the upsert and append
// semantics match the SQLite implementation.
type MemoryStore struct {
	mu         sync.Mutex
	securities map[string]model.Security // by symbol
	current    map[string]model.CurrentStock
	bars       []model.HistoricalBar
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		securities: make(map[string]model.Security),
		current:    make(map[string]model.CurrentStock),
	}
}

func (m *MemoryStore) FindSecurity(_ context.Context, symbol string) (model.Security, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	sec, ok := m.securities[symbol]
	if !ok {
		return model.Security{}, ErrNotFound
	}
	return sec, nil
}

func (m *MemoryStore) SaveSecurity(_ context.Context, sec model.Security) (model.Security, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if sec.ID == "" {
		if existing, ok := m.securities[sec.Symbol]; ok {
			sec.ID = existing.ID
		} else {
			sec.ID = uuid.NewString()
		}
	}
	m.securities[sec.Symbol] = sec
	return sec, nil
}

func (m *MemoryStore) SaveCurrent(_ context.Context, cs model.CurrentStock) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.current[cs.Symbol] = cs
	return nil
}

func (m *MemoryStore) SaveBars(_ context.Context, bars []model.HistoricalBar) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.bars = append(m.bars, bars...)
	return nil
}

func (m *MemoryStore) BarsBySymbol(_ context.Context, symbol string) ([]model.HistoricalBar, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var out []model.HistoricalBar
	for _, b := range m.bars {
		if b.Symbol == symbol {
			out = append(out, b)
		}
	}
	return out, nil
}

// Current returns the stored snapshot reading for symbol, if any.
// Test helper mirroring FindSecurity.
func (m *MemoryStore) Current(symbol string) (model.CurrentStock, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	cs, ok := m.current[symbol]
	return cs, ok
}

func (m *MemoryStore) Close() error { return nil }
