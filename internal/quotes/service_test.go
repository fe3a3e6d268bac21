package quotes

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stockdock/internal/apperr"
	"stockdock/internal/model"
	"stockdock/internal/store"
)

type fakeSnapshotProvider struct {
	snap *model.Snapshot
	err  error
}

func (f *fakeSnapshotProvider) GetSnapshot(_ context.Context, symbols []string) (*model.Snapshot, error) {
	if f.err != nil {
		return nil, f.err
	}
	if f.snap != nil {
		return f.snap, nil
	}
	snap := &model.Snapshot{
		Currency: "USD",
		Symbols:  symbols,
		Quotes:   make(map[string]model.SnapshotQuote, len(symbols)),
	}
	for _, s := range symbols {
		snap.Quotes[s] = model.SnapshotQuote{Price: "100.00", TradingDay: "2024-12-19"}
	}
	return snap, nil
}

func TestFetchAll_Success(t *testing.T) {
	svc := NewService(&fakeSnapshotProvider{}, store.NewMemoryStore(), []string{"VOO", "SPY"})

	snap, err := svc.FetchAll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "USD", snap.Currency)
	assert.Len(t, snap.Quotes, 2)
}

func TestFetchAll_ProviderFailure(t *testing.T) {
	svc := NewService(&fakeSnapshotProvider{err: errors.New("timeout")}, store.NewMemoryStore(), []string{"VOO"})

	_, err := svc.FetchAll(context.Background())
	assert.ErrorIs(t, err, apperr.ErrProvider)
}

func TestFetchAll_EmptyResultSignaled(t *testing.T) {
	p := &fakeSnapshotProvider{snap: &model.Snapshot{Currency: "USD", Quotes: map[string]model.SnapshotQuote{}}}
	svc := NewService(p, store.NewMemoryStore(), []string{"VOO"})

	_, err := svc.FetchAll(context.Background())
	assert.ErrorIs(t, err, apperr.ErrNoData)
}

func TestFetchAll_MissingCurrency(t *testing.T) {
	p := &fakeSnapshotProvider{snap: &model.Snapshot{Quotes: map[string]model.SnapshotQuote{"VOO": {}}}}
	svc := NewService(p, store.NewMemoryStore(), []string{"VOO"})

	_, err := svc.FetchAll(context.Background())
	assert.ErrorIs(t, err, apperr.ErrProvider)
}

func TestFetchOne_BlankSymbol(t *testing.T) {
	svc := NewService(&fakeSnapshotProvider{}, store.NewMemoryStore(), nil)

	_, err := svc.FetchOne(context.Background(), "")
	assert.ErrorIs(t, err, apperr.ErrInvalidSymbol)
}

func TestFetchOne_Miss(t *testing.T) {
	p := &fakeSnapshotProvider{snap: &model.Snapshot{Currency: "USD", Quotes: map[string]model.SnapshotQuote{}}}
	svc := NewService(p, store.NewMemoryStore(), nil)

	_, err := svc.FetchOne(context.Background(), "ZZZ")
	assert.ErrorIs(t, err, apperr.ErrNoData)
}

func TestPersistAll_SavesEverySymbol(t *testing.T) {
	st := store.NewMemoryStore()
	svc := NewService(&fakeSnapshotProvider{}, st, []string{"VOO", "SPY"})

	n, err := svc.PersistAll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	for _, sym := range []string{"VOO", "SPY"} {
		cs, ok := st.Current(sym)
		require.True(t, ok, "expected stored quote for %s", sym)
		assert.Equal(t, "USD", cs.Currency)
	}
}
