package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stockdock/internal/model"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	s, err := NewSQLiteStore(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestSQLiteSaveSecurity_AssignsID(t *testing.T) {
	s := newTestStore(t)

	saved, err := s.SaveSecurity(context.Background(), model.Security{
		Symbol: "VOO",
		Name:   "Vanguard S&P 500 ETF",
		Price:  538.94,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, saved.ID)

	found, err := s.FindSecurity(context.Background(), "VOO")
	require.NoError(t, err)
	assert.Equal(t, saved.ID, found.ID)
	assert.Equal(t, 538.94, found.Price)
}

func TestSQLiteSaveSecurity_ConflictKeepsStoredID(t *testing.T) {
	s := newTestStore(t)

	first, err := s.SaveSecurity(context.Background(), model.Security{Symbol: "SPY", Price: 1})
	require.NoError(t, err)

	// Saving the same symbol with a blank ID must not mint a new row.
	second, err := s.SaveSecurity(context.Background(), model.Security{Symbol: "SPY", Price: 2})
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)

	found, err := s.FindSecurity(context.Background(), "SPY")
	require.NoError(t, err)
	assert.Equal(t, first.ID, found.ID)
	assert.Equal(t, 2.0, found.Price)
}

func TestSQLiteSaveSecurity_UpdateByID(t *testing.T) {
	s := newTestStore(t)

	saved, err := s.SaveSecurity(context.Background(), model.Security{Symbol: "QQQ", Price: 500})
	require.NoError(t, err)

	saved.Price = 510
	saved.Volume = 1234
	_, err = s.SaveSecurity(context.Background(), saved)
	require.NoError(t, err)

	found, err := s.FindSecurity(context.Background(), "QQQ")
	require.NoError(t, err)
	assert.Equal(t, saved.ID, found.ID)
	assert.Equal(t, 510.0, found.Price)
	assert.Equal(t, int64(1234), found.Volume)
}

func TestSQLiteFindSecurity_NotFound(t *testing.T) {
	s := newTestStore(t)

	_, err := s.FindSecurity(context.Background(), "MISSING")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSQLiteSaveCurrent_Upsert(t *testing.T) {
	s := newTestStore(t)

	cs := model.CurrentStock{
		Symbol:   "VTI",
		Currency: "USD",
		Quote:    model.SnapshotQuote{Price: "300.10", Volume: "1000"},
	}
	require.NoError(t, s.SaveCurrent(context.Background(), cs))

	cs.Quote.Price = "301.25"
	require.NoError(t, s.SaveCurrent(context.Background(), cs))
}

func TestSQLiteBars_RoundTripAndDuplicates(t *testing.T) {
	s := newTestStore(t)
	ts := time.Date(2024, 12, 19, 5, 0, 0, 0, time.UTC)

	bar := model.HistoricalBar{
		Symbol: "GLD", Currency: "USD", Timestamp: ts,
		Open: 240.1, Close: 241.3, High: 242.0, Low: 239.8, Volume: 5000,
	}
	bar.ID = "bar-1"
	require.NoError(t, s.SaveBars(context.Background(), []model.HistoricalBar{bar}))

	// Same bar under a new identity is a separate row.
	bar.ID = "bar-2"
	require.NoError(t, s.SaveBars(context.Background(), []model.HistoricalBar{bar}))

	bars, err := s.BarsBySymbol(context.Background(), "GLD")
	require.NoError(t, err)
	require.Len(t, bars, 2)
	assert.NotEqual(t, bars[0].ID, bars[1].ID)
	for _, b := range bars {
		assert.Equal(t, ts, b.Timestamp)
		assert.Equal(t, 241.3, b.Close)
	}

	other, err := s.BarsBySymbol(context.Background(), "TLT")
	require.NoError(t, err)
	assert.Empty(t, other)
}

func TestSQLiteSaveBars_EmptySliceIsNoOp(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.SaveBars(context.Background(), nil))
}
