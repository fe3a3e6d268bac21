package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"stockdock/internal/model"
)

// SQLiteStore persists securities, current quotes, and historical bars
// to a SQLite database.
type SQLiteStore struct {
	db *sql.DB
	mu sync.Mutex
}

// NewSQLiteStore opens (or creates) the SQLite database and runs migrations.
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	// WAL mode for better concurrent read performance.
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	s := &SQLiteStore{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	log.Printf("[INFO] sqlite store opened: %s", dbPath)
	return s, nil
}

func (s *SQLiteStore) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS securities (
			id                 TEXT PRIMARY KEY,
			symbol             TEXT NOT NULL UNIQUE,
			name               TEXT,
			open               REAL,
			high               REAL,
			low                REAL,
			price              REAL,
			volume             INTEGER,
			currency           TEXT,
			latest_trading_day TEXT,
			previous_close     REAL,
			change             REAL,
			change_percent     TEXT
		)`,

		`CREATE TABLE IF NOT EXISTS current_stocks (
			symbol         TEXT PRIMARY KEY,
			currency       TEXT,
			open           TEXT,
			high           TEXT,
			low            TEXT,
			price          TEXT,
			volume         TEXT,
			previous_close TEXT,
			change         TEXT,
			change_percent TEXT,
			trading_day    TEXT
		)`,

		`CREATE TABLE IF NOT EXISTS historical_bars (
			id        TEXT PRIMARY KEY,
			symbol    TEXT NOT NULL,
			currency  TEXT,
			ts        INTEGER NOT NULL,
			open      REAL,
			close     REAL,
			high      REAL,
			low       REAL,
			volume    INTEGER
		)`,
		`CREATE INDEX IF NOT EXISTS idx_bars_symbol ON historical_bars(symbol)`,
	}

	for _, stmt := range stmts {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("exec %q: %w", stmt[:40], err)
		}
	}
	return nil
}

func (s *SQLiteStore) FindSecurity(ctx context.Context, symbol string) (model.Security, error) {
	var sec model.Security
	err := s.db.QueryRowContext(ctx, `SELECT id, symbol, name, open, high, low, price, volume,
		currency, latest_trading_day, previous_close, change, change_percent
		FROM securities WHERE symbol = ?`, symbol).Scan(
		&sec.ID, &sec.Symbol, &sec.Name, &sec.Open, &sec.High, &sec.Low, &sec.Price,
		&sec.Volume, &sec.Currency, &sec.LatestTradingDay, &sec.PreviousClose,
		&sec.Change, &sec.ChangePercent,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Security{}, ErrNotFound
	}
	if err != nil {
		return model.Security{}, fmt.Errorf("find security %s: %w", symbol, err)
	}
	return sec, nil
}

func (s *SQLiteStore) SaveSecurity(ctx context.Context, sec model.Security) (model.Security, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if sec.ID != "" {
		_, err := s.db.ExecContext(ctx, `UPDATE securities SET symbol = ?, name = ?, open = ?,
			high = ?, low = ?, price = ?, volume = ?, currency = ?, latest_trading_day = ?,
			previous_close = ?, change = ?, change_percent = ? WHERE id = ?`,
			sec.Symbol, sec.Name, sec.Open, sec.High, sec.Low, sec.Price, sec.Volume,
			sec.Currency, sec.LatestTradingDay, sec.PreviousClose, sec.Change,
			sec.ChangePercent, sec.ID,
		)
		if err != nil {
			return model.Security{}, fmt.Errorf("update security %s: %w", sec.Symbol, err)
		}
		return sec, nil
	}

	sec.ID = uuid.NewString()
	_, err := s.db.ExecContext(ctx, `INSERT INTO securities
		(id, symbol, name, open, high, low, price, volume, currency, latest_trading_day, previous_close, change, change_percent)
		VALUES (?,?,?,?,?,?,?,?,?,?,?,?,?)
		ON CONFLICT(symbol) DO UPDATE SET
			name = excluded.name, open = excluded.open, high = excluded.high,
			low = excluded.low, price = excluded.price, volume = excluded.volume,
			currency = excluded.currency, latest_trading_day = excluded.latest_trading_day,
			previous_close = excluded.previous_close, change = excluded.change,
			change_percent = excluded.change_percent`,
		sec.ID, sec.Symbol, sec.Name, sec.Open, sec.High, sec.Low, sec.Price, sec.Volume,
		sec.Currency, sec.LatestTradingDay, sec.PreviousClose, sec.Change, sec.ChangePercent,
	)
	if err != nil {
		return model.Security{}, fmt.Errorf("insert security %s: %w", sec.Symbol, err)
	}

	// The conflict branch keeps the stored id; read it back so the
	// caller sees the canonical identity.
	if err := s.db.QueryRowContext(ctx, `SELECT id FROM securities WHERE symbol = ?`, sec.Symbol).Scan(&sec.ID); err != nil {
		return model.Security{}, fmt.Errorf("read back security id %s: %w", sec.Symbol, err)
	}
	return sec, nil
}

func (s *SQLiteStore) SaveCurrent(ctx context.Context, cs model.CurrentStock) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.ExecContext(ctx, `INSERT INTO current_stocks
		(symbol, currency, open, high, low, price, volume, previous_close, change, change_percent, trading_day)
		VALUES (?,?,?,?,?,?,?,?,?,?,?)
		ON CONFLICT(symbol) DO UPDATE SET
			currency = excluded.currency, open = excluded.open, high = excluded.high,
			low = excluded.low, price = excluded.price, volume = excluded.volume,
			previous_close = excluded.previous_close, change = excluded.change,
			change_percent = excluded.change_percent, trading_day = excluded.trading_day`,
		cs.Symbol, cs.Currency, cs.Quote.Open, cs.Quote.High, cs.Quote.Low, cs.Quote.Price,
		cs.Quote.Volume, cs.Quote.PreviousClose, cs.Quote.Change, cs.Quote.ChangePercent,
		cs.Quote.TradingDay,
	)
	if err != nil {
		return fmt.Errorf("save current stock %s: %w", cs.Symbol, err)
	}
	return nil
}

func (s *SQLiteStore) SaveBars(ctx context.Context, bars []model.HistoricalBar) error {
	if len(bars) == 0 {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin bars tx: %w", err)
	}
	for _, b := range bars {
		if _, err := tx.ExecContext(ctx, `INSERT INTO historical_bars
			(id, symbol, currency, ts, open, close, high, low, volume)
			VALUES (?,?,?,?,?,?,?,?,?)`,
			b.ID, b.Symbol, b.Currency, b.Timestamp.Unix(),
			b.Open, b.Close, b.High, b.Low, b.Volume,
		); err != nil {
			tx.Rollback()
			return fmt.Errorf("insert bar %s@%s: %w", b.Symbol, b.Timestamp, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit bars tx: %w", err)
	}
	return nil
}

func (s *SQLiteStore) BarsBySymbol(ctx context.Context, symbol string) ([]model.HistoricalBar, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id, symbol, currency, ts, open, close, high, low, volume
		FROM historical_bars WHERE symbol = ?`, symbol)
	if err != nil {
		return nil, fmt.Errorf("query bars %s: %w", symbol, err)
	}
	defer rows.Close()

	var bars []model.HistoricalBar
	for rows.Next() {
		var b model.HistoricalBar
		var ts int64
		if err := rows.Scan(&b.ID, &b.Symbol, &b.Currency, &ts,
			&b.Open, &b.Close, &b.High, &b.Low, &b.Volume); err != nil {
			return nil, fmt.Errorf("scan bar: %w", err)
		}
		b.Timestamp = time.Unix(ts, 0).UTC()
		bars = append(bars, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate bars: %w", err)
	}
	return bars, nil
}

func (s *SQLiteStore) Close() error {
	log.Println("[INFO] closing sqlite store")
	return s.db.Close()
}
