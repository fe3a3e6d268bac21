package model

import "time"

// ProviderBar is one OHLCV observation as the bars provider sends it.
type ProviderBar struct {
	Timestamp time.Time `json:"t"`
	Open      float64   `json:"o"`
	High      float64   `json:"h"`
	Low       float64   `json:"l"`
	Close     float64   `json:"c"`
	Volume    int64     `json:"v"`
}

// HistoricalBar is the persisted form of a ProviderBar. Each bar gets
// its own generated ID; (symbol, timestamp) is not unique, so repeated
// backfills over an overlapping range insert duplicate rows.
type HistoricalBar struct {
	ID        string    `json:"id"`
	Symbol    string    `json:"symbol"`
	Currency  string    `json:"currency"`
	Timestamp time.Time `json:"timestamp"`
	Open      float64   `json:"open"`
	Close     float64   `json:"close"`
	High      float64   `json:"high"`
	Low       float64   `json:"low"`
	Volume    int64     `json:"volume"`
}
