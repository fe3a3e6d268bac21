package model

// Default descriptive values used when neither the provider nor an
// existing record supplies them.
const (
	DefaultCurrency = "USD"
	DefaultName     = "Example ETF Name"
)

// Security is the durable per-symbol record. At most one live record
// exists per symbol; ID is opaque and assigned by the store on first
// insert, then preserved across updates.
type Security struct {
	ID               string  `json:"id"`
	Symbol           string  `json:"symbol"`
	Name             string  `json:"name"`
	Open             float64 `json:"open"`
	High             float64 `json:"high"`
	Low              float64 `json:"low"`
	Price            float64 `json:"price"`
	Volume           int64   `json:"volume"`
	Currency         string  `json:"currency"`
	LatestTradingDay string  `json:"latest_trading_day"`
	PreviousClose    float64 `json:"previous_close"`
	Change           float64 `json:"change"`
	ChangePercent    string  `json:"change_percent"`
}

// CurrentStock is the persisted form of one snapshot quote. The symbol
// is the record key; saving replaces any previous reading.
type CurrentStock struct {
	Symbol   string        `json:"symbol"`
	Currency string        `json:"currency"`
	Quote    SnapshotQuote `json:"quote"`
}
