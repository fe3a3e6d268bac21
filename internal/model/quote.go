package model

// Quote is a single global-quote reading as Alpha Vantage sends it:
// every field is text and any of them may be blank.
type Quote struct {
	Symbol           string `json:"01. symbol"`
	Open             string `json:"02. open"`
	High             string `json:"03. high"`
	Low              string `json:"04. low"`
	Price            string `json:"05. price"`
	Volume           string `json:"06. volume"`
	LatestTradingDay string `json:"07. latest trading day"`
	PreviousClose    string `json:"08. previous close"`
	Change           string `json:"09. change"`
	ChangePercent    string `json:"10. change percent"`
}

// GlobalQuoteResponse is the envelope around a Quote. The nested
// payload is absent when the provider does not know the symbol.
type GlobalQuoteResponse struct {
	GlobalQuote *Quote `json:"Global Quote"`
}

// SnapshotQuote is one symbol's latest reading inside a multi-symbol
// snapshot.
type SnapshotQuote struct {
	Open          string `json:"open"`
	High          string `json:"high"`
	Low           string `json:"low"`
	Price         string `json:"price"`
	Volume        string `json:"volume"`
	PreviousClose string `json:"previous_close"`
	Change        string `json:"change"`
	ChangePercent string `json:"change_percent"`
	TradingDay    string `json:"trading_day"`
}

// Snapshot bundles the latest quotes for a symbol set. Symbols keeps
// the order the provider returned; Quotes is keyed by symbol.
type Snapshot struct {
	Currency string                   `json:"currency"`
	Symbols  []string                 `json:"symbols"`
	Quotes   map[string]SnapshotQuote `json:"quotes"`
}
