package provider

import (
	"context"
	"fmt"
	"time"

	"stockdock/internal/model"
)

// Stub returns controllable fixed data for development and testing. It
// implements all three provider interfaces and is the fallback in main
// when no provider credentials are configured.
type Stub struct {
	Price    float64
	Quote    *model.GlobalQuoteResponse
	Snapshot *model.Snapshot
	Bars     []model.ProviderBar
	Err      error
}

func (s *Stub) GetQuote(_ context.Context, symbol string) (*model.GlobalQuoteResponse, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if s.Quote != nil {
		return s.Quote, nil
	}
	p := s.Price
	if p == 0 {
		p = 100
	}
	return &model.GlobalQuoteResponse{GlobalQuote: &model.Quote{
		Symbol:           symbol,
		Open:             fmt.Sprintf("%.2f", p*0.999),
		High:             fmt.Sprintf("%.2f", p*1.005),
		Low:              fmt.Sprintf("%.2f", p*0.995),
		Price:            fmt.Sprintf("%.2f", p),
		Volume:           "1000000",
		LatestTradingDay: time.Now().Format("2006-01-02"),
		PreviousClose:    fmt.Sprintf("%.2f", p*0.998),
		Change:           fmt.Sprintf("%.2f", p*0.002),
		ChangePercent:    "0.20%",
	}}, nil
}

func (s *Stub) GetSnapshot(_ context.Context, symbols []string) (*model.Snapshot, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if s.Snapshot != nil {
		return s.Snapshot, nil
	}
	snap := &model.Snapshot{
		Currency: model.DefaultCurrency,
		Symbols:  append([]string(nil), symbols...),
		Quotes:   make(map[string]model.SnapshotQuote, len(symbols)),
	}
	p := s.Price
	if p == 0 {
		p = 100
	}
	for _, sym := range symbols {
		snap.Quotes[sym] = model.SnapshotQuote{
			Open:          fmt.Sprintf("%.2f", p*0.999),
			High:          fmt.Sprintf("%.2f", p*1.005),
			Low:           fmt.Sprintf("%.2f", p*0.995),
			Price:         fmt.Sprintf("%.2f", p),
			Volume:        "1000000",
			PreviousClose: fmt.Sprintf("%.2f", p*0.998),
			Change:        fmt.Sprintf("%.2f", p*0.002),
			ChangePercent: "0.20%",
			TradingDay:    time.Now().Format("2006-01-02"),
		}
	}
	return snap, nil
}

func (s *Stub) GetBars(_ context.Context, _ string, startDate, _ string) ([]model.ProviderBar, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if s.Bars != nil {
		return s.Bars, nil
	}
	start, err := time.Parse("2006-01-02", startDate)
	if err != nil {
		start = time.Now().AddDate(0, 0, -1)
	}
	p := s.Price
	if p == 0 {
		p = 100
	}
	return []model.ProviderBar{{
		Timestamp: start.UTC(),
		Open:      p * 0.999,
		High:      p * 1.005,
		Low:       p * 0.995,
		Close:     p,
		Volume:    1000000,
	}}, nil
}
