package ingest

import (
	"stockdock/internal/model"
	"stockdock/internal/parse"
)

// mergeSecurity combines a freshly fetched quote with the previously
// stored record for the same symbol, if any. The merge is pure and
// deterministic: identity and descriptive fields (name, currency) are
// retained from the existing record, every market field is overwritten
// by the normalized quote.
func mergeSecurity(q model.Quote, existing *model.Security) model.Security {
	sec := model.Security{
		Symbol:           q.Symbol,
		Name:             model.DefaultName,
		Currency:         model.DefaultCurrency,
		Open:             parse.FloatOrDefault(q.Open, 0.0),
		High:             parse.FloatOrDefault(q.High, 0.0),
		Low:              parse.FloatOrDefault(q.Low, 0.0),
		Price:            parse.FloatOrDefault(q.Price, 0.0),
		Volume:           parse.Int64OrDefault(q.Volume, 0),
		LatestTradingDay: q.LatestTradingDay,
		PreviousClose:    parse.FloatOrDefault(q.PreviousClose, 0.0),
		Change:           parse.FloatOrDefault(q.Change, 0.0),
		ChangePercent:    q.ChangePercent,
	}
	if existing != nil {
		sec.ID = existing.ID
		if existing.Name != "" {
			sec.Name = existing.Name
		}
		if existing.Currency != "" {
			sec.Currency = existing.Currency
		}
	}
	return sec
}
