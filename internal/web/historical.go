package web

import (
	"net/http"

	"stockdock/internal/history"
)

// HistoricalHandler serves the historical bar endpoints.
type HistoricalHandler struct {
	History *history.Service
}

// FetchAndSave handles POST /api/historical/fetch-and-save?symbol&startDate&endDate.
func (h *HistoricalHandler) FetchAndSave(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	q := r.URL.Query()
	bars, err := h.History.Backfill(r.Context(), q.Get("symbol"), q.Get("startDate"), q.Get("endDate"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, bars)
}

// FromDB handles GET /api/historical/from-db?symbol.
func (h *HistoricalHandler) FromDB(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	bars, err := h.History.StoredBars(r.Context(), r.URL.Query().Get("symbol"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, bars)
}
