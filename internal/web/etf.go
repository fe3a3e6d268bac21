package web

import (
	"net/http"

	"stockdock/internal/ingest"
)

// ETFHandler serves the fetch-and-persist security endpoints.
type ETFHandler struct {
	Ingest *ingest.Service
}

// GetSingle handles GET /api/v1/etf?symbol=S: fetch, merge, persist,
// and return one security.
func (h *ETFHandler) GetSingle(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	symbol := r.URL.Query().Get("symbol")
	sec, err := h.Ingest.Ingest(r.Context(), symbol)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, sec)
}

// GetAll handles GET /api/v1/etfs: ingest the whole universe. Partial
// failures are absorbed by the batch; an empty result is "no content".
func (h *ETFHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	secs := h.Ingest.IngestAll(r.Context())
	if len(secs) == 0 {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	writeJSON(w, http.StatusOK, secs)
}
