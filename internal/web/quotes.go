package web

import (
	"net/http"
	"strings"

	"stockdock/internal/quotes"
)

// QuotesHandler serves the snapshot quote endpoints.
type QuotesHandler struct {
	Quotes *quotes.Service
}

// Handle routes /api/quotes/all, /api/quotes/save, and
// /api/quotes/{symbol}.
func (h *QuotesHandler) Handle(w http.ResponseWriter, r *http.Request) {
	rest := strings.TrimPrefix(r.URL.Path, "/api/quotes/")

	switch {
	case rest == "all":
		h.getAll(w, r)
	case rest == "save":
		h.saveAll(w, r)
	case rest != "" && !strings.Contains(rest, "/"):
		h.getSingle(w, r, rest)
	default:
		http.NotFound(w, r)
	}
}

func (h *QuotesHandler) getAll(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	snap, err := h.Quotes.FetchAll(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, snap)
}

func (h *QuotesHandler) getSingle(w http.ResponseWriter, r *http.Request, symbol string) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	q, err := h.Quotes.FetchOne(r.Context(), symbol)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, q)
}

func (h *QuotesHandler) saveAll(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	n, err := h.Quotes.PersistAll(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"message": "all quotes saved",
		"saved":   n,
	})
}
