// Package web is the HTTP routing layer: it maps URLs to service calls
// and marshals the results.
package web

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"stockdock/internal/history"
	"stockdock/internal/ingest"
	"stockdock/internal/quotes"
)

// Server is the HTTP front of the pipeline services.
type Server struct {
	port    string
	ingest  *ingest.Service
	quotes  *quotes.Service
	history *history.Service
	server  *http.Server
}

// NewServer creates a new HTTP server.
func NewServer(port string, ing *ingest.Service, qt *quotes.Service, hist *history.Service) *Server {
	return &Server{port: port, ingest: ing, quotes: qt, history: hist}
}

// Routes builds the request multiplexer.
func (s *Server) Routes() *http.ServeMux {
	etf := &ETFHandler{Ingest: s.ingest}
	qt := &QuotesHandler{Quotes: s.quotes}
	hist := &HistoricalHandler{History: s.history}

	mux := http.NewServeMux()
	mux.HandleFunc("/api/v1/etf", etf.GetSingle)
	mux.HandleFunc("/api/v1/etfs", etf.GetAll)
	mux.HandleFunc("/api/quotes/", qt.Handle)
	mux.HandleFunc("/api/historical/fetch-and-save", hist.FetchAndSave)
	mux.HandleFunc("/api/historical/from-db", hist.FromDB)
	mux.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	return mux
}

// Start begins serving and blocks until the listener fails or the
// server is shut down.
func (s *Server) Start() error {
	s.server = &http.Server{
		Addr:         ":" + s.port,
		Handler:      s.Routes(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 120 * time.Second,
	}

	log.Printf("[INFO] http server listening on :%s", s.port)
	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("http server: %w", err)
	}
	return nil
}

// Shutdown stops the server gracefully.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.server == nil {
		return nil
	}
	log.Println("[INFO] http server shutting down")
	return s.server.Shutdown(ctx)
}
