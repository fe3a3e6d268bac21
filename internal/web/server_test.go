package web

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stockdock/internal/history"
	"stockdock/internal/ingest"
	"stockdock/internal/model"
	"stockdock/internal/provider"
	"stockdock/internal/quotes"
	"stockdock/internal/store"
)

func newTestServer(p *provider.Stub, st store.Store, symbols []string) *Server {
	return NewServer("0",
		ingest.NewService(p, st, symbols),
		quotes.NewService(p, st, symbols),
		history.NewService(p, st, symbols),
	)
}

func doRequest(t *testing.T, srv *Server, method, target string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, nil)
	rr := httptest.NewRecorder()
	srv.Routes().ServeHTTP(rr, req)
	return rr
}

func TestGetSingleETF(t *testing.T) {
	srv := newTestServer(&provider.Stub{Price: 538.94}, store.NewMemoryStore(), []string{"VOO"})

	rr := doRequest(t, srv, http.MethodGet, "/api/v1/etf?symbol=VOO")
	require.Equal(t, http.StatusOK, rr.Code)

	var sec model.Security
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &sec))
	assert.Equal(t, "VOO", sec.Symbol)
	assert.NotEmpty(t, sec.ID)
	assert.Equal(t, 538.94, sec.Price)
}

func TestGetSingleETF_ProviderDown(t *testing.T) {
	srv := newTestServer(&provider.Stub{Err: errors.New("boom")}, store.NewMemoryStore(), []string{"VOO"})

	rr := doRequest(t, srv, http.MethodGet, "/api/v1/etf?symbol=VOO")
	assert.Equal(t, http.StatusBadGateway, rr.Code)
}

func TestGetAllETFs(t *testing.T) {
	srv := newTestServer(&provider.Stub{Price: 100}, store.NewMemoryStore(), []string{"VOO", "SPY"})

	rr := doRequest(t, srv, http.MethodGet, "/api/v1/etfs")
	require.Equal(t, http.StatusOK, rr.Code)

	var secs []model.Security
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &secs))
	require.Len(t, secs, 2)
	assert.Equal(t, "VOO", secs[0].Symbol)
	assert.Equal(t, "SPY", secs[1].Symbol)
}

func TestGetAllETFs_EmptyIsNoContent(t *testing.T) {
	srv := newTestServer(&provider.Stub{Err: errors.New("boom")}, store.NewMemoryStore(), []string{"VOO"})

	rr := doRequest(t, srv, http.MethodGet, "/api/v1/etfs")
	assert.Equal(t, http.StatusNoContent, rr.Code)
}

func TestQuotesRoutes(t *testing.T) {
	srv := newTestServer(&provider.Stub{Price: 100}, store.NewMemoryStore(), []string{"VOO", "SPY"})

	rr := doRequest(t, srv, http.MethodGet, "/api/quotes/all")
	require.Equal(t, http.StatusOK, rr.Code)
	var snap model.Snapshot
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &snap))
	assert.Len(t, snap.Quotes, 2)

	rr = doRequest(t, srv, http.MethodGet, "/api/quotes/VOO")
	assert.Equal(t, http.StatusOK, rr.Code)

	rr = doRequest(t, srv, http.MethodPost, "/api/quotes/save")
	require.Equal(t, http.StatusOK, rr.Code)
	var conf struct {
		Saved int `json:"saved"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &conf))
	assert.Equal(t, 2, conf.Saved)

	// save is POST-only
	rr = doRequest(t, srv, http.MethodGet, "/api/quotes/save")
	assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)
}

func TestHistoricalRoutes(t *testing.T) {
	srv := newTestServer(&provider.Stub{Price: 100}, store.NewMemoryStore(), []string{"AAPL"})

	rr := doRequest(t, srv, http.MethodPost,
		"/api/historical/fetch-and-save?symbol=AAPL&startDate=2024-01-02&endDate=2024-01-02")
	require.Equal(t, http.StatusOK, rr.Code)
	var bars []model.HistoricalBar
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &bars))
	require.Len(t, bars, 1)
	assert.Equal(t, "AAPL", bars[0].Symbol)

	rr = doRequest(t, srv, http.MethodGet, "/api/historical/from-db?symbol=AAPL")
	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestHistorical_InvalidRange(t *testing.T) {
	srv := newTestServer(&provider.Stub{Price: 100}, store.NewMemoryStore(), []string{"AAPL"})

	rr := doRequest(t, srv, http.MethodPost,
		"/api/historical/fetch-and-save?symbol=AAPL&startDate=2024-01-02&endDate=2024-01-01")
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestHistorical_NoStoredData(t *testing.T) {
	srv := newTestServer(&provider.Stub{Price: 100}, store.NewMemoryStore(), []string{"AAPL"})

	rr := doRequest(t, srv, http.MethodGet, "/api/historical/from-db?symbol=MSFT")
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestHealth(t *testing.T) {
	srv := newTestServer(&provider.Stub{}, store.NewMemoryStore(), nil)

	rr := doRequest(t, srv, http.MethodGet, "/health")
	assert.Equal(t, http.StatusOK, rr.Code)
}
