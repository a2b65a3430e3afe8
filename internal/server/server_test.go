package server

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gamma-omg/paper-trader/internal/market"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubStatus struct {
	snap market.Snapshot
}

func (s *stubStatus) Snapshot() market.Snapshot {
	return s.snap
}

func TestGetStatus(t *testing.T) {
	status := &stubStatus{snap: market.Snapshot{
		Balance: decimal.NewFromFloat(803.5),
		Portfolio: map[string]market.Holding{
			"AAPL": {Quantity: 2, BuyPrice: decimal.NewFromInt(97)},
		},
		ProfitLoss: decimal.NewFromInt(4),
	}}

	s := New(slog.Default(), status, 0)
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/stocks/status", nil)

	s.srv.Handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var resp StatusResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	assert.Equal(t, 803.5, resp.Balance)
	assert.Equal(t, 4.0, resp.ProfitLoss)
	require.Contains(t, resp.Portfolio, "AAPL")
	assert.Equal(t, int64(2), resp.Portfolio["AAPL"].Quantity)
	assert.Equal(t, 97.0, resp.Portfolio["AAPL"].BuyPrice)
}

func TestGetStatus_EmptyPortfolio(t *testing.T) {
	status := &stubStatus{snap: market.Snapshot{
		Balance:   decimal.NewFromInt(1000),
		Portfolio: map[string]market.Holding{},
	}}

	s := New(slog.Default(), status, 0)
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/stocks/status", nil)

	s.srv.Handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"balance":1000,"portfolio":{},"profitLoss":0}`, rec.Body.String())
}

func TestGetStatus_MethodNotAllowed(t *testing.T) {
	s := New(slog.Default(), &stubStatus{}, 0)
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/stocks/status", nil)

	s.srv.Handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}
