package server

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gamma-omg/paper-trader/internal/market"
)

type statusReader interface {
	Snapshot() market.Snapshot
}

type StatusResponse struct {
	Balance    float64                    `json:"balance"`
	Portfolio  map[string]HoldingResponse `json:"portfolio"`
	ProfitLoss float64                    `json:"profitLoss"`
}

type HoldingResponse struct {
	Quantity int64   `json:"quantity"`
	BuyPrice float64 `json:"buyPrice"`
}

// Server exposes the trading state over HTTP.
type Server struct {
	log    *slog.Logger
	status statusReader
	srv    *http.Server
}

func New(log *slog.Logger, status statusReader, port int) *Server {
	s := &Server{
		log:    log,
		status: status,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/stocks/status", s.getStatus)

	s.srv = &http.Server{
		Addr:    fmt.Sprintf(":%d", port),
		Handler: mux,
	}

	return s
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		s.log.Info("server listening", "addr", s.srv.Addr)
		errCh <- s.srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server error: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := s.srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	return nil
}

func (s *Server) getStatus(w http.ResponseWriter, r *http.Request) {
	snap := s.status.Snapshot()

	portfolio := make(map[string]HoldingResponse, len(snap.Portfolio))
	for symbol, h := range snap.Portfolio {
		portfolio[symbol] = HoldingResponse{
			Quantity: h.Quantity,
			BuyPrice: h.BuyPrice.InexactFloat64(),
		}
	}

	resp := StatusResponse{
		Balance:    snap.Balance.InexactFloat64(),
		Portfolio:  portfolio,
		ProfitLoss: snap.ProfitLoss.InexactFloat64(),
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		s.log.Error("failed to write status response", "error", err)
	}
}
