package main

import (
	"context"
	"log"
	"log/slog"
	"math/rand/v2"
	"os"
	"os/signal"
	"slices"
	"syscall"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/gamma-omg/paper-trader/internal/config"
	"github.com/gamma-omg/paper-trader/internal/feed"
	"github.com/gamma-omg/paper-trader/internal/server"
	"github.com/gamma-omg/paper-trader/internal/trader"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	path := os.Getenv("CONFIG")
	if path == "" {
		path = "config.yaml"
	}

	cfg, err := config.ReadFromFile(path)
	if err != nil {
		log.Fatal(err)
	}

	logger := slog.Default()

	symbols := make([]string, 0, len(cfg.Data))
	for symbol := range cfg.Data {
		symbols = append(symbols, symbol)
	}
	slices.Sort(symbols)

	rng := rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	src := feed.NewSource(cfg.Data, rng)
	ledger := trader.NewLedger(decimal.NewFromFloat(cfg.Balance))
	engine := trader.NewEngine(logger, symbols, src, ledger, rng)
	srv := server.New(logger, ledger, cfg.Port)

	logger.Info("starting trading simulation", "symbols", symbols, "balance", cfg.Balance)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		engine.Run(ctx)
		return nil
	})
	g.Go(func() error {
		return srv.Run(ctx)
	})

	if err := g.Wait(); err != nil {
		log.Fatal(err)
	}
}
