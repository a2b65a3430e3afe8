package trader

import (
	"context"
	"log/slog"
	"time"

	"github.com/gamma-omg/paper-trader/internal/market"
	"github.com/shopspring/decimal"
)

// Trading policy. These are fixed by design, not tunable at runtime.
const (
	EvaluateInterval = 5 * time.Second
	TradeWindow      = time.Minute
	TradeLimit       = 3
	HoldLimit        = 2 * time.Minute
	FailureChance    = 0.1
)

// Buy when the price dips 2% below the last buy price, sell when it rises 3%
// above it.
var (
	buyThreshold  = decimal.NewFromFloat(0.98)
	sellThreshold = decimal.NewFromFloat(1.03)
)

type priceSource interface {
	LoadPrices(symbol string) ([]market.PricePoint, error)
	Sample(prices []market.PricePoint) (decimal.Decimal, error)
}

type failureSource interface {
	Float64() float64
}

// Engine runs the trading strategy over the configured symbols on a fixed
// period, mutating the ledger as trades execute.
type Engine struct {
	log     *slog.Logger
	symbols []string
	prices  priceSource
	ledger  *Ledger
	limiter *TradeLimiter
	holds   *HoldTimer
	rng     failureSource
	clock   func() time.Time
}

func NewEngine(log *slog.Logger, symbols []string, prices priceSource, ledger *Ledger, rng failureSource) *Engine {
	return &Engine{
		log:     log,
		symbols: symbols,
		prices:  prices,
		ledger:  ledger,
		limiter: NewTradeLimiter(TradeLimit, TradeWindow),
		holds:   NewHoldTimer(HoldLimit),
		rng:     rng,
		clock:   time.Now,
	}
}

// Run evaluates the strategy every EvaluateInterval until ctx is cancelled.
func (e *Engine) Run(ctx context.Context) {
	t := time.NewTicker(EvaluateInterval)
	defer t.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			e.Evaluate(e.clock())
		}
	}
}

// Evaluate runs one strategy pass over every configured symbol. Symbols are
// independent: a data failure on one only skips that symbol for this pass.
func (e *Engine) Evaluate(now time.Time) {
	for _, symbol := range e.symbols {
		e.evaluateSymbol(symbol, now)
	}
}

func (e *Engine) evaluateSymbol(symbol string, now time.Time) {
	prices, err := e.prices.LoadPrices(symbol)
	if err != nil {
		e.log.Error("price data is missing or corrupted", "symbol", symbol, "error", err)
		return
	}

	price, err := e.prices.Sample(prices)
	if err != nil {
		e.log.Error("failed to retrieve a valid price", "symbol", symbol, "error", err)
		return
	}

	// Positions held past the limit are dumped at the sampled price no
	// matter where it sits relative to the thresholds.
	if e.holds.IsOverdue(symbol, now) {
		qty := e.ledger.Liquidate(symbol, price)
		e.holds.Clear(symbol)
		e.log.Info("forced sell", "symbol", symbol, "quantity", qty, "price", price)
		return
	}

	holding := e.ledger.Holding(symbol)
	if price.LessThan(holding.BuyPrice.Mul(buyThreshold)) &&
		e.ledger.Balance().GreaterThanOrEqual(price) &&
		e.limiter.CanTrade(symbol, now) {
		if e.tradeFails() {
			e.log.Info("missed buying opportunity due to trade failure", "symbol", symbol, "price", price)
		} else {
			e.ledger.ApplyBuy(symbol, price)
			e.holds.RecordPurchase(symbol, now)
			e.limiter.Record(symbol)
			e.log.Info("bought 1 share", "symbol", symbol, "price", price)
		}
	}

	// Re-read so the sell leg sees a buy executed just above.
	holding = e.ledger.Holding(symbol)
	if price.GreaterThan(holding.BuyPrice.Mul(sellThreshold)) &&
		holding.Quantity > 0 &&
		e.limiter.CanTrade(symbol, now) {
		if e.tradeFails() {
			e.log.Info("missed selling opportunity due to trade failure", "symbol", symbol, "price", price)
		} else {
			e.ledger.ApplySell(symbol, price)
			e.limiter.Record(symbol)
			e.log.Info("sold 1 share", "symbol", symbol, "price", price)
		}
	}
}

func (e *Engine) tradeFails() bool {
	return e.rng.Float64() < FailureChance
}
