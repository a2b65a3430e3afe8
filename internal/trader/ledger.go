package trader

import (
	"sync"

	"github.com/gamma-omg/paper-trader/internal/market"
	"github.com/shopspring/decimal"
)

// Ledger holds the cash balance, the portfolio and the realized profit/loss
// behind a single lock, so a concurrent status read never observes a holding
// change without its matching balance and profit/loss change. Mutations come
// from the engine goroutine only.
type Ledger struct {
	balance    decimal.Decimal
	profitLoss decimal.Decimal
	holdings   map[string]market.Holding
	mu         sync.RWMutex
}

func NewLedger(balance decimal.Decimal) *Ledger {
	return &Ledger{
		balance:  balance,
		holdings: make(map[string]market.Holding),
	}
}

func (l *Ledger) Balance() decimal.Decimal {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return l.balance
}

// Holding returns the position for symbol, or the zero holding if none.
func (l *Ledger) Holding(symbol string) market.Holding {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return l.holdings[symbol]
}

// ApplyBuy books a purchase of one share at price. The holding's buy price
// is overwritten with the latest buy, it is not averaged.
func (l *Ledger) ApplyBuy(symbol string, price decimal.Decimal) {
	l.mu.Lock()
	defer l.mu.Unlock()

	h := l.holdings[symbol]
	h.Quantity++
	h.BuyPrice = price
	l.holdings[symbol] = h
	l.balance = l.balance.Sub(price)
}

// ApplySell books a sale of one share at price and realizes the gain against
// the recorded buy price. The map entry is kept even when the quantity drops
// to zero; only Liquidate removes entries.
func (l *Ledger) ApplySell(symbol string, price decimal.Decimal) {
	l.mu.Lock()
	defer l.mu.Unlock()

	h := l.holdings[symbol]
	h.Quantity--
	l.holdings[symbol] = h
	l.balance = l.balance.Add(price)
	l.profitLoss = l.profitLoss.Add(price.Sub(h.BuyPrice))
}

// Liquidate sells off the whole position for symbol at price, removes its
// portfolio entry and returns the quantity sold.
func (l *Ledger) Liquidate(symbol string, price decimal.Decimal) int64 {
	l.mu.Lock()
	defer l.mu.Unlock()

	h := l.holdings[symbol]
	qty := decimal.NewFromInt(h.Quantity)
	l.balance = l.balance.Add(price.Mul(qty))
	l.profitLoss = l.profitLoss.Add(price.Sub(h.BuyPrice).Mul(qty))
	delete(l.holdings, symbol)
	return h.Quantity
}

// Snapshot copies the current state for read-only consumers.
func (l *Ledger) Snapshot() market.Snapshot {
	l.mu.RLock()
	defer l.mu.RUnlock()

	portfolio := make(map[string]market.Holding, len(l.holdings))
	for symbol, h := range l.holdings {
		portfolio[symbol] = h
	}

	return market.Snapshot{
		Balance:    l.balance,
		Portfolio:  portfolio,
		ProfitLoss: l.profitLoss,
	}
}
