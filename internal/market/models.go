package market

import "github.com/shopspring/decimal"

// PricePoint is a single sampled price from a symbol's mock data file.
type PricePoint struct {
	Price decimal.Decimal `json:"price"`
}

// Holding is the position held for one symbol. BuyPrice tracks the price of
// the most recent buy, not a weighted average. The zero value means no
// position.
type Holding struct {
	Quantity int64
	BuyPrice decimal.Decimal
}

// Snapshot is a point-in-time copy of the ledger state.
type Snapshot struct {
	Balance    decimal.Decimal
	Portfolio  map[string]Holding
	ProfitLoss decimal.Decimal
}
