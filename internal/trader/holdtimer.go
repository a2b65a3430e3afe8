package trader

import "time"

// HoldTimer remembers when each symbol was last bought and flags positions
// held past the limit for forced liquidation. Not safe for concurrent use;
// it is owned by the engine goroutine.
type HoldTimer struct {
	purchases map[string]time.Time
	limit     time.Duration
}

func NewHoldTimer(limit time.Duration) *HoldTimer {
	return &HoldTimer{
		purchases: make(map[string]time.Time),
		limit:     limit,
	}
}

// IsOverdue reports whether symbol has a recorded purchase older than the
// hold limit. Symbols never bought are never overdue.
func (h *HoldTimer) IsOverdue(symbol string, now time.Time) bool {
	bought, ok := h.purchases[symbol]
	if !ok {
		return false
	}

	return now.Sub(bought) > h.limit
}

func (h *HoldTimer) RecordPurchase(symbol string, now time.Time) {
	h.purchases[symbol] = now
}

func (h *HoldTimer) Clear(symbol string) {
	delete(h.purchases, symbol)
}
