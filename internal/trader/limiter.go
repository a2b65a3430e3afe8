package trader

import "time"

type tradeWindow struct {
	count       int
	windowStart time.Time
}

// TradeLimiter caps how many trades a symbol may execute inside a rolling
// window. Windows reset lazily on the next CanTrade call, there is no
// background timer. Not safe for concurrent use; it is owned by the engine
// goroutine.
type TradeLimiter struct {
	windows map[string]*tradeWindow
	limit   int
	window  time.Duration
}

func NewTradeLimiter(limit int, window time.Duration) *TradeLimiter {
	return &TradeLimiter{
		windows: make(map[string]*tradeWindow),
		limit:   limit,
		window:  window,
	}
}

// CanTrade reports whether symbol may trade at now, resetting the symbol's
// window first if it has expired.
func (t *TradeLimiter) CanTrade(symbol string, now time.Time) bool {
	w, ok := t.windows[symbol]
	if !ok {
		w = &tradeWindow{windowStart: now}
		t.windows[symbol] = w
	}

	if now.Sub(w.windowStart) > t.window {
		w.count = 0
		w.windowStart = now
	}

	return w.count < t.limit
}

// Record counts one executed trade against the symbol's current window.
func (t *TradeLimiter) Record(symbol string) {
	if w, ok := t.windows[symbol]; ok {
		w.count++
	}
}
