package feed

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/gamma-omg/paper-trader/internal/market"
	"github.com/shopspring/decimal"
)

// ErrEmptySeries is reported by Sample when a symbol's data file parsed
// fine but contains no price points.
var ErrEmptySeries = errors.New("price series is empty")

type indexPicker interface {
	IntN(n int) int
}

type priceFile struct {
	Prices []market.PricePoint `json:"prices"`
}

// Source serves mock price data, one JSON file per symbol. Files are
// re-read on every LoadPrices call so edits to the mock data show up on the
// next evaluation cycle.
type Source struct {
	paths map[string]string
	rng   indexPicker
}

func NewSource(paths map[string]string, rng indexPicker) *Source {
	return &Source{
		paths: paths,
		rng:   rng,
	}
}

func (s *Source) LoadPrices(symbol string) ([]market.PricePoint, error) {
	path, ok := s.paths[symbol]
	if !ok {
		return nil, fmt.Errorf("no data file configured for symbol %s", symbol)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("unable to read price data for %s: %w", symbol, err)
	}

	var pf priceFile
	if err := json.Unmarshal(raw, &pf); err != nil {
		return nil, fmt.Errorf("unable to parse price data for %s: %w", symbol, err)
	}

	return pf.Prices, nil
}

// Sample picks one price uniformly at random from the series.
func (s *Source) Sample(prices []market.PricePoint) (decimal.Decimal, error) {
	if len(prices) == 0 {
		return decimal.Decimal{}, ErrEmptySeries
	}

	return prices[s.rng.IntN(len(prices))].Price, nil
}
