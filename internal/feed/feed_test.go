package feed

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixedPicker struct {
	n int
}

func (p *fixedPicker) IntN(n int) int {
	return p.n % n
}

func writeDataFile(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "prices.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadPrices(t *testing.T) {
	path := writeDataFile(t, `{"prices":[{"price":101.5},{"price":99.25},{"price":100}]}`)
	s := NewSource(map[string]string{"AAPL": path}, &fixedPicker{})

	prices, err := s.LoadPrices("AAPL")
	require.NoError(t, err)

	require.Len(t, prices, 3)
	assert.Equal(t, "101.5", prices[0].Price.String())
	assert.Equal(t, "99.25", prices[1].Price.String())
	assert.Equal(t, "100", prices[2].Price.String())
}

func TestLoadPrices_UnknownSymbol(t *testing.T) {
	s := NewSource(map[string]string{}, &fixedPicker{})

	_, err := s.LoadPrices("AAPL")
	require.Error(t, err)
}

func TestLoadPrices_MissingFile(t *testing.T) {
	s := NewSource(map[string]string{"AAPL": filepath.Join(t.TempDir(), "nope.json")}, &fixedPicker{})

	_, err := s.LoadPrices("AAPL")
	require.Error(t, err)
}

func TestLoadPrices_Corrupt(t *testing.T) {
	path := writeDataFile(t, `{"prices":[{"price":`)
	s := NewSource(map[string]string{"AAPL": path}, &fixedPicker{})

	_, err := s.LoadPrices("AAPL")
	require.Error(t, err)
}

func TestLoadPrices_RereadsFile(t *testing.T) {
	path := writeDataFile(t, `{"prices":[{"price":100}]}`)
	s := NewSource(map[string]string{"AAPL": path}, &fixedPicker{})

	prices, err := s.LoadPrices("AAPL")
	require.NoError(t, err)
	require.Len(t, prices, 1)

	require.NoError(t, os.WriteFile(path, []byte(`{"prices":[{"price":100},{"price":200}]}`), 0o644))

	prices, err = s.LoadPrices("AAPL")
	require.NoError(t, err)
	assert.Len(t, prices, 2)
}

func TestSample(t *testing.T) {
	path := writeDataFile(t, `{"prices":[{"price":101.5},{"price":99.25},{"price":100}]}`)
	pick := &fixedPicker{n: 1}
	s := NewSource(map[string]string{"AAPL": path}, pick)

	prices, err := s.LoadPrices("AAPL")
	require.NoError(t, err)

	price, err := s.Sample(prices)
	require.NoError(t, err)
	assert.Equal(t, "99.25", price.String())
}

func TestSample_Empty(t *testing.T) {
	s := NewSource(map[string]string{}, &fixedPicker{})

	_, err := s.Sample(nil)
	require.ErrorIs(t, err, ErrEmptySeries)
}
