package main

import (
	"flag"
	"log"
	"math/rand/v2"
	"os"
	"slices"

	"github.com/gamma-omg/paper-trader/internal/chart"
	"github.com/gamma-omg/paper-trader/internal/config"
	"github.com/gamma-omg/paper-trader/internal/feed"
)

// priceplot renders the configured mock price series into a stacked PNG so
// the data files can be sanity checked before a run.
func main() {
	out := flag.String("o", "prices.png", "output png path")
	flag.Parse()

	path := os.Getenv("CONFIG")
	if path == "" {
		path = "config.yaml"
	}

	cfg, err := config.ReadFromFile(path)
	if err != nil {
		log.Fatal(err)
	}

	symbols := make([]string, 0, len(cfg.Data))
	for symbol := range cfg.Data {
		symbols = append(symbols, symbol)
	}
	slices.Sort(symbols)

	src := feed.NewSource(cfg.Data, rand.New(rand.NewPCG(0, 0)))
	c := chart.New(800, 200)

	for _, symbol := range symbols {
		prices, err := src.LoadPrices(symbol)
		if err != nil {
			log.Fatalf("failed to load prices for %s: %v", symbol, err)
		}

		if err := c.AddSeries(symbol, prices); err != nil {
			log.Fatal(err)
		}
	}

	if err := c.Save(*out); err != nil {
		log.Fatal(err)
	}
}
