package eodhd

import (
	"fmt"
	"log"

	"github.com/etnz/liquidity"
)

// Update tops up the market data with end-of-day bars for every security
// whose id can be resolved on EODHD. For each security it fetches the
// range from the day after its latest known bar up to today; with
// inception it refetches the full history instead.
//
// It returns the number of bars appended.
func Update(apiKey string, m *liquidity.MarketData, inception bool) (int, error) {
	today := liquidity.Today()
	count := 0

	for sec := range m.Securities() {
		if !sec.ID().IsMSSI() {
			// Private ids have no provider listing; skip them silently.
			continue
		}

		from := liquidity.Date{}
		if !inception {
			if last, _ := sec.Volumes().Latest(); !last.IsZero() {
				from = last.Add(1)
			}
		}
		if !from.IsZero() && from.After(today) {
			// empty range, skip it
			continue
		}

		ticker, err := findTicker(apiKey, sec)
		if err != nil {
			log.Println("warning", err)
			continue
		}

		bars, err := fetchBars(apiKey, ticker, from, today)
		if err != nil {
			return count, fmt.Errorf("updating %q: %w", sec.Ticker(), err)
		}
		for _, bar := range bars {
			sec.SetBar(bar.Date, bar.Close.InexactFloat64(), bar.Volume.InexactFloat64())
			count++
		}
	}
	return count, nil
}
