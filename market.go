package liquidity

import (
	"iter"
	"math"
)

// MarketData holds daily close price and share volume for a set of securities.
type MarketData struct {
	securities []*Security
	index      map[string]*Security
}

// NewMarketData returns a new empty market data collection.
func NewMarketData() *MarketData {
	return &MarketData{
		securities: make([]*Security, 0),
		index:      make(map[string]*Security),
	}
}

// Add inserts a security in the collection. Re-adding an existing ticker
// returns the already known one.
func (m *MarketData) Add(sec Security) *Security {
	if known, ok := m.index[sec.ticker]; ok {
		return known
	}
	s := &sec
	m.securities = append(m.securities, s)
	m.index[sec.ticker] = s
	return s
}

func (m *MarketData) Has(ticker string) bool {
	_, ok := m.index[ticker]
	return ok
}

func (m *MarketData) Get(ticker string) *Security { return m.index[ticker] }

// Len returns the number of securities.
func (m *MarketData) Len() int { return len(m.securities) }

// Securities iterates over all securities in insertion order.
func (m *MarketData) Securities() iter.Seq[*Security] {
	return func(yield func(*Security) bool) {
		for _, s := range m.securities {
			if !yield(s) {
				return
			}
		}
	}
}

// Price reads the close price for a given (ticker, day).
func (m *MarketData) Price(ticker string, on Date) (float64, bool) {
	sec, ok := m.index[ticker]
	if !ok {
		return 0, false
	}
	return sec.prices.Get(on)
}

// Volume reads the daily share volume for a given (ticker, day).
func (m *MarketData) Volume(ticker string, on Date) (float64, bool) {
	sec, ok := m.index[ticker]
	if !ok {
		return 0, false
	}
	return sec.volumes.Get(on)
}

// DollarVolume returns volume × close for a given (ticker, day), or NaN
// when either leg is missing.
func (m *MarketData) DollarVolume(ticker string, on Date) float64 {
	price, okp := m.Price(ticker, on)
	volume, okv := m.Volume(ticker, on)
	if !okp || !okv {
		return math.NaN()
	}
	return price * volume
}

// DollarVolumes returns the date × ticker table of daily dollar volumes
// for every security in the collection.
func (m *MarketData) DollarVolumes() *Frame {
	f := NewFrame()
	for _, sec := range m.securities {
		for on, volume := range sec.volumes.Values() {
			price, ok := sec.prices.Get(on)
			if !ok {
				f.Set(sec.ticker, on, math.NaN())
				continue
			}
			f.Set(sec.ticker, on, price*volume)
		}
	}
	return f
}
