package liquidity

import (
	"iter"
	"slices"
	"sort"
)

// Frame is a table of float64 values indexed by date and ticker, the
// working representation for every derived table in this package
// (allocations, dollar volumes, days-to-liquidate).
//
// Cells can hold NaN: an undefined value is data too, and it must
// propagate through arithmetic rather than disappear.
type Frame struct {
	tickers []string // sorted
	columns map[string]*History[float64]
}

// NewFrame returns a new empty frame.
func NewFrame() *Frame {
	return &Frame{columns: make(map[string]*History[float64])}
}

// Set stores a value for (ticker, day), creating the column if needed.
func (f *Frame) Set(ticker string, on Date, v float64) {
	col, ok := f.columns[ticker]
	if !ok {
		col = &History[float64]{}
		f.columns[ticker] = col
		f.tickers = append(f.tickers, ticker)
		sort.Strings(f.tickers)
	}
	col.Append(on, v)
}

// Get returns the value at (ticker, day) and true, or zero and false.
func (f *Frame) Get(ticker string, on Date) (float64, bool) {
	col, ok := f.columns[ticker]
	if !ok {
		return 0, false
	}
	return col.Get(on)
}

// Tickers returns the frame's column names in alphabetical order.
func (f *Frame) Tickers() []string { return slices.Clone(f.tickers) }

// Has returns true if the frame has a column for the given ticker.
func (f *Frame) Has(ticker string) bool {
	_, ok := f.columns[ticker]
	return ok
}

// Column returns the history for a single ticker, or nil.
func (f *Frame) Column(ticker string) *History[float64] { return f.columns[ticker] }

// Without returns a shallow copy of the frame with one column removed.
func (f *Frame) Without(ticker string) *Frame {
	g := NewFrame()
	for _, t := range f.tickers {
		if t == ticker {
			continue
		}
		g.tickers = append(g.tickers, t)
		g.columns[t] = f.columns[t]
	}
	return g
}

// Dates returns an iterator over the union of all column dates, sorted.
func (f *Frame) Dates() iter.Seq[Date] {
	histories := make([]*History[float64], 0, len(f.tickers))
	for _, t := range f.tickers {
		histories = append(histories, f.columns[t])
	}
	return Iterate(histories...)
}
