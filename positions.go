package liquidity

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"iter"
	"os"
)

// CashColumn is the name of the cash column in a positions table and in
// the allocation frame returned by PercentAlloc. Per-ticker consumers must
// drop it before doing per-ticker math.
const CashColumn = "cash"

// Positions holds the daily dollar value of every held ticker plus cash,
// one row per trading day.
type Positions struct {
	frame *Frame // per-ticker dollar values
	cash  History[float64]
}

// NewPositions returns a new empty positions table.
func NewPositions() *Positions {
	return &Positions{frame: NewFrame()}
}

// Set records the dollar value held in a ticker on a day.
func (p *Positions) Set(ticker string, on Date, value float64) {
	p.frame.Set(ticker, on, value)
}

// SetCash records the cash balance on a day.
func (p *Positions) SetCash(on Date, value float64) {
	p.cash.Append(on, value)
}

// Value returns the dollar value held in a ticker on a day.
func (p *Positions) Value(ticker string, on Date) (float64, bool) {
	return p.frame.Get(ticker, on)
}

// Cash returns the cash balance on a day.
func (p *Positions) Cash(on Date) (float64, bool) { return p.cash.Get(on) }

// Tickers returns the held tickers in alphabetical order, cash excluded.
func (p *Positions) Tickers() []string { return p.frame.Tickers() }

// Dates returns an iterator over every day the table has a row for,
// including cash-only days.
func (p *Positions) Dates() iter.Seq[Date] {
	histories := make([]*History[float64], 0, len(p.frame.tickers)+1)
	for _, t := range p.frame.tickers {
		histories = append(histories, p.frame.columns[t])
	}
	histories = append(histories, &p.cash)
	return Iterate(histories...)
}

// Total returns the total portfolio value on a day: the sum of all held
// ticker values plus cash. Tickers with no value that day contribute
// nothing.
func (p *Positions) Total(on Date) float64 {
	var total float64
	for _, t := range p.frame.tickers {
		if v, ok := p.frame.Get(t, on); ok {
			total += v
		}
	}
	if c, ok := p.cash.Get(on); ok {
		total += c
	}
	return total
}

// PercentAlloc converts dollar positions to fractional allocations per day.
// The denominator is the full row total including cash, and the returned
// frame carries a CashColumn column: callers doing per-ticker math must
// drop it (Frame.Without).
//
// A zero row total makes the allocations ±Inf or NaN; undefined propagates.
func PercentAlloc(p *Positions) *Frame {
	f := NewFrame()
	for on := range p.Dates() {
		total := p.Total(on)
		for _, t := range p.frame.tickers {
			if v, ok := p.frame.Get(t, on); ok {
				f.Set(t, on, v/total)
			}
		}
		if c, ok := p.cash.Get(on); ok {
			f.Set(CashColumn, on, c/total)
		}
	}
	return f
}

// jposition is one row of the positions JSONL file.
type jposition struct {
	On        Date               `json:"on"`
	Cash      float64            `json:"cash"`
	Positions map[string]float64 `json:"positions,omitempty"`
}

// DecodePositions reads a positions table from its JSONL form, one day per line.
func DecodePositions(r io.Reader) (*Positions, error) {
	p := NewPositions()
	scanner := bufio.NewScanner(r)
	n := 0
	for scanner.Scan() {
		n++
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		var jp jposition
		if err := json.Unmarshal(line, &jp); err != nil {
			return nil, fmt.Errorf("format error on line %d: %w", n, err)
		}
		p.SetCash(jp.On, jp.Cash)
		for ticker, value := range jp.Positions {
			p.Set(ticker, jp.On, value)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return p, nil
}

// EncodePositions writes a positions table in its JSONL form.
func EncodePositions(w io.Writer, p *Positions) error {
	enc := json.NewEncoder(w)
	for on := range p.Dates() {
		jp := jposition{On: on, Positions: make(map[string]float64)}
		if c, ok := p.cash.Get(on); ok {
			jp.Cash = c
		}
		for _, t := range p.frame.tickers {
			if v, ok := p.frame.Get(t, on); ok {
				jp.Positions[t] = v
			}
		}
		if err := enc.Encode(jp); err != nil {
			return err
		}
	}
	return nil
}

// DecodePositionsFile reads a positions table from a JSONL file.
func DecodePositionsFile(filename string) (*Positions, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	p, err := DecodePositions(f)
	if err != nil {
		return nil, fmt.Errorf("reading %q: %w", filename, err)
	}
	return p, nil
}
