package liquidity

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"iter"
	"math"
	"os"
	"sort"
	"time"
)

// Trade is one executed trade of the backtested strategy. Amount is a
// signed number of shares: positive buys, negative sells. Timestamps may
// carry sub-day precision; all analytics collapse them to calendar days.
type Trade struct {
	Time   time.Time
	Symbol string
	Price  Quantity
	Amount Quantity
}

// TradeLog is the chronological record of all executed trades.
type TradeLog struct {
	trades []Trade
}

// NewTradeLog returns a new empty trade log.
func NewTradeLog() *TradeLog { return &TradeLog{} }

// Append adds a trade to the log, keeping it chronologically sorted.
func (l *TradeLog) Append(t Trade) *TradeLog {
	l.trades = append(l.trades, t)
	sort.SliceStable(l.trades, func(i, j int) bool { return l.trades[i].Time.Before(l.trades[j].Time) })
	return l
}

// Len returns the number of trades in the log.
func (l *TradeLog) Len() int { return len(l.trades) }

// Trades iterates over all trades in chronological order.
func (l *TradeLog) Trades() iter.Seq[Trade] {
	return func(yield func(Trade) bool) {
		for _, t := range l.trades {
			if !yield(t) {
				return
			}
		}
	}
}

// jtrade is one row of the transactions JSONL file.
type jtrade struct {
	Time   time.Time `json:"time"`
	Symbol string    `json:"symbol"`
	Price  Quantity  `json:"price"`
	Amount Quantity  `json:"amount"`
}

// DecodeTradeLog reads a trade log from its JSONL form, one trade per line.
func DecodeTradeLog(r io.Reader) (*TradeLog, error) {
	l := NewTradeLog()
	scanner := bufio.NewScanner(r)
	n := 0
	for scanner.Scan() {
		n++
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		var jt jtrade
		if err := json.Unmarshal(line, &jt); err != nil {
			return nil, fmt.Errorf("format error on line %d: %w", n, err)
		}
		l.Append(Trade(jt))
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return l, nil
}

// EncodeTrade appends a single trade in its JSONL form.
func EncodeTrade(w io.Writer, t Trade) error {
	return json.NewEncoder(w).Encode(jtrade(t))
}

// EncodeTradeLog writes a whole trade log in its JSONL form.
func EncodeTradeLog(w io.Writer, l *TradeLog) error {
	for t := range l.Trades() {
		if err := EncodeTrade(w, t); err != nil {
			return err
		}
	}
	return nil
}

// DecodeTradeLogFile reads a trade log from a JSONL file.
func DecodeTradeLogFile(filename string) (*TradeLog, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	l, err := DecodeTradeLog(f)
	if err != nil {
		return nil, fmt.Errorf("reading %q: %w", filename, err)
	}
	return l, nil
}

// DailyTxn is one row of the daily transaction aggregate: the summed
// absolute traded shares of one symbol on one calendar day, joined with
// that day's close price and total share volume. Price and Volume are NaN
// when the market data has no bar for that (symbol, day).
type DailyTxn struct {
	Date   Date
	Symbol string
	Amount float64
	Price  float64
	Volume float64
}

// DailyTransactions sums the absolute traded shares per (symbol, calendar
// day) and joins the close price and daily volume for each pair. Sub-day
// timestamps are discarded by truncation to daily granularity. The result
// is sorted by date, then symbol.
func DailyTransactions(l *TradeLog, market *MarketData) []DailyTxn {
	type key struct {
		on     Date
		symbol string
	}
	sums := make(map[key]float64)
	for t := range l.Trades() {
		k := key{DateOf(t.Time), t.Symbol}
		sums[k] += t.Amount.Abs().AsFloat()
	}

	daily := make([]DailyTxn, 0, len(sums))
	for k, amount := range sums {
		row := DailyTxn{Date: k.on, Symbol: k.symbol, Amount: amount, Price: math.NaN(), Volume: math.NaN()}
		if p, ok := market.Price(k.symbol, k.on); ok {
			row.Price = p
		}
		if v, ok := market.Volume(k.symbol, k.on); ok {
			row.Volume = v
		}
		daily = append(daily, row)
	}
	sort.Slice(daily, func(i, j int) bool {
		if daily[i].Date != daily[j].Date {
			return daily[i].Date.Before(daily[j].Date)
		}
		return daily[i].Symbol < daily[j].Symbol
	})
	return daily
}
