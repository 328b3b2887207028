package liquidity

import (
	"math"
	"strings"
	"testing"
	"time"
)

// testMarket returns a market with one security trading at a constant
// price and volume over the given days.
func testMarket(t *testing.T, ticker string, price, volume float64, days ...Date) *MarketData {
	t.Helper()
	id, err := NewPrivate(ticker + " private")
	if err != nil {
		t.Fatalf("NewPrivate(%q): %v", ticker, err)
	}
	m := NewMarketData()
	sec := m.Add(NewSecurity(ticker, id, "USD"))
	for _, on := range days {
		sec.SetBar(on, price, volume)
	}
	return m
}

func TestDailyTransactions(t *testing.T) {
	on := NewDate(2025, 7, 31)
	market := testMarket(t, "AAPL", 100, 1_000_000, on)

	l := NewTradeLog()
	// two trades the same day, opposite signs: amounts sum in absolute value.
	l.Append(Trade{Time: time.Date(2025, 7, 31, 9, 30, 0, 0, time.UTC), Symbol: "AAPL", Price: Q(100), Amount: Q(300)})
	l.Append(Trade{Time: time.Date(2025, 7, 31, 15, 45, 0, 0, time.UTC), Symbol: "AAPL", Price: Q(101), Amount: Q(-200)})
	// a symbol the market does not know.
	l.Append(Trade{Time: time.Date(2025, 7, 31, 12, 0, 0, 0, time.UTC), Symbol: "ZZZ", Price: Q(1), Amount: Q(10)})

	daily := DailyTransactions(l, market)
	if len(daily) != 2 {
		t.Fatalf("got %d rows, want 2", len(daily))
	}

	aapl := daily[0]
	if aapl.Symbol != "AAPL" || aapl.Date != on {
		t.Fatalf("first row = %v %v, want AAPL 2025-07-31", aapl.Symbol, aapl.Date)
	}
	if aapl.Amount != 500 {
		t.Errorf("AAPL amount = %v, want 500 (sum of absolute shares)", aapl.Amount)
	}
	if aapl.Price != 100 || aapl.Volume != 1_000_000 {
		t.Errorf("AAPL bar = %v %v, want 100 1000000", aapl.Price, aapl.Volume)
	}

	zzz := daily[1]
	if !math.IsNaN(zzz.Price) || !math.IsNaN(zzz.Volume) {
		t.Errorf("unknown symbol bar = %v %v, want NaN NaN", zzz.Price, zzz.Volume)
	}
}

func TestTradeLogRoundTrip(t *testing.T) {
	l := NewTradeLog()
	l.Append(Trade{Time: time.Date(2025, 7, 31, 9, 30, 0, 0, time.UTC), Symbol: "AAPL", Price: Q(101.5), Amount: Q(-200)})

	var b strings.Builder
	if err := EncodeTradeLog(&b, l); err != nil {
		t.Fatalf("EncodeTradeLog: %v", err)
	}
	m, err := DecodeTradeLog(strings.NewReader(b.String()))
	if err != nil {
		t.Fatalf("DecodeTradeLog: %v", err)
	}
	if m.Len() != 1 {
		t.Fatalf("got %d trades, want 1", m.Len())
	}
	for trade := range m.Trades() {
		if trade.Symbol != "AAPL" || trade.Amount.AsFloat() != -200 {
			t.Errorf("decoded trade = %v %v, want AAPL -200", trade.Symbol, trade.Amount)
		}
	}
}
