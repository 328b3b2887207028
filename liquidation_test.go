package liquidity

import (
	"math"
	"testing"
)

func TestDaysToLiquidatePositions(t *testing.T) {
	// $200k of AAPL in a $1M portfolio, constant $50M daily dollar volume:
	// (0.2 × 1e6) / (0.2 × 50e6) = 0.002 days.
	on := NewDate(2025, 7, 31)
	market := testMarket(t, "AAPL", 100, 500_000, on)

	p := NewPositions()
	p.Set("AAPL", on, 200_000)
	p.SetCash(on, 800_000)

	days := DaysToLiquidatePositions(p, market, LiquidationOptions{MeanVolumeWindow: 1})
	if d, _ := days.Get("AAPL", on); math.Abs(d-0.002) > 1e-12 {
		t.Errorf("days to liquidate = %v, want 0.002", d)
	}
}

func TestDaysToLiquidateInsufficientHistory(t *testing.T) {
	on := NewDate(2025, 7, 31)
	market := testMarket(t, "AAPL", 100, 500_000, on)

	p := NewPositions()
	p.Set("AAPL", on, 200_000)
	p.SetCash(on, 800_000)

	// default window is 5 bars, there is only one.
	days := DaysToLiquidatePositions(p, market, LiquidationOptions{})
	if d, _ := days.Get("AAPL", on); !math.IsNaN(d) {
		t.Errorf("days with a short window = %v, want NaN", d)
	}
}

func TestRollingMean(t *testing.T) {
	h := &History[float64]{}
	h.Append(NewDate(2025, 7, 29), 1)
	h.Append(NewDate(2025, 7, 30), 2)
	h.Append(NewDate(2025, 7, 31), 3)

	roll := rollingMean(h, 2)
	if v, _ := roll.Get(NewDate(2025, 7, 29)); !math.IsNaN(v) {
		t.Errorf("first value = %v, want NaN (window not full)", v)
	}
	if v, _ := roll.Get(NewDate(2025, 7, 30)); v != 1.5 {
		t.Errorf("second value = %v, want 1.5", v)
	}
	if v, _ := roll.Get(NewDate(2025, 7, 31)); v != 2.5 {
		t.Errorf("third value = %v, want 2.5", v)
	}
}

func TestMaxDaysToLiquidateByTicker(t *testing.T) {
	d1, d2, d3 := NewDate(2025, 7, 29), NewDate(2025, 7, 30), NewDate(2025, 7, 31)

	p := NewPositions()
	for _, on := range []Date{d1, d2, d3} {
		p.Set("AAPL", on, 500_000)
		p.SetCash(on, 500_000)
	}

	days := NewFrame()
	days.Set("AAPL", d1, 1.0)
	days.Set("AAPL", d2, 4.0)
	days.Set("AAPL", d3, 4.0) // tie with d2: earliest wins
	days.Set("ZZZ", d1, math.NaN())

	worst := MaxDaysToLiquidateByTicker(p, days)
	if len(worst) != 1 {
		t.Fatalf("got %d rows, want 1 (all-NaN tickers dropped)", len(worst))
	}
	w := worst[0]
	if w.Symbol != "AAPL" || w.Days != 4.0 {
		t.Errorf("worst = %v %v, want AAPL 4", w.Symbol, w.Days)
	}
	if w.Date != d2 {
		t.Errorf("tie broke to %v, want earliest %v", w.Date, d2)
	}
	if !w.Allocation.Equal(Percent(50)) {
		t.Errorf("allocation = %v, want 50%%", w.Allocation)
	}
}

func TestLowLiquidityTransactions(t *testing.T) {
	d1, d2 := NewDate(2025, 7, 30), NewDate(2025, 7, 31)
	txnDaily := []DailyTxn{
		{Date: d1, Symbol: "AAPL", Amount: 100, Volume: 1000},
		{Date: d2, Symbol: "AAPL", Amount: 500, Volume: 1000},
		{Date: d1, Symbol: "MSFT", Amount: 10, Volume: math.NaN()},
	}

	lowLiq := LowLiquidityTransactions(txnDaily)
	if len(lowLiq) != 1 {
		t.Fatalf("got %d rows, want 1 (all-NaN symbols dropped)", len(lowLiq))
	}
	if b := lowLiq[0]; b.Symbol != "AAPL" || b.Date != d2 || b.PctBarConsumed != 0.5 {
		t.Errorf("max consumption = %+v, want AAPL 2025-07-31 0.5", b)
	}
}
