package liquidity

import (
	"math"
	"testing"
)

func TestCapacitySummary(t *testing.T) {
	d1, d2, d3 := NewDate(2025, 7, 29), NewDate(2025, 7, 30), NewDate(2025, 7, 31)
	market := testMarket(t, "AAPL", 100, 500_000, d1, d2, d3) // $50M dollar volume per day

	p := NewPositions()
	for _, on := range []Date{d1, d2, d3} {
		p.Set("AAPL", on, 200_000)
		p.SetCash(on, 800_000)
	}

	summary := CapacitySummary(p, market, CapacityOptions{})
	if len(summary) != 1 {
		t.Fatalf("got %d rows, want 1", len(summary))
	}
	row := summary[0]
	if row.Ticker != "AAPL" || row.MaxAllocation != 0.2 {
		t.Errorf("row = %v %v, want AAPL 0.2", row.Ticker, row.MaxAllocation)
	}
	// constant volume: all statistics collapse to $50M, reported in millions.
	if row.MeanDV != 50 || row.P10DV != 50 || row.P90DV != 50 {
		t.Errorf("statistics = %v %v %v, want 50 50 50", row.MeanDV, row.P10DV, row.P90DV)
	}
}

func TestCapacitySummaryPercentileOrder(t *testing.T) {
	p := NewPositions()
	market := NewMarketData()
	id, _ := NewPrivate("AAPL private")
	sec := market.Add(NewSecurity("AAPL", id, "USD"))
	for i := range 20 {
		on := NewDate(2025, 7, 1).Add(i)
		sec.SetBar(on, 100, float64(100_000+i*10_000))
		p.Set("AAPL", on, 100_000)
		p.SetCash(on, 100_000)
	}

	row := CapacitySummary(p, market, CapacityOptions{})[0]
	if !(row.P10DV <= row.MeanDV && row.MeanDV <= row.P90DV) {
		t.Errorf("want p10 ≤ mean ≤ p90, got %v %v %v", row.P10DV, row.MeanDV, row.P90DV)
	}
}

func TestCapacitySummaryMasksUnheldDays(t *testing.T) {
	d1, d2 := NewDate(2025, 7, 30), NewDate(2025, 7, 31)
	market := NewMarketData()
	id, _ := NewPrivate("AAPL private")
	sec := market.Add(NewSecurity("AAPL", id, "USD"))
	sec.SetBar(d1, 100, 100)    // $10k, ticker not held
	sec.SetBar(d2, 100, 10_000) // $1M, ticker held

	p := NewPositions()
	p.SetCash(d1, 1e6)
	p.Set("AAPL", d2, 500_000)
	p.SetCash(d2, 500_000)

	held := CapacitySummary(p, market, CapacityOptions{})[0]
	if held.MeanDV != 1 {
		t.Errorf("held-days mean = %v, want 1 ($1M)", held.MeanDV)
	}
	all := CapacitySummary(p, market, CapacityOptions{AllDays: true})[0]
	if all.MeanDV >= held.MeanDV {
		t.Errorf("all-days mean %v should be below held-days mean %v", all.MeanDV, held.MeanDV)
	}
}

func TestRoundMillions(t *testing.T) {
	data := []struct{ in, want float64 }{
		{50_000_000, 50},
		{1_234_567, 1.23},
		{1_235_000, 1.24},
	}
	for _, d := range data {
		if got := roundMillions(d.in); got != d.want {
			t.Errorf("roundMillions(%v) = %v, want %v", d.in, got, d.want)
		}
	}
}

func TestMaxPortfolioSize(t *testing.T) {
	summary := []TickerCapacity{
		{Ticker: "AAPL", MaxAllocation: 0.2, MeanDV: 50, P10DV: 40, P90DV: 60},
		{Ticker: "TINY", MaxAllocation: 0.1, MeanDV: 1, P10DV: 1, P90DV: 1},
	}

	sizes := MaxPortfolioSize(summary, 0.2)
	if len(sizes) != 3 {
		t.Fatalf("got %d statistics, want 3", len(sizes))
	}
	for _, s := range sizes {
		if s.ConstrainingTicker != "TINY" {
			t.Errorf("statistic %q constrained by %q, want TINY", s.Statistic, s.ConstrainingTicker)
		}
	}
	// mean: 1e6 × 0.2 / 0.1 = $2M.
	for _, s := range sizes {
		if s.Statistic == "mean" && s.Capacity != 2e6 {
			t.Errorf("mean capacity = %v, want 2e6", s.Capacity)
		}
	}
}

func TestMaxPortfolioSizeNeverHeld(t *testing.T) {
	// a ticker never held caps nothing: infinite capacity, not zero.
	summary := []TickerCapacity{{Ticker: "AAPL", MaxAllocation: 0, MeanDV: 50, P10DV: 40, P90DV: 60}}
	for _, s := range MaxPortfolioSize(summary, 0.2) {
		if !math.IsInf(s.Capacity, 1) {
			t.Errorf("statistic %q capacity = %v, want +Inf", s.Statistic, s.Capacity)
		}
	}
}
