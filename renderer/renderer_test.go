package renderer

import (
	"math"
	"strings"
	"testing"

	"github.com/etnz/liquidity"
)

func TestLiquidationMarkdown(t *testing.T) {
	worst := []liquidity.WorstLiquidation{
		{Symbol: "AAPL", Date: liquidity.NewDate(2025, 7, 31), Allocation: liquidity.Percent(20), Days: 0.002},
	}
	lowLiq := []liquidity.MaxBarConsumption{
		{Symbol: "AAPL", Date: liquidity.NewDate(2025, 7, 30), PctBarConsumed: 0.5},
	}

	md := LiquidationMarkdown(worst, lowLiq)
	for _, want := range []string{"AAPL", "2025-07-31", "0.002"} {
		if !strings.Contains(md, want) {
			t.Errorf("report does not mention %q:\n%s", want, md)
		}
	}
}

func TestCapacityMarkdownUndefined(t *testing.T) {
	summary := []liquidity.TickerCapacity{
		{Ticker: "AAPL", MaxAllocation: 0.2, MeanDV: math.NaN(), P10DV: math.NaN(), P90DV: math.NaN()},
	}
	sizes := []liquidity.PortfolioSize{
		{Statistic: "mean", Capacity: math.Inf(1), ConstrainingTicker: "AAPL"},
		{Statistic: "p10", Capacity: math.NaN()},
	}

	md := CapacityMarkdown(summary, sizes)
	if !strings.Contains(md, "n/a") {
		t.Errorf("NaN statistics should render as n/a:\n%s", md)
	}
	if !strings.Contains(md, "unbounded") {
		t.Errorf("infinite capacity should render as unbounded:\n%s", md)
	}
}

func TestSlippageMarkdown(t *testing.T) {
	rows := []SlippageRow{
		{Capital: liquidity.M(1e6, "USD"), CumReturn: liquidity.Percent(12.34)},
		{Capital: liquidity.M(1e8, "USD"), CumReturn: liquidity.Percent(-5)},
	}
	md := SlippageMarkdown(0.1, rows)
	for _, want := range []string{"+12.34%", "-5.00%"} {
		if !strings.Contains(md, want) {
			t.Errorf("report does not mention %q:\n%s", want, md)
		}
	}
}
