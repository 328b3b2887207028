package liquidity

import (
	"math"
	"sort"
)

// LiquidationOptions controls the days-to-liquidate estimation. The zero
// value of a field means its default.
type LiquidationOptions struct {
	// MaxBarConsumption is the max proportion of a daily bar that can be
	// consumed in the process of liquidating a position. Default 0.2.
	MaxBarConsumption float64
	// CapitalBase is multiplied by portfolio allocation to compute the
	// position value that needs liquidating. Default 1e6.
	CapitalBase float64
	// MeanVolumeWindow is the trailing window, in observed bars, of the
	// mean dollar volume calculation. Default 5.
	MeanVolumeWindow int
}

func (o LiquidationOptions) withDefaults() LiquidationOptions {
	if o.MaxBarConsumption == 0 {
		o.MaxBarConsumption = 0.2
	}
	if o.CapitalBase == 0 {
		o.CapitalBase = 1e6
	}
	if o.MeanVolumeWindow == 0 {
		o.MeanVolumeWindow = 5
	}
	return o
}

// rollingMean returns the trailing mean of the series over the given
// window of observations. The first window-1 entries are NaN: there is no
// backward fill. NaN inputs poison every window they appear in.
func rollingMean(h *History[float64], window int) *History[float64] {
	out := &History[float64]{}
	if h == nil {
		return out
	}
	values := make([]float64, 0, h.Len())
	for on, v := range h.Values() {
		values = append(values, v)
		if len(values) < window {
			out.Append(on, math.NaN())
			continue
		}
		var sum float64
		for _, x := range values[len(values)-window:] {
			sum += x
		}
		out.Append(on, sum/float64(window))
	}
	return out
}

// DaysToLiquidatePositions computes the number of days that would have
// been required to fully liquidate each position on each day, based on the
// trailing mean daily dollar volume and a limit on the proportion of a
// daily bar that may be consumed.
//
// The estimate uses portfolio allocations scaled by a fixed capital base
// rather than the dollar values in the positions table: a constant
// notional removes the effect of compounding when comparing capacity
// across time.
//
// Cells are NaN wherever volume data is missing or the rolling window has
// insufficient history.
func DaysToLiquidatePositions(p *Positions, market *MarketData, opts LiquidationOptions) *Frame {
	opts = opts.withDefaults()

	dollarVolumes := market.DollarVolumes()
	alloc := PercentAlloc(p).Without(CashColumn)

	days := NewFrame()
	for _, ticker := range alloc.Tickers() {
		roll := rollingMean(dollarVolumes.Column(ticker), opts.MeanVolumeWindow)
		for on, a := range alloc.Column(ticker).Values() {
			rdv, ok := roll.Get(on)
			if !ok {
				days.Set(ticker, on, math.NaN())
				continue
			}
			days.Set(ticker, on, (a*opts.CapitalBase)/(opts.MaxBarConsumption*rdv))
		}
	}
	return days
}

// WorstLiquidation is, for one ticker, the day its estimated liquidation
// time was the longest.
type WorstLiquidation struct {
	Symbol     string
	Date       Date
	Allocation Percent // portfolio allocation on that day
	Days       float64 // days to liquidate
}

// MaxDaysToLiquidateByTicker reduces a days-to-liquidate table to the
// single worst day per ticker. Ties break to the earliest date. Tickers
// whose liquidation column is entirely NaN are dropped. The result is
// sorted by symbol.
func MaxDaysToLiquidateByTicker(p *Positions, days *Frame) []WorstLiquidation {
	alloc := PercentAlloc(p).Without(CashColumn)

	worst := make([]WorstLiquidation, 0, len(days.tickers))
	for _, ticker := range days.Tickers() {
		var best WorstLiquidation
		found := false
		for on, d := range days.Column(ticker).Values() {
			if math.IsNaN(d) {
				continue
			}
			if !found || d > best.Days {
				best = WorstLiquidation{Symbol: ticker, Date: on, Days: d}
				found = true
			}
		}
		if !found {
			continue
		}
		a, ok := alloc.Get(ticker, best.Date)
		if !ok {
			a = math.NaN()
		}
		best.Allocation = Percent(a * 100)
		worst = append(worst, best)
	}
	return worst
}

// MaxBarConsumption is, for one symbol, the trade day that consumed the
// largest fraction of that day's total volume.
type MaxBarConsumption struct {
	Symbol         string
	Date           Date
	PctBarConsumed float64 // traded amount ÷ daily volume, as a fraction
}

// LowLiquidityTransactions finds, for each symbol of the daily transaction
// aggregate, the trade day consuming the largest fraction of that day's
// volume. Ties break to the earliest date. Symbols whose consumed
// fractions are all NaN are dropped. The result is sorted by symbol.
func LowLiquidityTransactions(txnDaily []DailyTxn) []MaxBarConsumption {
	best := make(map[string]MaxBarConsumption)
	order := make([]string, 0)
	for _, txn := range txnDaily {
		frac := txn.Amount / txn.Volume
		if math.IsNaN(frac) {
			continue
		}
		b, ok := best[txn.Symbol]
		if !ok {
			order = append(order, txn.Symbol)
		}
		// txnDaily is date-sorted, so a strict > keeps the earliest tie.
		if !ok || frac > b.PctBarConsumed {
			best[txn.Symbol] = MaxBarConsumption{Symbol: txn.Symbol, Date: txn.Date, PctBarConsumed: frac}
		}
	}

	result := make([]MaxBarConsumption, 0, len(best))
	for _, symbol := range order {
		result = append(result, best[symbol])
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Symbol < result[j].Symbol })
	return result
}
