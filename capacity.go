package liquidity

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// displayUnit is the unit dollar-volume statistics are reported in.
const displayUnit = 1e6

// CapacityOptions controls the dollar-volume capacity analysis.
type CapacityOptions struct {
	// AllDays includes, for each ticker, the volume of days when the
	// ticker was not held. By default only held days enter a ticker's
	// statistics (zero-allocation days are masked out, so the comparison
	// set differs per ticker).
	AllDays bool
	// LastNDays restricts the analysis to the trailing N market days.
	// Zero means the full history.
	LastNDays int
}

// TickerCapacity holds the per-ticker dollar-volume statistics: the
// maximum absolute allocation ever held and the mean, 10th and 90th
// percentile daily dollar volume, in millions, rounded to 2 decimals.
type TickerCapacity struct {
	Ticker        string
	MaxAllocation float64 // max absolute allocation ever held, as a fraction
	MeanDV        float64 // mean daily dollar volume, in millions
	P10DV         float64 // 10th percentile daily dollar volume, in millions
	P90DV         float64 // 90th percentile daily dollar volume, in millions
}

// roundMillions reports a dollar figure in millions, rounded to 2 decimals.
func roundMillions(v float64) float64 {
	return math.Round(v/displayUnit*100) / 100
}

// CapacitySummary computes, for every ticker ever held, its maximum
// absolute allocation and descriptive statistics of its daily dollar
// volume. NaN dollar volumes (missing data) are ignored by the
// statistics; a ticker with no usable volume data reports NaN statistics.
func CapacitySummary(p *Positions, market *MarketData, opts CapacityOptions) []TickerCapacity {
	alloc := PercentAlloc(p).Without(CashColumn)
	dollarVolumes := market.DollarVolumes()

	// Resolve the trailing window over the market calendar.
	var from Date
	if opts.LastNDays > 0 {
		var days []Date
		for on := range dollarVolumes.Dates() {
			days = append(days, on)
		}
		if len(days) > opts.LastNDays {
			from = days[len(days)-opts.LastNDays]
		}
	}

	summary := make([]TickerCapacity, 0, len(alloc.tickers))
	for _, ticker := range alloc.Tickers() {
		row := TickerCapacity{Ticker: ticker}

		for _, a := range alloc.Column(ticker).values {
			if abs := math.Abs(a); !math.IsNaN(abs) && abs > row.MaxAllocation {
				row.MaxAllocation = abs
			}
		}

		var values []float64
		if col := dollarVolumes.Column(ticker); col != nil {
			for on, dv := range col.Values() {
				if !from.IsZero() && on.Before(from) {
					continue
				}
				if !opts.AllDays {
					// Mask out the days the ticker was not held.
					if a, ok := alloc.Get(ticker, on); !ok || a == 0 {
						continue
					}
				}
				if math.IsNaN(dv) {
					continue
				}
				values = append(values, dv)
			}
		}

		if len(values) == 0 {
			row.MeanDV, row.P10DV, row.P90DV = math.NaN(), math.NaN(), math.NaN()
		} else {
			sort.Float64s(values)
			row.MeanDV = roundMillions(stat.Mean(values, nil))
			row.P10DV = roundMillions(stat.Quantile(0.1, stat.LinInterp, values, nil))
			row.P90DV = roundMillions(stat.Quantile(0.9, stat.LinInterp, values, nil))
		}
		summary = append(summary, row)
	}
	return summary
}

// PortfolioSize is the maximum strategy capacity implied by one
// dollar-volume statistic: the smallest capital across tickers at which
// some ticker's position would exceed the daily volume participation cap.
type PortfolioSize struct {
	Statistic          string  // "p10", "mean" or "p90"
	Capacity           float64 // maximum strategy capacity, in dollars
	ConstrainingTicker string
}

// MaxPortfolioSize derives, for each dollar-volume statistic of the
// summary, the maximum strategy size under a daily volume participation
// cap, and which ticker binds it.
//
// Per ticker, capacity = statistic × dailyVolLimit ÷ max allocation; a
// ticker never held (max allocation zero) yields an infinite, undefined
// capacity, never a zero one. The binding constraint is the minimum
// capacity across tickers; NaN capacities are ignored. dailyVolLimit
// defaults to 0.2 when zero.
func MaxPortfolioSize(summary []TickerCapacity, dailyVolLimit float64) []PortfolioSize {
	if dailyVolLimit == 0 {
		dailyVolLimit = 0.2
	}

	stats := []struct {
		name string
		get  func(TickerCapacity) float64
	}{
		{"p10", func(c TickerCapacity) float64 { return c.P10DV }},
		{"mean", func(c TickerCapacity) float64 { return c.MeanDV }},
		{"p90", func(c TickerCapacity) float64 { return c.P90DV }},
	}

	result := make([]PortfolioSize, 0, len(stats))
	for _, s := range stats {
		size := PortfolioSize{Statistic: s.name, Capacity: math.NaN()}
		for _, row := range summary {
			capacity := s.get(row) * displayUnit * dailyVolLimit / row.MaxAllocation
			if math.IsNaN(capacity) {
				continue
			}
			if math.IsNaN(size.Capacity) || capacity < size.Capacity {
				size.Capacity = capacity
				size.ConstrainingTicker = row.Ticker
			}
		}
		result = append(result, size)
	}
	return result
}
