package renderer

import (
	"fmt"
	"math"
	"strings"

	"github.com/etnz/liquidity"
)

// CapacityMarkdown renders the per-ticker dollar-volume statistics and the
// derived maximum portfolio sizes.
func CapacityMarkdown(summary []liquidity.TickerCapacity, sizes []liquidity.PortfolioSize) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Capacity Analysis\n\n")

	fmt.Fprintln(&b, "| Ticker | Max Allocation | Mean DV | 10th %ile DV | 90th %ile DV |")
	fmt.Fprintln(&b, "|:---|---:|---:|---:|---:|")
	for _, row := range summary {
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %s |\n",
			row.Ticker,
			liquidity.Percent(row.MaxAllocation*100),
			millions(row.MeanDV), millions(row.P10DV), millions(row.P90DV))
	}

	if len(sizes) > 0 {
		fmt.Fprintf(&b, "\n## Max Portfolio Size\n\n")
		fmt.Fprintln(&b, "| Dollar-Volume Statistic | Max Capacity | Constraining Ticker |")
		fmt.Fprintln(&b, "|:---|---:|:---|")
		for _, s := range sizes {
			ticker := s.ConstrainingTicker
			if ticker == "" {
				ticker = "n/a"
			}
			fmt.Fprintf(&b, "| %s | %s | %s |\n",
				statLabel(s.Statistic), capacity(s.Capacity), ticker)
		}
	}
	return b.String()
}

func statLabel(stat string) string {
	switch stat {
	case "p10":
		return "10th percentile"
	case "p90":
		return "90th percentile"
	default:
		return stat
	}
}

// capacity formats a capacity in dollars as money, or the undefined marker.
func capacity(v float64) string {
	if math.IsNaN(v) {
		return "n/a"
	}
	if math.IsInf(v, 0) {
		return "unbounded"
	}
	return liquidity.M(v, "USD").String()
}
