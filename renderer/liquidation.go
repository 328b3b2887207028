package renderer

import (
	"fmt"
	"strings"

	"github.com/etnz/liquidity"
)

// LiquidationMarkdown renders the worst-case liquidation report: for each
// ticker the single day its estimated liquidation time was longest, and
// optionally the lowest-liquidity trade days.
func LiquidationMarkdown(worst []liquidity.WorstLiquidation, lowLiq []liquidity.MaxBarConsumption) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Worst-Case Liquidation\n\n")

	if len(worst) == 0 {
		fmt.Fprintln(&b, "No liquidation estimate available (no volume data).")
	} else {
		fmt.Fprintln(&b, "| Symbol | Date | Allocation | Days to Liquidate |")
		fmt.Fprintln(&b, "|:---|:---|---:|---:|")
		for _, w := range worst {
			fmt.Fprintf(&b, "| %s | %s | %s | %s |\n",
				w.Symbol, w.Date, w.Allocation, num(w.Days, "%.3f"))
		}
	}

	if len(lowLiq) > 0 {
		fmt.Fprintf(&b, "\n## Lowest-Liquidity Trades\n\n")
		fmt.Fprintln(&b, "| Symbol | Date | Max % of Daily Volume Consumed |")
		fmt.Fprintln(&b, "|:---|:---|---:|")
		for _, l := range lowLiq {
			fmt.Fprintf(&b, "| %s | %s | %s |\n",
				l.Symbol, l.Date, num(l.PctBarConsumed*100, "%.2f%%"))
		}
	}
	return b.String()
}
