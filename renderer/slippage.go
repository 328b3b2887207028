package renderer

import (
	"fmt"
	"strings"

	"github.com/etnz/liquidity"
)

// SlippageRow is one line of the capital sweep: the performance of the
// strategy once its trades are scaled to a capital base and charged the
// volume-share slippage penalty.
type SlippageRow struct {
	Capital   liquidity.Money
	CumReturn liquidity.Percent // cumulative return over the full series
}

// SlippageMarkdown renders the slippage-adjusted performance of the
// strategy across a sweep of capital bases.
func SlippageMarkdown(impact float64, rows []SlippageRow) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Slippage Sweep (impact %.2f)\n\n", impact)
	fmt.Fprintln(&b, "| Simulated Capital | Adjusted Cumulative Return |")
	fmt.Fprintln(&b, "|---:|---:|")
	for _, row := range rows {
		fmt.Fprintf(&b, "| %s | %s |\n", row.Capital, row.CumReturn.SignedString())
	}
	return b.String()
}
