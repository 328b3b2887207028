package renderer

import (
	"fmt"
	"strings"

	"github.com/etnz/liquidity"
)

// TransactionsMarkdown renders the daily transaction aggregate, one row
// per day and symbol, with the market bar of that day.
func TransactionsMarkdown(txnDaily []liquidity.DailyTxn) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Daily Transactions\n\n")
	fmt.Fprintln(&b, "| Date | Symbol | Net Amount | Close | Volume |")
	fmt.Fprintln(&b, "|:---|:---|---:|---:|---:|")
	for _, txn := range txnDaily {
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %s |\n",
			txn.Date, txn.Symbol,
			num(txn.Amount, "%.0f"), num(txn.Price, "%.2f"), num(txn.Volume, "%.0f"))
	}
	return b.String()
}
