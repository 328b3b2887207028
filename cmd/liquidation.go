package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/liquidity"
	"github.com/etnz/liquidity/renderer"
	"github.com/google/subcommands"
)

type liquidationCmd struct {
	maxBarConsumption float64
	capitalBase       float64
	window            int
}

func (*liquidationCmd) Name() string { return "liquidation" }
func (*liquidationCmd) Synopsis() string {
	return "report the worst estimated liquidation day for each ticker"
}
func (*liquidationCmd) Usage() string {
	return `lqa liquidation [-max-bar <fraction>] [-capital <dollars>] [-window <bars>]

  Estimates, for every day and every held ticker, the number of days a full
  exit would have taken under a daily volume participation limit, and
  reports the single worst day per ticker. When a trade log is available,
  also reports the trade days that consumed the largest fraction of the
  daily volume.
`
}

func (c *liquidationCmd) SetFlags(f *flag.FlagSet) {
	f.Float64Var(&c.maxBarConsumption, "max-bar", 0.2, "Max fraction of a daily bar consumed while liquidating")
	f.Float64Var(&c.capitalBase, "capital", 1e6, "Capital base the allocations are scaled to")
	f.IntVar(&c.window, "window", 5, "Trailing window, in bars, of the mean dollar volume")
}

func (c *liquidationCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	positions, err := DecodePositions()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not load positions: %v\n", err)
		return subcommands.ExitFailure
	}
	market, err := DecodeMarketData()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not load market data: %v\n", err)
		return subcommands.ExitFailure
	}

	days := liquidity.DaysToLiquidatePositions(positions, market, liquidity.LiquidationOptions{
		MaxBarConsumption: c.maxBarConsumption,
		CapitalBase:       c.capitalBase,
		MeanVolumeWindow:  c.window,
	})
	worst := liquidity.MaxDaysToLiquidateByTicker(positions, days)

	// The trade log is optional for this report.
	var lowLiq []liquidity.MaxBarConsumption
	if trades, err := DecodeTradeLog(); err == nil {
		lowLiq = liquidity.LowLiquidityTransactions(liquidity.DailyTransactions(trades, market))
	}

	printMarkdown(renderer.LiquidationMarkdown(worst, lowLiq))
	return subcommands.ExitSuccess
}
