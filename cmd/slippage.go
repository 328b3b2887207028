package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/etnz/liquidity"
	"github.com/etnz/liquidity/renderer"
	"github.com/google/subcommands"
)

type slippageCmd struct {
	backtestCapital float64
	capitals        string
	impact          float64
}

func (*slippageCmd) Name() string { return "slippage" }
func (*slippageCmd) Synopsis() string {
	return "simulate the strategy's returns net of slippage at larger capital bases"
}
func (*slippageCmd) Usage() string {
	return `lqa slippage [-backtest-capital <dollars>] [-capitals <list>] [-impact <factor>]

  Scales the backtest's trades to each simulated capital base, charges each
  trade a quadratic volume-share slippage penalty, and reports the
  resulting cumulative return per capital base.
`
}

func (c *slippageCmd) SetFlags(f *flag.FlagSet) {
	f.Float64Var(&c.backtestCapital, "backtest-capital", 1e6, "Capital base the backtest was run with")
	f.StringVar(&c.capitals, "capitals", "1e6,1e7,1e8,1e9", "Comma separated list of simulated capital bases")
	f.Float64Var(&c.impact, "impact", 0.1, "Scaling factor of the slippage penalty")
}

func (c *slippageCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	returns, err := DecodeReturns()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not load returns: %v\n", err)
		return subcommands.ExitFailure
	}
	trades, err := DecodeTradeLog()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not load trade log: %v\n", err)
		return subcommands.ExitFailure
	}
	market, err := DecodeMarketData()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not load market data: %v\n", err)
		return subcommands.ExitFailure
	}
	txnDaily := liquidity.DailyTransactions(trades, market)

	rows := make([]renderer.SlippageRow, 0)
	for _, field := range strings.Split(c.capitals, ",") {
		capital, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: invalid capital base %q: %v\n", field, err)
			return subcommands.ExitFailure
		}
		adjusted := liquidity.ApplySlippagePenalty(returns, txnDaily, capital, c.backtestCapital, c.impact)
		_, final := liquidity.CumReturns(adjusted, 1).Latest()
		rows = append(rows, renderer.SlippageRow{
			Capital:   liquidity.M(capital, "USD"),
			CumReturn: liquidity.Percent((final - 1) * 100),
		})
	}

	printMarkdown(renderer.SlippageMarkdown(c.impact, rows))
	return subcommands.ExitSuccess
}
