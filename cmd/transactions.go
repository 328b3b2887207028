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

type transactionsCmd struct{}

func (*transactionsCmd) Name() string { return "transactions" }
func (*transactionsCmd) Synopsis() string {
	return "show the trade log aggregated per day and symbol"
}
func (*transactionsCmd) Usage() string {
	return `lqa transactions

  Nets the trade log into one row per day and symbol, joined with that
  day's closing price and traded volume from the market data folder.
`
}

func (*transactionsCmd) SetFlags(f *flag.FlagSet) {}

func (*transactionsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	printMarkdown(renderer.TransactionsMarkdown(liquidity.DailyTransactions(trades, market)))
	return subcommands.ExitSuccess
}
