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

type capacityCmd struct {
	allDays  bool
	lastN    int
	volLimit float64
}

func (*capacityCmd) Name() string { return "capacity" }
func (*capacityCmd) Synopsis() string {
	return "report dollar-volume statistics and the maximum portfolio size"
}
func (*capacityCmd) Usage() string {
	return `lqa capacity [-all-days] [-n <days>] [-vol-limit <fraction>]

  Computes, for every ticker ever held, its maximum absolute allocation and
  the mean, 10th and 90th percentile of its daily dollar volume, then
  derives the maximum strategy size under a daily volume participation cap
  and which ticker binds it.
`
}

func (c *capacityCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.allDays, "all-days", false, "Include days the ticker was not held in its statistics")
	f.IntVar(&c.lastN, "n", 0, "Restrict the analysis to the trailing N market days (0 = all)")
	f.Float64Var(&c.volLimit, "vol-limit", 0.2, "Daily volume participation cap")
}

func (c *capacityCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	summary := liquidity.CapacitySummary(positions, market, liquidity.CapacityOptions{
		AllDays:   c.allDays,
		LastNDays: c.lastN,
	})
	sizes := liquidity.MaxPortfolioSize(summary, c.volLimit)

	printMarkdown(renderer.CapacityMarkdown(summary, sizes))
	return subcommands.ExitSuccess
}
