package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/liquidity"
	"github.com/etnz/liquidity/eodhd"
	"github.com/google/subcommands"
)

type fetchCmd struct {
	apiKey    string
	inception bool
	today     bool
}

func (*fetchCmd) Name() string     { return "fetch" }
func (*fetchCmd) Synopsis() string { return "download end-of-day bars into the market data folder" }
func (*fetchCmd) Usage() string {
	return `lqa fetch [-key <api-key>] [-inception] [-today]

  Downloads close and volume bars from EODHD for every declared security,
  from the day after its latest known bar. With -today, also tops up
  today's provisional bar from Tradegate intraday data.
`
}

func (c *fetchCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.apiKey, "key", os.Getenv("EODHD_API_KEY"), "EODHD API key (defaults to $EODHD_API_KEY)")
	f.BoolVar(&c.inception, "inception", false, "Fetch the full history instead of resuming from the latest bar")
	f.BoolVar(&c.today, "today", false, "Also fetch today's provisional bar from Tradegate")
}

func (c *fetchCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.apiKey == "" {
		fmt.Fprintln(os.Stderr, "Error: no EODHD API key (use -key or $EODHD_API_KEY)")
		return subcommands.ExitUsageError
	}

	market, err := DecodeMarketData()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not load market data: %v\n", err)
		return subcommands.ExitFailure
	}

	n, err := eodhd.Update(c.apiKey, market, c.inception)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not fetch bars: %v\n", err)
		return subcommands.ExitFailure
	}

	if c.today {
		today := liquidity.Today()
		for sec := range market.Securities() {
			isin, _, err := sec.ID().MSSI()
			if err != nil {
				continue
			}
			price, volume, err := liquidity.TradegateBar(sec.Ticker(), isin)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Warning: no intraday bar for %q: %v\n", sec.Ticker(), err)
				continue
			}
			sec.SetBar(today, price, volume)
			n++
		}
	}

	if err := EncodeMarketData(market); err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not save market data: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Fetched %d bars.\n", n)
	return subcommands.ExitSuccess
}
