package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/liquidity"
	"github.com/google/subcommands"
)

type declareCmd struct {
	ticker   string
	isin     string
	mic      string
	id       string
	currency string
}

func (*declareCmd) Name() string     { return "declare" }
func (*declareCmd) Synopsis() string { return "declare a new security in the market data folder" }
func (*declareCmd) Usage() string {
	return `lqa declare -ticker <ticker> -isin <isin> -mic <mic> [-currency <code>]

  Declares a security so that 'lqa fetch' knows what bars to download.
  Without an ISIN the security is private (identified by -id, or the
  ticker itself) and never fetched.
`
}

func (c *declareCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.ticker, "ticker", "", "Ticker of the security in the positions and trade files")
	f.StringVar(&c.isin, "isin", "", "ISIN of the security")
	f.StringVar(&c.mic, "mic", "", "MIC of the exchange the security trades on")
	f.StringVar(&c.id, "id", "", "Private identifier, for securities without an ISIN (at least 7 characters)")
	f.StringVar(&c.currency, "currency", "USD", "Currency the security is priced in")
}

func (c *declareCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.ticker == "" {
		fmt.Fprintln(os.Stderr, "Error: -ticker is required")
		return subcommands.ExitUsageError
	}

	var id liquidity.ID
	var err error
	switch {
	case c.isin != "":
		id, err = liquidity.NewMSSI(c.isin, c.mic)
	case c.id != "":
		id, err = liquidity.NewPrivate(c.id)
	default:
		id, err = liquidity.NewPrivate(c.ticker)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid security id: %v\n", err)
		return subcommands.ExitUsageError
	}

	market, err := DecodeMarketData()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not load market data: %v\n", err)
		return subcommands.ExitFailure
	}
	if market.Has(c.ticker) {
		fmt.Fprintf(os.Stderr, "Error: ticker %q is already declared\n", c.ticker)
		return subcommands.ExitFailure
	}
	market.Add(liquidity.NewSecurity(c.ticker, id, c.currency))

	if err := EncodeMarketData(market); err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not save market data: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Declared %q (%s).\n", c.ticker, id)
	return subcommands.ExitSuccess
}
