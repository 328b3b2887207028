package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/etnz/liquidity/eodhd"
	"github.com/google/subcommands"
)

type searchCmd struct {
	apiKey string
}

func (*searchCmd) Name() string     { return "search" }
func (*searchCmd) Synopsis() string { return "search EODHD for a security by name, ticker or ISIN" }
func (*searchCmd) Usage() string {
	return `lqa search [-key <api-key>] <query>

  Searches the EODHD database and prints the matching listings with their
  ISIN and MIC, ready to be passed to 'lqa declare'.
`
}

func (c *searchCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.apiKey, "key", os.Getenv("EODHD_API_KEY"), "EODHD API key (defaults to $EODHD_API_KEY)")
}

func (c *searchCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "Error: missing search query")
		return subcommands.ExitUsageError
	}
	if c.apiKey == "" {
		fmt.Fprintln(os.Stderr, "Error: no EODHD API key (use -key or $EODHD_API_KEY)")
		return subcommands.ExitUsageError
	}

	results, err := eodhd.Search(c.apiKey, strings.Join(f.Args(), " "))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: search failed: %v\n", err)
		return subcommands.ExitFailure
	}

	var b strings.Builder
	fmt.Fprintln(&b, "| Code | Name | ISIN | MIC | Currency |")
	fmt.Fprintln(&b, "|:---|:---|:---|:---|:---|")
	for _, r := range results {
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %s |\n", r.Code, r.Name, r.ISIN, r.MIC, r.Currency)
	}
	printMarkdown(b.String())
	return subcommands.ExitSuccess
}
