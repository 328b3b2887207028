package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/liquidity/agent"
	"github.com/google/subcommands"
	"google.golang.org/genai"
)

type assistCmd struct{}

func (*assistCmd) Name() string     { return "assist" }
func (*assistCmd) Synopsis() string { return "chat with an assistant that can run the reports" }
func (*assistCmd) Usage() string {
	return `lqa assist [<prompt>...]

  Starts an interactive assistant with access to the liquidation and
  capacity reports of the current data files. Arguments are submitted as
  the first prompts. Requires $GEMINI_API_KEY.
`
}

func (*assistCmd) SetFlags(f *flag.FlagSet) {}

func (*assistCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not create genai client: %v\n", err)
		return subcommands.ExitFailure
	}

	data := agent.Data{
		PositionsFile:    *positionsFile,
		TransactionsFile: *transactionsFile,
		MarketPath:       *marketPath,
	}
	a := agent.New(os.Stdout, os.Stdin, agent.NewAnalyst(data), agent.NewResearcher())

	if err := a.Run(ctx, client, f.Args()...); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
