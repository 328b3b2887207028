// Command lqa analyzes the liquidity and capacity of a trading strategy
// from its daily positions, returns and trade log.
package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/etnz/liquidity/cmd"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

func main() {
	// Shell completion: when invoked by the completion hooks this call
	// prints candidates and exits.
	sub := make(map[string]*complete.Command)
	for _, c := range cmd.Commands {
		sub[c.Name()] = &complete.Command{}
	}
	completer := &complete.Command{
		Sub: sub,
		Flags: map[string]complete.Predictor{
			"market-path":       predict.Dirs("*"),
			"positions-file":    predict.Files("*.jsonl"),
			"returns-file":      predict.Files("*.jsonl"),
			"transactions-file": predict.Files("*.jsonl"),
		},
	}
	completer.Complete(path.Base(os.Args[0]))

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))

	for _, c := range cmd.Commands {
		commander.Register(c, "")
	}
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
