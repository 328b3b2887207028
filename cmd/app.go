// Package cmd implements the CLI application to analyze a strategy's liquidity.
package cmd

import (
	"flag"

	"github.com/etnz/liquidity"
	"github.com/google/subcommands"
)

// Commands lists every subcommand of the application.
// A main package registers them all and Execute()s the user-selected one.
var Commands = []subcommands.Command{
	&liquidationCmd{},
	&capacityCmd{},
	&slippageCmd{},
	&transactionsCmd{},
	&declareCmd{},
	&fetchCmd{},
	&searchCmd{},
	&topicCmd{},
	&assistCmd{},
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var marketPath = flag.String("market-path", ".marketdata", "Path to the market data folder")
var positionsFile = flag.String("positions-file", "positions.jsonl", "Path to the daily positions file (JSONL format)")
var returnsFile = flag.String("returns-file", "returns.jsonl", "Path to the daily returns file (JSONL format)")
var transactionsFile = flag.String("transactions-file", "transactions.jsonl", "Path to the trade log file (JSONL format)")

// DecodeMarketData decodes market data from the app market path folder.
func DecodeMarketData() (*liquidity.MarketData, error) {
	return liquidity.DecodeMarketData(*marketPath)
}

// EncodeMarketData encodes market data into the app market path folder.
func EncodeMarketData(m *liquidity.MarketData) error {
	return liquidity.EncodeMarketData(*marketPath, m)
}

// DecodePositions decodes the daily positions table from the app positions file.
func DecodePositions() (*liquidity.Positions, error) {
	return liquidity.DecodePositionsFile(*positionsFile)
}

// DecodeReturns decodes the daily return series from the app returns file.
func DecodeReturns() (*liquidity.Returns, error) {
	return liquidity.DecodeReturnsFile(*returnsFile)
}

// DecodeTradeLog decodes the trade log from the app transactions file.
func DecodeTradeLog() (*liquidity.TradeLog, error) {
	return liquidity.DecodeTradeLogFile(*transactionsFile)
}
