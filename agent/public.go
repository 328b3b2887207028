package agent

import (
	"context"
	"fmt"

	"github.com/etnz/liquidity"
	"github.com/etnz/liquidity/renderer"
	"google.golang.org/genai"
)

const model = "gemini-2.5-pro"

// Data points the analyst to the strategy's data files.
type Data struct {
	PositionsFile    string
	TransactionsFile string
	MarketPath       string
}

// creates the facilitator
func newFacilitator(experts ...*Expert) *Expert {
	return &Expert{
		Name:      "Facilitator",
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(experts)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			As a facilitator you are in charge of the conversation and solving the user's request.

			Learn about the expert's skill that you can get from the Tools to ask them questions.
			They are at your service and 100% dedicated to you, they keep context of your previous questions.

			The user runs a backtested trading strategy and is here to understand its
			liquidity: how long positions take to unwind, which tickers cap the strategy's
			size, and how much slippage would cost at scale.

			Devise a plan of questions to ask to each experts and come up with the best reponse to the user's request.

			The user will assume that you know about his strategy's tickers, check the liquidity reports first to understand what they are.
		`}}},
		},
		Library: NewLibrary(experts),
	}
}

// NewResearcher returns an expert grounding its answers in search.
func NewResearcher() *Expert {
	return &Expert{
		Name: "Researcher",
		Description: `This is an expert market researcher,
		very well aware of the financial products, exchanges and institutions,
		and of the latest news about the different companies.
		Ask the Researcher whenever you need recent or grounding information.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{GoogleSearch: &genai.GoogleSearch{}},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			You are an expert in markets. You can search and find about anything related to
			financial institutions, companies, markets and exchanges. You leverage Google
			Search to ground your assertions in a solid truth.
				`}}},
		},
	}
}

// NewAnalyst returns the expert in charge of this strategy's liquidity
// reports. Its tools compute the reports fresh from the data files.
func NewAnalyst(data Data) *Expert {
	lib := []Function{liquidationReport(data), capacityReport(data)}

	return &Expert{
		Name: "Analyst",
		Description: `This is the Analyst. He is in charge of the strategy's liquidity
		and capacity reports: days to liquidate positions, worst liquidation days,
		dollar-volume statistics and the maximum portfolio size.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(lib)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
				You are an analyst in charge of the liquidity of a backtested trading strategy.
				You know how to use the Tools to compute the relevant reports. They return
				markdown tables; "n/a" cells mean the data was missing, not zero.
				You are part of a team of experts, yours is everything computed from the
				strategy's positions, trades and market data.
			`}}},
		},
		Library: NewLibrary(lib),
	}
}

// Func implements a simple Function
type Func struct {
	// Declare this function
	Decl *genai.FunctionDeclaration
	// Call this function
	Func func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse
}

func (f *Func) Declaration() *genai.FunctionDeclaration { return f.Decl }
func (f *Func) Call(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
	return f.Func(ctx, id, args)
}

// respond builds a FunctionResponse from a report or an error.
func respond(id, name, output string, err error) *genai.FunctionResponse {
	resp := &genai.FunctionResponse{ID: id, Name: name}
	if err != nil {
		resp.Response = map[string]any{"error": err.Error()}
		return resp
	}
	resp.Response = map[string]any{"output": output}
	return resp
}

func liquidationReport(data Data) *Func {
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name: "WorstLiquidations",
			Description: `WorstLiquidations reports, for each ticker of the strategy, the day its
			estimated liquidation time was the longest, with the allocation on that day, and
			the trade days that consumed the largest fraction of the daily volume.`,
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A markdown report of the worst-case liquidations per ticker.",
			},
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			output, err := worstLiquidations(data)
			return respond(id, "WorstLiquidations", output, err)
		},
	}
}

func capacityReport(data Data) *Func {
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name: "Capacity",
			Description: `Capacity reports the per-ticker dollar-volume statistics of the strategy
			(max allocation, mean, 10th and 90th percentile daily dollar volume in millions)
			and the maximum portfolio size under a 20% daily volume participation cap.`,
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A markdown report of the strategy's capacity.",
			},
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			output, err := capacitySummary(data)
			return respond(id, "Capacity", output, err)
		},
	}
}

// private implementations computing the reports fresh from the data files.

func worstLiquidations(data Data) (string, error) {
	positions, market, err := load(data)
	if err != nil {
		return "", err
	}
	days := liquidity.DaysToLiquidatePositions(positions, market, liquidity.LiquidationOptions{})
	worst := liquidity.MaxDaysToLiquidateByTicker(positions, days)

	var lowLiq []liquidity.MaxBarConsumption
	if trades, err := liquidity.DecodeTradeLogFile(data.TransactionsFile); err == nil {
		lowLiq = liquidity.LowLiquidityTransactions(liquidity.DailyTransactions(trades, market))
	}
	return renderer.LiquidationMarkdown(worst, lowLiq), nil
}

func capacitySummary(data Data) (string, error) {
	positions, market, err := load(data)
	if err != nil {
		return "", err
	}
	summary := liquidity.CapacitySummary(positions, market, liquidity.CapacityOptions{})
	sizes := liquidity.MaxPortfolioSize(summary, 0)
	return renderer.CapacityMarkdown(summary, sizes), nil
}

func load(data Data) (*liquidity.Positions, *liquidity.MarketData, error) {
	positions, err := liquidity.DecodePositionsFile(data.PositionsFile)
	if err != nil {
		return nil, nil, fmt.Errorf("could not load positions: %w", err)
	}
	market, err := liquidity.DecodeMarketData(data.MarketPath)
	if err != nil {
		return nil, nil, fmt.Errorf("could not load market data: %w", err)
	}
	return positions, market, nil
}
