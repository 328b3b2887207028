// Package eodhd fetches daily end-of-day bars (close price and traded
// share volume) from the EOD Historical Data API, and resolves security
// identifiers to the provider's own ticker format.
package eodhd

import (
	"fmt"
	"strings"

	"github.com/etnz/liquidity"
	"github.com/shopspring/decimal"
)

// Bar is a single end-of-day bar for one ticker.
type Bar struct {
	Date   liquidity.Date
	Close  decimal.Decimal
	Volume decimal.Decimal
}

// fetchMicToExchangeCode returns a map of MIC to EODHD's internal exchange code.
//
// This is required since EODHD use its own id for exchange places.
func fetchMicToExchangeCode(apiKey string) (map[string]string, error) {
	// https://eodhd.com/api/exchanges-list/?api_token=demo&fmt=json
	// [
	// {
	// 	"Name": "Frankfurt Exchange",
	// 	"Code": "F",
	// 	"OperatingMIC": "XFRA",
	//  ...
	//   },

	addr := "https://eodhd.com/api/exchanges-list/?fmt=json&api_token=" + apiKey

	// the response is a list of exchanges, each with a Code and OperatingMIC
	type Info struct {
		Code         string
		OperatingMIC string // could be a comma separated list of MICs
	}

	content := make([]Info, 0)
	// query that endpoint at most once a day
	if err := liquidity.Jwget(liquidity.NewDailyCachingClient(), addr, &content); err != nil {
		return nil, err
	}
	result := make(map[string]string)
	for _, info := range content {
		for _, mic := range strings.Split(info.OperatingMIC, ",") {
			result[strings.TrimSpace(mic)] = info.Code
		}
	}
	return result, nil
}

// fetchBars returns the daily close and volume for a given EODHD ticker.
// The EODHD ticker format is typically "SYMBOL.EXCHANGECODE".
func fetchBars(apiKey, ticker string, from, to liquidity.Date) ([]Bar, error) {
	// https://eodhd.com/api/eod/NVD.F?api_token=demo&fmt=json
	// [
	//	{
	//		"date": "2024-02-13",
	//		"open": 675.066,
	//		"close": 668.445,
	//		"volume": 543210
	//	  },

	// bounds are included in the response; the format is 'YYYY-MM-DD'.
	// A zero 'from' means inception: the parameter is simply omitted.
	addr := fmt.Sprintf("https://eodhd.com/api/eod/%s?fmt=json&api_token=%s&to=%s", ticker, apiKey, to)
	if !from.IsZero() {
		addr += "&from=" + from.String()
	}

	type Info struct {
		Date   liquidity.Date  `json:"date"`
		Close  decimal.Decimal `json:"close"`
		Volume decimal.Decimal `json:"volume"`
	}
	content := make([]Info, 0)
	if err := liquidity.Jwget(liquidity.NewDailyCachingClient(), addr, &content); err != nil {
		return nil, fmt.Errorf("cannot fetch bars for %q: %w", ticker, err)
	}

	bars := make([]Bar, 0, len(content))
	for _, info := range content {
		bars = append(bars, Bar{Date: info.Date, Close: info.Close, Volume: info.Volume})
	}
	return bars, nil
}

// findTicker resolves a security's MSSI id into the EODHD ticker format.
func findTicker(apiKey string, sec *liquidity.Security) (string, error) {
	isin, mic, err := sec.ID().MSSI()
	if err != nil {
		return "", fmt.Errorf("security %q has no resolvable id: %w", sec.Ticker(), err)
	}

	results, err := Search(apiKey, isin)
	if err != nil {
		return "", err
	}
	mic2Exchange, err := fetchMicToExchangeCode(apiKey)
	if err != nil {
		return "", err
	}
	exchangeCode, ok := mic2Exchange[mic]
	if !ok {
		return "", fmt.Errorf("security %q: unknown exchange for MIC %q", sec.Ticker(), mic)
	}

	for _, result := range results {
		if result.MIC == mic {
			return result.Code + "." + exchangeCode, nil
		}
	}
	return "", fmt.Errorf("security %q: no EODHD listing found for %s on %s", sec.Ticker(), isin, mic)
}
