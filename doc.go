// Package liquidity provides descriptive liquidity-capacity and
// slippage-impact diagnostics for a backtested trading strategy. Given
// daily position values and per-ticker end-of-day price and volume data,
// it estimates how long positions would take to unwind under a
// participation-rate limit, which tickers constrain strategy capacity at
// different capital sizes, and how daily returns degrade when trades are
// scaled up and charged a volume-dependent slippage penalty.
//
// The core functionalities include:
//   - Transaction Aggregation: Collapsing a raw trade log into daily
//     per-ticker totals joined with that day's close price and volume.
//   - Liquidation Analysis: Estimating days-to-liquidate for every
//     position on every day, and reporting the worst day per ticker.
//   - Slippage Modeling: Adjusting a daily return series for a quadratic
//     volume-share slippage penalty at a hypothetical capital base.
//   - Capacity Analysis: Per-ticker dollar-volume statistics and the
//     maximum strategy size permitted by a daily volume participation cap.
//   - Data Persistence: Reading and writing positions, returns, trades
//     and market data in human-readable, version-controllable JSONL.
//
// All analytics are pure, synchronous transformations over immutable
// tables. Undefined results (missing data, zero denominators) propagate
// as NaN or Inf; the analytics never return errors.
//
// This package serves as the foundational logic for the `lqa`
// command-line tool.
package liquidity
