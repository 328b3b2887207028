package liquidity

import "math"

// ApplySlippagePenalty applies a quadratic volume-share slippage model to
// a daily return series, based on the proportion of the observed
// historical daily volume consumed by the strategy's trades. Trade sizes
// are scaled by the ratio of the capital we wish to simulate to the
// capital the backtest was originally run at.
//
// The penalty for a trade day is (scaled shares ÷ daily volume)² × impact
// × scaled traded dollars. Penalties are summed per calendar day and
// reindexed onto the return series, days without trades paying nothing.
//
// Since the penalty numerator scales linearly with the capital base, the
// normalizing portfolio value scales the same way: it is the cumulative
// value of the unscaled backtest multiplied by the capital ratio, with no
// compounding of the scaled trades.
//
// A zero-volume trade day makes that day's penalty infinite; undefined
// propagates.
func ApplySlippagePenalty(returns *Returns, txnDaily []DailyTxn, simulateStartingCapital, backtestStartingCapital, impact float64) *Returns {
	mult := simulateStartingCapital / backtestStartingCapital

	dailyPenalty := &History[float64]{}
	for _, txn := range txnDaily {
		shares := math.Abs(mult * txn.Amount)
		dollars := txn.Price * shares
		penalty := math.Pow(shares/txn.Volume, 2) * impact * dollars
		if math.IsNaN(penalty) {
			// Rows with no market data join fail silently, like the
			// aggregation that produced them.
			continue
		}
		dailyPenalty.AppendAdd(txn.Date, penalty)
	}

	pv := CumReturns(returns, backtestStartingCapital)

	adjusted := &Returns{}
	for on, r := range returns.Values() {
		penalty, ok := dailyPenalty.Get(on)
		if !ok {
			penalty = 0
		}
		value, _ := pv.Get(on)
		adjusted.Append(on, r-penalty/(value*mult))
	}
	return adjusted
}
