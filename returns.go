package liquidity

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// Returns is a time series of daily fractional returns.
type Returns = History[float64]

// CumReturns compounds a daily return series into a cumulative value
// series starting from the given base. The value reported for a day is
// the value after that day's return is applied.
func CumReturns(returns *Returns, startingValue float64) *History[float64] {
	cum := &History[float64]{}
	value := startingValue
	for on, r := range returns.Values() {
		value *= 1 + r
		cum.Append(on, value)
	}
	return cum
}

// jreturn is one row of the returns JSONL file.
type jreturn struct {
	On     Date    `json:"on"`
	Return float64 `json:"return"`
}

// DecodeReturns reads a daily return series from its JSONL form.
func DecodeReturns(r io.Reader) (*Returns, error) {
	series := &Returns{}
	scanner := bufio.NewScanner(r)
	n := 0
	for scanner.Scan() {
		n++
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		var jr jreturn
		if err := json.Unmarshal(line, &jr); err != nil {
			return nil, fmt.Errorf("format error on line %d: %w", n, err)
		}
		series.Append(jr.On, jr.Return)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return series, nil
}

// EncodeReturns writes a daily return series in its JSONL form.
func EncodeReturns(w io.Writer, returns *Returns) error {
	enc := json.NewEncoder(w)
	for on, r := range returns.Values() {
		if err := enc.Encode(jreturn{On: on, Return: r}); err != nil {
			return err
		}
	}
	return nil
}

// DecodeReturnsFile reads a daily return series from a JSONL file.
func DecodeReturnsFile(filename string) (*Returns, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	r, err := DecodeReturns(f)
	if err != nil {
		return nil, fmt.Errorf("reading %q: %w", filename, err)
	}
	return r, nil
}
