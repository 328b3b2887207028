package liquidity

import (
	"fmt"
	"math"
	"net/http"
	"strconv"
	"strings"

	"github.com/PaesslerAG/jsonpath"
)

// TradegateBar fetches the latest traded price and the cumulative number
// of shares exchanged today on Tradegate for an ISIN. It is used to top
// up a market data folder with today's provisional bar before the
// end-of-day providers have it.
func TradegateBar(name, isin string) (price, volume float64, err error) {
	addr := "https://www.tradegate.de/refresh.php?isin=" + isin

	var jobj any
	if err := Jwget(new(http.Client), addr, &jobj); err != nil {
		return math.NaN(), math.NaN(), fmt.Errorf("error retrieving %q: %w", name, err)
	}

	// last is the last transaction, moves slower than the bid, but the bid can be 0.
	price, err = tradegateNumber(jobj, "$.last")
	if err != nil {
		// trade gate shows an empty last as "./.", use the bid instead
		price, err = tradegateNumber(jobj, "$.bid")
	}
	if err != nil {
		return math.NaN(), math.NaN(), fmt.Errorf("cannot read price for %q: %w", name, err)
	}
	if price == 0 {
		// sometimes the bid is empty and returns 0
		return math.NaN(), math.NaN(), fmt.Errorf("empty bid for %s no value to return", name)
	}

	// stueckzahl is the cumulative number of shares exchanged today.
	volume, err = tradegateNumber(jobj, "$.stueckzahl")
	if err != nil {
		return math.NaN(), math.NaN(), fmt.Errorf("cannot read volume for %q: %w", name, err)
	}
	return price, volume, nil
}

// tradegateNumber extracts a numeric value at a jsonpath from this weird
// API: values come as floats, or as strings with comma decimals and
// space-grouped thousands.
func tradegateNumber(jobj any, path string) (float64, error) {
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return math.NaN(), fmt.Errorf("error parsing %q: %w", path, err)
	}
	// because jsonpath is never clear about wheter it returns a list of 1 answer, or a single answer:
	// by this call I keep the first one if any
	if jlist, ok := jval.([]any); ok && len(jlist) > 0 {
		jval = jlist[0]
	}

	if val, ok := jval.(float64); ok {
		return val, nil
	}
	sval, ok := jval.(string)
	if !ok {
		return math.NaN(), fmt.Errorf("%q is neither a float nor a string", path)
	}
	sval = strings.ReplaceAll(sval, ",", ".")
	sval = strings.ReplaceAll(sval, " ", "")
	val, err := strconv.ParseFloat(sval, 64)
	if err != nil {
		return math.NaN(), fmt.Errorf("%q is an invalid string %q: %w", path, sval, err)
	}
	return val, nil
}
