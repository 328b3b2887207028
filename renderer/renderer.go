// Package renderer turns the analysis results of the liquidity package
// into markdown reports, suitable for a terminal renderer or for
// publishing as-is.
package renderer

import (
	"fmt"
	"math"
)

// num formats a float for a report cell, rendering undefined values as "n/a".
func num(v float64, format string) string {
	if math.IsNaN(v) {
		return "n/a"
	}
	if math.IsInf(v, 0) {
		return "unbounded"
	}
	return fmt.Sprintf(format, v)
}

// millions formats a dollar-volume figure already expressed in millions.
func millions(v float64) string { return num(v, "%.2fM") }
