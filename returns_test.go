package liquidity

import (
	"math"
	"testing"
)

func TestCumReturns(t *testing.T) {
	r := &Returns{}
	r.Append(NewDate(2025, 7, 30), 0.1)
	r.Append(NewDate(2025, 7, 31), -0.5)

	pv := CumReturns(r, 100)
	if v, _ := pv.Get(NewDate(2025, 7, 30)); math.Abs(v-110) > 1e-9 {
		t.Errorf("value after +10%% = %v, want 110", v)
	}
	if v, _ := pv.Get(NewDate(2025, 7, 31)); math.Abs(v-55) > 1e-9 {
		t.Errorf("value after -50%% = %v, want 55", v)
	}
}
