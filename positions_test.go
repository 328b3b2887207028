package liquidity

import (
	"math"
	"strings"
	"testing"
)

func TestPercentAlloc(t *testing.T) {
	on := NewDate(2025, 7, 31)
	p := NewPositions()
	p.Set("AAPL", on, 200_000)
	p.SetCash(on, 800_000)

	alloc := PercentAlloc(p)

	// the denominator includes cash.
	if a, _ := alloc.Get("AAPL", on); a != 0.2 {
		t.Errorf("AAPL allocation = %v, want 0.2", a)
	}
	// the cash column is carried, and dropped by Without.
	if a, _ := alloc.Get(CashColumn, on); a != 0.8 {
		t.Errorf("cash allocation = %v, want 0.8", a)
	}
	if alloc.Without(CashColumn).Has(CashColumn) {
		t.Errorf("Without(%q) kept the cash column", CashColumn)
	}
}

func TestPercentAllocZeroTotal(t *testing.T) {
	on := NewDate(2025, 7, 31)
	p := NewPositions()
	p.Set("AAPL", on, 0)
	p.SetCash(on, 0)

	// undefined propagates, it does not raise.
	if a, _ := PercentAlloc(p).Get("AAPL", on); !math.IsNaN(a) {
		t.Errorf("allocation over a zero total = %v, want NaN", a)
	}
}

func TestPositionsRoundTrip(t *testing.T) {
	p := NewPositions()
	p.Set("AAPL", NewDate(2025, 7, 30), 100)
	p.Set("MSFT", NewDate(2025, 7, 31), 200)
	p.SetCash(NewDate(2025, 7, 30), 50)
	p.SetCash(NewDate(2025, 7, 31), 60)

	var b strings.Builder
	if err := EncodePositions(&b, p); err != nil {
		t.Fatalf("EncodePositions: %v", err)
	}
	q, err := DecodePositions(strings.NewReader(b.String()))
	if err != nil {
		t.Fatalf("DecodePositions: %v", err)
	}

	if v, ok := q.Value("AAPL", NewDate(2025, 7, 30)); !ok || v != 100 {
		t.Errorf("AAPL on 2025-07-30 = %v %v, want 100 true", v, ok)
	}
	if c, ok := q.Cash(NewDate(2025, 7, 31)); !ok || c != 60 {
		t.Errorf("cash on 2025-07-31 = %v %v, want 60 true", c, ok)
	}
}
