package liquidity

import (
	"math"
	"testing"
)

func TestNewMSSI(t *testing.T) {
	data := []struct {
		isin, mic string
		valid     bool
	}{
		{"US0378331005", "XNAS", true},
		{"FR0000120271", "XPAR", true},
		{"US0378331006", "XNAS", false}, // bad check digit
		{"US037833100", "XNAS", false},  // too short
		{"US0378331005", "NASDAQ", false},
	}
	for _, d := range data {
		id, err := NewMSSI(d.isin, d.mic)
		if d.valid && err != nil {
			t.Errorf("NewMSSI(%q, %q) returned error: %v", d.isin, d.mic, err)
		}
		if !d.valid && err == nil {
			t.Errorf("NewMSSI(%q, %q) accepted an invalid id: %v", d.isin, d.mic, id)
		}
	}

	id, _ := NewMSSI("US0378331005", "XNAS")
	isin, mic, err := id.MSSI()
	if err != nil || isin != "US0378331005" || mic != "XNAS" {
		t.Errorf("MSSI() = %q %q %v", isin, mic, err)
	}
}

func TestPrivateID(t *testing.T) {
	id, err := NewPrivate("my fund 2025")
	if err != nil {
		t.Fatalf("NewPrivate: %v", err)
	}
	if id.IsMSSI() {
		t.Errorf("private id %q claims to be an MSSI", id)
	}
}

func TestDollarVolume(t *testing.T) {
	on := NewDate(2025, 7, 31)
	market := testMarket(t, "AAPL", 100, 500_000, on)

	if dv := market.DollarVolume("AAPL", on); dv != 50_000_000 {
		t.Errorf("dollar volume = %v, want 50e6", dv)
	}
	// missing bar or unknown ticker: NaN, not zero.
	if dv := market.DollarVolume("AAPL", on.Add(1)); !math.IsNaN(dv) {
		t.Errorf("dollar volume on a missing day = %v, want NaN", dv)
	}
	if dv := market.DollarVolume("ZZZ", on); !math.IsNaN(dv) {
		t.Errorf("dollar volume of an unknown ticker = %v, want NaN", dv)
	}
}
