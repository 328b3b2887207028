package liquidity

import (
	"testing"
)

func TestMarketDataRoundTrip(t *testing.T) {
	dir := t.TempDir()

	id, err := NewMSSI("US0378331005", "XNAS")
	if err != nil {
		t.Fatalf("NewMSSI: %v", err)
	}
	m := NewMarketData()
	sec := m.Add(NewSecurity("AAPL", id, "USD"))
	sec.SetBar(NewDate(2024, 12, 31), 100, 1000)
	sec.SetBar(NewDate(2025, 7, 31), 110, 2000)

	if err := EncodeMarketData(dir, m); err != nil {
		t.Fatalf("EncodeMarketData: %v", err)
	}
	n, err := DecodeMarketData(dir)
	if err != nil {
		t.Fatalf("DecodeMarketData: %v", err)
	}

	got := n.Get("AAPL")
	if got == nil {
		t.Fatalf("decoded market has no AAPL")
	}
	if got.ID() != id || got.Currency() != "USD" {
		t.Errorf("decoded security = %v %v, want %v USD", got.ID(), got.Currency(), id)
	}
	// bars span two year files.
	if p, ok := got.Price(NewDate(2024, 12, 31)); !ok || p != 100 {
		t.Errorf("2024 bar price = %v %v, want 100 true", p, ok)
	}
	if v, ok := got.Volume(NewDate(2025, 7, 31)); !ok || v != 2000 {
		t.Errorf("2025 bar volume = %v %v, want 2000 true", v, ok)
	}
}

func TestDecodeMarketDataEmptyFolder(t *testing.T) {
	m, err := DecodeMarketData(t.TempDir())
	if err != nil {
		t.Fatalf("DecodeMarketData on an empty folder: %v", err)
	}
	if m.Len() != 0 {
		t.Errorf("empty folder decoded %d securities", m.Len())
	}
}
