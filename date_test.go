package liquidity

import (
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	data := []struct {
		str  string
		want Date
	}{
		{"2025-07-31", NewDate(2025, 7, 31)},
		{"2025-08-01", NewDate(2025, 8, 1)},
		{"0d", Today()},
		{"-1d", Today().Add(-1)},
	}
	for _, d := range data {
		got, err := ParseDate(d.str)
		if err != nil {
			t.Fatalf("ParseDate(%q) returned error: %v", d.str, err)
		}
		if got != d.want {
			t.Errorf("ParseDate(%q) = %v, want %v", d.str, got, d.want)
		}
	}

	if _, err := ParseDate("not-a-date"); err == nil {
		t.Errorf("ParseDate accepted an invalid date")
	}
}

func TestDateOfTruncatesTime(t *testing.T) {
	stamp := time.Date(2025, 7, 31, 15, 4, 5, 0, time.UTC)
	if got, want := DateOf(stamp), NewDate(2025, 7, 31); got != want {
		t.Errorf("DateOf(%v) = %v, want %v", stamp, got, want)
	}
}

func TestHistorySortsOnAppend(t *testing.T) {
	h := &History[float64]{}
	h.Append(NewDate(2025, 7, 31), 3)
	h.Append(NewDate(2025, 7, 29), 1)
	h.Append(NewDate(2025, 7, 30), 2)

	want := 1.0
	for _, v := range h.Values() {
		if v != want {
			t.Errorf("out of order value %v, want %v", v, want)
		}
		want++
	}

	if on, v := h.Latest(); on != NewDate(2025, 7, 31) || v != 3 {
		t.Errorf("Latest() = %v %v, want 2025-07-31 3", on, v)
	}
}

func TestHistoryValueAsOf(t *testing.T) {
	h := &History[float64]{}
	h.Append(NewDate(2025, 7, 29), 1)
	h.Append(NewDate(2025, 7, 31), 3)

	if v, ok := h.ValueAsOf(NewDate(2025, 7, 30)); !ok || v != 1 {
		t.Errorf("ValueAsOf(2025-07-30) = %v %v, want 1 true", v, ok)
	}
	if _, ok := h.ValueAsOf(NewDate(2025, 7, 28)); ok {
		t.Errorf("ValueAsOf before the first day should not be found")
	}
}

func TestHistoryAppendAdd(t *testing.T) {
	h := &History[float64]{}
	on := NewDate(2025, 7, 31)
	h.AppendAdd(on, 1)
	h.AppendAdd(on, 2)
	if v, _ := h.Get(on); v != 3 {
		t.Errorf("AppendAdd twice = %v, want 3", v)
	}
	if h.Len() != 1 {
		t.Errorf("AppendAdd created %d entries, want 1", h.Len())
	}
}
