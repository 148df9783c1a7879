package quote

import (
	"math"
	"testing"
)

func TestFormatUSD(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "$0.00"},
		{112, "$112.00"},
		{28.5, "$28.50"},
		{0.745, "$0.75"},
		{1234.5, "$1,234.50"},
		{1000000, "$1,000,000.00"},
		{-12.3, "-$12.30"},
	}
	for _, tt := range tests {
		if got := FormatUSD(tt.in); got != tt.want {
			t.Errorf("FormatUSD(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatArea(t *testing.T) {
	if got := FormatArea(32); got != "32.00 sq ft" {
		t.Fatalf("FormatArea(32) = %q", got)
	}
	if got := FormatArea(13.0 * 7 / 144); got != "0.63 sq ft" {
		t.Fatalf("FormatArea(13x7) = %q", got)
	}
}

func TestFormatInches(t *testing.T) {
	if got := FormatInches(48); got != "48″" {
		t.Fatalf("FormatInches(48) = %q", got)
	}
	if got := FormatInches(36.5); got != "36.5″" {
		t.Fatalf("FormatInches(36.5) = %q", got)
	}
}

func TestFormat_NonFiniteRendersZero(t *testing.T) {
	for _, v := range []float64{math.Inf(1), math.Inf(-1), math.NaN()} {
		if got := FormatUSD(v); got != "$0.00" {
			t.Errorf("FormatUSD(%v) = %q, want $0.00", v, got)
		}
		if got := FormatArea(v); got != "0.00 sq ft" {
			t.Errorf("FormatArea(%v) = %q, want 0.00 sq ft", v, got)
		}
		if !RoundCents(v).IsZero() {
			t.Errorf("RoundCents(%v) = %s, want 0", v, RoundCents(v))
		}
	}
}

func TestFormat_ExtremeFiniteValues(t *testing.T) {
	if got := FormatUSD(5e-324); got != "$0.00" {
		t.Fatalf("FormatUSD(subnormal) = %q", got)
	}
	if got := FormatArea(5e-324); got != "0.00 sq ft" {
		t.Fatalf("FormatArea(subnormal) = %q", got)
	}
	if got := FormatUSD(1234567890123.5); got != "$1,234,567,890,123.50" {
		t.Fatalf("FormatUSD(large) = %q", got)
	}
}
