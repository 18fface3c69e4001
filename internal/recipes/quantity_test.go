package recipes

import (
	"math"
	"testing"
)

func TestParseQuantity(t *testing.T) {
	tests := []struct {
		raw  string
		want float64
		ok   bool
	}{
		{"2", 2, true},
		{"3/4", 0.75, true},
		{"1 1/2", 1.5, true},
		{"  1 1/2  ", 1.5, true},
		{"0.5", 0.5, true},
		{"2 3/4", 2.75, true},
		{"", 0, false},
		{"   ", 0, false},
		{"abc", 0, false},
		{"1/0", 0, false},
		{"1/2/3", 0, false},
		{"1 pinch", 0, false},
		{"a/2", 0, false},
		{"1/b", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, ok := ParseQuantity(tt.raw)
			if ok != tt.ok {
				t.Fatalf("ParseQuantity(%q) ok = %v, want %v", tt.raw, ok, tt.ok)
			}
			if ok && math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("ParseQuantity(%q) = %v, want %v", tt.raw, got, tt.want)
			}
		})
	}
}

func TestScaleQuantity(t *testing.T) {
	tests := []struct {
		name  string
		raw   string
		scale float64
		want  string
	}{
		{"empty stays empty", "", 2, ""},
		{"scale one is verbatim", "1/2", 1, "1/2"},
		{"fraction times four", "1/2", 4, "2"},
		{"mixed number doubled", "1 1/2", 2, "3"},
		{"fraction halved", "1/2", 0.5, "0.25"},
		{"third stays lossy", "1/3", 2, "0.67"},
		{"trailing zeros stripped", "1/4", 2, "0.5"},
		{"unparseable gets annotated", "pinch", 2, "pinch (x2)"},
		{"unparseable with fractional scale", "to taste", 0.5, "to taste (x0.5)"},
		{"whole result drops point", "4", 0.5, "2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ScaleQuantity(tt.raw, tt.scale); got != tt.want {
				t.Errorf("ScaleQuantity(%q, %v) = %q, want %q", tt.raw, tt.scale, got, tt.want)
			}
		})
	}
}

// Scaling by 1 must never transform the original text, parseable or not.
func TestScaleQuantityIdentity(t *testing.T) {
	for _, raw := range []string{"1", "1/2", "1 1/2", "pinch", "a splash", "", "  3/4"} {
		if got := ScaleQuantity(raw, 1); got != raw {
			t.Errorf("ScaleQuantity(%q, 1) = %q, want input unchanged", raw, got)
		}
	}
}

// A scaled display string must reparse to the product within 2-decimal
// rounding.
func TestScaleQuantityRoundTrip(t *testing.T) {
	quantities := []string{"1", "2", "1/2", "3/4", "1 1/2", "2 3/4", "1/3", "5"}
	scales := []float64{0.5, 2, 3, 4}

	for _, q := range quantities {
		value, ok := ParseQuantity(q)
		if !ok {
			t.Fatalf("test input %q should parse", q)
		}
		for _, s := range scales {
			out := ScaleQuantity(q, s)
			reparsed, ok := ParseQuantity(out)
			if !ok {
				t.Fatalf("ScaleQuantity(%q, %v) = %q does not reparse", q, s, out)
			}
			if math.Abs(reparsed-value*s) > 0.005 {
				t.Errorf("ScaleQuantity(%q, %v) = %q, reparses to %v, want %v (±0.005)", q, s, out, reparsed, value*s)
			}
		}
	}
}

func TestFormatAmount(t *testing.T) {
	tests := []struct {
		value float64
		want  string
	}{
		{2, "2"},
		{0.5, "0.5"},
		{0.25, "0.25"},
		{2.0000001, "2"},
		{1.0 / 3.0, "0.33"},
		{2.999, "3"},
		{0, "0"},
	}

	for _, tt := range tests {
		if got := FormatAmount(tt.value); got != tt.want {
			t.Errorf("FormatAmount(%v) = %q, want %q", tt.value, got, tt.want)
		}
	}
}
