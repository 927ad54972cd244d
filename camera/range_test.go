package camera

import (
	"math"
	"testing"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestRangeLerp(t *testing.T) {
	r := Range{Min: 10, Max: 20}

	cases := []struct {
		name string
		t    float64
		want float64
	}{
		{"at_min", 0, 10},
		{"at_max", 1, 20},
		{"midpoint", 0.5, 15},
		{"clamped_below", -0.5, 10},
		{"clamped_above", 1.5, 20},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := r.Lerp(c.t)
			if !almostEqual(got, c.want) {
				t.Fatalf("Lerp(%g) = %g, want %g", c.t, got, c.want)
			}
		})
	}
}

func TestRangeLerpStaysInBounds(t *testing.T) {
	r := Range{Min: -3, Max: 7}
	for _, tt := range []float64{-100, -1, 0, 0.25, 0.5, 0.99, 1, 2, 100} {
		got := r.Lerp(tt)
		if got < r.Min || got > r.Max {
			t.Fatalf("Lerp(%g) = %g escaped [%g, %g]", tt, got, r.Min, r.Max)
		}
	}
}

func TestRangeSlerp(t *testing.T) {
	r := Range{Min: 30, Max: 8000}

	t.Run("endpoints", func(t *testing.T) {
		if got := r.Slerp(0, 0.5); !almostEqual(got, 30) {
			t.Fatalf("Slerp(0) = %g, want 30", got)
		}
		if got := r.Slerp(1, 0.5); !almostEqual(got, 8000) {
			t.Fatalf("Slerp(1) = %g, want 8000", got)
		}
	})

	t.Run("power_one_is_lerp", func(t *testing.T) {
		for _, tt := range []float64{0, 0.3, 0.5, 0.77, 1} {
			if got, want := r.Slerp(tt, 1), r.Lerp(tt); !almostEqual(got, want) {
				t.Fatalf("Slerp(%g, 1) = %g, want Lerp result %g", tt, got, want)
			}
		}
	})

	t.Run("half_power_biases_up", func(t *testing.T) {
		// sqrt ease reaches values earlier than linear
		if got, lin := r.Slerp(0.25, 0.5), r.Lerp(0.25); got <= lin {
			t.Fatalf("Slerp(0.25, 0.5) = %g should exceed Lerp(0.25) = %g", got, lin)
		}
		if got, want := r.Slerp(0.25, 0.5), r.Lerp(0.5); !almostEqual(got, want) {
			t.Fatalf("Slerp(0.25, 0.5) = %g, want %g", got, want)
		}
	})

	t.Run("clamps_input", func(t *testing.T) {
		if got := r.Slerp(2, 0.5); !almostEqual(got, 8000) {
			t.Fatalf("Slerp(2) = %g, want 8000", got)
		}
	})
}

func TestClamp01(t *testing.T) {
	cases := []struct {
		in   float64
		want float64
	}{
		{-1, 0},
		{0, 0},
		{0.5, 0.5},
		{1, 1},
		{7, 1},
	}
	for _, c := range cases {
		if got := Clamp01(c.in); got != c.want {
			t.Fatalf("Clamp01(%g) = %g, want %g", c.in, got, c.want)
		}
	}
}
