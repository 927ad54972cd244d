package camera

import "math"

// Range is a designer-authored [Min, Max] span sampled by a normalized
// multiplier.
type Range struct {
	Min float64
	Max float64
}

// Lerp maps t onto [Min, Max]. t is clamped to [0,1] first, so out-of-range
// multipliers never extrapolate.
func (r Range) Lerp(t float64) float64 {
	return r.Min + (r.Max-r.Min)*Clamp01(t)
}

// Slerp is Lerp over an eased parameter pow(t, power). Powers below 1 bias
// the sweep toward Max early.
func (r Range) Slerp(t, power float64) float64 {
	return r.Lerp(math.Pow(Clamp01(t), power))
}

// Span returns Max - Min.
func (r Range) Span() float64 {
	return r.Max - r.Min
}

// Clamp01 forces v into [0,1].
func Clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
