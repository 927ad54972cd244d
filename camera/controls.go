package camera

// Controls are the four normalized multipliers owned by whoever drives the
// rig (keyboard, HUD, director script). The mapper reads them once per frame
// and never writes them back.
type Controls struct {
	Zoom    float64
	ISO     float64
	Shutter float64
	Effects float64
}

// Clamped returns a copy with every multiplier forced into [0,1].
func (c Controls) Clamped() Controls {
	return Controls{
		Zoom:    Clamp01(c.Zoom),
		ISO:     Clamp01(c.ISO),
		Shutter: Clamp01(c.Shutter),
		Effects: Clamp01(c.Effects),
	}
}
